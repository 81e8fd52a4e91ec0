package controller_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/bfs"
	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/controller"
	"github.com/katalvlaran/lvcolor/core"
)

// quietLogger discards output so test logs stay readable.
func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// newSession builds a session over the given topology with a manual scheduler.
func newSession(t *testing.T, con builder.Constructor, opts ...controller.Option) (*controller.Session, *controller.ManualScheduler) {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, con)
	require.NoError(t, err)

	sched := controller.NewManualScheduler()
	base := []controller.Option{
		controller.WithScheduler(sched),
		controller.WithLogger(quietLogger()),
		controller.WithSeed(7),
	}
	s, err := controller.NewSession(g, append(base, opts...)...)
	require.NoError(t, err)

	return s, sched
}

// drain collects the events buffered so far.
func drain(ch <-chan controller.Event) []controller.Event {
	var out []controller.Event
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

func kinds(evs []controller.Event) []controller.EventKind {
	out := make([]controller.EventKind, len(evs))
	for i, ev := range evs {
		out[i] = ev.Kind
	}

	return out
}

func TestNewSession_Errors(t *testing.T) {
	_, err := controller.NewSession(nil)
	require.ErrorIs(t, err, controller.ErrNilGraph)

	_, err = controller.NewSession(core.NewGraph(), controller.WithPaces(0, time.Second))
	require.ErrorIs(t, err, controller.ErrOptionViolation)

	_, err = controller.NewSession(core.NewGraph(), controller.WithMinRandomVertices(0))
	require.ErrorIs(t, err, controller.ErrOptionViolation)

	s, err := controller.NewSession(core.NewGraph(), nil)
	require.NoError(t, err)
	require.Equal(t, controller.NotStarted, s.State())
	require.Equal(t, controller.Stats{}, s.Stats())
	_, ok := s.Current()
	require.False(t, ok)
}

// TestSession_LasVegasTriangle runs to completion on the first tick.
func TestSession_LasVegasTriangle(t *testing.T) {
	s, sched := newSession(t, builder.Complete(3))
	events, unsubscribe := s.Subscribe(16)
	defer unsubscribe()

	require.NoError(t, s.Start(context.Background(), controller.LasVegas, controller.PaceFast))
	require.Equal(t, controller.Running, s.State())
	require.Equal(t, []time.Duration{controller.DefaultFastInterval}, sched.Intervals())

	require.Equal(t, 1, sched.Fire())
	require.Equal(t, controller.Finished, s.State())
	require.Zero(t, sched.Active(), "cadence stops when the run finishes")
	require.Zero(t, sched.Fire())

	evs := drain(events)
	require.Equal(t, []controller.EventKind{
		controller.EventStarted, controller.EventTick, controller.EventFinished,
	}, kinds(evs))
	last := evs[2]
	require.True(t, last.Valid)
	require.Equal(t, controller.Finished, last.State)
	require.Equal(t, 1, last.Stats.Attempts)
	require.InDelta(t, 1.0/coloring.DefaultMaxAttempts, last.Stats.Progress, 1e-12)
	require.Empty(t, last.ConflictEdges)

	colors := s.Graph().Colors()
	require.Len(t, colors, 3)
	seen := map[string]bool{}
	for _, c := range colors {
		seen[c] = true
	}
	require.Len(t, seen, 3, "a triangle needs three distinct colors")
}

// TestSession_MonteCarloBudget stops after exactly the iteration budget.
func TestSession_MonteCarloBudget(t *testing.T) {
	s, sched := newSession(t, builder.Complete(4),
		controller.WithSamplerOptions(coloring.WithIterations(5)))

	require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceSlow))
	require.Equal(t, []time.Duration{controller.DefaultSlowInterval}, sched.Intervals())

	require.Equal(t, 5, sched.FireN(100))
	require.Equal(t, controller.Finished, s.State())

	st := s.Stats()
	require.Equal(t, 5, st.Attempts)
	require.GreaterOrEqual(t, st.Conflicts, 1, "K4 has no proper 3-coloring")

	ev, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, controller.EventFinished, ev.Kind)
	require.False(t, ev.Valid)
	require.NotEmpty(t, ev.ConflictEdges)
}

// TestSession_PauseResume keeps sampler state across a pause.
func TestSession_PauseResume(t *testing.T) {
	s, sched := newSession(t, builder.Cycle(5),
		controller.WithSamplerOptions(coloring.WithIterations(10)))

	require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceFast))
	require.Equal(t, 3, sched.FireN(3))
	require.NoError(t, s.Pause())
	require.Equal(t, controller.Paused, s.State())
	require.Zero(t, sched.Fire(), "no ticks while paused")
	require.Equal(t, 3, s.Stats().Attempts)

	require.NoError(t, s.Resume())
	require.Equal(t, controller.Running, s.State())
	require.Equal(t, 1, sched.Fire())
	require.Equal(t, 4, s.Stats().Attempts)
	require.Len(t, sched.Intervals(), 2)

	require.Equal(t, 6, sched.FireN(100))
	require.Equal(t, controller.Finished, s.State())
	require.Equal(t, 10, s.Stats().Attempts)
}

// TestSession_Advance steps a paused run by hand.
func TestSession_Advance(t *testing.T) {
	s, _ := newSession(t, builder.Cycle(6),
		controller.WithSamplerOptions(coloring.WithIterations(2)))

	require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceFast))
	require.NoError(t, s.Pause())

	require.NoError(t, s.Advance())
	require.Equal(t, controller.Paused, s.State())
	require.Equal(t, 1, s.Stats().Attempts)

	require.NoError(t, s.Advance())
	require.Equal(t, controller.Finished, s.State())
	require.ErrorIs(t, s.Advance(), controller.ErrInvalidTransition)
}

func TestSession_InvalidTransitions(t *testing.T) {
	s, _ := newSession(t, builder.Cycle(4))

	require.ErrorIs(t, s.Pause(), controller.ErrInvalidTransition)
	require.ErrorIs(t, s.Resume(), controller.ErrInvalidTransition)
	require.ErrorIs(t, s.Advance(), controller.ErrInvalidTransition)

	require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceFast))
	require.ErrorIs(t, s.Resume(), controller.ErrInvalidTransition)
	require.ErrorIs(t, s.Advance(), controller.ErrInvalidTransition)
	require.NoError(t, s.Pause())
	require.ErrorIs(t, s.Pause(), controller.ErrInvalidTransition)
}

// TestSession_StartRejects leaves a running run untouched on bad input.
func TestSession_StartRejects(t *testing.T) {
	s, sched := newSession(t, builder.Cycle(4))
	require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceFast))

	require.ErrorIs(t, s.Start(context.Background(), "greedy", controller.PaceFast), controller.ErrUnknownAlgorithm)
	require.ErrorIs(t, s.Start(context.Background(), controller.LasVegas, "warp"), controller.ErrUnknownPace)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Start(ctx, controller.LasVegas, controller.PaceFast), context.Canceled)

	require.Equal(t, controller.Running, s.State())
	require.Equal(t, 1, sched.Active())
}

// TestSession_MutationDiscards covers every structural edit.
func TestSession_MutationDiscards(t *testing.T) {
	edits := map[string]func(s *controller.Session) error{
		"add vertex": func(s *controller.Session) error {
			_, err := s.AddVertex(0.5, 0.5)
			return err
		},
		"remove vertex": func(s *controller.Session) error { return s.RemoveVertex(1) },
		"add edge":      func(s *controller.Session) error { return s.AddEdge(1, 3) },
		"remove edge":   func(s *controller.Session) error { return s.RemoveEdge(1, 2) },
		"reset": func(s *controller.Session) error {
			s.Reset()
			return nil
		},
	}
	for name, edit := range edits {
		t.Run(name, func(t *testing.T) {
			s, sched := newSession(t, builder.Cycle(6))
			require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceFast))
			require.Equal(t, 2, sched.FireN(2))
			require.NotEmpty(t, s.Graph().Colors())

			require.NoError(t, edit(s))
			require.Equal(t, controller.NotStarted, s.State())
			require.Zero(t, sched.Active())
			require.Empty(t, s.Graph().Colors())
			require.Equal(t, controller.Stats{}, s.Stats())

			ev, ok := s.Current()
			require.True(t, ok)
			require.Equal(t, controller.EventDiscarded, ev.Kind)
			require.Equal(t, controller.ReasonGraphChanged, ev.Reason)
		})
	}
}

// TestSession_FailedMutationKeepsRun does not discard on a rejected edit.
func TestSession_FailedMutationKeepsRun(t *testing.T) {
	s, sched := newSession(t, builder.Cycle(4))
	require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceFast))

	require.ErrorIs(t, s.AddEdge(1, 2), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(t, s.RemoveVertex(99), core.ErrVertexNotFound)
	require.Equal(t, controller.Running, s.State())
	require.Equal(t, 1, sched.Active())
}

// TestSession_MoveVertexKeepsRun: positions are not structural.
func TestSession_MoveVertexKeepsRun(t *testing.T) {
	s, sched := newSession(t, builder.Cycle(4))
	require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceFast))

	require.NoError(t, s.MoveVertex(2, 0.1, 0.9))
	require.Equal(t, 1, sched.Fire())
	require.Equal(t, controller.Running, s.State())
	require.Equal(t, 1, s.Stats().Attempts)
}

// TestSession_DirectMutationDetected discards at the next tick when the graph
// is edited behind the session's back.
func TestSession_DirectMutationDetected(t *testing.T) {
	s, sched := newSession(t, builder.Cycle(5))
	require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceFast))
	require.Equal(t, 1, sched.Fire())

	require.NoError(t, s.Graph().AddEdge(1, 3, core.DefaultEdgeWeight))
	require.Equal(t, controller.Running, s.State())

	sched.Fire()
	require.Equal(t, controller.NotStarted, s.State())
	require.Zero(t, sched.Active())
	ev, _ := s.Current()
	require.Equal(t, controller.EventDiscarded, ev.Kind)
	require.Equal(t, controller.ReasonGraphChanged, ev.Reason)
}

// TestSession_FinishedRunDiscardedByMutation clears the painted result.
func TestSession_FinishedRunDiscardedByMutation(t *testing.T) {
	s, sched := newSession(t, builder.Complete(3))
	require.NoError(t, s.Start(context.Background(), controller.LasVegas, controller.PaceFast))
	sched.Fire()
	require.Equal(t, controller.Finished, s.State())
	require.Len(t, s.Graph().Colors(), 3)

	_, err := s.AddVertex(0, 0)
	require.NoError(t, err)
	require.Equal(t, controller.NotStarted, s.State())
	require.Empty(t, s.Graph().Colors())
}

// TestSession_Restart discards the old run and stops its cadence.
func TestSession_Restart(t *testing.T) {
	s, sched := newSession(t, builder.Cycle(6))
	events, unsubscribe := s.Subscribe(16)
	defer unsubscribe()

	require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceFast))
	sched.FireN(2)
	require.NoError(t, s.Start(context.Background(), controller.LasVegas, controller.PaceSlow))
	require.Equal(t, 1, sched.Active())

	evs := drain(events)
	require.Equal(t, []controller.EventKind{
		controller.EventStarted, controller.EventTick, controller.EventTick,
		controller.EventDiscarded, controller.EventStarted,
	}, kinds(evs))
	require.Equal(t, controller.ReasonRestarted, evs[3].Reason)
	require.Equal(t, uint64(1), evs[3].Run)
	require.Equal(t, uint64(2), evs[4].Run)
	require.Equal(t, controller.LasVegas, evs[4].Algorithm)
	require.Empty(t, s.Graph().Colors(), "a new run starts uncolored")
}

func TestSession_Cancel(t *testing.T) {
	s, sched := newSession(t, builder.Cycle(4))
	s.Cancel() // no run: no-op
	_, ok := s.Current()
	require.False(t, ok)

	require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceFast))
	sched.Fire()
	s.Cancel()
	require.Equal(t, controller.NotStarted, s.State())
	require.Zero(t, sched.Active())
	ev, _ := s.Current()
	require.Equal(t, controller.ReasonCanceled, ev.Reason)
}

// TestSession_ContextCancel discards the run when its context ends.
func TestSession_ContextCancel(t *testing.T) {
	s, sched := newSession(t, builder.Cycle(4))
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx, controller.MonteCarlo, controller.PaceFast))

	cancel()
	require.Eventually(t, func() bool { return s.State() == controller.NotStarted },
		time.Second, time.Millisecond)
	require.Zero(t, sched.Active())
	ev, _ := s.Current()
	require.Equal(t, controller.ReasonContextDone, ev.Reason)
}

// TestSession_ContextCancelAfterFinish leaves a finished run alone.
func TestSession_ContextCancelAfterFinish(t *testing.T) {
	s, sched := newSession(t, builder.Complete(3))
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx, controller.LasVegas, controller.PaceFast))
	sched.Fire()
	require.Equal(t, controller.Finished, s.State())

	cancel()
	require.Never(t, func() bool { return s.State() != controller.Finished },
		20*time.Millisecond, time.Millisecond)
}

// TestSession_ElapsedExcludesPauses uses a fake clock.
func TestSession_ElapsedExcludesPauses(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s, _ := newSession(t, builder.Cycle(4), controller.WithClock(clock))

	require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceFast))
	now = now.Add(2 * time.Second)
	require.Equal(t, 2*time.Second, s.Stats().Elapsed)

	require.NoError(t, s.Pause())
	now = now.Add(10 * time.Second)
	require.Equal(t, 2*time.Second, s.Stats().Elapsed)

	require.NoError(t, s.Resume())
	now = now.Add(time.Second)
	require.Equal(t, 3*time.Second, s.Stats().Elapsed)
}

// TestSession_SlowSubscriberDrops never blocks the publisher.
func TestSession_SlowSubscriberDrops(t *testing.T) {
	s, sched := newSession(t, builder.Cycle(5),
		controller.WithSamplerOptions(coloring.WithIterations(10)))
	_, unsubscribeSlow := s.Subscribe(0)
	fast, unsubscribeFast := s.Subscribe(64)
	defer unsubscribeFast()

	require.NoError(t, s.Start(context.Background(), controller.MonteCarlo, controller.PaceFast))
	sched.FireN(100)

	// Started + 10 ticks + Finished, all missed by the unbuffered subscriber.
	require.Equal(t, uint64(12), s.Dropped())
	require.Len(t, drain(fast), 12)

	unsubscribeSlow()
	unsubscribeSlow()
	_, err := s.AddVertex(0, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(12), s.Dropped(), "unsubscribed channels receive nothing")
}

func TestSession_GenerateRandom(t *testing.T) {
	s, _ := newSession(t, builder.Cycle(4))

	require.ErrorIs(t, s.GenerateRandom(controller.DefaultMinRandomVertices-1), controller.ErrRandomSize)
	require.ErrorIs(t, s.GenerateRandom(core.DefaultMaxVertices+1), controller.ErrRandomSize)

	require.NoError(t, s.GenerateRandom(80))
	g := s.Graph()
	require.Equal(t, 80, g.VertexCount())
	require.Len(t, bfs.Components(g.Snapshot()), 1)
	for _, v := range g.Vertices() {
		require.True(t, v.X >= 0 && v.X <= 1 && v.Y >= 0 && v.Y <= 1, "vertex %d outside unit square", v.ID)
	}
}

// TestSession_GenerateRandomSeeded reproduces the same graph for one seed.
func TestSession_GenerateRandomSeeded(t *testing.T) {
	a, _ := newSession(t, builder.Path(2), controller.WithMinRandomVertices(5))
	b, _ := newSession(t, builder.Path(2), controller.WithMinRandomVertices(5))

	require.NoError(t, a.GenerateRandom(12))
	require.NoError(t, b.GenerateRandom(12))
	require.Equal(t, a.Graph().Edges(), b.Graph().Edges())
}
