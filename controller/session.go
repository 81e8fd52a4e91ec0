// File: session.go
// Role: Run Controller. Owns one graph and at most one active coloring run.
// Determinism:
//   - With WithSeed and a ManualScheduler, the sequence of events of a session
//     is fully reproducible.
// Concurrency:
//   - All methods are safe for concurrent use. Ticks, public calls and
//     context cancellation are serialized by one mutex; a step in flight
//     always completes before Pause, Cancel or a mutation takes effect.

package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
)

// DefaultMinRandomVertices is the smallest size GenerateRandom accepts by
// default; the upper bound is the graph's vertex cap.
const DefaultMinRandomVertices = 60

// randomGraphStream offsets GenerateRandom seed streams from run streams.
const randomGraphStream uint64 = 1 << 63

// Discard reasons carried by EventDiscarded.
const (
	ReasonRestarted    = "restarted"
	ReasonCanceled     = "canceled"
	ReasonGraphChanged = "graph changed"
	ReasonContextDone  = "context done"
)

// Session is the explicit owner of a graph and its coloring run.
type Session struct {
	mu     sync.Mutex
	graph  *core.Graph
	cfg    sessionConfig
	state  State
	run    *run
	runs   uint64
	builds uint64
	events hub
}

// run is the state of one Start.
type run struct {
	id        uint64
	gen       uint64
	algorithm Algorithm
	pace      Pace
	snap      *core.Snapshot
	sampler   coloring.Sampler
	cadence   Cadence
	since     time.Time
	elapsed   time.Duration
	last      coloring.StepResult
	log       logrus.FieldLogger
	unwatch   func() bool
}

// NewSession creates a session over g.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrOptionViolation for invalid options.
func NewSession(g *core.Graph, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := defaultSessionConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Session{graph: g, cfg: cfg}, nil
}

// Graph returns the graph the session owns. Structural mutations made on it
// directly discard the active run at its next tick.
func (s *Session) Graph() *core.Graph { return s.graph }

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Stats returns the statistics of the current run (zero when none).
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == nil {
		return Stats{}
	}

	return Stats{Stats: s.run.last.Stats, Elapsed: s.elapsedLocked(s.run)}
}

// Current returns the most recently published event.
func (s *Session) Current() (Event, bool) { return s.events.latest() }

// Subscribe registers a subscriber with the given channel buffer. Events that
// do not fit are dropped for that subscriber. The returned function
// unsubscribes and closes the channel; it is safe to call more than once.
func (s *Session) Subscribe(buffer int) (<-chan Event, func()) {
	return s.events.subscribe(buffer)
}

// Dropped returns the number of events lost to full subscriber buffers.
func (s *Session) Dropped() uint64 { return s.events.dropped.Load() }

// Start begins a new run, discarding any existing one. The run is discarded
// when ctx is done.
//
// Steps:
//  1. Validate the algorithm and pace; reject a done ctx.
//  2. Discard the previous run (stops its cadence).
//  3. Snapshot the graph and build the sampler.
//  4. Clear colors, record the start time, enter Running, start the cadence.
//
// Errors:
//   - ErrUnknownAlgorithm, ErrUnknownPace, the ctx error, or a sampler
//     construction error (coloring.ErrOptionViolation).
func (s *Session) Start(ctx context.Context, alg Algorithm, pace Pace) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if alg != MonteCarlo && alg != LasVegas {
		return fmt.Errorf("Start: %w: %q", ErrUnknownAlgorithm, string(alg))
	}
	interval, err := s.interval(pace)
	if err != nil {
		return fmt.Errorf("Start: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return fmt.Errorf("Start: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.discardLocked(ReasonRestarted)

	id := s.runs + 1
	snap := s.graph.Snapshot()
	opts := append([]coloring.Option(nil), s.cfg.samplerOpts...)
	if s.cfg.seeded {
		opts = append(opts, coloring.WithSeed(coloring.DeriveSeed(s.cfg.seed, id)))
	}
	sampler, err := alg.NewSampler(snap, opts...)
	if err != nil {
		return fmt.Errorf("Start(%s): %w", alg, err)
	}
	s.runs = id

	log := s.cfg.logger
	if log == nil {
		log = Logger(ctx)
	}
	r := &run{
		id:        id,
		algorithm: alg,
		pace:      pace,
		snap:      snap,
		sampler:   sampler,
		log:       log.WithFields(logrus.Fields{"run": id, "algorithm": alg, "pace": pace}),
	}

	s.graph.ClearColors()
	s.run = r
	s.state = Running
	r.since = s.cfg.now()
	s.scheduleLocked(r, interval)
	r.unwatch = context.AfterFunc(ctx, func() { s.contextDone(id) })

	r.log.Infof("run started: %d vertices, %d edges, budget %d", snap.Order(), snap.Size(), sampler.Budget())
	s.publishLocked(EventStarted, r)

	return nil
}

// Pause stops the cadence of a Running run. Sampler state is kept.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Running {
		return fmt.Errorf("Pause from %s: %w", s.state, ErrInvalidTransition)
	}
	r := s.run
	r.cadence.Stop()
	r.elapsed += s.cfg.now().Sub(r.since)
	s.state = Paused

	r.log.Debugf("run paused at %d attempts", r.last.Stats.Attempts)
	s.publishLocked(EventPaused, r)

	return nil
}

// Resume restarts the cadence of a Paused run; the sampler continues from
// where it stopped.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Paused {
		return fmt.Errorf("Resume from %s: %w", s.state, ErrInvalidTransition)
	}
	r := s.run
	interval, err := s.interval(r.pace)
	if err != nil {
		return fmt.Errorf("Resume: %w", err)
	}
	r.since = s.cfg.now()
	s.state = Running
	s.scheduleLocked(r, interval)

	r.log.Debugf("run resumed at %d attempts", r.last.Stats.Attempts)
	s.publishLocked(EventResumed, r)

	return nil
}

// Advance performs a single step of a Paused run, as one tick would, and
// stays Paused unless the step finishes the run.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Paused {
		return fmt.Errorf("Advance from %s: %w", s.state, ErrInvalidTransition)
	}
	s.stepLocked(s.run)

	return nil
}

// Cancel discards the current run, if any.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.discardLocked(ReasonCanceled)
}

// tick is the cadence callback of generation gen of run id.
func (s *Session) tick(id, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.run
	if r == nil || r.id != id || r.gen != gen || s.state != Running {
		return
	}
	s.stepLocked(r)
}

// stepLocked performs one sampler step and publishes its outcome.
func (s *Session) stepLocked(r *run) {
	if r.snap.IsStale(s.graph) {
		s.discardLocked(ReasonGraphChanged)
		return
	}

	res := r.sampler.Step()
	r.last = res
	s.graph.ApplyColoring(res.Coloring.Names())

	r.log.WithFields(logrus.Fields{
		"attempts":  res.Stats.Attempts,
		"conflicts": res.Stats.Conflicts,
	}).Trace("tick")
	s.publishLocked(EventTick, r)

	if res.Done {
		s.finishLocked(r)
	}
}

func (s *Session) finishLocked(r *run) {
	if s.state == Running {
		r.elapsed += s.cfg.now().Sub(r.since)
	}
	s.state = Finished
	r.cadence.Stop()
	r.unwatch()

	r.log.WithFields(logrus.Fields{
		"attempts":  r.last.Stats.Attempts,
		"conflicts": r.last.Stats.Conflicts,
		"valid":     r.last.Valid,
	}).Infof("run finished in %s", r.elapsed)
	s.publishLocked(EventFinished, r)
}

// discardLocked drops the current run, clears colors and returns to NotStarted.
func (s *Session) discardLocked(reason string) {
	r := s.run
	if r == nil {
		return
	}
	r.cadence.Stop()
	r.unwatch()
	s.run = nil
	s.state = NotStarted
	s.graph.ClearColors()

	r.log.Infof("run discarded: %s", reason)
	s.events.publish(Event{
		Kind:      EventDiscarded,
		Run:       r.id,
		Algorithm: r.algorithm,
		State:     NotStarted,
		Reason:    reason,
	})
}

// contextDone discards run id if it is still active.
func (s *Session) contextDone(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != nil && s.run.id == id && (s.state == Running || s.state == Paused) {
		s.discardLocked(ReasonContextDone)
	}
}

// scheduleLocked starts a new cadence generation for r.
func (s *Session) scheduleLocked(r *run, interval time.Duration) {
	r.gen++
	id, gen := r.id, r.gen
	r.cadence = s.cfg.scheduler.Schedule(interval, func() { s.tick(id, gen) })
}

func (s *Session) publishLocked(kind EventKind, r *run) {
	s.events.publish(Event{
		Kind:          kind,
		Run:           r.id,
		Algorithm:     r.algorithm,
		State:         s.state,
		Coloring:      r.last.Coloring,
		ConflictEdges: r.last.ConflictEdges,
		Stats:         Stats{Stats: r.last.Stats, Elapsed: s.elapsedLocked(r)},
		Valid:         r.last.Valid,
	})
}

func (s *Session) elapsedLocked(r *run) time.Duration {
	if s.state == Running {
		return r.elapsed + s.cfg.now().Sub(r.since)
	}

	return r.elapsed
}

func (s *Session) interval(p Pace) (time.Duration, error) {
	switch p {
	case PaceFast:
		return s.cfg.fast, nil
	case PaceSlow:
		return s.cfg.slow, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPace, string(p))
	}
}
