// File: lasvegas.go
// Role: Randomized greedy construction with restart on dead ends.
// Determinism:
//   - Given the same snapshot, options and seed, the vertex orders and color
//     picks are identical.
// Concurrency:
//   - A LasVegas is not safe for concurrent use.

package coloring

import (
	"math/rand"

	"github.com/katalvlaran/lvcolor/core"
)

// LasVegas repeats randomized greedy attempts until one yields a valid
// coloring or MaxAttempts is spent.
type LasVegas struct {
	snap    *core.Snapshot
	palette Palette
	rng     *rand.Rand
	t       tracker

	// scratch reused across attempts
	order      []core.VertexID
	used       map[Color]struct{}
	candidates []Color
}

// NewLasVegas prepares a sampler over s.
//
// Recognized options: WithMaxAttempts, WithPalette, WithRand, WithSeed.
//
// Errors:
//   - ErrNilSnapshot if s is nil.
//   - ErrOptionViolation for invalid options.
func NewLasVegas(s *core.Snapshot, opts ...Option) (*LasVegas, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return &LasVegas{
		snap:       s,
		palette:    o.Palette,
		rng:        o.Rand,
		t:          newTracker(o.MaxAttempts),
		order:      make([]core.VertexID, s.Order()),
		used:       make(map[Color]struct{}, len(o.Palette)),
		candidates: make([]Color, 0, len(o.Palette)),
	}, nil
}

// Step performs one greedy attempt unless the sampler is finished.
//
// A failed attempt records a conflict signal of 1 and becomes the best-known
// state only while no attempt has done better; its coloring is the partial
// assignment made before the dead end and is never Valid. A completed
// attempt is re-evaluated; when it has no conflicts the run finishes.
//
// Complexity: O(V+E).
func (l *LasVegas) Step() StepResult {
	if l.t.exhausted() {
		return l.t.result()
	}

	colors, ok := l.attempt()
	if ok {
		ev := Evaluate(l.snap, colors)
		valid := ev.Conflicts == 0
		l.t.record(ev.Conflicts, valid)
		if ev.Conflicts < l.t.bestConflicts || valid {
			l.t.setBest(colors, ev.ConflictEdges, ev.Conflicts, valid)
		}
		if valid {
			l.t.finished = true
		}

		return l.t.result()
	}

	l.t.record(failedAttemptConflicts, false)
	if failedAttemptConflicts < l.t.bestConflicts {
		l.t.setBest(colors, []core.EdgePair{}, failedAttemptConflicts, false)
	}

	return l.t.result()
}

// Run steps until the sampler is done.
func (l *LasVegas) Run() RunResult { return run(l.Step) }

// Finished reports whether the sampler reached its terminal state.
func (l *LasVegas) Finished() bool { return l.t.exhausted() }

// Budget returns the attempt budget.
func (l *LasVegas) Budget() int { return l.t.budget }

// attempt colors the vertices in a fresh random order. It returns false, with
// the partial coloring, when some vertex has every palette color taken by its
// already-colored neighbors.
func (l *LasVegas) attempt() (Coloring, bool) {
	copy(l.order, l.snap.VertexIDs())
	shuffleIDsInPlace(l.order, l.rng)

	colors := make(Coloring, len(l.order))
	for _, v := range l.order {
		clear(l.used)
		for _, nb := range l.snap.Neighbors(v) {
			if c, ok := colors[nb]; ok {
				l.used[c] = struct{}{}
			}
		}

		l.candidates = l.candidates[:0]
		for _, c := range l.palette {
			if _, taken := l.used[c]; !taken {
				l.candidates = append(l.candidates, c)
			}
		}
		if len(l.candidates) == 0 {
			return colors, false
		}
		colors[v] = l.candidates[l.rng.Intn(len(l.candidates))]
	}

	return colors, true
}
