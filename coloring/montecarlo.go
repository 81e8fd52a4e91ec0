// File: montecarlo.go
// Role: Fixed-budget random sampling of complete colorings.
// Determinism:
//   - Given the same snapshot, options and seed, the sequence of samples and
//     tie decisions is identical.
// Concurrency:
//   - A MonteCarlo is not safe for concurrent use; the run controller
//     serializes Step calls.

package coloring

import (
	"math/rand"

	"github.com/katalvlaran/lvcolor/core"
)

// MonteCarlo samples uniformly random colorings and keeps the best.
type MonteCarlo struct {
	snap    *core.Snapshot
	palette Palette
	rng     *rand.Rand
	mode    Mode
	pTie    float64
	t       tracker
}

// NewMonteCarlo prepares a sampler over s.
//
// Recognized options: WithIterations, WithMode, WithTieAcceptProbability,
// WithPalette, WithRand, WithSeed.
//
// Errors:
//   - ErrNilSnapshot if s is nil.
//   - ErrOptionViolation for invalid options.
func NewMonteCarlo(s *core.Snapshot, opts ...Option) (*MonteCarlo, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return &MonteCarlo{
		snap:    s,
		palette: o.Palette,
		rng:     o.Rand,
		mode:    o.Mode,
		pTie:    o.TieAcceptProbability,
		t:       newTracker(o.Iterations),
	}, nil
}

// Step draws one sample unless the sampler is finished.
//
// Steps:
//  1. Assign every vertex a palette color uniformly at random.
//  2. Evaluate it and fold its conflict count into the statistics.
//  3. Replace the incumbent if strictly better, or on a tie with
//     probability TieAcceptProbability.
//  4. In StopOnValid mode a conflict-free sample finishes the run.
//
// An empty graph has a single, trivially valid coloring. In IterationLimited
// mode the first step spends the remaining budget on it at once; in
// StopOnValid mode it counts as one attempt.
//
// Complexity: O(V+E).
func (m *MonteCarlo) Step() StepResult {
	if m.t.exhausted() {
		return m.t.result()
	}
	if m.snap.Order() == 0 && m.mode == IterationLimited {
		m.t.recordN(m.t.budget-m.t.attempts, 0, true)
		m.t.setBest(Coloring{}, []core.EdgePair{}, 0, true)

		return m.t.result()
	}

	c := m.sample()
	ev := Evaluate(m.snap, c)
	m.t.record(ev.Conflicts, ev.Conflicts == 0)

	switch {
	case ev.Conflicts < m.t.bestConflicts:
		m.t.setBest(c, ev.ConflictEdges, ev.Conflicts, ev.Conflicts == 0)
	case ev.Conflicts == m.t.bestConflicts && m.rng.Float64() < m.pTie:
		m.t.setBest(c, ev.ConflictEdges, ev.Conflicts, ev.Conflicts == 0)
	}

	if m.mode == StopOnValid && ev.Conflicts == 0 {
		m.t.finished = true
	}

	return m.t.result()
}

// Run steps until the sampler is done.
func (m *MonteCarlo) Run() RunResult { return run(m.Step) }

// Finished reports whether the sampler reached its terminal state.
func (m *MonteCarlo) Finished() bool { return m.t.exhausted() }

// Budget returns the iteration budget.
func (m *MonteCarlo) Budget() int { return m.t.budget }

// sample draws a complete coloring.
func (m *MonteCarlo) sample() Coloring {
	ids := m.snap.VertexIDs()
	c := make(Coloring, len(ids))
	for _, id := range ids {
		c[id] = m.palette[m.rng.Intn(len(m.palette))]
	}

	return c
}
