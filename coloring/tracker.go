package coloring

import "github.com/katalvlaran/lvcolor/core"

// tracker accumulates statistics and the best-known coloring for a sampler.
type tracker struct {
	budget      int
	attempts    int
	conflictSum int
	successes   int
	finished    bool

	best          Coloring
	bestEdges     []core.EdgePair
	bestConflicts int
	bestValid     bool
}

func newTracker(budget int) tracker {
	return tracker{budget: budget, bestConflicts: unknownConflicts}
}

// exhausted reports whether no further attempt may be made.
func (t *tracker) exhausted() bool {
	return t.finished || t.attempts >= t.budget
}

// record counts one attempt with the given conflict signal.
func (t *tracker) record(conflicts int, success bool) {
	t.recordN(1, conflicts, success)
}

// recordN counts n identical attempts.
func (t *tracker) recordN(n, conflicts int, success bool) {
	t.attempts += n
	t.conflictSum += n * conflicts
	if success {
		t.successes += n
	}
}

// setBest replaces the best-known state.
func (t *tracker) setBest(c Coloring, edges []core.EdgePair, conflicts int, valid bool) {
	t.best = c
	t.bestEdges = edges
	t.bestConflicts = conflicts
	t.bestValid = valid
}

func (t *tracker) stats() Stats {
	st := Stats{Attempts: t.attempts, Progress: 1}
	if t.bestConflicts != unknownConflicts {
		st.Conflicts = t.bestConflicts
	}
	if t.attempts > 0 {
		st.MeanConflicts = float64(t.conflictSum) / float64(t.attempts)
		st.SuccessRate = float64(t.successes) / float64(t.attempts)
	}
	if t.budget > 0 && t.attempts < t.budget {
		st.Progress = float64(t.attempts) / float64(t.budget)
	}

	return st
}

// result marks the tracker finished once exhausted and reports its state.
func (t *tracker) result() StepResult {
	if t.attempts >= t.budget {
		t.finished = true
	}
	res := StepResult{
		Done:          t.finished,
		Coloring:      t.best,
		ConflictEdges: t.bestEdges,
		Stats:         t.stats(),
		Valid:         t.bestValid,
	}
	if res.Coloring == nil {
		res.Coloring = Coloring{}
	}
	if res.ConflictEdges == nil {
		res.ConflictEdges = []core.EdgePair{}
	}

	return res
}

// run steps until done and converts the final state.
func run(step func() StepResult) RunResult {
	var res StepResult
	for res = step(); !res.Done; res = step() {
	}

	return RunResult{
		Coloring:      res.Coloring,
		ConflictEdges: res.ConflictEdges,
		Valid:         res.Valid,
		Summary: Summary{
			Attempts:      res.Stats.Attempts,
			Conflicts:     res.Stats.Conflicts,
			MeanConflicts: res.Stats.MeanConflicts,
			SuccessRate:   res.Stats.SuccessRate,
		},
	}
}
