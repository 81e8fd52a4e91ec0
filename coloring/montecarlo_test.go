package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
)

// TestMonteCarlo_IterationLimitedSpendsBudget keeps sampling after a valid
// coloring has been seen.
func TestMonteCarlo_IterationLimitedSpendsBudget(t *testing.T) {
	edge := core.NewSnapshot([]core.VertexID{1, 2}, []core.Edge{{Source: 1, Target: 2}})
	mc, err := coloring.NewMonteCarlo(edge, coloring.WithIterations(200), coloring.WithSeed(7))
	require.NoError(t, err)

	res := mc.Run()
	require.Equal(t, 200, res.Summary.Attempts)
	require.True(t, res.Valid)
	require.Zero(t, res.Summary.Conflicts)
	require.Greater(t, res.Summary.SuccessRate, 0.0)
	require.Less(t, res.Summary.SuccessRate, 1.0)
	require.True(t, mc.Finished())
}

// TestMonteCarlo_StopOnValid finishes at the first conflict-free sample.
func TestMonteCarlo_StopOnValid(t *testing.T) {
	edge := core.NewSnapshot([]core.VertexID{1, 2}, []core.Edge{{Source: 1, Target: 2}})
	mc, err := coloring.NewMonteCarlo(edge,
		coloring.WithIterations(1000),
		coloring.WithMode(coloring.StopOnValid),
		coloring.WithSeed(11),
	)
	require.NoError(t, err)

	res := mc.Run()
	require.True(t, res.Valid)
	require.Less(t, res.Summary.Attempts, 1000)
	require.InDelta(t, 1/float64(res.Summary.Attempts), res.Summary.SuccessRate, 1e-12)
	require.Zero(t, coloring.Evaluate(edge, res.Coloring).Conflicts)
	require.True(t, res.Coloring.Complete(edge))
}

// TestMonteCarlo_ImpossibleGraph never reports a valid coloring for K4.
func TestMonteCarlo_ImpossibleGraph(t *testing.T) {
	k4 := complete(4)
	mc, err := coloring.NewMonteCarlo(k4,
		coloring.WithIterations(300),
		coloring.WithMode(coloring.StopOnValid),
		coloring.WithSeed(3),
	)
	require.NoError(t, err)

	res := mc.Run()
	require.False(t, res.Valid)
	require.Equal(t, 300, res.Summary.Attempts)
	require.GreaterOrEqual(t, res.Summary.Conflicts, 1)
	require.GreaterOrEqual(t, res.Summary.MeanConflicts, float64(res.Summary.Conflicts))
	require.Zero(t, res.Summary.SuccessRate)
	require.Len(t, res.ConflictEdges, res.Summary.Conflicts)
	require.Equal(t, coloring.Evaluate(k4, res.Coloring).Conflicts, res.Summary.Conflicts)
}

// TestMonteCarlo_ZeroBudget finishes immediately with nothing.
func TestMonteCarlo_ZeroBudget(t *testing.T) {
	mc, err := coloring.NewMonteCarlo(cycle(5), coloring.WithIterations(0), coloring.WithSeed(1))
	require.NoError(t, err)

	res := mc.Step()
	require.True(t, res.Done)
	require.Empty(t, res.Coloring)
	require.Empty(t, res.ConflictEdges)
	require.False(t, res.Valid)
	require.Equal(t, coloring.Stats{Progress: 1}, res.Stats)
}

// TestMonteCarlo_EmptyGraph finishes on the first step. Iteration-limited
// runs still account for the whole budget; stop-on-valid runs take one sample.
func TestMonteCarlo_EmptyGraph(t *testing.T) {
	empty := core.NewGraph().Snapshot()

	mc, err := coloring.NewMonteCarlo(empty, coloring.WithIterations(10), coloring.WithSeed(1))
	require.NoError(t, err)
	res := mc.Step()
	require.True(t, res.Done)
	require.True(t, res.Valid)
	require.Empty(t, res.Coloring)
	require.Equal(t, coloring.Stats{Attempts: 10, SuccessRate: 1, Progress: 1}, res.Stats)
	require.Equal(t, 10, mc.Run().Summary.Attempts)

	mc, err = coloring.NewMonteCarlo(empty,
		coloring.WithIterations(10),
		coloring.WithMode(coloring.StopOnValid),
		coloring.WithSeed(1),
	)
	require.NoError(t, err)
	res = mc.Step()
	require.True(t, res.Done)
	require.True(t, res.Valid)
	require.Equal(t, 1, res.Stats.Attempts)
	require.InDelta(t, 0.1, res.Stats.Progress, 1e-12)
}

// TestMonteCarlo_Triangle samples enough to hit a proper coloring of K3.
func TestMonteCarlo_Triangle(t *testing.T) {
	s := cycle(3)
	mc, err := coloring.NewMonteCarlo(s, coloring.WithIterations(500), coloring.WithSeed(3))
	require.NoError(t, err)

	res := mc.Run()
	require.Equal(t, 500, res.Summary.Attempts)
	require.Greater(t, res.Summary.SuccessRate, 0.0)
	require.True(t, res.Valid)
	require.True(t, res.Coloring.Complete(s))
	require.Zero(t, coloring.Evaluate(s, res.Coloring).Conflicts)
	require.Empty(t, res.ConflictEdges)
}

// TestMonteCarlo_ProgressAndIdempotentDone checks progress and post-finish steps.
func TestMonteCarlo_ProgressAndIdempotentDone(t *testing.T) {
	mc, err := coloring.NewMonteCarlo(complete(4), coloring.WithIterations(4), coloring.WithSeed(5))
	require.NoError(t, err)

	want := []float64{0.25, 0.5, 0.75, 1}
	var last coloring.StepResult
	for i, p := range want {
		last = mc.Step()
		require.Equal(t, i+1, last.Stats.Attempts)
		require.InDelta(t, p, last.Stats.Progress, 1e-12)
		require.Equal(t, i == len(want)-1, last.Done)
	}

	again := mc.Step()
	require.True(t, again.Done)
	require.Equal(t, last.Stats, again.Stats)
	require.Equal(t, last.Coloring, again.Coloring)
}

// TestMonteCarlo_BestNonIncreasing holds for any tie probability; with zero
// the incumbent is frozen across equal-conflict samples.
func TestMonteCarlo_BestNonIncreasing(t *testing.T) {
	for _, p := range []float64{0, 0.3, 1} {
		mc, err := coloring.NewMonteCarlo(complete(6),
			coloring.WithIterations(400),
			coloring.WithTieAcceptProbability(p),
			coloring.WithSeed(99),
		)
		require.NoError(t, err)

		prev := mc.Step()
		for !prev.Done {
			cur := mc.Step()
			require.LessOrEqual(t, cur.Stats.Conflicts, prev.Stats.Conflicts, "p=%v", p)
			if p == 0 && cur.Stats.Conflicts == prev.Stats.Conflicts {
				require.Equal(t, prev.Coloring, cur.Coloring, "p=0 must not replace on ties")
			}
			prev = cur
		}
	}
}

// TestMonteCarlo_SeedDeterminism reproduces a run from its seed.
func TestMonteCarlo_SeedDeterminism(t *testing.T) {
	run := func() coloring.RunResult {
		mc, err := coloring.NewMonteCarlo(complete(5), coloring.WithIterations(100), coloring.WithSeed(2024))
		require.NoError(t, err)

		return mc.Run()
	}
	require.Equal(t, run(), run())
}

// TestMonteCarlo_CustomPalette only draws palette colors.
func TestMonteCarlo_CustomPalette(t *testing.T) {
	s := cycle(6)
	mc, err := coloring.NewMonteCarlo(s, coloring.WithIterations(50), coloring.WithPalette("cyan", "magenta"), coloring.WithSeed(8))
	require.NoError(t, err)

	res := mc.Run()
	for _, c := range res.Coloring {
		require.Contains(t, []coloring.Color{"cyan", "magenta"}, c)
	}
}
