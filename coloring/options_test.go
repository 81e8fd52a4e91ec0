package coloring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/coloring"
)

// TestConstructors_RejectBadOptions verifies fail-fast construction.
func TestConstructors_RejectBadOptions(t *testing.T) {
	s := cycle(3)

	bad := []struct {
		name string
		opt  coloring.Option
	}{
		{"negative iterations", coloring.WithIterations(-1)},
		{"probability below 0", coloring.WithTieAcceptProbability(-0.1)},
		{"probability above 1", coloring.WithTieAcceptProbability(1.5)},
		{"probability NaN", coloring.WithTieAcceptProbability(math.NaN())},
		{"unknown mode", coloring.WithMode("forever")},
		{"zero attempts", coloring.WithMaxAttempts(0)},
		{"empty palette", coloring.WithPalette()},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coloring.NewMonteCarlo(s, tc.opt)
			require.ErrorIs(t, err, coloring.ErrOptionViolation)
			_, err = coloring.NewLasVegas(s, tc.opt)
			require.ErrorIs(t, err, coloring.ErrOptionViolation)
		})
	}
}

// TestConstructors_NilSnapshot rejects a missing graph.
func TestConstructors_NilSnapshot(t *testing.T) {
	_, err := coloring.NewMonteCarlo(nil)
	require.ErrorIs(t, err, coloring.ErrNilSnapshot)
	_, err = coloring.NewLasVegas(nil)
	require.ErrorIs(t, err, coloring.ErrNilSnapshot)
}

// TestConstructors_Defaults checks documented budgets.
func TestConstructors_Defaults(t *testing.T) {
	s := cycle(3)
	mc, err := coloring.NewMonteCarlo(s, nil) // nil options are skipped
	require.NoError(t, err)
	require.Equal(t, coloring.DefaultIterations, mc.Budget())

	lv, err := coloring.NewLasVegas(s)
	require.NoError(t, err)
	require.Equal(t, coloring.DefaultMaxAttempts, lv.Budget())

	mc, err = coloring.NewMonteCarlo(s, coloring.WithIterations(0))
	require.NoError(t, err, "a zero budget is valid")
	require.Zero(t, mc.Budget())
}

// TestParseMode accepts both modes case-insensitively.
func TestParseMode(t *testing.T) {
	m, err := coloring.ParseMode(" Stop-On-Valid ")
	require.NoError(t, err)
	require.Equal(t, coloring.StopOnValid, m)

	m, err = coloring.ParseMode("iteration-limited")
	require.NoError(t, err)
	require.Equal(t, coloring.IterationLimited, m)

	_, err = coloring.ParseMode("fastest")
	require.ErrorIs(t, err, coloring.ErrOptionViolation)
}

// TestDeriveSeed is stable and stream-sensitive.
func TestDeriveSeed(t *testing.T) {
	require.Equal(t, coloring.DeriveSeed(42, 1), coloring.DeriveSeed(42, 1))
	require.NotEqual(t, coloring.DeriveSeed(42, 1), coloring.DeriveSeed(42, 2))
	require.NotEqual(t, coloring.DeriveSeed(42, 1), coloring.DeriveSeed(43, 1))
}
