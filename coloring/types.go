package coloring

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvcolor/core"
)

// Sentinel errors for sampler construction.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")

	// ErrNilSnapshot is returned if a nil graph snapshot is passed.
	ErrNilSnapshot = errors.New("coloring: graph snapshot is nil")
)

// Mode selects the Monte Carlo stopping rule.
type Mode string

const (
	// IterationLimited spends the whole iteration budget.
	IterationLimited Mode = "iteration-limited"

	// StopOnValid stops at the first conflict-free sample (or the budget).
	StopOnValid Mode = "stop-on-valid"
)

// ParseMode maps a textual mode (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case IterationLimited, StopOnValid:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// Defaults.
const (
	DefaultIterations           = 1000
	DefaultMaxAttempts          = 20000
	DefaultTieAcceptProbability = 0.3
	DefaultMode                 = IterationLimited
)

// failedAttemptConflicts is the conflict signal recorded for a Las Vegas
// attempt that aborted on a vertex with no legal color.
const failedAttemptConflicts = 1

// unknownConflicts marks a best-known state that has never been set (+∞).
const unknownConflicts = math.MaxInt

// Stats are the accumulated run statistics reported on every step.
type Stats struct {
	Attempts      int
	Conflicts     int
	MeanConflicts float64
	SuccessRate   float64
	Progress      float64
}

// Summary is the statistics block of a completed run (no progress).
type Summary struct {
	Attempts      int
	Conflicts     int
	MeanConflicts float64
	SuccessRate   float64
}

// StepResult is the best-known state after one Step.
type StepResult struct {
	// Done is true once the sampler is finished or its budget is spent.
	Done bool

	// Coloring is the best-known coloring; empty when none is known.
	Coloring Coloring

	// ConflictEdges are the conflicting edges of Coloring.
	ConflictEdges []core.EdgePair

	Stats Stats

	// Valid is true iff a complete conflict-free coloring has been found.
	// A false Valid with Done set is a best-effort result.
	Valid bool
}

// RunResult is the terminal state returned by Run.
type RunResult struct {
	Coloring      Coloring
	ConflictEdges []core.EdgePair
	Summary       Summary
	Valid         bool
}

// Sampler is the step protocol shared by MonteCarlo and LasVegas.
type Sampler interface {
	// Step performs at most one sample/attempt and reports the best-known state.
	Step() StepResult
	// Run steps until done.
	Run() RunResult
	// Finished reports whether the sampler reached its terminal state.
	Finished() bool
	// Budget is the iteration/attempt budget.
	Budget() int
}

// Option configures a sampler via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds sampler parameters. Each sampler reads only the fields it uses.
type Options struct {
	// Iterations is the Monte Carlo budget (>= 0).
	Iterations int

	// Mode is the Monte Carlo stopping rule.
	Mode Mode

	// TieAcceptProbability is the chance a Monte Carlo sample that ties the
	// incumbent replaces it. In [0,1].
	TieAcceptProbability float64

	// MaxAttempts is the Las Vegas budget (> 0).
	MaxAttempts int

	// Palette is the color set; defaults to DefaultPalette().
	Palette Palette

	// Rand is the random source; nil means a time-seeded source.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with documented defaults.
func DefaultOptions() Options {
	return Options{
		Iterations:           DefaultIterations,
		Mode:                 DefaultMode,
		TieAcceptProbability: DefaultTieAcceptProbability,
		MaxAttempts:          DefaultMaxAttempts,
		Palette:              DefaultPalette(),
	}
}
