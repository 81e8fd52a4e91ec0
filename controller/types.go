package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
)

// Sentinel errors.
var (
	// ErrInvalidTransition is returned by Pause, Resume and Advance when the
	// session is not in the state they require.
	ErrInvalidTransition = errors.New("controller: invalid state transition")

	// ErrNilGraph is returned by NewSession for a nil graph.
	ErrNilGraph = errors.New("controller: graph is nil")

	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm.
	ErrUnknownAlgorithm = errors.New("controller: unknown algorithm")

	// ErrUnknownPace is returned for an unrecognized Pace.
	ErrUnknownPace = errors.New("controller: unknown pace")

	// ErrOptionViolation is returned by NewSession for an invalid Option.
	ErrOptionViolation = errors.New("controller: invalid option supplied")

	// ErrRandomSize is returned by GenerateRandom for an out-of-range size.
	ErrRandomSize = errors.New("controller: random graph size out of range")
)

// State of a Session.
type State int

const (
	NotStarted State = iota
	Running
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Algorithm selects the sampler a run uses.
type Algorithm string

const (
	MonteCarlo Algorithm = "montecarlo"
	LasVegas   Algorithm = "lasvegas"
)

// ParseAlgorithm accepts "montecarlo"/"monte-carlo"/"mc" and
// "lasvegas"/"las-vegas"/"lv", case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "montecarlo", "monte-carlo", "mc":
		return MonteCarlo, nil
	case "lasvegas", "las-vegas", "lv":
		return LasVegas, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// NewSampler builds the sampler of algorithm a over snap.
func (a Algorithm) NewSampler(snap *core.Snapshot, opts ...coloring.Option) (coloring.Sampler, error) {
	switch a {
	case MonteCarlo:
		return coloring.NewMonteCarlo(snap, opts...)
	case LasVegas:
		return coloring.NewLasVegas(snap, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
}

// Pace selects the tick interval of a run.
type Pace string

const (
	PaceFast Pace = "fast"
	PaceSlow Pace = "slow"
)

// Default tick intervals.
const (
	DefaultFastInterval = 15 * time.Millisecond
	DefaultSlowInterval = 250 * time.Millisecond
)

// ParsePace accepts "fast" and "slow", case-insensitively.
func ParsePace(s string) (Pace, error) {
	switch p := Pace(strings.ToLower(strings.TrimSpace(s))); p {
	case PaceFast, PaceSlow:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPace, s)
	}
}

// Stats are the sampler statistics plus running time. Elapsed excludes
// time spent paused.
type Stats struct {
	coloring.Stats
	Elapsed time.Duration
}

// EventKind classifies an Event.
type EventKind int

const (
	EventStarted EventKind = iota + 1
	EventTick
	EventPaused
	EventResumed
	EventFinished
	EventDiscarded
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventTick:
		return "tick"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventFinished:
		return "finished"
	case EventDiscarded:
		return "discarded"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a snapshot of a run published to subscribers.
type Event struct {
	Kind      EventKind
	Run       uint64
	Algorithm Algorithm
	State     State

	// Coloring and ConflictEdges are the best-known state; read-only.
	Coloring      coloring.Coloring
	ConflictEdges []core.EdgePair
	Stats         Stats
	Valid         bool

	// Reason explains an EventDiscarded.
	Reason string
}
