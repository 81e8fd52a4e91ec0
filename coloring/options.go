package coloring

import (
	"fmt"
	"math"
	"math/rand"
)

// WithIterations sets the Monte Carlo budget. Negative values are rejected.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: iterations must be >= 0, got %d", ErrOptionViolation, n))
			return
		}
		o.Iterations = n
	}
}

// WithMode sets the Monte Carlo stopping rule.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != IterationLimited && m != StopOnValid {
			o.fail(fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, m))
			return
		}
		o.Mode = m
	}
}

// WithTieAcceptProbability sets the chance that a tying Monte Carlo sample
// replaces the incumbent. Must lie in [0,1].
func WithTieAcceptProbability(p float64) Option {
	return func(o *Options) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			o.fail(fmt.Errorf("%w: tie probability must be in [0,1], got %v", ErrOptionViolation, p))
			return
		}
		o.TieAcceptProbability = p
	}
}

// WithMaxAttempts sets the Las Vegas budget. Must be positive.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail(fmt.Errorf("%w: max attempts must be > 0, got %d", ErrOptionViolation, n))
			return
		}
		o.MaxAttempts = n
	}
}

// WithPalette replaces the color set.
func WithPalette(colors ...Color) Option {
	return func(o *Options) {
		p := append(Palette(nil), colors...)
		if err := p.Validate(); err != nil {
			o.fail(err)
			return
		}
		o.Palette = p
	}
}

// WithRand injects the random source. A nil source is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed installs a deterministic source built from seed (0 maps to a
// fixed default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// fail records the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// resolveOptions applies opts over DefaultOptions and fills the random source.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if o.Rand == nil {
		o.Rand = entropyRNG()
	}

	return o, nil
}
