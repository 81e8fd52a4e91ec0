package controller

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvcolor/coloring"
)

// Option configures a Session. An invalid Option is recorded and surfaced as
// ErrOptionViolation by NewSession.
type Option func(*sessionConfig)

type sessionConfig struct {
	scheduler   Scheduler
	fast, slow  time.Duration
	logger      logrus.FieldLogger
	now         func() time.Time
	samplerOpts []coloring.Option
	seed        int64
	seeded      bool
	minRandom   int

	err error
}

func defaultSessionConfig() sessionConfig {
	return sessionConfig{
		scheduler: TickerScheduler{},
		fast:      DefaultFastInterval,
		slow:      DefaultSlowInterval,
		now:       time.Now,
		minRandom: DefaultMinRandomVertices,
	}
}

// WithScheduler sets the pacing source. A nil scheduler is ignored.
func WithScheduler(s Scheduler) Option {
	return func(c *sessionConfig) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithPaces sets the tick intervals of PaceFast and PaceSlow. Both must be
// positive.
func WithPaces(fast, slow time.Duration) Option {
	return func(c *sessionConfig) {
		if fast <= 0 || slow <= 0 {
			c.err = fmt.Errorf("%w: pace intervals must be positive (fast=%s, slow=%s)", ErrOptionViolation, fast, slow)
			return
		}
		c.fast, c.slow = fast, slow
	}
}

// WithLogger sets the session logger, overriding any context logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *sessionConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now for elapsed-time accounting.
func WithClock(now func() time.Time) Option {
	return func(c *sessionConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// WithSamplerOptions passes options to every sampler the session builds.
// Options that do not apply to the chosen algorithm are ignored by it.
func WithSamplerOptions(opts ...coloring.Option) Option {
	return func(c *sessionConfig) {
		c.samplerOpts = append(c.samplerOpts, opts...)
	}
}

// WithSeed makes runs reproducible: run k draws from
// coloring.DeriveSeed(seed, k), and GenerateRandom likewise.
func WithSeed(seed int64) Option {
	return func(c *sessionConfig) {
		c.seed, c.seeded = seed, true
	}
}

// WithMinRandomVertices sets the lower bound GenerateRandom accepts (>= 1).
func WithMinRandomVertices(n int) Option {
	return func(c *sessionConfig) {
		if n < 1 {
			c.err = fmt.Errorf("%w: min random vertices must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		c.minRandom = n
	}
}
