package config

import (
	"math"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/controller"
	"github.com/katalvlaran/lvcolor/core"
)

// Validate checks every field. The first failure is returned wrapping
// ErrInvalid.
func (c *Config) Validate() error {
	if _, err := controller.ParseAlgorithm(c.Sampler.Algorithm); err != nil {
		return invalid("sampler.algorithm", err)
	}
	if _, err := coloring.ParseMode(c.Sampler.Mode); err != nil {
		return invalid("sampler.mode", err)
	}
	if c.Sampler.Iterations < 0 {
		return errors.Wrapf(ErrInvalid, "sampler.iterations must be >= 0, got %d", c.Sampler.Iterations)
	}
	if c.Sampler.MaxAttempts <= 0 {
		return errors.Wrapf(ErrInvalid, "sampler.max_attempts must be > 0, got %d", c.Sampler.MaxAttempts)
	}
	p := c.Sampler.TieAcceptProbability
	if math.IsNaN(p) || p < 0 || p > 1 {
		return errors.Wrapf(ErrInvalid, "sampler.tie_accept_probability must be in [0,1], got %v", p)
	}

	if _, err := controller.ParsePace(c.Pacing.Pace); err != nil {
		return invalid("pacing.pace", err)
	}
	if c.Pacing.Fast <= 0 || c.Pacing.Slow <= 0 {
		return errors.Wrapf(ErrInvalid, "pacing intervals must be positive (fast=%s, slow=%s)", c.Pacing.Fast, c.Pacing.Slow)
	}

	if c.Graph.File == "" {
		if c.Graph.Vertices < 1 || c.Graph.Vertices > core.DefaultMaxVertices {
			return errors.Wrapf(ErrInvalid, "graph.vertices must be in [1,%d], got %d", core.DefaultMaxVertices, c.Graph.Vertices)
		}
		if _, err := builder.ByName(c.Graph.Topology, c.Graph.Vertices); err != nil {
			return invalid("graph.topology", err)
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", err)
	}

	return nil
}

func invalid(field string, cause error) error {
	return errors.Wrapf(ErrInvalid, "%s: %v", field, cause)
}

// Algorithm returns the parsed sampler algorithm. Call Validate first.
func (c *Config) Algorithm() controller.Algorithm {
	a, _ := controller.ParseAlgorithm(c.Sampler.Algorithm)
	return a
}

// Pace returns the parsed pace. Call Validate first.
func (c *Config) Pace() controller.Pace {
	p, _ := controller.ParsePace(c.Pacing.Pace)
	return p
}

// LogLevel returns the parsed log level, Info when unparsable.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// SamplerOptions translates the sampler section into coloring options. The
// seed is not included; see SessionOptions.
func (c *Config) SamplerOptions() []coloring.Option {
	mode, _ := coloring.ParseMode(c.Sampler.Mode)
	return []coloring.Option{
		coloring.WithMode(mode),
		coloring.WithIterations(c.Sampler.Iterations),
		coloring.WithMaxAttempts(c.Sampler.MaxAttempts),
		coloring.WithTieAcceptProbability(c.Sampler.TieAcceptProbability),
	}
}

// SessionOptions translates pacing, sampler and seed settings into session
// options.
func (c *Config) SessionOptions() []controller.Option {
	opts := []controller.Option{
		controller.WithPaces(c.Pacing.Fast, c.Pacing.Slow),
		controller.WithSamplerOptions(c.SamplerOptions()...),
	}
	if c.Sampler.Seed != nil {
		opts = append(opts, controller.WithSeed(*c.Sampler.Seed))
	}
	return opts
}
