// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLayout overrides how vertex positions are chosen. Panics on nil.
func WithLayout(l Layout) BuilderOption {
	if l == nil {
		panic("builder: WithLayout(nil)")
	}
	return func(c *builderConfig) {
		c.layout = l
	}
}

// WithEdgeWeight sets the weight stored on every emitted edge. Panics on
// negative or NaN weights.
func WithEdgeWeight(w float64) BuilderOption {
	if w < 0 || w != w {
		panic("builder: WithEdgeWeight(w<0 or NaN)")
	}
	return func(c *builderConfig) {
		c.weight = w
	}
}
