// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil               (pure/deterministic unless seeded)
//   • layout  = CircleLayout
//   • weight  = core.DefaultEdgeWeight

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvcolor/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Position strategy for new vertices.
	layout Layout
	// Weight stored on every emitted edge.
	weight float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		layout: CircleLayout,
		weight: core.DefaultEdgeWeight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
