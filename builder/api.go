// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildInto(g, bopts, cons...). BuildGraph creates g first.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters before touching g and
// return sentinel errors (no panics).
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against builder
//     and core sentinels.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := BuildInto(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// BuildInto applies constructors to an existing graph. Vertices are appended
// after whatever g already holds; no partial cleanup happens on error.
func BuildInto(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildInto: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildInto: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
