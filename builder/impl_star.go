// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is the first vertex added; spokes hub-leaf in insertion order.

package builder

import "github.com/katalvlaran/lvcolor/core"

// Star returns a Constructor that builds a star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for _, leaf := range ids[1:] {
			if err = addEdge(MethodStar, g, cfg, ids[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
