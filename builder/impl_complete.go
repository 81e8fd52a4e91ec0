// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits all pairs (i,j), i<j, in lexicographic order.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.

package builder

import "github.com/katalvlaran/lvcolor/core"

// Complete returns a Constructor that builds K_n. K_n is three-colorable
// only for n ≤ 3.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, 1); err != nil {
			return err
		}
		ids, err := addVertices(MethodComplete, g, cfg, n)
		if err != nil {
			return err
		}

		return addCompleteEdges(MethodComplete, g, cfg, ids)
	}
}
