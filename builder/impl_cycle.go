// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order v_i-v_(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import "github.com/katalvlaran/lvcolor/core"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Odd cycles need three colors; even cycles are bipartite.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(MethodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
