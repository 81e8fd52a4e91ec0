// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges v_i-v_(i+1) for i=0..n-2.

package builder

import "github.com/katalvlaran/lvcolor/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(MethodPath, g, cfg, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
