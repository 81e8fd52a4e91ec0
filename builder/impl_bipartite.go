// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side added first (n1 vertices), then right side (n2 vertices).
//   • Edges l_i-r_j for i asc, j asc.
//   • Left vertices on the line x=0.25, right on x=0.75 (layout ignored).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

const (
	bipartiteLeftX  = 0.25
	bipartiteRightX = 0.75
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, 1); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, 1); err != nil {
			return err
		}

		side := func(n int, x float64) ([]core.VertexID, error) {
			ids := make([]core.VertexID, 0, n)
			for i := 0; i < n; i++ {
				y := float64(i+1) / float64(n+1)
				id, err := g.AddVertex(x, y)
				if err != nil {
					return nil, fmt.Errorf("%s: AddVertex(#%d): %w", MethodCompleteBipartite, i, err)
				}
				ids = append(ids, id)
			}

			return ids, nil
		}
		left, err := side(n1, bipartiteLeftX)
		if err != nil {
			return err
		}
		right, err := side(n2, bipartiteRightX)
		if err != nil {
			return err
		}

		for _, l := range left {
			for _, r := range right {
				if err = addEdge(MethodCompleteBipartite, g, cfg, l, r); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
