// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertices added row-major and placed on a lattice (layout ignored).
//   • For each cell (r,c) in row-major order: right edge, then down edge.
//
// Complexity:
//   • Time: O(R*C) vertices + O(R*C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Grid returns a Constructor that builds an R×C 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		ids := make([]core.VertexID, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id, err := g.AddVertex(gridPosition(c, cols), gridPosition(r, rows))
				if err != nil {
					return fmt.Errorf("%s: AddVertex(%d,%d): %w", MethodGrid, r, c, err)
				}
				ids = append(ids, id)
			}
		}

		at := func(r, c int) core.VertexID { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(MethodGrid, g, cfg, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(MethodGrid, g, cfg, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// gridPosition spreads k of n lattice lines across the unit interval.
func gridPosition(k, n int) float64 {
	if n <= 1 {
		return layoutCenter
	}

	return layoutMargin + (1-2*layoutMargin)*float64(k)/float64(n-1)
}
