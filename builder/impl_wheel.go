// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim: the first n-1 vertices form C_(n-1) (edges in ring order).
//   • Hub: the last vertex, placed at the layout center, then spokes hub-rim_i.
//
// A wheel with an odd rim (even n) needs four colors, so it is the smallest
// family where a three-color search must fail.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Wheel returns a Constructor that builds W_n = C_(n-1) + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		rim, err := addVertices(MethodWheel, g, cfg, n-1)
		if err != nil {
			return err
		}
		hub, err := g.AddVertex(layoutCenter, layoutCenter)
		if err != nil {
			return fmt.Errorf("%s: AddVertex(hub): %w", MethodWheel, err)
		}
		for i := range rim {
			if err = addEdge(MethodWheel, g, cfg, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, v := range rim {
			if err = addEdge(MethodWheel, g, cfg, hub, v); err != nil {
				return err
			}
		}

		return nil
	}
}
