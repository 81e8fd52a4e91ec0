// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_platonic.go: implementation of PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation.
//   • Shell vertices added in index order, then shell edges in the pre-sorted
//     order of variants_platonic.go.
//   • If withCenter, a hub placed at the layout center is added last with
//     spokes to every shell vertex in index order.
//
// Complexity:
//   • Time: O(V+E) for the selected solid (V≤20, E≤30).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally with a central hub connected by spokes.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %q: %w", MethodPlatonicSolid, name, ErrConstructFailed)
		}

		ids, err := addVertices(MethodPlatonicSolid, g, cfg, n)
		if err != nil {
			return err
		}
		for _, ch := range edges {
			if err = addEdge(MethodPlatonicSolid, g, cfg, ids[ch.U], ids[ch.V]); err != nil {
				return err
			}
		}

		if !withCenter {
			return nil
		}
		hub, err := g.AddVertex(layoutCenter, layoutCenter)
		if err != nil {
			return fmt.Errorf("%s: AddVertex(hub): %w", MethodPlatonicSolid, err)
		}
		for _, v := range ids {
			if err = addEdge(MethodPlatonicSolid, g, cfg, hub, v); err != nil {
				return err
			}
		}

		return nil
	}
}
