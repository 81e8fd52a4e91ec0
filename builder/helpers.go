// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// addVertices inserts n vertices positioned by cfg.layout and returns their
// IDs in insertion order.
//
// Complexity: O(n) time, O(n) space.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]core.VertexID, error) {
	ids := make([]core.VertexID, 0, n)
	for i := 0; i < n; i++ {
		x, y := cfg.layout(i, n, cfg.rng)
		id, err := g.AddVertex(x, y)
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex(#%d): %w", method, i, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// addEdge connects u and v with the configured weight.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v core.VertexID) error {
	if err := g.AddEdge(u, v, cfg.weight); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d): %w", method, u, v, err)
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids, i<j, in ascending order.
//
// Complexity: O(m²) time where m = len(ids), O(1) extra space.
func addCompleteEdges(method string, g *core.Graph, cfg builderConfig, ids []core.VertexID) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(method, g, cfg, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
