// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade of read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Locking model is defined in types.go (single mu).

package core

// GraphStats is a compact, read-only summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	MaxVertices int
	Revision    uint64
	Colored     int // vertices with a non-empty Color
}

// MaxVertices reports the construction-time vertex cap.
//
// Complexity: O(1).
func (g *Graph) MaxVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxVertices
}

// Revision reports the structural mutation counter. Two equal revisions
// observed on the same Graph mean no vertex or edge was added or removed in
// between. Color and position changes do not advance it.
//
// Complexity: O(1).
func (g *Graph) Revision() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.revision
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Stats produces a read-only snapshot of sizes and counters.
//
// Complexity: O(V) for the colored-vertex count.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		MaxVertices: g.maxVertices,
		Revision:    g.revision,
	}
	for _, v := range g.vertices {
		if v.Color != "" {
			stats.Colored++
		}
	}

	return stats
}
