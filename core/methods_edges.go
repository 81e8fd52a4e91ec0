// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/NeighborIDs.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - NeighborIDs() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects a and b with an undirected edge.
//
// Steps:
//  1. Reject self-loops.
//  2. Under the write lock, require both endpoints to exist.
//  3. Reject a duplicate in either direction.
//  4. Append to the edge list, mirror adjacency, bump revision.
//
// Errors:
//   - ErrLoopNotAllowed, ErrVertexNotFound, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b VertexID, weight float64) error {
	if a == b {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[a]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", a, b, a, ErrVertexNotFound)
	}
	if _, ok := g.vertices[b]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", a, b, b, ErrVertexNotFound)
	}
	if _, dup := g.adjacency[a][b]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrMultiEdgeNotAllowed)
	}

	g.edges = append(g.edges, Edge{Source: a, Target: b, Weight: weight})
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.revision++

	return nil
}

// RemoveEdge deletes the edge between a and b, in whichever direction it was
// created.
//
// Errors:
//   - ErrEdgeNotFound.
//
// Complexity: O(E) to compact the edge list.
func (g *Graph) RemoveEdge(a, b VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[a][b]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", a, b, ErrEdgeNotFound)
	}

	for i, e := range g.edges {
		if (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a) {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			break
		}
	}
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)
	g.revision++

	return nil
}

// HasEdge reports whether a and b are adjacent.
//
// Complexity: O(1).
func (g *Graph) HasEdge(a, b VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Edges returns a copy of the edge list in insertion order.
//
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NeighborIDs returns the sorted IDs adjacent to id.
//
// Errors:
//   - ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id VertexID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", id, ErrVertexNotFound)
	}

	return sortedKeys(nbrs), nil
}

// sortedKeys returns the keys of set in ascending order.
func sortedKeys(set map[VertexID]struct{}) []VertexID {
	out := make([]VertexID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sortIDs(out)

	return out
}

// sortIDs sorts ids ascending in place.
func sortIDs(ids []VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
