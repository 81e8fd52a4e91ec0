// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices sorted by ID ascending.
//   - AddVertex assigns last-inserted ID + 1 (first vertex is 1).
//
// Concurrency:
//   - All methods take g.mu; mutations take the write lock.
package core

import (
	"fmt"
	"sort"
)

// firstVertexID is the ID given to the first vertex of an empty graph.
const firstVertexID VertexID = 1

// AddVertex appends a vertex at position (x, y) and returns its new ID.
//
// Implementation:
//   - Stage 1: Under the write lock, enforce the vertex cap.
//   - Stage 2: Derive the ID from the most recently inserted vertex (+1), so
//     IDs stay monotonic even after removals of earlier vertices.
//   - Stage 3: Register the vertex and its empty adjacency bucket; bump revision.
//
// Errors:
//   - ErrTooManyVertices: if the graph already holds MaxVertices vertices.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(x, y float64) (VertexID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.vertices) >= g.maxVertices {
		return 0, fmt.Errorf("AddVertex: %d vertices: %w", g.maxVertices, ErrTooManyVertices)
	}

	id := firstVertexID
	if n := len(g.order); n > 0 {
		id = g.order[n-1] + 1
	}
	// Explicit IDs from InsertVertex may already occupy the successor.
	for g.vertices[id] != nil {
		id++
	}
	g.insertLocked(id, x, y)

	return id, nil
}

// InsertVertex adds a vertex with an explicit ID. Loaders use it to keep the
// IDs found in a graph file.
//
// Errors:
//   - ErrBadVertexID: id <= 0.
//   - ErrDuplicateVertex: id already present.
//   - ErrTooManyVertices: cap reached.
//
// Complexity: O(1) amortized.
func (g *Graph) InsertVertex(id VertexID, x, y float64) error {
	if id < firstVertexID {
		return fmt.Errorf("InsertVertex(%d): %w", id, ErrBadVertexID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("InsertVertex(%d): %w", id, ErrDuplicateVertex)
	}
	if len(g.vertices) >= g.maxVertices {
		return fmt.Errorf("InsertVertex(%d): %w", id, ErrTooManyVertices)
	}
	g.insertLocked(id, x, y)

	return nil
}

// insertLocked registers a vertex. Caller holds the write lock and has
// validated id.
func (g *Graph) insertLocked(id VertexID, x, y float64) {
	g.vertices[id] = &Vertex{ID: id, X: x, Y: y, Metadata: make(map[string]interface{})}
	g.adjacency[id] = make(map[VertexID]struct{})
	g.order = append(g.order, id)
	g.revision++
}

// HasVertex reports whether the vertex ID exists.
//
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record.
//
// Errors:
//   - ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Vertex(id VertexID) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", id, ErrVertexNotFound)
	}

	return *v, nil
}

// Vertices returns copies of all vertex records sorted by ID.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Errors:
//   - ErrVertexNotFound.
//
// Complexity:
//   - Time O(E) to compact the edge list, Space O(1) extra.
func (g *Graph) RemoveVertex(id VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("RemoveVertex(%d): %w", id, ErrVertexNotFound)
	}

	// Drop incident edges, keeping the remaining ones in insertion order.
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.Source == id || e.Target == id {
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept

	for nb := range g.adjacency[id] {
		delete(g.adjacency[nb], id)
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	for i, vid := range g.order {
		if vid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	g.revision++

	return nil
}

// MoveVertex updates a vertex position. It is not a structural mutation and
// leaves Revision unchanged.
//
// Errors:
//   - ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) MoveVertex(id VertexID, x, y float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("MoveVertex(%d): %w", id, ErrVertexNotFound)
	}
	v.X, v.Y = x, y

	return nil
}
