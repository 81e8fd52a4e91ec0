// File: view.go
// Role: Immutable graph views handed to the coloring engine.
// Determinism:
//   - VertexIDs() sorted ascending; Edges() in the graph's insertion order;
//     Neighbors() sorted ascending.
// Concurrency:
//   - Snapshot takes the read lock once; the returned view shares nothing
//     with the Graph and is safe for concurrent readers.

package core

// Snapshot is an immutable view of a Graph's topology at one revision.
// Positions, colors and metadata are not part of it.
type Snapshot struct {
	revision  uint64
	ids       []VertexID
	index     map[VertexID]int
	edges     []Edge
	neighbors [][]VertexID // aligned with ids
}

// Snapshot copies the current topology.
//
// Complexity: O(V log V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		revision:  g.revision,
		ids:       make([]VertexID, 0, len(g.vertices)),
		index:     make(map[VertexID]int, len(g.vertices)),
		edges:     make([]Edge, len(g.edges)),
		neighbors: make([][]VertexID, 0, len(g.vertices)),
	}
	copy(s.edges, g.edges)
	for id := range g.vertices {
		s.ids = append(s.ids, id)
	}
	sortIDs(s.ids)
	for i, id := range s.ids {
		s.index[id] = i
		s.neighbors = append(s.neighbors, sortedKeys(g.adjacency[id]))
	}

	return s
}

// NewSnapshot builds a Snapshot directly from vertex IDs and edges, without
// an editing Graph. Duplicate and non-positive IDs are dropped; edges referencing unknown
// vertices, self-loops and duplicate edges are skipped. The revision is 0.
//
// Complexity: O(V log V + E).
func NewSnapshot(ids []VertexID, edges []Edge) *Snapshot {
	g := NewGraph(WithMaxVertices(len(ids) + 1))
	for _, id := range ids {
		_ = g.InsertVertex(id, 0, 0)
	}
	for _, e := range edges {
		_ = g.AddEdge(e.Source, e.Target, e.Weight)
	}
	s := g.Snapshot()
	s.revision = 0

	return s
}

// Revision is the Graph revision the snapshot was taken at.
func (s *Snapshot) Revision() uint64 { return s.revision }

// Order returns the number of vertices.
func (s *Snapshot) Order() int { return len(s.ids) }

// Size returns the number of edges.
func (s *Snapshot) Size() int { return len(s.edges) }

// VertexIDs returns the vertex IDs in ascending order. The slice is shared;
// callers must not modify it.
func (s *Snapshot) VertexIDs() []VertexID { return s.ids }

// Edges returns the edges in insertion order. The slice is shared; callers
// must not modify it.
func (s *Snapshot) Edges() []Edge { return s.edges }

// Has reports whether id is a vertex of the snapshot.
func (s *Snapshot) Has(id VertexID) bool {
	_, ok := s.index[id]

	return ok
}

// Neighbors returns the sorted neighbors of id, or nil when id is unknown.
// The slice is shared; callers must not modify it.
func (s *Snapshot) Neighbors(id VertexID) []VertexID {
	i, ok := s.index[id]
	if !ok {
		return nil
	}

	return s.neighbors[i]
}

// Degree returns the number of neighbors of id (0 when unknown).
func (s *Snapshot) Degree(id VertexID) int { return len(s.Neighbors(id)) }

// IsStale reports whether g has been structurally mutated since s was taken.
func (s *Snapshot) IsStale(g *Graph) bool { return g.Revision() != s.revision }
