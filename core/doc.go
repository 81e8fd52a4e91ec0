// Package core provides the thread-safe, in-memory graph that the coloring
// engine reads from and paints onto.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected and simple: AddEdge rejects self-loops (ErrLoopNotAllowed)
//     and a second edge between the same endpoints in either direction
//     (ErrMultiEdgeNotAllowed).
//   - Integer vertex IDs: AddVertex assigns last-inserted ID + 1, starting at 1;
//     InsertVertex accepts explicit positive IDs for loaders.
//   - Bounded: at most DefaultMaxVertices (150) vertices unless WithMaxVertices
//     says otherwise (ErrTooManyVertices).
//   - Presentation data on vertices: normalized X/Y position and a Color name.
//     Neither is read by algorithms.
//
// Revisions and snapshots:
//
//	Every structural mutation (AddVertex, InsertVertex, RemoveVertex, AddEdge,
//	RemoveEdge, Reset) advances Revision(). Snapshot() copies the topology at
//	the current revision into an immutable *Snapshot; Snapshot.IsStale(g)
//	tells a consumer that the graph it was built from has changed. MoveVertex
//	and ApplyColoring are not structural and keep the revision.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(x, y float64) (VertexID, error)    // O(1)
//	InsertVertex(id VertexID, x, y float64) error // O(1)
//	RemoveVertex(id VertexID) error               // O(E)
//	MoveVertex(id VertexID, x, y float64) error   // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b VertexID, weight float64) error  // O(1)
//	RemoveEdge(a, b VertexID) error               // O(E)
//	HasEdge(a, b VertexID) bool                   // O(1)
//
//	// Query
//	Vertices() []Vertex                           // O(V log V), sorted by ID
//	Edges() []Edge                                // O(E), insertion order
//	NeighborIDs(id VertexID) ([]VertexID, error)  // O(d log d), sorted
//
//	// Coloring
//	ApplyColoring(map[VertexID]string) int        // O(V)
//	Colors() map[VertexID]string                  // O(V)
//
// All methods take a single sync.RWMutex; reads may run concurrently with
// each other, writes are exclusive.
package core
