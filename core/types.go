// Package core defines the central Graph, Vertex, and Edge types used by the
// coloring engine, and provides thread-safe primitives for editing a graph and
// taking immutable snapshots of it.
//
// The graph is always undirected and simple: self-loops and parallel edges
// (in either direction) are rejected. Vertices carry a normalized 2-D position
// and an optional color name, both of which are presentation data and never
// read by the coloring algorithms.
//
// Errors:
//
//	ErrBadVertexID         - vertex ID is not positive.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrDuplicateVertex     - vertex ID is already present.
//	ErrTooManyVertices     - vertex cap reached.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop attempted.
//	ErrMultiEdgeNotAllowed - duplicate edge attempted (either direction).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexID indicates that a vertex ID is zero or negative.
	ErrBadVertexID = errors.New("core: vertex ID must be positive")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates InsertVertex was called with an ID already in use.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrTooManyVertices indicates the graph already holds its maximum number of vertices.
	ErrTooManyVertices = errors.New("core: vertex limit reached")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates an edge between the same endpoints already exists.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// DefaultMaxVertices is the vertex cap applied when WithMaxVertices is not given.
const DefaultMaxVertices = 150

// DefaultEdgeWeight is the weight AddEdge callers conventionally pass; weights
// are carried for presentation and ignored by coloring.
const DefaultEdgeWeight = 1.0

// VertexID identifies a vertex within its Graph. IDs are positive and stable
// for the lifetime of the vertex.
type VertexID int

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID VertexID

	// X and Y are the normalized position in [0,1]. Presentation only.
	X, Y float64

	// Color is the palette color name currently assigned, or "" when unset.
	Color string

	// Metadata stores arbitrary user data. It is shared, not deep-copied,
	// by Vertices() and Vertex().
	Metadata map[string]interface{}
}

// Edge represents an undirected connection between two vertices.
// Source and Target keep the order the edge was created with; the
// relation itself is symmetric.
type Edge struct {
	// Source is the first endpoint as given to AddEdge.
	Source VertexID

	// Target is the second endpoint as given to AddEdge.
	Target VertexID

	// Weight is unused by coloring and defaults to DefaultEdgeWeight.
	Weight float64
}

// EdgePair is the endpoint pair of an edge, as reported by conflict
// evaluation. A is the edge's Source, B its Target.
type EdgePair struct {
	A VertexID
	B VertexID
}

// Pair returns the endpoint pair of e.
func (e Edge) Pair() EdgePair { return EdgePair{A: e.Source, B: e.Target} }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxVertices overrides the vertex cap. Values below 1 are ignored.
func WithMaxVertices(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.maxVertices = n
		}
	}
}

// Graph is the mutable, in-memory editing graph.
//
// mu guards every field below it. revision counts structural mutations
// (vertex/edge insertions and removals, Reset) so that consumers holding a
// Snapshot can detect that it went stale.
type Graph struct {
	mu sync.RWMutex

	maxVertices int
	revision    uint64

	vertices map[VertexID]*Vertex
	order    []VertexID // insertion order, used for next-ID derivation
	edges    []Edge     // insertion order

	// adjacency[u][v] exists iff edge {u,v} exists; mirrored for both endpoints.
	adjacency map[VertexID]map[VertexID]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the graph holds at most DefaultMaxVertices vertices.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		maxVertices: DefaultMaxVertices,
		vertices:    make(map[VertexID]*Vertex),
		adjacency:   make(map[VertexID]map[VertexID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
