// Package bfs provides options and error definitions
// for breadth-first search over a core.Snapshot.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil snapshot is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters that customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns a BFSOptions bound to context.Background().
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its distance (in edges) from the start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []core.VertexID
	Depth  map[core.VertexID]int
	Parent map[core.VertexID]core.VertexID
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest core.VertexID) ([]core.VertexID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("PathTo(%d): %w", dest, ErrNoPath)
	}
	path := []core.VertexID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
