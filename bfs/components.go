// File: components.go
// Role: Connectivity, bipartiteness and diameter over a core.Snapshot.
// Determinism:
//   - Components are ordered by their smallest vertex ID; members ascending.
//   - Diameter ties resolve to the smallest start ID, then the last vertex
//     that start visits.
// Complexity:
//   - O(V+E) for Components and TwoColoring, O(V·(V+E)) for Diameter.

package bfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/lvcolor/core"
)

// Components returns the connected components of s.
func Components(s *core.Snapshot) [][]core.VertexID {
	// Background never cancels, so the error is always nil.
	comps, _ := ComponentsContext(context.Background(), s)

	return comps
}

// ComponentsContext is Components with cancellation. On cancellation it
// returns the components found so far together with the context error.
func ComponentsContext(ctx context.Context, s *core.Snapshot) ([][]core.VertexID, error) {
	if s == nil {
		return nil, nil
	}

	seen := make(map[core.VertexID]bool, s.Order())
	var out [][]core.VertexID
	for _, id := range s.VertexIDs() {
		if seen[id] {
			continue
		}
		res, err := BFS(s, id, WithContext(ctx))
		if err != nil {
			return out, err
		}
		comp := append([]core.VertexID(nil), res.Order...)
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		for _, v := range comp {
			seen[v] = true
		}
		out = append(out, comp)
	}

	return out, nil
}

// TwoColoring tries to split s into two sides so that every edge crosses
// sides. On success it returns the side (0 or 1) of every vertex, with the
// smallest ID of each component on side 0. On failure (an odd cycle exists)
// it returns nil, false.
func TwoColoring(s *core.Snapshot) (map[core.VertexID]int, bool) {
	if s == nil {
		return nil, false
	}

	side := make(map[core.VertexID]int, s.Order())
	for _, comp := range Components(s) {
		res, err := BFS(s, comp[0])
		if err != nil {
			return nil, false
		}
		for id, d := range res.Depth {
			side[id] = d % 2
		}
	}
	for _, e := range s.Edges() {
		if side[e.Source] == side[e.Target] {
			return nil, false
		}
	}

	return side, true
}

// Diameter returns the largest hop distance between two vertices of the same
// component, and a shortest path realizing it. A graph without vertices
// yields 0 and a nil path; an edgeless one yields 0 and a one-vertex path.
func Diameter(ctx context.Context, s *core.Snapshot) (int, []core.VertexID, error) {
	if s == nil {
		return 0, nil, ErrGraphNil
	}

	var (
		best   int
		bestAt *BFSResult
		far    core.VertexID
	)
	for _, id := range s.VertexIDs() {
		res, err := BFS(s, id, WithContext(ctx))
		if err != nil {
			return 0, nil, err
		}
		last := res.Order[len(res.Order)-1]
		if d := res.Depth[last]; bestAt == nil || d > best {
			best, bestAt, far = d, res, last
		}
	}
	if bestAt == nil {
		return 0, nil, nil
	}
	path, err := bestAt.PathTo(far)
	if err != nil {
		return 0, nil, err
	}

	return best, path, nil
}
