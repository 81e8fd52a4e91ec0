package coloring

import "github.com/katalvlaran/lvcolor/core"

// Coloring maps vertex IDs to colors. A vertex missing from the map is
// unassigned. Colorings returned by samplers are shared with the sampler's
// best-known state and must be treated as read-only.
type Coloring map[core.VertexID]Color

// Evaluation is the outcome of checking a coloring against a graph.
type Evaluation struct {
	// Conflicts is the number of conflicting edges.
	Conflicts int

	// ConflictEdges lists the conflicting edges in the snapshot's edge order.
	// It is never nil.
	ConflictEdges []core.EdgePair
}

// Evaluate counts the edges of s whose endpoints are both assigned in c and
// share a color. Unassigned endpoints never conflict.
//
// Complexity: O(E) time, O(conflicts) space.
func Evaluate(s *core.Snapshot, c Coloring) Evaluation {
	ev := Evaluation{ConflictEdges: []core.EdgePair{}}
	if s == nil {
		return ev
	}

	for _, e := range s.Edges() {
		ca, okA := c[e.Source]
		cb, okB := c[e.Target]
		if okA && okB && ca == cb {
			ev.Conflicts++
			ev.ConflictEdges = append(ev.ConflictEdges, e.Pair())
		}
	}

	return ev
}

// Complete reports whether every vertex of s is assigned in c.
func (c Coloring) Complete(s *core.Snapshot) bool {
	for _, id := range s.VertexIDs() {
		if _, ok := c[id]; !ok {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of c.
func (c Coloring) Clone() Coloring {
	out := make(Coloring, len(c))
	for id, col := range c {
		out[id] = col
	}

	return out
}

// Names converts c to the plain string map accepted by core.Graph.ApplyColoring.
func (c Coloring) Names() map[core.VertexID]string {
	out := make(map[core.VertexID]string, len(c))
	for id, col := range c {
		out[id] = string(col)
	}

	return out
}
