// Package core: whole-graph maintenance and color application.
//
// Reset is a structural mutation (bumps the revision). ApplyColoring and
// ClearColors only touch Vertex.Color and leave the revision unchanged, so a
// run controller can repaint the graph after every step without invalidating
// the snapshot its sampler was built from.

package core

// Reset removes every vertex and edge. The vertex cap is preserved and the
// revision advances so outstanding snapshots become stale.
// Complexity: O(1) (maps are reallocated).
func (g *Graph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[VertexID]*Vertex)
	g.adjacency = make(map[VertexID]map[VertexID]struct{})
	g.order = nil
	g.edges = nil
	g.revision++
}

// ApplyColoring sets each vertex's Color from colors; vertices missing from
// the map are cleared to "". IDs in colors that are not in the graph are
// ignored. It returns the number of vertices left colored.
// Complexity: O(V).
func (g *Graph) ApplyColoring(colors map[VertexID]string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	var colored int
	for id, v := range g.vertices {
		v.Color = colors[id]
		if v.Color != "" {
			colored++
		}
	}

	return colored
}

// ClearColors unsets the color of every vertex.
// Complexity: O(V).
func (g *Graph) ClearColors() {
	g.ApplyColoring(nil)
}

// Colors returns the current color assignment, omitting uncolored vertices.
// Complexity: O(V).
func (g *Graph) Colors() map[VertexID]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[VertexID]string, len(g.vertices))
	for id, v := range g.vertices {
		if v.Color != "" {
			out[id] = v.Color
		}
	}

	return out
}
