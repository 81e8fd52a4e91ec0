// Package bfs provides breadth-first search over a core.Snapshot, returning
// unweighted shortest-path distances, parent links, and visit order, plus the
// derived queries the coloring tools rely on: connected components, a
// two-coloring (bipartiteness) check, and the graph diameter.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - BFSResult.PathTo rebuilds the shortest path to any reached vertex.
//   - Components, ComponentsContext, TwoColoring and Diameter are built on BFS.
//
// Why
//
//   - A bipartite graph is trivially two-colorable, so TwoColoring gives an
//     exact answer where the randomized samplers only search.
//   - Component counts explain why a random "connected" graph stays connected
//     and a composed fixture does not.
//
// Determinism
//
//	Snapshot neighbors are sorted by ID and BFS enqueues them in that order,
//	so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per search; Diameter runs one search per vertex.
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(s, 1, bfs.WithContext(ctx))
//	path, err := result.PathTo(6)
//	d, path, err := bfs.Diameter(ctx, s)
//
// Errors
//
//   - ErrGraphNil             if the snapshot pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNoPath               from BFSResult.PathTo for unreached vertices.
//   - The context error when the search is cancelled.
package bfs
