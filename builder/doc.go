// Package builder provides functional-options constructors for the graph
// topologies used as coloring fixtures and as the "random graph" action of a
// run session.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:  new core.Graph + constructors applied in order.
//     – BuildInto:   constructors applied to an existing graph.
//     – ByName:      topology lookup by name for CLIs and config files.
//   - Deterministic topologies:
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid,
//     PlatonicSolid.
//   - Seeded topologies (require WithSeed or WithRand):
//     – RandomConnected: random spanning tree plus ⌊n/2⌋ extra edges.
//     – RandomSparse:    Erdős–Rényi G(n,p).
//     – RandomRegular:   d-regular via stub matching.
//   - Layouts (vertex positions in the unit square):
//     – CircleLayout (default), GridLayout, RandomLayout.
//
// Guarantees:
//
//   - Vertices are added through core.Graph.AddVertex, so IDs follow the
//     graph's sequential policy and the vertex cap is enforced by core.
//   - Edges are emitted in a documented, stable order; same seed ⇒ same graph.
//   - Option constructors panic on meaningless inputs; constructors return
//     sentinel errors wrapped with the method name and never panic.
package builder
