// Command lvcolor searches for proper 3-colorings of small graphs with
// randomized samplers and shows how they converge.
//
// Two samplers share one step protocol:
//
//	Monte Carlo: draws complete random colorings and keeps the one with the
//	              fewest conflicting edges; every draw costs one step.
//	Las Vegas:   assigns colors vertex by vertex in random order, choosing
//	              only colors no colored neighbor uses, and restarts on a dead
//	              end; a result it reports as valid is always proper.
//
// Packages:
//
//	core/        thread-safe Graph (≤150 vertices) and immutable Snapshots
//	coloring/    conflict evaluation, MonteCarlo and LasVegas samplers
//	controller/  Session: paced runs with pause/resume/step and events
//	builder/     deterministic and random topology constructors
//	bfs/         traversal, components and bipartiteness checks
//	graphio/     YAML/JSON graph and coloring files
//	config/      YAML + dotenv + LVCOLOR_* environment configuration
//	cmd/         the cobra command tree (run, inspect, evaluate, topologies)
//
// Quick start:
//
//	lvcolor run -a lasvegas -t random -n 80
//	lvcolor run --sync -a montecarlo -g graph.yaml -o colors.yaml
//	lvcolor evaluate -g graph.yaml --coloring colors.yaml
//
// A square with one diagonal needs three colors:
//
//	    1───2
//	    │ ╲ │
//	    4───3
package main
