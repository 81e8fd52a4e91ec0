// Package graphio reads and writes graphs and colorings as YAML documents.
//
// JSON is a subset of YAML, so the same readers accept JSON files.
//
// Graph document:
//
//	vertices:
//	  - {id: 1, x: 0.2, y: 0.3}
//	  - {id: 2}            # position omitted: placed on a circle
//	edges:
//	  - [1, 2]
//
// Coloring document:
//
//	colors:
//	  1: red
//	  2: blue
package graphio
