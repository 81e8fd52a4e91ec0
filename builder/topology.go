// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// topology.go: name-based lookup used by the CLI and configuration files.

package builder

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Topology names accepted by ByName.
const (
	TopologyRandom    = "random"
	TopologyCycle     = "cycle"
	TopologyPath      = "path"
	TopologyStar      = "star"
	TopologyWheel     = "wheel"
	TopologyComplete  = "complete"
	TopologyBipartite = "bipartite"
	TopologyGrid      = "grid"
	TopologySparse    = "sparse"
	TopologyCubic     = "cubic"
)

// sparseMeanDegree is the expected degree of the "sparse" topology.
const sparseMeanDegree = 4.0

var sizedTopologies = map[string]func(n int) Constructor{
	TopologyRandom:   RandomConnected,
	TopologyCycle:    Cycle,
	TopologyPath:     Path,
	TopologyStar:     Star,
	TopologyWheel:    Wheel,
	TopologyComplete: Complete,
	TopologyBipartite: func(n int) Constructor {
		return CompleteBipartite(n/2, n-n/2)
	},
	TopologyGrid: func(n int) Constructor {
		cols := int(math.Ceil(math.Sqrt(float64(n))))
		if cols < MinGridDim {
			cols = MinGridDim
		}
		return Grid((n+cols-1)/cols, cols)
	},
	TopologySparse: func(n int) Constructor {
		return RandomSparse(n, math.Min(MaxProbability, sparseMeanDegree/float64(n)))
	},
	TopologyCubic: func(n int) Constructor {
		return RandomRegular(n, 3)
	},
}

// ByName resolves a topology name (case-insensitive) and a vertex count to a
// Constructor. Platonic solid names ignore n. Grid rounds n up to a full
// rectangle. Random, sparse and cubic topologies need WithSeed or WithRand.
//
// Errors:
//   - ErrUnknownTopology for unrecognized names.
//   - ErrTooFewVertices for n < 1 on sized topologies.
func ByName(name string, n int) (Constructor, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if mk, ok := sizedTopologies[key]; ok {
		if err := validateMin(key, "n", n, 1); err != nil {
			return nil, err
		}

		return mk(n), nil
	}
	if solid, err := ParsePlatonicName(key); err == nil {
		return PlatonicSolid(solid, false), nil
	}

	return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownTopology)
}

// Topologies lists every name ByName accepts, sorted.
func Topologies() []string {
	out := make([]string, 0, len(sizedTopologies)+len(platonicVertexCounts))
	for name := range sizedTopologies {
		out = append(out, name)
	}
	for solid := range platonicVertexCounts {
		out = append(out, strings.ToLower(solid.String()))
	}
	sort.Strings(out)

	return out
}
