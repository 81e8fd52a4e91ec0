// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodRandomConnected   = "RandomConnected"
	MethodPlatonicSolid     = "PlatonicSolid"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star (hub + one leaf).
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel (C_3 + hub).
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
const MinGridDim = 1

// MinRandomNodes is the smallest size accepted by the seeded generators.
const MinRandomNodes = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for RandomSparse's p, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for RandomSparse's p, inclusive.
const MaxProbability = 1.0

// maxStubMatchingAttempts bounds RandomRegular's reshuffles.
const maxStubMatchingAttempts = 64
