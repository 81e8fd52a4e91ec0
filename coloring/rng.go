// Package coloring - RNG utilities shared by both samplers.
//
// Goals:
//   - Determinism: same seed ⇒ identical sample sequence.
//   - A single factory for seeded and entropy-seeded sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A sampler owns its source; do not
//     share one *rand.Rand between samplers stepped from different goroutines.
package coloring

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/lvcolor/core"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// entropyRNG returns a source seeded from the wall clock. Used when the caller
// injects neither WithRand nor WithSeed.
func entropyRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// (SplitMix64 finalizer). Run controllers use it to give every run of a
// session its own reproducible stream.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shuffleIDsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIDsInPlace(a []core.VertexID, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
