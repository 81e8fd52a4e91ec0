// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Model:
//   - Stub matching: every vertex contributes d stubs; the stubs are shuffled
//     and paired consecutively. A pairing with a loop or a repeated pair is
//     rejected and reshuffled, up to maxStubMatchingAttempts times.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n, n*d even (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Exhausted retries → ErrConstructFailed; the graph is left untouched
//     beyond the added vertices.
//
// Random cubic graphs (d=3) are the typical "hard but colorable" input for
// a greedy three-color search.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// RandomRegular returns a Constructor that builds a simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if err := requireRand(MethodRandomRegular, cfg); err != nil {
			return err
		}

		ids, err := addVertices(MethodRandomRegular, g, cfg, n)
		if err != nil {
			return err
		}
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err = addEdge(MethodRandomRegular, g, cfg, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form no loop and no
// repeated unordered pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
