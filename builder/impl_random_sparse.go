// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Trial order: i asc, j asc (j>i). Fixed seed ⇒ fixed graph.

package builder

import "github.com/katalvlaran/lvcolor/core"

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if p > MinProbability && p < MaxProbability {
			if err := requireRand(MethodRandomSparse, cfg); err != nil {
				return err
			}
		}

		ids, err := addVertices(MethodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == MaxProbability || (p > MinProbability && cfg.rng.Float64() < p)
				if !include {
					continue
				}
				if err = addEdge(MethodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
