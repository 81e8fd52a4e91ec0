// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_random_connected.go - implementation of RandomConnected(n) constructor.
//
// Model (the "random graph" action of an interactive session):
//   1. Add n vertices positioned by the layout.
//   2. Random spanning tree: vertex i (i ≥ 1) links to a uniformly chosen
//      earlier vertex j < i. The result is connected.
//   3. Extra edges: draw random pairs until ⌊n/2⌋ new edges were added or n²
//      draws were made. Self-pairs and existing edges are skipped.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n) tree + O(n²) worst-case draws.

package builder

import "github.com/katalvlaran/lvcolor/core"

// RandomConnected returns a Constructor that builds a connected random graph
// with n-1 tree edges plus up to ⌊n/2⌋ extra edges.
func RandomConnected(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomConnected, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if err := requireRand(MethodRandomConnected, cfg); err != nil {
			return err
		}

		ids, err := addVertices(MethodRandomConnected, g, cfg, n)
		if err != nil {
			return err
		}
		rng := cfg.rng

		for i := 1; i < n; i++ {
			if err = addEdge(MethodRandomConnected, g, cfg, ids[i], ids[rng.Intn(i)]); err != nil {
				return err
			}
		}

		extra := n / 2
		for added, tries := 0, 0; added < extra && tries < n*n; tries++ {
			u, v := ids[rng.Intn(n)], ids[rng.Intn(n)]
			if u == v || g.HasEdge(u, v) {
				continue
			}
			if err = addEdge(MethodRandomConnected, g, cfg, u, v); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}
