// Package builder provides validation helpers to enforce parameter contracts
// in Constructor factories.
package builder

import (
	"fmt"
	"math"
)

// validateMin ensures that got ≥ min, else ErrTooFewVertices with context.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// requireRand rejects a stochastic build without a random source.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}
