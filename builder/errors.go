// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Implementations attach context with %w ("<Method>: ...: %w").
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is outside the allowed domain for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not realize the
// topology (retries exhausted, nil constructor, nil graph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid parameter value that must surface
// as an error rather than a panic (e.g. an unknown Platonic solid).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrUnknownTopology is returned by ByName for an unrecognized name.
var ErrUnknownTopology = errors.New("builder: unknown topology")
