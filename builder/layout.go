// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// layout.go: vertex placement strategies.
//
// Positions are normalized to the unit square [0,1]×[0,1], the coordinate
// space the rendering side scales to its canvas.

package builder

import (
	"math"
	"math/rand"
)

// Layout returns the position of the i-th of n new vertices. rng may be nil.
type Layout func(i, n int, rng *rand.Rand) (x, y float64)

const (
	layoutCenter = 0.5
	layoutRadius = 0.4
	layoutMargin = 0.1
)

// CircleLayout places vertices evenly on a circle, starting at 12 o'clock.
func CircleLayout(i, n int, _ *rand.Rand) (float64, float64) {
	if n <= 1 {
		return layoutCenter, layoutCenter
	}
	theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2

	return layoutCenter + layoutRadius*math.Cos(theta), layoutCenter + layoutRadius*math.Sin(theta)
}

// GridLayout places vertices row-major on a ⌈√n⌉-column lattice.
func GridLayout(i, n int, _ *rand.Rand) (float64, float64) {
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	if cols <= 1 {
		return layoutCenter, layoutCenter
	}
	rows := (n + cols - 1) / cols

	return gridPosition(i%cols, cols), gridPosition(i/cols, rows)
}

// RandomLayout draws uniform positions from rng, falling back to
// CircleLayout without one.
func RandomLayout(i, n int, rng *rand.Rand) (float64, float64) {
	if rng == nil {
		return CircleLayout(i, n, nil)
	}

	return rng.Float64(), rng.Float64()
}
