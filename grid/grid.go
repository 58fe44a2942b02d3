// SPDX-License-Identifier: MIT
// Package: optgrow/grid
//
// grid.go — construction of the income grid.
//
// Contract (strict):
//   - New returns a strictly increasing slice of exactly size points,
//     grid[0] == GridMin, grid[size-1] == max.
//   - Only sentinel errors from errors.go; no panics.
//   - The returned slice is never retained or mutated by this package.

package grid

// GridMin is the lower bound of every grid. It sits just above zero so
// that log utility stays finite at the first grid point.
const GridMin = 1e-6

// MinGridSize is the smallest admissible number of grid points.
// Piecewise-linear interpolation needs at least one segment.
const MinGridSize = 2

// Grid is an ordered, strictly increasing sequence of income levels.
type Grid []float64

// New builds a uniformly spaced grid of size points on [GridMin, max].
//
// Contract:
//   - size >= MinGridSize, otherwise ErrGridSize.
//   - max > GridMin, otherwise ErrGridMax.
//
// Complexity: O(size) time, O(size) space.
func New(max float64, size int) (Grid, error) {
	if size < MinGridSize {
		return nil, ErrGridSize
	}
	if max <= GridMin {
		return nil, ErrGridMax
	}

	g := make(Grid, size)
	step := (max - GridMin) / float64(size-1)
	for i := range g {
		g[i] = GridMin + float64(i)*step
	}
	// Pin the endpoint exactly; accumulated FP error in the loop above
	// must not leak into cache keys or interpolation bounds.
	g[size-1] = max

	return g, nil
}

// Min returns the first (smallest) grid point.
func (g Grid) Min() float64 { return g[0] }

// Max returns the last (largest) grid point.
func (g Grid) Max() float64 { return g[len(g)-1] }

// Clone returns an independent copy of g.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	copy(c, g)

	return c
}
