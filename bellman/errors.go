// SPDX-License-Identifier: MIT
// Package: optgrow/bellman
//
// errors.go — sentinel errors for the bellman package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Algorithms never panic on data; validation panics are confined to
//     option constructors (WithX...).

package bellman

import "errors"

var (
	// ErrDiscountFactor indicates beta outside the open interval (0,1).
	// Outside that range the recursion is not a contraction and the
	// fixed-point iteration has no convergence guarantee.
	ErrDiscountFactor = errors.New("bellman: discount factor must lie in (0,1)")

	// ErrNilStrategy indicates a nil Utility or Production implementation.
	ErrNilStrategy = errors.New("bellman: utility and production must be non-nil")

	// ErrEmptySample indicates an empty shock sample; the Monte Carlo
	// expectation is undefined.
	ErrEmptySample = errors.New("bellman: shock sample must be non-empty")

	// ErrShortGrid indicates a grid with fewer than two points.
	ErrShortGrid = errors.New("bellman: grid must have at least 2 points")

	// ErrGridOrder indicates a grid that is not strictly increasing;
	// the interpolant is undefined on such a grid.
	ErrGridOrder = errors.New("bellman: grid must be strictly increasing")

	// ErrDimensionMismatch indicates a value array whose length differs
	// from the grid's.
	ErrDimensionMismatch = errors.New("bellman: value array length must match grid length")
)
