// SPDX-License-Identifier: MIT
// Package: optgrow/growth
//
// errors.go — sentinel errors for model configuration.
//
// Grid- and sample-shape violations surface as the grid package's own
// sentinels (grid.ErrGridSize, grid.ErrGridMax, grid.ErrSigma,
// grid.ErrSampleSize); this file only adds what the facade itself
// checks. Branch with errors.Is in all cases.

package growth

import "errors"

var (
	// ErrAlpha indicates an output elasticity outside the open interval
	// (0,1); the Cobb–Douglas technology degenerates outside it.
	ErrAlpha = errors.New("growth: alpha must lie in (0,1)")

	// ErrBeta indicates a discount factor outside (0,1); the Bellman
	// operator is only a contraction strictly inside it.
	ErrBeta = errors.New("growth: beta must lie in (0,1)")

	// ErrShockCount indicates a negative shock count. Zero is allowed
	// and selects grid.DefaultShockCount.
	ErrShockCount = errors.New("growth: shock count must be non-negative")
)
