package grid

import "errors"

var (
	// ErrGridSize indicates a grid with fewer than MinGridSize points.
	// A single-point grid admits no interpolation and no choice set.
	ErrGridSize = errors.New("grid: size must be at least 2")

	// ErrGridMax indicates an upper bound at or below GridMin,
	// which would make the grid non-increasing.
	ErrGridMax = errors.New("grid: max must exceed GridMin")

	// ErrSampleSize indicates a shock sample with no draws; the Monte
	// Carlo expectation is undefined over an empty sample.
	ErrSampleSize = errors.New("grid: shock sample size must be at least 1")

	// ErrSigma indicates a negative lognormal scale parameter.
	// sigma==0 is allowed and yields the degenerate sample exp(mu).
	ErrSigma = errors.New("grid: sigma must be non-negative")
)
