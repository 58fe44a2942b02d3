package fixedpoint

import "errors"

var (
	// ErrNilOperator indicates a nil operator.
	ErrNilOperator = errors.New("fixedpoint: operator must be non-nil")

	// ErrEmptyInitial indicates an empty initial guess.
	ErrEmptyInitial = errors.New("fixedpoint: initial guess must be non-empty")

	// ErrTolerance indicates a non-positive convergence tolerance.
	ErrTolerance = errors.New("fixedpoint: tolerance must be positive")

	// ErrMaxIter indicates an iteration cap below 1.
	ErrMaxIter = errors.New("fixedpoint: max iterations must be at least 1")

	// ErrDimensionChange indicates an operator that returned an array of
	// a different length than its input; iterate distances are undefined.
	ErrDimensionChange = errors.New("fixedpoint: operator changed the array length")
)
