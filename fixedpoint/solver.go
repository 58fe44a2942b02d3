// SPDX-License-Identifier: MIT
// Package: optgrow/fixedpoint
//
// solver.go — sup-norm fixed-point iteration.
//
// Design contract (strict):
//   - Deterministic: same operator + guess + options ⇒ same result.
//   - Only sentinel errors from errors.go, plus errors forwarded from
//     the operator itself; no panics, no logging.
//   - MaxIterExceeded is a Status, never an error.

package fixedpoint

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Compute iterates op from initial until convergence or MaxIter.
//
// Contract:
//   - op non-nil, initial non-empty, opts.Tolerance > 0, opts.MaxIter >= 1;
//     violations return the matching sentinel.
//   - initial is not mutated; Result.Values is independently owned.
//   - An operator error aborts the loop and is returned as-is.
//
// State machine: Iterating → Converged | MaxIterExceeded.
//
// Complexity: O(MaxIter · cost(op.Apply)) time, O(len(initial)) space.
func Compute(op Operator, initial []float64, opts Options) (Result, error) {
	if op == nil {
		return Result{}, ErrNilOperator
	}
	if len(initial) == 0 {
		return Result{}, ErrEmptyInitial
	}
	if opts.Tolerance <= 0 {
		return Result{}, ErrTolerance
	}
	if opts.MaxIter < 1 {
		return Result{}, ErrMaxIter
	}
	every := opts.ProgressEvery
	if every < 1 {
		every = DefaultProgressEvery
	}

	cur := make([]float64, len(initial))
	copy(cur, initial)

	res := Result{Status: MaxIterExceeded, SupNorm: math.Inf(1)}
	inf := math.Inf(1)
	reported := 0

	for res.Iterations < opts.MaxIter {
		next, err := op.Apply(cur)
		if err != nil {
			return Result{}, err
		}
		if len(next) != len(cur) {
			return Result{}, ErrDimensionChange
		}

		res.SupNorm = floats.Distance(cur, next, inf)
		cur = next
		res.Iterations++

		if res.SupNorm < opts.Tolerance {
			res.Status = Converged

			break
		}
		if opts.Progress != nil && res.Iterations%every == 0 {
			opts.Progress(res.Iterations, res.SupNorm)
			reported = res.Iterations
		}
	}

	// Terminal report, whichever state ended the loop; skipped when the
	// final iteration already hit the periodic interval.
	if opts.Progress != nil && res.Iterations != reported {
		opts.Progress(res.Iterations, res.SupNorm)
	}

	res.Values = cur

	return res, nil
}
