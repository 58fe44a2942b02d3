// SPDX-License-Identifier: MIT
// Package: optgrow/growth
//
// solve.go — value-function and greedy-policy queries.
//
// Memoization contract:
//   - Key: exact content of (grid, beta, alpha, shocks); solver options
//     are NOT part of the key, matching the classical formulation where
//     the facade always solves at its canonical tolerance.
//   - Store failures propagate to the caller; a cache problem must
//     never silently degrade into recomputation.

package growth

import (
	"math"

	"github.com/katalvlaran/optgrow/fixedpoint"
)

// Canonical solver parameters of the facade, as in the classical
// log-linear growth treatment: tolerance 1e-4, at most 100 Bellman
// applications, progress every 5.
const (
	DefaultSolveTolerance = 1e-4
	DefaultSolveMaxIter   = 100
)

// solveOptions returns the facade's canonical solver options.
func (m *Model) solveOptions() fixedpoint.Options {
	return fixedpoint.Options{
		Tolerance:     DefaultSolveTolerance,
		MaxIter:       DefaultSolveMaxIter,
		ProgressEvery: fixedpoint.DefaultProgressEvery,
		Progress:      m.progress,
	}
}

// initialGuess is the conventional starting point 5·ln(y) − 25, close
// enough in shape to the true value function to converge quickly.
func (m *Model) initialGuess() []float64 {
	w := make([]float64, len(m.grid))
	for i, y := range m.grid {
		w[i] = 5*math.Log(y) - 25
	}

	return w
}

// ValueFunction computes the approximate optimal value function at the
// facade's canonical solver parameters, memoized in the injected store
// under CacheKey(). On a hit the stored array is returned without
// recomputation; on a miss the fixed-point solve runs and its result is
// stored before returning.
//
// The returned slice is owned by the caller.
//
// Complexity: O(1) store lookups plus, on a miss,
// O(MaxIter · gridSize · evals · shockCount).
func (m *Model) ValueFunction() ([]float64, error) {
	return m.ValueFunctionWith(m.solveOptions())
}

// ValueFunctionWith is ValueFunction with caller-controlled solver
// options. A nil opts.Progress falls back to the observer installed via
// WithProgress. Note the memo key ignores opts: callers varying the
// tolerance should inject distinct stores (or cache.Nop{}).
func (m *Model) ValueFunctionWith(opts fixedpoint.Options) ([]float64, error) {
	key := m.CacheKey()

	stored, ok, err := m.store.Get(key)
	if err != nil {
		return nil, err
	}
	if ok {
		return stored, nil
	}

	res, err := m.Solve(opts)
	if err != nil {
		return nil, err
	}
	if err = m.store.Put(key, res.Values); err != nil {
		return nil, err
	}

	return res.Values, nil
}

// Solve runs the fixed-point iteration directly, bypassing the store,
// and exposes the full terminal state (status, iterations, final
// sup-norm). MaxIterExceeded is a status, not an error: Result.Values
// then holds the best available approximation.
func (m *Model) Solve(opts fixedpoint.Options) (fixedpoint.Result, error) {
	if opts.Progress == nil {
		opts.Progress = m.progress
	}

	return fixedpoint.Compute(m.op, m.initialGuess(), opts)
}

// Greedy computes the w-greedy consumption policy on the grid. If w is
// nil, the memoized ValueFunction is computed first. The result is a
// fresh array parallel to the grid: Greedy(w)[i] is the optimal
// consumption at income Grid()[i].
//
// Contract: a non-nil w must have grid length
// (bellman.ErrDimensionMismatch otherwise).
func (m *Model) Greedy(w []float64) ([]float64, error) {
	if w == nil {
		var err error
		if w, err = m.ValueFunction(); err != nil {
			return nil, err
		}
	}

	return m.op.Greedy(w)
}
