// SPDX-License-Identifier: MIT
// Package: optgrow/bellman
//
// operator.go — the Bellman operator of the optimal-growth model.
//
// Design contract (strict):
//   - Pure and deterministic: fixed inputs ⇒ identical outputs.
//   - No logging, no panics on data; only sentinel errors from errors.go.
//   - Inputs are never mutated; outputs are freshly allocated.

package bellman

import (
	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/optgrow/grid"
)

// consumptionFloor is the lower bound of the feasible consumption range
// at every grid point. Strictly positive so log utility stays finite at
// the probe points the maximizer actually visits; the true boundary
// c→0 (u→−∞) is thereby avoided rather than special-cased.
const consumptionFloor = 1e-10

// Operator is one application of the dynamic-programming recursion,
// partially applied with everything except the value-function guess.
// Construct with New; the zero value is not usable.
type Operator struct {
	grid   grid.Grid
	beta   float64
	u      Utility
	f      Production
	shocks grid.Sample
	tol    float64
}

// Option customizes an Operator at construction time.
type Option func(*Operator)

// WithMaxTol overrides the maximizer's bracket tolerance.
// Panics if tol <= 0 to surface programmer error early; algorithms
// themselves never panic.
func WithMaxTol(tol float64) Option {
	if tol <= 0 {
		panic("bellman: WithMaxTol(tol<=0)")
	}

	return func(op *Operator) { op.tol = tol }
}

// New builds a Bellman operator over g with discount factor beta,
// utility u, production f, and the given shock sample.
//
// Contract:
//   - beta ∈ (0,1), otherwise ErrDiscountFactor.
//   - u, f non-nil, otherwise ErrNilStrategy.
//   - len(shocks) >= 1, otherwise ErrEmptySample.
//   - len(g) >= 2 and strictly increasing, otherwise ErrShortGrid /
//     ErrGridOrder.
//
// The operator aliases g and shocks; callers must not mutate them.
//
// Complexity: O(len(g)) validation, O(1) space.
func New(g grid.Grid, beta float64, u Utility, f Production, shocks grid.Sample, opts ...Option) (*Operator, error) {
	if beta <= 0 || beta >= 1 {
		return nil, ErrDiscountFactor
	}
	if u == nil || f == nil {
		return nil, ErrNilStrategy
	}
	if len(shocks) == 0 {
		return nil, ErrEmptySample
	}
	if len(g) < 2 {
		return nil, ErrShortGrid
	}
	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			return nil, ErrGridOrder
		}
	}

	op := &Operator{grid: g, beta: beta, u: u, f: f, shocks: shocks, tol: DefaultMaxTol}
	for _, opt := range opts {
		opt(op)
	}

	return op, nil
}

// Apply performs one value-improvement step: it returns Tw, the updated
// value array, without computing a policy. This is the inner call of
// the fixed-point iteration.
//
// Contract: len(w) == len(grid), otherwise ErrDimensionMismatch.
//
// Complexity: O(len(grid) · evals · len(shocks)) time, O(len(grid)) space.
func (op *Operator) Apply(w []float64) ([]float64, error) {
	tw, _, err := op.apply(w, false)

	return tw, err
}

// Greedy computes the w-greedy consumption policy: the maximizing c at
// each grid point given continuation value w. One-shot post-hoc call;
// the fixed-point loop itself never pays for policy recovery.
//
// Contract: len(w) == len(grid), otherwise ErrDimensionMismatch.
//
// Complexity: as Apply.
func (op *Operator) Greedy(w []float64) ([]float64, error) {
	_, policy, err := op.apply(w, true)

	return policy, err
}

// apply is the shared kernel behind Apply and Greedy.
func (op *Operator) apply(w []float64, withPolicy bool) (tw, policy []float64, err error) {
	if len(w) != len(op.grid) {
		return nil, nil, ErrDimensionMismatch
	}

	// Piecewise-linear continuation value. Arguments are clamped to the
	// grid span before Predict, giving constant extrapolation outside
	// [grid[0], grid[n-1]] per the value-approximation contract.
	var pl interp.PiecewiseLinear
	if err = pl.Fit(op.grid, w); err != nil {
		return nil, nil, err
	}
	lo, hi := op.grid.Min(), op.grid.Max()

	n := len(op.grid)
	invSample := 1 / float64(len(op.shocks))
	tw = make([]float64, n)
	if withPolicy {
		policy = make([]float64, n)
	}

	for i, y := range op.grid {
		objective := func(c float64) float64 {
			k := y - c
			if k < 0 {
				// FP slack at the upper bracket endpoint.
				k = 0
			}
			out := op.f.Output(k)

			var cont float64
			for _, z := range op.shocks {
				s := out * z
				if s < lo {
					s = lo
				} else if s > hi {
					s = hi
				}
				cont += pl.Predict(s)
			}

			return op.u.Value(c) + op.beta*cont*invSample
		}

		cStar, vStar := maximize(objective, consumptionFloor, y, op.tol)
		tw[i] = vStar
		if withPolicy {
			policy[i] = cStar
		}
	}

	return tw, policy, nil
}
