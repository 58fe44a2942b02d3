// SPDX-License-Identifier: MIT
// Package: optgrow/bellman
//
// maximize.go — bounded scalar maximization by golden-section search.
//
// gonum/optimize carries only multivariate, unconstrained methods, so
// the bounded 1-D maximizer the operator needs is implemented here.
//
// Contract (strict):
//   - Deterministic, derivative-free, no panics, no allocations.
//   - Objective values of −Inf are legal (they lose every comparison);
//     NaN never originates here.

package bellman

// DefaultMaxTol is the absolute bracket tolerance of the golden-section
// maximizer. 1e-7 is tighter than the 1e-5 a generic bounded minimizer
// would default to; at β=0.95 the extra ~10 objective evaluations per
// grid point buy enough policy accuracy for the closed-form checks in
// the test suite. Override per operator with WithMaxTol.
const DefaultMaxTol = 1e-7

// maxEvals caps objective evaluations per call so a misconfigured
// tolerance can never loop unboundedly.
const maxEvals = 200

// invPhi is (sqrt(5)−1)/2, the golden-section reduction ratio.
const invPhi = 0.6180339887498949

// maximize locates the maximizer of f on [lo, hi].
//
// Contract:
//   - lo <= hi (a degenerate bracket returns its midpoint).
//   - f must be defined on [lo, hi]; −Inf values are permitted.
//
// Returns the approximate argmax x and f(x).
//
// Complexity: O(log((hi−lo)/tol)) objective evaluations, O(1) space.
func maximize(f func(float64) float64, lo, hi, tol float64) (x, fx float64) {
	a, b := lo, hi
	if b-a <= tol {
		x = (a + b) / 2

		return x, f(x)
	}

	x1 := b - invPhi*(b-a)
	x2 := a + invPhi*(b-a)
	f1, f2 := f(x1), f(x2)
	evals := 2

	for b-a > tol && evals < maxEvals {
		if f1 < f2 {
			// Maximum lies in [x1, b]; reuse x2 as the new lower probe.
			a, x1, f1 = x1, x2, f2
			x2 = a + invPhi*(b-a)
			f2 = f(x2)
		} else {
			// Maximum lies in [a, x2]; reuse x1 as the new upper probe.
			b, x2, f2 = x2, x1, f1
			x1 = b - invPhi*(b-a)
			f1 = f(x1)
		}
		evals++
	}

	// The final bracket is at most tol wide; its midpoint is interior,
	// so f(x) is finite whenever f is finite anywhere in the bracket.
	x = (a + b) / 2

	return x, f(x)
}
