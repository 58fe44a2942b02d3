// Package bellman implements one application of the dynamic-programming
// recursion for the stochastic optimal-growth model.
//
// 🚀 What is the Bellman operator?
//
//	Given a candidate value function w on the income grid, the operator
//	computes, at every grid point y, the maximal one-step value
//
//	    (Tw)(y) = max_{c ∈ (0, y]}  u(c) + β · E[ w( f(y−c) · ξ ) ]
//
//	where u is the period utility, f the production technology, β the
//	discount factor, and ξ a multiplicative productivity shock. The
//	expectation is the sample mean over a fixed shock sample; w between
//	grid points is a piecewise-linear interpolant with constant
//	extrapolation beyond the grid bounds.
//
// ✨ Key features:
//   - strategy interfaces Utility / Production with the two canonical
//     implementations (LogUtility, CobbDouglas)
//   - bounded golden-section maximization per grid point — no gradients,
//     no NaN propagation even when u(c)→−∞ at the boundary
//   - pure and deterministic: fixed shocks ⇒ identical output, making
//     the operator safe to memoize and to iterate to a fixed point
//
// ⚙️ Usage:
//
//	op, err := bellman.New(g, 0.95, bellman.LogUtility{},
//	    bellman.CobbDouglas{Alpha: 0.65}, shocks)
//	Tw, err := op.Apply(w)       // one value-improvement step
//	c, err := op.Greedy(vStar)   // one-shot greedy policy
//
// Per application the dominant cost is
// O(len(grid) · evals · len(shocks)) objective terms, where evals is
// the maximizer's evaluation count (≈40 at the default tolerance).
package bellman
