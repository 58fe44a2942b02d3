// Package grid builds the discretized state space of the optimal-growth
// model: the income grid and the multiplicative productivity shocks.
//
// 🚀 What does it provide?
//
//   - Grid — a strictly increasing sequence of admissible income levels,
//     spanning a small positive lower bound (GridMin, to keep log(y)
//     finite) up to a configured maximum.
//   - Sample — a finite sequence of positive lognormal draws
//     exp(mu + sigma·Z), the per-period productivity shocks over which
//     the Bellman operator averages.
//
// ⚙️ Determinism:
//
//	Shocks are never drawn from hidden global randomness. Every sample
//	comes from an explicit seed (seed==0 selects a fixed default seed)
//	or from a caller-supplied rand.Source, so the same inputs always
//	reproduce the same sample — and therefore the same solver output
//	and the same cache key.
//
// Both Grid and Sample are plain float64 slices; treat them as
// immutable once built (the solver packages never mutate them).
package grid
