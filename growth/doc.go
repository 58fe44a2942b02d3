// Package growth is the model facade of optgrow: it owns the
// configuration of the log-linear growth model, assembles the state
// space, and exposes the two queries that matter — the optimal value
// function and the greedy consumption policy.
//
// 🚀 The model:
//
//	An agent with log utility splits income y into consumption c and
//	savings k = y − c; savings produce k^alpha next period, scaled by a
//	lognormal productivity shock exp(mu + sigma·Z). Future utility is
//	discounted by beta. The optimal policy of this model is known in
//	closed form, c*(y) = (1 − alpha·beta)·y, which the test suite uses
//	to validate the whole numerical stack end to end.
//
// ⚙️ Usage:
//
//	m, err := growth.New(growth.DefaultConfig(),
//	    growth.WithStore(cache.NewDir("optgrow-cache")), // opt-in persistence
//	    growth.WithSeed(42),
//	)
//	v, err := m.ValueFunction() // memoized fixed-point solve
//	c, err := m.Greedy(v)       // one-shot greedy policy
//
// Value functions are memoized in the injected cache.Store under a key
// derived from the exact (grid, beta, alpha, shocks) content; shocks
// are drawn once at construction from an explicit seed, so the same
// configuration reproduces the same key — and the same solution —
// across runs and processes.
//
// Plotting is deliberately absent here: viz consumes the returned
// arrays without ever being entangled with the numerical core.
package growth
