// Package optgrow solves the stochastic optimal-growth model — log
// utility, Cobb–Douglas production, lognormal productivity shocks —
// by value-function iteration on a discretized state space.
//
// 🚀 What is optgrow?
//
//	A small, deterministic numerical library that brings together:
//		• State-space tools: strictly increasing income grids & seeded
//		  lognormal shock samples
//		• The Bellman operator: one-step lookahead optimization with a
//		  bounded golden-section maximizer and piecewise-linear
//		  continuation values
//		• A sup-norm fixed-point solver with progress hooks
//		• Content-addressed memoization of converged value functions
//		  (in-memory or on-disk)
//		• A model facade wiring it all: ValueFunction & Greedy policies
//
// ✨ Why choose optgrow?
//
//   - Reproducible – explicit seeds everywhere; same inputs ⇒ same bits
//   - Rock-solid guarantees – sentinel errors, no panics, no NaN leaks
//   - Minimal API – one Config, two queries, injectable cache
//   - Extensible – Utility/Production strategies are small interfaces
//
// Everything is organized under focused subpackages:
//
//	grid/       — income grid construction & lognormal shock sampling
//	bellman/    — the Bellman operator and its scalar maximizer
//	fixedpoint/ — generic sup-norm fixed-point iteration
//	cache/      — get-or-compute stores keyed by content hashes
//	growth/     — the model facade (configuration, solve, greedy)
//	viz/        — optional plotting of value & policy arrays
//	cmd/optgrow — command-line front end
//
// Quick start:
//
//	m, err := growth.New(growth.DefaultConfig())
//	if err != nil { ... }
//	v, err := m.ValueFunction()
//	c, err := m.Greedy(v) // ≈ (1-alpha*beta)·y for the log-linear model
//
// See growth/example_test.go for full examples.
//
//	go get github.com/katalvlaran/optgrow/growth
package optgrow
