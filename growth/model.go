// SPDX-License-Identifier: MIT
// Package: optgrow/growth
//
// model.go — construction of the model facade.
//
// Design contract (strict):
//   - New validates fail-fast and never panics on data; validation
//     panics are confined to option constructors (WithX...).
//   - Grid and shocks are built exactly once, at construction; every
//     solve on one Model reuses them (and therefore one cache key).

package growth

import (
	"github.com/katalvlaran/optgrow/bellman"
	"github.com/katalvlaran/optgrow/cache"
	"github.com/katalvlaran/optgrow/fixedpoint"
	"github.com/katalvlaran/optgrow/grid"
)

// Model owns the configuration and the assembled state space of one
// growth-model instance. Construct with New; the zero value is not
// usable. A Model is safe for concurrent reads once built when its
// Store is (cache.Memory and cache.Dir both are).
type Model struct {
	cfg      Config
	grid     grid.Grid
	shocks   grid.Sample
	op       *bellman.Operator
	store    cache.Store
	progress fixedpoint.ProgressFunc
}

// Option customizes a Model at construction time.
type Option func(*Model)

// WithStore injects the memoization store. Defaults to a fresh
// cache.NewMemory(); pass cache.NewDir(path) for persistence across
// processes, or cache.Nop{} to disable memoization.
// Panics on nil (programmer error).
func WithStore(s cache.Store) Option {
	if s == nil {
		panic("growth: WithStore(nil)")
	}

	return func(m *Model) { m.store = s }
}

// WithSeed overrides Config.Seed for the shock draws.
func WithSeed(seed uint64) Option {
	return func(m *Model) { m.cfg.Seed = seed }
}

// WithShocks injects a pre-generated shock sample, bypassing the seeded
// draw entirely (Config.Mu/Sigma/ShockCount/Seed are then ignored).
// The sample is cloned; the caller's slice stays untouched.
// Panics on an empty sample (programmer error).
func WithShocks(s grid.Sample) Option {
	if len(s) == 0 {
		panic("growth: WithShocks(empty)")
	}

	return func(m *Model) { m.shocks = s.Clone() }
}

// WithProgress wires a default progress observer into every solve on
// this model (overridable per call via fixedpoint.Options.Progress).
// Panics on nil (programmer error).
func WithProgress(fn fixedpoint.ProgressFunc) Option {
	if fn == nil {
		panic("growth: WithProgress(nil)")
	}

	return func(m *Model) { m.progress = fn }
}

// New validates cfg, applies options, and builds the grid, the shock
// sample, and the Bellman operator.
//
// Errors: ErrAlpha, ErrBeta, ErrShockCount, or grid sentinels from
// Config.Validate; nothing else (the inner constructors cannot fail on
// a validated config).
//
// Complexity: O(GridSize + ShockCount) time and space.
func New(cfg Config, opts ...Option) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Model{cfg: cfg, store: cache.NewMemory()}
	for _, opt := range opts {
		opt(m)
	}

	g, err := grid.New(m.cfg.GridMax, m.cfg.GridSize)
	if err != nil {
		return nil, err
	}
	m.grid = g

	if m.shocks == nil {
		n := m.cfg.ShockCount
		if n == 0 {
			n = grid.DefaultShockCount
		}
		m.shocks, err = grid.NewShockSample(m.cfg.Mu, m.cfg.Sigma, n, m.cfg.Seed)
		if err != nil {
			return nil, err
		}
	}

	m.op, err = bellman.New(m.grid, m.cfg.Beta,
		bellman.LogUtility{}, bellman.CobbDouglas{Alpha: m.cfg.Alpha}, m.shocks)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Config returns the model's configuration (including any seed applied
// via WithSeed).
func (m *Model) Config() Config { return m.cfg }

// Grid returns a copy of the income grid.
func (m *Model) Grid() grid.Grid { return m.grid.Clone() }

// Shocks returns a copy of the shock sample.
func (m *Model) Shocks() grid.Sample { return m.shocks.Clone() }

// CacheKey returns the memoization key of this model's solves:
// the content hash of (grid, {beta, alpha}, shocks).
func (m *Model) CacheKey() cache.Key {
	return cache.KeyOf(m.grid, []float64{m.cfg.Beta, m.cfg.Alpha}, m.shocks)
}
