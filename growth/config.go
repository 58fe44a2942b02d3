package growth

import "github.com/katalvlaran/optgrow/grid"

// Config is the immutable parameter tuple of the log-linear growth
// model. Construct via DefaultConfig and override fields, or fill the
// struct directly; New validates it fail-fast.
type Config struct {
	// Alpha is the output elasticity of the Cobb–Douglas technology,
	// in (0,1). Default 0.65.
	Alpha float64 `yaml:"alpha"`

	// Beta is the discount factor, in (0,1). Default 0.95.
	Beta float64 `yaml:"beta"`

	// Mu is the log-mean of the productivity shock. Default 1.
	Mu float64 `yaml:"mu"`

	// Sigma is the log-standard-deviation of the shock, >= 0.
	// Default 0.1.
	Sigma float64 `yaml:"sigma"`

	// GridMax is the upper bound of the income grid. Default 8.
	GridMax float64 `yaml:"grid_max"`

	// GridSize is the number of grid points, >= 2. Default 150.
	GridSize int `yaml:"grid_size"`

	// ShockCount is the Monte Carlo sample size; 0 selects
	// grid.DefaultShockCount (250).
	ShockCount int `yaml:"shock_count"`

	// Seed drives the shock draws; 0 selects the fixed default seed.
	// Same seed ⇒ same shocks ⇒ same cache key and same solution.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the canonical parameterization of the model.
func DefaultConfig() Config {
	return Config{
		Alpha:      0.65,
		Beta:       0.95,
		Mu:         1,
		Sigma:      0.1,
		GridMax:    8,
		GridSize:   150,
		ShockCount: grid.DefaultShockCount,
	}
}

// Validate checks the configuration without building anything.
//
// Returns ErrAlpha, ErrBeta, ErrShockCount, or one of the grid
// package's sentinels (grid.ErrGridSize, grid.ErrGridMax, grid.ErrSigma).
//
// Complexity: O(1).
func (c Config) Validate() error {
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return ErrAlpha
	}
	if c.Beta <= 0 || c.Beta >= 1 {
		return ErrBeta
	}
	if c.Sigma < 0 {
		return grid.ErrSigma
	}
	if c.GridSize < grid.MinGridSize {
		return grid.ErrGridSize
	}
	if c.GridMax <= grid.GridMin {
		return grid.ErrGridMax
	}
	if c.ShockCount < 0 {
		return ErrShockCount
	}

	return nil
}
