package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/optgrow/cache"
	"github.com/katalvlaran/optgrow/fixedpoint"
	"github.com/katalvlaran/optgrow/growth"
	"github.com/katalvlaran/optgrow/viz"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "optgrow",
		Short:        "Solve the stochastic optimal-growth model by value-function iteration",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "optgrow version %s\n", version)
		},
	}
}

type solveFlags struct {
	configPath string

	alpha      float64
	beta       float64
	mu         float64
	sigma      float64
	gridMax    float64
	gridSize   int
	shockCount int
	seed       uint64

	tol     float64
	maxIter int

	cacheDir   string
	policy     bool
	plotValue  string
	plotPolicy string
	verbose    bool
}

func newSolveCmd() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the optimal value function (and optionally the greedy policy)",
		Long: `Solve builds the model from --config (YAML) with flag overrides,
runs the memoized fixed-point iteration, and prints a summary.
Converged value functions are cached under --cache-dir keyed by the
exact model inputs, so re-running the same model is instant.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, f)
		},
	}

	def := growth.DefaultConfig()
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML model configuration file")
	cmd.Flags().Float64Var(&f.alpha, "alpha", def.Alpha, "output elasticity, in (0,1)")
	cmd.Flags().Float64Var(&f.beta, "beta", def.Beta, "discount factor, in (0,1)")
	cmd.Flags().Float64Var(&f.mu, "mu", def.Mu, "shock log-mean")
	cmd.Flags().Float64Var(&f.sigma, "sigma", def.Sigma, "shock log-std-dev, >= 0")
	cmd.Flags().Float64Var(&f.gridMax, "grid-max", def.GridMax, "upper bound of the income grid")
	cmd.Flags().IntVar(&f.gridSize, "grid-size", def.GridSize, "number of grid points, >= 2")
	cmd.Flags().IntVar(&f.shockCount, "shocks", def.ShockCount, "Monte Carlo shock sample size")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "shock sample seed (0 = fixed default seed)")
	cmd.Flags().Float64Var(&f.tol, "tol", growth.DefaultSolveTolerance, "convergence tolerance (sup-norm)")
	cmd.Flags().IntVar(&f.maxIter, "max-iter", growth.DefaultSolveMaxIter, "iteration cap")
	cmd.Flags().StringVar(&f.cacheDir, "cache-dir", "", "persistent cache directory (default: in-memory only)")
	cmd.Flags().BoolVar(&f.policy, "policy", false, "also compute the greedy consumption policy")
	cmd.Flags().StringVar(&f.plotValue, "plot-value", "", "write a value-function plot to this file")
	cmd.Flags().StringVar(&f.plotPolicy, "plot-policy", "", "write a policy plot to this file (implies --policy)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log solver progress")

	return cmd
}

// loadConfig merges defaults <- YAML file <- changed flags.
func loadConfig(cmd *cobra.Command, f solveFlags) (growth.Config, error) {
	cfg := growth.DefaultConfig()

	if f.configPath != "" {
		data, err := os.ReadFile(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", f.configPath, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("alpha") {
		cfg.Alpha = f.alpha
	}
	if flags.Changed("beta") {
		cfg.Beta = f.beta
	}
	if flags.Changed("mu") {
		cfg.Mu = f.mu
	}
	if flags.Changed("sigma") {
		cfg.Sigma = f.sigma
	}
	if flags.Changed("grid-max") {
		cfg.GridMax = f.gridMax
	}
	if flags.Changed("grid-size") {
		cfg.GridSize = f.gridSize
	}
	if flags.Changed("shocks") {
		cfg.ShockCount = f.shockCount
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}

	return cfg, nil
}

func runSolve(cmd *cobra.Command, f solveFlags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if f.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}
	defer func() { _ = logger.Sync() }()

	var store cache.Store = cache.NewMemory()
	if f.cacheDir != "" {
		store = cache.NewDir(f.cacheDir)
	}

	progress := func(iteration int, supNorm float64) {
		logger.Info("iterating",
			zap.Int("iteration", iteration),
			zap.Float64("sup_norm", supNorm),
		)
	}

	m, err := growth.New(cfg, growth.WithStore(store), growth.WithProgress(progress))
	if err != nil {
		return err
	}

	// Memoized solve, spelled out so the terminal state is reportable.
	key := m.CacheKey()
	values, hit, err := store.Get(key)
	if err != nil {
		return err
	}
	if hit {
		logger.Info("value function loaded from cache", zap.String("key", string(key)))
	} else {
		res, solveErr := m.Solve(fixedpoint.Options{
			Tolerance:     f.tol,
			MaxIter:       f.maxIter,
			ProgressEvery: fixedpoint.DefaultProgressEvery,
		})
		if solveErr != nil {
			return solveErr
		}
		if err = store.Put(key, res.Values); err != nil {
			return err
		}
		values = res.Values
		logger.Info("solved",
			zap.Stringer("status", res.Status),
			zap.Int("iterations", res.Iterations),
			zap.Float64("sup_norm", res.SupNorm),
		)
	}

	out := cmd.OutOrStdout()
	g := m.Grid()
	mid := len(g) / 2
	_, _ = fmt.Fprintf(out, "grid: %d points on [%g, %g]\n", len(g), g.Min(), g.Max())
	_, _ = fmt.Fprintf(out, "v(%.4f) = %.6f\n", g[mid], values[mid])
	_, _ = fmt.Fprintf(out, "v(%.4f) = %.6f\n", g.Max(), values[len(g)-1])

	if f.plotValue != "" {
		if err = viz.SaveValuePlot(g, values, f.plotValue); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "value plot: %s\n", f.plotValue)
	}

	if f.policy || f.plotPolicy != "" {
		policy, greedyErr := m.Greedy(values)
		if greedyErr != nil {
			return greedyErr
		}
		_, _ = fmt.Fprintf(out, "c(%.4f) = %.6f (closed form %.6f)\n",
			g[mid], policy[mid], (1-cfg.Alpha*cfg.Beta)*g[mid])

		if f.plotPolicy != "" {
			if err = viz.SavePolicyPlot(g, policy, cfg.Alpha, cfg.Beta, f.plotPolicy); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "policy plot: %s\n", f.plotPolicy)
		}
	}

	return nil
}
