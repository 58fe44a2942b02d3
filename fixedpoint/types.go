package fixedpoint

// Operator is one application of the mapping being iterated. It must be
// pure with respect to its input: Apply never mutates w and returns a
// freshly allocated array of the same length.
type Operator interface {
	Apply(w []float64) ([]float64, error)
}

// Status is the terminal state of a fixed-point iteration.
type Status uint8

const (
	// Converged: the sup-norm of successive iterates fell below Tolerance.
	Converged Status = iota

	// MaxIterExceeded: the iteration cap was reached first. Not an
	// error — the final iterate is still the best available approximation.
	MaxIterExceeded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterExceeded:
		return "max-iterations-exceeded"
	default:
		return "unknown"
	}
}

// ProgressFunc observes the iteration: it receives the 1-based
// iteration number and the current sup-norm distance. Called every
// ProgressEvery iterations and at termination, each iteration reported
// at most once. Must not block; it has no effect on control flow.
type ProgressFunc func(iteration int, supNorm float64)

// Options configures a fixed-point computation.
//
// Fields:
//   - Tolerance     — stop once ‖next−cur‖_∞ < Tolerance. Must be > 0.
//   - MaxIter       — hard cap on operator applications. Must be >= 1.
//   - ProgressEvery — reporting interval; values < 1 fall back to
//     DefaultProgressEvery. Ignored when Progress is nil.
//   - Progress      — optional observer; nil disables reporting.
type Options struct {
	Tolerance     float64
	MaxIter       int
	ProgressEvery int
	Progress      ProgressFunc
}

// Solver defaults, matching the classical compute-fixed-point routine
// this package reimplements.
const (
	DefaultTolerance     = 1e-3
	DefaultMaxIter       = 50
	DefaultProgressEvery = 5
)

// DefaultOptions returns the canonical solver configuration.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIter:       DefaultMaxIter,
		ProgressEvery: DefaultProgressEvery,
	}
}

// Result is the outcome of a fixed-point computation.
type Result struct {
	// Values is the final iterate, regardless of terminal status.
	Values []float64

	// Iterations is the number of operator applications performed.
	Iterations int

	// SupNorm is the distance between the last two iterates.
	SupNorm float64

	// Status reports how the iteration terminated.
	Status Status
}
