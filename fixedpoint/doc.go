// Package fixedpoint iterates an operator on a value array until the
// sup-norm of successive iterates falls below a tolerance.
//
// 🚀 What does it do?
//
//	Starting from an initial guess w₀ it repeatedly applies an operator
//	T (for optgrow: the Bellman operator, a β-contraction in the
//	sup-norm), measures ‖T w − w‖_∞, and stops when the distance drops
//	below Tolerance (Converged) or after MaxIter applications
//	(MaxIterExceeded). Hitting the iteration cap is a terminal status,
//	not an error: the best available iterate is still returned.
//
// ⚙️ Usage:
//
//	res, err := fixedpoint.Compute(op, w0, fixedpoint.Options{
//	    Tolerance: 1e-4,
//	    MaxIter:   100,
//	    ProgressEvery: 5,
//	    Progress: func(it int, norm float64) { log.Printf("iter=%d err=%g", it, norm) },
//	})
//	// res.Values, res.Iterations, res.SupNorm, res.Status
//
// Progress reporting is purely observational — a callback, never a
// logger, so the package stays silent by default and callers decide
// where iteration traces go.
package fixedpoint
