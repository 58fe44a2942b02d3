package bellman

import "math"

// Utility maps a consumption level to per-period utility.
// Implementations must tolerate boundary inputs: a c at or below the
// domain edge yields the domain's minimal value (e.g. −Inf), never NaN,
// so the maximizer can simply avoid that boundary.
type Utility interface {
	Value(c float64) float64
}

// Production maps saved income k = y − c to next-period output f(k).
// Implementations must accept k == 0 and return a finite value.
type Production interface {
	Output(k float64) float64
}

// LogUtility is natural-log period utility, u(c) = ln c.
// Value(0) is −Inf, the domain minimum, by math.Log convention.
type LogUtility struct{}

// Value returns ln(c).
func (LogUtility) Value(c float64) float64 { return math.Log(c) }

// CobbDouglas is the power production technology f(k) = k^Alpha.
// Alpha is the output elasticity and must lie in (0,1); the model
// facade validates it, this type does not re-check on the hot path.
type CobbDouglas struct {
	Alpha float64
}

// Output returns k^Alpha. Output(0) == 0 for any positive Alpha.
func (p CobbDouglas) Output(k float64) float64 { return math.Pow(k, p.Alpha) }
