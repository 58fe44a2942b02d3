package viz

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/optgrow/grid"
)

// ErrDimensionMismatch indicates an array whose length differs from the
// grid's; such a series cannot be plotted against it.
var ErrDimensionMismatch = errors.New("viz: array length must match grid length")

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 5 * vg.Inch
)

// SaveValuePlot writes a plot of the value function w over g to path.
func SaveValuePlot(g grid.Grid, w []float64, path string) error {
	if len(w) != len(g) {
		return ErrDimensionMismatch
	}

	p := plot.New()
	p.Title.Text = "Value function"
	p.X.Label.Text = "income y"
	p.Y.Label.Text = "value"

	line, err := plotter.NewLine(points(g, w))
	if err != nil {
		return fmt.Errorf("viz: value series: %w", err)
	}
	p.Add(line)
	p.Legend.Add("value function", line)

	if err = p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("viz: save %s: %w", path, err)
	}

	return nil
}

// SavePolicyPlot writes a plot of the computed greedy policy over g to
// path, overlaid with the closed-form optimal policy
// c*(y) = (1 − alpha·beta)·y for comparison.
func SavePolicyPlot(g grid.Grid, policy []float64, alpha, beta float64, path string) error {
	if len(policy) != len(g) {
		return ErrDimensionMismatch
	}

	p := plot.New()
	p.Title.Text = "Greedy policy"
	p.X.Label.Text = "income y"
	p.Y.Label.Text = "consumption c"
	p.Legend.Top = true
	p.Legend.Left = true

	approx, err := plotter.NewLine(points(g, policy))
	if err != nil {
		return fmt.Errorf("viz: policy series: %w", err)
	}
	p.Add(approx)
	p.Legend.Add("approximate policy function", approx)

	exact := make([]float64, len(g))
	for i, y := range g {
		exact[i] = (1 - alpha*beta) * y
	}
	truth, err := plotter.NewLine(points(g, exact))
	if err != nil {
		return fmt.Errorf("viz: closed-form series: %w", err)
	}
	truth.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(truth)
	p.Legend.Add("true policy function", truth)

	if err = p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("viz: save %s: %w", path, err)
	}

	return nil
}

// points zips a grid and a parallel array into a plottable series.
func points(g grid.Grid, v []float64) plotter.XYs {
	xys := make(plotter.XYs, len(g))
	for i := range g {
		xys[i].X = g[i]
		xys[i].Y = v[i]
	}

	return xys
}
