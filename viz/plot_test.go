package viz_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optgrow/grid"
	"github.com/katalvlaran/optgrow/viz"
)

func testSeries(t *testing.T) (grid.Grid, []float64) {
	t.Helper()

	g, err := grid.New(8, 40)
	require.NoError(t, err)

	w := make([]float64, len(g))
	for i, y := range g {
		w[i] = 5*math.Log(y) - 25
	}

	return g, w
}

// TestSaveValuePlot_WritesFile renders a PNG and checks it landed.
func TestSaveValuePlot_WritesFile(t *testing.T) {
	g, w := testSeries(t)
	path := filepath.Join(t.TempDir(), "value.png")

	require.NoError(t, viz.SaveValuePlot(g, w, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "plot file must be non-empty")
}

// TestSavePolicyPlot_WritesFile renders the policy plot with its
// closed-form overlay.
func TestSavePolicyPlot_WritesFile(t *testing.T) {
	g, _ := testSeries(t)
	policy := make([]float64, len(g))
	for i, y := range g {
		policy[i] = 0.3825 * y
	}
	path := filepath.Join(t.TempDir(), "policy.svg")

	require.NoError(t, viz.SavePolicyPlot(g, policy, 0.65, 0.95, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestSavePlots_DimensionMismatch rejects misshapen series.
func TestSavePlots_DimensionMismatch(t *testing.T) {
	g, _ := testSeries(t)
	short := make([]float64, len(g)-1)
	path := filepath.Join(t.TempDir(), "bad.png")

	assert.ErrorIs(t, viz.SaveValuePlot(g, short, path), viz.ErrDimensionMismatch)
	assert.ErrorIs(t, viz.SavePolicyPlot(g, short, 0.65, 0.95, path), viz.ErrDimensionMismatch)
}
