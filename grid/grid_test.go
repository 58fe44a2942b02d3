package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optgrow/grid"
)

// TestNew_Endpoints verifies the grid spans exactly [GridMin, max].
func TestNew_Endpoints(t *testing.T) {
	g, err := grid.New(8, 150)
	require.NoError(t, err, "valid inputs must not error")

	assert.Len(t, g, 150, "grid length must equal requested size")
	assert.Equal(t, grid.GridMin, g.Min(), "first point must be GridMin")
	assert.Equal(t, 8.0, g.Max(), "last point must be exactly max")
}

// TestNew_StrictlyIncreasing verifies ordering for several sizes.
func TestNew_StrictlyIncreasing(t *testing.T) {
	for _, size := range []int{2, 3, 10, 150, 1000} {
		g, err := grid.New(8, size)
		require.NoError(t, err)
		for i := 1; i < len(g); i++ {
			assert.Greater(t, g[i], g[i-1], "grid must be strictly increasing at %d (size %d)", i, size)
		}
	}
}

// TestNew_InvalidInputs checks the sentinel errors.
func TestNew_InvalidInputs(t *testing.T) {
	_, err := grid.New(8, 1)
	assert.ErrorIs(t, err, grid.ErrGridSize, "size<2 must error ErrGridSize")

	_, err = grid.New(8, 0)
	assert.ErrorIs(t, err, grid.ErrGridSize, "size 0 must error ErrGridSize")

	_, err = grid.New(grid.GridMin, 10)
	assert.ErrorIs(t, err, grid.ErrGridMax, "max==GridMin must error ErrGridMax")

	_, err = grid.New(-1, 10)
	assert.ErrorIs(t, err, grid.ErrGridMax, "negative max must error ErrGridMax")
}

// TestGrid_Clone verifies independence of the copy.
func TestGrid_Clone(t *testing.T) {
	g, err := grid.New(4, 5)
	require.NoError(t, err)

	c := g.Clone()
	assert.Equal(t, g, c, "clone must equal original")

	c[0] = math.Pi
	assert.NotEqual(t, g[0], c[0], "mutating the clone must not touch the original")
}
