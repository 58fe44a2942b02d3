package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optgrow/cache"
)

// TestKeyOf_Deterministic: identical content yields identical keys.
func TestKeyOf_Deterministic(t *testing.T) {
	a := cache.KeyOf([]float64{1, 2, 3}, []float64{0.95, 0.65})
	b := cache.KeyOf([]float64{1, 2, 3}, []float64{0.95, 0.65})
	assert.Equal(t, a, b, "same sections must hash to the same key")
	assert.Len(t, string(a), 16, "keys are 16 hex chars")
}

// TestKeyOf_ContentSensitive: any change to values, order, or section
// boundaries addresses a different entry.
func TestKeyOf_ContentSensitive(t *testing.T) {
	base := cache.KeyOf([]float64{1, 2}, []float64{3})

	assert.NotEqual(t, base, cache.KeyOf([]float64{1, 2.0000001}, []float64{3}),
		"a perturbed value must change the key")
	assert.NotEqual(t, base, cache.KeyOf([]float64{2, 1}, []float64{3}),
		"reordered values must change the key")
	assert.NotEqual(t, base, cache.KeyOf([]float64{1}, []float64{2, 3}),
		"moved section boundary must change the key")
	assert.NotEqual(t, base, cache.KeyOf([]float64{1, 2}, []float64{3}, nil),
		"an extra empty section must change the key")
}

// TestDir_RoundTrip: put then get returns the stored values; unknown
// keys are misses, not errors.
func TestDir_RoundTrip(t *testing.T) {
	d := cache.NewDir(t.TempDir())
	key := cache.KeyOf([]float64{1, 2, 3})
	values := []float64{-94.8, -12.5, 0.25}

	_, ok, err := d.Get(key)
	require.NoError(t, err, "a miss is not an error")
	assert.False(t, ok)

	require.NoError(t, d.Put(key, values))

	got, ok, err := d.Get(key)
	require.NoError(t, err)
	require.True(t, ok, "stored entry must be found")
	assert.Equal(t, values, got)
}

// TestDir_MissingDirIsMiss: reading from a store whose directory was
// never created is a plain miss.
func TestDir_MissingDirIsMiss(t *testing.T) {
	d := cache.NewDir(filepath.Join(t.TempDir(), "never-created"))

	_, ok, err := d.Get(cache.KeyOf([]float64{1}))
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestDir_Overwrite: a second Put under the same key wins.
func TestDir_Overwrite(t *testing.T) {
	d := cache.NewDir(t.TempDir())
	key := cache.KeyOf([]float64{7})

	require.NoError(t, d.Put(key, []float64{1}))
	require.NoError(t, d.Put(key, []float64{2}))

	got, ok, err := d.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []float64{2}, got)
}

// TestDir_CorruptEntryIsError: a mangled entry surfaces as an error,
// never as a silent miss (persistence failures must not be masked).
func TestDir_CorruptEntryIsError(t *testing.T) {
	dir := t.TempDir()
	d := cache.NewDir(dir)
	key := cache.KeyOf([]float64{9})

	require.NoError(t, d.Put(key, []float64{1, 2}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, string(key)+".gob"), []byte("not gob"), 0o644))

	_, ok, err := d.Get(key)
	assert.Error(t, err, "corrupt entries must error")
	assert.False(t, ok)
}

// TestMemory_RoundTripAndIsolation: the store never aliases caller slices.
func TestMemory_RoundTripAndIsolation(t *testing.T) {
	m := cache.NewMemory()
	key := cache.KeyOf([]float64{1})
	values := []float64{10, 20}

	require.NoError(t, m.Put(key, values))
	values[0] = 999 // mutating the caller's slice must not reach the store

	got, ok, err := m.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []float64{10, 20}, got)

	got[1] = -1 // mutating the returned slice must not corrupt the store
	again, _, err := m.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, again)

	assert.Equal(t, 1, m.Len())
}

// TestNop_AlwaysMisses.
func TestNop_AlwaysMisses(t *testing.T) {
	var n cache.Nop
	key := cache.KeyOf([]float64{1})

	require.NoError(t, n.Put(key, []float64{1}))
	_, ok, err := n.Get(key)
	require.NoError(t, err)
	assert.False(t, ok, "Nop must never remember")
}
