package cache

// Nop is a Store that remembers nothing: every Get misses and every
// Put is discarded. Use it to disable memoization outright (e.g. in
// benchmarks that must measure the solve itself).
type Nop struct{}

var _ Store = Nop{}

// Get always misses.
func (Nop) Get(Key) ([]float64, bool, error) { return nil, false, nil }

// Put discards values.
func (Nop) Put(Key, []float64) error { return nil }
