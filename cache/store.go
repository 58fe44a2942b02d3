package cache

// Store is the memoization port required by the solver: get-or-miss and
// put, keyed by the exact content of the inputs. Implementations must
// treat stored values as immutable — callers own what they pass in and
// what they get back, with no aliasing between the two.
type Store interface {
	// Get returns the values stored under key. ok is false on a miss;
	// err is non-nil only for genuine store failures, never for misses.
	Get(key Key) (values []float64, ok bool, err error)

	// Put stores values under key, overwriting any previous entry.
	Put(key Key, values []float64) error
}
