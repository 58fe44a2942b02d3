package cache

import "sync"

// Memory is a process-local, thread-safe Store. Values are copied on
// the way in and out, so callers and the store never alias.
type Memory struct {
	mu      sync.RWMutex
	entries map[Key][]float64
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[Key][]float64)}
}

var _ Store = (*Memory)(nil)

// Get returns a copy of the entry for key, or a miss.
func (m *Memory) Get(key Key) ([]float64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]float64, len(stored))
	copy(out, stored)

	return out, true, nil
}

// Put stores a copy of values under key.
func (m *Memory) Put(key Key, values []float64) error {
	stored := make([]float64, len(values))
	copy(stored, values)

	m.mu.Lock()
	m.entries[key] = stored
	m.mu.Unlock()

	return nil
}

// Len reports the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
