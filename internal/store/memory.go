// ABOUTME: In-memory KV implementation.
// ABOUTME: Used by tests and as a fallback when no backend is available.
package store

import "sync"

// MemoryStore is a map-backed KV. Values survive only for the process
// lifetime.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

// Get returns the value for key, or (nil, nil) when absent.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// Set overwrites the value for key.
func (s *MemoryStore) Set(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	val := make([]byte, len(data))
	copy(val, data)
	s.data[key] = val
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
