// Package propstore defines the key/value property store contract that
// generated Go accessors bind to, plus an in-memory implementation for
// tests and local development.
//
// The store owns the atomicity of a single get or set; generated code adds
// no locking and no caching, so every getter call observes the store as it
// is at that moment.
package propstore

import "sync"

// Store is an external key/value service holding string-valued entries.
type Store interface {
	// Get returns the stored value for key, or false when the key is absent.
	Get(key string) (string, bool)
	// Set writes value under key and reports whether the write succeeded.
	Set(key, value string) bool
}

// MemStore is a Store backed by a map. Single-key gets and sets are atomic.
type MemStore struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return true
}
