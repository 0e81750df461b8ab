// Package memory provides in-memory implementations of driven port
// interfaces, used when persistent storage is unavailable or unwanted.
package memory

import (
	"sync"

	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driven"
)

// Ensure KeyValueStore implements the interface.
var _ driven.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore is an in-memory implementation of driven.KeyValueStore.
// Contents last for the process lifetime only.
type KeyValueStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewKeyValueStore creates a new in-memory key-value store.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{
		entries: make(map[string]string),
	}
}

// TryGet reads the value stored under key.
func (s *KeyValueStore) TryGet(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	return value, ok
}

// TrySet stores value under key. In-memory writes always land.
func (s *KeyValueStore) TrySet(key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return true
}

// TryDelete removes key.
func (s *KeyValueStore) TryDelete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Close is a no-op for the in-memory store.
func (s *KeyValueStore) Close() error {
	return nil
}
