package kvstore

import (
	"context"
	"sync"

	"github.com/trezcool/alama/core"
)

// Memory is a map-backed KVStore; it is the backend of choice in tests.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var _ core.KVStore = (*Memory)(nil) // interface compliance check

func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (s *Memory) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.entries[key]
	if !ok {
		return nil, core.ErrKeyNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (s *Memory) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	s.entries[key] = cp
	return nil
}

func (s *Memory) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
