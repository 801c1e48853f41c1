package kv

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of Store with an optional hard
// item capacity, mirroring a quota-enforcing backend. A capacity of 0 means
// unbounded.
type MemoryStore struct {
	mu       sync.RWMutex
	items    map[string][]byte
	capacity int
}

// NewMemoryStore creates a new in-memory store with the given item capacity.
func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{
		items:    make(map[string][]byte),
		capacity: capacity,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return nil, ErrNotFound
	}

	return value, nil
}

func (m *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Overwrites never grow the item count, so they are always allowed.
	if _, exists := m.items[key]; !exists && m.capacity > 0 && len(m.items) >= m.capacity {
		return ErrCapacityExceeded
	}

	m.items[key] = value

	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)

	return nil
}

// Len returns the number of stored keys.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items)
}

// Compile-time check.
var _ Store = (*MemoryStore)(nil)
