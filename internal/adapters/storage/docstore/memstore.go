package docstore

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-memory Store used as a test double. It mirrors the
// SQLite store's semantics exactly, including sorted Names output.
type MemStore struct {
	mu          sync.RWMutex
	collections map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string]string)}
}

// Compile-time check that *MemStore satisfies Store.
var _ Store = (*MemStore)(nil)

// GetRaw retrieves a collection's raw payload.
func (m *MemStore) GetRaw(_ context.Context, name string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.collections[name]
	return payload, ok, nil
}

// SetRaw fully replaces a collection's payload.
func (m *MemStore) SetRaw(_ context.Context, name, payload string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[name] = payload
	return nil
}

// Delete removes a collection.
func (m *MemStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections, name)
	return nil
}

// Names lists every stored collection name, sorted.
func (m *MemStore) Names(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Corrupt overwrites a collection with a non-JSON payload. Test helper for
// exercising the store's corruption fallback.
func (m *MemStore) Corrupt(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[name] = "{not json"
}
