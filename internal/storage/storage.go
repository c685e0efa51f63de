package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Open returns the backend for path: a SQLite database when the path ends in
// ".db", otherwise a diskv directory. The store is initialized and ready.
func Open(path string) (Provider, error) {
	var p Provider
	if strings.HasSuffix(path, ".db") {
		p = NewSQLiteStore(path)
	} else {
		p = NewDiskvStore(path)
	}
	if err := p.Init(); err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}
	return p, nil
}

// MemoryStore keeps values in a map. It backs tests and dry runs.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Init() error  { return nil }
func (m *MemoryStore) Load() error  { return nil }
func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryStore) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]string)
	return nil
}

func (m *MemoryStore) GetConfigPath() string {
	return ""
}
