package localcache

import (
	"context"
	"sync"
)

// MemoryCache is the fallback when no database is configured. Entries live
// for the process lifetime only, which matches the advisory nature of the
// cache: losing it just means the next sign-in reads the remote store.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]map[string]string)}
}

func (m *MemoryCache) Get(_ context.Context, profileID, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[profileID][key], nil
}

func (m *MemoryCache) Set(_ context.Context, profileID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries[profileID] == nil {
		m.entries[profileID] = make(map[string]string)
	}
	m.entries[profileID][key] = value
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, profileID string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries[profileID], k)
	}
	return nil
}
