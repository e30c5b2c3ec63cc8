package session

import (
	"sync"
	"time"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

type expiringEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryExpiring is an in-process ExpiringStore. Expired entries are left in
// the map and filtered on read; the maps involved only ever hold a handful
// of keys.
type MemoryExpiring struct {
	mu      sync.RWMutex
	entries map[string]expiringEntry
}

var _ ExpiringStore = (*MemoryExpiring)(nil)

func NewMemoryExpiring() *MemoryExpiring {
	return &MemoryExpiring{entries: make(map[string]expiringEntry)}
}

func (m *MemoryExpiring) Set(key, value string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = expiringEntry{value: value, expiresAt: NowTimeFunc().Add(ttl)}
}

func (m *MemoryExpiring) Get(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[key]
	if !ok || !NowTimeFunc().Before(entry.expiresAt) {
		return ""
	}
	return entry.value
}

// MemoryKV is an in-process KeyValue backing.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ KeyValue = (*MemoryKV)(nil)

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key]
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
