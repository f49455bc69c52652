package repository

import (
	"context"
	"sync"
	"time"
)

const minSweepInterval = 10 * time.Second

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is an in-process CacheRepository with per-entry expiry.
// A background sweep removes expired entries every TTL; call Stop to end it.
type MemoryCache struct {
	mu        sync.RWMutex
	data      map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	stopSweep chan struct{}
	stopOnce  sync.Once
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &MemoryCache{
		data:      make(map[string]memoryEntry),
		ttl:       ttl,
		now:       time.Now,
		stopSweep: make(chan struct{}),
	}
	go m.sweepLoop(max(ttl, minSweepInterval))
	return m
}

func (m *MemoryCache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopSweep:
			return
		}
	}
}

// sweep deletes every entry that has expired.
func (m *MemoryCache) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, entry := range m.data {
		if now.After(entry.expiresAt) {
			delete(m.data, key)
		}
	}
}

// Stop ends the background sweep. Stored entries stay readable.
func (m *MemoryCache) Stop() {
	m.stopOnce.Do(func() { close(m.stopSweep) })
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		if cur, ok := m.data[key]; ok && m.now().After(cur.expiresAt) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = memoryEntry{value: value, expiresAt: m.now().Add(m.ttl)}
	return nil
}

// Len returns the number of stored entries, expired ones included until the
// next sweep.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
