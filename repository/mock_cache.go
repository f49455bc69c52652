package repository

import (
	"context"
	"errors"
	"sync"
)

// ErrMockCacheUnavailable is returned by MockCache.Set when FailWrites is set.
var ErrMockCacheUnavailable = errors.New("mock cache unavailable")

// MockCache is a map-backed CacheRepository for tests. It counts calls and
// can be told to fail writes.
type MockCache struct {
	mu         sync.Mutex
	Data       map[string]string
	Gets       int
	Sets       int
	FailWrites bool
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]string),
	}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sets++
	if m.FailWrites {
		return ErrMockCacheUnavailable
	}
	m.Data[key] = value
	return nil
}

// Put stores value under key without counting a Set.
func (m *MockCache) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}
