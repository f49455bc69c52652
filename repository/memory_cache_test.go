package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)
	defer c.Stop()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "v"))
	v, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	defer c.Stop()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v"))

	now = now.Add(59 * time.Second)
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestMemoryCache_DefaultTTL(t *testing.T) {
	c := NewMemoryCache(0)
	defer c.Stop()
	assert.Equal(t, DefaultTTL, c.ttl)
}

func TestMemoryCache_SweepRemovesExpiredWithoutGet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	defer c.Stop()
	c.now = func() time.Time { return now }

	for i := 0; i < 10_000; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("score:v1:%d", i), "{}"))
	}
	require.Equal(t, 10_000, c.Len())

	now = now.Add(24 * time.Hour)
	require.NoError(t, c.Set(ctx, "fresh", "{}"))
	c.sweep()

	assert.Equal(t, 1, c.Len())
	v, ok := c.Get(ctx, "fresh")
	assert.True(t, ok)
	assert.Equal(t, "{}", v)
}

func TestMemoryCache_StopIsIdempotent(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	c.Stop()
	assert.NotPanics(t, c.Stop)
}

func TestMockCache(t *testing.T) {
	ctx := context.Background()
	m := NewMockCache()

	require.NoError(t, m.Set(ctx, "a", "1"))
	v, ok := m.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	m.FailWrites = true
	assert.ErrorIs(t, m.Set(ctx, "b", "2"), ErrMockCacheUnavailable)
	assert.Equal(t, 2, m.Sets)
	assert.Equal(t, 1, m.Gets)
}
