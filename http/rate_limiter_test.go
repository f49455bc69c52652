package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Burst(t *testing.T) {
	rl := NewRateLimiter(60, 3)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d", i)
	}
	assert.False(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("5.6.7.8"))
	assert.Equal(t, 2, rl.clientCount())
}

func TestRateLimiter_DisabledWhenRateNotPositive(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	defer rl.Stop()

	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow("1.2.3.4"))
	}
}

func TestRateLimiter_DefaultBurst(t *testing.T) {
	rl := NewRateLimiter(5, 0)
	defer rl.Stop()
	assert.Equal(t, 5, rl.burst)
}

func TestRateLimiter_CleanupIdleClients(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	defer rl.Stop()

	rl.Allow("1.2.3.4")
	rl.cleanup(time.Now())
	assert.Equal(t, 1, rl.clientCount())

	rl.cleanup(time.Now().Add(clientIdleThreshold + time.Minute))
	assert.Zero(t, rl.clientCount())
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
