package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("user-1"), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow("user-1"))
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	assert.True(t, rl.Allow("user-1"))
	assert.False(t, rl.Allow("user-1"))
	assert.True(t, rl.Allow("user-2"))
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	assert.True(t, rl.Allow("user-1"))
	assert.False(t, rl.Allow("user-1"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, rl.Allow("user-1"))
}
