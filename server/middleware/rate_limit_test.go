package middleware

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRateLimiterExhaustsBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		require.True(t, rl.Allow("u1"), "request %d should fit in the burst", i)
	}
	require.False(t, rl.Allow("u1"))
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	require.True(t, rl.Allow("u1"))
	require.True(t, rl.Allow("u1"))
	require.False(t, rl.Allow("u1"))

	// Another user still has a full bucket.
	require.True(t, rl.Allow("u2"))
}

func TestRateLimiterDefaults(t *testing.T) {
	rl := NewRateLimiter(0, 0)

	for i := 0; i < DefaultBurst; i++ {
		require.True(t, rl.Allow("u1"))
	}
	require.False(t, rl.Allow("u1"))
}
