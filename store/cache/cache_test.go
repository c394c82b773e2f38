package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCacheSetGetDelete(t *testing.T) {
	c := New(Config{DefaultTTL: time.Minute, CleanupInterval: time.Minute})
	defer c.Close()

	_, ok := c.Get("missing")
	require.False(t, ok)

	c.Set("k", "v")
	got, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", got)

	c.Delete("k")
	_, ok = c.Get("k")
	require.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c := New(Config{DefaultTTL: 10 * time.Millisecond, CleanupInterval: time.Minute})
	defer c.Close()

	c.Set("k", 1)
	time.Sleep(20 * time.Millisecond)
	_, ok := c.Get("k")
	require.False(t, ok)
}

func TestCacheMaxItems(t *testing.T) {
	evicted := 0
	c := New(Config{
		DefaultTTL:      time.Minute,
		CleanupInterval: time.Minute,
		MaxItems:        2,
		OnEviction:      func(string, any) { evicted++ },
	})
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	require.Equal(t, 1, evicted)

	_, okC := c.Get("c")
	require.True(t, okC)
}

func TestCacheCloseIsIdempotent(t *testing.T) {
	c := New(Config{})
	c.Close()
	c.Close()
}
