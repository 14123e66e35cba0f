package dedupe_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gigradar/gigradar/internal/dedupe"
)

func TestCacheSeenDuplicate(t *testing.T) {
	cache := dedupe.NewCache(10, time.Minute)
	require.False(t, cache.Seen("https://example.com/jobs/1"))
	cache.Remember("https://example.com/jobs/1")
	require.True(t, cache.Seen("https://example.com/jobs/1"))
}

func TestCacheTTLExpiry(t *testing.T) {
	cache := dedupe.NewCache(10, 20*time.Millisecond)
	cache.Remember("url")
	require.True(t, cache.Seen("url"))
	time.Sleep(25 * time.Millisecond)
	require.False(t, cache.Seen("url"))
	require.Equal(t, 0, cache.Len())
}

func TestCacheCapacityEvictsOldest(t *testing.T) {
	cache := dedupe.NewCache(1, time.Minute)
	cache.Remember("first")
	cache.Remember("second")

	require.False(t, cache.Seen("first"))
	require.True(t, cache.Seen("second"))
	require.Equal(t, 1, cache.Len())
}

func TestCacheRememberRefreshes(t *testing.T) {
	cache := dedupe.NewCache(2, time.Minute)
	cache.Remember("a")
	cache.Remember("b")
	cache.Remember("a") // refresh; "b" is now the oldest
	cache.Remember("c")

	require.True(t, cache.Seen("a"))
	require.False(t, cache.Seen("b"))
	require.True(t, cache.Seen("c"))
}
