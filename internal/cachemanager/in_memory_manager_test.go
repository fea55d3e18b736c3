package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type lineKey string

type renderedLine struct {
	Text  string
	Width int
}

func newLineCache() *InMemoryCacheManager[lineKey, string] {
	return NewInMemoryCacheManager[lineKey, string]("lines", DefaultExpiration, DefaultCleanupInterval)
}

func TestInMemoryCacheManager_StructValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, renderedLine]("lines", DefaultExpiration, DefaultCleanupInterval)
	want := renderedLine{Text: "LOG:  duration: 1.0 ms", Width: 22}
	cache.Set(context.Background(), "1:abc", want, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "1:abc")
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestInMemoryCacheManager_Miss(t *testing.T) {
	cache := newLineCache()

	got, ok := cache.Get(context.Background(), "missing")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_WrongValueType(t *testing.T) {
	cache := newLineCache()
	cache.cache.Set("bad", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "bad")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithRefresh(t *testing.T) {
	cache := newLineCache()

	_, ok := cache.GetWithRefresh(context.Background(), "line", time.Hour)
	require.False(t, ok)

	cache.Set(context.Background(), "line", "styled", 50*time.Millisecond)
	got, ok := cache.GetWithRefresh(context.Background(), "line", time.Hour)
	require.True(t, ok)
	require.Equal(t, "styled", got)

	time.Sleep(100 * time.Millisecond)
	got, ok = cache.Get(context.Background(), "line")
	require.True(t, ok, "refresh should extend expiry")
	require.Equal(t, "styled", got)
}

func TestInMemoryCacheManager_Expiry(t *testing.T) {
	cache := newLineCache()
	cache.Set(context.Background(), "line", "styled", time.Millisecond)

	time.Sleep(5 * time.Millisecond)
	_, ok := cache.Get(context.Background(), "line")
	require.False(t, ok)
}

func TestInMemoryCacheManager_Delete(t *testing.T) {
	cache := newLineCache()
	require.NoError(t, cache.Delete(context.Background()))

	cache.Set(context.Background(), "a", "1", DefaultExpiration)
	cache.Set(context.Background(), "b", "2", DefaultExpiration)
	require.NoError(t, cache.Delete(context.Background(), "a"))

	_, ok := cache.Get(context.Background(), "a")
	require.False(t, ok)
	_, ok = cache.Get(context.Background(), "b")
	require.True(t, ok)
	require.Equal(t, 1, cache.Len())
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := newLineCache()
	cache.Set(context.Background(), "a", "1", DefaultExpiration)
	cache.Set(context.Background(), "b", "2", DefaultExpiration)
	require.Equal(t, 2, cache.Len())

	require.NoError(t, cache.Flush(context.Background()))
	require.Zero(t, cache.Len())
	_, ok := cache.Get(context.Background(), "a")
	require.False(t, ok)
}
