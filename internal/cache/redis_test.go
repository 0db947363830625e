package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return &Cache{Db: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCache_SetAndGet(t *testing.T) {
	c := newTestCache(t)

	want := payload{Name: "bench press", Count: 3}
	require.NoError(t, c.Set("workouts:today:ana", want, time.Hour))

	var got payload
	found, err := c.Get("workouts:today:ana", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestCache_GetMiss(t *testing.T) {
	c := newTestCache(t)

	var got payload
	found, err := c.Get("missing-key", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Invalidate(t *testing.T) {
	c := newTestCache(t)

	require.NoError(t, c.Set("key", payload{Name: "run"}, time.Hour))
	require.NoError(t, c.Invalidate("key"))

	var got payload
	found, err := c.Get("key", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
