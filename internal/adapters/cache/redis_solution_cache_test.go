package cache

import (
	"context"
	"depot-route-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisSolutionCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisSolutionCache(rdb, ttl), mr
}

func sampleSolution() *domain.Solution {
	depot := domain.Point{X: 0, Y: 0}
	return &domain.Solution{
		Assignment: []int{0, 0},
		Routes: []domain.Route{
			{
				DepotID: 0,
				Depot:   depot,
				Path:    []domain.Point{depot, {X: 1, Y: 0}, {X: 2.5, Y: 0.25}, depot},
				Visits:  []int{0, 1},
			},
			{
				DepotID: 1,
				Depot:   domain.Point{X: 50, Y: 50},
				Path:    []domain.Point{{X: 50, Y: 50}},
				Visits:  []int{},
			},
		},
	}
}

func TestRedisSolutionCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, ok)

	want := sampleSolution()
	require.NoError(t, c.Put(ctx, "k1", want))

	got, ok, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRedisSolutionCacheExpires(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "k2", sampleSolution()))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"k2"))

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "k2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSolutionCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, 0)
	require.NoError(t, mr.Set(keyPrefix+"bad", "not json"))

	_, _, err := c.Get(context.Background(), "bad")
	assert.Error(t, err)
}

func TestRedisSolutionCacheRejectsEmptyKey(t *testing.T) {
	c, _ := newTestCache(t, 0)
	ctx := context.Background()

	assert.Error(t, c.Put(ctx, "", sampleSolution()))
	_, _, err := c.Get(ctx, "")
	assert.Error(t, err)
	assert.Error(t, c.Put(ctx, "k", nil))
}

func TestNewRedisSolutionCacheFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedisSolutionCacheFromURL(context.Background(), "redis://"+mr.Addr(), time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	_, err = NewRedisSolutionCacheFromURL(context.Background(), "://bad", time.Minute)
	assert.Error(t, err)
}
