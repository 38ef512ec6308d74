package cache

import (
	"context"
	"depot-route-service/internal/domain"
	"depot-route-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "depot-route:solution:"

// Redis-backed cache of solved inputs.
// Entries expire after TTL; a zero TTL keeps them until evicted.
type RedisSolutionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSolutionCache(rdb *redis.Client, ttl time.Duration) *RedisSolutionCache {
	return &RedisSolutionCache{rdb: rdb, ttl: ttl}
}

// NewRedisSolutionCacheFromURL parses a redis:// URL and verifies the connection.
func NewRedisSolutionCacheFromURL(ctx context.Context, url string, ttl time.Duration) (*RedisSolutionCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("solution cache: parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("solution cache: ping redis: %w", err)
	}

	return NewRedisSolutionCache(rdb, ttl), nil
}

// Fetch a cached solution.
func (c *RedisSolutionCache) Get(ctx context.Context, key string) (_ *domain.Solution, _ bool, err error) {
	defer obs.Time(ctx, "solution.cache.Get")(&err)

	if key == "" {
		return nil, false, errors.New("get solution cache: key must not be empty")
	}

	data, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get solution cache: %w", err)
	}

	var sol domain.Solution
	if err := json.Unmarshal(data, &sol); err != nil {
		return nil, false, fmt.Errorf("get solution cache: decode key=%q: %w", key, err)
	}

	return &sol, true, nil
}

// Store a solution.
func (c *RedisSolutionCache) Put(ctx context.Context, key string, sol *domain.Solution) error {
	if key == "" {
		return errors.New("put solution cache: key must not be empty")
	}
	if sol == nil {
		return errors.New("put solution cache: solution is nil")
	}

	data, err := json.Marshal(sol)
	if err != nil {
		return fmt.Errorf("put solution cache: encode: %w", err)
	}

	if err := c.rdb.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("put solution cache key=%q: %w", key, err)
	}

	return nil
}

// Close releases the underlying client.
func (c *RedisSolutionCache) Close() error {
	return c.rdb.Close()
}
