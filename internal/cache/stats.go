// Package cache holds the Redis-backed cache for the admin statistics snapshot.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"naukri-api/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when nothing usable is cached.
var ErrMiss = errors.New("cache miss")

// StatsKey is the Redis key holding the serialized snapshot.
const StatsKey = "naukri:admin:stats"

// StatsCache stores the most recent admin statistics snapshot.
type StatsCache interface {
	Get(ctx context.Context) (*models.Stats, error)
	Set(ctx context.Context, stats *models.Stats) error
	Invalidate(ctx context.Context) error
}

// redisKV is the part of the go-redis client the cache uses.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStatsCache keeps the snapshot as JSON under StatsKey with a TTL.
type RedisStatsCache struct {
	client redisKV
	ttl    time.Duration
}

// NewRedisStatsCache wraps a go-redis client (or anything with the same Get/Set/Del methods).
func NewRedisStatsCache(client redisKV, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{client: client, ttl: ttl}
}

var _ StatsCache = (*RedisStatsCache)(nil)

func (c *RedisStatsCache) Get(ctx context.Context) (*models.Stats, error) {
	raw, err := c.client.Get(ctx, StatsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to read stats from redis: %w", err)
	}

	var stats models.Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		// A payload from an older layout is treated as absent.
		return nil, ErrMiss
	}
	return &stats, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, stats *models.Stats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	if err := c.client.Set(ctx, StatsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write stats to redis: %w", err)
	}
	return nil
}

func (c *RedisStatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, StatsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats: %w", err)
	}
	return nil
}

// NopStatsCache never holds anything. Used when Redis is not configured.
type NopStatsCache struct{}

var _ StatsCache = NopStatsCache{}

func (NopStatsCache) Get(context.Context) (*models.Stats, error) { return nil, ErrMiss }

func (NopStatsCache) Set(context.Context, *models.Stats) error { return nil }

func (NopStatsCache) Invalidate(context.Context) error { return nil }
