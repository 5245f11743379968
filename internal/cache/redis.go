package cache

import (
	"context"
	"time"

	"arenaapp_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a shared Redis instance, so several app
// replicas share one snapshot cache. Errors degrade to cache misses.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("redis get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

func (c *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Warn("redis set failed", "key", key, "error", err)
	}
}

func (c *Redis) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		logger.Warn("redis delete failed", "key", key, "error", err)
	}
}
