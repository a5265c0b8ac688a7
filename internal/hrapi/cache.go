package hrapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	cacheKeyEmployees   = "hrapi:employees:list"
	cacheKeyDepartments = "hrapi:departments:list"
)

// ListCache caches the two list responses in Redis. All methods are
// best-effort: a nil client, a miss or a Redis error all fall through to
// the repository.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewListCache builds a cache over an optional Redis client.
func NewListCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ListCache {
	return &ListCache{client: client, ttl: ttl, logger: logger}
}

// Get loads a cached list into dest, reporting whether it was present.
func (c *ListCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Debug("cache entry corrupt; ignoring", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores a list response under key for the configured TTL.
func (c *ListCache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops the given keys after a mutation.
func (c *ListCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("cache invalidation failed", zap.Error(err))
	}
}
