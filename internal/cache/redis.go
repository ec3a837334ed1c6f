package cache

import (
	"context"
	"errors"
	"time"

	"charty-dashboard-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces listing keys inside a shared Redis database.
const redisKeyPrefix = "charty:listing:"

const scanBatch = 100

// RedisCache implements Cache on Redis so several server replicas share one
// listing cache and one invalidation signal. Failures are logged and treated
// as misses; the store stays the source of truth.
type RedisCache struct {
	client     redis.UniversalClient
	expiration time.Duration
	log        *logger.Logger
}

func NewRedisCache(client redis.UniversalClient, defaultExpiration time.Duration, log *logger.Logger) *RedisCache {
	if defaultExpiration <= 0 {
		defaultExpiration = DefaultExpiration
	}
	return &RedisCache{client: client, expiration: defaultExpiration, log: log.Named("cache")}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnw("redis get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return raw, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, expiration time.Duration) {
	if expiration <= 0 {
		expiration = c.expiration
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, value, expiration).Err(); err != nil {
		c.log.Warnw("redis set failed", "key", key, "error", err)
	}
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		c.log.Warnw("redis delete failed", "key", key, "error", err)
	}
}

// DeleteByPrefix walks matching keys with SCAN and deletes them batch by batch.
func (c *RedisCache) DeleteByPrefix(ctx context.Context, prefix string) {
	c.deleteMatching(ctx, redisKeyPrefix+escapeGlob(prefix)+"*")
}

func (c *RedisCache) Flush(ctx context.Context) {
	c.deleteMatching(ctx, redisKeyPrefix+"*")
}

func (c *RedisCache) deleteMatching(ctx context.Context, pattern string) {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			c.log.Warnw("redis scan failed", "pattern", pattern, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.log.Warnw("redis delete failed", "pattern", pattern, "error", err)
				return
			}
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

func (c *RedisCache) Generation(ctx context.Context, path string) int64 {
	n, err := c.client.Get(ctx, redisKeyPrefix+generationKey(path)).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnw("redis generation read failed", "path", path, "error", err)
		}
		return 0
	}
	return n
}

// BumpGeneration uses INCR so replicas sharing the database agree on the value.
func (c *RedisCache) BumpGeneration(ctx context.Context, path string) int64 {
	n, err := c.client.Incr(ctx, redisKeyPrefix+generationKey(path)).Result()
	if err != nil {
		c.log.Warnw("redis generation bump failed", "path", path, "error", err)
	}
	return n
}

func escapeGlob(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?', '[', ']', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
