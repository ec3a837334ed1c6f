package cache

import (
	"time"

	"charty-dashboard-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// New picks the listing cache backend: Redis when a client is given,
// process memory otherwise.
func New(client *redis.Client, ttl time.Duration, log *logger.Logger) Cache {
	if client == nil {
		log.Infow("listing cache: in-memory", "ttl", ttl)
		return NewInMemoryCache(ttl)
	}
	log.Infow("listing cache: redis", "addr", client.Options().Addr, "ttl", ttl)
	return NewRedisCache(client, ttl, log)
}
