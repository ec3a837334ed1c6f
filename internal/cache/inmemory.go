package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	goCache "github.com/patrickmn/go-cache"
)

// DefaultExpiration is the default expiration time for cache entries
const DefaultExpiration = 5 * time.Minute

// DefaultCleanupInterval is how often expired items are removed from the cache
const DefaultCleanupInterval = 10 * time.Minute

// InMemoryCache implements Cache using github.com/patrickmn/go-cache.
// It is used when no Redis address is configured and in tests.
type InMemoryCache struct {
	cache *goCache.Cache
	genMu sync.Mutex
}

func NewInMemoryCache(defaultExpiration time.Duration) *InMemoryCache {
	if defaultExpiration <= 0 {
		defaultExpiration = DefaultExpiration
	}
	return &InMemoryCache{cache: goCache.New(defaultExpiration, DefaultCleanupInterval)}
}

func (c *InMemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	raw, ok := v.([]byte)
	return raw, ok
}

func (c *InMemoryCache) Set(_ context.Context, key string, value []byte, expiration time.Duration) {
	if expiration <= 0 {
		expiration = goCache.DefaultExpiration
	}
	c.cache.Set(key, value, expiration)
}

func (c *InMemoryCache) Delete(_ context.Context, key string) {
	c.cache.Delete(key)
}

func (c *InMemoryCache) DeleteByPrefix(_ context.Context, prefix string) {
	for k := range c.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			c.cache.Delete(k)
		}
	}
}

func (c *InMemoryCache) Flush(_ context.Context) {
	c.cache.Flush()
}

func (c *InMemoryCache) Generation(_ context.Context, path string) int64 {
	v, ok := c.cache.Get(generationKey(path))
	if !ok {
		return 0
	}
	n, _ := v.(int64)
	return n
}

func (c *InMemoryCache) BumpGeneration(_ context.Context, path string) int64 {
	c.genMu.Lock()
	defer c.genMu.Unlock()
	key := generationKey(path)
	if err := c.cache.Add(key, int64(1), goCache.NoExpiration); err == nil {
		return 1
	}
	n, err := c.cache.IncrementInt64(key, 1)
	if err != nil {
		c.cache.Set(key, int64(1), goCache.NoExpiration)
		return 1
	}
	return n
}
