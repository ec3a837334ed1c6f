package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Cache defines the interface for caching listing results. Values are
// opaque bytes so every backend can hold them.
type Cache interface {
	// Get returns the value and whether the key was found
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key. A zero expiration uses the backend default.
	Set(ctx context.Context, key string, value []byte, expiration time.Duration)

	Delete(ctx context.Context, key string)

	// DeleteByPrefix removes all keys with the given prefix
	DeleteByPrefix(ctx context.Context, prefix string)

	// Flush removes all items from the cache
	Flush(ctx context.Context)

	// Generation returns the invalidation generation of a listing path.
	Generation(ctx context.Context, path string) int64

	// BumpGeneration advances the generation of path and returns the new value.
	BumpGeneration(ctx context.Context, path string) int64
}

// Listing paths double as cache key prefixes.
const (
	PathInvoices  = "/dashboard/invoices"
	PathCharts    = "/dashboard/charts"
	PathDashboard = "/dashboard"
)

const keySeparator = "|"

// GenerateKey joins a listing path and its parameters, e.g.
// "/dashboard/invoices|lee|2".
func GenerateKey(path string, params ...interface{}) string {
	parts := make([]string, len(params)+1)
	parts[0] = path
	for i, param := range params {
		parts[i+1] = fmt.Sprintf("%v", param)
	}
	return strings.Join(parts, keySeparator)
}

// generationPrefix keeps generation counters out of every listing prefix.
const generationPrefix = "gen" + keySeparator

func generationKey(path string) string {
	return generationPrefix + path
}

// VersionedKey is GenerateKey with the current generation of path as the
// first parameter. Callers take it before loading, so a fill that races with
// a revalidation lands under a key no later read asks for.
func VersionedKey(ctx context.Context, c Cache, path string, params ...interface{}) string {
	versioned := make([]interface{}, 0, len(params)+1)
	versioned = append(versioned, fmt.Sprintf("v%d", c.Generation(ctx, path)))
	return GenerateKey(path, append(versioned, params...)...)
}

// GetJSON decodes a cached value into dest. A value that no longer decodes
// counts as a miss.
func GetJSON(ctx context.Context, c Cache, key string, dest interface{}) bool {
	raw, ok := c.Get(ctx, key)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetJSON encodes value and stores it. Values that fail to encode are not cached.
func SetJSON(ctx context.Context, c Cache, key string, value interface{}, expiration time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.Set(ctx, key, raw, expiration)
}
