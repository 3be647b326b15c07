package bookingview

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Tour and vehicle records change rarely but are re-read on every listing, so
// adapters keep them in the shared Redis cache for a short TTL. Booking records
// themselves are never cached: a listing must reflect the latest committed
// status change.
const lookupCacheTTL = 5 * time.Minute

// cacheGet loads a cached JSON value into dst. Any miss, decode failure or
// unreachable cache reports false and the caller falls through to the store.
func cacheGet(cache *redis.Client, key string, dst any) bool {
	if cache == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	data, err := cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// cacheSet stores value as JSON under key, best-effort.
func cacheSet(cache *redis.Client, key string, value any) {
	if cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	cache.Set(ctx, key, data, lookupCacheTTL)
}
