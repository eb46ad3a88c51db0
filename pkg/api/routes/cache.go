package routes

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/railreport/railreport/pkg/redis_client"
	"github.com/rs/zerolog/log"
)

var resultsCache *cache.Cache[string]

// SetupCache wires the shared results cache to Redis. Summary JSON and
// rendered chart PNGs both live here.
func SetupCache() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(90*time.Minute))

	resultsCache = cache.New[string](redisStore)
}

// cachedResult returns the cached value for key, computing and storing
// it on a miss. Without a cache the value is computed every time.
func cachedResult(key string, compute func() (string, error)) (string, error) {
	if resultsCache != nil {
		if value, err := resultsCache.Get(context.Background(), key); err == nil && value != "" {
			return value, nil
		}
	}

	value, err := compute()
	if err != nil {
		return "", err
	}

	if resultsCache != nil {
		if err := resultsCache.Set(context.Background(), key, value); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("Failed to cache result")
		}
	}

	return value, nil
}
