package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"quad/internal/observability"

	"github.com/redis/go-redis/v9"
)

const profileKeyPrefix = "profile:%s"

// ProfileTTL bounds staleness of cached identity records between updates
// performed by other processes.
const ProfileTTL = 5 * time.Minute

// ProfileKey returns the cache key for a profile id.
func ProfileKey(id string) string {
	return fmt.Sprintf(profileKeyPrefix, id)
}

// Invalidate removes a key. A nil client is a no-op.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateProfile removes the cached record for a profile id.
func InvalidateProfile(ctx context.Context, id string) {
	Invalidate(ctx, ProfileKey(id))
}

// Aside implements the cache-aside pattern: a hit decodes into dest, a miss
// calls fetch and stores the fetched value with the given TTL. Cache failures
// degrade to a plain fetch.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if client == nil {
		return fetch()
	}

	prefix, _, _ := strings.Cut(key, ":")

	raw, err := client.Get(ctx, key).Bytes()
	if err == nil {
		if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
			observability.CacheOutcomes.WithLabelValues(prefix, "hit").Inc()
			return nil
		}
		// Undecodable entry: drop it and fall through to fetch.
		client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		return fetch()
	}

	observability.CacheOutcomes.WithLabelValues(prefix, "miss").Inc()

	if err := fetch(); err != nil {
		return err
	}
	if raw, err := json.Marshal(dest); err == nil {
		client.Set(ctx, key, raw, ttl)
	}
	return nil
}
