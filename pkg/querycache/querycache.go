package querycache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"notification-admin/pkg/log"
	pkgRedis "notification-admin/pkg/redis"
)

const (
	// DefaultTTL bounds staleness when an invalidation is missed.
	DefaultTTL = 30 * time.Second
)

// New creates a query cache on top of the shared Redis client.
func New(l log.Logger, redis pkgRedis.IRedis, cfg Config) *Cache {
	if cfg.Prefix == "" {
		cfg.Prefix = "qc"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Cache{
		l:     l,
		redis: redis,
		cfg:   cfg,
	}
}

// GetOrLoad returns the cached result for the (collection, key) tuple, loading
// and caching it on miss. Concurrent calls for an identical tuple are collapsed
// so the loader runs at most once per tuple per cache lifetime.
func GetOrLoad[T any](ctx context.Context, c *Cache, collection, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	gen, err := c.generation(ctx, collection)
	if err != nil {
		// Cache unavailable: fall through to the loader, results are still correct.
		c.l.Warnf(ctx, "pkg.querycache.GetOrLoad.generation: %v", err)
		return load(ctx)
	}

	fullKey := fmt.Sprintf("%s:%s:%d:%s", c.cfg.Prefix, collection, gen, key)

	if raw, err := c.redis.Get(ctx, fullKey); err == nil {
		var cached T
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		c.l.Warnf(ctx, "pkg.querycache.GetOrLoad.Unmarshal: corrupt entry for %s", fullKey)
	} else if err != pkgRedis.ErrNotFound {
		c.l.Warnf(ctx, "pkg.querycache.GetOrLoad.Get: %v", err)
	}

	v, err, _ := c.group.Do(fullKey, func() (any, error) {
		loaded, err := load(ctx)
		if err != nil {
			return zero, err
		}

		raw, err := json.Marshal(loaded)
		if err != nil {
			c.l.Warnf(ctx, "pkg.querycache.GetOrLoad.Marshal: %v", err)
			return loaded, nil
		}
		if err := c.redis.Set(ctx, fullKey, string(raw), c.cfg.TTL); err != nil {
			c.l.Warnf(ctx, "pkg.querycache.GetOrLoad.Set: %v", err)
		}
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}

	return v.(T), nil
}

// Invalidate discards all cached results of a collection by bumping its
// generation counter. Entries written under older generations expire via TTL.
func (c *Cache) Invalidate(ctx context.Context, collection string) error {
	if _, err := c.redis.Incr(ctx, c.generationKey(collection)); err != nil {
		c.l.Errorf(ctx, "pkg.querycache.Invalidate.Incr: %v", err)
		return err
	}
	return nil
}

func (c *Cache) generationKey(collection string) string {
	return fmt.Sprintf("%s:%s:gen", c.cfg.Prefix, collection)
}

func (c *Cache) generation(ctx context.Context, collection string) (int64, error) {
	raw, err := c.redis.Get(ctx, c.generationKey(collection))
	if err == pkgRedis.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var gen int64
	if _, err := fmt.Sscanf(raw, "%d", &gen); err != nil {
		return 0, fmt.Errorf("invalid generation counter %q: %w", raw, err)
	}
	return gen, nil
}
