package querycache

import (
	"time"

	"golang.org/x/sync/singleflight"

	"notification-admin/pkg/log"
	pkgRedis "notification-admin/pkg/redis"
)

// Config is the configuration for a query cache.
type Config struct {
	// Prefix namespaces all keys written by this cache.
	Prefix string
	// TTL is how long a cached result stays valid unless invalidated earlier.
	TTL time.Duration
}

// Cache stores list-query results in Redis keyed by the exact parameter tuple.
// Invalidation is generational: each collection has a generation counter and
// cached entries embed the generation they were written under, so bumping the
// counter orphans every entry of the collection without key scans.
type Cache struct {
	l     log.Logger
	redis pkgRedis.IRedis
	cfg   Config
	group singleflight.Group
}
