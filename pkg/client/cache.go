package client

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// listCache is an in-process cache for list responses, keyed by the full
// parameter tuple. Each collection carries a generation counter; bumping
// the generation on a mutation orphans every cached entry for that
// collection so the next read hits the server.
type listCache struct {
	mu      sync.Mutex
	gens    map[string]uint64
	entries map[string]any

	group singleflight.Group
}

func newListCache() *listCache {
	return &listCache{
		gens:    make(map[string]uint64),
		entries: make(map[string]any),
	}
}

func (c *listCache) entryKey(collection, key string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entryKeyLocked(collection, key)
}

func (c *listCache) entryKeyLocked(collection, key string) string {
	return fmt.Sprintf("%s:%d:%s", collection, c.gens[collection], key)
}

// getOrLoad returns the cached value for the parameter tuple, loading it at
// most once across concurrent identical calls.
func (c *listCache) getOrLoad(collection, key string, load func() (any, error)) (any, error) {
	entryKey := c.entryKey(collection, key)

	c.mu.Lock()
	if v, ok := c.entries[entryKey]; ok {
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(entryKey, func() (any, error) {
		c.mu.Lock()
		if cached, ok := c.entries[entryKey]; ok {
			c.mu.Unlock()
			return cached, nil
		}
		c.mu.Unlock()

		loaded, err := load()
		if err != nil {
			return nil, err
		}

		// Store only if the generation is unchanged since the load began.
		// An invalidation mid-flight already swept this key; re-inserting
		// would leave an unreachable entry in the map.
		c.mu.Lock()
		if c.entryKeyLocked(collection, key) == entryKey {
			c.entries[entryKey] = loaded
		}
		c.mu.Unlock()

		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

// invalidate bumps the collection's generation and drops the collection's
// cached entries.
func (c *listCache) invalidate(collection string) {
	c.mu.Lock()
	c.gens[collection]++

	prefix := collection + ":"
	for k := range c.entries {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}
