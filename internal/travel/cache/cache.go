// Package cache provides a TTL cache for travel-data bundles with request
// collapsing, so identical concurrent queries trigger one aggregation.
package cache

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jashwanth-cse/Dream-Destiny/internal/travel"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel/types"
)

// Cache is an in-memory bundle cache. The zero value is not usable; create
// one with NewCache.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*entry
	ttl      time.Duration
	inflight map[string]*inflight
	done     chan struct{}
}

type entry struct {
	bundle    *types.Bundle
	expiresAt time.Time
}

type inflight struct {
	done   chan struct{}
	bundle *types.Bundle
}

// NewCache creates a Cache with the given TTL and starts its background
// cleanup.
func NewCache(ttl time.Duration) *Cache {
	c := &Cache{
		entries:  make(map[string]*entry),
		ttl:      ttl,
		inflight: make(map[string]*inflight),
		done:     make(chan struct{}),
	}

	go c.cleanup()

	return c
}

// Close stops the background cleanup goroutine.
func (c *Cache) Close() {
	close(c.done)
}

// Key derives the cache key for a travel query.
func Key(q travel.Query) string {
	parts := []string{
		strings.ToLower(strings.TrimSpace(q.Source)),
		strings.ToLower(strings.TrimSpace(q.Destination)),
		q.StartDate,
		q.EndDate,
		strings.ToLower(q.TransportMode),
		strconv.Itoa(q.Travelers),
		strings.ToLower(strings.Join(q.Interests, ",")),
	}
	return strings.Join(parts, "|")
}

// GetOrFetch returns the cached bundle for key, or runs fetch once and
// caches its result. Concurrent callers for the same key share one fetch.
// The boolean reports a cache hit. Bundles with an error annotation are
// returned but not stored, so degraded sections are refetched instead of
// replayed for the full TTL.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch func() *types.Bundle) (*types.Bundle, bool, error) {
	c.mu.Lock()

	if e, ok := c.entries[key]; ok && time.Now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.bundle, true, nil
	}

	if in, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-in.done:
			return in.bundle, false, nil
		case <-ctx.Done():
			return nil, false, context.Cause(ctx)
		}
	}

	in := &inflight{done: make(chan struct{})}
	c.inflight[key] = in
	c.mu.Unlock()

	bundle := fetch()

	c.mu.Lock()
	in.bundle = bundle
	if bundle != nil && bundle.Error == "" {
		c.entries[key] = &entry{
			bundle:    bundle,
			expiresAt: time.Now().Add(c.ttl),
		}
	}
	delete(c.inflight, key)
	c.mu.Unlock()

	close(in.done)

	return bundle, false, nil
}

// Invalidate removes a key from the cache.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// cleanup periodically drops expired entries.
func (c *Cache) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, e := range c.entries {
				if now.After(e.expiresAt) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}
