package extract

import (
	"context"
	"sync"

	"github.com/wikigeo/onthisday/internal/geo"
)

// CachedResolver wraps a Resolver with an in-memory LRU cache keyed by
// page title, so link-dense pages do not look the same target up twice.
// Cache hits make no network calls and report 0.
type CachedResolver struct {
	inner Resolver
	cache *lruCache
}

// NewCachedResolver creates a cache decorator around a resolver.
func NewCachedResolver(inner Resolver, maxEntries int) *CachedResolver {
	return &CachedResolver{
		inner: inner,
		cache: newLRUCache(maxEntries),
	}
}

// Resolve implements Resolver.
func (c *CachedResolver) Resolve(ctx context.Context, href string) (geo.Coordinates, bool, int) {
	title, ok := PageTitle(href)
	if !ok {
		return geo.Coordinates{}, false, 0
	}

	if r, hit := c.cache.get(title); hit {
		return r.coords, r.found, 0
	}

	coords, found, calls := c.inner.Resolve(ctx, href)
	// Negative outcomes are cached too: a page without a directive will
	// not grow one between two links to it on the same day page.
	c.cache.put(title, resolution{coords: coords, found: found})
	return coords, found, calls
}

// resolution is one cached lookup outcome.
type resolution struct {
	coords geo.Coordinates
	found  bool
}

// lruCache is a small thread-safe LRU over resolutions.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*cacheEntry
	head       *cacheEntry // most recently used
	tail       *cacheEntry // least recently used
}

type cacheEntry struct {
	key   string
	value resolution
	prev  *cacheEntry
	next  *cacheEntry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*cacheEntry),
	}
}

func (c *lruCache) get(key string) (resolution, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return resolution{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value resolution) {
	if c.maxEntries <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &cacheEntry{key: key, value: value}
	c.entries[key] = e
	c.pushFront(e)

	if len(c.entries) > c.maxEntries {
		evicted := c.tail
		c.unlink(evicted)
		delete(c.entries, evicted.key)
	}
}

func (c *lruCache) moveToFront(e *cacheEntry) {
	if c.head == e {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

func (c *lruCache) pushFront(e *cacheEntry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) unlink(e *cacheEntry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}
