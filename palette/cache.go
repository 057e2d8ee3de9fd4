package palette

import (
	"sync"

	"github.com/watzon/huebloom/color"
)

type cacheKey struct {
	hex    string
	scheme Scheme
	count  int
}

// Cache memoizes generated palettes by (base color, scheme, count).
// Inputs are immutable value tuples, so entries are never invalidated
// and the cache grows unbounded for the life of the session. It is an
// explicit object so callers own its lifetime; there is no hidden
// package-level state.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*Palette
}

// NewCache returns an empty palette cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*Palette)}
}

// Generate returns the cached palette for the given inputs, generating
// and storing it on first request. The base color is standardized
// before keying, so "abc" and "#AABBCC" share an entry. Safe for
// concurrent use.
func (c *Cache) Generate(baseColor string, scheme Scheme, count int) *Palette {
	key := cacheKey{
		hex:    color.StandardizeHex(baseColor),
		scheme: scheme,
		count:  count,
	}

	c.mu.RLock()
	p, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return p
	}

	p = New(key.hex, scheme, count)

	c.mu.Lock()
	c.entries[key] = p
	c.mu.Unlock()
	return p
}

// Len returns the number of cached palettes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
