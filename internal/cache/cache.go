// Package cache memoizes expensive document reads with a per-entry
// time-to-live.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is the cache surface the theme registry consumes: return the
// cached document if present and unexpired, otherwise fill, store for
// ttl, and return. A nil document from fill is a valid cached state —
// it suppresses re-fills for the TTL like any other value.
type Store interface {
	Remember(key string, ttl time.Duration, fill func() (map[string]any, error)) (map[string]any, error)
}

// Memory is an in-process Store backed by go-cache. A host that shares
// cache state across worker processes substitutes its own Store.
type Memory struct {
	c *gocache.Cache
}

// NewMemory returns an empty Memory cache. Expired entries are swept
// every ten minutes; expiry itself is enforced on read.
func NewMemory() *Memory {
	return &Memory{c: gocache.New(gocache.NoExpiration, 10*time.Minute)}
}

func (m *Memory) Remember(key string, ttl time.Duration, fill func() (map[string]any, error)) (map[string]any, error) {
	if v, ok := m.c.Get(key); ok {
		doc, _ := v.(map[string]any)
		return doc, nil
	}
	doc, err := fill()
	if err != nil {
		return nil, err
	}
	m.c.Set(key, doc, ttl)
	return doc, nil
}

// Forget drops a cached entry.
func (m *Memory) Forget(key string) {
	m.c.Delete(key)
}
