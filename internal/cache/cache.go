// Package cache is a process-local response cache with per-entry TTL.
//
// Entries expire lazily: an expired entry is dropped by the Get that finds
// it. There is no size bound and no background eviction. Writers are expected
// to call ClearAll after every successful mutation of the cached entity.
package cache

import (
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// Outcome is the result of a cache lookup as reported to clients
type Outcome string

const (
	Hit  Outcome = "HIT"
	Miss Outcome = "MISS"
)

// Header is the response header carrying the Outcome of a cached read
const Header = "X-Cache"

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is safe for concurrent use.
type Cache[V any] struct {
	entries *xsync.MapOf[string, entry[V]]
	now     func() time.Time
}

// Option configures a Cache
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates an empty cache
func New[V any](opts ...Option) *Cache[V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[V]{
		entries: xsync.NewMapOf[string, entry[V]](),
		now:     o.now,
	}
}

// Get returns the value stored under key if it has not expired
func (c *Cache[V]) Get(key string) (V, bool) {
	e, ok := c.entries.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	if c.expired(e) {
		c.entries.Compute(key, func(cur entry[V], loaded bool) (entry[V], bool) {
			// a concurrent Set may have stored a fresh entry meanwhile
			return cur, !loaded || c.expired(cur)
		})
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[V]) expired(e entry[V]) bool {
	return !c.now().Before(e.expiresAt)
}

// Set stores value under key until now+ttl. A non-positive ttl is a no-op.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.entries.Store(key, entry[V]{value: value, expiresAt: c.now().Add(ttl)})
}

// Clear removes a single key
func (c *Cache[V]) Clear(key string) {
	c.entries.Delete(key)
}

// ClearAll removes every entry
func (c *Cache[V]) ClearAll() {
	c.entries.Clear()
}

// Len returns the number of stored entries, expired ones included
func (c *Cache[V]) Len() int {
	return c.entries.Size()
}
