// Package query is the client-side data-fetching layer pages use to load
// their content. It caches fetch results per key with a TTL and collapses
// concurrent fetches of the same key into a single call.
package query

import (
	"context"
	"sync"
	"time"

	"github.com/lanterntools/lantern/errors"
	"github.com/sirupsen/logrus"
)

// DefaultTTL is the freshness window of a cached value when none is
// configured.
const DefaultTTL = 5 * time.Minute

// FetchFunc produces the value for a cache key.
type FetchFunc func(ctx context.Context) (interface{}, error)

// entry is a cache slot. ready is closed once the fetch has settled; until
// then value and err must not be read.
type entry struct {
	ready   chan struct{}
	value   interface{}
	err     error
	expires time.Time

	// invalidated marks an in-flight entry whose result should not be
	// cached once it arrives. Waiters still receive the result.
	invalidated bool
}

// Cache is a TTL cache keyed by string. Failed fetches are not cached, so a
// retry after an error always refetches.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*entry
	log     *logrus.Entry

	// now is swapped in tests to control expiry.
	now func() time.Time
}

// NewCache creates a cache. A non-positive ttl falls back to DefaultTTL.
func NewCache(ttl time.Duration, log *logrus.Entry) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]*entry),
		log:     log,
		now:     time.Now,
	}
}

// Get returns the cached value for key, or runs fetch to produce it.
// Concurrent Gets for the same key share one fetch; every waiter receives
// the same result. A canceled context abandons the wait but does not cancel
// the shared fetch for the other waiters.
func (c *Cache) Get(ctx context.Context, key string, fetch FetchFunc) (interface{}, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		if !c.settled(e) || c.fresh(e) {
			c.mu.Unlock()
			return c.wait(ctx, key, e)
		}
		// Stale: fall through and refetch.
	}

	e := &entry{ready: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	c.log.WithField("key", key).Debug("Cache miss, fetching")
	value, err := fetch(ctx)

	c.mu.Lock()
	if err != nil {
		e.err = errors.QueryFailed(key, err)
	} else {
		e.value = value
		e.expires = c.now().Add(c.ttl)
	}
	// Errors are never cached, and an entry invalidated mid-fetch is
	// dropped on arrival. Only release the slot if it still holds this
	// entry; a newer fetch may already occupy the key.
	if err != nil || e.invalidated {
		if cur, ok := c.entries[key]; ok && cur == e {
			delete(c.entries, key)
		}
	}
	close(e.ready)
	c.mu.Unlock()

	return e.value, e.err
}

// wait blocks until the entry's fetch settles or ctx is canceled.
func (c *Cache) wait(ctx context.Context, key string, e *entry) (interface{}, error) {
	select {
	case <-e.ready:
		return e.value, e.err
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), errors.ErrCodeQueryCanceled, "query canceled").
			WithDetail("key", key)
	}
}

// settled reports whether the entry's fetch has finished.
func (c *Cache) settled(e *entry) bool {
	select {
	case <-e.ready:
		return true
	default:
		return false
	}
}

// fresh reports whether a settled entry is still within its TTL.
func (c *Cache) fresh(e *entry) bool {
	return c.now().Before(e.expires)
}

// Invalidate drops the cached value for key. An in-flight fetch is left to
// finish; its waiters still receive the result, but the next Get refetches.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && c.settled(e) {
		delete(c.entries, key)
	} else if ok {
		e.invalidated = true
	}
}

// InvalidateAll drops every settled entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if c.settled(e) {
			delete(c.entries, key)
		} else {
			e.invalidated = true
		}
	}
}

// Len returns the number of cache slots, including in-flight fetches.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
