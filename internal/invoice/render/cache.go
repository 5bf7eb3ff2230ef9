package render

import (
	"sync"
	"time"

	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
)

// DefaultCacheTTL bounds how long a rendered document stays reusable.
// Revisions key the cache, so entries only go stale when the process
// keeps an old revision around; the TTL caps memory rather than
// correctness.
const DefaultCacheTTL = 5 * time.Minute

type cacheKey struct {
	revision uint64
	template invdomain.Template
}

type cacheEntry struct {
	doc       *Document
	expiresAt time.Time
}

// Cache memoizes rendered documents per (revision, template) pair.
type Cache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[cacheKey]cacheEntry
}

// NewCache constructs a render cache with the given TTL. A zero ttl
// disables expiry.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, items: make(map[cacheKey]cacheEntry)}
}

// Get returns a cached document for the revision/template pair.
func (c *Cache) Get(revision uint64, tpl invdomain.Template) (*Document, bool) {
	if c == nil {
		return nil, false
	}
	key := cacheKey{revision: revision, template: tpl}
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.doc, true
}

// Set stores a rendered document for the revision/template pair.
func (c *Cache) Set(revision uint64, tpl invdomain.Template, doc *Document) {
	if c == nil || doc == nil {
		return
	}
	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = time.Now().Add(c.ttl)
	}
	c.mu.Lock()
	c.items[cacheKey{revision: revision, template: tpl}] = cacheEntry{
		doc:       doc,
		expiresAt: expiresAt,
	}
	c.mu.Unlock()
}

// Purge drops every entry older than the given revision. Called after
// mutations so superseded renders do not linger for the full TTL.
func (c *Cache) Purge(beforeRevision uint64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	for key := range c.items {
		if key.revision < beforeRevision {
			delete(c.items, key)
		}
	}
	c.mu.Unlock()
}
