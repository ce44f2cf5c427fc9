// Package inherit resolves the ancestor directory that introduced an
// inherited ACE, memoizing ACL fetches for the lifetime of one audit run.
package inherit

import (
	"sync"

	"github.com/permaudit-project/permaudit/pkg/model"
)

// Cache memoizes raw-ACL snapshots by absolute path for one audit run.
// The filesystem is assumed static for the duration of a run, so entries
// are never invalidated. Get-or-insert is atomic per key: a given path is
// fetched from the underlying provider at most once no matter how many
// folder workers ask for it concurrently.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	hits    func()
}

type cacheEntry struct {
	once sync.Once
	acl  *model.Acl
	err  error
}

// NewCache creates an empty cache. onHit, if non-nil, is invoked each time
// a lookup is served without a provider fetch.
func NewCache(onHit func()) *Cache {
	return &Cache{entries: make(map[string]*cacheEntry), hits: onHit}
}

// Get returns the ACL for path, fetching it via fetch on first use. The
// fetch result, including an error, is cached: a failing ancestor stays
// failed for the whole run.
func (c *Cache) Get(path string, fetch func(string) (*model.Acl, error)) (*model.Acl, error) {
	c.mu.Lock()
	e, ok := c.entries[path]
	if !ok {
		e = &cacheEntry{}
		c.entries[path] = e
	}
	c.mu.Unlock()

	fetched := false
	e.once.Do(func() {
		fetched = true
		e.acl, e.err = fetch(path)
	})
	if !fetched && c.hits != nil {
		c.hits()
	}
	return e.acl, e.err
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
