package definition

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache keeps a loaded catalog in memory and reloads it from disk once its TTL expires.
// Concurrent reloads of an expired catalog are collapsed into one read.
type Cache struct {
	path string
	ttl  time.Duration

	mu      sync.RWMutex
	catalog *Catalog
	built   time.Time
	sf      singleflight.Group
}

// NewCache creates a cache for the catalog at path. A zero ttl reloads on every call.
func NewCache(path string, ttl time.Duration) *Cache {
	return &Cache{path: path, ttl: ttl}
}

func (c *Cache) fresh() (*Catalog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.catalog == nil || c.ttl == 0 || time.Since(c.built) > c.ttl {
		return nil, false
	}
	return c.catalog, true
}

// Catalog returns the cached catalog, loading it if missing or expired.
// A failed reload keeps the previous catalog cached.
func (c *Cache) Catalog() (*Catalog, error) {
	if catalog, ok := c.fresh(); ok {
		return catalog, nil
	}

	result, err, _ := c.sf.Do(c.path, func() (any, error) {
		if catalog, ok := c.fresh(); ok {
			return catalog, nil
		}

		catalog, err := LoadCatalog(c.path)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.catalog = catalog
		c.built = time.Now()
		c.mu.Unlock()
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Catalog), nil
}

// Lookup returns the definition stored under key.
func (c *Cache) Lookup(key string) (*FileDefinition, error) {
	catalog, err := c.Catalog()
	if err != nil {
		return nil, err
	}
	return catalog.Lookup(key)
}

// Invalidate drops the cached catalog.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.catalog = nil
	c.mu.Unlock()
}
