package cache

import (
	"context"
	"sync"
	"time"

	"github.com/deallens/backend/internal/domain"
)

// entry is a cached report with its expiration
type entry struct {
	report  *domain.ComparisonReport
	expires time.Time
}

// MemoryCache is a thread-safe in-memory comparison-report cache with TTL.
// Repeated compare requests over unchanged catalogues hit here instead of
// re-running the full matching pass.
type MemoryCache struct {
	ttl   time.Duration
	data  map[string]entry
	mutex sync.RWMutex
}

// NewMemoryCache creates a report cache with the given TTL. A non-positive
// TTL falls back to one hour. A background janitor drops expired entries.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = time.Hour
	}

	c := &MemoryCache{
		ttl:  ttl,
		data: make(map[string]entry),
	}
	go c.janitor()

	return c
}

// Get retrieves a cached report, or ErrCacheMiss
func (c *MemoryCache) Get(ctx context.Context, key string) (*domain.ComparisonReport, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, ok := c.data[key]
	if !ok || time.Now().After(e.expires) {
		return nil, domain.ErrCacheMiss
	}

	return e.report, nil
}

// Set stores a report under the given key
func (c *MemoryCache) Set(ctx context.Context, key string, report *domain.ComparisonReport) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = entry{
		report:  report,
		expires: time.Now().Add(c.ttl),
	}
	return nil
}

// Delete removes a report from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Size returns the current number of cached reports
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// janitor removes expired entries periodically
func (c *MemoryCache) janitor() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, e := range c.data {
			if now.After(e.expires) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}
