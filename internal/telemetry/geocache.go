package telemetry

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// GeocodeCache memoizes reverse geocoding by coordinate, rounded to about
// 11 m, so repeated logins from the same place cost one API call.
type GeocodeCache struct {
	next       Geocoder
	maxEntries int
	ttl        time.Duration
	now        func() time.Time

	mu    sync.Mutex
	cache map[string]*cacheEntry
	stats CacheStats
}

type cacheEntry struct {
	label        string
	createdAt    time.Time
	lastAccessed time.Time
}

type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
}

func NewGeocodeCache(next Geocoder, maxEntries int, ttl time.Duration) *GeocodeCache {
	return &GeocodeCache{
		next:       next,
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
		cache:      make(map[string]*cacheEntry),
	}
}

func cacheKey(lat, lng float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lng)
}

func (c *GeocodeCache) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	key := cacheKey(lat, lng)

	c.mu.Lock()
	if entry, ok := c.cache[key]; ok {
		if c.now().Sub(entry.createdAt) <= c.ttl {
			entry.lastAccessed = c.now()
			c.stats.Hits++
			c.mu.Unlock()
			return entry.label, nil
		}
		delete(c.cache, key)
		c.stats.Evictions++
	}
	c.stats.Misses++
	c.mu.Unlock()

	label, err := c.next.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		// failures are not cached
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.cache) >= c.maxEntries {
		c.evictOldest()
	}
	now := c.now()
	c.cache[key] = &cacheEntry{label: label, createdAt: now, lastAccessed: now}
	return label, nil
}

// evictOldest removes the least recently used entry. Caller holds mu.
func (c *GeocodeCache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time

	for key, entry := range c.cache {
		if oldestKey == "" || entry.lastAccessed.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.lastAccessed
		}
	}

	if oldestKey != "" {
		delete(c.cache, oldestKey)
		c.stats.Evictions++
		log.Printf("🗑️  Evicted geocode cache entry: %s", oldestKey)
	}
}

func (c *GeocodeCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
