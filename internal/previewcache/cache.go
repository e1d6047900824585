// Package previewcache memoizes rendered preview PNGs. Entries expire
// ten minutes after their last use or one hour after creation,
// whichever comes first.
package previewcache

import (
	"fmt"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	createdAt time.Time
	expireAt  time.Time
}

// Cache is a sliding/absolute-expiration byte cache. It owns entry
// lifecycle entirely; callers never invalidate.
type Cache struct {
	sliding  time.Duration
	absolute time.Duration

	mu      sync.Mutex
	entries map[string]*entry

	stop     chan struct{}
	stopOnce sync.Once
}

// New starts a cache with the given sliding and absolute TTLs, plus a
// background sweeper that drops expired entries.
func New(sliding, absolute time.Duration) *Cache {
	c := &Cache{
		sliding:  sliding,
		absolute: absolute,
		entries:  make(map[string]*entry),
		stop:     make(chan struct{}),
	}
	go c.sweep()
	return c
}

// GetOrCreate returns the cached bytes for key, or runs generate and
// caches its result. Two concurrent misses on one key may both run the
// generator; the results are idempotent per key, so last write wins.
func (c *Cache) GetOrCreate(key string, generate func() ([]byte, error)) ([]byte, error) {
	now := time.Now()

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && !c.expired(e, now) {
		e.expireAt = now.Add(c.sliding)
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	c.mu.Unlock()

	value, err := generate()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = &entry{value: value, createdAt: now, expireAt: now.Add(c.sliding)}
	c.mu.Unlock()
	return value, nil
}

// Len reports the number of live entries, expired ones included until
// the next sweep.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close stops the background sweeper.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) expired(e *entry, now time.Time) bool {
	return now.After(e.expireAt) || now.Sub(e.createdAt) >= c.absolute
}

func (c *Cache) sweep() {
	interval := c.sliding
	if c.absolute < interval {
		interval = c.absolute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			for key, e := range c.entries {
				if c.expired(e, now) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

// FrontKey builds the cache key for a front-card preview. Distinct
// background colors must never share an entry.
func FrontKey(trackID, backgroundColor string) string {
	return fmt.Sprintf("card_front_%s_%s", trackID, orDefault(backgroundColor))
}

// BackKey builds the cache key for a back-card preview.
func BackKey(trackID string, year int, backgroundColor string) string {
	return fmt.Sprintf("card_back_%s_%d_%s", trackID, year, orDefault(backgroundColor))
}

func orDefault(color string) string {
	if color == "" {
		return "default"
	}
	return color
}
