// Package dedupe tracks which posting URLs the streaming intake has already
// written, so a rescrape of the same search does not append the same posting
// twice within the retention window.
package dedupe

import (
	"container/list"
	"sync"
	"time"
)

type entry struct {
	url  string
	seen time.Time
}

// Cache is a bounded set of recently ingested posting URLs. Entries expire
// after the TTL and the oldest entries are evicted once the capacity is
// reached.
type Cache struct {
	mu       sync.Mutex
	index    map[string]*list.Element
	order    *list.List // front = oldest
	capacity int
	ttl      time.Duration
}

// NewCache creates a cache with the provided capacity and ttl.
func NewCache(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = 1
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{
		index:    make(map[string]*list.Element, capacity),
		order:    list.New(),
		capacity: capacity,
		ttl:      ttl,
	}
}

// Seen reports whether the URL was recorded within the ttl window. It does
// not record the URL; use Remember for that.
func (c *Cache) Seen(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[url]
	if !ok {
		return false
	}
	if time.Since(el.Value.(entry).seen) > c.ttl {
		c.evict(el)
		return false
	}
	return true
}

// Remember records the URL, refreshing it if already present.
func (c *Cache) Remember(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[url]; ok {
		c.evict(el)
	}
	c.index[url] = c.order.PushBack(entry{url: url, seen: time.Now()})

	for c.order.Len() > c.capacity {
		c.evict(c.order.Front())
	}
	c.expire()
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expire()
	return c.order.Len()
}

func (c *Cache) expire() {
	cutoff := time.Now().Add(-c.ttl)
	for el := c.order.Front(); el != nil && el.Value.(entry).seen.Before(cutoff); el = c.order.Front() {
		c.evict(el)
	}
}

func (c *Cache) evict(el *list.Element) {
	delete(c.index, el.Value.(entry).url)
	c.order.Remove(el)
}
