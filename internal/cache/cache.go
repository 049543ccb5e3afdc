package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type item struct {
	data      interface{}
	expiresAt time.Time
}

// Cache is a small TTL'd LRU for read-mostly lookups (published-post
// checks). Rating scores and forests are never cached here: reads after
// a committed vote must see the committed score.
type Cache struct {
	lru *lru.Cache[string, item]
}

func New(capacity int) (*Cache, error) {
	l, err := lru.New[string, item](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

func (c *Cache) Set(key string, data interface{}, ttl time.Duration) {
	c.lru.Add(key, item{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	})
}

// Get returns nil for missing or expired entries.
func (c *Cache) Get(key string) interface{} {
	val, ok := c.lru.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(val.expiresAt) {
		c.lru.Remove(key)
		return nil
	}
	return val.data
}

func (c *Cache) Delete(key string) {
	c.lru.Remove(key)
}
