package frames

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/echoflaresat/eratosthenes/scene"
)

// Cache memoizes assembled descriptors by snapshot. Resizes and slider
// wiggles revisit the same inputs often; an animation rarely does.
type Cache struct {
	lru *lru.Cache // scene.InputSnapshot -> scene.Descriptor
}

// NewCache returns a cache holding at most size descriptors.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Assemble returns the cached descriptor for s, assembling it on a miss.
// Callers get their own copy and may modify it freely.
func (c *Cache) Assemble(s scene.InputSnapshot) scene.Descriptor {
	if val, ok := c.lru.Get(s); ok {
		return val.(scene.Descriptor).Clone()
	}
	d := scene.Assemble(s)
	c.lru.Add(s, d.Clone())
	return d
}

// Len returns the number of cached descriptors.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge drops every cached descriptor, e.g. after the canvas is resized.
func (c *Cache) Purge() {
	c.lru.Purge()
}
