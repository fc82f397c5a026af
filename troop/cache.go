package troop

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoises Parse by source text. Concurrent first requests for the
// same text share one parse. Failed parses are not cached.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Expression
	group   singleflight.Group
	opts    []Option
}

func NewCache(opts ...Option) *Cache {
	return &Cache{
		entries: make(map[string]*Expression),
		opts:    opts,
	}
}

func (c *Cache) Parse(text string) (*Expression, error) {
	c.mu.RLock()
	e, ok := c.entries[text]
	c.mu.RUnlock()
	if ok {
		return e, nil
	}

	v, err, _ := c.group.Do(text, func() (any, error) {
		// another caller may have stored it between the read and Do
		c.mu.RLock()
		e, ok := c.entries[text]
		c.mu.RUnlock()
		if ok {
			return e, nil
		}

		e, err := Parse(text, c.opts...)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[text] = e
		c.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Expression), nil
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
