package utils

import (
	"container/list"
	"sync"
)

// lruEntry represents an entry in the LRU cache
type lruEntry struct {
	key   string
	value string
	node  *list.Element
}

// LRUCache implements a thread-safe LRU cache of string values keyed by string
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	cache    map[string]*lruEntry
	lru      *list.List
}

/**************************************************************************************************
** NewLRUCache creates a new LRU cache. A capacity below 1 is raised to 1.
**
** @param capacity - Maximum number of cached entries before evicting LRU
** @return *LRUCache - Initialized LRU cache instance
**************************************************************************************************/
func NewLRUCache(capacity int) *LRUCache {
	if capacity < 1 {
		capacity = 1
	}
	return &LRUCache{
		capacity: capacity,
		cache:    make(map[string]*lruEntry),
		lru:      list.New(),
	}
}

/**************************************************************************************************
** Get retrieves a value from the cache and marks it as most recently used.
**
** @param key - Cache key
** @return string - Cached value if present
** @return bool - True if found in cache
**************************************************************************************************/
func (c *LRUCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.cache[key]; ok {
		c.lru.MoveToFront(entry.node)
		return entry.value, true
	}
	return "", false
}

/**************************************************************************************************
** Put inserts or updates a value in the cache, evicting the LRU entry if at capacity.
**
** @param key - Cache key
** @param value - Value to store
**************************************************************************************************/
func (c *LRUCache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.cache[key]; ok {
		entry.value = value
		c.lru.MoveToFront(entry.node)
		return
	}

	if len(c.cache) >= c.capacity {
		c.evictLRU()
	}

	node := c.lru.PushFront(key)
	c.cache[key] = &lruEntry{
		key:   key,
		value: value,
		node:  node,
	}
}

// Len returns the number of cached entries.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

/**************************************************************************************************
** evictLRU removes the least recently used cache entry if one exists.
**************************************************************************************************/
func (c *LRUCache) evictLRU() {
	node := c.lru.Back()
	if node == nil {
		return
	}
	delete(c.cache, node.Value.(string))
	c.lru.Remove(node)
}
