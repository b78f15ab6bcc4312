package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRU is a thread-safe least-recently-used cache with an optional entry TTL.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[K]*list.Element
	order    *list.List
	nowFn    func() time.Time
}

type entry[K comparable, V any] struct {
	key     K
	value   V
	expires time.Time
}

// NewLRU creates a cache holding at most capacity entries. A zero ttl keeps
// entries until they are evicted.
func NewLRU[K comparable, V any](capacity int, ttl time.Duration) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[K]*list.Element),
		order:    list.New(),
		nowFn:    time.Now,
	}
}

// Get returns the cached value and whether it was present and fresh.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	elem, ok := c.items[key]
	if !ok {
		return zero, false
	}
	e := elem.Value.(*entry[K, V])
	if c.ttl > 0 && c.nowFn().After(e.expires) {
		c.removeElement(elem)
		return zero, false
	}

	c.order.MoveToFront(elem)
	return e.value, true
}

// Put stores value under key, evicting the least recently used entry when full.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.nowFn().Add(c.ttl)

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		e := elem.Value.(*entry[K, V])
		e.value = value
		e.expires = expires
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	elem := c.order.PushFront(&entry[K, V]{key: key, value: value, expires: expires})
	c.items[key] = elem
}

// Len returns the number of cached entries, including expired ones not yet evicted.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRU[K, V]) removeElement(elem *list.Element) {
	e := elem.Value.(*entry[K, V])
	delete(c.items, e.key)
	c.order.Remove(elem)
}
