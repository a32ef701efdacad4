package cache

import (
	"container/list"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Kabir14815/rr/pkg/logger"
	"github.com/Kabir14815/rr/pkg/metric"
)

// Eviction reasons reported to metrics.
const (
	EvictCapacity = "lru"
	EvictExpired  = "expired"
	EvictDeleted  = "deleted"
	EvictPurged   = "purged"
)

var _ Cache[string, struct{}] = (*LRUCache[string, struct{}])(nil)

// LRUCache evicts the least recently used entry once capacity is reached.
// Metrics are reported under name. The eviction callback always runs after
// the cache lock is released, so it may block or call back into the cache.
type LRUCache[K comparable, V any] struct {
	name     string
	capacity int
	log      logger.Logger
	metrics  metric.Cache
	now      func() time.Time

	mu        sync.Mutex
	items     map[K]*list.Element
	order     *list.List // front is most recently used
	onEvicted func(key K, value V)
	stop      chan struct{}
}

type entry[K comparable, V any] struct {
	key     K
	value   V
	expires time.Time
}

func (e *entry[K, V]) expired(now time.Time) bool {
	return !e.expires.IsZero() && now.After(e.expires)
}

type eviction[K comparable, V any] struct {
	key    K
	value  V
	reason string
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// Clock overrides the time source used for expiry.
func Clock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func NewLRUCache[K comparable, V any](
	name string,
	capacity int,
	log logger.Logger,
	metrics metric.Cache,
	opts ...Option,
) (*LRUCache[K, V], error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case name == "":
		return nil, errors.New("cache.NewLRUCache: name is required")
	case capacity <= 0:
		return nil, fmt.Errorf("cache.NewLRUCache: capacity must be positive, got %d", capacity)
	case log == nil || metrics == nil:
		return nil, errors.New("cache.NewLRUCache: logger and metrics are required")
	}

	return &LRUCache[K, V]{
		name:     name,
		capacity: capacity,
		log:      log,
		metrics:  metrics,
		now:      o.now,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}, nil
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mu.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		c.metrics.Miss(c.name)
		return zero, false
	}

	e := elem.Value.(*entry[K, V])
	if e.expired(c.now()) {
		ev := c.unlink(elem, EvictExpired)
		c.unlockAndNotify(ev)
		c.metrics.Miss(c.name)
		return zero, false
	}

	c.order.MoveToFront(elem)
	c.mu.Unlock()

	c.metrics.Hit(c.name)
	return e.value, true
}

// Put inserts or replaces key. Replacing keeps the entry in place and does
// not run the eviction callback.
func (c *LRUCache[K, V]) Put(key K, value V, ttl time.Duration) {
	var expires time.Time
	if ttl > 0 {
		expires = c.now().Add(ttl)
	}

	c.mu.Lock()
	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*entry[K, V])
		e.value = value
		e.expires = expires
		c.order.MoveToFront(elem)
		c.mu.Unlock()
		return
	}

	var evicted []eviction[K, V]
	if c.order.Len() >= c.capacity {
		evicted = c.unlink(c.order.Back(), EvictCapacity)
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value, expires: expires})
	c.metrics.Size(c.name, c.order.Len())
	c.unlockAndNotify(evicted)
}

// Delete removes key and reports whether it was present. The eviction callback
// runs for the removed value.
func (c *LRUCache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		return false
	}
	c.unlockAndNotify(c.unlink(elem, EvictDeleted))
	return true
}

// Has reports whether key holds an unexpired value without touching recency.
func (c *LRUCache[K, V]) Has(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	return ok && !elem.Value.(*entry[K, V]).expired(c.now())
}

// Touch restarts the ttl of a live entry and marks it recently used. An absent
// or expired key is not re-inserted; Touch reports whether the entry is live.
func (c *LRUCache[K, V]) Touch(key K, ttl time.Duration) bool {
	now := c.now()

	c.mu.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		return false
	}

	e := elem.Value.(*entry[K, V])
	if e.expired(now) {
		c.unlockAndNotify(c.unlink(elem, EvictExpired))
		return false
	}

	e.expires = time.Time{}
	if ttl > 0 {
		e.expires = now.Add(ttl)
	}
	c.order.MoveToFront(elem)
	c.mu.Unlock()
	return true
}

func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRUCache[K, V]) Capacity() int {
	return c.capacity
}

func (c *LRUCache[K, V]) Purge() {
	c.mu.Lock()
	evicted := make([]eviction[K, V], 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		e := elem.Value.(*entry[K, V])
		evicted = append(evicted, eviction[K, V]{key: e.key, value: e.value, reason: EvictPurged})
	}
	c.order.Init()
	clear(c.items)
	c.metrics.Size(c.name, 0)
	c.unlockAndNotify(evicted)
}

// StartCleanup drops expired entries every interval until StopCleanup. A
// second call replaces the running sweeper.
func (c *LRUCache[K, V]) StartCleanup(interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != nil {
		close(c.stop)
	}
	c.stop = make(chan struct{})
	go c.runCleanup(interval, c.stop)
}

func (c *LRUCache[K, V]) StopCleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

func (c *LRUCache[K, V]) SetOnEvicted(onEvicted func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvicted = onEvicted
}

func (c *LRUCache[K, V]) runCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanupExpired()
		case <-stop:
			return
		}
	}
}

func (c *LRUCache[K, V]) cleanupExpired() {
	now := c.now()

	c.mu.Lock()
	var evicted []eviction[K, V]
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*entry[K, V]).expired(now) {
			evicted = append(evicted, c.unlink(elem, EvictExpired)...)
		}
		elem = prev
	}
	remaining := c.order.Len()
	c.unlockAndNotify(evicted)

	if len(evicted) > 0 {
		c.log.Debugw("cache cleanup completed",
			"cache", c.name,
			"removed", len(evicted),
			"remaining", remaining,
		)
	}
}

// unlink must be called with mu held.
func (c *LRUCache[K, V]) unlink(elem *list.Element, reason string) []eviction[K, V] {
	e := elem.Value.(*entry[K, V])
	c.order.Remove(elem)
	delete(c.items, e.key)
	c.metrics.Size(c.name, c.order.Len())
	return []eviction[K, V]{{key: e.key, value: e.value, reason: reason}}
}

// unlockAndNotify releases mu, then reports and hands over the evicted values.
func (c *LRUCache[K, V]) unlockAndNotify(evicted []eviction[K, V]) {
	onEvicted := c.onEvicted
	c.mu.Unlock()

	for _, ev := range evicted {
		c.metrics.Eviction(c.name, ev.reason)
		if onEvicted != nil {
			onEvicted(ev.key, ev.value)
		}
	}
}
