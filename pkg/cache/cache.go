package cache

import (
	"time"
)

//go:generate mockgen -source=cache.go -destination=mock/cache.go -package=mock_cache

// Cache is a bounded key/value store whose entries may expire. A zero ttl
// keeps the entry until it is evicted or deleted.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V, ttl time.Duration)
	Delete(key K) bool
	Has(key K) bool
	Touch(key K, ttl time.Duration) bool
	Len() int
	Capacity() int
	Purge()
	StartCleanup(interval time.Duration)
	StopCleanup()
	SetOnEvicted(onEvicted func(key K, value V))
}
