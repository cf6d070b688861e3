package cache

import (
	"crypto/sha256"
	"sync"

	"github.com/tidwall/tinylru"
)

// A ParseCache maps source code to the result of its parsing, entries are keyed by the SHA-256 hash
// of the source. When the cache is full the least recently used entry is evicted.
type ParseCache[T any] struct {
	entries    tinylru.LRU
	maxEntries int
	lock       sync.Mutex
}

// NewParseCache creates a cache holding at most maxEntries entries, maxEntries should be positive.
func NewParseCache[T any](maxEntries int) *ParseCache[T] {
	if maxEntries <= 0 {
		panic("cache: max entry count should be positive")
	}
	c := &ParseCache[T]{maxEntries: maxEntries}
	c.entries.Resize(maxEntries)
	return c
}

func (c *ParseCache[T]) InvalidateAllEntries() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.entries = tinylru.LRU{}
	c.entries.Resize(c.maxEntries)
}

func (c *ParseCache[T]) Get(sourceCode string) (*T, bool) {
	hash := sha256.Sum256([]byte(sourceCode))
	c.lock.Lock()
	defer c.lock.Unlock()

	v, ok := c.entries.Get(hash)
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

func (c *ParseCache[T]) Put(sourceCode string, result *T) {
	hash := sha256.Sum256([]byte(sourceCode))
	c.lock.Lock()
	defer c.lock.Unlock()
	c.entries.Set(hash, result)
}

func (c *ParseCache[T]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.entries.Len()
}
