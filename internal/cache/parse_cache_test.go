package cache

import (
	"sync"
	"testing"

	"github.com/Helset123/olang/internal/testconfig"
	"github.com/stretchr/testify/assert"
)

func TestParseCache(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("get and put", func(t *testing.T) {
		c := NewParseCache[int](2)

		_, ok := c.Get("a")
		assert.False(t, ok)

		one := 1
		c.Put("a", &one)

		result, ok := c.Get("a")
		assert.True(t, ok)
		assert.Same(t, &one, result)
	})

	t.Run("the least recently used entry is evicted", func(t *testing.T) {
		c := NewParseCache[int](2)
		one, two, three := 1, 2, 3

		c.Put("a", &one)
		c.Put("b", &two)
		c.Get("a")
		c.Put("c", &three)

		assert.Equal(t, 2, c.Len())

		_, ok := c.Get("b")
		assert.False(t, ok)

		result, ok := c.Get("a")
		assert.True(t, ok)
		assert.Same(t, &one, result)

		_, ok = c.Get("c")
		assert.True(t, ok)
	})

	t.Run("invalidate", func(t *testing.T) {
		c := NewParseCache[int](2)
		one := 1
		c.Put("a", &one)

		c.InvalidateAllEntries()
		assert.Zero(t, c.Len())

		c.Put("b", &one)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("invalid max entry count", func(t *testing.T) {
		assert.Panics(t, func() {
			NewParseCache[int](0)
		})
	})

	t.Run("concurrent use", func(t *testing.T) {
		c := NewParseCache[int](10)
		wg := sync.WaitGroup{}

		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				c.Put(string(rune('a'+i)), &i)
				c.Get("a")
			}(i)
		}

		wg.Wait()
		assert.Equal(t, 10, c.Len())
	})
}
