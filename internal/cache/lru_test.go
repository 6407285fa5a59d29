package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/21-ko/RockMan-DASH2-toolkit/internal/cache"
)

func TestLRU_GetMiss(t *testing.T) {
	c := cache.New(2)
	_, ok := c.Get(1)
	assert.False(t, ok)
}

func TestLRU_PutAndGet(t *testing.T) {
	c := cache.New(2)
	c.Put(1, []byte("a"))

	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), v)
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := cache.New(2)
	c.Put(1, []byte("a"))
	c.Put(2, []byte("b"))
	c.Put(3, []byte("c")) // evicts key 1

	_, ok := c.Get(1)
	assert.False(t, ok)

	v2, ok := c.Get(2)
	assert.True(t, ok)
	assert.Equal(t, []byte("b"), v2)

	v3, ok := c.Get(3)
	assert.True(t, ok)
	assert.Equal(t, []byte("c"), v3)
}

func TestLRU_GetRefreshesRecency(t *testing.T) {
	c := cache.New(2)
	c.Put(1, []byte("a"))
	c.Put(2, []byte("b"))

	c.Get(1) // 1 is now most recently used
	c.Put(3, []byte("c")) // evicts 2, not 1

	_, ok := c.Get(2)
	assert.False(t, ok)

	_, ok = c.Get(1)
	assert.True(t, ok)
}

func TestLRU_UpdateExistingKey(t *testing.T) {
	c := cache.New(2)
	c.Put(1, []byte("a"))
	c.Put(1, []byte("a2"))

	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, []byte("a2"), v)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_ZeroCapacityDisablesCaching(t *testing.T) {
	c := cache.New(0)
	c.Put(1, []byte("a"))

	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}
