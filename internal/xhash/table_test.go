package xhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablePutGet(t *testing.T) {
	tab := New[string, int](8)
	tab.Put("a", 1)
	tab.Put("b", 2)

	v, ok := tab.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = tab.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = tab.Get("c")
	assert.False(t, ok)
}

func TestTableOverwrite(t *testing.T) {
	tab := New[string, int](8)
	tab.Put("a", 1)
	tab.Put("a", 2)

	v, ok := tab.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, tab.Len())
}

func TestTableGrowsAndKeepsEntries(t *testing.T) {
	tab := New[int, int](8)
	for i := 0; i < 1000; i++ {
		tab.Put(i, i*i)
	}
	assert.Equal(t, 1000, tab.Len())
	for i := 0; i < 1000; i++ {
		v, ok := tab.Get(i)
		assert.True(t, ok)
		assert.Equal(t, i*i, v)
	}
}

func TestTableReset(t *testing.T) {
	tab := New[int, int](8)
	tab.Put(1, 1)
	tab.Reset(8)
	assert.Equal(t, 0, tab.Len())
	_, ok := tab.Get(1)
	assert.False(t, ok)
}

func TestTableEvictLRU(t *testing.T) {
	tab := New[int, int](8)
	for i := 0; i < 100; i++ {
		tab.Put(i, i)
	}
	// Touch the upper half to make them more recently used than the rest.
	for i := 50; i < 100; i++ {
		tab.Get(i)
	}

	tab.EvictLRU(0.5, func(int) bool { return false })

	survivors := 0
	for i := 0; i < 100; i++ {
		if _, ok := tab.Get(i); ok {
			survivors++
		}
	}
	assert.Less(t, survivors, 100)
	assert.Greater(t, survivors, 0)
}

func TestTableEvictLRUKeepsProtected(t *testing.T) {
	tab := New[int, int](8)
	for i := 0; i < 20; i++ {
		tab.Put(i, i)
	}

	tab.EvictLRU(0.9, func(k int) bool { return k == 7 })

	_, ok := tab.Get(7)
	assert.True(t, ok, "protected key must survive eviction")
}
