package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLRU_EvictsLeastRecentlyUsed: after N+1 distinct insertions into a
// capacity-N cache (all weight 1), the first-inserted key, untouched by
// any Get, is absent.
func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New(3, NewLRU(), nil)

	c.Insert("a", "A", 1)
	c.Insert("b", "B", 1)
	c.Insert("c", "C", 1)
	c.Insert("d", "D", 1) // overflow: a was never touched, must be evicted

	assert.False(t, c.Contains("a"))
	assert.True(t, c.Contains("b"))
	assert.True(t, c.Contains("c"))
	assert.True(t, c.Contains("d"))
}

func TestLRU_GetTouchSavesFromEviction(t *testing.T) {
	c := New(2, NewLRU(), nil)

	c.Insert("a", "A", 1)
	c.Insert("b", "B", 1)
	_, _ = c.Get("a") // touch a; b becomes LRU
	c.Insert("c", "C", 1)

	assert.True(t, c.Contains("a"))
	assert.False(t, c.Contains("b"))
	assert.True(t, c.Contains("c"))
}

// TestFIFO_IgnoresAccessOrder: repeated Get of the first-inserted key
// does not save it from eviction.
func TestFIFO_IgnoresAccessOrder(t *testing.T) {
	c := New(2, NewFIFO(), nil)

	c.Insert("a", "A", 1)
	c.Insert("b", "B", 1)
	_, _ = c.Get("a")
	_, _ = c.Get("a")
	c.Insert("c", "C", 1)

	assert.False(t, c.Contains("a"), "FIFO must evict in insertion order regardless of access")
	assert.True(t, c.Contains("b"))
	assert.True(t, c.Contains("c"))
}

// TestLFU_SurvivesFrequentAccess: a key accessed most frequently survives
// eviction while less-frequently-used keys are evicted first.
func TestLFU_SurvivesFrequentAccess(t *testing.T) {
	c := New(2, NewLFU(), nil)

	c.Insert("hot", "H", 1)
	c.Insert("cold", "C", 1)
	for i := 0; i < 5; i++ {
		_, _ = c.Get("hot")
	}
	c.Insert("new", "N", 1) // cold has freq 1, hot has freq 6; cold must go

	assert.True(t, c.Contains("hot"))
	assert.False(t, c.Contains("cold"))
	assert.True(t, c.Contains("new"))
}

func TestLFU_TiesBrokenByInsertionOrder(t *testing.T) {
	c := New(2, NewLFU(), nil)

	c.Insert("first", "F", 1)
	c.Insert("second", "S", 1)
	// both at freq 1; overflow must evict the earliest inserted
	c.Insert("third", "T", 1)

	assert.False(t, c.Contains("first"))
	assert.True(t, c.Contains("second"))
	assert.True(t, c.Contains("third"))
}

// TestOversizeItem_NeverInserted covers the documented edge case: an item
// heavier than the cache's total capacity is never inserted, no eviction
// occurs, and the cache is left unchanged.
func TestOversizeItem_NeverInserted(t *testing.T) {
	c := New(2, NewLRU(), nil)
	c.Insert("small", "S", 1)

	c.Insert("huge", "H", 5)

	assert.False(t, c.Contains("huge"))
	assert.True(t, c.Contains("small"))
	assert.Equal(t, 1, c.Size())
}

func TestInsert_UpdateInPlaceRefreshesWeight(t *testing.T) {
	c := New(5, NewLRU(), nil)
	c.Insert("a", "A1", 2)
	c.Insert("a", "A2", 3)

	v, ok := c.Contains("a"), true
	assert.True(t, v && ok)
	assert.Equal(t, 3, c.Size())
}

// TestCacheInvariant_SizeNeverExceedsMax fuzzes a sequence of insertions
// across all three policies and checks the capacity invariant after each.
func TestCacheInvariant_SizeNeverExceedsMax(t *testing.T) {
	for _, newPolicy := range []func() Policy{
		func() Policy { return NewLRU() },
		func() Policy { return NewFIFO() },
		func() Policy { return NewLFU() },
	} {
		c := New(10, newPolicy(), nil)
		tags := []ItemTag{"a", "b", "c", "d", "e", "f", "g"}
		for i, tag := range tags {
			c.Insert(tag, i, 3)
			assert.LessOrEqual(t, c.Size(), c.MaxSize())
		}
	}
}
