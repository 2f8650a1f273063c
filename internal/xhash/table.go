// Package xhash is a small generic chained hash table, used by the
// hashlife package for its node intern tables and result cache. A plain
// map[K]V would do for interning alone, but the result cache also needs
// a per-entry touch counter for approximate-LRU eviction, which a bare
// map cannot carry without a parallel bookkeeping structure.
package xhash

import "github.com/dolthub/maphash"

type entry[K comparable, V any] struct {
	key   K
	value V
	touch uint32
	next  int32 // index into table.entries, -1 if none
}

// Table is a chained hash table keyed by any comparable type, hashed via
// github.com/dolthub/maphash's generic Hasher. Zero value is not usable;
// construct with New.
type Table[K comparable, V any] struct {
	hasher  maphash.Hasher[K]
	buckets []int32
	entries []entry[K, V]
	clock   uint32
}

// New returns an empty table with room for at least capacity entries
// before its first resize.
func New[K comparable, V any](capacity int) *Table[K, V] {
	if capacity < 8 {
		capacity = 8
	}
	t := &Table[K, V]{
		hasher:  maphash.NewHasher[K](),
		buckets: make([]int32, nextPow2(capacity*2)),
	}
	for i := range t.buckets {
		t.buckets[i] = -1
	}
	return t
}

func nextPow2(n int) int {
	p := 8
	for p < n {
		p <<= 1
	}
	return p
}

func (t *Table[K, V]) bucketFor(h uint64) int {
	return int(h & uint64(len(t.buckets)-1))
}

// Get returns the value stored under key, if any, and bumps its touch
// counter so EvictLRU treats it as recently used.
func (t *Table[K, V]) Get(key K) (V, bool) {
	h := t.hasher.Hash(key)
	i := t.buckets[t.bucketFor(h)]
	for i >= 0 {
		e := &t.entries[i]
		if e.key == key {
			t.clock++
			e.touch = t.clock
			return e.value, true
		}
		i = e.next
	}
	var zero V
	return zero, false
}

// Put inserts or overwrites the value stored under key.
func (t *Table[K, V]) Put(key K, value V) {
	h := t.hasher.Hash(key)
	b := t.bucketFor(h)
	for i := t.buckets[b]; i >= 0; {
		e := &t.entries[i]
		if e.key == key {
			e.value = value
			t.clock++
			e.touch = t.clock
			return
		}
		i = e.next
	}

	if len(t.entries) >= len(t.buckets) {
		t.grow()
		b = t.bucketFor(h)
	}

	t.clock++
	t.entries = append(t.entries, entry[K, V]{
		key:   key,
		value: value,
		touch: t.clock,
		next:  t.buckets[b],
	})
	t.buckets[b] = int32(len(t.entries) - 1)
}

func (t *Table[K, V]) grow() {
	old := t.entries
	t.buckets = make([]int32, len(t.buckets)*2)
	for i := range t.buckets {
		t.buckets[i] = -1
	}
	t.entries = t.entries[:0]
	for _, e := range old {
		b := t.bucketFor(t.hasher.Hash(e.key))
		e.next = t.buckets[b]
		t.entries = append(t.entries, e)
		t.buckets[b] = int32(len(t.entries) - 1)
	}
}

// Len returns the number of entries currently stored.
func (t *Table[K, V]) Len() int {
	return len(t.entries)
}

// Reset discards every entry and reseeds the hasher, matching the
// behavior callers expect from clearing a cache: old handles hashed
// under the previous seed must not collide with new ones.
func (t *Table[K, V]) Reset(capacity int) {
	t.hasher = maphash.NewSeed(t.hasher)
	t.buckets = make([]int32, nextPow2(capacity*2))
	for i := range t.buckets {
		t.buckets[i] = -1
	}
	t.entries = nil
	t.clock = 0
}

// EvictLRU removes roughly the frac least-recently-touched entries
// (except those shouldKeep protects), rebuilding the table in place.
// frac must be in (0,1); it is the fraction of entries to discard.
func (t *Table[K, V]) EvictLRU(frac float64, shouldKeep func(K) bool) {
	if len(t.entries) == 0 {
		return
	}
	touches := make([]uint32, len(t.entries))
	for i, e := range t.entries {
		touches[i] = e.touch
	}
	threshold := percentile(touches, frac)

	old := t.entries
	t.buckets = make([]int32, len(t.buckets))
	for i := range t.buckets {
		t.buckets[i] = -1
	}
	t.entries = t.entries[:0]
	for _, e := range old {
		if e.touch < threshold && !shouldKeep(e.key) {
			continue
		}
		b := t.bucketFor(t.hasher.Hash(e.key))
		e.next = t.buckets[b]
		t.entries = append(t.entries, e)
		t.buckets[b] = int32(len(t.entries) - 1)
	}
}

// percentile returns the value below which roughly frac of vs falls,
// via a simple copy-and-sort (eviction is not a hot path).
func percentile(vs []uint32, frac float64) uint32 {
	sorted := append([]uint32(nil), vs...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	idx := int(float64(len(sorted)) * frac)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
