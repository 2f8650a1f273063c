package hashlife

import "github.com/arucil/hashlife/internal/xhash"

// Arena owns the canonical node population for one universe: the leaf
// intern table, the inner-node intern table, and the canonical chain of
// empty nodes. Every Universe owns exactly one Arena; Arenas are never
// shared between universes, which is what lets independent universes
// run on independent goroutines without coordinating through shared
// mutable state (the teacher's package-level nodeMap/mutex globals are
// deliberately not carried forward here).
type Arena struct {
	leaves *xhash.Table[uint64, *Node]
	inners *xhash.Table[childKey, *Node]
	empty  []*Node // empty[i] is the canonical all-dead node at level leafLevel+i
	hits   uint64
	misses uint64
}

// NewArena returns an empty arena with its own intern tables.
func NewArena() *Arena {
	a := &Arena{
		leaves: xhash.New[uint64, *Node](1024),
		inners: xhash.New[childKey, *Node](1024),
	}
	a.empty = []*Node{a.internLeaf(0)}
	return a
}

// internLeaf returns the canonical leaf node for the given 8x8 word.
func (a *Arena) internLeaf(word uint64) *Node {
	if n, ok := a.leaves.Get(word); ok {
		a.hits++
		return n
	}
	a.misses++
	n := &Node{
		Level:      leafLevel,
		Population: uint64(popcount64(word)),
		Leaf:       word,
	}
	a.leaves.Put(word, n)
	return n
}

// internInner returns the canonical inner node with the given four
// children. The children must all share the same level; the returned
// node is one level higher.
func (a *Arena) internInner(nw, ne, sw, se *Node) *Node {
	if nw.Level != ne.Level || nw.Level != sw.Level || nw.Level != se.Level {
		panic("hashlife: internInner: children at mismatched levels")
	}
	key := childKey{level: nw.Level + 1, nw: nw, ne: ne, sw: sw, se: se}
	if n, ok := a.inners.Get(key); ok {
		a.hits++
		return n
	}
	a.misses++
	n := &Node{
		Level:      nw.Level + 1,
		Population: nw.Population + ne.Population + sw.Population + se.Population,
		NW:         nw, NE: ne, SW: sw, SE: se,
	}
	a.inners.Put(key, n)
	return n
}

// Empty returns the canonical all-dead node at the given level, which
// must be >= leafLevel. The chain empty[i] = internInner(empty[i-1] x4)
// is built lazily and cached, so repeat calls at or below the deepest
// level reached so far are O(1).
func (a *Arena) Empty(level uint8) *Node {
	if level < leafLevel {
		panic("hashlife: Empty: level below leaf level")
	}
	idx := int(level - leafLevel)
	for len(a.empty) <= idx {
		prev := a.empty[len(a.empty)-1]
		a.empty = append(a.empty, a.internInner(prev, prev, prev, prev))
	}
	return a.empty[idx]
}

// Stats summarizes intern-table activity, mirroring the cache
// introspection the teacher exposed via its package-level counters and
// Stats() string dump, but as a plain struct instead of a side-effecting
// fmt.Println.
type Stats struct {
	LeafNodes  int
	InnerNodes int
	Hits       uint64
	Misses     uint64
}

func (a *Arena) Stats() Stats {
	return Stats{
		LeafNodes:  a.leaves.Len(),
		InnerNodes: a.inners.Len(),
		Hits:       a.hits,
		Misses:     a.misses,
	}
}

// popcount64 counts the set bits in word.
func popcount64(word uint64) int {
	return popcountImpl(word)
}
