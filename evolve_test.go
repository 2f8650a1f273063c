package hashlife

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func blockUniverse() *Universe {
	u := NewUniverse()
	for _, c := range [][2]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		u.Set(c[0], c[1], true)
	}
	return u
}

func TestEvolveIsMemoized(t *testing.T) {
	u := blockUniverse()
	u.root = u.arena.expandOnce(u.arena.expandOnce(u.root))
	before := u.cache.len()

	k := maximalK(u.root.Level) // the cache stores maximal-k results only
	r1 := u.evolve(u.root, k)
	afterFirst := u.cache.len()
	assert.Greater(t, afterFirst, before)

	r2 := u.evolve(u.root, k)
	assert.Same(t, r1, r2)
	assert.Equal(t, afterFirst, u.cache.len(), "second call must hit the cache, not grow it")
}

// evolveBoundary must honor its step exponent like every other level:
// a block is stable at any k, and a level-4 node's maximal k is 2 (4
// generations), not fixed at a single generation.
func TestEvolveBoundaryHonorsStepExponent(t *testing.T) {
	u := NewUniverse()
	// Four leaves whose union forms a 2x2 block straddling the shared
	// center corner of all four children (same configuration proven
	// stable in TestEvolveLeafGridBlockAcrossBoundaryIsStable).
	nw := u.arena.internLeaf(uint64(1) << uint(7*8+7))
	ne := u.arena.internLeaf(uint64(1) << uint(7*8+0))
	sw := u.arena.internLeaf(uint64(1) << uint(0*8+7))
	se := u.arena.internLeaf(uint64(1) << uint(0*8+0))
	node := u.arena.internInner(nw, ne, sw, se)

	for k := uint8(0); k <= 2; k++ {
		result := u.evolveBoundary(node, k)
		assert.True(t, result.IsLeaf())
		assert.Equal(t, uint64(4), result.Population, "k=%d", k)
	}
}

func TestEvolvePanicsOnLeafOrExcessiveK(t *testing.T) {
	u := blockUniverse()
	leaf := u.arena.internLeaf(0)
	assert.Panics(t, func() { u.evolve(leaf, 0) })

	for u.root.Level < leafLevel+2 {
		u.root = u.arena.expandOnce(u.root)
	}
	assert.Panics(t, func() { u.evolve(u.root, u.root.Level-1) })
}

func TestNineSubNodesOwnChildrenPassThrough(t *testing.T) {
	u := blockUniverse()
	for u.root.Level < leafLevel+2 {
		u.root = u.arena.expandOnce(u.root)
	}
	subs := nineSubNodes(u.arena, u.root)
	assert.Same(t, u.root.NW, subs['n'])
	assert.Same(t, u.root.NE, subs['e'])
	assert.Same(t, u.root.SW, subs['w'])
	assert.Same(t, u.root.SE, subs['s'])
	assert.Equal(t, u.root.NW.Level, subs['N'].Level)
}
