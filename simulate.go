package hashlife

import "math/bits"

// cacheEvictThreshold is the result-cache entry count above which step
// triggers an LRU pass, per spec.md §9's memory-pressure note. Chosen
// well above any cache size a handful of simulated generations would
// reach, so eviction only kicks in on genuinely long-running universes.
const cacheEvictThreshold = 1 << 20

// Simulate advances the universe by exactly n generations, replacing
// its root. Implements spec.md §4.6's step driver: n is decomposed into
// a sum of distinct powers of two, processed low-bit-first (the
// canonical HashLife decomposition per spec.md §9's open question), and
// each exponent k is applied by padding the root until evolve(root, k)
// is safe, then taking the result (one level below the padded root) as
// the new root.
//
// Grounded on the teacher's NextGen (grow() then NextGeneration()),
// generalized from "exactly one doubling per call" to an explicit loop
// over n's set bits, since the teacher only ever advances by one
// doubling per call and leaves multi-generation stepping to the caller.
func (u *Universe) Simulate(n uint64) {
	for n > 0 {
		k := uint8(bits.TrailingZeros64(n))
		u.step(k)
		n &= n - 1
	}
}

// step advances the universe by exactly 2^k generations.
func (u *Universe) step(k uint8) {
	preJumpLevel := u.padForStep(k)

	result := u.evolve(u.root, k)

	// The result is one level below the padded root. padForStep always
	// expands at least once, so this is never below preJumpLevel; the
	// loop only wraps a lower result in empty siblings back up to
	// preJumpLevel, and a result above it is kept at its own level.
	for result.Level < preJumpLevel {
		result = u.padOneLevel(result)
	}

	u.root = result
	u.generation += uint64(1) << k

	if u.cache.len() > cacheEvictThreshold {
		u.cache.evict(u.root)
		u.log.Debug("evicted result cache", "cache_size", u.cache.len())
	}

	u.log.Debug("simulate step", "k", k, "generation", u.generation,
		"root_level", u.root.Level, "cache_size", u.cache.len())
}

// Compact drops the least-recently-used half of the result cache
// immediately, for callers managing memory across many Universes
// rather than waiting for step's automatic threshold.
func (u *Universe) Compact() {
	u.cache.evict(u.root)
}

// padForStep grows the root until evolve(root, k) is both legal
// (root.Level >= k+2, and always >= leafLevel+1 since evolve cannot run
// on a leaf) and safe (the outer border is empty, then one more layer
// is added, so no live cell can grow out of the kept center half during
// 2^k steps), and returns the level the root was at before any of that
// growth.
func (u *Universe) padForStep(k uint8) uint8 {
	preJumpLevel := u.root.Level

	minLevel := int(k) + 2
	if minLevel < leafLevel+1 {
		minLevel = leafLevel + 1
	}

	for int(u.root.Level) < minLevel || !u.borderEmpty() {
		u.root = u.arena.expandOnce(u.root)
	}
	// One more layer puts every live cell inside the root's center
	// quarter, so 2^k <= 2^(Level-3) steps of growth stay inside the
	// center half that evolve returns.
	u.root = u.arena.expandOnce(u.root)

	return preJumpLevel
}

// padOneLevel wraps node in one layer of empty siblings, keeping it
// centered, so its level increases by exactly one without changing the
// live-cell set.
func (u *Universe) padOneLevel(node *Node) *Node {
	empty := u.arena.Empty(node.Level)
	return u.arena.internInner(
		u.arena.internInner(empty, empty, empty, node),
		u.arena.internInner(empty, empty, node, empty),
		u.arena.internInner(empty, node, empty, empty),
		u.arena.internInner(node, empty, empty, empty),
	)
}

// borderEmpty approximates spec.md §4.6 step 3's "each of the root's
// four children's outer-facing eighths are empty" by checking the
// twelve grandchildren that face away from the root's center.
func (u *Universe) borderEmpty() bool {
	if u.root.Level <= leafLevel+1 {
		return false
	}
	outer := [...]*Node{
		u.root.NW.NW, u.root.NW.NE, u.root.NW.SW,
		u.root.NE.NW, u.root.NE.NE, u.root.NE.SE,
		u.root.SW.NW, u.root.SW.SW, u.root.SW.SE,
		u.root.SE.NE, u.root.SE.SW, u.root.SE.SE,
	}
	for _, n := range outer {
		if n.Population != 0 {
			return false
		}
	}
	return true
}
