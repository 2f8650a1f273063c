package hashlife

import (
	"fmt"
	"log/slog"
	"strings"
)

// Universe holds one independent HashLife simulation: a root node, the
// generation counter, and the arena and result cache that back it.
// Coordinate (0,0) is always the center of the root, which always
// contains the origin. A Universe is not safe for concurrent mutation
// by multiple goroutines (spec.md §5); independent Universes, each
// owning their own Arena, may run on independent goroutines freely —
// the teacher's implicit "the Quadtree instance IS the world" is made
// explicit here since this package separates node identity (Arena)
// from simulation state (Universe).
type Universe struct {
	root       *Node
	generation uint64
	arena      *Arena
	cache      *resultCache
	log        *slog.Logger
}

// NewUniverse returns an empty universe: a single dead leaf root.
func NewUniverse() *Universe {
	ar := NewArena()
	return &Universe{
		root:  ar.Empty(leafLevel),
		arena: ar,
		cache: newResultCache(),
		log:   slog.Default(),
	}
}

// Generation returns the number of generations simulated so far.
func (u *Universe) Generation() uint64 {
	return u.generation
}

// Get reports whether the cell at (x, y) is alive.
func (u *Universe) Get(x, y int64) bool {
	if !u.covers(x, y) {
		return false
	}
	return u.arena.get(u.root, x, y)
}

// Set sets the cell at (x, y) alive or dead, expanding the root first
// if necessary.
func (u *Universe) Set(x, y int64, alive bool) {
	u.root = u.arena.expandToContain(u.root, x, y)
	u.root = u.arena.set(u.root, x, y, alive)
	u.log.Debug("cell set", "x", x, "y", y, "alive", alive, "cache_size", u.cache.len())
}

func (u *Universe) covers(x, y int64) bool {
	half := int64(1) << (u.root.Level - 1)
	return x >= -half && x < half && y >= -half && y < half
}

// ForEachLiveBlock calls visit for every 8x8 leaf block that
// intersects viewport and has at least one live cell. See iterate.go.
func (u *Universe) ForEachLiveBlock(viewport Rect, visit func(x, y int64, block uint64)) {
	u.forEachLiveBlock(u.root, 0, 0, viewport, visit)
}

// Stats exposes the underlying arena's intern-table bookkeeping,
// adapting the teacher's Stats()/Print() console dump into a plain
// value instead of a side-effecting fmt.Println.
func (u *Universe) Stats() Stats {
	return u.arena.Stats()
}

// String renders a short human-readable summary, in the spirit of the
// teacher's own String()/Stats(), but without walking the whole tree.
func (u *Universe) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "generation %d, root level %d, population %d, cache %d entries\n",
		u.generation, u.root.Level, u.root.Population, u.cache.len())
	return b.String()
}
