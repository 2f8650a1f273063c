/*Package hashlife implements Conway's Game of Life on an effectively
unbounded grid using the HashLife algorithm: a canonical hashed quadtree
plus a memoized recursive time-evolution engine. The quadtree divides
space into four children:

	NW|NE
	-----
	SW|SE

A node at level L covers a square region of side 2^L cells. Nodes at
level 3 are leaves, storing an 8x8 patch directly as a 64-bit word;
nodes above level 3 are inner nodes with four children one level down.

Nodes are immutable and canonicalized: structurally identical nodes
share a single instance, which is what lets the evolution kernel memoize
by node identity instead of by content.

The hashlife algorithm is described in
http://www.drdobbs.com/jvm/an-algorithm-for-compressing-space-and-t/184406478
*/
package hashlife

// leafLevel is the level of a leaf node: an 8x8 patch stored as one
// 64-bit word, bit (row*8+col) for row, col in [0,7].
const leafLevel = 3

// maxLevel bounds how far expandOnce is allowed to grow a root, keeping
// coordinate arithmetic inside a signed 64-bit range.
const maxLevel = 62

// Node is a single quadtree node: either a leaf (Level == leafLevel,
// payload in Leaf) or an inner node (Level > leafLevel, children in
// NW/NE/SW/SE). Nodes are never mutated after creation; every Node
// reachable from a Universe's root is interned by that Universe's Arena.
type Node struct {
	Level      uint8
	Population uint64
	Leaf       uint64
	NW, NE, SW, SE *Node
}

// IsLeaf reports whether n is a level-3 leaf node.
func (n *Node) IsLeaf() bool {
	return n.Level == leafLevel
}

// child returns n's child in the given quadrant, identified by the
// single-letter compass codes used throughout this package: 'n' (NW),
// 'e' (NE), 'w' (SW), 's' (SE). Returns nil if n is a leaf; panics on
// any other quadrant code.
func (n *Node) child(quadrant byte) *Node {
	switch quadrant {
	case 'n':
		return n.NW
	case 'e':
		return n.NE
	case 'w':
		return n.SW
	case 's':
		return n.SE
	default:
		panic("hashlife: invalid quadrant")
	}
}

// childKey is the structural key used to intern inner nodes: level plus
// the four child pointers, compared and hashed by identity.
type childKey struct {
	level          uint8
	nw, ne, sw, se *Node
}
