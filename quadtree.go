package hashlife

// This file is the coordinate algebra over an Arena's nodes: walking to
// a cell, path-copying a cell write, and growing a root to cover new
// coordinates. It generalizes the teacher's findLeaf/SetCell/grow/
// GrowToFit from single-cell leaf addressing (the teacher's level 0) to
// 8x8-leaf addressing (this package's level 3) — the quadrant-selection
// bit math is unchanged, only the leaf base case and the level
// arithmetic's additive offset differ.
//
// Coordinate convention: a node at level L covers x, y in
// [-2^(L-1), 2^(L-1)-1]; (0,0) is always inside the root.

// get reports whether the cell at (x, y) is alive under root. The
// caller must have already ensured (x, y) lies within root's coverage
// (e.g. via expandToContain); coordinates outside it report dead.
func (a *Arena) get(root *Node, x, y int64) bool {
	n := root
	for n.Level > leafLevel {
		half := int64(1) << (n.Level - 2)
		switch quadrantFor(x, y) {
		case 's':
			n, x, y = n.SE, x-half, y-half
		case 'e':
			n, x, y = n.NE, x-half, y+half
		case 'w':
			n, x, y = n.SW, x+half, y-half
		case 'n':
			n, x, y = n.NW, x+half, y+half
		}
	}
	row, col := int(y)+4, int(x)+4
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return false
	}
	return bitAt(n.Leaf, row, col) != 0
}

// quadrantFor returns the quadrant code (matching Node.child) that
// contains (x, y) relative to a node's own center.
func quadrantFor(x, y int64) byte {
	switch {
	case x >= 0 && y >= 0:
		return 's' // SE
	case x >= 0:
		return 'e' // NE
	case y >= 0:
		return 'w' // SW
	default:
		return 'n' // NW
	}
}

// set returns a new root, identical to root except the cell at (x, y)
// is alive or dead as requested, path-copying (and interning) every
// node from the root down to the affected leaf. (x, y) must already lie
// within root's coverage.
func (a *Arena) set(root *Node, x, y int64, alive bool) *Node {
	if root.Level == leafLevel {
		row, col := int(y)+4, int(x)+4
		bit := uint64(1) << uint(row*8+col)
		word := root.Leaf
		if alive {
			word |= bit
		} else {
			word &^= bit
		}
		return a.internLeaf(word)
	}

	half := int64(1) << (root.Level - 2)
	nw, ne, sw, se := root.NW, root.NE, root.SW, root.SE
	switch quadrantFor(x, y) {
	case 's':
		se = a.set(se, x-half, y-half, alive)
	case 'e':
		ne = a.set(ne, x-half, y+half, alive)
	case 'w':
		sw = a.set(sw, x+half, y-half, alive)
	case 'n':
		nw = a.set(nw, x+half, y+half, alive)
	}
	return a.internInner(nw, ne, sw, se)
}

// expandOnce returns a root twice the side length of root, with root's
// content preserved at the same (x, y): for each of root's quadrants,
// the new root's corresponding child holds the old quadrant in the
// opposite corner of that child and empty elsewhere. Net effect: the
// new root covers a side-2x larger region centered on the old center.
func (a *Arena) expandOnce(root *Node) *Node {
	if root.Level >= maxLevel {
		panic("hashlife: cannot expand beyond maxLevel")
	}

	if root.Level == leafLevel {
		nw, ne, sw, se := promoteLeaf(root.Leaf)
		return a.internInner(a.internLeaf(nw), a.internLeaf(ne), a.internLeaf(sw), a.internLeaf(se))
	}

	empty := a.Empty(root.Level - 1)
	newNW := a.internInner(empty, empty, empty, root.NW)
	newNE := a.internInner(empty, empty, root.NE, empty)
	newSW := a.internInner(empty, root.SW, empty, empty)
	newSE := a.internInner(root.SE, empty, empty, empty)
	return a.internInner(newNW, newNE, newSW, newSE)
}

// expandToContain repeatedly expandOnce's root until (x, y) lies
// strictly inside, and returns the result.
func (a *Arena) expandToContain(root *Node, x, y int64) *Node {
	for {
		half := int64(1) << (root.Level - 1)
		if x >= -half && x < half && y >= -half && y < half {
			return root
		}
		root = a.expandOnce(root)
	}
}
