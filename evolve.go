package hashlife

// evolve returns the center half of node (level node.Level-1) advanced
// by exactly 2^k generations under B3/S23, consulting the universe's
// result cache first and populating it afterwards; only results for the
// maximal k = node.Level-2 are stored there. node.Level must be at least
// leafLevel+1 and 0 <= k <= node.Level-2.
//
// This is the HashLife recurrence of spec.md §4.5, grounded on the
// teacher's NextGeneration: the nine-sub-node assembly and four-way
// recomposition are the same shape as the teacher's n00..n22 handling,
// generalized to thread a step exponent k through and to special-case
// the level directly above the leaf, which evolveBoundary advances by
// stepping its four leaves' 16x16 grid directly instead of recursing
// into nine sub-nodes.
func (u *Universe) evolve(node *Node, k uint8) *Node {
	if node.Level < leafLevel+1 {
		panic("hashlife: evolve called on a node at or below the leaf level")
	}
	if k > node.Level-2 {
		panic("hashlife: evolve: k exceeds node's maximal jump")
	}

	if result, ok := u.cache.get(node, k); ok {
		return result
	}

	var result *Node
	if node.Level == leafLevel+1 {
		result = u.evolveBoundary(node, k)
	} else {
		result = u.evolveInner(node, k)
	}

	u.cache.put(node, k, result)
	return result
}

// evolveBoundary handles a node one level above the leaf, whose four
// children are leaves themselves, so the nine-sub-node recurrence has
// nowhere left to recurse: this is the kernel's second base case, the
// direct analog of the teacher's slowSimulation at its own Level == 2
// base case one level above the teacher's true (single-cell) leaf.
// node.Level == leafLevel+1 == 4, so its maximal k is 2 (4 generations):
// the same "2g+1 neighborhood" argument that bounds every other level's
// maximal jump applies here too, it just has no child pointers left to
// recurse through. evolveBoundary honors it directly by stepping the
// virtual 16x16 grid formed by node's four leaves one generation at a
// time (stepGridRow, the margin-1 analog of evolveLeaf's margin-2
// windowed version), then reading off the center 8x8 of whatever
// interior survives after 2^k steps.
func (u *Universe) evolveBoundary(node *Node, k uint8) *Node {
	word := evolveLeafGrid(node.NW.Leaf, node.NE.Leaf, node.SW.Leaf, node.SE.Leaf, k)
	return u.arena.internLeaf(word)
}

// evolveInner handles node.Level >= leafLevel+2, where the nine
// sub-nodes and their evolved quarter-results are all ordinary nodes.
func (u *Universe) evolveInner(node *Node, k uint8) *Node {
	ar := u.arena
	subs := nineSubNodes(ar, node)

	kPrime := k
	if maxSub := node.Level - 3; kPrime > maxSub {
		kPrime = maxSub
	}

	q := make(map[byte]*Node, 9)
	for code, sub := range subs {
		q[code] = u.evolve(sub, kPrime)
	}

	if k == node.Level-2 {
		// Maximal jump: advance a second half-step so the total is
		// 2^kPrime + 2^(Level-3) = 2^(Level-2), per spec.md §4.5.
		gNW := ar.internInner(q['n'], q['N'], q['W'], q['C'])
		gNE := ar.internInner(q['N'], q['e'], q['C'], q['E'])
		gSW := ar.internInner(q['W'], q['C'], q['w'], q['S'])
		gSE := ar.internInner(q['C'], q['E'], q['S'], q['s'])

		kSecond := node.Level - 3
		return ar.internInner(
			u.evolve(gNW, kSecond),
			u.evolve(gNE, kSecond),
			u.evolve(gSW, kSecond),
			u.evolve(gSE, kSecond),
		)
	}

	// Smaller k: no second half-step. The nine quarter-results sit one
	// half-cell off from the centered L-2 children the returned node
	// needs, so the center is reassembled directly from adjacent
	// quarter-results' own corners — the same overlap trick nineSubNodes'
	// 'C' entry uses to build a centered node from its four neighbors'
	// corners, applied one level down. See DESIGN.md.
	newNW := quarterCombine(ar, q['n'], q['N'], q['W'], q['C'])
	newNE := quarterCombine(ar, q['N'], q['e'], q['C'], q['E'])
	newSW := quarterCombine(ar, q['W'], q['C'], q['w'], q['S'])
	newSE := quarterCombine(ar, q['C'], q['E'], q['S'], q['s'])
	return ar.internInner(newNW, newNE, newSW, newSE)
}

// quarterCombine returns the node at a's own level built from a's SE
// corner, b's SW corner, c's NE corner, and d's NW corner — a, b, c, d
// must all share a level. This is nineSubNodes' 'C'-style overlap
// composition, generalized to any four same-level nodes instead of
// specifically a node's own four children.
func quarterCombine(ar *Arena, a, b, c, d *Node) *Node {
	if a.Level == leafLevel {
		return ar.internLeaf(composeWindow(a.Leaf, b.Leaf, c.Leaf, d.Leaf, 4, 4))
	}
	return ar.internInner(a.SE, b.SW, c.NE, d.NW)
}

// nineSubNodes builds the nine overlapping half-size sub-nodes of node
// (each at level node.Level-1), keyed by the compass codes composeLeaf
// also uses: 'n'=NW, 'e'=NE, 'w'=SW, 's'=SE are node's own children
// passed straight through; 'N', 'W', 'E', 'S', 'C' are composites built
// from node's grandchildren, generalizing the teacher's
// centeredHorizontal/centeredVertical/centeredSubnode from
// single-cell-leaf depth to this package's level-3-leaf depth.
func nineSubNodes(ar *Arena, node *Node) map[byte]*Node {
	nw, ne, sw, se := node.NW, node.NE, node.SW, node.SE
	return map[byte]*Node{
		'n': nw,
		'e': ne,
		'w': sw,
		's': se,
		'N': ar.internInner(nw.NE, ne.NW, nw.SE, ne.SW),
		'W': ar.internInner(nw.SW, nw.SE, sw.NW, sw.NE),
		'E': ar.internInner(ne.SW, ne.SE, se.NW, se.NE),
		'S': ar.internInner(sw.NE, se.NW, sw.SE, se.SW),
		'C': ar.internInner(nw.SE, ne.SW, sw.NE, se.NW),
	}
}
