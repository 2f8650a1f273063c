package hashlife

// Rect is a viewport in world coordinates: the half-open square/rect
// spanning [X0, X0+W) x [Y0, Y0+H).
type Rect struct {
	X0, Y0 int64
	W, H   int64
}

// intersects reports whether Rect r intersects the square of side
// 2*half centered at (cx, cy).
func (r Rect) intersects(cx, cy, half int64) bool {
	return r.X0 < cx+half && cx-half < r.X0+r.W &&
		r.Y0 < cy+half && cy-half < r.Y0+r.H
}

// forEachLiveBlock walks node, whose square is centered at (cx, cy),
// calling visit for every live leaf that intersects viewport. Prunes
// any subtree with zero population or whose bounding square does not
// intersect the viewport, generalizing the teacher's FindLifeCells
// (which visits every live cell unconditionally, with no viewport) to
// visit live 8x8 blocks instead of single cells, plus the bounding-box
// prune the teacher has no use for.
func (u *Universe) forEachLiveBlock(node *Node, cx, cy int64, viewport Rect, visit func(x, y int64, block uint64)) {
	if node.Population == 0 {
		return
	}
	half := int64(1) << (node.Level - 1)
	if !viewport.intersects(cx, cy, half) {
		return
	}

	if node.Level == leafLevel {
		visit(cx-4, cy-4, node.Leaf)
		return
	}

	childHalf := half / 2
	u.forEachLiveBlock(node.NW, cx-childHalf, cy-childHalf, viewport, visit)
	u.forEachLiveBlock(node.NE, cx+childHalf, cy-childHalf, viewport, visit)
	u.forEachLiveBlock(node.SW, cx-childHalf, cy+childHalf, viewport, visit)
	u.forEachLiveBlock(node.SE, cx+childHalf, cy+childHalf, viewport, visit)
}
