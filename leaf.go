package hashlife

import "math/bits"

// popcountImpl counts the live cells in an 8x8 leaf word, generalizing
// the teacher's neighbor-counting trick (clear-least-set-bit loop in
// oneGen) to the compiler intrinsic for a full 64-bit population count.
func popcountImpl(word uint64) int {
	return bits.OnesCount64(word)
}

// leafRow returns the 8 bits of row r (0..7) of a leaf word, bit c of
// the result being column c.
func leafRow(word uint64, r int) uint8 {
	return uint8(word >> uint(r*8))
}

// bitAt returns the cell at (row, col) of a leaf word, 0 or 1.
func bitAt(word uint64, row, col int) uint64 {
	return (word >> uint(row*8+col)) & 1
}

// evolveLeaf advances the inner 6x6 of an 8x8 leaf by one generation
// under B3/S23 and returns the resulting center 4x4, packed bit
// (r*4+c) for r, c in [0,3] corresponding to source row/col r+2, c+2.
// This is the base case of the evolution kernel (spec level 3) and the
// direct generalization of the teacher's oneGen bitmask neighbor count,
// run over all 16 interior positions instead of the teacher's one.
func evolveLeaf(word uint64) uint16 {
	var out uint16
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			row, col := r+2, c+2
			self := bitAt(word, row, col)
			var n int
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					n += int(bitAt(word, row+dr, col+dc))
				}
			}
			if n == 3 || (n == 2 && self != 0) {
				out |= 1 << uint(r*4+c)
			}
		}
	}
	return out
}

// wideRow returns row r (0..15) of the virtual 16x16 grid formed by
// tiling nw, ne, sw, se 2x2, bit c of the result being column c.
func wideRow(nw, ne, sw, se uint64, r int) uint16 {
	if r < 8 {
		return uint16(leafRow(nw, r)) | uint16(leafRow(ne, r))<<8
	}
	return uint16(leafRow(sw, r-8)) | uint16(leafRow(se, r-8))<<8
}

// composeWindow extracts the 8x8 window starting at (rowOff, colOff) of
// the virtual 16x16 grid formed by tiling nw, ne, sw, se 2x2, returning
// it as a fresh leaf word. This is the bit-shuffle analog of the
// teacher's centeredSubnode/centeredHorizontal/centeredVertical, which
// did the same overlapping-window extraction one pointer level at a
// time; here there are no children to recombine, only bits.
func composeWindow(nw, ne, sw, se uint64, rowOff, colOff int) uint64 {
	var out uint64
	for i := 0; i < 8; i++ {
		row := wideRow(nw, ne, sw, se, rowOff+i)
		b := uint8(row >> uint(colOff))
		out |= uint64(b) << uint(i*8)
	}
	return out
}

// composeLeaf synthesizes the nine overlapping 8x8 sub-patches of the
// virtual 16x16 grid formed by tiling nw, ne, sw, se 2x2 (spec.md
// §4.2's "composition" operation). Quadrant codes match Node.child:
// 'n'=NW, 'e'=NE, 'w'=SW, 's'=SE; the five remaining keys are the
// compass points 'N', 'W', 'C', 'E', 'S'.
func composeLeaf(nw, ne, sw, se uint64) map[byte]uint64 {
	return map[byte]uint64{
		'n': nw,
		'e': ne,
		'w': sw,
		's': se,
		'N': composeWindow(nw, ne, sw, se, 0, 4),
		'W': composeWindow(nw, ne, sw, se, 4, 0),
		'C': composeWindow(nw, ne, sw, se, 4, 4),
		'E': composeWindow(nw, ne, sw, se, 4, 8),
		'S': composeWindow(nw, ne, sw, se, 8, 4),
	}
}

// assembleLeaf packs four 4x4 quadrant results (as returned by
// evolveLeaf) into one 8x8 leaf word.
func assembleLeaf(nw, ne, sw, se uint16) uint64 {
	var out uint64
	for r := 0; r < 4; r++ {
		out |= uint64((nw>>uint(r*4))&0xF) << uint(r*8)
		out |= uint64((ne>>uint(r*4))&0xF) << uint(r*8+4)
		out |= uint64((sw>>uint(r*4))&0xF) << uint((r+4)*8)
		out |= uint64((se>>uint(r*4))&0xF) << uint((r+4)*8+4)
	}
	return out
}

// quadOffsets maps a quadrant code to its (rowOffset, colOffset) within
// an 8x8 leaf, each quadrant being a 4x4 nibble block.
func quadOffsets(quadrant byte) (rowOff, colOff int) {
	switch quadrant {
	case 'n':
		return 0, 0
	case 'e':
		return 0, 4
	case 'w':
		return 4, 0
	case 's':
		return 4, 4
	default:
		panic("hashlife: invalid quadrant")
	}
}

// extractQuad returns the 4x4 quadrant of word named by quadrant,
// packed bit (r*4+c) as in evolveLeaf's output.
func extractQuad(word uint64, quadrant byte) uint16 {
	rowOff, colOff := quadOffsets(quadrant)
	var out uint16
	for r := 0; r < 4; r++ {
		nib := (leafRow(word, rowOff+r) >> uint(colOff)) & 0xF
		out |= uint16(nib) << uint(r*4)
	}
	return out
}

// placeQuad places a 4x4 block (as extracted by extractQuad) into the
// named quadrant of an otherwise-empty fresh 8x8 leaf word.
func placeQuad(block uint16, quadrant byte) uint64 {
	rowOff, colOff := quadOffsets(quadrant)
	var out uint64
	for r := 0; r < 4; r++ {
		nib := uint64((block >> uint(r*4)) & 0xF)
		out |= nib << uint((rowOff+r)*8+colOff)
	}
	return out
}

// promoteLeaf splits an 8x8 leaf word into the four leaf-level children
// a level-4 node would need to hold the same content after expandOnce:
// each of the leaf's own quadrants keeps its world position by moving
// into the corner of its new child nearest the (now larger) center —
// e.g. the old NW quadrant becomes the SE corner of the new NW child —
// mirroring expandOnce's pointer-level placement of each old quadrant
// into the same-relative-position slot of its new containing child.
func promoteLeaf(word uint64) (nw, ne, sw, se uint64) {
	nw = placeQuad(extractQuad(word, 'n'), 's')
	ne = placeQuad(extractQuad(word, 'e'), 'w')
	sw = placeQuad(extractQuad(word, 'w'), 'e')
	se = placeQuad(extractQuad(word, 's'), 'n')
	return
}

// gridRows unpacks the virtual 16x16 grid formed by tiling nw, ne, sw,
// se 2x2 into 16 row bitmasks, row r of the result being row r of that
// grid (bit c is column c). This is wideRow run over every row instead
// of one at a time, so evolveLeafGrid can step the whole grid at once.
func gridRows(nw, ne, sw, se uint64) [16]uint16 {
	var rows [16]uint16
	for r := 0; r < 16; r++ {
		rows[r] = wideRow(nw, ne, sw, se, r)
	}
	return rows
}

// stepGridRow advances an NxN bit grid (rows, each width bits wide) by
// exactly one generation under B3/S23, losing a one-cell margin on
// every side: row i of the result is row i+1 of rows with its
// leftmost and rightmost bit dropped, each cell computed from its full
// 3x3 neighborhood. This is the margin-1 analog of evolveLeaf's
// margin-2 windowed version — evolveLeaf narrows further than the
// speed-of-light bound requires so its output tiles cleanly into
// composeLeaf's nine overlapping sub-patches; stepGridRow keeps every
// cell the neighborhood data can support, which is what a variable
// multi-generation jump at the leaf boundary needs.
func stepGridRow(rows []uint16, width int) []uint16 {
	out := make([]uint16, len(rows)-2)
	for r := 1; r < len(rows)-1; r++ {
		var outRow uint16
		for c := 1; c < width-1; c++ {
			self := (rows[r] >> uint(c)) & 1
			n := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					n += int((rows[r+dr] >> uint(c+dc)) & 1)
				}
			}
			if n == 3 || (n == 2 && self != 0) {
				outRow |= 1 << uint(c-1)
			}
		}
		out[r-1] = outRow
	}
	return out
}

// evolveLeafGrid advances the center 8x8 of the virtual 16x16 grid
// formed by the four leaf children of a level-4 node by exactly 2^k
// generations, 0 <= k <= 2 (a level-4 node's maximal jump, by the same
// "2g+1 neighborhood" bound every other level's evolveInner relies on:
// an 8x8 center needs only a g-cell margin on each side to be correct
// g generations out, and 16x16 has a 4-cell margin on each side, so
// g <= 4). A level-4 node's children are leaves, so the general
// nine-sub-node recurrence of evolve (§4.5) cannot recurse any deeper;
// this is the kernel's second base case, the direct analog of the
// teacher's slowSimulation at its own second base case (Level == 2),
// generalized to honor an arbitrary step exponent by repeated
// application of stepGridRow rather than the teacher's single fixed
// step.
func evolveLeafGrid(nw, ne, sw, se uint64, k uint8) uint64 {
	rows := gridRows(nw, ne, sw, se)
	cur := rows[:]
	width := 16
	for g, gens := 0, 1<<k; g < gens; g++ {
		cur = stepGridRow(cur, width)
		width -= 2
	}

	marginRows := (len(cur) - 8) / 2
	marginCols := (width - 8) / 2
	var word uint64
	for r := 0; r < 8; r++ {
		row := cur[r+marginRows]
		word |= uint64(uint8(row>>uint(marginCols))) << uint(r*8)
	}
	return word
}
