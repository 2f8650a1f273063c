package hashlife

import (
	"io"

	"github.com/arucil/hashlife/pattern"
)

// Read parses an RLE pattern from r and returns a universe whose root
// contains it anchored at the origin: the pattern's own (0,0) (its
// top-left corner) maps to world (0,0), matching spec.md §6's "a
// universe whose root contains the pattern anchored at origin."
func Read(r io.Reader) (*Universe, error) {
	p, err := pattern.Parse(r)
	if err != nil {
		if pe, ok := err.(*pattern.ParseError); ok {
			return nil, &ParseError{Kind: ErrorKind(pe.Kind), Pos: pe.Pos}
		}
		return nil, err
	}

	u := NewUniverse()
	for _, c := range p.Cells {
		u.Set(c.X, c.Y, true)
	}
	return u, nil
}

// WriteRLE emits the universe's live cells within viewport as an RLE
// pattern.
func (u *Universe) WriteRLE(w io.Writer, viewport Rect) error {
	var cells []pattern.Cell
	u.ForEachLiveBlock(viewport, func(bx, by int64, block uint64) {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				if bitAt(block, row, col) != 0 {
					x, y := bx+int64(col), by+int64(row)
					if x >= viewport.X0 && x < viewport.X0+viewport.W &&
						y >= viewport.Y0 && y < viewport.Y0+viewport.H {
						cells = append(cells, pattern.Cell{
							X: x - viewport.X0,
							Y: y - viewport.Y0,
						})
					}
				}
			}
		}
	})
	return pattern.Write(w, viewport.W, viewport.H, cells)
}
