// Command hashlife loads an RLE pattern, simulates it forward by a
// requested number of generations, and reports the resulting
// population (and, optionally, an ASCII render of a viewport). It
// exists as a runnable example of the library surface, mirroring the
// way the teacher ships an Example() alongside its core package and
// the way the rest of the retrieved corpus ships a cmd/ entry point
// next to its library.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/arucil/hashlife"
	"github.com/flier/goutil/pkg/xerrors"
)

func main() {
	var (
		file = flag.String("pattern", "", "path to an RLE pattern file (default: stdin)")
		gens = flag.Uint64("generations", 0, "number of generations to simulate")
		ascii = flag.Bool("ascii", false, "print an ASCII render of the viewport after simulating")
		viewSide = flag.Int64("view", 64, "side length of the square viewport centered on the origin")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	in := os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Error("open pattern", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	u, err := hashlife.Read(in)
	if err != nil {
		if pe, ok := xerrors.AsA[*hashlife.ParseError](err); ok {
			log.Error("parse pattern", "section", pe.Kind, "offset", pe.Pos)
		} else {
			log.Error("parse pattern", "error", err)
		}
		os.Exit(1)
	}

	log.Info("loaded pattern", "stats", u.Stats())

	u.Simulate(*gens)

	log.Info("simulated", "generation", u.Generation())
	fmt.Println(u.String())

	if *ascii {
		half := *viewSide / 2
		viewport := hashlife.Rect{X0: -half, Y0: -half, W: *viewSide, H: *viewSide}
		printASCII(u, viewport)
	}
}

func printASCII(u *hashlife.Universe, viewport hashlife.Rect) {
	grid := make([][]byte, viewport.H)
	for i := range grid {
		grid[i] = make([]byte, viewport.W)
		for j := range grid[i] {
			grid[i][j] = '.'
		}
	}

	u.ForEachLiveBlock(viewport, func(bx, by int64, block uint64) {
		for row := int64(0); row < 8; row++ {
			for col := int64(0); col < 8; col++ {
				if block&(uint64(1)<<uint(row*8+col)) == 0 {
					continue
				}
				x, y := bx+col, by+row
				gx, gy := x-viewport.X0, y-viewport.Y0
				if gx >= 0 && gx < viewport.W && gy >= 0 && gy < viewport.H {
					grid[gy][gx] = '#'
				}
			}
		}
	})

	for _, row := range grid {
		fmt.Println(string(row))
	}
}
