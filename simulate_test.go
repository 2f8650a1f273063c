package hashlife

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scenario: block (2x2 still life) is unchanged by any number of
// generations.
func TestScenarioBlockIsStill(t *testing.T) {
	u := NewUniverse()
	for _, c := range [][2]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		u.Set(c[0], c[1], true)
	}
	u.Simulate(1)
	for _, c := range [][2]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		assert.True(t, u.Get(c[0], c[1]))
	}
	assert.Equal(t, uint64(4), u.root.Population)
}

// Scenario: blinker (3-cell still-life oscillator, period 2) flips
// orientation every single-generation step.
func TestScenarioBlinkerOscillates(t *testing.T) {
	u := NewUniverse()
	for _, c := range [][2]int64{{-1, 0}, {0, 0}, {1, 0}} {
		u.Set(c[0], c[1], true)
	}

	u.Simulate(1)
	for _, c := range [][2]int64{{0, -1}, {0, 0}, {0, 1}} {
		assert.True(t, u.Get(c[0], c[1]), "expected vertical blinker cell %v", c)
	}
	assert.Equal(t, uint64(3), u.root.Population)

	u.Simulate(1)
	for _, c := range [][2]int64{{-1, 0}, {0, 0}, {1, 0}} {
		assert.True(t, u.Get(c[0], c[1]), "expected original horizontal blinker cell %v", c)
	}
	assert.Equal(t, uint64(3), u.root.Population)
}

// Scenario: glider translates by (1, 1) every 4 generations, same shape.
// A single simulate(4) call forces evolve to take the k=2 maximal-jump
// path through a level-4 boundary node, exercising the leaf-boundary
// step primitive directly rather than four separate k=0 steps.
func TestScenarioGliderTranslates(t *testing.T) {
	u := NewUniverse()
	glider := [][2]int64{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for _, c := range glider {
		u.Set(c[0], c[1], true)
	}

	u.Simulate(4)

	assert.Equal(t, uint64(5), u.root.Population)
	for _, c := range glider {
		assert.True(t, u.Get(c[0]+1, c[1]+1), "expected translated glider cell %v", c)
	}
}

// Scenario: an empty universe stays empty no matter how many generations
// are requested, including jumps that force a very deep binary
// decomposition of n.
func TestScenarioEmptyUniverseStaysEmptyAtLargeN(t *testing.T) {
	u := NewUniverse()
	u.Simulate(uint64(1) << 40)
	assert.Equal(t, uint64(0), u.root.Population)
	assert.Equal(t, uint64(1)<<40, u.Generation())
	assert.False(t, u.Get(0, 0))
}

// Scenario: evolution is deterministic across a manual mid-run cache
// eviction — evicting the result cache must not change the live-cell
// set produced by subsequent steps, since any evicted entry is simply
// recomputed from the same canonical nodes.
func TestScenarioDeterministicUnderCacheEviction(t *testing.T) {
	seed := func() *Universe {
		u := NewUniverse()
		for _, c := range [][2]int64{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
			u.Set(c[0], c[1], true)
		}
		return u
	}

	baseline := seed()
	for i := 0; i < 8; i++ {
		baseline.Simulate(1)
	}

	withEviction := seed()
	for i := 0; i < 8; i++ {
		withEviction.Simulate(1)
		if i == 3 {
			withEviction.Compact()
		}
	}

	assert.Equal(t, baseline.Generation(), withEviction.Generation())
	assert.Equal(t, baseline.root.Population, withEviction.root.Population)

	viewport := Rect{X0: -16, Y0: -16, W: 32, H: 32}
	var baseCells, evictCells [][2]int64
	baseline.ForEachLiveBlock(viewport, func(bx, by int64, block uint64) {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				if bitAt(block, row, col) != 0 {
					baseCells = append(baseCells, [2]int64{bx + int64(col), by + int64(row)})
				}
			}
		}
	})
	withEviction.ForEachLiveBlock(viewport, func(bx, by int64, block uint64) {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				if bitAt(block, row, col) != 0 {
					evictCells = append(evictCells, [2]int64{bx + int64(col), by + int64(row)})
				}
			}
		}
	})
	assert.ElementsMatch(t, baseCells, evictCells)
}

// Scenario: the R-pentomino stabilizes to a population of 116 (its known
// final population under B3/S23, including escaped gliders) after 1103
// generations. n=1103 (binary 10001001111) decomposes into six distinct
// step exponents, several of them well past the leaf boundary's maximal k=2,
// so this is the scenario that actually drives the super-linear jump path
// end to end rather than a loop of single k=0 steps.
func TestScenarioRPentominoStabilizes(t *testing.T) {
	u, err := Read(strings.NewReader("x = 3, y = 3\nb2o$2o$bo!\n"))
	assert.NoError(t, err)

	u.Simulate(1103)

	assert.Equal(t, uint64(1103), u.Generation())
	assert.Equal(t, uint64(116), u.root.Population)
}

func TestCompactShrinksCache(t *testing.T) {
	u := NewUniverse()
	for _, c := range [][2]int64{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		u.Set(c[0], c[1], true)
	}
	for i := 0; i < 6; i++ {
		u.Simulate(1)
	}
	before := u.cache.len()
	u.Compact()
	assert.LessOrEqual(t, u.cache.len(), before)
}
