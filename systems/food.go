package systems

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/snake/components"
)

// Arena is the size of the playing grid in arena units.
type Arena struct {
	Width, Height int
}

// Bounds returns the half-open cell range [minX, maxX) x [minY, maxY)
// used for food placement. Integer division matches the centered grid,
// so a 15-wide arena spans [-7, 7).
func (a Arena) Bounds() (minX, maxX, minY, maxY int) {
	return -a.Width / 2, a.Width / 2, -a.Height / 2, a.Height / 2
}

// FoodPosition samples a uniformly random cell inside the arena bounds.
func FoodPosition(rng *rand.Rand, arena Arena) components.Position {
	minX, maxX, minY, maxY := arena.Bounds()
	return components.Position{
		X: randRange(rng, minX, maxX),
		Y: randRange(rng, minY, maxY),
	}
}

// randRange returns a uniform integer in [lo, hi). Panics on an empty range.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		panic(fmt.Sprintf("systems: empty sampling range [%d, %d)", lo, hi))
	}
	return lo + rng.Intn(hi-lo)
}
