package telemetry

import (
	"time"

	"github.com/pthm-cable/snake/components"
)

// Collector accumulates events within game-time windows and produces WindowStats.
type Collector struct {
	window time.Duration

	// Current window tracking
	windowStart      time.Duration
	windowStartFrame int64

	// Event counters for current window
	movementTicks    int
	foodSpawned      int
	directionChanges int
	reversals        int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in game seconds.
func NewCollector(windowDurationSec float64) *Collector {
	window := time.Duration(windowDurationSec * float64(time.Second))
	if window <= 0 {
		window = 10 * time.Second
	}
	return &Collector{window: window}
}

// RecordMovementTick records a movement tick.
func (c *Collector) RecordMovementTick() {
	c.movementTicks++
}

// RecordFoodSpawn records a food spawn.
func (c *Collector) RecordFoodSpawn() {
	c.foodSpawned++
}

// RecordDirection records a head direction write. Reversals are counted
// separately since nothing stops them.
func (c *Collector) RecordDirection(before, after components.Direction) {
	if before == after {
		return
	}
	c.directionChanges++
	if after == before.Opposite() {
		c.reversals++
	}
}

// ShouldFlush returns true if a full window of game time has passed.
func (c *Collector) ShouldFlush(gameTime time.Duration) bool {
	return gameTime-c.windowStart >= c.window
}

// Flush produces a WindowStats from the window counters and the world state,
// then resets counters for the next window.
func (c *Collector) Flush(frame int64, gameTime time.Duration, world WorldState) WindowStats {
	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   frame,
		GameTimeSec:      gameTime.Seconds(),
		MovementTicks:    c.movementTicks,
		FoodSpawned:      c.foodSpawned,
		DirectionChanges: c.directionChanges,
		Reversals:        c.reversals,
	}
	stats.applyWorld(world)

	c.windowStart = gameTime
	c.windowStartFrame = frame
	c.movementTicks = 0
	c.foodSpawned = 0
	c.directionChanges = 0
	c.reversals = 0

	return stats
}
