package game

import (
	"time"

	"github.com/pthm-cable/snake/systems"
)

// Options holds runtime options for a game instance.
type Options struct {
	Seed           int64   // RNG seed for food placement
	LogStats       bool    // Log window stats via slog
	StatsWindowSec float64 // Stats window in game seconds (0 = use config)
	OutputDir      string  // Directory for CSV output (empty = disabled)
	Headless       bool    // No window; frames are synthetic
}

// Frame is the host input for one frame: elapsed wall-clock time, the polled
// directional keys and the current window size.
type Frame struct {
	Delta  time.Duration
	Keys   systems.KeyState
	Window systems.Window
}
