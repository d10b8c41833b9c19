package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/snake/components"
)

// WorldState is the entity state sampled at the end of a window.
type WorldState struct {
	Head      components.Position
	Direction components.Direction
	Segments  int
	Food      []components.Position
}

// WindowStats holds aggregated statistics for a game-time window.
type WindowStats struct {
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end_frame"`
	GameTimeSec      float64 `csv:"game_time"`

	// Events during window
	MovementTicks    int `csv:"movement_ticks"`
	FoodSpawned      int `csv:"food_spawned"`
	DirectionChanges int `csv:"direction_changes"`
	Reversals        int `csv:"reversals"`

	// State at window end
	HeadX     int    `csv:"head_x"`
	HeadY     int    `csv:"head_y"`
	Direction string `csv:"direction"`
	Segments  int    `csv:"segments"`
	FoodCount int    `csv:"food"`

	// Food placement distribution (sampled at window end)
	FoodMeanX float64 `csv:"food_mean_x"`
	FoodStdX  float64 `csv:"food_std_x"`
	FoodMeanY float64 `csv:"food_mean_y"`
	FoodStdY  float64 `csv:"food_std_y"`
}

// applyWorld fills the state fields from a world sample.
func (s *WindowStats) applyWorld(w WorldState) {
	s.HeadX = w.Head.X
	s.HeadY = w.Head.Y
	s.Direction = w.Direction.String()
	s.Segments = w.Segments
	s.FoodCount = len(w.Food)
	s.FoodMeanX, s.FoodStdX, s.FoodMeanY, s.FoodStdY = FoodDistribution(w.Food)
}

// FoodDistribution returns the per-axis mean and standard deviation of food positions.
// Standard deviation is zero with fewer than two samples.
func FoodDistribution(food []components.Position) (meanX, stdX, meanY, stdY float64) {
	if len(food) == 0 {
		return 0, 0, 0, 0
	}

	xs := make([]float64, len(food))
	ys := make([]float64, len(food))
	for i, p := range food {
		xs[i] = float64(p.X)
		ys[i] = float64(p.Y)
	}

	if len(food) == 1 {
		return xs[0], 0, ys[0], 0
	}
	meanX, stdX = stat.MeanStdDev(xs, nil)
	meanY, stdY = stat.MeanStdDev(ys, nil)
	return meanX, stdX, meanY, stdY
}

// LogStats logs the window statistics.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("frame", s.WindowEndFrame),
		slog.Float64("game_time", s.GameTimeSec),
		slog.Int("movement_ticks", s.MovementTicks),
		slog.Int("food_spawned", s.FoodSpawned),
		slog.Int("direction_changes", s.DirectionChanges),
		slog.Int("reversals", s.Reversals),
		slog.Int("head_x", s.HeadX),
		slog.Int("head_y", s.HeadY),
		slog.String("direction", s.Direction),
		slog.Int("segments", s.Segments),
		slog.Int("food", s.FoodCount),
		slog.Float64("food_mean_x", s.FoodMeanX),
		slog.Float64("food_mean_y", s.FoodMeanY),
	)
}
