package game

import (
	"log/slog"

	"github.com/pthm-cable/snake/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and writes it out.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.gameTime) {
		return
	}

	stats := g.collector.Flush(g.frame, g.gameTime, g.sampleWorld())
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		slog.Info("perf", "stats", perfStats)
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteWindow(stats); err != nil {
			slog.Error("failed to write world stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleWorld collects the entity state recorded at the end of a window.
func (g *Game) sampleWorld() telemetry.WorldState {
	return telemetry.WorldState{
		Head:      g.HeadPosition(),
		Direction: g.HeadDirection(),
		Segments:  g.segmentCount,
		Food:      g.FoodPositions(),
	}
}
