package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/game"
	"github.com/pthm-cable/snake/renderer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed for food placement (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N movement ticks (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Headless:       *headless,
	}

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	if *headless {
		// Pure CPU run, no raylib needed
		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
			"frame_delta", cfg.Derived.FrameDelta,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && g.Ticks() >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Ticks(), "frame", g.Frame())
				return
			}
		}
	}

	win := renderer.Open(cfg, g.World())
	defer win.Close()

	slog.Info("window opened",
		"title", cfg.Screen.Title,
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
	)

	for !win.ShouldClose() {
		g.Update(win.PollFrame())
		win.Draw(g)

		if *maxTicks > 0 && g.Ticks() >= *maxTicks {
			slog.Info("max ticks reached", "tick", g.Ticks(), "frame", g.Frame())
			break
		}
	}
	slog.Info("shutting down", "frame", g.Frame(), "ticks", g.Ticks())
}
