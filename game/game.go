package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/systems"
	"github.com/pthm-cable/snake/telemetry"
)

// Game holds the complete game state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand
	cfg   *config.Config
	arena systems.Arena

	// Entity mappers, one per entity kind
	headMapper    *ecs.Map5[components.Position, components.Size, components.Head, components.Sprite, components.Transform]
	segmentMapper *ecs.Map5[components.Position, components.Size, components.Segment, components.Sprite, components.Transform]
	foodMapper    *ecs.Map5[components.Position, components.Size, components.Food, components.Sprite, components.Transform]

	// Lookups
	headFilter *ecs.Filter1[components.Head]
	foodFilter *ecs.Filter2[components.Food, components.Position]
	posMap     *ecs.Map[components.Position]
	headMap    *ecs.Map[components.Head]

	// Systems
	registry   *systems.SystemRegistry
	input      *systems.InputSystem
	movement   *systems.MovementSystem
	projection *systems.ProjectionSystem

	// Timers gating the logic systems
	moveTimer *systems.Timer
	foodTimer *systems.Timer

	// Telemetry
	perfCollector *telemetry.PerfCollector
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool

	// State
	frame        int64
	gameTime     time.Duration
	ticks        int
	segmentCount int
	foodCount    int
	window       systems.Window
}

// NewGameWithOptions creates a game from the global config and spawns the snake.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}

	g := &Game{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		cfg:   cfg,
		arena: systems.Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height},

		headMapper:    ecs.NewMap5[components.Position, components.Size, components.Head, components.Sprite, components.Transform](world),
		segmentMapper: ecs.NewMap5[components.Position, components.Size, components.Segment, components.Sprite, components.Transform](world),
		foodMapper:    ecs.NewMap5[components.Position, components.Size, components.Food, components.Sprite, components.Transform](world),

		headFilter: ecs.NewFilter1[components.Head](world),
		foodFilter: ecs.NewFilter2[components.Food, components.Position](world),
		posMap:     ecs.NewMap[components.Position](world),
		headMap:    ecs.NewMap[components.Head](world),

		registry: systems.NewSystemRegistry(),
		input:    systems.NewInputSystem(world),
		movement: systems.NewMovementSystem(world),

		moveTimer: systems.NewTimer(cfg.Derived.MovementInterval),
		foodTimer: systems.NewTimer(cfg.Derived.FoodSpawnInterval),

		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:     telemetry.NewCollector(statsWindow),
		logStats:      opts.LogStats,

		window: systems.Window{Width: cfg.Derived.ScreenW32, Height: cfg.Derived.ScreenH32},
	}
	g.projection = systems.NewProjectionSystem(world, g.arena)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("setting up output: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	g.outputManager = om

	g.spawnSnake()

	slog.Info("game created",
		"seed", opts.Seed,
		"headless", opts.Headless,
		"arena_w", cfg.Arena.Width,
		"arena_h", cfg.Arena.Height,
		"segments", g.segmentCount,
		"move_interval", cfg.Derived.MovementInterval,
		"food_interval", cfg.Derived.FoodSpawnInterval,
	)

	return g, nil
}

// Update runs one frame in graphics mode.
func (g *Game) Update(f Frame) {
	g.perfCollector.RecordFrame()
	g.Step(f)
}

// UpdateHeadless runs one frame with a fixed synthetic delta, no keys and
// the configured window size.
func (g *Game) UpdateHeadless() {
	g.Step(Frame{
		Delta:  g.cfg.Derived.FrameDelta,
		Window: systems.Window{Width: g.cfg.Derived.ScreenW32, Height: g.cfg.Derived.ScreenH32},
	})
}

// Step runs every system once, in schedule order:
// input, movement (timer-gated), food spawn (timer-gated), scale, translate.
func (g *Game) Step(f Frame) {
	g.perfCollector.StartFrame()

	g.perfCollector.StartPhase(systems.SystemInput)
	before, after := g.input.Update(f.Keys)
	g.collector.RecordDirection(before, after)

	g.perfCollector.StartPhase(systems.SystemMovement)
	if g.moveTimer.Tick(f.Delta) {
		g.movement.Update()
		g.ticks++
		g.collector.RecordMovementTick()
	}

	g.perfCollector.StartPhase(systems.SystemFoodSpawn)
	if g.foodTimer.Tick(f.Delta) {
		g.spawnFood()
		g.collector.RecordFoodSpawn()
	}

	// Projection runs after all logic so transforms reflect this frame's tick
	g.perfCollector.StartPhase(systems.SystemScale)
	g.projection.ScalePass(f.Window)
	g.perfCollector.StartPhase(systems.SystemTranslate)
	g.projection.TranslatePass()

	g.perfCollector.EndFrame()

	g.frame++
	g.gameTime += f.Delta
	g.window = f.Window

	g.flushTelemetry()
}

// HeadPosition returns the head's grid position.
func (g *Game) HeadPosition() components.Position {
	return *g.posMap.Get(systems.UniqueHead(g.headFilter))
}

// HeadDirection returns the head's current direction.
func (g *Game) HeadDirection() components.Direction {
	return g.headMap.Get(systems.UniqueHead(g.headFilter)).Direction
}

// FoodPositions returns the positions of all food entities.
func (g *Game) FoodPositions() []components.Position {
	food := make([]components.Position, 0, g.foodCount)
	query := g.foodFilter.Query()
	for query.Next() {
		_, pos := query.Get()
		food = append(food, *pos)
	}
	return food
}

// World returns the entity registry, for renderers.
func (g *Game) World() *ecs.World {
	return g.world
}

// Registry returns the system registry.
func (g *Game) Registry() *systems.SystemRegistry {
	return g.registry
}

// PerfStats returns the current per-system timing.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// Frame returns the number of frames run.
func (g *Game) Frame() int64 {
	return g.frame
}

// Ticks returns the number of movement ticks run.
func (g *Game) Ticks() int {
	return g.ticks
}

// GameTime returns the total frame time fed to the game.
func (g *Game) GameTime() time.Duration {
	return g.gameTime
}

// SegmentCount returns the number of body segments.
func (g *Game) SegmentCount() int {
	return g.segmentCount
}

// FoodCount returns the number of food entities.
func (g *Game) FoodCount() int {
	return g.foodCount
}

// Window returns the window size seen by the last frame.
func (g *Game) Window() systems.Window {
	return g.window
}

// Unload flushes output and releases resources.
func (g *Game) Unload() {
	if g.outputManager == nil {
		return
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	g.outputManager = nil
}
