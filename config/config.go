// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arena     ArenaConfig     `yaml:"arena"`
	Snake     SnakeConfig     `yaml:"snake"`
	Food      FoodConfig      `yaml:"food"`
	Timers    TimersConfig    `yaml:"timers"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// ArenaConfig holds the grid dimensions in arena units.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig holds snake spawn parameters.
type SnakeConfig struct {
	InitialSegments int      `yaml:"initial_segments"`
	HeadColor       RGBColor `yaml:"head_color"`
	SegmentColor    RGBColor `yaml:"segment_color"`
}

// FoodConfig holds food parameters.
type FoodConfig struct {
	Color RGBColor `yaml:"color"`
}

// TimersConfig holds the wall-clock intervals gating timed systems.
type TimersConfig struct {
	MovementMS  int `yaml:"movement_ms"`   // Movement tick interval
	FoodSpawnMS int `yaml:"food_spawn_ms"` // Food spawn interval
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Seconds of game time per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Frames averaged by the perf collector
}

// RGBColor is a color with float channels in [0, 1].
type RGBColor struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// RGBA converts the color to 8-bit channels with full opacity.
func (c RGBColor) RGBA() color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	MovementInterval  time.Duration
	FoodSpawnInterval time.Duration
	FrameDelta        time.Duration // Synthetic frame time for headless runs
	ScreenW32         float32
	ScreenH32         float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the game cannot run with.
func (c *Config) validate() error {
	if c.Arena.Width < 2 || c.Arena.Height < 2 {
		// Food sampling needs a non-empty [-n/2, n/2) range on both axes.
		return fmt.Errorf("arena must be at least 2x2, got %dx%d", c.Arena.Width, c.Arena.Height)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Timers.MovementMS <= 0 || c.Timers.FoodSpawnMS <= 0 {
		return fmt.Errorf("timer intervals must be positive, got movement=%dms food=%dms",
			c.Timers.MovementMS, c.Timers.FoodSpawnMS)
	}
	if c.Snake.InitialSegments < 0 {
		return fmt.Errorf("initial_segments must not be negative, got %d", c.Snake.InitialSegments)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.MovementInterval = time.Duration(c.Timers.MovementMS) * time.Millisecond
	c.Derived.FoodSpawnInterval = time.Duration(c.Timers.FoodSpawnMS) * time.Millisecond
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.FrameDelta = time.Second / time.Duration(fps)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
