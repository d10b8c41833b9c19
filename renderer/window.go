package renderer

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/camera"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/game"
	"github.com/pthm-cable/snake/systems"
)

// Window owns the raylib window and everything drawn into it.
type Window struct {
	camera  *camera.Camera
	sprites *SpriteRenderer
	hud     *HUD

	screenWidth, screenHeight float32
}

// Open creates the raylib window and the renderers for the given world.
func Open(cfg *config.Config, world *ecs.World) *Window {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	return &Window{
		camera:       camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32),
		sprites:      NewSpriteRenderer(world),
		hud:          &HUD{},
		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
	}
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// PollFrame handles view controls and returns the host input for this frame.
func (w *Window) PollFrame() game.Frame {
	w.handleResize()
	w.handleViewInput()

	return game.Frame{
		Delta: time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)),
		Keys: systems.KeyState{
			Left:  rl.IsKeyDown(rl.KeyLeft),
			Right: rl.IsKeyDown(rl.KeyRight),
			Down:  rl.IsKeyDown(rl.KeyDown),
			Up:    rl.IsKeyDown(rl.KeyUp),
		},
		Window: systems.Window{Width: w.screenWidth, Height: w.screenHeight},
	}
}

// Draw renders one frame of the game.
func (w *Window) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	w.sprites.Draw(w.camera)

	w.hud.Draw(HUDData{
		Frame:     g.Frame(),
		Ticks:     g.Ticks(),
		Segments:  g.SegmentCount(),
		Food:      g.FoodCount(),
		Direction: g.HeadDirection().String(),
		FPS:       rl.GetFPS(),
		Zoom:      w.camera.Zoom,
		Perf:      g.PerfStats(),
		Registry:  g.Registry(),
	})
	w.hud.DrawControls(int32(w.screenHeight))

	rl.EndDrawing()
}

// Close destroys the window.
func (w *Window) Close() {
	rl.CloseWindow()
}

// handleResize propagates a window resize to the camera and the projection.
func (w *Window) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	width := float32(rl.GetScreenWidth())
	height := float32(rl.GetScreenHeight())
	if width == w.screenWidth && height == w.screenHeight {
		return
	}
	w.screenWidth = width
	w.screenHeight = height
	w.camera.Resize(width, height)
}

// handleViewInput processes HUD and camera controls. The arrow keys belong to
// the snake, so the camera only zooms.
func (w *Window) handleViewInput() {
	if rl.IsKeyPressed(rl.KeyF3) {
		w.hud.Toggle()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		w.camera.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		w.camera.Reset()
	}
}
