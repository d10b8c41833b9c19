// Projection preview tool - shows how arena cells are scaled and translated
// into window space for any arena and window size.
//
// Usage: go run ./cmd/projectionpreview
package main

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/camera"
	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 600
	previewSize  = 560
	previewX     = 20
	previewY     = 20
	panelWidth   = windowWidth - previewSize - 60
)

// PreviewParams holds the simulated arena and window.
type PreviewParams struct {
	ArenaW, ArenaH   int
	WindowW, WindowH float32
}

func defaultParams() PreviewParams {
	cfg := config.Cfg()
	return PreviewParams{
		ArenaW:  cfg.Arena.Width,
		ArenaH:  cfg.Arena.Height,
		WindowW: cfg.Derived.ScreenW32,
		WindowH: cfg.Derived.ScreenH32,
	}
}

func main() {
	config.MustInit("")

	rl.InitWindow(windowWidth, windowHeight, "Projection Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()
	cam := camera.New(previewSize, previewSize)
	// Fit-to-preview zoom can exceed the interactive limits
	cam.MinZoom, cam.MaxZoom = 0.01, 100

	for !rl.WindowShouldClose() {
		arena := systems.Arena{Width: params.ArenaW, Height: params.ArenaH}
		window := systems.Window{Width: params.WindowW, Height: params.WindowH}
		cam.SetZoom(min(previewSize/window.Width, previewSize/window.Height))
		sx, sy := systems.Scale(components.Square(1), arena, window)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawPreview(cam, arena, window, sx, sy)

		// Hovered cell
		mouse := rl.GetMousePosition()
		wx, wy := cam.ScreenToWorld(mouse.X-previewX, mouse.Y-previewY)
		cellX := int(math.Round(float64(wx / sx)))
		cellY := int(math.Round(float64(wy / sy)))

		statsY := int32(previewY + previewSize + 10)
		rl.DrawText(fmt.Sprintf("Cell scale: %.2f x %.2f px", sx, sy), previewX, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Hover: cell (%d, %d)  window (%.0f, %.0f)", cellX, cellY, wx, wy), previewX+260, statsY, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewX + previewSize + 30)
		panelY := float32(20)

		rl.DrawText("Projection Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		params.ArenaW = int(slider(panelX, &panelY, "Arena width (cells)", float32(params.ArenaW), 2, 64, "%.0f"))
		params.ArenaH = int(slider(panelX, &panelY, "Arena height (cells)", float32(params.ArenaH), 2, 64, "%.0f"))
		params.WindowW = slider(panelX, &panelY, "Window width (px)", params.WindowW, 100, 1920, "%.0f")
		params.WindowH = slider(panelX, &panelY, "Window height (px)", params.WindowH, 100, 1080, "%.0f")

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Square Window") {
			params.WindowH = params.WindowW
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
		}
		panelY += 45

		rl.DrawText("Food spawns in the checkered cells.", int32(panelX), int32(panelY), 14, rl.Gray)
		rl.DrawText("The snake spawns in the green cell.", int32(panelX), int32(panelY+18), 14, rl.Gray)

		rl.EndDrawing()
	}
}

// slider draws a labelled slider and advances y past it.
func slider(x float32, y *float32, label string, value, minVal, maxVal float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	newValue := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		value, minVal, maxVal,
	)
	rl.DrawText(fmt.Sprintf(format, newValue), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return newValue
}

// drawPreview draws the simulated window and the projected arena cells.
func drawPreview(cam *camera.Camera, arena systems.Arena, window systems.Window, sx, sy float32) {
	rl.DrawRectangle(previewX, previewY, previewSize, previewSize, rl.LightGray)

	// Simulated window bounds
	left, top := cam.WorldToScreen(-window.Width/2, window.Height/2)
	rl.DrawRectangleRec(rl.Rectangle{
		X:      previewX + left,
		Y:      previewY + top,
		Width:  window.Width * cam.Zoom,
		Height: window.Height * cam.Zoom,
	}, rl.Black)

	minX, maxX, minY, maxY := arena.Bounds()
	w := sx * cam.Zoom
	h := sy * cam.Zoom
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			tx, ty, _ := systems.Translate(components.Position{X: x, Y: y}, sx, sy)
			cx, cy := cam.WorldToScreen(tx, ty)

			color := rl.Color{R: 60, G: 60, B: 60, A: 255}
			if (x+y)%2 == 0 {
				color = rl.Color{R: 90, G: 90, B: 90, A: 255}
			}
			if x == 0 && y == 0 {
				color = rl.Color{R: 80, G: 180, B: 80, A: 255}
			}
			rl.DrawRectangleRec(rl.Rectangle{X: previewX + cx - w/2, Y: previewY + cy - h/2, Width: w, Height: h}, color)
		}
	}

	rl.DrawRectangleLines(previewX, previewY, previewSize, previewSize, rl.DarkGray)
}
