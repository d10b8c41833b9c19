package renderer

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/systems"
	"github.com/pthm-cable/snake/telemetry"
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Frame     int64
	Ticks     int
	Segments  int
	Food      int
	Direction string
	FPS       int32
	Zoom      float32
	Perf      telemetry.PerfStats
	Registry  *systems.SystemRegistry
}

// HUD renders the debug overlay. Hidden until toggled.
type HUD struct {
	visible bool
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Visible reports whether the HUD is shown.
func (h *HUD) Visible() bool {
	return h.visible
}

// Draw renders the HUD if visible.
func (h *HUD) Draw(data HUDData) {
	if !h.visible {
		return
	}

	x, y := int32(10), int32(10)

	rl.DrawText(
		fmt.Sprintf("Frame: %d | Ticks: %d | FPS: %d", data.Frame, data.Ticks, data.FPS),
		x, y, 14, rl.White,
	)
	y += 18
	rl.DrawText(
		fmt.Sprintf("Segments: %d | Food: %d | Heading: %s | Zoom: %.2fx", data.Segments, data.Food, data.Direction, data.Zoom),
		x, y, 14, rl.LightGray,
	)
	y += 24

	rl.DrawText(fmt.Sprintf("Frame avg: %s", data.Perf.AvgFrameDuration.Round(time.Microsecond)), x, y, 12, rl.Yellow)
	y += 14

	if data.Registry == nil {
		return
	}
	for _, id := range data.Registry.IDs() {
		pct := data.Perf.PhasePct[id]

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-16s %8s %5.1f%%", data.Registry.GetName(id), data.Perf.PhaseAvg[id].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	if !h.visible {
		return
	}
	rl.DrawText("Arrows: steer | Wheel: zoom | Home: reset view | F3: HUD", 10, screenHeight-20, 12, rl.Gray)
}
