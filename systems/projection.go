package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/components"
)

// Window is the current window size in pixels.
type Window struct {
	Width, Height float32
}

// Scale converts a logical size to a pixel scale: the fraction of the arena
// the entity covers on each axis, times the window size on that axis.
func Scale(size components.Size, arena Arena, window Window) (sx, sy float32) {
	sx = size.Width / float32(arena.Width) * window.Width
	sy = size.Height / float32(arena.Height) * window.Height
	return sx, sy
}

// Translate converts a grid position to a pixel translation using the
// entity's pixel scale. Z is always 0.
func Translate(pos components.Position, sx, sy float32) (x, y, z float32) {
	return float32(pos.X) * sx, float32(pos.Y) * sy, 0
}

// ProjectionSystem writes each entity's Transform from its Size and Position.
// The scale pass must run before the translate pass every frame.
type ProjectionSystem struct {
	arena           Arena
	scaleFilter     *ecs.Filter2[components.Size, components.Transform]
	translateFilter *ecs.Filter2[components.Position, components.Transform]
}

// NewProjectionSystem creates a new projection system for the given arena.
func NewProjectionSystem(w *ecs.World, arena Arena) *ProjectionSystem {
	return &ProjectionSystem{
		arena:           arena,
		scaleFilter:     ecs.NewFilter2[components.Size, components.Transform](w),
		translateFilter: ecs.NewFilter2[components.Position, components.Transform](w),
	}
}

// Update runs both passes in order.
func (s *ProjectionSystem) Update(window Window) {
	s.ScalePass(window)
	s.TranslatePass()
}

// ScalePass recomputes every entity's pixel scale. Not cached: the window may
// have been resized since the last frame.
func (s *ProjectionSystem) ScalePass(window Window) {
	query := s.scaleFilter.Query()
	for query.Next() {
		size, tf := query.Get()
		tf.ScaleX, tf.ScaleY = Scale(*size, s.arena, window)
	}
}

// TranslatePass recomputes every entity's pixel translation from the scale
// written by ScalePass.
func (s *ProjectionSystem) TranslatePass() {
	query := s.translateFilter.Query()
	for query.Next() {
		pos, tf := query.Get()
		tf.X, tf.Y, tf.Z = Translate(*pos, tf.ScaleX, tf.ScaleY)
	}
}
