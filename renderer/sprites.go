// Package renderer draws the game with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/camera"
	"github.com/pthm-cable/snake/components"
)

// SpriteRenderer rasterizes every entity carrying a Transform and a Sprite as
// a filled rectangle centered on its projected position.
type SpriteRenderer struct {
	filter *ecs.Filter2[components.Transform, components.Sprite]
}

// NewSpriteRenderer creates a sprite renderer for the given world.
func NewSpriteRenderer(w *ecs.World) *SpriteRenderer {
	return &SpriteRenderer{
		filter: ecs.NewFilter2[components.Transform, components.Sprite](w),
	}
}

// Draw renders all sprites through the camera.
func (r *SpriteRenderer) Draw(cam *camera.Camera) {
	query := r.filter.Query()
	for query.Next() {
		tf, sprite := query.Get()

		// Not yet projected
		if tf.ScaleX == 0 || tf.ScaleY == 0 {
			continue
		}
		if !cam.IsVisible(tf.X, tf.Y, tf.ScaleX/2, tf.ScaleY/2) {
			continue
		}

		sx, sy := cam.WorldToScreen(tf.X, tf.Y)
		w := tf.ScaleX * cam.Zoom
		h := tf.ScaleY * cam.Zoom
		rl.DrawRectangleRec(rl.Rectangle{X: sx - w/2, Y: sy - h/2, Width: w, Height: h}, sprite.Color)
	}
}
