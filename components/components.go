// Package components defines ECS components for the game.
package components

import "image/color"

// Head marks the player-controlled entity leading the chain.
// Exactly one exists for the lifetime of the game.
type Head struct {
	Direction Direction
}

// Segment marks a body part. Index 0 trails the head directly,
// index i trails segment i-1.
type Segment struct {
	Index int
}

// Food marks a consumable entity. Food is never removed.
type Food struct{}

// Sprite holds the raster color of an entity.
type Sprite struct {
	Color color.RGBA
}

// Transform is the pixel-space scale and translation derived each frame
// from Size, Position and the window dimensions.
// Translation is relative to the window center with y pointing up.
type Transform struct {
	ScaleX, ScaleY float32
	X, Y, Z        float32
}
