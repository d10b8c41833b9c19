package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/systems"
)

// spawnHead creates the head at the origin facing right. Called once at startup.
func (g *Game) spawnHead() ecs.Entity {
	pos := components.Position{X: 0, Y: 0}
	size := components.Square(1)
	head := components.Head{Direction: components.Right}
	sprite := components.Sprite{Color: g.cfg.Snake.HeadColor.RGBA()}

	return g.headMapper.NewEntity(&pos, &size, &head, &sprite, &components.Transform{})
}

// spawnSegment creates a body segment at the origin and appends it to the chain.
// Segments overlap until movement ticks separate them.
func (g *Game) spawnSegment() ecs.Entity {
	pos := components.Position{X: 0, Y: 0}
	size := components.Square(1)
	seg := components.Segment{Index: g.segmentCount}
	sprite := components.Sprite{Color: g.cfg.Snake.SegmentColor.RGBA()}

	g.segmentCount++
	return g.segmentMapper.NewEntity(&pos, &size, &seg, &sprite, &components.Transform{})
}

// spawnFood creates a food entity at a random arena cell.
// Food is never removed, so the count grows for the lifetime of the game.
func (g *Game) spawnFood() ecs.Entity {
	pos := systems.FoodPosition(g.rng, g.arena)
	size := components.Square(1)
	sprite := components.Sprite{Color: g.cfg.Food.Color.RGBA()}

	g.foodCount++
	return g.foodMapper.NewEntity(&pos, &size, &components.Food{}, &sprite, &components.Transform{})
}

// spawnSnake creates the head and the initial body.
func (g *Game) spawnSnake() {
	g.spawnHead()
	for i := 0; i < g.cfg.Snake.InitialSegments; i++ {
		g.spawnSegment()
	}
}
