package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/components"
)

const tolerance = 0.01

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func TestScaleDefaultWindow(t *testing.T) {
	sx, sy := Scale(components.Square(1), Arena{Width: 15, Height: 15}, Window{Width: 500, Height: 500})
	if !approxEqual(sx, 33.33) || !approxEqual(sy, 33.33) {
		t.Errorf("expected scale (33.33, 33.33), got (%f, %f)", sx, sy)
	}
}

func TestScalePerAxis(t *testing.T) {
	sx, sy := Scale(components.Size{Width: 2, Height: 1}, Arena{Width: 10, Height: 20}, Window{Width: 800, Height: 400})
	if !approxEqual(sx, 160) || !approxEqual(sy, 20) {
		t.Errorf("expected scale (160, 20), got (%f, %f)", sx, sy)
	}
}

func TestTranslate(t *testing.T) {
	x, y, z := Translate(components.Position{X: -3, Y: 2}, 10, 20)
	if x != -30 || y != 40 || z != 0 {
		t.Errorf("expected (-30, 40, 0), got (%f, %f, %f)", x, y, z)
	}
}

func TestTranslateIsPure(t *testing.T) {
	pos := components.Position{X: 5, Y: -6}
	x1, y1, z1 := Translate(pos, 33.3, 41.7)
	x2, y2, z2 := Translate(pos, 33.3, 41.7)
	if x1 != x2 || y1 != y2 || z1 != z2 {
		t.Error("translate output changed with unchanged inputs")
	}
}

// projectionWorld creates one 1x1 entity at pos with an empty transform.
func projectionWorld(pos components.Position) (*ecs.World, ecs.Entity) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap3[components.Position, components.Size, components.Transform](w)
	size := components.Square(1)
	e := mapper.NewEntity(&pos, &size, &components.Transform{})
	return w, e
}

func TestProjectionSystemScaleThenTranslate(t *testing.T) {
	w, e := projectionWorld(components.Position{X: 3, Y: -2})
	tfMap := ecs.NewMap[components.Transform](w)
	sys := NewProjectionSystem(w, Arena{Width: 15, Height: 15})

	sys.Update(Window{Width: 500, Height: 500})

	tf := tfMap.Get(e)
	if !approxEqual(tf.ScaleX, 33.33) || !approxEqual(tf.ScaleY, 33.33) {
		t.Errorf("unexpected scale (%f, %f)", tf.ScaleX, tf.ScaleY)
	}
	if !approxEqual(tf.X, 100) || !approxEqual(tf.Y, -66.67) || tf.Z != 0 {
		t.Errorf("unexpected translation (%f, %f, %f)", tf.X, tf.Y, tf.Z)
	}
}

func TestProjectionSystemFollowsResize(t *testing.T) {
	w, e := projectionWorld(components.Position{X: 1, Y: 1})
	tfMap := ecs.NewMap[components.Transform](w)
	sys := NewProjectionSystem(w, Arena{Width: 15, Height: 15})

	sys.Update(Window{Width: 500, Height: 500})
	sys.Update(Window{Width: 1500, Height: 750})

	tf := tfMap.Get(e)
	if !approxEqual(tf.ScaleX, 100) || !approxEqual(tf.ScaleY, 50) {
		t.Errorf("expected scale recomputed to (100, 50), got (%f, %f)", tf.ScaleX, tf.ScaleY)
	}
	if !approxEqual(tf.X, 100) || !approxEqual(tf.Y, 50) {
		t.Errorf("expected translation (100, 50), got (%f, %f)", tf.X, tf.Y)
	}
}

func TestTranslatePassIdempotent(t *testing.T) {
	w, e := projectionWorld(components.Position{X: -4, Y: 6})
	tfMap := ecs.NewMap[components.Transform](w)
	sys := NewProjectionSystem(w, Arena{Width: 15, Height: 15})

	sys.ScalePass(Window{Width: 500, Height: 500})
	sys.TranslatePass()
	first := *tfMap.Get(e)
	sys.TranslatePass()

	if got := *tfMap.Get(e); got != first {
		t.Errorf("second translate pass changed transform: %+v -> %+v", first, got)
	}
}

func TestFoodPositionInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	arena := Arena{Width: 15, Height: 15}

	seenMinX, seenMaxX := false, false
	for range 5000 {
		p := FoodPosition(rng, arena)
		if p.X < -7 || p.X >= 7 || p.Y < -7 || p.Y >= 7 {
			t.Fatalf("food out of bounds: %+v", p)
		}
		seenMinX = seenMinX || p.X == -7
		seenMaxX = seenMaxX || p.X == 6
	}
	if !seenMinX || !seenMaxX {
		t.Error("expected both ends of the range to be sampled")
	}
}

func TestFoodPositionEmptyRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for 1x1 arena")
		}
	}()
	FoodPosition(rand.New(rand.NewSource(1)), Arena{Width: 1, Height: 1})
}

func TestArenaBounds(t *testing.T) {
	minX, maxX, minY, maxY := Arena{Width: 15, Height: 10}.Bounds()
	if minX != -7 || maxX != 7 || minY != -5 || maxY != 5 {
		t.Errorf("unexpected bounds [%d,%d) x [%d,%d)", minX, maxX, minY, maxY)
	}
}
