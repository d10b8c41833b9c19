package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(500, 500)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(500, 500)

	sx, sy := cam.WorldToScreen(0, 0)
	if sx != 250 || sy != 250 {
		t.Errorf("expected origin at screen center (250, 250), got (%f, %f)", sx, sy)
	}
}

func TestWorldToScreenFlipsY(t *testing.T) {
	cam := New(500, 500)

	// One cell up and right of center on a 15x15 arena
	sx, sy := cam.WorldToScreen(33.33, 33.33)
	if sx <= 250 {
		t.Errorf("expected positive x to the right of center, got %f", sx)
	}
	if sy >= 250 {
		t.Errorf("expected positive y above center, got %f", sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720)
	cam.X, cam.Y = 40, -25
	cam.SetZoom(1.5)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},
		{100, 100},
		{1200, 600},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(500, 500)

	cam.SetZoom(0.01)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}

	cam.ZoomBy(1000)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(500, 500)

	if !cam.IsVisible(0, 0, 16, 16) {
		t.Error("center should be visible")
	}
	// Snake walked far off the arena
	if cam.IsVisible(2000, 0, 16, 16) {
		t.Error("far point should not be visible")
	}
	// Just outside the edge but overlapping by its half extent
	if !cam.IsVisible(260, 0, 16, 16) {
		t.Error("edge rectangle should be visible")
	}

	// Zooming out brings the far point into view
	cam.SetZoom(0.25)
	if !cam.IsVisible(900, 0, 16, 16) {
		t.Error("expected point visible after zooming out")
	}
}

func TestResizeKeepsCenter(t *testing.T) {
	cam := New(500, 500)
	cam.Resize(800, 600)

	sx, sy := cam.WorldToScreen(0, 0)
	if sx != 400 || sy != 300 {
		t.Errorf("expected origin at new center (400, 300), got (%f, %f)", sx, sy)
	}
}

func TestReset(t *testing.T) {
	cam := New(500, 500)
	cam.X = 50
	cam.Y = -50
	cam.Zoom = 2.5

	cam.Reset()

	if cam.X != 0 || cam.Y != 0 || cam.Zoom != 1.0 {
		t.Errorf("expected origin at zoom 1, got (%f, %f) zoom %f", cam.X, cam.Y, cam.Zoom)
	}
}
