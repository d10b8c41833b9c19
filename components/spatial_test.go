package components

import "testing"

var allDirections = []Direction{Left, Up, Right, Down}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range allDirections {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, got)
		}
		if d.Opposite() == d {
			t.Errorf("%v is its own opposite", d)
		}
	}
}

func TestOppositePairs(t *testing.T) {
	tests := []struct{ d, want Direction }{
		{Left, Right},
		{Right, Left},
		{Up, Down},
		{Down, Up},
	}
	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDeltaIsUnitStepOnOneAxis(t *testing.T) {
	tests := []struct {
		d      Direction
		dx, dy int
	}{
		{Up, 0, 1},
		{Down, 0, -1},
		{Left, -1, 0},
		{Right, 1, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.d.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d, %d), want (%d, %d)", tt.d, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestDeltaOfOppositeCancels(t *testing.T) {
	for _, d := range allDirections {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and its opposite do not cancel", d)
		}
	}
}

func TestSquare(t *testing.T) {
	s := Square(1)
	if s.Width != 1 || s.Height != 1 {
		t.Errorf("expected 1x1, got %vx%v", s.Width, s.Height)
	}
}
