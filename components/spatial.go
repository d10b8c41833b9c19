package components

// Position is a grid position in arena units.
type Position struct {
	X, Y int
}

// Size is the logical size of an entity in arena units.
type Size struct {
	Width, Height float32
}

// Square returns a Size with equal width and height.
func Square(size float32) Size {
	return Size{Width: size, Height: size}
}

// Direction is one of the four grid directions.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the unit grid step for the direction. Up is +y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return "unknown"
}
