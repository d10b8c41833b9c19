package systems

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/components"
)

// KeyState is the pressed state of the four directional keys for one frame.
type KeyState struct {
	Left, Right, Down, Up bool
}

// Any reports whether any directional key is pressed.
func (k KeyState) Any() bool {
	return k.Left || k.Right || k.Down || k.Up
}

// ApplyInput returns the direction selected by the pressed keys.
// Priority is Left > Right > Down > Up; with no key pressed the current
// direction is kept. Reversing onto the first segment is not rejected.
func ApplyInput(current components.Direction, keys KeyState) components.Direction {
	switch {
	case keys.Left:
		return components.Left
	case keys.Right:
		return components.Right
	case keys.Down:
		return components.Down
	case keys.Up:
		return components.Up
	}
	return current
}

// InputSystem writes the polled key state into the head's direction.
type InputSystem struct {
	headFilter *ecs.Filter1[components.Head]
	headMap    *ecs.Map[components.Head]
}

// NewInputSystem creates a new input system.
func NewInputSystem(w *ecs.World) *InputSystem {
	return &InputSystem{
		headFilter: ecs.NewFilter1[components.Head](w),
		headMap:    ecs.NewMap[components.Head](w),
	}
}

// Update applies the frame's key state to the head and returns the
// direction before and after.
func (s *InputSystem) Update(keys KeyState) (before, after components.Direction) {
	head := s.headMap.Get(UniqueHead(s.headFilter))
	before = head.Direction
	head.Direction = ApplyInput(before, keys)
	return before, head.Direction
}

// UniqueHead returns the single head entity.
// Zero or several heads is an invariant violation and panics.
func UniqueHead(filter *ecs.Filter1[components.Head]) ecs.Entity {
	var head ecs.Entity
	count := 0

	query := filter.Query()
	for query.Next() {
		head = query.Entity()
		count++
	}

	if count != 1 {
		panic(fmt.Sprintf("systems: expected exactly one head, found %d", count))
	}
	return head
}
