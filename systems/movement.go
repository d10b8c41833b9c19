package systems

import (
	"cmp"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/components"
)

// StepSize is the distance the head moves per tick, in arena units.
const StepSize = 1

// StepChain advances the head one step along dir and ripples the chain:
// chain[0] takes the head's old position and chain[i] takes chain[i-1]'s.
// chain is updated in place; the new head position is returned.
// There are no bounds checks, so the chain may leave the arena.
func StepChain(head components.Position, dir components.Direction, chain []components.Position) components.Position {
	previous := head

	dx, dy := dir.Delta()
	head.X += dx * StepSize
	head.Y += dy * StepSize

	for i := range chain {
		chain[i], previous = previous, chain[i]
	}
	return head
}

// chainLink pairs a segment entity with its chain index for sorting.
type chainLink struct {
	entity ecs.Entity
	index  int
}

// MovementSystem moves the head and makes every segment follow the one ahead of it.
type MovementSystem struct {
	headFilter    *ecs.Filter1[components.Head]
	segmentFilter *ecs.Filter1[components.Segment]
	headMap       *ecs.Map[components.Head]
	posMap        *ecs.Map[components.Position]

	// Scratch buffers reused across ticks
	links     []chainLink
	positions []components.Position
}

// NewMovementSystem creates a new movement system.
func NewMovementSystem(w *ecs.World) *MovementSystem {
	return &MovementSystem{
		headFilter:    ecs.NewFilter1[components.Head](w),
		segmentFilter: ecs.NewFilter1[components.Segment](w),
		headMap:       ecs.NewMap[components.Head](w),
		posMap:        ecs.NewMap[components.Position](w),
	}
}

// Update runs one movement tick.
func (s *MovementSystem) Update() {
	headEntity := UniqueHead(s.headFilter)
	dir := s.headMap.Get(headEntity).Direction
	headPos := s.posMap.Get(headEntity)

	// Chain order comes from Segment.Index, not registry iteration order
	s.links = s.links[:0]
	query := s.segmentFilter.Query()
	for query.Next() {
		seg := query.Get()
		s.links = append(s.links, chainLink{entity: query.Entity(), index: seg.Index})
	}
	slices.SortFunc(s.links, func(a, b chainLink) int {
		return cmp.Compare(a.index, b.index)
	})

	s.positions = s.positions[:0]
	for _, link := range s.links {
		s.positions = append(s.positions, *s.posMap.Get(link.entity))
	}

	*headPos = StepChain(*headPos, dir, s.positions)

	for i, link := range s.links {
		*s.posMap.Get(link.entity) = s.positions[i]
	}
}
