package systems

import (
	"ebiten-reel/components"
	"ebiten-reel/ecs"
)

// MovementSystem advances every entity with a velocity by one tick of linear motion
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update moves entities and turns obstacles by their spin
func (s *MovementSystem) Update(world *ecs.World, now float64) {
	for _, entity := range world.GetEntitiesWithComponent(components.Velocity) {
		pos := components.GetPosition(world, entity.ID)
		vel := components.GetVelocity(world, entity.ID)
		if pos == nil || vel == nil {
			continue
		}

		pos.X += vel.DX
		pos.Y += vel.DY

		if comp, ok := world.GetComponent(entity.ID, components.Obstacle); ok {
			obstacle := comp.(*components.ObstacleComponent)
			obstacle.Rotation += obstacle.Spin
		}
	}
}
