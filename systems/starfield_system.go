package systems

import (
	"ebiten-reel/components"
	"ebiten-reel/ecs"
	"ebiten-reel/spawners"
)

// StarfieldSystem wraps background stars from the left edge back to the right
type StarfieldSystem struct {
	spawner *spawners.EntitySpawner
}

// NewStarfieldSystem creates a new starfield system
func NewStarfieldSystem(spawner *spawners.EntitySpawner) *StarfieldSystem {
	return &StarfieldSystem{spawner: spawner}
}

// Update wraps stars that moved past the left edge
func (s *StarfieldSystem) Update(world *ecs.World, now float64) {
	stage := components.GetStage(world)
	if stage == nil {
		return
	}

	for _, entity := range world.GetEntitiesWithComponent(components.Star) {
		pos := components.GetPosition(world, entity.ID)
		if pos == nil || pos.X >= 0 {
			continue
		}

		pos.X += stage.Width
		if pos.X < 0 {
			pos.X = stage.Width
		}
		s.spawner.RerollStarRow(entity.ID, stage)
	}
}

// Rescatter moves every star onto a row inside the current stage height
func (s *StarfieldSystem) Rescatter(world *ecs.World) {
	stage := components.GetStage(world)
	if stage == nil {
		return
	}
	for _, entity := range world.GetEntitiesWithComponent(components.Star) {
		s.spawner.RerollStarRow(entity.ID, stage)
		if pos := components.GetPosition(world, entity.ID); pos != nil && pos.X > stage.Width {
			pos.X = stage.Width
		}
	}
}
