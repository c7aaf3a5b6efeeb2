package systems

import (
	"ebiten-reel/components"
	"ebiten-reel/ecs"
)

// CullSystem marks projectiles that have left the right edge of the stage
type CullSystem struct {
	margin float64
}

// NewCullSystem creates a cull system removing projectiles once x >= width + margin
func NewCullSystem(margin float64) *CullSystem {
	return &CullSystem{margin: margin}
}

// Update marks out-of-bounds projectiles for removal
func (s *CullSystem) Update(world *ecs.World, now float64) {
	stage := components.GetStage(world)
	if stage == nil {
		return
	}

	for _, entity := range world.GetEntitiesWithComponent(components.Projectile) {
		pos := components.GetPosition(world, entity.ID)
		if pos == nil {
			continue
		}
		if pos.X >= stage.Width+s.margin {
			world.MarkForRemoval(entity.ID)
		}
	}
}
