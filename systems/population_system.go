package systems

import (
	"ebiten-reel/components"
	"ebiten-reel/ecs"
	"ebiten-reel/spawners"
)

// PopulationSystem keeps the obstacle pool alive: obstacles that drift off the
// left edge are respawned in place, and the pool is topped up to its minimum.
type PopulationSystem struct {
	spawner *spawners.EntitySpawner
	minimum int
}

// NewPopulationSystem creates a population system with the given minimum obstacle count
func NewPopulationSystem(spawner *spawners.EntitySpawner, minimum int) *PopulationSystem {
	return &PopulationSystem{
		spawner: spawner,
		minimum: minimum,
	}
}

// Update respawns exited obstacles, then tops up the pool
func (s *PopulationSystem) Update(world *ecs.World, now float64) {
	stage := components.GetStage(world)
	if stage == nil {
		return
	}

	obstacles := world.GetEntitiesWithComponent(components.Obstacle)
	for _, entity := range obstacles {
		pos := components.GetPosition(world, entity.ID)
		comp, _ := world.GetComponent(entity.ID, components.Obstacle)
		obstacle := comp.(*components.ObstacleComponent)
		if pos == nil || !obstacle.Exited(pos) {
			continue
		}

		// Respawn lands right of the stage, so this fires once per exit
		s.spawner.RespawnObstacle(entity.ID, stage)
		world.EmitEvent(ObstacleRespawnedEvent{ObstacleID: entity.ID, X: pos.X, Y: pos.Y})
	}

	for count := len(obstacles); count < s.minimum; count++ {
		obstacle := s.spawner.CreateObstacle(stage)
		world.EmitEvent(ObstacleSpawnedEvent{ObstacleID: obstacle.ID})
	}
}

// Fill creates obstacles until the minimum is reached without emitting events
func (s *PopulationSystem) Fill(world *ecs.World) {
	stage := components.GetStage(world)
	if stage == nil {
		return
	}
	for count := world.CountWithComponent(components.Obstacle); count < s.minimum; count++ {
		s.spawner.CreateObstacle(stage)
	}
}
