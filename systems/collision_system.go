package systems

import (
	"ebiten-reel/canvas"
	"ebiten-reel/components"
	"ebiten-reel/ecs"
)

// CollisionSystem resolves projectile/obstacle hits.
// Obstacles are visited in pool order; each takes the first live projectile
// within reach, so a projectile is consumed by at most one obstacle.
type CollisionSystem struct {
	hits int
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Hits returns the number of hits resolved since creation
func (s *CollisionSystem) Hits() int {
	return s.hits
}

// Intersects reports whether a projectile centre is within reach of an obstacle centre
func Intersects(px, py, projectileRadius, ox, oy, obstacleRadius float64) bool {
	return canvas.Distance(px, py, ox, oy) < obstacleRadius+projectileRadius
}

// Update tests every live projectile against every live obstacle
func (s *CollisionSystem) Update(world *ecs.World, now float64) {
	projectiles := world.GetEntitiesWithComponent(components.Projectile)
	if len(projectiles) == 0 {
		return
	}

	for _, obstacleEntity := range world.GetEntitiesWithComponent(components.Obstacle) {
		if world.IsMarkedForRemoval(obstacleEntity.ID) {
			continue
		}
		obstaclePos := components.GetPosition(world, obstacleEntity.ID)
		comp, _ := world.GetComponent(obstacleEntity.ID, components.Obstacle)
		obstacle := comp.(*components.ObstacleComponent)
		if obstaclePos == nil {
			continue
		}

		for _, projectileEntity := range projectiles {
			// Culled or already consumed this tick
			if world.IsMarkedForRemoval(projectileEntity.ID) {
				continue
			}
			projectilePos := components.GetPosition(world, projectileEntity.ID)
			pcomp, _ := world.GetComponent(projectileEntity.ID, components.Projectile)
			projectile := pcomp.(*components.ProjectileComponent)
			if projectilePos == nil {
				continue
			}

			if !Intersects(projectilePos.X, projectilePos.Y, projectile.Radius, obstaclePos.X, obstaclePos.Y, obstacle.Radius) {
				continue
			}

			world.MarkForRemoval(obstacleEntity.ID)
			world.MarkForRemoval(projectileEntity.ID)
			s.hits++

			world.EmitEvent(BurstEvent{
				ObstacleID:   obstacleEntity.ID,
				ProjectileID: projectileEntity.ID,
				X:            (obstaclePos.X + projectilePos.X) / 2,
				Y:            (obstaclePos.Y + projectilePos.Y) / 2,
				Radius:       obstacle.Radius,
				Time:         now,
			})
			break
		}
	}
}
