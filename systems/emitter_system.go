package systems

import (
	"math"

	"ebiten-reel/components"
	"ebiten-reel/ecs"
	"ebiten-reel/spawners"
)

// EmitterSystem oscillates the craft and fires projectiles on a fixed interval
type EmitterSystem struct {
	spawner  *spawners.EntitySpawner
	interval float64 // ms between shots
}

// NewEmitterSystem creates a new emitter system
func NewEmitterSystem(spawner *spawners.EntitySpawner, intervalMs float64) *EmitterSystem {
	return &EmitterSystem{
		spawner:  spawner,
		interval: intervalMs,
	}
}

// Update moves every emitter along its sine path and fires when the interval has elapsed
func (s *EmitterSystem) Update(world *ecs.World, now float64) {
	for _, entity := range world.GetEntitiesWithComponent(components.Emitter) {
		comp, _ := world.GetComponent(entity.ID, components.Emitter)
		emitter := comp.(*components.EmitterComponent)
		pos := components.GetPosition(world, entity.ID)
		if pos == nil {
			continue
		}

		// Vertical position is a pure function of time
		pos.Y = emitter.BaselineY + emitter.Amplitude*math.Sin(now*emitter.AngularRate)

		// A clock that went backwards restarts the spawn timer
		if now < emitter.LastSpawn {
			emitter.LastSpawn = now
		}

		if now-emitter.LastSpawn > s.interval {
			x, y := emitter.Nose(pos)
			projectile := s.spawner.CreateProjectile(x, y)
			emitter.LastSpawn = now
			emitter.Shots++

			world.EmitEvent(ProjectileFiredEvent{
				ProjectileID: projectile.ID,
				X:            x,
				Y:            y,
				Time:         now,
			})
		}
	}
}
