package engine

import (
	"ebiten-reel/components"
	"ebiten-reel/ecs"
)

// ObstacleState is a read-only copy of one obstacle
type ObstacleState struct {
	ID       ecs.EntityID
	X, Y     float64
	Radius   float64
	Speed    float64
	Rotation float64
	Respawns int
}

// ProjectileState is a read-only copy of one projectile
type ProjectileState struct {
	ID     ecs.EntityID
	X, Y   float64
	Radius float64
}

// StarState is a read-only copy of one background star
type StarState struct {
	ID    ecs.EntityID
	X, Y  float64
	Speed float64
	Large bool
}

// EmitterState is a read-only copy of the craft
type EmitterState struct {
	X, Y          float64
	Width, Height float64
	Shots         int
}

// Stats returns the running counters
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// Obstacles returns the obstacle pool in iteration order
func (e *Engine) Obstacles() []ObstacleState {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.world == nil {
		return nil
	}
	var out []ObstacleState
	for _, entity := range e.world.GetEntitiesWithComponent(components.Obstacle) {
		pos := components.GetPosition(e.world, entity.ID)
		vel := components.GetVelocity(e.world, entity.ID)
		comp, _ := e.world.GetComponent(entity.ID, components.Obstacle)
		obstacle := comp.(*components.ObstacleComponent)
		out = append(out, ObstacleState{
			ID:       entity.ID,
			X:        pos.X,
			Y:        pos.Y,
			Radius:   obstacle.Radius,
			Speed:    -vel.DX,
			Rotation: obstacle.Rotation,
			Respawns: obstacle.Respawns,
		})
	}
	return out
}

// Projectiles returns the live projectiles in firing order
func (e *Engine) Projectiles() []ProjectileState {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.world == nil {
		return nil
	}
	var out []ProjectileState
	for _, entity := range e.world.GetEntitiesWithComponent(components.Projectile) {
		pos := components.GetPosition(e.world, entity.ID)
		comp, _ := e.world.GetComponent(entity.ID, components.Projectile)
		out = append(out, ProjectileState{
			ID:     entity.ID,
			X:      pos.X,
			Y:      pos.Y,
			Radius: comp.(*components.ProjectileComponent).Radius,
		})
	}
	return out
}

// Stars returns the starfield; empty for the shooter variant
func (e *Engine) Stars() []StarState {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.world == nil {
		return nil
	}
	var out []StarState
	for _, entity := range e.world.GetEntitiesWithComponent(components.Star) {
		pos := components.GetPosition(e.world, entity.ID)
		vel := components.GetVelocity(e.world, entity.ID)
		comp, _ := e.world.GetComponent(entity.ID, components.Star)
		out = append(out, StarState{
			ID:    entity.ID,
			X:     pos.X,
			Y:     pos.Y,
			Speed: -vel.DX,
			Large: comp.(*components.StarComponent).Size == components.StarLarge,
		})
	}
	return out
}

// Emitter returns the craft, and false before Initialize or after Dispose
func (e *Engine) Emitter() (EmitterState, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.world == nil {
		return EmitterState{}, false
	}
	for _, entity := range e.world.GetEntitiesWithComponent(components.Emitter) {
		pos := components.GetPosition(e.world, entity.ID)
		comp, _ := e.world.GetComponent(entity.ID, components.Emitter)
		emitter := comp.(*components.EmitterComponent)
		return EmitterState{
			X:      pos.X,
			Y:      pos.Y,
			Width:  emitter.Width,
			Height: emitter.Height,
			Shots:  emitter.Shots,
		}, true
	}
	return EmitterState{}, false
}

// ComponentCounts returns live entity counts per component type
func (e *Engine) ComponentCounts() []components.ComponentCount {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.world == nil {
		return nil
	}
	return components.CountComponents(e.world)
}
