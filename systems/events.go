package systems

import (
	"ebiten-reel/ecs"
)

// Event type constants
const (
	EventBurst             ecs.EventType = "burst"
	EventProjectileFired   ecs.EventType = "projectile_fired"
	EventObstacleRespawned ecs.EventType = "obstacle_respawned"
	EventObstacleSpawned   ecs.EventType = "obstacle_spawned"
)

// BurstEvent is emitted once when a projectile destroys an obstacle.
// X, Y is the midpoint between the two centres.
type BurstEvent struct {
	ObstacleID   ecs.EntityID
	ProjectileID ecs.EntityID
	X            float64
	Y            float64
	Radius       float64 // Radius of the destroyed obstacle
	Time         float64 // Frame timestamp in ms
}

// Type returns the event type
func (e BurstEvent) Type() ecs.EventType {
	return EventBurst
}

// ProjectileFiredEvent is emitted when the emitter fires
type ProjectileFiredEvent struct {
	ProjectileID ecs.EntityID
	X, Y         float64
	Time         float64
}

// Type returns the event type
func (e ProjectileFiredEvent) Type() ecs.EventType {
	return EventProjectileFired
}

// ObstacleRespawnedEvent is emitted when an obstacle that left the surface is moved back
type ObstacleRespawnedEvent struct {
	ObstacleID ecs.EntityID
	X, Y       float64
}

// Type returns the event type
func (e ObstacleRespawnedEvent) Type() ecs.EventType {
	return EventObstacleRespawned
}

// ObstacleSpawnedEvent is emitted when the pool is topped up with a new obstacle
type ObstacleSpawnedEvent struct {
	ObstacleID ecs.EntityID
}

// Type returns the event type
func (e ObstacleSpawnedEvent) Type() ecs.EventType {
	return EventObstacleSpawned
}
