package components

import (
	"ebiten-reel/ecs"
)

// Define component IDs for the simulation
const (
	Position ecs.ComponentID = iota
	Velocity
	Appearance
	Emitter    // The auto-firing craft
	Projectile // Shots travelling right
	Obstacle   // Drifting asteroids
	Star       // Background starfield (pixel variant)
	Stage      // Surface size and frame clock, held by a single tagged entity
)

// Entity tags
const (
	TagStage      = "stage"
	TagEmitter    = "emitter"
	TagProjectile = "projectile"
	TagObstacle   = "obstacle"
	TagStar       = "star"
)
