package components

import (
	"image/color"

	"ebiten-reel/ecs"
)

// PositionComponent stores entity position in pixels
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent stores a constant per-tick displacement
type VelocityComponent struct {
	DX, DY float64
}

// AppearanceComponent stores drawing colors
type AppearanceComponent struct {
	Fill   color.RGBA
	Stroke color.RGBA // Outline color (optional, zero = none)
}

// EmitterComponent describes the craft. Its position is the top-left corner
// and its vertical position is a pure function of time.
type EmitterComponent struct {
	Width, Height float64
	BaselineY     float64 // Vertical centre of the oscillation
	Amplitude     float64
	AngularRate   float64 // Radians per millisecond
	LastSpawn     float64 // Timestamp of the last projectile, in ms
	Shots         int
}

// Nose returns where projectiles leave the craft
func (e *EmitterComponent) Nose(pos *PositionComponent) (x, y float64) {
	return pos.X + e.Width, pos.Y + e.Height/2
}

// ProjectileComponent marks an entity as a shot
type ProjectileComponent struct {
	Radius float64
}

// ObstacleComponent describes an asteroid
type ObstacleComponent struct {
	Radius   float64
	Rotation float64 // Outline phase in radians
	Spin     float64 // Radians per tick
	Respawns int     // Times this obstacle left the surface and came back
}

// Exited reports whether the obstacle's leading edge is past the left bound
func (o *ObstacleComponent) Exited(pos *PositionComponent) bool {
	return pos.X < -o.Radius
}

// StarSize is the binary size class of a background star
type StarSize int

const (
	StarSmall StarSize = iota
	StarLarge
)

// StarComponent marks a background star
type StarComponent struct {
	Size StarSize
}

// StageComponent stores the surface size and the current frame time
type StageComponent struct {
	Width, Height float64
	Now           float64 // Current frame timestamp in ms
	Frame         uint64  // Ticks processed since initialization
}

// Drawable reports whether the stage has a non-degenerate size
func (s *StageComponent) Drawable() bool {
	return s.Width > 0 && s.Height > 0
}

// GetStage returns the stage component from the world, or nil if none exists
func GetStage(world *ecs.World) *StageComponent {
	stages := world.GetEntitiesWithTag(TagStage)
	if len(stages) == 0 {
		return nil
	}
	if comp, exists := world.GetComponent(stages[0].ID, Stage); exists {
		return comp.(*StageComponent)
	}
	return nil
}

// GetPosition returns an entity's position component, or nil
func GetPosition(world *ecs.World, id ecs.EntityID) *PositionComponent {
	if comp, exists := world.GetComponent(id, Position); exists {
		return comp.(*PositionComponent)
	}
	return nil
}

// GetVelocity returns an entity's velocity component, or nil
func GetVelocity(world *ecs.World, id ecs.EntityID) *VelocityComponent {
	if comp, exists := world.GetComponent(id, Velocity); exists {
		return comp.(*VelocityComponent)
	}
	return nil
}

// GetAppearance returns an entity's appearance component, or nil
func GetAppearance(world *ecs.World, id ecs.EntityID) *AppearanceComponent {
	if comp, exists := world.GetComponent(id, Appearance); exists {
		return comp.(*AppearanceComponent)
	}
	return nil
}
