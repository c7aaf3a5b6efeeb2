package ecs

// System defines an interface for processing entities with specific components
type System interface {
	// Update is called once per tick; now is the frame timestamp in milliseconds
	Update(world *World, now float64)
}
