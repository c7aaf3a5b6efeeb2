package systems

import (
	"ebiten-reel/ecs"
)

// CleanupSystem removes every entity marked earlier in the tick
type CleanupSystem struct {
	removed int
}

// NewCleanupSystem creates a new cleanup system
func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

// Removed returns the total number of entities removed
func (s *CleanupSystem) Removed() int {
	return s.removed
}

// Update flushes the world's removal queue
func (s *CleanupSystem) Update(world *ecs.World, now float64) {
	s.removed += world.FlushRemovals()
}
