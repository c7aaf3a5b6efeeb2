package components

import (
	"sort"
	"strings"

	"ebiten-reel/ecs"
)

// componentNameMap maps string component names to their IDs
var componentNameMap = map[string]ecs.ComponentID{
	"Position":   Position,
	"Velocity":   Velocity,
	"Appearance": Appearance,
	"Emitter":    Emitter,
	"Projectile": Projectile,
	"Obstacle":   Obstacle,
	"Star":       Star,
	"Stage":      Stage,
}

// GetComponentIDByName returns the ComponentID for a given component name string
// The lookup is case-insensitive
func GetComponentIDByName(name string) (ecs.ComponentID, bool) {
	// Try exact match first
	if id, exists := componentNameMap[name]; exists {
		return id, true
	}

	name = strings.ToLower(name)
	for compName, id := range componentNameMap {
		if strings.ToLower(compName) == name {
			return id, true
		}
	}

	return 0, false
}

// GetComponentName returns the display name of a component ID
func GetComponentName(id ecs.ComponentID) string {
	for name, compID := range componentNameMap {
		if compID == id {
			return name
		}
	}
	return "Unknown"
}

// ComponentCount is the number of live entities holding one component type
type ComponentCount struct {
	Name  string
	Count int
}

// CountComponents returns per-component entity counts sorted by name
func CountComponents(world *ecs.World) []ComponentCount {
	counts := make([]ComponentCount, 0, len(componentNameMap))
	for name, id := range componentNameMap {
		counts = append(counts, ComponentCount{Name: name, Count: world.CountWithComponent(id)})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Name < counts[j].Name
	})
	return counts
}
