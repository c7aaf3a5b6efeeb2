package ecs

// World manages all entities and components.
// Iteration always follows entity creation order, so a simulation driven by
// a seeded random source replays identically.
type World struct {
	entities map[EntityID]*Entity
	// order holds live entity IDs in creation order
	order []EntityID
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	// Systems slice to store all systems, run in registration order
	systems []System
	// Entities queued for removal at the end of the current step
	removalQueue []EntityID
	removalSet   map[EntityID]bool
	// Event manager for system communication
	eventManager *EventManager
	nextEntityID EntityID
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		order:        make([]EntityID, 0, 64),
		components:   make(map[EntityID]ComponentMap),
		systems:      make([]System, 0),
		removalSet:   make(map[EntityID]bool),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.nextEntityID++
	entity := newEntity(w.nextEntityID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	w.order = append(w.order, entity.ID)
	return entity
}

// RemoveEntity removes an entity and all its components from the world immediately
func (w *World) RemoveEntity(entityID EntityID) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}

	delete(w.components, entityID)
	delete(w.entities, entityID)

	for i, id := range w.order {
		if id == entityID {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// MarkForRemoval queues an entity for removal by FlushRemovals.
// Marking the same entity twice has no extra effect.
func (w *World) MarkForRemoval(entityID EntityID) {
	if _, exists := w.entities[entityID]; !exists || w.removalSet[entityID] {
		return
	}
	w.removalSet[entityID] = true
	w.removalQueue = append(w.removalQueue, entityID)
}

// IsMarkedForRemoval reports whether the entity is queued for removal
func (w *World) IsMarkedForRemoval(entityID EntityID) bool {
	return w.removalSet[entityID]
}

// FlushRemovals removes every queued entity and returns how many were removed
func (w *World) FlushRemovals() int {
	if len(w.removalQueue) == 0 {
		return 0
	}

	// Rebuild the order slice in one pass instead of a scan per entity
	kept := w.order[:0]
	for _, id := range w.order {
		if !w.removalSet[id] {
			kept = append(kept, id)
		}
	}
	w.order = kept

	removed := 0
	for _, id := range w.removalQueue {
		if _, exists := w.entities[id]; exists {
			delete(w.components, id)
			delete(w.entities, id)
			removed++
		}
		delete(w.removalSet, id)
	}
	w.removalQueue = w.removalQueue[:0]

	return removed
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}

	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs all systems in registration order
func (w *World) Update(now float64) {
	for _, system := range w.systems {
		system.Update(w, now)
	}
}

// TagEntity adds a tag to an entity
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.AddTag(tag)
}

// GetEntitiesWithTag returns all entities with a specific tag, in creation order
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0)

	for _, id := range w.order {
		if entity := w.entities[id]; entity.HasTag(tag) {
			entities = append(entities, entity)
		}
	}

	return entities
}

// GetAllEntities returns a slice of all entities in the world, in creation order
func (w *World) GetAllEntities() []*Entity {
	entities := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		entities = append(entities, w.entities[id])
	}
	return entities
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.order)
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	entity, exists := w.entities[entityID]
	if !exists {
		return nil
	}
	return entity
}

// GetEntitiesWithComponent returns all entities that have a specific component, in creation order
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)

	for _, id := range w.order {
		if _, hasComponent := w.components[id][componentID]; hasComponent {
			entities = append(entities, w.entities[id])
		}
	}

	return entities
}

// CountWithComponent returns how many live entities have a specific component
func (w *World) CountWithComponent(componentID ComponentID) int {
	count := 0
	for _, id := range w.order {
		if _, hasComponent := w.components[id][componentID]; hasComponent {
			count++
		}
	}
	return count
}
