package engine

import "github.com/lixenwraith/cascade/core"

// AnyStore provides type-erased operations for lifecycle management
// World keeps every typed store behind this interface so entity
// destruction and reset sweep all stores without knowing concrete types
type AnyStore interface {
	// RemoveEntity deletes a component from an entity
	RemoveEntity(e core.Entity)

	// HasEntity checks if an entity has this component
	HasEntity(e core.Entity) bool

	// CountEntities returns the number of entities with this component
	CountEntities() int

	// ClearAllComponents removes all components from this store
	ClearAllComponents()
}
