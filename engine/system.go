package engine

import (
	"time"

	"github.com/lixenwraith/cascade/event"
)

// System is the interface all pipeline systems implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before World.Update()
	HandleEvent(world *World, ev event.Event)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []event.EventType
}

// SystemBase provides common dependencies for systems
// Embed in a system struct to eliminate boilerplate
type SystemBase struct {
	World    *World
	Resource *Resource
}

// NewSystemBase initializes base dependencies from the world
// Call once in the system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:    w,
		Resource: w.Resource,
	}
}
