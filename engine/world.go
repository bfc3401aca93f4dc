package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/cascade/component"
	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/event"
)

// World contains all entities and their components using typed stores
// Stores are public for direct, compile-time-safe system access
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Global resources
	Resource *Resource

	// Component stores
	Widgets          *Store[component.WidgetComponent]
	Classes          *Store[component.ClassListComponent]
	Parents          *Store[component.ParentComponent]
	Inlines          *Store[component.InlineStyleComponent]
	Pseudos          *Store[component.PseudoStateComponent]
	Dirty            *Store[component.StyleDirtyComponent]
	Computed         *Store[component.ComputedStyleComponent]
	Targets          *Store[component.TargetColorsComponent]
	Currents         *Store[component.CurrentColorsComponent]
	Animations       *Store[component.ColorAnimationComponent]
	Overlays         *Store[component.OverlayComponent]
	OverlayPositions *Store[component.OverlayPositionComponent]
	AnchorRects      *Store[component.AnchorRectComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore

	// Direct pointer for the event emission hot path
	eventQueue *event.Queue

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID:     1,
		Resource:         NewResource(),
		Widgets:          NewStore[component.WidgetComponent](),
		Classes:          NewStore[component.ClassListComponent](),
		Parents:          NewStore[component.ParentComponent](),
		Inlines:          NewStore[component.InlineStyleComponent](),
		Pseudos:          NewStore[component.PseudoStateComponent](),
		Dirty:            NewStore[component.StyleDirtyComponent](),
		Computed:         NewStore[component.ComputedStyleComponent](),
		Targets:          NewStore[component.TargetColorsComponent](),
		Currents:         NewStore[component.CurrentColorsComponent](),
		Animations:       NewStore[component.ColorAnimationComponent](),
		Overlays:         NewStore[component.OverlayComponent](),
		OverlayPositions: NewStore[component.OverlayPositionComponent](),
		AnchorRects:      NewStore[component.AnchorRectComponent](),
		systems:          make([]System, 0),
	}

	w.allStores = []AnyStore{
		w.Widgets,
		w.Classes,
		w.Parents,
		w.Inlines,
		w.Pseudos,
		w.Dirty,
		w.Computed,
		w.Targets,
		w.Currents,
		w.Animations,
		w.Overlays,
		w.OverlayPositions,
		w.AnchorRects,
	}

	return w
}

// CreateEntity reserves a new entity ID without adding any components
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Overlay stack membership is pruned by the overlay system on its next pass
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.RemoveEntity(e)
	}
}

// HasAnyComponent checks if an entity has at least one component
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.HasEntity(e) {
			return true
		}
	}
	return false
}

// EntityCount returns the approximate number of entities in the world
// Calculated from the highest issued ID, not from live component counts
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return int(w.nextEntityID - 1)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.ClearAllComponents()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
// The ticker serializes whole ticks through this; hosts mutating from
// another goroutine must do the same
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially in priority order
func (w *World) Update(dt time.Duration) {
	w.RunSafe(func() {
		w.UpdateLocked(dt)
	})
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked(dt time.Duration) {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update(w, dt)
	}
}

// SetEventQueue wires the direct pointer for PushEvent
// Called once during Context initialization
func (w *World) SetEventQueue(q *event.Queue) {
	w.eventQueue = q
}

// PushEvent emits an event using the cached queue pointer
// This is the hot path for all system communication
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil {
		return
	}

	w.eventQueue.Push(event.Event{
		Type:    eventType,
		Payload: payload,
	})
}
