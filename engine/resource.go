package engine

import (
	"time"

	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/event"
	"github.com/lixenwraith/cascade/status"
	"github.com/lixenwraith/cascade/style"
)

// Resource holds singleton engine resources, initialized with the world
// and accessed by systems via World.Resource
type Resource struct {
	Time     *TimeResource
	Viewport *ViewportResource
	Sheet    *SheetResource
	Event    *EventQueueResource
	Geometry *GeometryIndex
	Overlay  *OverlayStackResource
	Pointer  *PointerRouteResource

	// Telemetry
	Status *status.Registry
}

// NewResource creates a fully initialized resource set
// The event queue is wired later by the context; everything else is usable
func NewResource() *Resource {
	return &Resource{
		Time:     &TimeResource{},
		Viewport: &ViewportResource{},
		Sheet:    &SheetResource{Sheet: style.NewSheet()},
		Event:    &EventQueueResource{},
		Geometry: NewGeometryIndex(),
		Overlay:  &OverlayStackResource{},
		Pointer:  &PointerRouteResource{},
		Status:   status.NewRegistry(),
	}
}

// TimeResource wraps time data for systems
// Updated in-place by the Ticker at the start of every tick
type TimeResource struct {
	// Now is the provider time observed at tick start
	Now time.Time

	// Delta is the duration since the previous tick
	Delta time.Duration

	// Tick is the completed-tick counter, 1 on the first tick
	Tick int64
}

// Update modifies TimeResource fields in-place (zero allocation)
// Must be called under the world update lock
func (tr *TimeResource) Update(now time.Time, delta time.Duration, tick int64) {
	tr.Now = now
	tr.Delta = delta
	tr.Tick = tick
}

// ViewportResource holds the host surface dimensions in layout units
type ViewportResource struct {
	Width  float64
	Height float64
}

// Rect returns the viewport as a rect at the origin
func (v *ViewportResource) Rect() core.Rect {
	return core.Rect{X: 0, Y: 0, Width: v.Width, Height: v.Height}
}

// SheetResource wraps the active stylesheet for systems access
// The pointer is stable; hot reload replaces the rule set inside the
// sheet, which bumps its revision
type SheetResource struct {
	Sheet *style.Sheet
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.Queue
}

// GeometryIndex maps entities to their layout rectangles
// The host owns layout; it writes rects here after its layout pass so
// placement and hit-testing can read them. Tick-thread owned: hosts
// mutating from another goroutine must hold the world update lock.
type GeometryIndex struct {
	rects map[core.Entity]core.Rect
}

// NewGeometryIndex creates an empty geometry index
func NewGeometryIndex() *GeometryIndex {
	return &GeometryIndex{rects: make(map[core.Entity]core.Rect)}
}

// Set records the rect for an entity
func (g *GeometryIndex) Set(e core.Entity, r core.Rect) {
	g.rects[e] = r
}

// Get returns the rect for an entity
func (g *GeometryIndex) Get(e core.Entity) (core.Rect, bool) {
	r, ok := g.rects[e]
	return r, ok
}

// Remove drops the rect for an entity
func (g *GeometryIndex) Remove(e core.Entity) {
	delete(g.rects, e)
}

// Clear drops all rects
func (g *GeometryIndex) Clear() {
	g.rects = make(map[core.Entity]core.Rect)
}

// Count returns the number of indexed entities
func (g *GeometryIndex) Count() int {
	return len(g.rects)
}

// OverlayStackResource is the ordered set of open overlay entities
// Index 0 is the bottom surface; the last element is top-most
type OverlayStackResource struct {
	stack []core.Entity
}

// Push appends an entity as the new top-most surface
func (o *OverlayStackResource) Push(e core.Entity) {
	o.stack = append(o.stack, e)
}

// Remove deletes an entity from any position, preserving order
// Returns false when the entity is not on the stack
func (o *OverlayStackResource) Remove(e core.Entity) bool {
	for i, id := range o.stack {
		if id == e {
			o.stack = append(o.stack[:i], o.stack[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports stack membership
func (o *OverlayStackResource) Contains(e core.Entity) bool {
	for _, id := range o.stack {
		if id == e {
			return true
		}
	}
	return false
}

// Top returns the top-most entity, or false when the stack is empty
func (o *OverlayStackResource) Top() (core.Entity, bool) {
	if len(o.stack) == 0 {
		return core.InvalidEntity, false
	}
	return o.stack[len(o.stack)-1], true
}

// Entities returns a bottom-to-top copy of the stack
func (o *OverlayStackResource) Entities() []core.Entity {
	result := make([]core.Entity, len(o.stack))
	copy(result, o.stack)
	return result
}

// Len returns the stack depth
func (o *OverlayStackResource) Len() int {
	return len(o.stack)
}

// PointerRouteResource publishes the per-tick click routing decision
// The overlay system resets and fills it during arbitration; the host
// reads it after the tick to decide whether to deliver the click to
// application widgets
type PointerRouteResource struct {
	// Tick identifies the tick the decision belongs to
	Tick int64

	// HasClick is true when a click event was processed this tick
	HasClick bool

	// Suppressed is true when the overlay layer consumed the click
	Suppressed bool

	// Closed is the overlay dismissed by this click, if any
	Closed core.Entity

	// Reason qualifies Closed
	Reason event.CloseReason
}

// Reset clears the decision for a new tick
func (p *PointerRouteResource) Reset(tick int64) {
	p.Tick = tick
	p.HasClick = false
	p.Suppressed = false
	p.Closed = core.InvalidEntity
	p.Reason = event.CloseRequested
}
