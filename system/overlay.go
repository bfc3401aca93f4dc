package system

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/cascade/component"
	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/engine"
	"github.com/lixenwraith/cascade/event"
	"github.com/lixenwraith/cascade/parameter"
	"github.com/lixenwraith/cascade/status"
)

// OverlaySystem maintains the floating-surface stack and arbitrates
// clicks against the top-most surface. Clicks buffered at dispatch are
// processed in Update, after the stack has been resynchronized and
// always against the rectangles of the previous placement pass, which
// are what the user actually saw when clicking
type OverlaySystem struct {
	log           zerolog.Logger
	pendingClicks []event.ClickPayload
}

// NewOverlaySystem creates the overlay stack manager
func NewOverlaySystem(log zerolog.Logger) *OverlaySystem {
	return &OverlaySystem{log: log}
}

func (s *OverlaySystem) Priority() int {
	return parameter.PriorityOverlay
}

func (s *OverlaySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventPointerClick}
}

// HandleEvent buffers clicks for this tick's arbitration pass. Dispatch
// runs before all systems; arbitration must wait until the stack resync
// at this system's pipeline slot
func (s *OverlaySystem) HandleEvent(w *engine.World, ev event.Event) {
	payload, ok := ev.Payload.(event.ClickPayload)
	if !ok {
		return
	}
	s.pendingClicks = append(s.pendingClicks, payload)
}

func (s *OverlaySystem) Update(w *engine.World, dt time.Duration) {
	s.resync(w)

	route := w.Resource.Pointer
	route.Reset(w.Resource.Time.Tick)
	for _, click := range s.pendingClicks {
		s.arbitrate(w, click)
	}
	s.pendingClicks = s.pendingClicks[:0]

	stack := w.Resource.Overlay
	w.Resource.Status.Ints.Get(status.KeyOverlayActive).Store(int64(stack.Len()))
	w.Resource.Status.Bools.Get(status.KeyModalActive).Store(anyModal(w))
}

// resync prunes stack entries whose entity lost its overlay component,
// which is how entity destruction reaches the stack
func (s *OverlaySystem) resync(w *engine.World) {
	stack := w.Resource.Overlay
	for _, e := range stack.Entities() {
		if w.Overlays.HasEntity(e) {
			continue
		}
		stack.Remove(e)
		w.OverlayPositions.RemoveEntity(e)
		w.AnchorRects.RemoveEntity(e)
		w.Resource.Status.Ints.Get(status.KeyOverlayCloses).Add(1)
		w.PushEvent(event.EventOverlayClosed, event.OverlayClosedPayload{
			Overlay: e,
			Reason:  event.ClosePruned,
		})
		s.log.Debug().Uint64("overlay", uint64(e)).Msg("pruned stale overlay")
	}
}

// arbitrate resolves one click against the top-most surface only.
// Deeper surfaces need one click per layer; that keeps dismissal of
// nested overlays deterministic
func (s *OverlaySystem) arbitrate(w *engine.World, click event.ClickPayload) {
	route := w.Resource.Pointer
	route.HasClick = true
	route.Suppressed = false
	route.Closed = core.InvalidEntity

	top, ok := w.Resource.Overlay.Top()
	if !ok {
		return
	}

	pos, ok := w.OverlayPositions.GetComponent(top)
	if !ok || !pos.Positioned {
		// Opened this tick, never shown: nothing the user could have
		// aimed at, so the click passes through and the overlay stays
		return
	}

	content := core.NewRect(pos.X, pos.Y, pos.Width, pos.Height)
	if content.Contains(click.X, click.Y) {
		// The overlay's own UI handles it
		return
	}

	cfg, _ := w.Overlays.GetComponent(top)
	if trigger, ok := anchorTriggerRect(w, top, cfg); ok && trigger.Contains(click.X, click.Y) {
		// Clicking the trigger closes the overlay; the click must not
		// also reach the trigger widget, or it would immediately reopen
		closeOverlay(w, top, event.CloseAnchorClick)
		route.Suppressed = true
		route.Closed = top
		route.Reason = event.CloseAnchorClick
		s.log.Debug().Uint64("overlay", uint64(top)).Msg("anchor click closed overlay, click suppressed")
		return
	}

	closeOverlay(w, top, event.CloseClickOutside)
	route.Closed = top
	route.Reason = event.CloseClickOutside
	s.log.Debug().Uint64("overlay", uint64(top)).Msg("outside click closed overlay")
}

// anchorTriggerRect returns the rectangle a click must hit to count as
// an anchor-trigger dismissal: the cached rect from the last placement
// pass, falling back to live geometry for overlays placed before their
// anchor was ever cached
func anchorTriggerRect(w *engine.World, overlay core.Entity, cfg component.OverlayComponent) (core.Rect, bool) {
	if cfg.Anchor == core.InvalidEntity {
		return core.Rect{}, false
	}
	if cached, ok := w.AnchorRects.GetComponent(overlay); ok {
		return cached.Rect, true
	}
	return w.Resource.Geometry.Get(cfg.Anchor)
}

func anyModal(w *engine.World) bool {
	for _, e := range w.Resource.Overlay.Entities() {
		if cfg, ok := w.Overlays.GetComponent(e); ok && cfg.Modal {
			return true
		}
	}
	return false
}

// OpenOverlay appends a surface to the stack top. A zero Placement
// receives the default policy: anchored surfaces open BottomStart with
// auto-flip, unanchored surfaces open centered without it. Opening an
// entity already on the stack is a programming error and is returned
// as one. Call between ticks or under the world update lock
func OpenOverlay(w *engine.World, e core.Entity, cfg component.OverlayComponent) error {
	stack := w.Resource.Overlay
	if stack.Contains(e) {
		return fmt.Errorf("open overlay: entity %d already open", e)
	}

	if cfg.Placement == component.PlacementAuto {
		if cfg.Anchor != core.InvalidEntity {
			cfg.Placement = component.PlacementBottomStart
			cfg.AutoFlip = true
		} else {
			cfg.Placement = component.PlacementCenter
			cfg.AutoFlip = false
		}
	}

	w.Overlays.SetComponent(e, cfg)
	w.OverlayPositions.SetComponent(e, component.OverlayPositionComponent{
		Placement: cfg.Placement,
		Modal:     cfg.Modal,
	})
	stack.Push(e)

	w.Resource.Status.Ints.Get(status.KeyOverlayOpens).Add(1)
	w.PushEvent(event.EventOverlayOpened, event.OverlayOpenedPayload{Overlay: e})
	return nil
}

// OpenTooltip opens a non-modal surface anchored above its source, the
// shape hover hints use: Top placement with auto-flip
func OpenTooltip(w *engine.World, e core.Entity, anchor core.Entity, width, height float64) error {
	return OpenOverlay(w, e, component.OverlayComponent{
		Placement: component.PlacementTop,
		Anchor:    anchor,
		AutoFlip:  true,
		Width:     width,
		Height:    height,
	})
}

// CloseOverlay removes a surface from any stack position; closing below
// the top simply collapses the ordering around it. Closing an entity
// that is not open is a no-op. Returns whether anything closed
func CloseOverlay(w *engine.World, e core.Entity) bool {
	return closeOverlay(w, e, event.CloseRequested)
}

func closeOverlay(w *engine.World, e core.Entity, reason event.CloseReason) bool {
	if !w.Resource.Overlay.Remove(e) {
		return false
	}
	w.Overlays.RemoveEntity(e)
	w.OverlayPositions.RemoveEntity(e)
	w.AnchorRects.RemoveEntity(e)

	w.Resource.Status.Ints.Get(status.KeyOverlayCloses).Add(1)
	w.PushEvent(event.EventOverlayClosed, event.OverlayClosedPayload{
		Overlay: e,
		Reason:  reason,
	})
	return true
}
