package event

import (
	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/style"
)

// EmitPointer pushes one pointer transition for a target entity
func EmitPointer(q *Queue, t EventType, target core.Entity) {
	q.Push(Event{Type: t, Payload: PointerPayload{Target: target}})
}

// EmitClick pushes raw click coordinates for overlay arbitration
func EmitClick(q *Queue, x, y float64) {
	q.Push(Event{Type: EventPointerClick, Payload: ClickPayload{X: x, Y: y}})
}

// EmitSheetReplace hands a parsed rule set to the tick pipeline
func EmitSheetReplace(q *Queue, rules []style.Rule) {
	q.Push(Event{Type: EventSheetReplace, Payload: &SheetReplacePayload{Rules: rules}})
}

// EmitOverlayOpened announces a surface joined the stack
func EmitOverlayOpened(q *Queue, overlay core.Entity) {
	q.Push(Event{Type: EventOverlayOpened, Payload: OverlayOpenedPayload{Overlay: overlay}})
}

// EmitOverlayClosed announces a surface left the stack
func EmitOverlayClosed(q *Queue, overlay core.Entity, reason CloseReason) {
	q.Push(Event{Type: EventOverlayClosed, Payload: OverlayClosedPayload{Overlay: overlay, Reason: reason}})
}
