package event

// EventType represents the type of UI runtime event
type EventType int

const (
	// === Pointer Events ===

	// EventPointerEnter signals the pointer moved onto an entity
	// Trigger: input bridge, after hit-testing motion against entity geometry
	// Consumer: InteractionSystem | Payload: PointerPayload
	EventPointerEnter EventType = iota + 100

	// EventPointerLeave signals the pointer left an entity
	// Trigger: input bridge
	// Consumer: InteractionSystem | Payload: PointerPayload
	EventPointerLeave

	// EventPointerPress signals a press began on an entity
	// Trigger: input bridge
	// Consumer: InteractionSystem | Payload: PointerPayload
	EventPointerPress

	// EventPointerRelease signals a press ended on an entity
	// Trigger: input bridge
	// Consumer: InteractionSystem | Payload: PointerPayload
	EventPointerRelease

	// EventPointerClick carries raw click coordinates in viewport space.
	// The overlay stack arbitrates every click before ordinary UI may
	// consume it; hosts read the routing decision after the tick.
	// Trigger: input bridge
	// Consumer: OverlaySystem | Payload: ClickPayload
	EventPointerClick

	// === Stylesheet Events ===

	// EventSheetReplace delivers a parsed and validated replacement rule
	// set. Parsing happens off the tick loop (hot-reload watcher); the
	// swap itself happens inside the tick so no resolution pass observes
	// a half-replaced sheet.
	// Trigger: hot-reload watcher, host reload requests
	// Consumer: InvalidationSystem | Payload: *SheetReplacePayload
	EventSheetReplace EventType = iota + 200

	// === Overlay Events ===

	// EventOverlayOpened announces a surface joined the stack
	// Trigger: OverlaySystem.Open
	// Consumer: host observability | Payload: OverlayOpenedPayload
	EventOverlayOpened EventType = iota + 300

	// EventOverlayClosed announces a surface left the stack, with the
	// reason (explicit close, outside click, anchor click, prune)
	// Trigger: OverlaySystem
	// Consumer: host observability | Payload: OverlayClosedPayload
	EventOverlayClosed
)

// Event is one queued UI runtime event
type Event struct {
	Type    EventType
	Payload any
}
