package event

import (
	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/style"
)

// PointerPayload tags a pointer transition with its target entity
type PointerPayload struct {
	Target core.Entity
}

// ClickPayload carries raw click coordinates in viewport space
type ClickPayload struct {
	X, Y float64
}

// SheetReplacePayload delivers a validated replacement rule set
type SheetReplacePayload struct {
	Rules []style.Rule
}

// CloseReason explains why an overlay left the stack
type CloseReason uint8

const (
	// CloseRequested is an explicit Close call from host code
	CloseRequested CloseReason = iota
	// CloseClickOutside dismissed the top-most surface by a click
	// landing outside its content and trigger rectangles
	CloseClickOutside
	// CloseAnchorClick dismissed the surface by a click on its anchor
	// trigger; the click is suppressed for the rest of the tick
	CloseAnchorClick
	// ClosePruned removed a stale entry whose entity was destroyed
	ClosePruned
)

// String returns the reason name for logs
func (r CloseReason) String() string {
	switch r {
	case CloseRequested:
		return "requested"
	case CloseClickOutside:
		return "click-outside"
	case CloseAnchorClick:
		return "anchor-click"
	case ClosePruned:
		return "pruned"
	default:
		return "unknown"
	}
}

// OverlayOpenedPayload announces a surface joined the stack
type OverlayOpenedPayload struct {
	Overlay core.Entity
}

// OverlayClosedPayload announces a surface left the stack
type OverlayClosedPayload struct {
	Overlay core.Entity
	Reason  CloseReason
}
