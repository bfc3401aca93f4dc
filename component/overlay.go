package component

import (
	"fmt"

	"github.com/lixenwraith/cascade/core"
)

// Placement selects where an overlay sits relative to its anchor rect
type Placement uint8

const (
	// PlacementAuto defers to the default policy: anchored overlays get
	// PlacementBottomStart with auto-flip, unanchored get PlacementCenter
	PlacementAuto Placement = iota
	PlacementTop
	PlacementTopStart
	PlacementTopEnd
	PlacementBottom
	PlacementBottomStart
	PlacementBottomEnd
	PlacementLeft
	PlacementLeftStart
	PlacementRight
	PlacementRightStart
	PlacementCenter
)

var placementNames = map[Placement]string{
	PlacementAuto:        "auto",
	PlacementTop:         "top",
	PlacementTopStart:    "top-start",
	PlacementTopEnd:      "top-end",
	PlacementBottom:      "bottom",
	PlacementBottomStart: "bottom-start",
	PlacementBottomEnd:   "bottom-end",
	PlacementLeft:        "left",
	PlacementLeftStart:   "left-start",
	PlacementRight:       "right",
	PlacementRightStart:  "right-start",
	PlacementCenter:      "center",
}

func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}
	return fmt.Sprintf("placement(%d)", uint8(p))
}

// ParsePlacement converts a config name to a Placement
func ParsePlacement(name string) (Placement, error) {
	for p, n := range placementNames {
		if n == name {
			return p, nil
		}
	}
	return PlacementAuto, fmt.Errorf("unknown placement %q", name)
}

// Mirrored returns the opposite-side placement used by auto-flip
// Center and Auto have no mirror and return themselves
func (p Placement) Mirrored() Placement {
	switch p {
	case PlacementTop:
		return PlacementBottom
	case PlacementBottom:
		return PlacementTop
	case PlacementTopStart:
		return PlacementBottomStart
	case PlacementBottomStart:
		return PlacementTopStart
	case PlacementTopEnd:
		return PlacementBottomEnd
	case PlacementBottomEnd:
		return PlacementTopEnd
	case PlacementLeft:
		return PlacementRight
	case PlacementRight:
		return PlacementLeft
	case PlacementLeftStart:
		return PlacementRightStart
	case PlacementRightStart:
		return PlacementLeftStart
	default:
		return p
	}
}

// OverlayComponent is the host-supplied configuration of an open overlay
// Attached by Open, removed by Close
type OverlayComponent struct {
	Placement Placement
	Anchor    core.Entity // InvalidEntity = unanchored
	AutoFlip  bool
	Modal     bool
	Width     float64 // 0 = parameter default
	Height    float64 // 0 = parameter default
}

// OverlayPositionComponent is the placement system's output for rendering
// Positioned stays false until the first placement pass; hosts render
// nothing for the overlay until it flips true
type OverlayPositionComponent struct {
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Placement  Placement // effective placement after any flip
	Modal      bool
	Positioned bool
}

// AnchorRectComponent caches the last known anchor geometry for an overlay
// Consulted when the anchor has no geometry this tick
type AnchorRectComponent struct {
	Rect core.Rect
}
