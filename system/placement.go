package system

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/cascade/component"
	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/engine"
	"github.com/lixenwraith/cascade/parameter"
)

// PlacementSystem computes final viewport coordinates for every open
// overlay, bottom-to-top. Runs last in the pipeline so it sees the
// stack after this tick's lifecycle and arbitration settled
type PlacementSystem struct {
	log zerolog.Logger
}

// NewPlacementSystem creates the overlay position solver
func NewPlacementSystem(log zerolog.Logger) *PlacementSystem {
	return &PlacementSystem{log: log}
}

func (s *PlacementSystem) Priority() int {
	return parameter.PriorityPlacement
}

func (s *PlacementSystem) Update(w *engine.World, dt time.Duration) {
	viewport := w.Resource.Viewport.Rect()

	for _, e := range w.Resource.Overlay.Entities() {
		cfg, ok := w.Overlays.GetComponent(e)
		if !ok {
			continue
		}
		s.place(w, e, cfg, viewport)
	}
}

// place solves one overlay: preferred origin from the placement policy,
// a mirrored candidate when auto-flip is on and the preferred rectangle
// leaves the viewport, then a final clamp into view
func (s *PlacementSystem) place(w *engine.World, e core.Entity, cfg component.OverlayComponent, viewport core.Rect) {
	width := cfg.Width
	if width <= 0 {
		width = parameter.DefaultOverlayWidth
	}
	height := cfg.Height
	if height <= 0 {
		height = parameter.DefaultOverlayHeight
	}

	placement := cfg.Placement
	anchorRect := viewport
	gap := 0.0

	if cfg.Anchor != core.InvalidEntity {
		rect, known := anchorRectFor(w, e, cfg.Anchor)
		if known {
			anchorRect = rect
			gap = parameter.OverlayAnchorGap
		} else {
			// Anchor geometry was never seen: degrade to a centered
			// viewport placement for this pass, keep the overlay alive
			placement = component.PlacementCenter
			s.log.Debug().
				Uint64("overlay", uint64(e)).
				Uint64("anchor", uint64(cfg.Anchor)).
				Msg("anchor geometry unknown, centering in viewport")
		}
	}
	if placement == component.PlacementAuto {
		// Overlay components written without OpenOverlay skip the
		// default-policy normalization; resolve the policy here too
		if cfg.Anchor != core.InvalidEntity {
			placement = component.PlacementBottomStart
		} else {
			placement = component.PlacementCenter
		}
	}

	x, y := placementOrigin(placement, anchorRect, width, height, gap)
	chosen := placement

	if cfg.AutoFlip && !fitsViewport(x, y, width, height, viewport) {
		if mirrored := placement.Mirrored(); mirrored != placement {
			fx, fy := placementOrigin(mirrored, anchorRect, width, height, gap)
			preferred := core.NewRect(x, y, width, height).Intersect(viewport).Area()
			flipped := core.NewRect(fx, fy, width, height).Intersect(viewport).Area()
			// Mirror only when it strictly shows more of the surface
			if flipped > preferred {
				x, y = fx, fy
				chosen = mirrored
			}
		}
	}

	x, y = clampOrigin(x, y, width, height, viewport)

	w.OverlayPositions.SetComponent(e, component.OverlayPositionComponent{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Placement:  chosen,
		Modal:      cfg.Modal,
		Positioned: true,
	})
}

// anchorRectFor resolves the anchor rectangle for an overlay: live
// geometry when the host published it this tick, else the rect cached
// by an earlier pass. Live geometry refreshes the cache, which is also
// what click arbitration tests the trigger against next tick
func anchorRectFor(w *engine.World, overlay, anchor core.Entity) (core.Rect, bool) {
	if rect, ok := w.Resource.Geometry.Get(anchor); ok {
		w.AnchorRects.SetComponent(overlay, component.AnchorRectComponent{Rect: rect})
		return rect, true
	}
	if cached, ok := w.AnchorRects.GetComponent(overlay); ok {
		return cached.Rect, true
	}
	return core.Rect{}, false
}

// placementOrigin returns the preferred top-left corner for a placement
// relative to the anchor rectangle. Unanchored overlays pass the
// viewport as the anchor with a zero gap, which makes Center a true
// viewport centering
func placementOrigin(p component.Placement, anchor core.Rect, width, height, gap float64) (float64, float64) {
	startX := anchor.X
	centeredX := anchor.X + (anchor.Width-width)*0.5
	endX := anchor.X + anchor.Width - width

	topY := anchor.Y - height - gap
	centeredY := anchor.Y + (anchor.Height-height)*0.5
	bottomY := anchor.Y + anchor.Height + gap

	switch p {
	case component.PlacementCenter:
		return centeredX, centeredY
	case component.PlacementTop:
		return centeredX, topY
	case component.PlacementBottom:
		return centeredX, bottomY
	case component.PlacementLeft:
		return anchor.X - width - gap, centeredY
	case component.PlacementRight:
		return anchor.Right() + gap, centeredY
	case component.PlacementTopStart:
		return startX, topY
	case component.PlacementTopEnd:
		return endX, topY
	case component.PlacementBottomStart:
		return startX, bottomY
	case component.PlacementBottomEnd:
		return endX, bottomY
	case component.PlacementLeftStart:
		return anchor.X - width - gap, anchor.Y
	case component.PlacementRightStart:
		return anchor.Right() + gap, anchor.Y
	default:
		return centeredX, centeredY
	}
}

func fitsViewport(x, y, width, height float64, viewport core.Rect) bool {
	return x >= viewport.X && y >= viewport.Y &&
		x+width <= viewport.Right() && y+height <= viewport.Bottom()
}

// clampOrigin forces the final origin into [0, viewport-size], keeping
// at least the top-left of an oversized surface visible
func clampOrigin(x, y, width, height float64, viewport core.Rect) (float64, float64) {
	maxX := max(viewport.Width-width, 0)
	maxY := max(viewport.Height-height, 0)
	return clamp(x, 0, maxX), clamp(y, 0, maxY)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
