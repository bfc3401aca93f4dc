package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/cascade/component"
	"github.com/lixenwraith/cascade/core"
)

// Placement fixture: 100x60 viewport, anchor at (40,30) sized 20x10,
// overlay 10x6, standard 4-unit gap
func TestPlacementOrigins(t *testing.T) {
	tests := []struct {
		name      string
		placement component.Placement
		wantX     float64
		wantY     float64
	}{
		{"center", component.PlacementCenter, 45, 32},
		{"top", component.PlacementTop, 45, 20},
		{"bottom", component.PlacementBottom, 45, 44},
		{"left", component.PlacementLeft, 26, 32},
		{"right", component.PlacementRight, 64, 32},
		{"top-start", component.PlacementTopStart, 40, 20},
		{"top-end", component.PlacementTopEnd, 50, 20},
		{"bottom-start", component.PlacementBottomStart, 40, 44},
		{"bottom-end", component.PlacementBottomEnd, 50, 44},
		{"left-start", component.PlacementLeftStart, 26, 30},
		{"right-start", component.PlacementRightStart, 64, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, mock := newPipeline(t, 100, 60)
			w := ctx.World

			anchor := w.CreateEntity()
			w.Resource.Geometry.Set(anchor, core.NewRect(40, 30, 20, 10))

			overlay := w.CreateEntity()
			err := OpenOverlay(w, overlay, component.OverlayComponent{
				Placement: tt.placement,
				Anchor:    anchor,
				Width:     10,
				Height:    6,
			})
			if err != nil {
				t.Fatalf("Expected open to succeed, got %v", err)
			}
			tickAfter(ctx, mock, 16*time.Millisecond)

			pos, ok := w.OverlayPositions.GetComponent(overlay)
			if !ok || !pos.Positioned {
				t.Fatalf("Expected positioned overlay")
			}
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("Expected origin (%v,%v), got (%v,%v)", tt.wantX, tt.wantY, pos.X, pos.Y)
			}
			if pos.Placement != tt.placement {
				t.Errorf("Expected placement %v kept, got %v", tt.placement, pos.Placement)
			}
		})
	}
}

func TestAutoFlipAdoptsMirrorWhenFullyVisible(t *testing.T) {
	tests := []struct {
		name       string
		anchor     core.Rect
		placement  component.Placement
		wantChosen component.Placement
		wantX      float64
		wantY      float64
	}{
		// Anchor hugging the bottom edge: below overflows, above fits
		{
			name:       "bottom flips to top",
			anchor:     core.NewRect(40, 50, 20, 6),
			placement:  component.PlacementBottomStart,
			wantChosen: component.PlacementTopStart,
			wantX:      40,
			wantY:      40,
		},
		// Anchor hugging the left edge: left overflows, right fits
		{
			name:       "left flips to right",
			anchor:     core.NewRect(2, 30, 10, 6),
			placement:  component.PlacementLeft,
			wantChosen: component.PlacementRight,
			wantX:      16,
			wantY:      30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, mock := newPipeline(t, 100, 60)
			w := ctx.World

			anchor := w.CreateEntity()
			w.Resource.Geometry.Set(anchor, tt.anchor)

			overlay := w.CreateEntity()
			err := OpenOverlay(w, overlay, component.OverlayComponent{
				Placement: tt.placement,
				Anchor:    anchor,
				AutoFlip:  true,
				Width:     10,
				Height:    6,
			})
			if err != nil {
				t.Fatalf("Expected open to succeed, got %v", err)
			}
			tickAfter(ctx, mock, 16*time.Millisecond)

			pos, _ := w.OverlayPositions.GetComponent(overlay)
			if pos.Placement != tt.wantChosen {
				t.Errorf("Expected flip to %v, got %v", tt.wantChosen, pos.Placement)
			}
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("Expected origin (%v,%v), got (%v,%v)", tt.wantX, tt.wantY, pos.X, pos.Y)
			}
		})
	}
}

func TestAutoFlipKeepsPreferredOnTie(t *testing.T) {
	// Shallow viewport: both above and below show the same single row of
	// the surface, so the preferred side wins and the clamp pulls it in
	ctx, mock := newPipeline(t, 100, 20)
	w := ctx.World

	anchor := w.CreateEntity()
	w.Resource.Geometry.Set(anchor, core.NewRect(40, 5, 20, 10))

	overlay := w.CreateEntity()
	err := OpenOverlay(w, overlay, component.OverlayComponent{
		Placement: component.PlacementBottomStart,
		Anchor:    anchor,
		AutoFlip:  true,
		Width:     10,
		Height:    8,
	})
	if err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}
	tickAfter(ctx, mock, 16*time.Millisecond)

	pos, _ := w.OverlayPositions.GetComponent(overlay)
	if pos.Placement != component.PlacementBottomStart {
		t.Errorf("Expected preferred placement kept on tie, got %v", pos.Placement)
	}
	if pos.X != 40 || pos.Y != 12 {
		t.Errorf("Expected clamped origin (40,12), got (%v,%v)", pos.X, pos.Y)
	}
}

func TestClampKeepsOversizedSurfaceAtOrigin(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	w := ctx.World

	overlay := w.CreateEntity()
	err := OpenOverlay(w, overlay, component.OverlayComponent{
		Placement: component.PlacementCenter,
		Width:     200,
		Height:    100,
	})
	if err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}
	tickAfter(ctx, mock, 16*time.Millisecond)

	pos, _ := w.OverlayPositions.GetComponent(overlay)
	if pos.X != 0 || pos.Y != 0 {
		t.Errorf("Expected oversized surface pinned to (0,0), got (%v,%v)", pos.X, pos.Y)
	}
	if pos.Width != 200 || pos.Height != 100 {
		t.Errorf("Expected requested size kept, got %vx%v", pos.Width, pos.Height)
	}
}

func TestUnanchoredCenterUsesViewport(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	w := ctx.World

	overlay := w.CreateEntity()
	if err := OpenOverlay(w, overlay, smallOverlay(false)); err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}
	tickAfter(ctx, mock, 16*time.Millisecond)

	pos, _ := w.OverlayPositions.GetComponent(overlay)
	if pos.X != 40 || pos.Y != 25 {
		t.Errorf("Expected viewport center (40,25), got (%v,%v)", pos.X, pos.Y)
	}
	if pos.Placement != component.PlacementCenter {
		t.Errorf("Expected default center policy, got %v", pos.Placement)
	}
}

func TestCachedAnchorRectKeepsOverlayInPlace(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	w := ctx.World

	anchor := w.CreateEntity()
	w.Resource.Geometry.Set(anchor, core.NewRect(10, 10, 20, 6))

	overlay := w.CreateEntity()
	if err := OpenOverlay(w, overlay, component.OverlayComponent{Anchor: anchor, Width: 30, Height: 8}); err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}
	tickAfter(ctx, mock, 16*time.Millisecond)

	first, _ := w.OverlayPositions.GetComponent(overlay)

	// Anchor geometry disappears: the overlay holds its last position
	// instead of jumping to a fallback
	w.Resource.Geometry.Remove(anchor)
	tickAfter(ctx, mock, 16*time.Millisecond)

	second, _ := w.OverlayPositions.GetComponent(overlay)
	if second.X != first.X || second.Y != first.Y {
		t.Errorf("Expected stable position (%v,%v), got (%v,%v)", first.X, first.Y, second.X, second.Y)
	}
}

func TestNeverKnownAnchorCentersInViewport(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	w := ctx.World

	ghost := w.CreateEntity()
	overlay := w.CreateEntity()
	if err := OpenOverlay(w, overlay, component.OverlayComponent{Anchor: ghost, Width: 30, Height: 8}); err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}
	tickAfter(ctx, mock, 16*time.Millisecond)

	pos, _ := w.OverlayPositions.GetComponent(overlay)
	if !pos.Positioned {
		t.Fatalf("Expected overlay positioned despite unknown anchor")
	}
	if pos.X != 35 || pos.Y != 26 {
		t.Errorf("Expected viewport-centered fallback (35,26), got (%v,%v)", pos.X, pos.Y)
	}
	if pos.Placement != component.PlacementCenter {
		t.Errorf("Expected centered fallback placement, got %v", pos.Placement)
	}
}

func TestAutoPlacementPolicy(t *testing.T) {
	ctx, _ := newPipeline(t, 100, 60)
	w := ctx.World

	anchor := w.CreateEntity()
	anchored := w.CreateEntity()
	if err := OpenOverlay(w, anchored, component.OverlayComponent{Anchor: anchor}); err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}
	cfg, _ := w.Overlays.GetComponent(anchored)
	if cfg.Placement != component.PlacementBottomStart || !cfg.AutoFlip {
		t.Errorf("Expected anchored default bottom-start with auto-flip, got %v flip=%v", cfg.Placement, cfg.AutoFlip)
	}

	free := w.CreateEntity()
	if err := OpenOverlay(w, free, component.OverlayComponent{}); err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}
	cfg, _ = w.Overlays.GetComponent(free)
	if cfg.Placement != component.PlacementCenter || cfg.AutoFlip {
		t.Errorf("Expected unanchored default center without auto-flip, got %v flip=%v", cfg.Placement, cfg.AutoFlip)
	}
}

func TestZeroSizeFallsBackToDefaults(t *testing.T) {
	ctx, mock := newPipeline(t, 800, 600)
	w := ctx.World

	overlay := w.CreateEntity()
	if err := OpenOverlay(w, overlay, component.OverlayComponent{}); err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}
	tickAfter(ctx, mock, 16*time.Millisecond)

	pos, _ := w.OverlayPositions.GetComponent(overlay)
	if pos.Width != 240 || pos.Height != 120 {
		t.Errorf("Expected default 240x120 surface, got %vx%v", pos.Width, pos.Height)
	}
	if pos.X != 280 || pos.Y != 240 {
		t.Errorf("Expected centered defaults at (280,240), got (%v,%v)", pos.X, pos.Y)
	}
}
