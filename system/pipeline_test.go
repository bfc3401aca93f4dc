package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/cascade/component"
	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/event"
	"github.com/lixenwraith/cascade/status"
	"github.com/lixenwraith/cascade/style"
)

const demoSheet = `
[class."demo.button"]
bg = "#2563EB"
hover_bg = "#1D4ED8"
transition = 0.15
`

// Full pipeline walk: stylesheet load, hover enter, eased interpolation,
// exact convergence, hover leave, convergence back
func TestHoverTransitionEndToEnd(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	w := ctx.World
	loadRules(t, ctx, demoSheet)

	base := core.MustParseHex("#2563EB")
	hover := core.MustParseHex("#1D4ED8")

	button := w.CreateEntity()
	SetKind(w, button, "button")
	SetClasses(w, button, "demo.button")

	tickAfter(ctx, mock, 16*time.Millisecond)
	got := ResolveStyle(w, button)
	if got.Bg == nil || *got.Bg != base {
		t.Fatalf("Expected resolved base %v, got %v", base, got.Bg)
	}
	if got.Transition != 150*time.Millisecond {
		t.Fatalf("Expected 150ms transition from sheet, got %v", got.Transition)
	}

	event.EmitPointer(ctx.Queue, event.EventPointerEnter, button)
	tickAfter(ctx, mock, 16*time.Millisecond)
	got = ResolveStyle(w, button)
	if got.Bg == nil || *got.Bg != base {
		t.Errorf("Expected displayed color still %v at animation start, got %v", base, got.Bg)
	}
	if !w.Animations.HasEntity(button) {
		t.Fatalf("Expected animation running after hover enter")
	}

	tickAfter(ctx, mock, 75*time.Millisecond)
	got = ResolveStyle(w, button)
	want := base.Lerp(hover, 0.5)
	if got.Bg == nil || *got.Bg != want {
		t.Errorf("Expected eased midpoint %v, got %v", want, got.Bg)
	}

	tickAfter(ctx, mock, 75*time.Millisecond)
	got = ResolveStyle(w, button)
	if got.Bg == nil || *got.Bg != hover {
		t.Errorf("Expected exact hover color %v, got %v", hover, got.Bg)
	}
	if w.Animations.HasEntity(button) {
		t.Errorf("Expected animation finished")
	}

	event.EmitPointer(ctx.Queue, event.EventPointerLeave, button)
	tickAfter(ctx, mock, 16*time.Millisecond)
	if !w.Animations.HasEntity(button) {
		t.Fatalf("Expected reverse animation after hover leave")
	}
	tickAfter(ctx, mock, 150*time.Millisecond)
	got = ResolveStyle(w, button)
	if got.Bg == nil || *got.Bg != base {
		t.Errorf("Expected return to %v, got %v", base, got.Bg)
	}
}

// Sheet replacement mid-animation retargets from the displayed value,
// exactly like any other target change
func TestSheetSwapRetargetsRunningAnimation(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	w := ctx.World
	loadRules(t, ctx, demoSheet)

	base := core.MustParseHex("#2563EB")
	green := core.MustParseHex("#10B981")

	button := w.CreateEntity()
	SetClasses(w, button, "demo.button")
	tickAfter(ctx, mock, 16*time.Millisecond)

	event.EmitPointer(ctx.Queue, event.EventPointerEnter, button)
	tickAfter(ctx, mock, 16*time.Millisecond)
	tickAfter(ctx, mock, 75*time.Millisecond)

	mid, _ := w.Currents.GetComponent(button)
	if mid.Bg == nil || *mid.Bg == base {
		t.Fatalf("Expected mid-flight value, got %v", mid.Bg)
	}

	swapped, err := style.Parse(`
[class."demo.button"]
bg = "#2563EB"
hover_bg = "#10B981"
transition = 0.15
`)
	if err != nil {
		t.Fatalf("Expected replacement sheet to parse, got %v", err)
	}
	event.EmitSheetReplace(ctx.Queue, swapped)
	tickAfter(ctx, mock, 16*time.Millisecond)

	anim, ok := w.Animations.GetComponent(button)
	if !ok {
		t.Fatalf("Expected animation retargeted, not dropped")
	}
	if anim.TargetBg == nil || *anim.TargetBg != green {
		t.Errorf("Expected new hover target %v, got %v", green, anim.TargetBg)
	}
	if anim.StartBg == nil || *anim.StartBg != *mid.Bg {
		t.Errorf("Expected restart from displayed %v, got %v", *mid.Bg, anim.StartBg)
	}

	tickAfter(ctx, mock, 150*time.Millisecond)
	cur, _ := w.Currents.GetComponent(button)
	if cur.Bg == nil || *cur.Bg != green {
		t.Errorf("Expected convergence to %v, got %v", green, cur.Bg)
	}
}

// A modal dialog with a dropdown opened inside it dismisses one layer
// per outside click, top-most first
func TestNestedOverlaysDismissOneLayerPerClick(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	w := ctx.World

	dialog := w.CreateEntity()
	err := OpenOverlay(w, dialog, component.OverlayComponent{
		Placement: component.PlacementCenter,
		Modal:     true,
		Width:     40,
		Height:    20,
	})
	if err != nil {
		t.Fatalf("Expected dialog open to succeed, got %v", err)
	}
	tickAfter(ctx, mock, 16*time.Millisecond)

	// A select button inside the dialog anchors a dropdown
	selectBtn := w.CreateEntity()
	w.Resource.Geometry.Set(selectBtn, core.NewRect(35, 25, 10, 4))
	dropdown := w.CreateEntity()
	if err := OpenOverlay(w, dropdown, component.OverlayComponent{Anchor: selectBtn, Width: 20, Height: 10}); err != nil {
		t.Fatalf("Expected dropdown open to succeed, got %v", err)
	}
	tickAfter(ctx, mock, 16*time.Millisecond)

	if !w.Resource.Status.Bools.Get(status.KeyModalActive).Load() {
		t.Errorf("Expected modal gauge set")
	}
	if pos, _ := w.OverlayPositions.GetComponent(dropdown); pos.X != 35 || pos.Y != 33 {
		t.Errorf("Expected dropdown below its trigger at (35,33), got (%v,%v)", pos.X, pos.Y)
	}

	// First outside click dismisses only the dropdown
	event.EmitClick(ctx.Queue, 1, 1)
	tickAfter(ctx, mock, 16*time.Millisecond)
	if got := w.Resource.Overlay.Entities(); len(got) != 1 || got[0] != dialog {
		t.Fatalf("Expected only the dropdown dismissed, got %v", got)
	}
	if route := w.Resource.Pointer; route.Closed != dropdown {
		t.Errorf("Expected route to record dropdown close, got %d", route.Closed)
	}

	// Second outside click dismisses the dialog
	event.EmitClick(ctx.Queue, 1, 1)
	tickAfter(ctx, mock, 16*time.Millisecond)
	if w.Resource.Overlay.Len() != 0 {
		t.Errorf("Expected empty stack, got %v", w.Resource.Overlay.Entities())
	}
	if w.Resource.Status.Bools.Get(status.KeyModalActive).Load() {
		t.Errorf("Expected modal gauge cleared")
	}
}

func TestTooltipPlacesAboveAndFlipsAtEdge(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	w := ctx.World

	target := w.CreateEntity()
	w.Resource.Geometry.Set(target, core.NewRect(40, 30, 20, 6))
	tip := w.CreateEntity()
	if err := OpenTooltip(w, tip, target, 24, 6); err != nil {
		t.Fatalf("Expected tooltip open to succeed, got %v", err)
	}
	tickAfter(ctx, mock, 16*time.Millisecond)

	pos, _ := w.OverlayPositions.GetComponent(tip)
	if pos.X != 38 || pos.Y != 20 {
		t.Errorf("Expected tooltip above target at (38,20), got (%v,%v)", pos.X, pos.Y)
	}
	if pos.Modal {
		t.Errorf("Expected tooltip non-modal")
	}
	CloseOverlay(w, tip)

	// Target near the top edge flips the tooltip below
	edge := w.CreateEntity()
	w.Resource.Geometry.Set(edge, core.NewRect(40, 2, 20, 6))
	tip2 := w.CreateEntity()
	if err := OpenTooltip(w, tip2, edge, 24, 6); err != nil {
		t.Fatalf("Expected tooltip open to succeed, got %v", err)
	}
	tickAfter(ctx, mock, 16*time.Millisecond)

	pos, _ = w.OverlayPositions.GetComponent(tip2)
	if pos.Placement != component.PlacementBottom {
		t.Errorf("Expected flip below the target, got %v", pos.Placement)
	}
	if pos.Y != 12 {
		t.Errorf("Expected flipped origin y=12, got %v", pos.Y)
	}
}
