package system

import (
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/event"
	"github.com/lixenwraith/cascade/style"
)

func TestCascadeClearsDirtyAfterPass(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	e := ctx.World.CreateEntity()
	SetClasses(ctx.World, e, "panel")

	if !ctx.World.Dirty.HasEntity(e) {
		t.Fatalf("Expected fresh entity dirty")
	}
	tickAfter(ctx, mock, 16*time.Millisecond)
	if ctx.World.Dirty.HasEntity(e) {
		t.Errorf("Expected dirty cleared after cascade pass")
	}
}

func TestResolveStyleCachedWhenClean(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	sheet := ctx.World.Resource.Sheet.Sheet
	mustAddRule(t, sheet, style.Rule{
		Selector: style.ByClass("panel"),
		Set:      style.Setter{Layout: style.LayoutStyle{Padding: style.Float(6)}},
	})
	e := ctx.World.CreateEntity()
	SetClasses(ctx.World, e, "panel")
	tickAfter(ctx, mock, 16*time.Millisecond)

	count := resolveCount(ctx)
	first := ResolveStyle(ctx.World, e)
	second := ResolveStyle(ctx.World, e)

	if got := resolveCount(ctx); got != count {
		t.Errorf("Expected cached reads without recomputation, resolve count went %d -> %d", count, got)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical cached styles, got %+v vs %+v", first, second)
	}
	if first.Padding != 6 {
		t.Errorf("Expected cached padding 6, got %v", first.Padding)
	}
}

func TestResolveStyleLazyOnDirtyRead(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	e := ctx.World.CreateEntity()
	SetClasses(ctx.World, e, "panel")
	tickAfter(ctx, mock, 16*time.Millisecond)

	// Host mutates and reads back before the next tick: the read must
	// not observe the stale cache
	SetInline(ctx.World, e, style.Setter{Layout: style.LayoutStyle{Padding: style.Float(9)}})
	count := resolveCount(ctx)

	got := ResolveStyle(ctx.World, e)
	if got.Padding != 9 {
		t.Errorf("Expected lazy resolve to see inline padding 9, got %v", got.Padding)
	}
	if resolveCount(ctx) != count+1 {
		t.Errorf("Expected exactly one lazy recomputation")
	}
	if IsDirty(ctx.World, e) {
		t.Errorf("Expected dirty cleared by lazy resolve")
	}

	// The following pass has nothing left to do for this entity
	tickAfter(ctx, mock, 16*time.Millisecond)
	if resolveCount(ctx) != count+1 {
		t.Errorf("Expected no further recomputation after lazy resolve")
	}
}

func TestTickResolutionIdempotent(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	e := ctx.World.CreateEntity()
	SetClasses(ctx.World, e, "panel")

	tickAfter(ctx, mock, 16*time.Millisecond)
	count := resolveCount(ctx)

	// Ticks without input changes resolve nothing
	tickAfter(ctx, mock, 16*time.Millisecond)
	tickAfter(ctx, mock, 16*time.Millisecond)

	if got := resolveCount(ctx); got != count {
		t.Errorf("Expected idle ticks to skip resolution, count went %d -> %d", count, got)
	}
}

func TestResolveStyleReturnsInterpolatedColors(t *testing.T) {
	ctx, mock := newPipeline(t, 100, 60)
	base := core.RGBA{R: 0x25, G: 0x63, B: 0xEB, A: 0xFF}
	hover := core.RGBA{R: 0x1D, G: 0x4E, B: 0xD8, A: 0xFF}
	sheet := ctx.World.Resource.Sheet.Sheet
	mustAddRule(t, sheet, style.Rule{
		Selector: style.ByClass("demo.button"),
		Set: style.Setter{
			Colors:     style.ColorStyle{Bg: style.Color(base), HoverBg: style.Color(hover)},
			Transition: style.Duration(150 * time.Millisecond),
		},
	})
	e := ctx.World.CreateEntity()
	SetClasses(ctx.World, e, "demo.button")
	tickAfter(ctx, mock, 16*time.Millisecond)

	event.EmitPointer(ctx.Queue, event.EventPointerEnter, e)
	tickAfter(ctx, mock, 16*time.Millisecond)
	tickAfter(ctx, mock, 75*time.Millisecond)

	got := ResolveStyle(ctx.World, e)
	if got.Bg == nil {
		t.Fatalf("Expected interpolated bg, got nil")
	}
	if *got.Bg == base || *got.Bg == hover {
		t.Errorf("Expected mid-flight color between %v and %v, got %v", base, hover, *got.Bg)
	}

	// The cached discrete target keeps the hover value; only the read
	// substitutes the animated color
	cached, _ := ctx.World.Computed.GetComponent(e)
	if cached.Style.Bg == nil || *cached.Style.Bg != hover {
		t.Errorf("Expected cached discrete bg %v, got %v", hover, cached.Style.Bg)
	}
}

func TestResolveStyleUnknownEntityGetsDefaults(t *testing.T) {
	ctx, _ := newPipeline(t, 100, 60)
	e := ctx.World.CreateEntity()

	got := ResolveStyle(ctx.World, e)
	if got.TextSize != style.DefaultTextSize {
		t.Errorf("Expected default text size, got %v", got.TextSize)
	}
	if got.Bg != nil {
		t.Errorf("Expected unset bg for styleless entity, got %v", got.Bg)
	}
}
