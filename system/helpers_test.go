package system

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/cascade/engine"
	"github.com/lixenwraith/cascade/status"
	"github.com/lixenwraith/cascade/style"
)

// newPipeline builds a context with the full default pipeline on mock
// time, the standard fixture for system tests
func newPipeline(t *testing.T, width, height float64) (*engine.Context, *engine.MockTimeProvider) {
	t.Helper()
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	ctx := engine.NewContextWithTime(width, height, zerolog.Nop(), mock)
	RegisterDefaults(ctx, zerolog.Nop())
	return ctx, mock
}

// tickAfter advances mock time and runs one full tick
func tickAfter(ctx *engine.Context, mock *engine.MockTimeProvider, d time.Duration) {
	mock.Advance(d)
	ctx.Ticker.Tick()
}

// loadRules replaces the active sheet from TOML source
func loadRules(t *testing.T, ctx *engine.Context, src string) {
	t.Helper()
	rules, err := style.Parse(src)
	if err != nil {
		t.Fatalf("Expected stylesheet to parse, got %v", err)
	}
	if err := ctx.World.Resource.Sheet.Sheet.ReplaceAll(rules); err != nil {
		t.Fatalf("Expected rules to apply, got %v", err)
	}
}

func resolveCount(ctx *engine.Context) int64 {
	return ctx.World.Resource.Status.Ints.Get(status.KeyStyleResolves).Load()
}

func dirtyMarkCount(ctx *engine.Context) int64 {
	return ctx.World.Resource.Status.Ints.Get(status.KeyStyleDirtyMarks).Load()
}
