package system

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/cascade/component"
	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/engine"
	"github.com/lixenwraith/cascade/parameter"
	"github.com/lixenwraith/cascade/status"
	"github.com/lixenwraith/cascade/style"
)

// CascadeSystem recomputes merged styles for dirty entities and reflects
// the result into the color target components the animator consumes.
// Dirty flags are cleared for exactly the entities recomputed
type CascadeSystem struct {
	log zerolog.Logger
}

// NewCascadeSystem creates the cascade resolution system
func NewCascadeSystem(log zerolog.Logger) *CascadeSystem {
	return &CascadeSystem{log: log}
}

func (s *CascadeSystem) Priority() int {
	return parameter.PriorityCascade
}

func (s *CascadeSystem) Update(w *engine.World, dt time.Duration) {
	dirty := w.Dirty.GetAllEntities()
	if len(dirty) == 0 {
		return
	}

	for _, e := range dirty {
		resolveEntity(w, e)
	}
	w.Dirty.RemoveBatch(dirty)

	s.log.Debug().Int("resolved", len(dirty)).Msg("cascade pass")
}

// ResolveStyle returns the entity's merged style with any in-flight
// interpolated colors substituted for the discrete channels. A dirty or
// never-resolved entity is resolved on the spot; otherwise the cached
// value is returned without recomputation
func ResolveStyle(w *engine.World, e core.Entity) style.Computed {
	var computed style.Computed
	if cached, ok := w.Computed.GetComponent(e); ok && !w.Dirty.HasEntity(e) {
		computed = cached.Style
	} else {
		computed = resolveEntity(w, e)
		w.Dirty.RemoveEntity(e)
	}

	if cur, ok := w.Currents.GetComponent(e); ok {
		computed = computed.WithCurrentColors(cur.Bg, cur.Text, cur.Border)
	}
	return computed
}

// IsDirty reports whether the entity's cached style is stale
// Offered as an optimization hint; ResolveStyle works either way
func IsDirty(w *engine.World, e core.Entity) bool {
	return w.Dirty.HasEntity(e)
}

// resolveEntity recomputes one entity's style, refreshes its cache and
// color targets, and seeds the displayed colors on first resolve of a
// transitioning entity. Shared by the cascade pass and the lazy read path
func resolveEntity(w *engine.World, e core.Entity) style.Computed {
	chain := factChain(w, e)
	var inline style.Setter
	if ic, ok := w.Inlines.GetComponent(e); ok {
		inline = ic.Set
	}

	computed := style.Resolve(w.Resource.Sheet.Sheet, chain, inline)
	w.Computed.SetComponent(e, component.ComputedStyleComponent{Style: computed})
	w.Targets.SetComponent(e, component.TargetColorsComponent{
		Bg:     computed.Bg,
		Text:   computed.Text,
		Border: computed.Border,
	})

	// First resolve of an entity with transitions: show the target
	// immediately, no animation from nothing
	if computed.Transition > 0 && !w.Currents.HasEntity(e) {
		w.Currents.SetComponent(e, component.CurrentColorsComponent{
			Bg:     computed.Bg,
			Text:   computed.Text,
			Border: computed.Border,
		})
	}

	w.Resource.Status.Ints.Get(status.KeyStyleResolves).Add(1)
	return computed
}
