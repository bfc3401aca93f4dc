package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/cascade/engine"
)

// RegisterDefaults wires the full styling and overlay pipeline into a
// context: the six systems in their fixed priority order, with the
// event-driven ones registered on the router. Hosts that need a subset
// or extra systems register by hand instead
func RegisterDefaults(ctx *engine.Context, log zerolog.Logger) {
	interaction := NewInteractionSystem(log)
	ctx.World.AddSystem(interaction)
	ctx.Router.Register(interaction)

	invalidation := NewInvalidationSystem(log)
	ctx.World.AddSystem(invalidation)
	ctx.Router.Register(invalidation)

	ctx.World.AddSystem(NewCascadeSystem(log))
	ctx.World.AddSystem(NewTransitionSystem(log))

	overlay := NewOverlaySystem(log)
	ctx.World.AddSystem(overlay)
	ctx.Router.Register(overlay)

	ctx.World.AddSystem(NewPlacementSystem(log))
}
