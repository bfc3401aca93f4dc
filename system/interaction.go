package system

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/cascade/component"
	"github.com/lixenwraith/cascade/engine"
	"github.com/lixenwraith/cascade/event"
	"github.com/lixenwraith/cascade/parameter"
)

// InteractionSystem converts pointer enter/leave/press/release events
// into the boolean pseudo flags selectors match on. Event-driven: the
// work happens at dispatch, before any system updates
type InteractionSystem struct {
	log zerolog.Logger
}

// NewInteractionSystem creates the pseudo-state sync system
func NewInteractionSystem(log zerolog.Logger) *InteractionSystem {
	return &InteractionSystem{log: log}
}

func (s *InteractionSystem) Priority() int {
	return parameter.PriorityInteraction
}

func (s *InteractionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPointerEnter,
		event.EventPointerLeave,
		event.EventPointerPress,
		event.EventPointerRelease,
	}
}

func (s *InteractionSystem) HandleEvent(w *engine.World, ev event.Event) {
	payload, ok := ev.Payload.(event.PointerPayload)
	if !ok {
		return
	}
	e := payload.Target

	flags, _ := w.Pseudos.GetComponent(e)
	next := flags
	switch ev.Type {
	case event.EventPointerEnter:
		next.Hovered = true
	case event.EventPointerLeave:
		// Leaving also cancels an in-progress press
		next.Hovered = false
		next.Pressed = false
	case event.EventPointerPress:
		next.Pressed = true
	case event.EventPointerRelease:
		next.Pressed = false
	}

	if next == flags {
		return
	}

	oldChain := factChain(w, e)
	w.Pseudos.SetComponent(e, component.PseudoStateComponent{
		Hovered: next.Hovered,
		Pressed: next.Pressed,
	})
	markDirty(w, e)
	propagateToDescendants(w, e, oldChain)

	s.log.Debug().
		Uint64("entity", uint64(e)).
		Bool("hovered", next.Hovered).
		Bool("pressed", next.Pressed).
		Msg("pseudo state changed")
}

// Update does nothing; all interaction work happens during dispatch
func (s *InteractionSystem) Update(w *engine.World, dt time.Duration) {}
