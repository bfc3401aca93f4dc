package system

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/cascade/engine"
	"github.com/lixenwraith/cascade/event"
	"github.com/lixenwraith/cascade/parameter"
	"github.com/lixenwraith/cascade/status"
)

// InvalidationSystem applies stylesheet replacements handed through the
// event queue and watches the sheet revision. Any revision change marks
// every entity with style inputs dirty: a rule change can affect any
// subset of the population without per-entity signaling
type InvalidationSystem struct {
	log          zerolog.Logger
	lastRevision uint64
}

// NewInvalidationSystem creates the sheet-change tracker
// Rules already in the sheet count as unseen, so the first tick marks
// the initial population dirty
func NewInvalidationSystem(log zerolog.Logger) *InvalidationSystem {
	return &InvalidationSystem{log: log}
}

func (s *InvalidationSystem) Priority() int {
	return parameter.PriorityInvalidation
}

func (s *InvalidationSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSheetReplace}
}

func (s *InvalidationSystem) HandleEvent(w *engine.World, ev event.Event) {
	payload, ok := ev.Payload.(*event.SheetReplacePayload)
	if !ok {
		return
	}

	if err := w.Resource.Sheet.Sheet.ReplaceAll(payload.Rules); err != nil {
		// The previous rule set stays active
		s.log.Error().Err(err).Msg("sheet replace rejected")
		return
	}

	w.Resource.Status.Ints.Get(status.KeySheetReloads).Add(1)
	s.log.Info().Int("rules", len(payload.Rules)).Msg("sheet replaced")
}

func (s *InvalidationSystem) Update(w *engine.World, dt time.Duration) {
	rev := w.Resource.Sheet.Sheet.Revision()
	if rev == s.lastRevision {
		return
	}
	s.lastRevision = rev

	entities := styledEntities(w)
	for _, e := range entities {
		markDirty(w, e)
	}
	s.log.Debug().Uint64("revision", rev).Int("entities", len(entities)).Msg("sheet change marked all styled entities dirty")
}
