package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cascade/status"
)

// Ticker drives one engine tick: read the time source, update the time
// resource, dispatch queued events, then run systems in priority order
// Hosts own the loop and call Tick from it
type Ticker struct {
	world    *World
	router   *EventRouter
	provider TimeProvider

	last    time.Time
	started bool

	tickCount *atomic.Int64
	tickDelta *status.AtomicFloat
}

// NewTicker creates a ticker bound to a world, router and time source
func NewTicker(world *World, router *EventRouter, provider TimeProvider) *Ticker {
	reg := world.Resource.Status
	return &Ticker{
		world:     world,
		router:    router,
		provider:  provider,
		tickCount: reg.Ints.Get(status.KeyTickCount),
		tickDelta: reg.Floats.Get(status.KeyTickDelta),
	}
}

// Tick runs one full engine tick under the world update lock
// The first tick observes a zero delta
func (t *Ticker) Tick() {
	now := t.provider.Now()
	if !t.started {
		t.last = now
		t.started = true
	}
	dt := now.Sub(t.last)
	t.last = now

	t.world.RunSafe(func() {
		tr := t.world.Resource.Time
		tr.Update(now, dt, tr.Tick+1)
		t.router.DispatchAll(t.world)
		t.world.UpdateLocked(dt)
	})

	t.tickCount.Add(1)
	t.tickDelta.Set(dt.Seconds())
}
