package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/cascade/event"
	"github.com/lixenwraith/cascade/parameter"
	"github.com/lixenwraith/cascade/style"
)

// Context assembles one engine instance: world, event queue, router,
// ticker, optional stylesheet watcher. Immutable after init except where
// methods say otherwise
type Context struct {
	World  *World
	Queue  *event.Queue
	Router *EventRouter
	Ticker *Ticker

	log     zerolog.Logger
	watcher *style.Watcher
}

// NewContext creates an engine context with the given viewport size
// Pass zerolog.Nop() when the host does not want logs
func NewContext(viewportWidth, viewportHeight float64, log zerolog.Logger) *Context {
	return NewContextWithTime(viewportWidth, viewportHeight, log, NewMonotonicTimeProvider())
}

// NewContextWithTime creates an engine context with a custom time source
// Tests pass a MockTimeProvider and drive time explicitly
func NewContextWithTime(viewportWidth, viewportHeight float64, log zerolog.Logger, provider TimeProvider) *Context {
	world := NewWorld()
	world.Resource.Viewport.Width = viewportWidth
	world.Resource.Viewport.Height = viewportHeight

	queue := event.NewQueue()
	world.SetEventQueue(queue)
	world.Resource.Event.Queue = queue

	router := NewEventRouter(queue)

	return &Context{
		World:  world,
		Queue:  queue,
		Router: router,
		Ticker: NewTicker(world, router, provider),
		log:    log,
	}
}

// Resize updates the viewport resource
// Overlays reposition on the next tick
func (c *Context) Resize(width, height float64) {
	c.World.RunSafe(func() {
		c.World.Resource.Viewport.Width = width
		c.World.Resource.Viewport.Height = height
	})
}

// LoadSheet replaces the active rule set from a stylesheet file
// Applied immediately, before the next tick
func (c *Context) LoadSheet(path string) error {
	rules, err := style.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load sheet: %w", err)
	}
	c.World.Resource.Sheet.Sheet.ReplaceAll(rules)
	return nil
}

// WatchSheet starts hot reload for a stylesheet file
// Parsed rule sets are handed to the tick pipeline through the event
// queue; a failed parse keeps the current rules
func (c *Context) WatchSheet(path string) error {
	if c.watcher != nil {
		return fmt.Errorf("watch sheet: already watching")
	}
	w, err := style.NewWatcher(path, parameter.SheetReloadDebounce, func(rules []style.Rule) {
		event.EmitSheetReplace(c.Queue, rules)
	}, c.log)
	if err != nil {
		return fmt.Errorf("watch sheet: %w", err)
	}
	if err := w.Watch(); err != nil {
		w.Close()
		return fmt.Errorf("watch sheet: %w", err)
	}
	c.watcher = w
	return nil
}

// Close stops the watcher if one is running
func (c *Context) Close() error {
	if c.watcher == nil {
		return nil
	}
	err := c.watcher.Close()
	c.watcher = nil
	return err
}
