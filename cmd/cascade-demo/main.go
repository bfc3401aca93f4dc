// cascade-demo is a terminal walkthrough of the styling and overlay
// pipeline: styled buttons with hover/press transitions, a dropdown, a
// modal dialog, a hover tooltip, and live stylesheet reload. Run it next
// to theme.toml and edit the file while the demo is up.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/cascade/component"
	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/engine"
	"github.com/lixenwraith/cascade/event"
	"github.com/lixenwraith/cascade/parameter"
	"github.com/lixenwraith/cascade/style"
	"github.com/lixenwraith/cascade/system"
)

var (
	themeFlag = flag.String("theme", "theme.toml", "Stylesheet file to load and watch")
	logFlag   = flag.String("log", "", "Write structured logs to this file")
)

const frameInterval = time.Second / 60

type button struct {
	entity core.Entity
	label  string
	rect   core.Rect
}

type demo struct {
	ctx    *engine.Context
	screen tcell.Screen
	log    zerolog.Logger

	panel    core.Entity
	buttons  []*button
	menu     *button
	dialog   *button
	hint     *button
	dropdown core.Entity
	modal    core.Entity
	tooltip  core.Entity

	hovered        core.Entity
	buttonsHeld    tcell.ButtonMask
	clickX, clickY float64 // last emitted click, for post-tick delivery
}

func main() {
	flag.Parse()

	log := zerolog.Nop()
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = zerolog.New(f).With().Timestamp().Logger()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	w, h := screen.Size()
	ctx := engine.NewContext(float64(w), float64(h), log)
	system.RegisterDefaults(ctx, log)

	if err := ctx.LoadSheet(*themeFlag); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := ctx.WatchSheet(*themeFlag); err != nil {
		log.Warn().Err(err).Msg("hot reload unavailable")
	}
	defer ctx.Close()

	d := &demo{ctx: ctx, screen: screen, log: log}
	d.buildWidgets()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case ev := <-events:
			if d.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			d.frame()
		}
	}
}

// buildWidgets creates the demo's entity tree: a panel with three
// buttons, plus the overlay entities opened on demand
func (d *demo) buildWidgets() {
	world := d.ctx.World

	d.panel = world.CreateEntity()
	system.SetKind(world, d.panel, "panel")
	system.SetClasses(world, d.panel, "demo.panel")

	newButton := func(label string) *button {
		e := world.CreateEntity()
		system.SetKind(world, e, "button")
		system.SetClasses(world, e, "demo.button")
		system.SetParent(world, e, d.panel)
		b := &button{entity: e, label: label}
		d.buttons = append(d.buttons, b)
		return b
	}
	d.menu = newButton(" Menu ▾ ")
	d.dialog = newButton(" Dialog ")
	d.hint = newButton(" Hover me ")

	d.dropdown = world.CreateEntity()
	system.SetClasses(world, d.dropdown, "demo.dropdown")

	d.modal = world.CreateEntity()
	system.SetClasses(world, d.modal, "demo.dialog")

	d.tooltip = world.CreateEntity()
	system.SetClasses(world, d.tooltip, "demo.tooltip")
}

// layout positions the widgets for the current viewport and publishes
// their rectangles to the geometry index
func (d *demo) layout() {
	vp := d.ctx.World.Resource.Viewport
	geo := d.ctx.World.Resource.Geometry

	geo.Set(d.panel, core.NewRect(0, 0, vp.Width, vp.Height))

	x := 2.0
	for _, b := range d.buttons {
		width := float64(len([]rune(b.label)) + 2)
		b.rect = core.NewRect(x, 1, width, 3)
		geo.Set(b.entity, b.rect)
		x += width + 2
	}
}

func (d *demo) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return true
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		d.ctx.Resize(float64(w), float64(h))
		d.screen.Sync()
	case *tcell.EventMouse:
		d.handleMouse(ev)
	}
	return false
}

// handleMouse converts tcell mouse state into the pointer events the
// interaction system consumes: enter/leave from motion, press/release
// from the primary button, and a click on release
func (d *demo) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	fx, fy := float64(x), float64(y)

	target := core.InvalidEntity
	for _, b := range d.buttons {
		if b.rect.Contains(fx, fy) {
			target = b.entity
			break
		}
	}
	if target != d.hovered {
		if d.hovered != core.InvalidEntity {
			event.EmitPointer(d.ctx.Queue, event.EventPointerLeave, d.hovered)
		}
		if target != core.InvalidEntity {
			event.EmitPointer(d.ctx.Queue, event.EventPointerEnter, target)
		}
		d.syncTooltip(target)
		d.hovered = target
	}

	held := ev.Buttons() & tcell.ButtonPrimary
	if held != 0 && d.buttonsHeld == 0 {
		if d.hovered != core.InvalidEntity {
			event.EmitPointer(d.ctx.Queue, event.EventPointerPress, d.hovered)
		}
	}
	if held == 0 && d.buttonsHeld != 0 {
		if d.hovered != core.InvalidEntity {
			event.EmitPointer(d.ctx.Queue, event.EventPointerRelease, d.hovered)
		}
		event.EmitClick(d.ctx.Queue, fx, fy)
		d.clickX, d.clickY = fx, fy
	}
	d.buttonsHeld = held
}

// syncTooltip opens the hint tooltip while its button is hovered and
// closes it when the pointer moves on
func (d *demo) syncTooltip(target core.Entity) {
	world := d.ctx.World
	world.RunSafe(func() {
		if target == d.hint.entity {
			if !world.Resource.Overlay.Contains(d.tooltip) {
				if err := system.OpenTooltip(world, d.tooltip, d.hint.entity, 26, 3); err != nil {
					d.log.Warn().Err(err).Msg("tooltip open failed")
				}
			}
			return
		}
		system.CloseOverlay(world, d.tooltip)
	})
}

// frame runs one tick and redraws. Click routing is read back after the
// tick: a click the overlay layer did not consume falls through to the
// buttons here
func (d *demo) frame() {
	d.ctx.World.RunSafe(d.layout)
	d.ctx.Ticker.Tick()

	route := d.ctx.World.Resource.Pointer
	if route.HasClick && !route.Suppressed {
		d.deliverClick(d.clickX, d.clickY)
	}

	d.render()
}

// deliverClick handles clicks that reached ordinary UI: the menu button
// toggles the dropdown, the dialog button opens the modal
func (d *demo) deliverClick(x, y float64) {
	world := d.ctx.World
	world.RunSafe(func() {
		switch {
		case d.menu.rect.Contains(x, y):
			if world.Resource.Overlay.Contains(d.dropdown) {
				system.CloseOverlay(world, d.dropdown)
				return
			}
			err := system.OpenOverlay(world, d.dropdown, component.OverlayComponent{
				Anchor: d.menu.entity,
				Width:  22,
				Height: 5,
			})
			if err != nil {
				d.log.Warn().Err(err).Msg("dropdown open failed")
			}
		case d.dialog.rect.Contains(x, y):
			if world.Resource.Overlay.Contains(d.modal) {
				return
			}
			err := system.OpenOverlay(world, d.modal, component.OverlayComponent{
				Modal:  true,
				Width:  40,
				Height: 9,
			})
			if err != nil {
				d.log.Warn().Err(err).Msg("dialog open failed")
			}
		}
	})
}

func (d *demo) render() {
	world := d.ctx.World
	screen := d.screen

	panelStyle := system.ResolveStyle(world, d.panel)
	fillRect(screen, world.Resource.Viewport.Rect(), panelStyle.Bg)

	drawText(screen, 2, 5, "Click Menu for a dropdown, Dialog for a modal, or edit theme.toml.", panelStyle.Text, panelStyle.Bg)
	drawText(screen, 2, 6, "Clicks dismiss the top-most overlay only. Press q to quit.", panelStyle.Text, panelStyle.Bg)

	for _, b := range d.buttons {
		st := system.ResolveStyle(world, b.entity)
		fillRect(screen, b.rect, st.Bg)
		drawText(screen, int(b.rect.X)+1, int(b.rect.Y)+1, b.label, st.Text, st.Bg)
	}

	// Overlays draw bottom-to-top so the stack order is the paint order
	stack := world.Resource.Overlay.Entities()
	topModal := core.InvalidEntity
	for _, e := range stack {
		if pos, ok := world.OverlayPositions.GetComponent(e); ok && pos.Positioned && pos.Modal {
			topModal = e
		}
	}
	for _, e := range stack {
		pos, ok := world.OverlayPositions.GetComponent(e)
		if !ok || !pos.Positioned {
			continue
		}
		if e == topModal {
			dimBehindModal(screen, world.Resource.Viewport.Rect())
		}
		st := system.ResolveStyle(world, e)
		rect := core.NewRect(pos.X, pos.Y, pos.Width, pos.Height)
		fillRect(screen, rect, st.Bg)
		drawOverlayContent(screen, d, e, rect, st)
	}

	screen.Show()
}

func drawOverlayContent(screen tcell.Screen, d *demo, e core.Entity, rect core.Rect, st style.Computed) {
	x, y := int(rect.X)+1, int(rect.Y)+1
	switch e {
	case d.dropdown:
		drawText(screen, x, y, "New file", st.Text, st.Bg)
		drawText(screen, x, y+1, "Open...", st.Text, st.Bg)
		drawText(screen, x, y+2, "Save", st.Text, st.Bg)
	case d.modal:
		drawText(screen, x, y, "Modal dialog", st.Text, st.Bg)
		drawText(screen, x, y+2, "Click outside to dismiss.", st.Text, st.Bg)
	case d.tooltip:
		drawText(screen, x, y, "Styled by demo.tooltip", st.Text, st.Bg)
	}
}

func fillRect(screen tcell.Screen, rect core.Rect, bg *core.RGBA) {
	if bg == nil {
		return
	}
	st := tcell.StyleDefault.Background(toTcell(*bg))
	for y := int(rect.Y); y < int(rect.Y+rect.Height); y++ {
		for x := int(rect.X); x < int(rect.X+rect.Width); x++ {
			screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, text string, fg, bg *core.RGBA) {
	st := tcell.StyleDefault
	if fg != nil {
		st = st.Foreground(toTcell(*fg))
	}
	if bg != nil {
		st = st.Background(toTcell(*bg))
	}
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, st)
	}
}

// dimBehindModal darkens whatever is already on screen under the
// top-most modal by blending toward black
func dimBehindModal(screen tcell.Screen, viewport core.Rect) {
	for y := 0; y < int(viewport.Height); y++ {
		for x := 0; x < int(viewport.Width); x++ {
			mainc, combc, st, _ := screen.GetContent(x, y)
			fg, bg, attrs := st.Decompose()
			st = tcell.StyleDefault.
				Foreground(dimColor(fg)).
				Background(dimColor(bg)).
				Attributes(attrs)
			screen.SetContent(x, y, mainc, combc, st)
		}
	}
}

func dimColor(c tcell.Color) tcell.Color {
	if !c.Valid() {
		return c
	}
	r, g, b := c.RGB()
	base := core.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
	dimmed := base.Blend(core.Black, parameter.OverlayBackdropAlpha)
	return tcell.NewRGBColor(int32(dimmed.R), int32(dimmed.G), int32(dimmed.B))
}

func toTcell(c core.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
