// Package system implements the per-tick styling pipeline: interaction
// sync, invalidation, cascade resolution, color transitions, overlay
// stack maintenance and overlay placement, plus the mutation and read
// API host code drives the pipeline with.
package system

import (
	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/engine"
	"github.com/lixenwraith/cascade/parameter"
	"github.com/lixenwraith/cascade/style"
)

// entityFacts assembles the style-relevant facts of one entity from its
// component stores
func entityFacts(w *engine.World, e core.Entity) style.Facts {
	f := style.Facts{}
	if widget, ok := w.Widgets.GetComponent(e); ok {
		f.Kind = widget.Kind
	}
	if classes, ok := w.Classes.GetComponent(e); ok {
		f.Classes = classes.Classes
	}
	if pseudo, ok := w.Pseudos.GetComponent(e); ok {
		f.Hovered = pseudo.Hovered
		f.Pressed = pseudo.Pressed
	}
	return f
}

// factChain builds the matching input for e: its own facts first, then
// each ancestor's facts walking root-ward. The walk is depth-capped so a
// parent cycle degrades to a truncated chain instead of hanging the tick
func factChain(w *engine.World, e core.Entity) []style.Facts {
	chain := make([]style.Facts, 0, 4)
	cur := e
	for depth := 0; depth < parameter.MaxTreeDepth; depth++ {
		chain = append(chain, entityFacts(w, cur))
		parent, ok := w.Parents.GetComponent(cur)
		if !ok || parent.Parent == core.InvalidEntity {
			break
		}
		cur = parent.Parent
	}
	return chain
}

// chainThrough builds the fact chain for e and reports whether ancestor
// appears among e's ancestors. Used by the descendant-dependency walk to
// visit only the changed entity's subtree
func chainThrough(w *engine.World, e, ancestor core.Entity) ([]style.Facts, bool) {
	chain := make([]style.Facts, 0, 4)
	found := false
	cur := e
	for depth := 0; depth < parameter.MaxTreeDepth; depth++ {
		chain = append(chain, entityFacts(w, cur))
		if cur == ancestor && depth > 0 {
			found = true
		}
		parent, ok := w.Parents.GetComponent(cur)
		if !ok || parent.Parent == core.InvalidEntity {
			break
		}
		cur = parent.Parent
	}
	if !found {
		return nil, false
	}
	return chain, true
}

// styledEntities returns every entity carrying at least one style input,
// deduplicated, in stable store order
func styledEntities(w *engine.World) []core.Entity {
	seen := make(map[core.Entity]struct{})
	var out []core.Entity
	collect := func(entities []core.Entity) {
		for _, e := range entities {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	collect(w.Widgets.GetAllEntities())
	collect(w.Classes.GetAllEntities())
	collect(w.Inlines.GetAllEntities())
	collect(w.Pseudos.GetAllEntities())
	return out
}

// subtreeOf returns every styled entity whose ancestor chain contains
// root, excluding root itself
func subtreeOf(w *engine.World, root core.Entity) []core.Entity {
	var out []core.Entity
	for _, e := range styledEntities(w) {
		if e == root {
			continue
		}
		cur := e
		for depth := 0; depth < parameter.MaxTreeDepth; depth++ {
			parent, ok := w.Parents.GetComponent(cur)
			if !ok || parent.Parent == core.InvalidEntity {
				break
			}
			if parent.Parent == root {
				out = append(out, e)
				break
			}
			cur = parent.Parent
		}
	}
	return out
}
