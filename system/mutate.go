package system

import (
	"github.com/lixenwraith/cascade/component"
	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/engine"
	"github.com/lixenwraith/cascade/status"
	"github.com/lixenwraith/cascade/style"
)

// SetKind assigns the widget kind of an entity, marking it dirty when
// the value actually changed
func SetKind(w *engine.World, e core.Entity, kind string) {
	old, _ := w.Widgets.GetComponent(e)
	if old.Kind == kind {
		return
	}
	oldChain := factChain(w, e)
	w.Widgets.SetComponent(e, component.WidgetComponent{Kind: kind})
	markDirty(w, e)
	propagateToDescendants(w, e, oldChain)
}

// SetClasses replaces the class list of an entity. Order matters: later
// classes win field ties during resolution
func SetClasses(w *engine.World, e core.Entity, classes ...string) {
	old, _ := w.Classes.GetComponent(e)
	if classListEqual(old.Classes, classes) {
		return
	}
	oldChain := factChain(w, e)
	stored := make([]string, len(classes))
	copy(stored, classes)
	w.Classes.SetComponent(e, component.ClassListComponent{Classes: stored})
	markDirty(w, e)
	propagateToDescendants(w, e, oldChain)
}

// SetParent relinks an entity in the widget tree. The moved entity and
// its whole styled subtree resolve against a new ancestor chain, so all
// of them are marked dirty. Passing InvalidEntity detaches
func SetParent(w *engine.World, e core.Entity, parent core.Entity) {
	old, had := w.Parents.GetComponent(e)
	if had && old.Parent == parent {
		return
	}
	if !had && parent == core.InvalidEntity {
		return
	}
	if parent == core.InvalidEntity {
		w.Parents.RemoveEntity(e)
	} else {
		w.Parents.SetComponent(e, component.ParentComponent{Parent: parent})
	}
	markDirty(w, e)
	for _, d := range subtreeOf(w, e) {
		markDirty(w, d)
	}
}

// SetInline replaces the per-entity override setter. Inline values are
// not selector-visible, so no descendant propagation is needed
func SetInline(w *engine.World, e core.Entity, set style.Setter) {
	old, had := w.Inlines.GetComponent(e)
	if had && old.Set.Equal(set) {
		return
	}
	w.Inlines.SetComponent(e, component.InlineStyleComponent{Set: set})
	markDirty(w, e)
}

// ClearInline removes the per-entity override setter
func ClearInline(w *engine.World, e core.Entity) {
	if !w.Inlines.HasEntity(e) {
		return
	}
	w.Inlines.RemoveEntity(e)
	markDirty(w, e)
}

// markDirty raises the dirty flag, counting only fresh marks
func markDirty(w *engine.World, e core.Entity) {
	if w.Dirty.HasEntity(e) {
		return
	}
	w.Dirty.SetComponent(e, component.StyleDirtyComponent{})
	w.Resource.Status.Ints.Get(status.KeyStyleDirtyMarks).Add(1)
}

// propagateToDescendants marks styled entities below e whose resolution
// depends on e through a descendant rule. oldChain is e's fact chain
// from before the mutation; the current chain is rebuilt here. A rule
// ancestor matching either chain can change a descendant's output, so
// both trigger the walk
func propagateToDescendants(w *engine.World, e core.Entity, oldChain []style.Facts) {
	sheet := w.Resource.Sheet.Sheet
	if !sheet.HasDescendants() {
		return
	}

	newChain := factChain(w, e)
	var active []style.DescendantDep
	for _, dep := range sheet.DescendantDeps() {
		if dep.Ancestor.Matches(oldChain) || dep.Ancestor.Matches(newChain) {
			active = append(active, dep)
		}
	}
	if len(active) == 0 {
		return
	}

	for _, cand := range styledEntities(w) {
		if cand == e {
			continue
		}
		chain, below := chainThrough(w, cand, e)
		if !below {
			continue
		}
		for _, dep := range active {
			if dep.Child.Matches(chain) {
				markDirty(w, cand)
				break
			}
		}
	}
}

func classListEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
