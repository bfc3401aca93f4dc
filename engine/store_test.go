package engine

import (
	"testing"

	"github.com/lixenwraith/cascade/component"
	"github.com/lixenwraith/cascade/core"
)

func TestStoreSetGet(t *testing.T) {
	s := NewStore[component.WidgetComponent]()
	e := core.Entity(1)

	if _, ok := s.GetComponent(e); ok {
		t.Errorf("Expected no component before set")
	}

	s.SetComponent(e, component.WidgetComponent{Kind: "button"})
	got, ok := s.GetComponent(e)
	if !ok {
		t.Fatalf("Expected component after set")
	}
	if got.Kind != "button" {
		t.Errorf("Expected kind button, got %s", got.Kind)
	}

	// Update must not duplicate the entity in the iteration slice
	s.SetComponent(e, component.WidgetComponent{Kind: "label"})
	if got := s.CountEntities(); got != 1 {
		t.Errorf("Expected 1 entity after update, got %d", got)
	}
	got, _ = s.GetComponent(e)
	if got.Kind != "label" {
		t.Errorf("Expected kind label after update, got %s", got.Kind)
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore[component.WidgetComponent]()
	a, b := core.Entity(1), core.Entity(2)
	s.SetComponent(a, component.WidgetComponent{Kind: "panel"})
	s.SetComponent(b, component.WidgetComponent{Kind: "button"})

	s.RemoveEntity(a)
	if s.HasEntity(a) {
		t.Errorf("Expected entity removed")
	}
	if !s.HasEntity(b) {
		t.Errorf("Expected other entity untouched")
	}
	if got := s.CountEntities(); got != 1 {
		t.Errorf("Expected 1 entity, got %d", got)
	}

	// Removing again is a no-op
	s.RemoveEntity(a)
	if got := s.CountEntities(); got != 1 {
		t.Errorf("Expected 1 entity after double remove, got %d", got)
	}
}

func TestStoreGetAllEntitiesIsCopy(t *testing.T) {
	s := NewStore[component.WidgetComponent]()
	s.SetComponent(1, component.WidgetComponent{Kind: "a"})
	s.SetComponent(2, component.WidgetComponent{Kind: "b"})

	all := s.GetAllEntities()
	if len(all) != 2 {
		t.Fatalf("Expected 2 entities, got %d", len(all))
	}
	all[0] = 99
	if !s.HasEntity(1) {
		t.Errorf("Expected store unaffected by caller mutation")
	}
}

func TestStoreRemoveBatch(t *testing.T) {
	s := NewStore[component.StyleDirtyComponent]()
	for i := core.Entity(1); i <= 5; i++ {
		s.SetComponent(i, component.StyleDirtyComponent{})
	}

	s.RemoveBatch([]core.Entity{2, 4, 7}) // 7 not present

	if got := s.CountEntities(); got != 3 {
		t.Errorf("Expected 3 entities after batch remove, got %d", got)
	}
	for _, e := range []core.Entity{1, 3, 5} {
		if !s.HasEntity(e) {
			t.Errorf("Expected entity %d to survive", e)
		}
	}
	for _, e := range []core.Entity{2, 4} {
		if s.HasEntity(e) {
			t.Errorf("Expected entity %d removed", e)
		}
	}

	// Batch order preserved for survivors
	all := s.GetAllEntities()
	want := []core.Entity{1, 3, 5}
	for i, e := range want {
		if all[i] != e {
			t.Errorf("Expected survivor order %v, got %v", want, all)
			break
		}
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[component.WidgetComponent]()
	s.SetComponent(1, component.WidgetComponent{Kind: "a"})
	s.ClearAllComponents()
	if got := s.CountEntities(); got != 0 {
		t.Errorf("Expected empty store, got %d entities", got)
	}
}
