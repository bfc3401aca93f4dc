package event

import (
	"testing"

	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	EmitPointer(q, EventPointerEnter, core.Entity(1))
	EmitPointer(q, EventPointerLeave, core.Entity(2))
	EmitClick(q, 10, 20)

	events := q.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	if events[0].Type != EventPointerEnter || events[1].Type != EventPointerLeave || events[2].Type != EventPointerClick {
		t.Errorf("Expected FIFO order, got %v %v %v", events[0].Type, events[1].Type, events[2].Type)
	}

	click, ok := events[2].Payload.(ClickPayload)
	if !ok {
		t.Fatalf("Expected ClickPayload, got %T", events[2].Payload)
	}
	if click.X != 10 || click.Y != 20 {
		t.Errorf("Expected (10,20), got (%v,%v)", click.X, click.Y)
	}
}

func TestQueueConsumeDrains(t *testing.T) {
	q := NewQueue()
	EmitClick(q, 1, 1)

	if got := q.Len(); got != 1 {
		t.Errorf("Expected length 1, got %d", got)
	}
	if events := q.Consume(); len(events) != 1 {
		t.Errorf("Expected 1 event, got %d", len(events))
	}
	if events := q.Consume(); events != nil {
		t.Errorf("Expected drained queue, got %d events", len(events))
	}
	if got := q.Len(); got != 0 {
		t.Errorf("Expected length 0 after drain, got %d", got)
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 16
	for i := 0; i < total; i++ {
		EmitPointer(q, EventPointerEnter, core.Entity(i+1))
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events after overflow, got %d", parameter.EventQueueSize, len(events))
	}

	first := events[0].Payload.(PointerPayload)
	if first.Target != core.Entity(17) {
		t.Errorf("Expected oldest surviving target 17, got %d", first.Target)
	}
	last := events[len(events)-1].Payload.(PointerPayload)
	if last.Target != core.Entity(total) {
		t.Errorf("Expected newest target %d, got %d", total, last.Target)
	}
}
