package ecs

import (
	"testing"

	"github.com/phanxgames/unitrates"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func newLine() *unitrates.DoubleNumberLine {
	return unitrates.NewDoubleNumberLine(unitrates.NewProperty(2.0), unitrates.DoubleNumberLineOptions{})
}

func TestBridgeNumberLine(t *testing.T) {
	world := donburi.NewWorld()
	line := newLine()
	BridgeNumberLine(world, line)

	var received []MarkerEvent
	MarkerEventType.Subscribe(world, func(w donburi.World, e MarkerEvent) {
		received = append(received, e)
	})

	editor := unitrates.NewMarker(4, 2, unitrates.CreatorEditor, unitrates.MarkerOptions{})
	line.AddMarker(editor)
	// Replaces the editor marker: one removal, one addition.
	line.AddMarker(unitrates.NewMarker(4, 3, unitrates.CreatorQuestion, unitrates.MarkerOptions{}))

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected queued events, got %d delivered", len(received))
	}
	MarkerEventType.ProcessEvents(world)

	if len(received) != 3 {
		t.Fatalf("expected 3 events, got %d", len(received))
	}
	want := []struct {
		kind    MarkerEventKind
		creator unitrates.Creator
	}{
		{MarkerAdded, unitrates.CreatorEditor},
		{MarkerRemoved, unitrates.CreatorEditor},
		{MarkerAdded, unitrates.CreatorQuestion},
	}
	for i, w := range want {
		if received[i].Kind != w.kind || received[i].Creator != w.creator {
			t.Errorf("event %d: %+v", i, received[i])
		}
	}
	if received[0].Marker != editor || received[0].Numerator != 4 || received[0].Denominator != 2 {
		t.Errorf("event 0 values: %+v", received[0])
	}
}

func TestBridgeNumberLine_Unbind(t *testing.T) {
	world := donburi.NewWorld()
	line := newLine()
	unbind := BridgeNumberLine(world, line)

	var count int
	MarkerEventType.Subscribe(world, func(w donburi.World, e MarkerEvent) {
		count++
	})

	unbind()
	line.AddMarker(unitrates.NewMarker(1, 1, unitrates.CreatorEditor, unitrates.MarkerOptions{}))
	events.ProcessAllEvents(world)

	if count != 0 {
		t.Errorf("expected no events after unbind, got %d", count)
	}
}

func TestBridgeNumberLine_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	line := newLine()
	BridgeNumberLine(world, line)

	var count1, count2 int
	MarkerEventType.Subscribe(world, func(w donburi.World, e MarkerEvent) {
		count1++
	})
	MarkerEventType.Subscribe(world, func(w donburi.World, e MarkerEvent) {
		count2++
	})

	line.AddMarker(unitrates.NewMarker(1, 1, unitrates.CreatorScale, unitrates.MarkerOptions{}))
	line.Reset()
	events.ProcessAllEvents(world)

	if count1 != 2 || count2 != 2 {
		t.Errorf("expected both subscribers called twice, got %d and %d", count1, count2)
	}
}
