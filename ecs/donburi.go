// Package ecs provides ECS adapters for unitrates.
package ecs

import (
	"github.com/phanxgames/unitrates"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MarkerEventKind distinguishes marker additions from removals.
type MarkerEventKind uint8

const (
	MarkerAdded MarkerEventKind = iota
	MarkerRemoved
)

// MarkerEvent is a snapshot of a marker at the moment it was added to or
// removed from a number line.
type MarkerEvent struct {
	Kind        MarkerEventKind
	Numerator   float64
	Denominator float64
	Creator     unitrates.Creator
	Marker      *unitrates.Marker
}

// MarkerEventType is the Donburi event type for number line marker events.
var MarkerEventType = events.NewEventType[MarkerEvent]()

// BridgeNumberLine publishes every marker added to or removed from line to
// MarkerEventType in world. Events are queued; consume them with
// ProcessEvents. The returned func detaches the bridge.
func BridgeNumberLine(world donburi.World, line *unitrates.DoubleNumberLine) (unbind func()) {
	publish := func(kind MarkerEventKind) func(*unitrates.Marker) {
		return func(m *unitrates.Marker) {
			MarkerEventType.Publish(world, MarkerEvent{
				Kind:        kind,
				Numerator:   m.Numerator.Value(),
				Denominator: m.Denominator.Value(),
				Creator:     m.Creator(),
				Marker:      m,
			})
		}
	}
	added := line.MarkerAdded.On(publish(MarkerAdded))
	removed := line.MarkerRemoved.On(publish(MarkerRemoved))
	return func() {
		added.Remove()
		removed.Remove()
	}
}
