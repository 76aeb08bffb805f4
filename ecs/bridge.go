package ecs

import (
	"github.com/phanxgames/emblem/input"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ActionEvent reports that Action moved from Previous to State.
type ActionEvent struct {
	Action   string
	State    input.KeyState
	Previous input.KeyState
}

// JustPressed reports whether the action went from not pressed to pressed.
// A quick second tap can skip StateNew and arrive as StateHeld, so this is
// the test for "pressed once" rather than State == StateNew.
func (e ActionEvent) JustPressed() bool {
	return e.State.Pressed() && !e.Previous.Pressed()
}

// JustReleased reports whether the action went from pressed to not pressed.
func (e ActionEvent) JustReleased() bool {
	return !e.State.Pressed() && e.Previous.Pressed()
}

// ActionEventType is the Donburi event type for action state changes.
var ActionEventType = events.NewEventType[ActionEvent]()

// Bridge publishes action state changes from an input.Map into a world.
type Bridge struct {
	world   donburi.World
	input   *input.Map
	actions []string
	last    map[string]input.KeyState
}

// NewBridge creates a Bridge watching actions. With no actions given, every
// action bound on m at construction time is watched.
func NewBridge(world donburi.World, m *input.Map, actions ...string) *Bridge {
	if len(actions) == 0 {
		actions = m.Actions()
	}
	return &Bridge{
		world:   world,
		input:   m,
		actions: actions,
		last:    make(map[string]input.KeyState, len(actions)),
	}
}

// Update compares every watched action against its state at the previous
// Update and queues an ActionEvent for each change. Call it once per tick
// after the Map has been acknowledged.
func (b *Bridge) Update() {
	for _, a := range b.actions {
		s, prev := b.input.Get(a), b.last[a]
		if s == prev {
			continue
		}
		b.last[a] = s
		ActionEventType.Publish(b.world, ActionEvent{Action: a, State: s, Previous: prev})
	}
}
