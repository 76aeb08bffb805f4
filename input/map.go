package input

import (
	"fmt"
	"log/slog"
	"sort"
)

// Binding associates an action name such as "Ui:Move Up" with a physical key.
type Binding struct {
	Action string
	Key    Key
}

// keyRecord is the per-key state machine. pressAck only matters while state
// is StateNew and releaseAck only while state is StateReleased.
type keyRecord struct {
	state      KeyState
	pressAck   bool
	releaseAck bool
}

// Map tracks the logical state of every registered key and resolves action
// names to those states.
//
// The backend reports raw events with Press and Release, the game loop calls
// Acknowledge exactly once per tick, and gameplay reads states with Get. A
// freshly pressed key reads StateNew until the second Acknowledge after the
// press; releases settle the same way. Map is not safe for concurrent use.
type Map struct {
	bindings map[string]Key
	keys     map[Key]*keyRecord
	log      *slog.Logger
}

// NewMap creates a Map and registers bindings in order. A later binding for
// the same action replaces an earlier one.
func NewMap(bindings ...Binding) *Map {
	m := &Map{
		bindings: make(map[string]Key, len(bindings)),
		keys:     make(map[Key]*keyRecord, len(bindings)),
	}
	for _, b := range bindings {
		m.Register(b.Action, b.Key)
	}
	return m
}

// SetLogger sets the logger used for diagnostics. Nil restores slog.Default.
func (m *Map) SetLogger(l *slog.Logger) {
	m.log = l
}

func (m *Map) logger() *slog.Logger {
	if m.log == nil {
		return slog.Default()
	}
	return m.log
}

// Register binds action to key and starts tracking key. The key's state is
// reset to StateNone even if it was already tracked, which discards any press
// or release reported since the last tick.
func (m *Map) Register(action string, key Key) {
	m.bindings[action] = key
	m.keys[key] = &keyRecord{}
}

// Press records a press of key. Untracked keys are ignored.
func (m *Map) Press(key Key) {
	if r, ok := m.keys[key]; ok {
		r.state = StateNew
	}
}

// Release records a release of key. Untracked keys are ignored.
func (m *Map) Release(key Key) {
	if r, ok := m.keys[key]; ok {
		r.state = StateReleased
	}
}

// Acknowledge decays transient states. Each call flips the latch of a key in
// StateNew or StateReleased, and the state settles only when the latch was
// already set, so a transient state survives one Acknowledge and settles on
// the next. The latches are not reset by Press or Release: a key pressed
// again while its pressAck is still set settles after a single call.
func (m *Map) Acknowledge() {
	for _, r := range m.keys {
		switch r.state {
		case StateNew:
			if r.pressAck {
				r.state = StateHeld
			}
			r.pressAck = !r.pressAck
		case StateReleased:
			if r.releaseAck {
				r.state = StateNone
			}
			r.releaseAck = !r.releaseAck
		}
	}
}

// Get returns the state of the key bound to action. Unbound actions read as
// StateNone. Get panics if action is bound to a key that is not tracked.
func (m *Map) Get(action string) KeyState {
	key, ok := m.bindings[action]
	if !ok {
		m.logger().Debug("input action not bound", "action", action)
		return StateNone
	}
	r, ok := m.keys[key]
	if !ok {
		panic(fmt.Sprintf("input: action %q reads %v but the key is not tracked", action, key))
	}
	return r.state
}

// Tracked reports whether key has a state record.
func (m *Map) Tracked(key Key) bool {
	_, ok := m.keys[key]
	return ok
}

// Actions returns the bound action names in sorted order.
func (m *Map) Actions() []string {
	actions := make([]string, 0, len(m.bindings))
	for a := range m.bindings {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	return actions
}
