package input

// KeyState is the logical state of a tracked physical key for the current tick.
type KeyState uint8

const (
	StateNone     KeyState = iota // not pressed, settled
	StateNew                      // freshly pressed, not yet settled into Held
	StateHeld                     // pressed, settled
	StateReleased                 // freshly released, not yet settled into None
)

// Pressed reports whether the key is down (New or Held).
func (s KeyState) Pressed() bool {
	return s == StateNew || s == StateHeld
}

// JustPressed reports whether the key is in its fresh-press window.
func (s KeyState) JustPressed() bool {
	return s == StateNew
}

// JustReleased reports whether the key is in its fresh-release window.
func (s KeyState) JustReleased() bool {
	return s == StateReleased
}

func (s KeyState) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateNew:
		return "New"
	case StateHeld:
		return "Held"
	case StateReleased:
		return "Released"
	default:
		return "KeyState(?)"
	}
}
