package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownKey is returned by ParseKey when a name matches no known key.
var ErrUnknownKey = errors.New("input: unknown key")

// Device identifies which kind of hardware a Key belongs to.
type Device uint8

const (
	DeviceKeyboard Device = iota // ebiten.Key codes
	DeviceGamepad                // ebiten.StandardGamepadButton codes
)

// Key is an opaque, comparable token for one physical input. Two Keys are
// the same input exactly when they compare equal.
type Key struct {
	Device Device
	Code   int
}

// KeyboardKey returns the Key for a keyboard key.
func KeyboardKey(k ebiten.Key) Key {
	return Key{Device: DeviceKeyboard, Code: int(k)}
}

// GamepadButton returns the Key for a button on a standard-layout gamepad.
// All connected gamepads share the same Key for a given button.
func GamepadButton(b ebiten.StandardGamepadButton) Key {
	return Key{Device: DeviceGamepad, Code: int(b)}
}

const gamepadPrefix = "Gamepad:"

// gamepadButtonNames names the standard-layout buttons by position.
var gamepadButtonNames = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom:   "RightBottom",
	ebiten.StandardGamepadButtonRightRight:    "RightRight",
	ebiten.StandardGamepadButtonRightLeft:     "RightLeft",
	ebiten.StandardGamepadButtonRightTop:      "RightTop",
	ebiten.StandardGamepadButtonFrontTopLeft:  "FrontTopLeft",
	ebiten.StandardGamepadButtonFrontTopRight: "FrontTopRight",
	ebiten.StandardGamepadButtonCenterLeft:    "CenterLeft",
	ebiten.StandardGamepadButtonCenterRight:   "CenterRight",
	ebiten.StandardGamepadButtonLeftTop:       "LeftTop",
	ebiten.StandardGamepadButtonLeftBottom:    "LeftBottom",
	ebiten.StandardGamepadButtonLeftLeft:      "LeftLeft",
	ebiten.StandardGamepadButtonLeftRight:     "LeftRight",
}

func (k Key) String() string {
	switch k.Device {
	case DeviceKeyboard:
		return ebiten.Key(k.Code).String()
	case DeviceGamepad:
		if name, ok := gamepadButtonNames[ebiten.StandardGamepadButton(k.Code)]; ok {
			return gamepadPrefix + name
		}
		return fmt.Sprintf("%sButton%d", gamepadPrefix, k.Code)
	default:
		return fmt.Sprintf("Key(%d:%d)", k.Device, k.Code)
	}
}

// ParseKey resolves a key name. Keyboard keys use ebiten's names ("Space",
// "ArrowUp", "A"); gamepad buttons are written "Gamepad:<position>", for
// example "Gamepad:RightBottom".
func ParseKey(name string) (Key, error) {
	if rest, ok := strings.CutPrefix(name, gamepadPrefix); ok {
		for b, n := range gamepadButtonNames {
			if strings.EqualFold(n, rest) {
				return GamepadButton(b), nil
			}
		}
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return KeyboardKey(k), nil
}
