package emblem

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/emblem/input"
)

// UI action names.
const (
	ActionMoveUp    = "Ui:Move Up"
	ActionMoveDown  = "Ui:Move Down"
	ActionMoveLeft  = "Ui:Move Left"
	ActionMoveRight = "Ui:Move Right"
	ActionSelect    = "Ui:Select"
	ActionBack      = "Ui:Back"
)

// KeyboardBindings is the default keyboard control scheme.
func KeyboardBindings() []input.Binding {
	return []input.Binding{
		{Action: ActionMoveUp, Key: input.KeyboardKey(ebiten.KeyArrowUp)},
		{Action: ActionMoveDown, Key: input.KeyboardKey(ebiten.KeyArrowDown)},
		{Action: ActionMoveLeft, Key: input.KeyboardKey(ebiten.KeyArrowLeft)},
		{Action: ActionMoveRight, Key: input.KeyboardKey(ebiten.KeyArrowRight)},
		{Action: ActionSelect, Key: input.KeyboardKey(ebiten.KeyEnter)},
		{Action: ActionBack, Key: input.KeyboardKey(ebiten.KeyEscape)},
	}
}

// GamepadBindings is the control scheme for standard-layout gamepads.
func GamepadBindings() []input.Binding {
	return []input.Binding{
		{Action: ActionMoveUp, Key: input.GamepadButton(ebiten.StandardGamepadButtonLeftTop)},
		{Action: ActionMoveDown, Key: input.GamepadButton(ebiten.StandardGamepadButtonLeftBottom)},
		{Action: ActionMoveLeft, Key: input.GamepadButton(ebiten.StandardGamepadButtonLeftLeft)},
		{Action: ActionMoveRight, Key: input.GamepadButton(ebiten.StandardGamepadButtonLeftRight)},
		{Action: ActionSelect, Key: input.GamepadButton(ebiten.StandardGamepadButtonRightBottom)},
		{Action: ActionBack, Key: input.GamepadButton(ebiten.StandardGamepadButtonRightRight)},
	}
}

// ControlScheme returns the bindings for a scheme name: "keyboard" (also the
// empty name) or "gamepad".
func ControlScheme(name string) ([]input.Binding, error) {
	switch name {
	case "", "keyboard":
		return KeyboardBindings(), nil
	case "gamepad":
		return GamepadBindings(), nil
	default:
		return nil, fmt.Errorf("unknown control scheme %q", name)
	}
}
