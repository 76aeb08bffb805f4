// Package input maps action names to physical keys and tracks each key with
// an edge-latching state machine.
//
// A [Map] is an owned value. The input layer feeds it raw events through a
// [Backend] and calls [Map.Acknowledge] once per tick; gameplay then reads
// action states with [Map.Get]. [Tick] performs both steps in order:
//
//	m := input.NewMap(
//		input.Binding{Action: "Ui:Move Up", Key: input.KeyboardKey(ebiten.KeyArrowUp)},
//		input.Binding{Action: "Ui:Select", Key: input.KeyboardKey(ebiten.KeyEnter)},
//	)
//	backend := input.NewEbitenBackend()
//
//	func (g *Game) Update() error {
//		input.Tick(backend, m)
//		if m.Get("Ui:Select").JustPressed() {
//			// ...
//		}
//		return nil
//	}
//
// # Timing
//
// Press moves a key to [StateNew] and Release to [StateReleased]. Each
// Acknowledge toggles a per-key latch, and the transient state settles into
// [StateHeld] or [StateNone] only on the call that finds the latch set. A
// fresh press is therefore visible as New on the tick it arrives and on the
// following tick. Calling Acknowledge more than once per tick shortens this
// window; skipping it stalls decay.
package input
