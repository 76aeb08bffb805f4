package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Backend delivers raw press and release events to a Map.
type Backend interface {
	// Poll reports every press and release observed since the previous call.
	Poll(m *Map)
}

// Tick runs one input tick: the backend delivers its pending events, then the
// Map is acknowledged. Gameplay reads with Map.Get after Tick returns.
func Tick(b Backend, m *Map) {
	if b != nil {
		b.Poll(m)
	}
	m.Acknowledge()
}

// EbitenBackend reads keyboard keys and standard-layout gamepad buttons from
// ebiten. It must be polled from within ebiten's Update.
//
// Synthetic events queued with InjectPress and friends take priority: while
// the queue is non-empty, one event is delivered per Poll and the devices are
// not read.
type EbitenBackend struct {
	injectQueue []syntheticKeyEvent
	script      *ScriptRunner

	keyBuf     []ebiten.Key
	gamepadBuf []ebiten.GamepadID
}

// NewEbitenBackend creates a backend with empty buffers.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{}
}

// SetScript attaches a ScriptRunner. The runner advances once per Poll,
// before events are delivered.
func (b *EbitenBackend) SetScript(r *ScriptRunner) {
	b.script = r
}

// Poll implements Backend.
func (b *EbitenBackend) Poll(m *Map) {
	if b.script != nil {
		b.script.step(b)
	}
	if b.processInjected(m) {
		return
	}
	b.pollKeyboard(m)
	b.pollGamepads(m)
}

func (b *EbitenBackend) pollKeyboard(m *Map) {
	b.keyBuf = inpututil.AppendJustPressedKeys(b.keyBuf[:0])
	for _, k := range b.keyBuf {
		m.Press(KeyboardKey(k))
	}
	b.keyBuf = inpututil.AppendJustReleasedKeys(b.keyBuf[:0])
	for _, k := range b.keyBuf {
		m.Release(KeyboardKey(k))
	}
}

func (b *EbitenBackend) pollGamepads(m *Map) {
	b.gamepadBuf = ebiten.AppendGamepadIDs(b.gamepadBuf[:0])
	for _, id := range b.gamepadBuf {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for btn := ebiten.StandardGamepadButton(0); btn <= ebiten.StandardGamepadButtonMax; btn++ {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				m.Press(GamepadButton(btn))
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, btn) {
				m.Release(GamepadButton(btn))
			}
		}
	}
}
