package input

// syntheticKeyEvent is a single injected key event.
type syntheticKeyEvent struct {
	key     Key
	pressed bool
}

// InjectPress queues a press of key. The event is delivered on a later Poll.
func (b *EbitenBackend) InjectPress(key Key) {
	b.injectQueue = append(b.injectQueue, syntheticKeyEvent{key: key, pressed: true})
}

// InjectRelease queues a release of key.
func (b *EbitenBackend) InjectRelease(key Key) {
	b.injectQueue = append(b.injectQueue, syntheticKeyEvent{key: key, pressed: false})
}

// InjectTap queues a press followed by a release. Consumes two polls.
func (b *EbitenBackend) InjectTap(key Key) {
	b.InjectPress(key)
	b.InjectRelease(key)
}

// Pending returns the number of queued synthetic events.
func (b *EbitenBackend) Pending() int {
	return len(b.injectQueue)
}

// processInjected pops one event from the inject queue and delivers it.
// Returns true if an event was consumed (device input should be skipped).
func (b *EbitenBackend) processInjected(m *Map) bool {
	if len(b.injectQueue) == 0 {
		return false
	}
	evt := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]

	if evt.pressed {
		m.Press(evt.key)
	} else {
		m.Release(evt.key)
	}
	return true
}
