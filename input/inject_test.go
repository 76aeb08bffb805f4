package input

import "testing"

func TestInjectPressRelease(t *testing.T) {
	m := NewMap(Binding{"Jump", keyJump})
	b := NewEbitenBackend()

	b.InjectPress(keyJump)
	b.InjectRelease(keyJump)
	if b.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", b.Pending())
	}

	Tick(b, m)
	if s := m.Get("Jump"); s != StateNew {
		t.Fatalf("after press tick: %v, want New", s)
	}
	if b.Pending() != 1 {
		t.Fatalf("expected 1 queued event, got %d", b.Pending())
	}

	Tick(b, m)
	if s := m.Get("Jump"); s != StateReleased {
		t.Fatalf("after release tick: %v, want Released", s)
	}
	if b.Pending() != 0 {
		t.Fatalf("queue should be drained, got %d", b.Pending())
	}
}

func TestInjectTapQueuesTwoEvents(t *testing.T) {
	b := NewEbitenBackend()
	b.InjectTap(keyUp)
	if b.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", b.Pending())
	}
	if !b.injectQueue[0].pressed || b.injectQueue[1].pressed {
		t.Error("tap should queue press then release")
	}
}

func TestInjectUntrackedKeyDropped(t *testing.T) {
	m := NewMap(Binding{"Jump", keyJump})
	b := NewEbitenBackend()
	b.InjectPress(keyW)

	if !b.processInjected(m) {
		t.Fatal("expected the injected event to be consumed")
	}
	if m.Tracked(keyW) {
		t.Error("untracked key must stay untracked")
	}
	if s := m.Get("Jump"); s != StateNone {
		t.Errorf("Get(Jump) = %v, want None", s)
	}
}

func TestProcessInjectedEmptyQueue(t *testing.T) {
	b := NewEbitenBackend()
	if b.processInjected(NewMap()) {
		t.Error("empty queue should not report a consumed event")
	}
}

type recordingBackend struct {
	polls int
	press []Key
}

func (r *recordingBackend) Poll(m *Map) {
	r.polls++
	for _, k := range r.press {
		m.Press(k)
	}
	r.press = nil
}

func TestTickPollsThenAcknowledges(t *testing.T) {
	m := NewMap(Binding{"Jump", keyJump})
	rb := &recordingBackend{press: []Key{keyJump}}

	Tick(rb, m)
	if rb.polls != 1 {
		t.Fatalf("polls = %d, want 1", rb.polls)
	}
	// Delivered and acknowledged once in the same tick: still New.
	if s := m.Get("Jump"); s != StateNew {
		t.Fatalf("tick 1: %v, want New", s)
	}
	Tick(rb, m)
	if s := m.Get("Jump"); s != StateHeld {
		t.Fatalf("tick 2: %v, want Held", s)
	}
}

func TestTickNilBackend(t *testing.T) {
	m := NewMap(Binding{"Jump", keyJump})
	m.Press(keyJump)
	Tick(nil, m)
	Tick(nil, m)
	if s := m.Get("Jump"); s != StateHeld {
		t.Errorf("Get(Jump) = %v, want Held", s)
	}
}
