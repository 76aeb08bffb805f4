package input

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Frames int    `json:"frames,omitempty"`

	key Key
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a scripted sequence of key events through an
// EbitenBackend's inject queue, one step per tick. Attach it with
// EbitenBackend.SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script:
//
//	{"steps": [
//		{"action": "press", "key": "ArrowUp"},
//		{"action": "wait", "frames": 3},
//		{"action": "release", "key": "ArrowUp"},
//		{"action": "tap", "key": "Gamepad:RightBottom"}
//	]}
//
// Key names are resolved with ParseKey.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		switch st.Action {
		case "press", "release", "tap":
			k, err := ParseKey(st.Key)
			if err != nil {
				return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
			}
			st.key = k
		case "wait":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Called from EbitenBackend.Poll.
func (r *ScriptRunner) step(b *EbitenBackend) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(b.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		b.InjectPress(st.key)
	case "release":
		b.InjectRelease(st.key)
	case "tap":
		b.InjectTap(st.key)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(b.injectQueue) == 0 {
		r.done = true
	}
}
