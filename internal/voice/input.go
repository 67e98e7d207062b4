// Package voice adapts a speech-to-text engine to a text field's change contract.
package voice

import (
	"strings"
	"sync"
)

// State is the voice input's position in its Unsupported/Idle/Listening cycle.
type State int

const (
	// StateUnsupported is terminal: no engine was available when the input was created.
	StateUnsupported State = iota
	StateIdle
	StateListening
)

func (s State) String() string {
	switch s {
	case StateUnsupported:
		return "unsupported"
	case StateIdle:
		return "idle"
	case StateListening:
		return "listening"
	default:
		return "unknown"
	}
}

// Segment is one recognition result. Interim segments may still change; final ones will not.
type Segment struct {
	Text  string `json:"text"`
	Final bool   `json:"final"`
}

// Engine is a speech recognizer that can be started and stopped.
type Engine interface {
	Start() error
	Stop() error
}

// Input is the per-field voice state machine. It is safe for concurrent use.
type Input struct {
	mu     sync.Mutex
	engine Engine
	state  State
}

// NewInput checks for support once: a nil engine makes the input permanently unsupported.
func NewInput(engine Engine) *Input {
	in := &Input{engine: engine, state: StateUnsupported}
	if engine != nil {
		in.state = StateIdle
	}
	return in
}

// State reports the current state.
func (in *Input) State() State {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state
}

// Toggle starts listening from Idle and stops from Listening.
// An engine that fails to start leaves the input Idle.
func (in *Input) Toggle() State {
	in.mu.Lock()
	defer in.mu.Unlock()

	switch in.state {
	case StateIdle:
		if err := in.engine.Start(); err == nil {
			in.state = StateListening
		}
	case StateListening:
		_ = in.engine.Stop()
		in.state = StateIdle
	}
	return in.state
}

// End handles end-of-speech and engine errors alike: the engine is stopped and
// the input returns to Idle. The error, if any, is swallowed.
func (in *Input) End(error) State {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state == StateListening {
		_ = in.engine.Stop()
		in.state = StateIdle
	}
	return in.state
}

// Feed appends the final segments to current and reports whether anything changed.
// Nothing is appended unless the input is listening.
func (in *Input) Feed(current string, segs []Segment) (string, bool) {
	in.mu.Lock()
	listening := in.state == StateListening
	in.mu.Unlock()
	if !listening {
		return current, false
	}

	changed := false
	for _, seg := range segs {
		if !seg.Final {
			continue
		}
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		current = Append(current, text)
		changed = true
	}
	return current, changed
}

// Append joins text onto value with a single space, or returns text when value is empty.
func Append(value, text string) string {
	if value == "" {
		return text
	}
	return value + " " + text
}
