package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/webgl-scenes/internal/engine/input"
)

// Script errors.
var (
	ErrUnknownEvent = errors.New("unknown event type")
	ErrUnknownKey   = errors.New("unknown key")
	ErrBadFrame     = errors.New("invalid frame")
)

// Script is a recorded input session.
//
//	frames:
//	  - dt: 0.016
//	    repeat: 60
//	    events:
//	      - {type: keydown, key: w}
//	      - {type: mouse, dx: 12, dy: -3}
type Script struct {
	Frames []ScriptFrame `yaml:"frames"`
}

// ScriptFrame is one or more frames of equal duration. Events apply before
// the first repetition only.
type ScriptFrame struct {
	DT     float32       `yaml:"dt"`
	Repeat int           `yaml:"repeat"`
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent is the YAML form of an input.Event.
type ScriptEvent struct {
	Type string  `yaml:"type"`
	Key  string  `yaml:"key"`
	DX   float32 `yaml:"dx"`
	DY   float32 `yaml:"dy"`
}

// Event converts the YAML event into an input.Event.
func (e ScriptEvent) Event() (input.Event, error) {
	var ev input.Event
	switch e.Type {
	case "keydown":
		ev.Type = input.EventKeyDown
	case "keyup":
		ev.Type = input.EventKeyUp
	case "mouse":
		return input.Event{Type: input.EventMouseMove, DX: e.DX, DY: e.DY}, nil
	case "viewmode":
		return input.Event{Type: input.EventToggleViewMode}, nil
	case "blur":
		return input.Event{Type: input.EventBlur}, nil
	default:
		return ev, fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
	}

	ev.Key = input.KeyFromName(e.Key)
	if ev.Key == input.KeyUnknown {
		return ev, fmt.Errorf("%w: %q", ErrUnknownKey, e.Key)
	}
	return ev, nil
}

// events converts all events of the frame.
func (f ScriptFrame) events() ([]input.Event, error) {
	events := make([]input.Event, 0, len(f.Events))
	for _, se := range f.Events {
		ev, err := se.Event()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// ParseScript decodes and validates a script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}

	for i := range s.Frames {
		f := &s.Frames[i]
		if f.DT < 0 {
			return nil, fmt.Errorf("frame %d: %w: negative dt", i, ErrBadFrame)
		}
		if f.Repeat < 0 {
			return nil, fmt.Errorf("frame %d: %w: negative repeat", i, ErrBadFrame)
		}
		if f.Repeat == 0 {
			f.Repeat = 1
		}
		if _, err := f.events(); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return &s, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ParseScript(data)
}
