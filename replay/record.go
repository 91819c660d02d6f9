// Package replay records event streams to msgpack and plays them back as an
// event source, so input sessions can be captured once and fed to tests or
// tools later.
package replay

import (
	"fmt"

	"github.com/go-theft-auto/window"
)

var logger = window.Logger("replay")

// Kind tags the event type of a Record.
type Kind uint8

const (
	KindKeyPressed Kind = iota + 1
	KindKeyReleased
	KindTextEntered
	KindMouseMoved
	KindMouseButtonPressed
	KindMouseButtonReleased
	KindMouseWheelScrolled
	KindTouchBegan
	KindTouchMoved
	KindTouchEnded
)

// Modifier bits of Record.Mods.
const (
	ModAlt uint8 = 1 << iota
	ModControl
	ModShift
	ModSystem
)

// Record is the stored form of one event. Fields an event kind does not use
// stay zero and are omitted from the encoding.
type Record struct {
	Kind Kind `msgpack:"k"`
	// Offset is the time since recording started, in microseconds.
	Offset int64 `msgpack:"t,omitempty"`

	Code     int     `msgpack:"c,omitempty"`
	Scancode int     `msgpack:"s,omitempty"`
	Mods     uint8   `msgpack:"m,omitempty"`
	Unicode  rune    `msgpack:"u,omitempty"`
	Button   int     `msgpack:"b,omitempty"`
	Wheel    int     `msgpack:"w,omitempty"`
	Delta    float32 `msgpack:"d,omitempty"`
	Finger   uint    `msgpack:"f,omitempty"`
	X        int     `msgpack:"x,omitempty"`
	Y        int     `msgpack:"y,omitempty"`
}

// NewRecord converts an event. It fails only for event types it does not
// know.
func NewRecord(ev window.Event) (Record, error) {
	switch e := ev.(type) {
	case window.KeyPressed:
		return keyRecord(KindKeyPressed, e.KeyEvent), nil
	case window.KeyReleased:
		return keyRecord(KindKeyReleased, e.KeyEvent), nil
	case window.TextEntered:
		return Record{Kind: KindTextEntered, Unicode: e.Unicode}, nil
	case window.MouseMoved:
		return Record{Kind: KindMouseMoved, X: e.Position.X, Y: e.Position.Y}, nil
	case window.MouseButtonPressed:
		return Record{Kind: KindMouseButtonPressed, Button: int(e.Button), X: e.Position.X, Y: e.Position.Y}, nil
	case window.MouseButtonReleased:
		return Record{Kind: KindMouseButtonReleased, Button: int(e.Button), X: e.Position.X, Y: e.Position.Y}, nil
	case window.MouseWheelScrolled:
		return Record{Kind: KindMouseWheelScrolled, Wheel: int(e.Wheel), Delta: e.Delta, X: e.Position.X, Y: e.Position.Y}, nil
	case window.TouchBegan:
		return Record{Kind: KindTouchBegan, Finger: e.Finger, X: e.Position.X, Y: e.Position.Y}, nil
	case window.TouchMoved:
		return Record{Kind: KindTouchMoved, Finger: e.Finger, X: e.Position.X, Y: e.Position.Y}, nil
	case window.TouchEnded:
		return Record{Kind: KindTouchEnded, Finger: e.Finger, X: e.Position.X, Y: e.Position.Y}, nil
	}
	return Record{}, fmt.Errorf("unsupported event type %T", ev)
}

func keyRecord(kind Kind, k window.KeyEvent) Record {
	r := Record{Kind: kind, Code: int(k.Code), Scancode: int(k.Scancode)}
	if k.Alt {
		r.Mods |= ModAlt
	}
	if k.Control {
		r.Mods |= ModControl
	}
	if k.Shift {
		r.Mods |= ModShift
	}
	if k.System {
		r.Mods |= ModSystem
	}
	return r
}

func (r Record) keyEvent() window.KeyEvent {
	return window.KeyEvent{
		Code:     window.Key(r.Code),
		Scancode: window.Scancode(r.Scancode),
		Alt:      r.Mods&ModAlt != 0,
		Control:  r.Mods&ModControl != 0,
		Shift:    r.Mods&ModShift != 0,
		System:   r.Mods&ModSystem != 0,
	}
}

// Event converts the record back.
func (r Record) Event() (window.Event, error) {
	pos := window.Vector2i{X: r.X, Y: r.Y}
	switch r.Kind {
	case KindKeyPressed:
		return window.KeyPressed{KeyEvent: r.keyEvent()}, nil
	case KindKeyReleased:
		return window.KeyReleased{KeyEvent: r.keyEvent()}, nil
	case KindTextEntered:
		return window.TextEntered{Unicode: r.Unicode}, nil
	case KindMouseMoved:
		return window.MouseMoved{Position: pos}, nil
	case KindMouseButtonPressed:
		return window.MouseButtonPressed{Button: window.MouseButton(r.Button), Position: pos}, nil
	case KindMouseButtonReleased:
		return window.MouseButtonReleased{Button: window.MouseButton(r.Button), Position: pos}, nil
	case KindMouseWheelScrolled:
		return window.MouseWheelScrolled{Wheel: window.Wheel(r.Wheel), Delta: r.Delta, Position: pos}, nil
	case KindTouchBegan:
		return window.TouchBegan{Finger: r.Finger, Position: pos}, nil
	case KindTouchMoved:
		return window.TouchMoved{Finger: r.Finger, Position: pos}, nil
	case KindTouchEnded:
		return window.TouchEnded{Finger: r.Finger, Position: pos}, nil
	}
	return nil, fmt.Errorf("unknown record kind %d", r.Kind)
}
