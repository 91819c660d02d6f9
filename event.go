package window

import "fmt"

// Event is one normalized input notification. The concrete type tells which
// kind it is; switch on it:
//
//	switch e := ev.(type) {
//	case window.KeyPressed:
//	    fmt.Println(e.Code, e.Scancode)
//	case window.TextEntered:
//	    fmt.Println(string(e.Unicode))
//	}
type Event interface {
	isEvent()
}

// KeyEvent carries the key identity of a press or release. Backends that
// only know one of Code and Scancode leave the other at its Unknown value.
type KeyEvent struct {
	Code     Key
	Scancode Scancode
	Alt      bool
	Control  bool
	Shift    bool
	System   bool
}

// KeyPressed is sent when a key goes down.
type KeyPressed struct{ KeyEvent }

// KeyReleased is sent when a key goes up.
type KeyReleased struct{ KeyEvent }

// TextEntered carries one typed Unicode code point.
type TextEntered struct {
	Unicode rune
}

// MouseMoved is sent when the cursor moves.
type MouseMoved struct {
	Position Vector2i
}

// MouseButtonPressed is sent when a mouse button goes down.
type MouseButtonPressed struct {
	Button   MouseButton
	Position Vector2i
}

// MouseButtonReleased is sent when a mouse button goes up.
type MouseButtonReleased struct {
	Button   MouseButton
	Position Vector2i
}

// MouseWheelScrolled is sent when a wheel moves. Delta is positive up/left.
type MouseWheelScrolled struct {
	Wheel    Wheel
	Delta    float32
	Position Vector2i
}

// TouchBegan is sent when a finger touches the screen.
type TouchBegan struct {
	Finger   uint
	Position Vector2i
}

// TouchMoved is sent when a finger moves.
type TouchMoved struct {
	Finger   uint
	Position Vector2i
}

// TouchEnded is sent when a finger leaves the screen.
type TouchEnded struct {
	Finger   uint
	Position Vector2i
}

func (KeyPressed) isEvent()          {}
func (KeyReleased) isEvent()         {}
func (TextEntered) isEvent()         {}
func (MouseMoved) isEvent()          {}
func (MouseButtonPressed) isEvent()  {}
func (MouseButtonReleased) isEvent() {}
func (MouseWheelScrolled) isEvent()  {}
func (TouchBegan) isEvent()          {}
func (TouchMoved) isEvent()          {}
func (TouchEnded) isEvent()          {}

// FormatEvent renders an event on one line for logs and diagnostics.
func FormatEvent(ev Event) string {
	switch e := ev.(type) {
	case KeyPressed:
		return "KeyPressed " + formatKey(e.KeyEvent)
	case KeyReleased:
		return "KeyReleased " + formatKey(e.KeyEvent)
	case TextEntered:
		return fmt.Sprintf("TextEntered U+%04X %q", e.Unicode, e.Unicode)
	case MouseMoved:
		return fmt.Sprintf("MouseMoved %d,%d", e.Position.X, e.Position.Y)
	case MouseButtonPressed:
		return fmt.Sprintf("MouseButtonPressed %s at %d,%d", e.Button, e.Position.X, e.Position.Y)
	case MouseButtonReleased:
		return fmt.Sprintf("MouseButtonReleased %s at %d,%d", e.Button, e.Position.X, e.Position.Y)
	case MouseWheelScrolled:
		return fmt.Sprintf("MouseWheelScrolled %s %+.2f at %d,%d", e.Wheel, e.Delta, e.Position.X, e.Position.Y)
	case TouchBegan:
		return fmt.Sprintf("TouchBegan finger=%d at %d,%d", e.Finger, e.Position.X, e.Position.Y)
	case TouchMoved:
		return fmt.Sprintf("TouchMoved finger=%d at %d,%d", e.Finger, e.Position.X, e.Position.Y)
	case TouchEnded:
		return fmt.Sprintf("TouchEnded finger=%d at %d,%d", e.Finger, e.Position.X, e.Position.Y)
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%T", ev)
}

func formatKey(k KeyEvent) string {
	mods := ""
	if k.Control {
		mods += "Ctrl+"
	}
	if k.Alt {
		mods += "Alt+"
	}
	if k.Shift {
		mods += "Shift+"
	}
	if k.System {
		mods += "Sys+"
	}
	return fmt.Sprintf("%s%s (scan %s)", mods, k.Code, k.Scancode)
}
