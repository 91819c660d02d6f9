package x11

import "github.com/go-theft-auto/window"

// KeyEvent is a core KeyPress or KeyRelease.
type KeyEvent struct {
	Keycode uint8
	Press   bool
}

// ButtonEvent is a core ButtonPress or ButtonRelease. Buttons 4 to 7 are
// wheel steps.
type ButtonEvent struct {
	Button uint8
	Press  bool
	X, Y   int
}

// Normalizer turns X11 input into window events. Modifier flags come from
// the keys it has seen, not from the event state mask.
//
// Normalizer is not synchronized.
type Normalizer struct {
	kb    *Keyboard
	state *window.InputState
}

// NewNormalizer creates a normalizer resolving keys through kb.
func NewNormalizer(kb *Keyboard) *Normalizer {
	return &Normalizer{kb: kb, state: window.NewInputState()}
}

// State returns the key and button state built from the events so far.
func (n *Normalizer) State() *window.InputState { return n.state }

// Key converts a key event.
func (n *Normalizer) Key(ev KeyEvent) window.Event {
	code := n.kb.KeyFromKeycode(ev.Keycode)
	scan := n.kb.Mapping().Scancode(ev.Keycode)
	return n.state.KeyTransition(code, scan, ev.Press)
}

// Button converts a button event. Wheel releases produce nothing.
func (n *Normalizer) Button(ev ButtonEvent) (window.Event, bool) {
	pos := window.Vector2i{X: ev.X, Y: ev.Y}
	n.state.Mouse = pos

	switch ev.Button {
	case 4, 5, 6, 7:
		if !ev.Press {
			return nil, false
		}
		wheel := window.WheelVertical
		if ev.Button >= 6 {
			wheel = window.WheelHorizontal
		}
		delta := float32(1)
		if ev.Button == 5 || ev.Button == 7 {
			delta = -1
		}
		return window.MouseWheelScrolled{Wheel: wheel, Delta: delta, Position: pos}, true
	}

	button, ok := mouseButton(ev.Button)
	if !ok {
		return nil, false
	}
	n.state.SetMouseButton(button, ev.Press)
	if ev.Press {
		return window.MouseButtonPressed{Button: button, Position: pos}, true
	}
	return window.MouseButtonReleased{Button: button, Position: pos}, true
}

// Motion converts a pointer motion.
func (n *Normalizer) Motion(x, y int) window.Event {
	n.state.Mouse = window.Vector2i{X: x, Y: y}
	return window.MouseMoved{Position: n.state.Mouse}
}

func mouseButton(b uint8) (window.MouseButton, bool) {
	switch b {
	case 1:
		return window.MouseButtonLeft, true
	case 2:
		return window.MouseButtonMiddle, true
	case 3:
		return window.MouseButtonRight, true
	case 8:
		return window.MouseButtonExtra1, true
	case 9:
		return window.MouseButtonExtra2, true
	}
	return 0, false
}
