// Package term turns the key and mouse events of a tcell screen into window
// events. Terminals report neither key releases nor physical positions:
// every key event is a KeyPressed with Scancode Unknown, and only the
// modifiers a terminal encodes are tracked as held.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/window"
)

var logger = window.Logger("term")

// Screen is the part of tcell.Screen the backend reads.
type Screen interface {
	PollEvent() tcell.Event
	HasPendingEvent() bool
}

// Terminal implements window.Keyboard, window.Pointer and
// window.EventSource over a tcell screen. The screen must have mouse
// reporting enabled for mouse events to arrive.
type Terminal struct {
	screen  Screen
	state   *window.InputState
	queue   *window.EventQueue
	buttons tcell.ButtonMask
	resize  func(width, height int)
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithQueueCapacity bounds the event queue.
func WithQueueCapacity(n int) Option {
	return func(t *Terminal) { t.queue = window.NewEventQueue(n) }
}

// WithResizeHandler is called when the screen changes size.
func WithResizeHandler(fn func(width, height int)) Option {
	return func(t *Terminal) { t.resize = fn }
}

// New reads events from screen.
func New(screen Screen, opts ...Option) *Terminal {
	t := &Terminal{
		screen: screen,
		state:  window.NewInputState(),
		queue:  window.NewEventQueue(window.DefaultQueueCapacity),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// PollEvent returns the next event without blocking.
func (t *Terminal) PollEvent() (window.Event, bool) {
	for {
		if ev, ok := t.queue.Pop(); ok {
			return ev, true
		}
		if !t.screen.HasPendingEvent() {
			return nil, false
		}
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil, false
		}
		t.Handle(ev)
	}
}

// Dropped returns how many events were lost to a full queue.
func (t *Terminal) Dropped() int { return t.queue.Dropped() }

// Handle converts one tcell event. It reports whether the event was a key
// or mouse event.
func (t *Terminal) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.key(ev)
	case *tcell.EventMouse:
		t.mouse(ev)
	case *tcell.EventResize:
		if t.resize != nil {
			t.resize(ev.Size())
		}
		return false
	default:
		return false
	}
	return true
}

func (t *Terminal) modifiers(m tcell.ModMask) {
	t.state.SetKey(window.KeyLShift, m&tcell.ModShift != 0)
	t.state.SetKey(window.KeyLControl, m&tcell.ModCtrl != 0)
	t.state.SetKey(window.KeyLAlt, m&tcell.ModAlt != 0)
	t.state.SetKey(window.KeyLSystem, m&tcell.ModMeta != 0)
}

func (t *Terminal) key(ev *tcell.EventKey) {
	mods := ev.Modifiers()
	code, text := translateKey(ev.Key(), ev.Rune())

	switch k := ev.Key(); {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && code >= window.KeyA && code <= window.KeyZ,
		k == tcell.KeyCtrlSpace:
		mods |= tcell.ModCtrl
	case k == tcell.KeyBacktab:
		mods |= tcell.ModShift
	}
	t.modifiers(mods)

	if code == window.KeyUnknown && text == 0 {
		logger.Debug("unmapped terminal key", "key", ev.Name())
	}
	t.queue.Push(window.KeyPressed{KeyEvent: t.state.NewKeyEvent(code, window.ScanUnknown)})
	if text != 0 && mods&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		t.queue.Push(window.TextEntered{Unicode: text})
	}
}

// translateKey maps a tcell key to a Key and the character it types, 0 for
// none. Control chords come back as their letter.
func translateKey(k tcell.Key, r rune) (window.Key, rune) {
	switch {
	case k == tcell.KeyRune:
		return window.KeyFromRune(r), r
	case k >= tcell.KeyF1 && k <= tcell.KeyF15:
		return window.KeyF1 + window.Key(k-tcell.KeyF1), 0
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ &&
		k != tcell.KeyBackspace && k != tcell.KeyTab && k != tcell.KeyEnter:
		return window.KeyA + window.Key(k-tcell.KeyCtrlA), 0
	}

	switch k {
	case tcell.KeyCtrlSpace:
		return window.KeySpace, 0
	case tcell.KeyEnter:
		return window.KeyEnter, '\r'
	case tcell.KeyTab, tcell.KeyBacktab:
		return window.KeyTab, '\t'
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return window.KeyBackspace, '\b'
	case tcell.KeyEscape:
		return window.KeyEscape, 0
	case tcell.KeyDelete:
		return window.KeyDelete, 0
	case tcell.KeyInsert:
		return window.KeyInsert, 0
	case tcell.KeyHome:
		return window.KeyHome, 0
	case tcell.KeyEnd:
		return window.KeyEnd, 0
	case tcell.KeyPgUp:
		return window.KeyPageUp, 0
	case tcell.KeyPgDn:
		return window.KeyPageDown, 0
	case tcell.KeyUp:
		return window.KeyUp, 0
	case tcell.KeyDown:
		return window.KeyDown, 0
	case tcell.KeyLeft:
		return window.KeyLeft, 0
	case tcell.KeyRight:
		return window.KeyRight, 0
	case tcell.KeyPause:
		return window.KeyPause, 0
	}
	return window.KeyUnknown, 0
}

var buttonMasks = [window.MouseButtonCount]tcell.ButtonMask{
	window.MouseButtonLeft:   tcell.ButtonPrimary,
	window.MouseButtonRight:  tcell.ButtonSecondary,
	window.MouseButtonMiddle: tcell.ButtonMiddle,
	window.MouseButtonExtra1: tcell.Button4,
	window.MouseButtonExtra2: tcell.Button5,
}

// mouse derives button transitions from the change in the button mask,
// since terminals report the mask rather than presses and releases.
func (t *Terminal) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := window.Vector2i{X: x, Y: y}
	t.modifiers(ev.Modifiers())

	if pos != t.state.Mouse {
		t.state.Mouse = pos
		t.queue.Push(window.MouseMoved{Position: pos})
	}

	mask := ev.Buttons()
	for b, m := range buttonMasks {
		was, is := t.buttons&m != 0, mask&m != 0
		if was == is {
			continue
		}
		button := window.MouseButton(b)
		t.state.SetMouseButton(button, is)
		if is {
			t.queue.Push(window.MouseButtonPressed{Button: button, Position: pos})
		} else {
			t.queue.Push(window.MouseButtonReleased{Button: button, Position: pos})
		}
	}
	t.buttons = mask &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	switch {
	case mask&tcell.WheelUp != 0:
		t.queue.Push(window.MouseWheelScrolled{Wheel: window.WheelVertical, Delta: 1, Position: pos})
	case mask&tcell.WheelDown != 0:
		t.queue.Push(window.MouseWheelScrolled{Wheel: window.WheelVertical, Delta: -1, Position: pos})
	}
	switch {
	case mask&tcell.WheelLeft != 0:
		t.queue.Push(window.MouseWheelScrolled{Wheel: window.WheelHorizontal, Delta: 1, Position: pos})
	case mask&tcell.WheelRight != 0:
		t.queue.Push(window.MouseWheelScrolled{Wheel: window.WheelHorizontal, Delta: -1, Position: pos})
	}
}

// IsKeyPressed reports the modifiers of the last event. Other keys never
// read as held.
func (t *Terminal) IsKeyPressed(key window.Key) bool { return t.state.KeyDown(key) }

// IsScancodePressed always reports false.
func (t *Terminal) IsScancodePressed(window.Scancode) bool { return false }

// Localize always returns KeyUnknown: the terminal hides the layout.
func (t *Terminal) Localize(window.Scancode) window.Key { return window.KeyUnknown }

// Delocalize always returns ScanUnknown.
func (t *Terminal) Delocalize(window.Key) window.Scancode { return window.ScanUnknown }

// Description returns the English name of scan.
func (t *Terminal) Description(scan window.Scancode) string {
	return window.DefaultDescription(scan)
}

// IsMouseButtonPressed reports the button state of the last mouse event.
func (t *Terminal) IsMouseButtonPressed(button window.MouseButton) bool {
	return t.state.MouseDown(button)
}

// MousePosition returns the cell of the last mouse event.
func (t *Terminal) MousePosition() window.Vector2i { return t.state.Mouse }

func (t *Terminal) IsTouchDown(uint) bool              { return false }
func (t *Terminal) TouchPosition(uint) window.Vector2i { return window.Vector2i{} }

var (
	_ window.Keyboard    = (*Terminal)(nil)
	_ window.Pointer     = (*Terminal)(nil)
	_ window.EventSource = (*Terminal)(nil)
	_ Screen             = tcell.Screen(nil)
)
