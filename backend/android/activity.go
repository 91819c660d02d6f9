// Package android normalizes Android native input events.
//
// The host glue reads each AInputEvent from the activity's input queue, copies
// the fields into a NativeEvent (calling into Java for the Unicode character
// and the scroll axis, which the NDK does not expose) and passes it to
// Activity.Handle. The application reads the results through the
// window.Keyboard, window.Pointer and window.EventSource methods of the same
// Activity.
package android

import (
	"log/slog"
	"sync"

	"github.com/go-theft-auto/window"
)

// Input event types.
const (
	TypeKey    = 1
	TypeMotion = 2
)

// Key actions.
const (
	KeyActionDown     = 0
	KeyActionUp       = 1
	KeyActionMultiple = 2
)

// Motion actions. The pointer index of POINTER_DOWN and POINTER_UP is packed
// into bits 8-15.
const (
	MotionActionDown        = 0
	MotionActionUp          = 1
	MotionActionMove        = 2
	MotionActionCancel      = 3
	MotionActionPointerDown = 5
	MotionActionPointerUp   = 6
	MotionActionScroll      = 8

	motionActionMask  = 0xff
	pointerIndexMask  = 0xff00
	pointerIndexShift = 8
)

// Input sources.
const (
	SourceTouchscreen = 0x1002
	SourceMouse       = 0x2002

	sourceTouchscreen = 0x1000
)

// Meta state bits.
const (
	MetaShiftOn = 0x01
	MetaAltOn   = 0x02
	MetaCtrlOn  = 0x1000
	MetaMetaOn  = 0x10000
)

// PointerData is one pointer of a motion event.
type PointerData struct {
	ID   int32
	X, Y float32
}

// NativeEvent holds the fields of one AInputEvent.
type NativeEvent struct {
	Type        int32
	Source      int32
	Action      int32
	KeyCode     int32
	MetaState   int32
	RepeatCount int32
	// Unicode is KeyEvent.getUnicodeChar(metaState), zero when the key
	// types nothing.
	Unicode rune
	// Characters is KeyEvent.getCharacters() for a MULTIPLE event with
	// an unknown key code.
	Characters string
	Pointers   []PointerData
	// Scroll is MotionEvent.getAxisValue(AXIS_VSCROLL).
	Scroll float32
}

func (e NativeEvent) pointer(i int) (PointerData, bool) {
	if i < 0 || i >= len(e.Pointers) {
		return PointerData{}, false
	}
	return e.Pointers[i], true
}

var logger = window.Logger("android")

// Activity keeps the pointer state of a native activity and the events
// normalized from its input queue. It is safe for concurrent use: Handle
// runs on the looper thread while the application polls.
type Activity struct {
	mu      sync.Mutex
	mouse   window.Vector2i
	buttons [window.MouseButtonCount]bool
	touches map[int32]window.Vector2i
	queue   *window.EventQueue
	pump    func()
	log     *slog.Logger
}

// Option configures an Activity.
type Option func(*Activity)

// WithPump sets a function that dispatches pending looper callbacks. Pointer
// queries call it first so they see the newest state.
func WithPump(pump func()) Option {
	return func(a *Activity) { a.pump = pump }
}

// WithQueueCapacity bounds the event queue.
func WithQueueCapacity(n int) Option {
	return func(a *Activity) { a.queue = window.NewEventQueue(n) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Activity) { a.log = l }
}

// NewActivity creates an empty activity state.
func NewActivity(opts ...Option) *Activity {
	a := &Activity{
		touches: make(map[int32]window.Vector2i),
		queue:   window.NewEventQueue(window.DefaultQueueCapacity),
		log:     logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handle normalizes ev and queues the result. It reports whether the event
// was consumed, the value to pass to AInputQueue_finishEvent.
func (a *Activity) Handle(ev NativeEvent) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch ev.Type {
	case TypeKey:
		if ev.KeyCode == keycodeVolumeUp || ev.KeyCode == keycodeVolumeDown {
			return false
		}
		return a.handleKey(ev)
	case TypeMotion:
		switch ev.Action & motionActionMask {
		case MotionActionScroll:
			return a.handleScroll(ev)
		case MotionActionMove:
			return a.handleMotion(ev)
		case MotionActionDown, MotionActionPointerDown:
			return a.handlePointer(true, ev)
		case MotionActionUp, MotionActionPointerUp, MotionActionCancel:
			return a.handlePointer(false, ev)
		}
	}
	return false
}

func keyEvent(ev NativeEvent) window.KeyEvent {
	return window.KeyEvent{
		Code:     toKey(ev.KeyCode),
		Scancode: window.ScanUnknown,
		Alt:      ev.MetaState&MetaAltOn != 0,
		Control:  ev.MetaState&MetaCtrlOn != 0,
		Shift:    ev.MetaState&MetaShiftOn != 0,
		System:   ev.MetaState&MetaMetaOn != 0,
	}
}

func (a *Activity) handleKey(ev NativeEvent) bool {
	switch ev.Action {
	case KeyActionDown:
		a.queue.Push(window.KeyPressed{KeyEvent: keyEvent(ev)})
		return true
	case KeyActionUp:
		a.queue.Push(window.KeyReleased{KeyEvent: keyEvent(ev)})
		if ev.Unicode != 0 {
			a.queue.Push(window.TextEntered{Unicode: ev.Unicode})
		}
		return true
	case KeyActionMultiple:
		// no separate down/up arrives for these, so both are synthesized
		a.queue.Push(window.KeyPressed{KeyEvent: keyEvent(ev)})
		a.queue.Push(window.KeyReleased{KeyEvent: keyEvent(ev)})

		if ev.KeyCode == keycodeUnknown {
			if ev.Characters == "" {
				return false
			}
			for _, r := range ev.Characters {
				a.queue.Push(window.TextEntered{Unicode: r})
			}
			return true
		}
		if ev.Unicode != 0 {
			for i := int32(0); i < ev.RepeatCount; i++ {
				a.queue.Push(window.TextEntered{Unicode: ev.Unicode})
			}
			return true
		}
	}
	return false
}

func isMouse(source int32) bool { return source == SourceMouse }

func isTouch(source int32) bool { return source&sourceTouchscreen != 0 }

func position(p PointerData) window.Vector2i {
	return window.Vector2i{X: int(p.X), Y: int(p.Y)}
}

func (a *Activity) handleMotion(ev NativeEvent) bool {
	for _, p := range ev.Pointers {
		pos := position(p)
		switch {
		case isMouse(ev.Source):
			a.mouse = pos
			a.queue.Push(window.MouseMoved{Position: pos})
		case isTouch(ev.Source):
			if old, ok := a.touches[p.ID]; ok && old == pos {
				continue
			}
			a.touches[p.ID] = pos
			a.queue.Push(window.TouchMoved{Finger: uint(p.ID), Position: pos})
		}
	}
	return true
}

func (a *Activity) handlePointer(down bool, ev NativeEvent) bool {
	index := int(ev.Action&pointerIndexMask) >> pointerIndexShift
	p, ok := ev.pointer(index)
	if !ok {
		a.log.Debug("pointer index out of range", "index", index, "pointers", len(ev.Pointers))
		return false
	}
	pos := position(p)

	switch {
	case isMouse(ev.Source):
		button := window.MouseButton(p.ID)
		if !button.Valid() {
			a.log.Debug("unsupported mouse button", "id", p.ID)
			return true
		}
		a.buttons[button] = down
		if down {
			a.queue.Push(window.MouseButtonPressed{Button: button, Position: pos})
		} else {
			a.queue.Push(window.MouseButtonReleased{Button: button, Position: pos})
		}
	case isTouch(ev.Source):
		if down {
			a.touches[p.ID] = pos
			a.queue.Push(window.TouchBegan{Finger: uint(p.ID), Position: pos})
		} else {
			delete(a.touches, p.ID)
			a.queue.Push(window.TouchEnded{Finger: uint(p.ID), Position: pos})
		}
	}
	return true
}

func (a *Activity) handleScroll(ev NativeEvent) bool {
	p, _ := ev.pointer(0)
	a.queue.Push(window.MouseWheelScrolled{
		Wheel:    window.WheelVertical,
		Delta:    ev.Scroll,
		Position: position(p),
	})
	return true
}

// PollEvent returns the next normalized event.
func (a *Activity) PollEvent() (window.Event, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.queue.Pop()
}

// Dropped returns how many events were lost to a full queue.
func (a *Activity) Dropped() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.queue.Dropped()
}

func (a *Activity) sync() {
	if a.pump != nil {
		a.pump()
	}
}

// IsKeyPressed always reports false: Android has no key state query.
func (a *Activity) IsKeyPressed(window.Key) bool { return false }

// IsScancodePressed always reports false.
func (a *Activity) IsScancodePressed(window.Scancode) bool { return false }

// Localize always returns KeyUnknown.
func (a *Activity) Localize(window.Scancode) window.Key { return window.KeyUnknown }

// Delocalize always returns ScanUnknown.
func (a *Activity) Delocalize(window.Key) window.Scancode { return window.ScanUnknown }

// Description always returns the empty string.
func (a *Activity) Description(window.Scancode) string { return "" }

// IsMouseButtonPressed reports whether button is held.
func (a *Activity) IsMouseButtonPressed(button window.MouseButton) bool {
	if !button.Valid() {
		return false
	}
	a.sync()
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buttons[button]
}

// MousePosition returns the last mouse position.
func (a *Activity) MousePosition() window.Vector2i {
	a.sync()
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mouse
}

// IsTouchDown reports whether finger is on the screen.
func (a *Activity) IsTouchDown(finger uint) bool {
	a.sync()
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.touches[int32(finger)]
	return ok
}

// TouchPosition returns the last position of finger, the origin if it is not
// down.
func (a *Activity) TouchPosition(finger uint) window.Vector2i {
	a.sync()
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.touches[int32(finger)]
}
