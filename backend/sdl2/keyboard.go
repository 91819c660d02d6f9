// Package sdl2 answers input queries and produces window events from an SDL2
// window. SDL owns the layout: keys are localized with SDL_GetKeyFromScancode
// and held keys read from SDL's keyboard state array.
//
// SDL must be initialized with the video subsystem, and every call made from
// the thread that did it.
package sdl2

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/go-theft-auto/window"
)

var logger = window.Logger("sdl2")

// maxFingers bounds how many simultaneous touches get a finger index.
const maxFingers = 10

// host is the part of SDL the keyboard reads.
type host interface {
	KeyFromScancode(code sdl.Scancode) sdl.Keycode
	ScancodeFromKey(code sdl.Keycode) sdl.Scancode
	KeyName(code sdl.Keycode) string
	KeyboardState() []uint8
	MouseState() (x, y int32, buttons uint32)
	WarpMouse(x, y int32)
	WindowSize() (w, h int32)
	PollEvent() sdl.Event
	ClipboardText() (string, error)
	SetClipboardText(text string) error
}

type windowHost struct{ w *sdl.Window }

func (h windowHost) KeyFromScancode(code sdl.Scancode) sdl.Keycode {
	return sdl.GetKeyFromScancode(code)
}

func (h windowHost) ScancodeFromKey(code sdl.Keycode) sdl.Scancode {
	return sdl.GetScancodeFromKey(code)
}

func (h windowHost) KeyName(code sdl.Keycode) string { return sdl.GetKeyName(code) }
func (h windowHost) KeyboardState() []uint8          { return sdl.GetKeyboardState() }

func (h windowHost) MouseState() (x, y int32, buttons uint32) {
	x, y, state := sdl.GetMouseState()
	return x, y, uint32(state)
}

func (h windowHost) WarpMouse(x, y int32)       { h.w.WarpMouseInWindow(x, y) }
func (h windowHost) WindowSize() (int32, int32) { return h.w.GetSize() }
func (h windowHost) PollEvent() sdl.Event       { return sdl.PollEvent() }

type finger struct {
	id   sdl.FingerID
	down bool
	pos  window.Vector2i
}

// Keyboard is an SDL2 backend. It implements window.Keyboard, window.Pointer,
// window.EventSource and window.Clipboard.
type Keyboard struct {
	host    host
	repeat  bool
	state   *window.InputState
	queue   *window.EventQueue
	fingers [maxFingers]finger
}

// Option configures a Keyboard.
type Option func(*Keyboard)

// WithKeyRepeat sets whether held keys send repeated KeyPressed events. On
// by default.
func WithKeyRepeat(on bool) Option {
	return func(k *Keyboard) { k.repeat = on }
}

// WithQueueCapacity bounds the event queue.
func WithQueueCapacity(n int) Option {
	return func(k *Keyboard) { k.queue = window.NewEventQueue(n) }
}

// New returns a backend reading w. Text input must be started with
// sdl.StartTextInput for TextEntered events to arrive.
func New(w *sdl.Window, opts ...Option) *Keyboard {
	return newKeyboard(windowHost{w}, opts...)
}

func newKeyboard(h host, opts ...Option) *Keyboard {
	k := &Keyboard{
		host:   h,
		repeat: true,
		state:  window.NewInputState(),
		queue:  window.NewEventQueue(window.DefaultQueueCapacity),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Localize returns the key the current layout puts at scan.
func (k *Keyboard) Localize(scan window.Scancode) window.Key {
	if !scan.Valid() || scanToSDL[scan] == sdl.SCANCODE_UNKNOWN {
		return window.KeyUnknown
	}
	return keycodeKey(k.host.KeyFromScancode(scanToSDL[scan]))
}

// Delocalize returns the position producing key in the current layout.
func (k *Keyboard) Delocalize(key window.Key) window.Scancode {
	if !key.Valid() || keyCodes[key] == 0 {
		return window.ScanUnknown
	}
	return toScancode(k.host.ScancodeFromKey(keyCodes[key]))
}

// IsKeyPressed reports whether the position producing key is held.
func (k *Keyboard) IsKeyPressed(key window.Key) bool {
	return k.IsScancodePressed(k.Delocalize(key))
}

// IsScancodePressed reads SDL's keyboard state array.
func (k *Keyboard) IsScancodePressed(scan window.Scancode) bool {
	if !scan.Valid() || scanToSDL[scan] == sdl.SCANCODE_UNKNOWN {
		return false
	}
	state := k.host.KeyboardState()
	i := int(scanToSDL[scan])
	return i < len(state) && state[i] != 0
}

// Description labels printable positions with SDL's key name and the others
// with their English name.
func (k *Keyboard) Description(scan window.Scancode) string {
	if !scan.Valid() || scanToSDL[scan] == sdl.SCANCODE_UNKNOWN {
		return window.DefaultDescription(scan)
	}
	code := k.host.KeyFromScancode(scanToSDL[scan])
	if code&scancodeMask != 0 {
		return window.DefaultDescription(scan)
	}
	return window.Describe(scan, k.host.KeyName(code))
}

// PollEvent returns the next event, converting SDL events until one maps to
// a window event or SDL has none left.
func (k *Keyboard) PollEvent() (window.Event, bool) {
	for {
		if ev, ok := k.queue.Pop(); ok {
			return ev, true
		}
		e := k.host.PollEvent()
		if e == nil {
			return nil, false
		}
		k.Handle(e)
	}
}

// Dropped returns how many events were lost to a full queue.
func (k *Keyboard) Dropped() int { return k.queue.Dropped() }

// Handle converts one SDL event. It reports whether the event was an input
// event; window and application events are left to the caller.
func (k *Keyboard) Handle(e sdl.Event) bool {
	switch e := e.(type) {
	case *sdl.KeyboardEvent:
		k.key(e)
	case *sdl.TextInputEvent:
		for _, r := range textOf(e.Text[:]) {
			k.queue.Push(window.TextEntered{Unicode: r})
		}
	case *sdl.MouseMotionEvent:
		k.state.Mouse = window.Vector2i{X: int(e.X), Y: int(e.Y)}
		k.queue.Push(window.MouseMoved{Position: k.state.Mouse})
	case *sdl.MouseButtonEvent:
		k.button(e)
	case *sdl.MouseWheelEvent:
		k.wheel(e)
	case *sdl.TouchFingerEvent:
		k.touch(e)
	default:
		return false
	}
	return true
}

func (k *Keyboard) key(e *sdl.KeyboardEvent) {
	scan := toScancode(e.Keysym.Scancode)
	code := keycodeKey(e.Keysym.Sym)

	switch {
	case e.Type == sdl.KEYUP:
		k.queue.Push(k.state.KeyTransition(code, scan, false))
	case e.Repeat != 0:
		if k.repeat {
			k.queue.Push(window.KeyPressed{KeyEvent: k.state.NewKeyEvent(code, scan)})
		}
	default:
		k.queue.Push(k.state.KeyTransition(code, scan, true))
	}
}

// textOf decodes SDL's NUL-terminated UTF-8 text buffer.
func textOf(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

func sdlMouseButton(b uint8) (window.MouseButton, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return window.MouseButtonLeft, true
	case sdl.BUTTON_RIGHT:
		return window.MouseButtonRight, true
	case sdl.BUTTON_MIDDLE:
		return window.MouseButtonMiddle, true
	case sdl.BUTTON_X1:
		return window.MouseButtonExtra1, true
	case sdl.BUTTON_X2:
		return window.MouseButtonExtra2, true
	}
	return 0, false
}

func (k *Keyboard) button(e *sdl.MouseButtonEvent) {
	b, ok := sdlMouseButton(e.Button)
	if !ok {
		logger.Debug("unmapped mouse button", "button", e.Button)
		return
	}
	pos := window.Vector2i{X: int(e.X), Y: int(e.Y)}
	k.state.Mouse = pos
	down := e.State == sdl.PRESSED
	k.state.SetMouseButton(b, down)
	if down {
		k.queue.Push(window.MouseButtonPressed{Button: b, Position: pos})
	} else {
		k.queue.Push(window.MouseButtonReleased{Button: b, Position: pos})
	}
}

// wheel reports vertical scrolling positive up and horizontal scrolling
// positive left. SDL counts right as positive.
func (k *Keyboard) wheel(e *sdl.MouseWheelEvent) {
	x, y := e.X, e.Y
	if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
		x, y = -x, -y
	}
	if y != 0 {
		k.queue.Push(window.MouseWheelScrolled{Wheel: window.WheelVertical, Delta: float32(y), Position: k.state.Mouse})
	}
	if x != 0 {
		k.queue.Push(window.MouseWheelScrolled{Wheel: window.WheelHorizontal, Delta: float32(-x), Position: k.state.Mouse})
	}
}

// touch assigns each SDL finger the lowest free index while it is down.
// Positions arrive normalized to the window.
func (k *Keyboard) touch(e *sdl.TouchFingerEvent) {
	w, h := k.host.WindowSize()
	pos := window.Vector2i{X: int(e.X * float32(w)), Y: int(e.Y * float32(h))}

	i := k.fingerIndex(e.FingerID)
	switch e.Type {
	case sdl.FINGERDOWN:
		if i < 0 {
			if i = k.freeFinger(); i < 0 {
				logger.Debug("too many fingers", "max", maxFingers)
				return
			}
		}
		k.fingers[i] = finger{id: e.FingerID, down: true, pos: pos}
		k.queue.Push(window.TouchBegan{Finger: uint(i), Position: pos})
	case sdl.FINGERMOTION:
		if i < 0 || k.fingers[i].pos == pos {
			return
		}
		k.fingers[i].pos = pos
		k.queue.Push(window.TouchMoved{Finger: uint(i), Position: pos})
	case sdl.FINGERUP:
		if i < 0 {
			return
		}
		k.fingers[i] = finger{}
		k.queue.Push(window.TouchEnded{Finger: uint(i), Position: pos})
	}
}

func (k *Keyboard) fingerIndex(id sdl.FingerID) int {
	for i, f := range k.fingers {
		if f.down && f.id == id {
			return i
		}
	}
	return -1
}

func (k *Keyboard) freeFinger() int {
	for i, f := range k.fingers {
		if !f.down {
			return i
		}
	}
	return -1
}

// IsMouseButtonPressed reads SDL's mouse state.
func (k *Keyboard) IsMouseButtonPressed(button window.MouseButton) bool {
	if !button.Valid() {
		return false
	}
	_, _, state := k.host.MouseState()
	return state&buttonMask(button) != 0
}

func buttonMask(button window.MouseButton) uint32 {
	switch button {
	case window.MouseButtonLeft:
		return 1 << (sdl.BUTTON_LEFT - 1)
	case window.MouseButtonMiddle:
		return 1 << (sdl.BUTTON_MIDDLE - 1)
	case window.MouseButtonRight:
		return 1 << (sdl.BUTTON_RIGHT - 1)
	case window.MouseButtonExtra1:
		return 1 << (sdl.BUTTON_X1 - 1)
	case window.MouseButtonExtra2:
		return 1 << (sdl.BUTTON_X2 - 1)
	}
	return 0
}

// MousePosition returns the cursor position relative to the focused window.
func (k *Keyboard) MousePosition() window.Vector2i {
	x, y, _ := k.host.MouseState()
	return window.Vector2i{X: int(x), Y: int(y)}
}

// SetMousePosition warps the cursor inside the window.
func (k *Keyboard) SetMousePosition(pos window.Vector2i) {
	k.host.WarpMouse(int32(pos.X), int32(pos.Y))
}

// IsTouchDown reports whether finger index is on the screen.
func (k *Keyboard) IsTouchDown(index uint) bool {
	return index < maxFingers && k.fingers[index].down
}

// TouchPosition returns where finger index is, or the origin when it is up.
func (k *Keyboard) TouchPosition(index uint) window.Vector2i {
	if !k.IsTouchDown(index) {
		return window.Vector2i{}
	}
	return k.fingers[index].pos
}

// ClipboardText returns the text on the system clipboard, or "" when SDL
// cannot read it.
func (k *Keyboard) ClipboardText() string {
	text, err := k.host.ClipboardText()
	if err != nil {
		logger.Warn("read clipboard", "err", err)
		return ""
	}
	return text
}

// SetClipboardText puts text on the system clipboard.
func (k *Keyboard) SetClipboardText(text string) {
	if err := k.host.SetClipboardText(text); err != nil {
		logger.Warn("write clipboard", "err", err)
	}
}

var (
	_ window.Keyboard    = (*Keyboard)(nil)
	_ window.Pointer     = (*Keyboard)(nil)
	_ window.EventSource = (*Keyboard)(nil)
	_ window.Clipboard   = (*Keyboard)(nil)
)
