package opengl

import (
	"sync"
	"unicode/utf8"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/window"
)

// host is the part of GLFW the keyboard reads. GLFW calls must come from
// the main thread.
type host interface {
	KeyName(key glfw.Key, scancode int) string
	KeyScancode(key glfw.Key) int
	Key(key glfw.Key) glfw.Action
	MouseButton(button glfw.MouseButton) glfw.Action
	CursorPos() (x, y float64)
	SetCursorPos(x, y float64)
	PollEvents()
	ClipboardString() string
	SetClipboardString(text string)
}

type windowHost struct{ w *glfw.Window }

func (h windowHost) KeyName(key glfw.Key, scancode int) string { return glfw.GetKeyName(key, scancode) }
func (h windowHost) KeyScancode(key glfw.Key) int              { return glfw.GetKeyScancode(key) }
func (h windowHost) Key(key glfw.Key) glfw.Action              { return h.w.GetKey(key) }
func (h windowHost) MouseButton(b glfw.MouseButton) glfw.Action {
	return h.w.GetMouseButton(b)
}
func (h windowHost) CursorPos() (x, y float64) { return h.w.GetCursorPos() }
func (h windowHost) SetCursorPos(x, y float64) { h.w.SetCursorPos(x, y) }
func (h windowHost) PollEvents()               { glfw.PollEvents() }
func (h windowHost) ClipboardString() string   { return h.w.GetClipboardString() }
func (h windowHost) SetClipboardString(text string) {
	h.w.SetClipboardString(text)
}

// GLFWKeyboard answers input queries for a GLFW window and turns its
// callbacks into window events. It implements window.Keyboard,
// window.Pointer, window.EventSource and window.Clipboard, and like GLFW
// itself must only be used from the main thread.
type GLFWKeyboard struct {
	host   host
	repeat bool

	once       sync.Once
	scanToKey  [window.ScancodeCount]window.Key
	keyToScan  [window.KeyCount]window.Scancode
	fromNative map[int]window.Scancode

	state *window.InputState
	queue *window.EventQueue
}

// KeyboardOption configures a GLFWKeyboard.
type KeyboardOption func(*GLFWKeyboard)

// WithKeyRepeat sets whether held keys send repeated KeyPressed events. On
// by default.
func WithKeyRepeat(on bool) KeyboardOption {
	return func(k *GLFWKeyboard) { k.repeat = on }
}

// WithQueueCapacity bounds the event queue.
func WithQueueCapacity(n int) KeyboardOption {
	return func(k *GLFWKeyboard) { k.queue = window.NewEventQueue(n) }
}

// NewGLFWKeyboard installs input callbacks on w. It replaces any key, char,
// cursor, button or scroll callback set before.
func NewGLFWKeyboard(w *glfw.Window, opts ...KeyboardOption) *GLFWKeyboard {
	k := newKeyboard(windowHost{w}, opts...)
	w.SetKeyCallback(k.keyCallback)
	w.SetCharCallback(k.charCallback)
	w.SetCursorPosCallback(k.cursorPosCallback)
	w.SetMouseButtonCallback(k.mouseButtonCallback)
	w.SetScrollCallback(k.scrollCallback)
	return k
}

func newKeyboard(h host, opts ...KeyboardOption) *GLFWKeyboard {
	k := &GLFWKeyboard{
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

// build derives the layout tables from the names GLFW reports for each
// printable position. Other positions produce the same key in every layout,
// and printable ones GLFW leaves unnamed fall back to the US layout.
func (k *GLFWKeyboard) build() {
	k.once.Do(func() {
		for i := range k.keyToScan {
			k.keyToScan[i] = window.ScanUnknown
		}
		k.fromNative = make(map[int]window.Scancode)

		for scan := window.Scancode(0); scan < window.ScancodeCount; scan++ {
			k.scanToKey[scan] = window.KeyUnknown
			g := scanToGLFW[scan]
			if g == glfw.KeyUnknown {
				continue
			}

			if native := k.host.KeyScancode(g); native > 0 {
				if _, dup := k.fromNative[native]; !dup {
					k.fromNative[native] = scan
				}
			}

			key := window.FixedKey(scan)
			if key == window.KeyUnknown {
				key = window.USKey(scan)
				if name := k.host.KeyName(g, 0); name != "" {
					key = window.KeyUnknown
					if r, size := utf8.DecodeRuneInString(name); size == len(name) {
						key = window.KeyFromRune(r)
					}
				}
			}
			k.scanToKey[scan] = key
			if key != window.KeyUnknown && k.keyToScan[key] == window.ScanUnknown {
				k.keyToScan[key] = scan
			}
		}
		logger.Debug("GLFW key mapping built", "native", len(k.fromNative))
	})
}

// Localize returns the key produced at the physical position.
func (k *GLFWKeyboard) Localize(scan window.Scancode) window.Key {
	if !scan.Valid() {
		return window.KeyUnknown
	}
	k.build()
	return k.scanToKey[scan]
}

// Delocalize returns the physical position that produces key.
func (k *GLFWKeyboard) Delocalize(key window.Key) window.Scancode {
	if !key.Valid() {
		return window.ScanUnknown
	}
	k.build()
	return k.keyToScan[key]
}

// IsKeyPressed reports whether the key producing key is held.
func (k *GLFWKeyboard) IsKeyPressed(key window.Key) bool {
	return k.IsScancodePressed(k.Delocalize(key))
}

// IsScancodePressed reports whether the key at scan is held.
func (k *GLFWKeyboard) IsScancodePressed(scan window.Scancode) bool {
	if !scan.Valid() || scanToGLFW[scan] == glfw.KeyUnknown {
		return false
	}
	return k.host.Key(scanToGLFW[scan]) == glfw.Press
}

// Description returns what GLFW calls the key, upper-cased, or the English
// name of keys GLFW leaves unnamed.
func (k *GLFWKeyboard) Description(scan window.Scancode) string {
	if !scan.Valid() || scanToGLFW[scan] == glfw.KeyUnknown {
		return window.DefaultDescription(scan)
	}
	return window.Describe(scan, k.host.KeyName(scanToGLFW[scan], 0))
}

// eventScancode finds the position of a key callback. Keys GLFW has no token
// for are found by their native scancode.
func (k *GLFWKeyboard) eventScancode(key glfw.Key, native int) window.Scancode {
	if s, ok := glfwToScan[key]; ok {
		return s
	}
	k.build()
	if s, ok := k.fromNative[native]; ok {
		return s
	}
	return window.ScanUnknown
}

func (k *GLFWKeyboard) keyCallback(_ *glfw.Window, key glfw.Key, native int, action glfw.Action, _ glfw.ModifierKey) {
	scan := k.eventScancode(key, native)
	code := k.Localize(scan)

	switch action {
	case glfw.Press:
		k.queue.Push(k.state.KeyTransition(code, scan, true))
	case glfw.Repeat:
		if k.repeat {
			k.queue.Push(window.KeyPressed{KeyEvent: k.state.NewKeyEvent(code, scan)})
		}
	case glfw.Release:
		k.queue.Push(k.state.KeyTransition(code, scan, false))
	}
}

func (k *GLFWKeyboard) charCallback(_ *glfw.Window, char rune) {
	k.queue.Push(window.TextEntered{Unicode: char})
}

func (k *GLFWKeyboard) cursorPosCallback(_ *glfw.Window, x, y float64) {
	k.state.Mouse = window.Vector2i{X: int(x), Y: int(y)}
	k.queue.Push(window.MouseMoved{Position: k.state.Mouse})
}

func (k *GLFWKeyboard) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := glfwMouseButton(button)
	if !ok {
		return
	}
	down := action == glfw.Press
	k.state.SetMouseButton(b, down)
	if down {
		k.queue.Push(window.MouseButtonPressed{Button: b, Position: k.state.Mouse})
	} else {
		k.queue.Push(window.MouseButtonReleased{Button: b, Position: k.state.Mouse})
	}
}

func (k *GLFWKeyboard) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	if yoff != 0 {
		k.queue.Push(window.MouseWheelScrolled{Wheel: window.WheelVertical, Delta: float32(yoff), Position: k.state.Mouse})
	}
	if xoff != 0 {
		k.queue.Push(window.MouseWheelScrolled{Wheel: window.WheelHorizontal, Delta: float32(xoff), Position: k.state.Mouse})
	}
}

// PollEvent returns the next event, processing pending GLFW events when
// none is queued.
func (k *GLFWKeyboard) PollEvent() (window.Event, bool) {
	if ev, ok := k.queue.Pop(); ok {
		return ev, true
	}
	k.host.PollEvents()
	return k.queue.Pop()
}

// Dropped returns how many events were lost to a full queue.
func (k *GLFWKeyboard) Dropped() int { return k.queue.Dropped() }

// IsMouseButtonPressed reports whether button is held.
func (k *GLFWKeyboard) IsMouseButtonPressed(button window.MouseButton) bool {
	g, ok := mouseButtonGLFW(button)
	return ok && k.host.MouseButton(g) == glfw.Press
}

// MousePosition returns the cursor position relative to the window.
func (k *GLFWKeyboard) MousePosition() window.Vector2i {
	x, y := k.host.CursorPos()
	return window.Vector2i{X: int(x), Y: int(y)}
}

// SetMousePosition moves the cursor, relative to the window.
func (k *GLFWKeyboard) SetMousePosition(pos window.Vector2i) {
	k.host.SetCursorPos(float64(pos.X), float64(pos.Y))
}

// IsTouchDown always reports false: GLFW has no touch input.
func (k *GLFWKeyboard) IsTouchDown(uint) bool { return false }

// TouchPosition always returns the origin.
func (k *GLFWKeyboard) TouchPosition(uint) window.Vector2i { return window.Vector2i{} }

// ClipboardText returns the text on the system clipboard.
func (k *GLFWKeyboard) ClipboardText() string { return k.host.ClipboardString() }

// SetClipboardText puts text on the system clipboard.
func (k *GLFWKeyboard) SetClipboardText(text string) { k.host.SetClipboardString(text) }

func glfwMouseButton(button glfw.MouseButton) (window.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return window.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return window.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return window.MouseButtonMiddle, true
	case glfw.MouseButton4:
		return window.MouseButtonExtra1, true
	case glfw.MouseButton5:
		return window.MouseButtonExtra2, true
	}
	return 0, false
}

func mouseButtonGLFW(button window.MouseButton) (glfw.MouseButton, bool) {
	switch button {
	case window.MouseButtonLeft:
		return glfw.MouseButtonLeft, true
	case window.MouseButtonRight:
		return glfw.MouseButtonRight, true
	case window.MouseButtonMiddle:
		return glfw.MouseButtonMiddle, true
	case window.MouseButtonExtra1:
		return glfw.MouseButton4, true
	case window.MouseButtonExtra2:
		return glfw.MouseButton5, true
	}
	return 0, false
}

var (
	_ window.Keyboard    = (*GLFWKeyboard)(nil)
	_ window.Pointer     = (*GLFWKeyboard)(nil)
	_ window.EventSource = (*GLFWKeyboard)(nil)
	_ window.Clipboard   = (*GLFWKeyboard)(nil)
)
