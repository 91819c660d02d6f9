package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/window"
)

type fakeHost struct {
	names   map[glfw.Key]string
	native  map[glfw.Key]int
	keys    map[glfw.Key]glfw.Action
	buttons map[glfw.MouseButton]glfw.Action
	x, y    float64
	polls   int
	onPoll  func()
	clip    string
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		names:   map[glfw.Key]string{},
		native:  map[glfw.Key]int{},
		keys:    map[glfw.Key]glfw.Action{},
		buttons: map[glfw.MouseButton]glfw.Action{},
	}
}

// usHost names the printable positions the way GLFW does on a US layout.
func usHost() *fakeHost {
	h := newFakeHost()
	for k := glfw.KeyA; k <= glfw.KeyZ; k++ {
		h.names[k] = string(rune('a' + k - glfw.KeyA))
	}
	for k := glfw.Key0; k <= glfw.Key9; k++ {
		h.names[k] = string(rune('0' + k - glfw.Key0))
	}
	h.names[glfw.KeySemicolon] = ";"
	h.names[glfw.KeyComma] = ","
	h.names[glfw.KeyKP1] = "1"
	h.names[glfw.KeyKPDivide] = "/"
	return h
}

// azertyHost swaps the positions a French layout changes.
func azertyHost() *fakeHost {
	h := usHost()
	h.names[glfw.KeyQ] = "a"
	h.names[glfw.KeyA] = "q"
	h.names[glfw.KeyW] = "z"
	h.names[glfw.KeyZ] = "w"
	h.names[glfw.KeySemicolon] = "m"
	h.names[glfw.KeyM] = ","
	h.names[glfw.KeyComma] = ";"
	h.names[glfw.Key1] = "&"
	return h
}

func (h *fakeHost) KeyName(key glfw.Key, _ int) string { return h.names[key] }
func (h *fakeHost) KeyScancode(key glfw.Key) int       { return h.native[key] }
func (h *fakeHost) Key(key glfw.Key) glfw.Action       { return h.keys[key] }
func (h *fakeHost) CursorPos() (x, y float64)          { return h.x, h.y }
func (h *fakeHost) SetCursorPos(x, y float64)          { h.x, h.y = x, y }
func (h *fakeHost) MouseButton(b glfw.MouseButton) glfw.Action {
	return h.buttons[b]
}

func (h *fakeHost) PollEvents() {
	h.polls++
	if h.onPoll != nil {
		h.onPoll()
	}
}

func (h *fakeHost) ClipboardString() string        { return h.clip }
func (h *fakeHost) SetClipboardString(text string) { h.clip = text }

func drain(k *GLFWKeyboard) []window.Event {
	var out []window.Event
	for {
		ev, ok := k.queue.Pop()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func TestKeyTables(t *testing.T) {
	assert.Equal(t, window.ScanA, glfwToScan[glfw.KeyA])
	assert.Equal(t, window.ScanNum0, glfwToScan[glfw.Key0])
	assert.Equal(t, window.ScanNum1, glfwToScan[glfw.Key1])
	assert.Equal(t, window.ScanNumpad0, glfwToScan[glfw.KeyKP0])
	assert.Equal(t, window.ScanF24, glfwToScan[glfw.KeyF24])
	assert.Equal(t, glfw.KeyWorld1, scanToGLFW[window.ScanNonUsBackslash])
	assert.Equal(t, glfw.KeyUnknown, scanToGLFW[window.ScanVolumeUp])

	for g, s := range glfwToScan {
		assert.Equal(t, g, scanToGLFW[s], "token %d", g)
	}
}

func TestLocalizeUS(t *testing.T) {
	k := newKeyboard(usHost())

	assert.Equal(t, window.KeyQ, k.Localize(window.ScanQ))
	assert.Equal(t, window.KeyNum1, k.Localize(window.ScanNum1))
	assert.Equal(t, window.KeyEnter, k.Localize(window.ScanEnter))
	assert.Equal(t, window.KeyLShift, k.Localize(window.ScanLShift))
	assert.Equal(t, window.KeyF15, k.Localize(window.ScanF15))
	assert.Equal(t, window.KeyUnknown, k.Localize(window.ScanF16))

	// Named numpad positions keep their numpad key.
	assert.Equal(t, window.KeyNumpad1, k.Localize(window.ScanNumpad1))
	assert.Equal(t, window.KeyDivide, k.Localize(window.ScanNumpadDivide))

	// Unnamed printable positions fall back to the US layout.
	assert.Equal(t, window.KeyGrave, k.Localize(window.ScanGrave))

	assert.Equal(t, window.KeyUnknown, k.Localize(window.ScanUnknown))
	assert.Equal(t, window.KeyUnknown, k.Localize(window.ScancodeCount))
}

func TestLocalizeAZERTY(t *testing.T) {
	k := newKeyboard(azertyHost())

	assert.Equal(t, window.KeyA, k.Localize(window.ScanQ))
	assert.Equal(t, window.KeyQ, k.Localize(window.ScanA))
	assert.Equal(t, window.KeyM, k.Localize(window.ScanSemicolon))
	assert.Equal(t, window.KeyComma, k.Localize(window.ScanM))
	assert.Equal(t, window.KeyUnknown, k.Localize(window.ScanNum1))

	assert.Equal(t, window.ScanQ, k.Delocalize(window.KeyA))
	assert.Equal(t, window.ScanSemicolon, k.Delocalize(window.KeyM))
	assert.Equal(t, window.ScanUnknown, k.Delocalize(window.KeyNum1))
	assert.Equal(t, window.ScanUnknown, k.Delocalize(window.KeyUnknown))

	for key := window.Key(0); key < window.KeyCount; key++ {
		if s := k.Delocalize(key); s != window.ScanUnknown {
			assert.Equal(t, key, k.Localize(s), "key %s", key)
		}
	}
}

func TestPressedQueries(t *testing.T) {
	h := azertyHost()
	k := newKeyboard(h)

	h.keys[glfw.KeyQ] = glfw.Press
	assert.True(t, k.IsScancodePressed(window.ScanQ))
	assert.True(t, k.IsKeyPressed(window.KeyA))
	assert.False(t, k.IsKeyPressed(window.KeyQ))
	assert.False(t, k.IsScancodePressed(window.ScanVolumeUp))
	assert.False(t, k.IsScancodePressed(window.ScanUnknown))
}

func TestDescription(t *testing.T) {
	h := azertyHost()
	h.names[glfw.KeyApostrophe] = "ù"
	h.names[glfw.KeyEnter] = "\r"
	k := newKeyboard(h)

	assert.Equal(t, "A", k.Description(window.ScanQ))
	assert.Equal(t, "Ù", k.Description(window.ScanApostrophe))
	assert.Equal(t, "Enter", k.Description(window.ScanEnter))
	assert.Equal(t, "Left Shift", k.Description(window.ScanLShift))
	assert.Equal(t, "Volume Up", k.Description(window.ScanVolumeUp))
	assert.Equal(t, window.UnknownDescription, k.Description(window.ScanUnknown))
}

func TestKeyCallback(t *testing.T) {
	k := newKeyboard(azertyHost())

	k.keyCallback(nil, glfw.KeyLeftShift, 50, glfw.Press, glfw.ModShift)
	k.keyCallback(nil, glfw.KeyQ, 24, glfw.Press, glfw.ModShift)
	k.keyCallback(nil, glfw.KeyQ, 24, glfw.Repeat, glfw.ModShift)
	k.keyCallback(nil, glfw.KeyLeftShift, 50, glfw.Release, 0)
	k.keyCallback(nil, glfw.KeyQ, 24, glfw.Release, 0)

	evs := drain(k)
	require.Len(t, evs, 5)

	assert.Equal(t, window.KeyPressed{KeyEvent: window.KeyEvent{
		Code: window.KeyLShift, Scancode: window.ScanLShift,
	}}, evs[0])
	assert.Equal(t, window.KeyPressed{KeyEvent: window.KeyEvent{
		Code: window.KeyA, Scancode: window.ScanQ, Shift: true,
	}}, evs[1])
	assert.Equal(t, evs[1], evs[2])
	assert.Equal(t, window.KeyReleased{KeyEvent: window.KeyEvent{
		Code: window.KeyLShift, Scancode: window.ScanLShift, Shift: true,
	}}, evs[3])
	assert.Equal(t, window.KeyReleased{KeyEvent: window.KeyEvent{
		Code: window.KeyA, Scancode: window.ScanQ,
	}}, evs[4])
}

func TestKeyRepeatOff(t *testing.T) {
	k := newKeyboard(usHost(), WithKeyRepeat(false))

	k.keyCallback(nil, glfw.KeyA, 38, glfw.Press, 0)
	k.keyCallback(nil, glfw.KeyA, 38, glfw.Repeat, 0)
	k.keyCallback(nil, glfw.KeyA, 38, glfw.Repeat, 0)

	assert.Len(t, drain(k), 1)
}

func TestUnknownTokenUsesNativeScancode(t *testing.T) {
	h := usHost()
	h.native[glfw.KeyPause] = 127
	k := newKeyboard(h)

	k.keyCallback(nil, glfw.KeyUnknown, 127, glfw.Press, 0)
	k.keyCallback(nil, glfw.KeyUnknown, 200, glfw.Press, 0)

	evs := drain(k)
	require.Len(t, evs, 2)
	assert.Equal(t, window.ScanPause, evs[0].(window.KeyPressed).Scancode)
	assert.Equal(t, window.KeyPause, evs[0].(window.KeyPressed).Code)
	assert.Equal(t, window.ScanUnknown, evs[1].(window.KeyPressed).Scancode)
	assert.Equal(t, window.KeyUnknown, evs[1].(window.KeyPressed).Code)
}

func TestMouseCallbacks(t *testing.T) {
	k := newKeyboard(usHost())

	k.cursorPosCallback(nil, 10.7, 20.2)
	k.mouseButtonCallback(nil, glfw.MouseButtonRight, glfw.Press, 0)
	k.mouseButtonCallback(nil, glfw.MouseButton5, glfw.Release, 0)
	k.mouseButtonCallback(nil, glfw.MouseButton8, glfw.Press, 0)
	k.scrollCallback(nil, -1, 2)
	k.charCallback(nil, 'é')

	pos := window.Vector2i{X: 10, Y: 20}
	assert.Equal(t, []window.Event{
		window.MouseMoved{Position: pos},
		window.MouseButtonPressed{Button: window.MouseButtonRight, Position: pos},
		window.MouseButtonReleased{Button: window.MouseButtonExtra2, Position: pos},
		window.MouseWheelScrolled{Wheel: window.WheelVertical, Delta: 2, Position: pos},
		window.MouseWheelScrolled{Wheel: window.WheelHorizontal, Delta: -1, Position: pos},
		window.TextEntered{Unicode: 'é'},
	}, drain(k))
}

func TestPointerQueries(t *testing.T) {
	h := usHost()
	k := newKeyboard(h)

	h.buttons[glfw.MouseButton4] = glfw.Press
	assert.True(t, k.IsMouseButtonPressed(window.MouseButtonExtra1))
	assert.False(t, k.IsMouseButtonPressed(window.MouseButtonLeft))

	k.SetMousePosition(window.Vector2i{X: 3, Y: 4})
	assert.Equal(t, window.Vector2i{X: 3, Y: 4}, k.MousePosition())

	assert.False(t, k.IsTouchDown(0))
	assert.Equal(t, window.Vector2i{}, k.TouchPosition(0))
}

func TestPollEventPumpsWhenEmpty(t *testing.T) {
	h := usHost()
	k := newKeyboard(h, WithQueueCapacity(2))
	h.onPoll = func() { k.charCallback(nil, 'x') }

	ev, ok := k.PollEvent()
	require.True(t, ok)
	assert.Equal(t, window.TextEntered{Unicode: 'x'}, ev)
	assert.Equal(t, 1, h.polls)

	h.onPoll = nil
	_, ok = k.PollEvent()
	assert.False(t, ok)
	assert.Equal(t, 2, h.polls)
}

func TestServiceOverGLFW(t *testing.T) {
	h := azertyHost()
	k := newKeyboard(h)
	svc := window.NewService(k)

	h.keys[glfw.KeyW] = glfw.Press
	assert.True(t, svc.IsKeyPressed(window.KeyZ))
	assert.Equal(t, window.ScanW, svc.Delocalize(window.KeyZ))

	k.charCallback(nil, 'z')
	ev, ok := svc.PollEvent()
	require.True(t, ok)
	assert.Equal(t, window.TextEntered{Unicode: 'z'}, ev)
}

func TestClipboard(t *testing.T) {
	h := usHost()
	svc := window.NewService(newKeyboard(h))

	svc.SetClipboardText("copied")
	assert.Equal(t, "copied", h.clip)
	h.clip = "from elsewhere"
	assert.Equal(t, "from elsewhere", svc.ClipboardText())
}
