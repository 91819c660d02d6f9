package evdev

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/window"
)

type fakeDevice struct {
	path   string
	events []RawEvent
	err    error
	closed bool
}

func (d *fakeDevice) Path() string { return d.path }

func (d *fakeDevice) ReadEvent() (RawEvent, bool, error) {
	if len(d.events) == 0 {
		return RawEvent{}, false, d.err
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev, true, nil
}

func (d *fakeDevice) Close() error {
	d.closed = true
	return nil
}

func (d *fakeDevice) send(evs ...RawEvent) { d.events = append(d.events, evs...) }

type fakeText struct {
	data   []byte
	closed bool
}

func (t *fakeText) ReadText(p []byte) (int, error) {
	n := copy(p, t.data)
	t.data = t.data[n:]
	return n, nil
}

func (t *fakeText) Close() error {
	t.closed = true
	return nil
}

func key(code uint16, value int32) RawEvent { return RawEvent{Type: evKey, Code: code, Value: value} }
func rel(code uint16, value int32) RawEvent { return RawEvent{Type: evRel, Code: code, Value: value} }
func abs(code uint16, value int32) RawEvent { return RawEvent{Type: evAbs, Code: code, Value: value} }
func syn() RawEvent                         { return RawEvent{Type: evSyn, Code: synReport} }

const (
	keyA      = 30
	keyLShift = 42
	keyCaps   = 58
)

func poll(t *testing.T, in *Input) window.Event {
	t.Helper()
	ev, ok := in.PollEvent()
	require.True(t, ok, "expected an event")
	return ev
}

func assertEmpty(t *testing.T, in *Input) {
	t.Helper()
	ev, ok := in.PollEvent()
	assert.False(t, ok, "unexpected event %v", ev)
}

func TestKeyEventsCarryBitmapModifiers(t *testing.T) {
	kbd := &fakeDevice{path: "kbd"}
	in := NewInput([]Device{kbd})

	kbd.send(key(keyLShift, 1), key(keyA, 1), key(keyA, 0), key(keyLShift, 0))

	shift := poll(t, in).(window.KeyPressed)
	assert.Equal(t, window.KeyLShift, shift.Code)
	assert.Equal(t, window.ScanUnknown, shift.Scancode)
	assert.False(t, shift.Shift)

	a := poll(t, in).(window.KeyPressed)
	assert.Equal(t, window.KeyA, a.Code)
	assert.True(t, a.Shift)

	assert.IsType(t, window.KeyReleased{}, poll(t, in))
	released := poll(t, in).(window.KeyReleased)
	assert.True(t, released.Shift, "modifier is read before the release is recorded")
	assertEmpty(t, in)
}

func TestBackspaceTextIsDeferredOnePoll(t *testing.T) {
	kbd := &fakeDevice{path: "kbd"}
	in := NewInput([]Device{kbd})

	kbd.send(key(keyBackspace, 1), key(keyBackspace, 0))

	pressed := poll(t, in).(window.KeyPressed)
	assert.Equal(t, window.KeyBackspace, pressed.Code)
	assert.Equal(t, window.TextEntered{Unicode: 8}, poll(t, in))
	assert.IsType(t, window.KeyReleased{}, poll(t, in))
	assertEmpty(t, in)
}

func TestDeleteKeysTypeDEL(t *testing.T) {
	kbd := &fakeDevice{path: "kbd"}
	in := NewInput([]Device{kbd})

	kbd.send(key(keyKPDot, 1))
	assert.Equal(t, window.KeyDelete, poll(t, in).(window.KeyPressed).Code)
	assert.Equal(t, window.TextEntered{Unicode: 127}, poll(t, in))

	kbd.send(key(keyKPEnter, 1))
	assert.Equal(t, window.KeyEnter, poll(t, in).(window.KeyPressed).Code)
	assertEmpty(t, in)
}

func TestKeyRepeat(t *testing.T) {
	kbd := &fakeDevice{path: "kbd"}
	in := NewInput([]Device{kbd})

	kbd.send(key(keyA, 2), key(keyBackspace, 2), key(keyCaps, 1))

	assert.Equal(t, window.TextEntered{Unicode: 8}, poll(t, in), "repeat of A is skipped")
	assertEmpty(t, in)
	assert.False(t, in.IsKeyPressed(window.KeyA))
}

func TestIsKeyPressedDrainsIntoQueue(t *testing.T) {
	kbd := &fakeDevice{path: "kbd"}
	in := NewInput([]Device{kbd})
	kbd.send(key(keyA, 1))

	assert.True(t, in.IsKeyPressed(window.KeyA))
	assert.Empty(t, kbd.events)

	// the drained event is still delivered, once
	assert.Equal(t, window.KeyA, poll(t, in).(window.KeyPressed).Code)
	assertEmpty(t, in)

	assert.False(t, in.IsKeyPressed(window.KeyUnknown))
	assert.False(t, in.IsKeyPressed(window.KeyCount))
}

func TestQueueDropsOldest(t *testing.T) {
	kbd := &fakeDevice{path: "kbd"}
	in := NewInput([]Device{kbd}, WithQueueCapacity(4))
	for i := 0; i < 3; i++ {
		kbd.send(key(keyA, 1), key(keyA, 0))
	}

	in.IsKeyPressed(window.KeyA)
	events, _ := in.Dropped()
	assert.Equal(t, 2, events)

	var got []window.Event
	for ev, ok := in.PollEvent(); ok; ev, ok = in.PollEvent() {
		got = append(got, ev)
	}
	assert.Len(t, got, 4)
}

func TestMouse(t *testing.T) {
	mouse := &fakeDevice{path: "mouse"}
	in := NewInput([]Device{mouse}, WithBounds(window.IntRect{W: 100, H: 50}))

	mouse.send(rel(relX, 30), rel(relY, 80), rel(relX, -50))
	assert.Equal(t, window.MouseMoved{Position: window.Vector2i{X: 30, Y: 0}}, poll(t, in))
	assert.Equal(t, window.MouseMoved{Position: window.Vector2i{X: 30, Y: 49}}, poll(t, in))
	assert.Equal(t, window.MouseMoved{Position: window.Vector2i{X: 0, Y: 49}}, poll(t, in))

	mouse.send(key(btnRight, 1), rel(relWheel, -1), rel(relHWheel, 1))
	assert.Equal(t, window.MouseButtonPressed{Button: window.MouseButtonRight, Position: window.Vector2i{Y: 49}}, poll(t, in))
	assert.Equal(t, window.MouseWheelScrolled{Wheel: window.WheelVertical, Delta: -1, Position: window.Vector2i{Y: 49}}, poll(t, in))
	assert.Equal(t, window.MouseWheelScrolled{Wheel: window.WheelHorizontal, Delta: -1, Position: window.Vector2i{Y: 49}}, poll(t, in))

	assert.True(t, in.IsMouseButtonPressed(window.MouseButtonRight))
	mouse.send(key(btnRight, 0))
	assert.False(t, in.IsMouseButtonPressed(window.MouseButtonRight))
	assert.False(t, in.IsMouseButtonPressed(window.MouseButtonCount))

	in.SetMousePosition(window.Vector2i{X: 500, Y: 10})
	assert.Equal(t, window.Vector2i{X: 99, Y: 10}, in.MousePosition())
}

func TestTouchSlots(t *testing.T) {
	kbd := &fakeDevice{path: "kbd"}
	screen := &fakeDevice{path: "touch"}
	in := NewInput([]Device{kbd, screen})

	kbd.send(syn())
	screen.send(abs(absMTSlot, 0), abs(absMTTrackingID, 5), abs(absMTPositionX, 10), abs(absMTPositionY, 20), syn())
	assert.Equal(t, window.TouchBegan{Finger: 5, Position: window.Vector2i{X: 10, Y: 20}}, poll(t, in))
	assert.True(t, in.IsTouchDown(5))
	assert.Equal(t, window.Vector2i{X: 10, Y: 20}, in.TouchPosition(5))

	screen.send(abs(absMTSlot, 1), abs(absMTTrackingID, 6), abs(absMTPositionX, 1), syn())
	assert.Equal(t, window.TouchMoved{Finger: 5, Position: window.Vector2i{X: 10, Y: 20}}, poll(t, in))
	assert.Equal(t, window.TouchBegan{Finger: 6, Position: window.Vector2i{X: 1}}, poll(t, in))

	screen.send(abs(absMTSlot, 0), abs(absMTTrackingID, -1), syn())
	assert.Equal(t, window.TouchEnded{Finger: 5, Position: window.Vector2i{X: 10, Y: 20}}, poll(t, in))
	assert.Equal(t, window.TouchMoved{Finger: 6, Position: window.Vector2i{X: 1}}, poll(t, in))
	assertEmpty(t, in)

	assert.False(t, in.IsTouchDown(5))
	assert.True(t, in.IsTouchDown(6))
	assert.Equal(t, window.Vector2i{}, in.TouchPosition(5))
}

func TestSynFromOtherDeviceDoesNotFlushTouches(t *testing.T) {
	kbd := &fakeDevice{path: "kbd"}
	screen := &fakeDevice{path: "touch"}
	in := NewInput([]Device{kbd, screen})

	screen.send(abs(absMTTrackingID, 1))
	in.IsKeyPressed(window.KeyA)
	kbd.send(syn())
	assertEmpty(t, in)

	screen.send(syn())
	assert.IsType(t, window.TouchBegan{}, poll(t, in))
}

func TestTerminalText(t *testing.T) {
	text := &fakeText{data: []byte("h\x7f\x08i")}
	in := NewInput(nil, WithText(text))

	assert.Equal(t, window.TextEntered{Unicode: 'h'}, poll(t, in))
	_, ok := in.PollEvent()
	assert.False(t, ok, "DEL is suppressed")
	_, ok = in.PollEvent()
	assert.False(t, ok, "BS is suppressed")
	assert.Equal(t, window.TextEntered{Unicode: 'i'}, poll(t, in))

	text.data = []byte("\x1b[A")
	assertEmpty(t, in)
	assert.Empty(t, text.data)

	text.data = []byte("\x1b")
	assert.Equal(t, window.TextEntered{Unicode: 27}, poll(t, in), "a lone escape is typed")
}

func TestTerminalTextDecodesUTF8(t *testing.T) {
	text := &fakeText{data: []byte("é€😀x")}
	in := NewInput(nil, WithText(text))

	assert.Equal(t, window.TextEntered{Unicode: 'é'}, poll(t, in))
	assert.Equal(t, window.TextEntered{Unicode: '€'}, poll(t, in))
	assert.Equal(t, window.TextEntered{Unicode: '😀'}, poll(t, in))
	assert.Equal(t, window.TextEntered{Unicode: 'x'}, poll(t, in))
	assertEmpty(t, in)

	tests := []struct {
		name string
		data string
	}{
		{"stray continuation byte", "\xa9"},
		{"invalid lead byte", "\xff"},
		{"truncated sequence", "\xe2\x82"},
		{"overlong encoding", "\xc0\xaf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text.data = []byte(tt.data)
			assert.Equal(t, window.TextEntered{Unicode: utf8.RuneError}, poll(t, in))
			assertEmpty(t, in)
		})
	}
}

func TestFailingDeviceIsDropped(t *testing.T) {
	bad := &fakeDevice{path: "bad", err: errors.New("no such device")}
	good := &fakeDevice{path: "good"}
	in := NewInput([]Device{bad, good})
	good.send(key(keyA, 1))

	assert.Equal(t, window.KeyA, poll(t, in).(window.KeyPressed).Code)
	assert.True(t, bad.closed)
	assert.Equal(t, []string{"good"}, in.Devices())
}

func TestAddRemoveClose(t *testing.T) {
	text := &fakeText{}
	in := NewInput(nil, WithText(text))
	d := &fakeDevice{path: "/dev/input/event4"}
	in.AddDevice(d)
	d.send(key(keyA, 1))
	assert.True(t, in.IsKeyPressed(window.KeyA))

	assert.True(t, in.RemoveDevice("/dev/input/event4"))
	assert.False(t, in.RemoveDevice("/dev/input/event4"))
	assert.True(t, d.closed)

	other := &fakeDevice{path: "/dev/input/event5"}
	in.AddDevice(other)
	require.NoError(t, in.Close())
	assert.True(t, other.closed)
	assert.True(t, text.closed)
	assert.Empty(t, in.Devices())
}

func TestLayoutQueriesAreUnavailable(t *testing.T) {
	in := NewInput(nil)

	assert.False(t, in.IsScancodePressed(window.ScanA))
	assert.Equal(t, window.KeyUnknown, in.Localize(window.ScanA))
	assert.Equal(t, window.ScanUnknown, in.Delocalize(window.KeyA))
	assert.Equal(t, "Caps Lock", in.Description(window.ScanCapsLock))
}

func TestServiceOverInput(t *testing.T) {
	kbd := &fakeDevice{path: "kbd"}
	in := NewInput([]Device{kbd})
	svc := window.NewService(in, window.WithPointer(in), window.WithEvents(in))

	kbd.send(key(keyA, 1), key(btnLeft, 1))
	assert.True(t, svc.IsKeyPressed(window.KeyA))
	assert.True(t, svc.IsMouseButtonPressed(window.MouseButtonLeft))
	assert.Equal(t, []window.Key{window.KeyA}, svc.PressedKeys())

	ev, ok := svc.PollEvent()
	require.True(t, ok)
	assert.IsType(t, window.KeyPressed{}, ev)
}
