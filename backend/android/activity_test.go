package android

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/window"
)

func drain(a *Activity) []window.Event {
	var out []window.Event
	for ev, ok := a.PollEvent(); ok; ev, ok = a.PollEvent() {
		out = append(out, ev)
	}
	return out
}

func TestToKey(t *testing.T) {
	tests := []struct {
		code int32
		want window.Key
	}{
		{keycodeBack, window.KeyEscape},
		{keycodeDel, window.KeyBackspace},
		{keycodeForwardDel, window.KeyDelete},
		{69, window.KeySubtract},
		{keycode0, window.KeyNum0},
		{keycode0 + 9, window.KeyNum9},
		{keycodeA, window.KeyA},
		{keycodeA + 25, window.KeyZ},
		{keycodeF1 + 11, window.KeyF12},
		{keycodeNumpad0 + 5, window.KeyNumpad5},
		{keycodeUnknown, window.KeyUnknown},
		{keycodeVolumeUp, window.KeyUnknown},
		{82, window.KeyUnknown},
		{9999, window.KeyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toKey(tt.code), "keycode %d", tt.code)
	}
}

func TestKeyDownUp(t *testing.T) {
	a := NewActivity()

	require.True(t, a.Handle(NativeEvent{Type: TypeKey, Action: KeyActionDown, KeyCode: keycodeA, MetaState: MetaShiftOn}))
	require.True(t, a.Handle(NativeEvent{Type: TypeKey, Action: KeyActionUp, KeyCode: keycodeA, MetaState: MetaShiftOn, Unicode: 'A'}))

	events := drain(a)
	require.Len(t, events, 3)
	pressed := events[0].(window.KeyPressed)
	assert.Equal(t, window.KeyA, pressed.Code)
	assert.Equal(t, window.ScanUnknown, pressed.Scancode)
	assert.True(t, pressed.Shift)
	assert.False(t, pressed.Alt)
	assert.IsType(t, window.KeyReleased{}, events[1])
	assert.Equal(t, window.TextEntered{Unicode: 'A'}, events[2])
}

func TestKeyMultiple(t *testing.T) {
	a := NewActivity()

	require.True(t, a.Handle(NativeEvent{Type: TypeKey, Action: KeyActionMultiple, KeyCode: keycodeA, RepeatCount: 3, Unicode: 'a'}))
	events := drain(a)
	require.Len(t, events, 5)
	assert.IsType(t, window.KeyPressed{}, events[0])
	assert.IsType(t, window.KeyReleased{}, events[1])
	for _, ev := range events[2:] {
		assert.Equal(t, window.TextEntered{Unicode: 'a'}, ev)
	}

	assert.False(t, a.Handle(NativeEvent{Type: TypeKey, Action: KeyActionMultiple, KeyCode: keycodeUnknown}))
	assert.Len(t, drain(a), 2)

	assert.True(t, a.Handle(NativeEvent{Type: TypeKey, Action: KeyActionMultiple, KeyCode: keycodeUnknown, Characters: "日本"}))
	events = drain(a)
	require.Len(t, events, 4)
	assert.Equal(t, window.TextEntered{Unicode: '日'}, events[2])
	assert.Equal(t, window.TextEntered{Unicode: '本'}, events[3])
}

func TestVolumeKeysAreLeftToTheSystem(t *testing.T) {
	a := NewActivity()
	assert.False(t, a.Handle(NativeEvent{Type: TypeKey, Action: KeyActionDown, KeyCode: keycodeVolumeDown}))
	assert.Empty(t, drain(a))
}

func TestTouch(t *testing.T) {
	a := NewActivity()
	finger := func(id int32, x, y float32) PointerData { return PointerData{ID: id, X: x, Y: y} }

	a.Handle(NativeEvent{Type: TypeMotion, Source: SourceTouchscreen, Action: MotionActionDown,
		Pointers: []PointerData{finger(0, 10, 20)}})
	a.Handle(NativeEvent{Type: TypeMotion, Source: SourceTouchscreen, Action: MotionActionPointerDown | 1<<pointerIndexShift,
		Pointers: []PointerData{finger(0, 10, 20), finger(3, 50, 60)}})
	assert.True(t, a.IsTouchDown(3))
	assert.Equal(t, window.Vector2i{X: 50, Y: 60}, a.TouchPosition(3))

	a.Handle(NativeEvent{Type: TypeMotion, Source: SourceTouchscreen, Action: MotionActionMove,
		Pointers: []PointerData{finger(0, 10, 20), finger(3, 55.7, 60)}})
	a.Handle(NativeEvent{Type: TypeMotion, Source: SourceTouchscreen, Action: MotionActionUp,
		Pointers: []PointerData{finger(0, 11, 21)}})

	assert.Equal(t, []window.Event{
		window.TouchBegan{Finger: 0, Position: window.Vector2i{X: 10, Y: 20}},
		window.TouchBegan{Finger: 3, Position: window.Vector2i{X: 50, Y: 60}},
		window.TouchMoved{Finger: 3, Position: window.Vector2i{X: 55, Y: 60}},
		window.TouchEnded{Finger: 0, Position: window.Vector2i{X: 11, Y: 21}},
	}, drain(a))
	assert.False(t, a.IsTouchDown(0))
	assert.Equal(t, window.Vector2i{}, a.TouchPosition(0))
}

func TestMouse(t *testing.T) {
	pumped := 0
	a := NewActivity(WithPump(func() { pumped++ }))
	pointer := []PointerData{{ID: int32(window.MouseButtonRight), X: 5, Y: 6}}

	a.Handle(NativeEvent{Type: TypeMotion, Source: SourceMouse, Action: MotionActionMove, Pointers: pointer})
	a.Handle(NativeEvent{Type: TypeMotion, Source: SourceMouse, Action: MotionActionDown, Pointers: pointer})
	assert.True(t, a.IsMouseButtonPressed(window.MouseButtonRight))
	assert.Equal(t, window.Vector2i{X: 5, Y: 6}, a.MousePosition())

	a.Handle(NativeEvent{Type: TypeMotion, Source: SourceMouse, Action: MotionActionScroll, Scroll: -1.5, Pointers: pointer})
	a.Handle(NativeEvent{Type: TypeMotion, Source: SourceMouse, Action: MotionActionUp, Pointers: pointer})
	assert.False(t, a.IsMouseButtonPressed(window.MouseButtonRight))
	assert.Equal(t, 3, pumped)

	pos := window.Vector2i{X: 5, Y: 6}
	assert.Equal(t, []window.Event{
		window.MouseMoved{Position: pos},
		window.MouseButtonPressed{Button: window.MouseButtonRight, Position: pos},
		window.MouseWheelScrolled{Wheel: window.WheelVertical, Delta: -1.5, Position: pos},
		window.MouseButtonReleased{Button: window.MouseButtonRight, Position: pos},
	}, drain(a))

	assert.True(t, a.Handle(NativeEvent{Type: TypeMotion, Source: SourceMouse, Action: MotionActionDown,
		Pointers: []PointerData{{ID: 9}}}))
	assert.Empty(t, drain(a))
	assert.False(t, a.Handle(NativeEvent{Type: TypeMotion, Source: SourceMouse, Action: MotionActionPointerDown | 2<<pointerIndexShift,
		Pointers: []PointerData{{ID: 0}}}))
}

func TestKeyboardQueriesAreNotApplicable(t *testing.T) {
	a := NewActivity()
	svc := window.NewService(a)

	a.Handle(NativeEvent{Type: TypeKey, Action: KeyActionDown, KeyCode: keycodeA})
	assert.False(t, svc.IsKeyPressed(window.KeyA))
	assert.False(t, svc.IsScancodePressed(window.ScanA))
	assert.Equal(t, window.KeyUnknown, svc.Localize(window.ScanA))
	assert.Equal(t, window.ScanUnknown, svc.Delocalize(window.KeyA))
	assert.Equal(t, "", svc.Description(window.ScanA))

	ev, ok := svc.PollEvent()
	require.True(t, ok)
	assert.IsType(t, window.KeyPressed{}, ev)
}
