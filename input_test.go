package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/window"
)

func TestInputStateKeys(t *testing.T) {
	s := window.NewInputState()

	s.SetKey(window.KeyA, true)
	assert.True(t, s.KeyDown(window.KeyA))
	assert.True(t, s.KeyPressed(window.KeyA))

	s.Reset()
	assert.True(t, s.KeyDown(window.KeyA), "held keys survive Reset")
	assert.False(t, s.KeyPressed(window.KeyA))

	s.SetKey(window.KeyA, false)
	assert.False(t, s.KeyDown(window.KeyA))
	assert.True(t, s.KeyReleased(window.KeyA))

	// Out of range input is ignored.
	s.SetKey(window.KeyUnknown, true)
	s.SetScancode(window.ScancodeCount, true)
	assert.False(t, s.KeyDown(window.KeyUnknown))
	assert.False(t, s.ScancodeDown(window.ScancodeCount))
	assert.Empty(t, s.PressedKeys())
}

func TestInputStateMouse(t *testing.T) {
	s := window.NewInputState()
	s.SetMouseButton(window.MouseButtonRight, true)
	assert.True(t, s.MouseDown(window.MouseButtonRight))
	assert.True(t, s.MouseClicked(window.MouseButtonRight))

	s.SetMouseButton(window.MouseButtonRight, true)
	s.Reset()
	s.SetMouseButton(window.MouseButtonRight, true)
	assert.False(t, s.MouseClicked(window.MouseButtonRight), "repeated down is not a click")

	s.SetMouseButton(window.MouseButtonRight, false)
	assert.True(t, s.MouseReleased(window.MouseButtonRight))
	assert.False(t, s.MouseDown(window.MouseButtonCount))
}

func TestKeyTransitionModifiers(t *testing.T) {
	s := window.NewInputState()

	// The modifier's own press does not carry it; its release does.
	ev := s.KeyTransition(window.KeyLShift, window.ScanLShift, true)
	assert.Equal(t, window.KeyPressed{KeyEvent: window.KeyEvent{
		Code: window.KeyLShift, Scancode: window.ScanLShift,
	}}, ev)

	ev = s.KeyTransition(window.KeyA, window.ScanQ, true)
	assert.Equal(t, window.KeyPressed{KeyEvent: window.KeyEvent{
		Code: window.KeyA, Scancode: window.ScanQ, Shift: true,
	}}, ev)
	assert.True(t, s.ScancodeDown(window.ScanQ))

	s.KeyTransition(window.KeyRControl, window.ScanRControl, true)
	s.KeyTransition(window.KeyLSystem, window.ScanLSystem, true)
	s.KeyTransition(window.KeyRAlt, window.ScanRAlt, true)
	alt, control, shift, system := s.Modifiers()
	assert.True(t, alt)
	assert.True(t, control)
	assert.True(t, shift)
	assert.True(t, system)

	ev = s.KeyTransition(window.KeyLShift, window.ScanLShift, false)
	assert.Equal(t, window.KeyReleased{KeyEvent: window.KeyEvent{
		Code: window.KeyLShift, Scancode: window.ScanLShift,
		Alt: true, Control: true, Shift: true, System: true,
	}}, ev)

	assert.Equal(t, []window.Key{window.KeyA, window.KeyLSystem, window.KeyRControl, window.KeyRAlt}, s.PressedKeys())

	s.ReleaseAll()
	assert.Empty(t, s.PressedKeys())
	assert.False(t, s.ScancodeDown(window.ScanQ))
}

func TestKeyTransitionUnknown(t *testing.T) {
	s := window.NewInputState()
	ev := s.KeyTransition(window.KeyUnknown, window.ScanUnknown, true)
	assert.Equal(t, window.KeyPressed{KeyEvent: window.KeyEvent{
		Code: window.KeyUnknown, Scancode: window.ScanUnknown,
	}}, ev)
	assert.Empty(t, s.PressedKeys())
}

func TestIntRect(t *testing.T) {
	r := window.IntRect{X: 10, Y: 20, W: 100, H: 50}
	assert.True(t, r.Contains(window.Vector2i{X: 10, Y: 20}))
	assert.False(t, r.Contains(window.Vector2i{X: 110, Y: 20}))

	assert.Equal(t, window.Vector2i{X: 10, Y: 69}, r.Clamp(window.Vector2i{X: -5, Y: 500}))
	assert.Equal(t, window.Vector2i{X: -5, Y: 500}, window.IntRect{}.Clamp(window.Vector2i{X: -5, Y: 500}))

	v := window.Vector2i{X: 3, Y: 4}
	assert.Equal(t, window.Vector2i{X: 4, Y: 6}, v.Add(window.Vector2i{X: 1, Y: 2}))
	assert.Equal(t, window.Vector2i{X: 2, Y: 2}, v.Sub(window.Vector2i{X: 1, Y: 2}))
}
