package win32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/window"
)

func keyLParam(scan uint16, extended, repeat bool) uintptr {
	lp := uintptr(scan) << 16
	if extended {
		lp |= 1 << 24
	}
	if repeat {
		lp |= 1 << 30
	}
	return lp
}

func pointLParam(x, y int16) uintptr {
	return uintptr(uint16(x)) | uintptr(uint16(y))<<16
}

func wheelWParam(delta int16) uintptr {
	return uintptr(uint16(delta)) << 16
}

func TestNormalizerKeys(t *testing.T) {
	n := NewNormalizer(NewKeyboard(azertyUser32()))

	ev, ok := n.Message(wmKeyDown, vkShift, keyLParam(0x36, false, false))
	require.True(t, ok)
	shift := ev.(window.KeyPressed)
	assert.Equal(t, window.KeyRShift, shift.Code)
	assert.Equal(t, window.ScanRShift, shift.Scancode)
	assert.False(t, shift.Shift)

	ev, ok = n.Message(wmKeyDown, 'A', keyLParam(0x10, false, false))
	require.True(t, ok)
	a := ev.(window.KeyPressed)
	assert.Equal(t, window.KeyA, a.Code)
	assert.Equal(t, window.ScanQ, a.Scancode)
	assert.True(t, a.Shift)

	ev, ok = n.Message(wmKeyUp, vkShift, keyLParam(0x36, false, false))
	require.True(t, ok)
	assert.IsType(t, window.KeyReleased{}, ev)
	assert.False(t, n.State().KeyDown(window.KeyRShift))
}

func TestNormalizerLeftRightModifiers(t *testing.T) {
	n := NewNormalizer(NewKeyboard(usUser32()))

	cases := []struct {
		vk       uintptr
		scan     uint16
		extended bool
		key      window.Key
		scancode window.Scancode
	}{
		{vkShift, 0x2A, false, window.KeyLShift, window.ScanLShift},
		{vkControl, 0x1D, false, window.KeyLControl, window.ScanLControl},
		{vkControl, 0x1D, true, window.KeyRControl, window.ScanRControl},
		{vkMenu, 0x38, false, window.KeyLAlt, window.ScanLAlt},
		{vkMenu, 0x38, true, window.KeyRAlt, window.ScanRAlt},
		{vkReturn, 0x1C, true, window.KeyEnter, window.ScanNumpadEnter},
		{vkDelete, 0x53, true, window.KeyDelete, window.ScanDelete},
		{vkDecimal, 0x53, false, window.KeyUnknown, window.ScanNumpadDecimal},
	}
	for _, tc := range cases {
		ev, ok := n.Message(wmSysKeyDown, tc.vk, keyLParam(tc.scan, tc.extended, false))
		require.True(t, ok)
		pressed := ev.(window.KeyPressed)
		assert.Equal(t, tc.key, pressed.Code, "vk %#x", tc.vk)
		assert.Equal(t, tc.scancode, pressed.Scancode, "vk %#x", tc.vk)
	}
}

func TestNormalizerSyntheticKey(t *testing.T) {
	n := NewNormalizer(NewKeyboard(usUser32()))

	ev, ok := n.Message(wmKeyDown, vkReturn, 0)
	require.True(t, ok)
	assert.Equal(t, window.ScanEnter, ev.(window.KeyPressed).Scancode)
}

func TestNormalizerKeyRepeat(t *testing.T) {
	n := NewNormalizer(NewKeyboard(usUser32()), WithKeyRepeat(false))

	_, ok := n.Message(wmKeyDown, 'Q', keyLParam(0x10, false, false))
	assert.True(t, ok)
	_, ok = n.Message(wmKeyDown, 'Q', keyLParam(0x10, false, true)|kfRepeat<<16)
	assert.False(t, ok)
	_, ok = n.Message(wmChar, 'q', keyLParam(0x10, false, true))
	assert.False(t, ok)

	n = NewNormalizer(NewKeyboard(usUser32()))
	_, ok = n.Message(wmKeyDown, 'Q', keyLParam(0x10, false, true)|kfRepeat<<16)
	assert.True(t, ok)
}

func TestNormalizerText(t *testing.T) {
	n := NewNormalizer(NewKeyboard(usUser32()))

	ev, ok := n.Message(wmChar, 'é', 0)
	require.True(t, ok)
	assert.Equal(t, window.TextEntered{Unicode: 'é'}, ev)

	_, ok = n.Message(wmChar, 0xD83D, 0)
	assert.False(t, ok, "high surrogate waits for its pair")
	ev, ok = n.Message(wmChar, 0xDE00, 0)
	require.True(t, ok)
	assert.Equal(t, window.TextEntered{Unicode: 0x1F600}, ev)
}

func TestNormalizerMouse(t *testing.T) {
	n := NewNormalizer(NewKeyboard(usUser32()), WithScreenToClient(func(p window.Vector2i) window.Vector2i {
		return p.Sub(window.Vector2i{X: 100, Y: 100})
	}))

	ev, ok := n.Message(wmMouseMove, 0, pointLParam(-3, 7))
	require.True(t, ok)
	assert.Equal(t, window.MouseMoved{Position: window.Vector2i{X: -3, Y: 7}}, ev)

	ev, ok = n.Message(wmLButtonDown, 0, pointLParam(1, 2))
	require.True(t, ok)
	assert.Equal(t, window.MouseButtonPressed{Button: window.MouseButtonLeft, Position: window.Vector2i{X: 1, Y: 2}}, ev)
	assert.True(t, n.State().MouseDown(window.MouseButtonLeft))

	ev, ok = n.Message(wmXButtonUp, 2<<16, pointLParam(1, 2))
	require.True(t, ok)
	assert.Equal(t, window.MouseButtonReleased{Button: window.MouseButtonExtra2, Position: window.Vector2i{X: 1, Y: 2}}, ev)

	ev, ok = n.Message(wmMouseWheel, wheelWParam(-240), pointLParam(110, 120))
	require.True(t, ok)
	assert.Equal(t, window.MouseWheelScrolled{Wheel: window.WheelVertical, Delta: -2, Position: window.Vector2i{X: 10, Y: 20}}, ev)

	ev, ok = n.Message(wmMouseHWheel, wheelWParam(120), pointLParam(100, 100))
	require.True(t, ok)
	assert.Equal(t, window.MouseWheelScrolled{Wheel: window.WheelHorizontal, Delta: -1}, ev)
}

func TestNormalizerKillFocusReleasesKeys(t *testing.T) {
	n := NewNormalizer(NewKeyboard(usUser32()))
	n.Message(wmKeyDown, vkShift, keyLParam(0x2A, false, false))
	require.True(t, n.State().KeyDown(window.KeyLShift))

	_, ok := n.Message(wmKillFocus, 0, 0)
	assert.False(t, ok)
	assert.False(t, n.State().KeyDown(window.KeyLShift))
}
