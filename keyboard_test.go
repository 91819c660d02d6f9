package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/window"
)

func TestScancodeNames(t *testing.T) {
	for s := window.Scancode(0); s < window.ScancodeCount; s++ {
		name := s.String()
		assert.NotEmpty(t, name, "scancode %d", int(s))
		assert.Equal(t, s, window.ParseScancode(name), "scancode %s", name)
	}
	assert.Equal(t, "Unknown", window.ScanUnknown.String())
	assert.Equal(t, "Unknown", window.ScancodeCount.String())
	assert.Equal(t, window.ScanUnknown, window.ParseScancode("NoSuchKey"))
}

func TestKeyNames(t *testing.T) {
	for k := window.Key(0); k < window.KeyCount; k++ {
		name := k.String()
		assert.NotEmpty(t, name, "key %d", int(k))
		assert.Equal(t, k, window.ParseKey(name), "key %s", name)
	}
	assert.Equal(t, "Unknown", window.KeyUnknown.String())
	assert.False(t, window.KeyUnknown.Valid())
	assert.False(t, window.KeyCount.Valid())
	assert.Equal(t, window.KeyUnknown, window.ParseKey(""))
}

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want window.Key
	}{
		{'a', window.KeyA},
		{'Z', window.KeyZ},
		{'0', window.KeyNum0},
		{'9', window.KeyNum9},
		{'[', window.KeyLBracket},
		{'\\', window.KeyBackslash},
		{'`', window.KeyGrave},
		{'-', window.KeyHyphen},
		{' ', window.KeySpace},
		{'\r', window.KeyEnter},
		{'\n', window.KeyEnter},
		{'\b', window.KeyBackspace},
		{'\t', window.KeyTab},
		{0x1b, window.KeyEscape},
		{0x7f, window.KeyDelete},
		{'é', window.KeyUnknown},
		{'!', window.KeyUnknown},
		{'+', window.KeyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, window.KeyFromRune(tt.r), "rune %q", tt.r)
	}
}

func TestFixedKey(t *testing.T) {
	tests := []struct {
		scan window.Scancode
		want window.Key
	}{
		{window.ScanEnter, window.KeyEnter},
		{window.ScanNumpadEnter, window.KeyEnter},
		{window.ScanNumpadDecimal, window.KeyPeriod},
		{window.ScanNumpadMinus, window.KeySubtract},
		{window.ScanNumpad1, window.KeyNumpad1},
		{window.ScanNumpad9, window.KeyNumpad9},
		{window.ScanNumpad0, window.KeyNumpad0},
		{window.ScanF1, window.KeyF1},
		{window.ScanF15, window.KeyF15},
		{window.ScanRSystem, window.KeyRSystem},
		{window.ScanMenu, window.KeyMenu},
		{window.ScanLeft, window.KeyLeft},

		// Layout decides, or no Key exists.
		{window.ScanQ, window.KeyUnknown},
		{window.ScanNum1, window.KeyUnknown},
		{window.ScanSemicolon, window.KeyUnknown},
		{window.ScanF16, window.KeyUnknown},
		{window.ScanCapsLock, window.KeyUnknown},
		{window.ScanNumpadEqual, window.KeyUnknown},
		{window.ScanUnknown, window.KeyUnknown},
		{window.ScancodeCount, window.KeyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, window.FixedKey(tt.scan), "scancode %s", tt.scan)
	}
}

func TestUSKey(t *testing.T) {
	assert.Equal(t, window.KeyQ, window.USKey(window.ScanQ))
	assert.Equal(t, window.KeyNum1, window.USKey(window.ScanNum1))
	assert.Equal(t, window.KeyNum0, window.USKey(window.ScanNum0))
	assert.Equal(t, window.KeySemicolon, window.USKey(window.ScanSemicolon))
	assert.Equal(t, window.KeyBackslash, window.USKey(window.ScanNonUsBackslash))
	assert.Equal(t, window.KeyUnknown, window.USKey(window.ScanEnter))
	assert.Equal(t, window.KeyUnknown, window.USKey(window.ScanUnknown))

	// Every position has at most one of the two.
	for s := window.Scancode(0); s < window.ScancodeCount; s++ {
		if window.FixedKey(s) != window.KeyUnknown {
			assert.Equal(t, window.KeyUnknown, window.USKey(s), "scancode %s", s)
		}
	}
}
