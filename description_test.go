package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/window"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		scan  window.Scancode
		label string
		want  string
	}{
		{"letter", window.ScanQ, "q", "Q"},
		{"azerty letter", window.ScanQ, "a", "A"},
		{"accented", window.ScanSemicolon, "ü", "Ü"},
		{"os name kept", window.ScanF1, "F1", "F1"},
		{"enter skips layout", window.ScanEnter, "\r", "Enter"},
		{"space skips layout", window.ScanSpace, " ", "Space"},
		{"numpad operator skips layout", window.ScanNumpadPlus, "+", "Plus (Numpad)"},
		{"empty label", window.ScanLShift, "", "Left Shift"},
		{"blank label", window.ScanCapsLock, "  ", "Caps Lock"},
		{"control code", window.ScanEscape, "\x1b", "Escape"},
		{"unknown without label", window.ScanModeChange, "", window.UnknownDescription},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, window.Describe(tt.scan, tt.label))
		})
	}
}

func TestDefaultDescription(t *testing.T) {
	assert.Equal(t, "0 (Numpad)", window.DefaultDescription(window.ScanNumpad0))
	assert.Equal(t, "Right Arrow", window.DefaultDescription(window.ScanRight))
	assert.Equal(t, "F24", window.DefaultDescription(window.ScanF24))
	assert.Equal(t, window.UnknownDescription, window.DefaultDescription(window.ScanA))
	assert.Equal(t, window.UnknownDescription, window.DefaultDescription(window.ScanUnknown))

	for s := window.Scancode(0); s < window.ScancodeCount; s++ {
		if window.SkipLayoutDescription(s) {
			assert.NotEqual(t, window.UnknownDescription, window.DefaultDescription(s), "scancode %s", s)
		}
	}
}
