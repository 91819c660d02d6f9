package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bits(size int, set ...int) []byte {
	b := make([]byte, size/8+1)
	for _, bit := range set {
		b[bit/8] |= 1 << (bit % 8)
	}
	return b
}

func TestClassify(t *testing.T) {
	keyboard := Capabilities{
		Events: bits(evMax, evSyn, evKey),
		Keys:   bits(keyMax, 1, keyA, 30),
	}
	mouse := Capabilities{
		Events: bits(evMax, evKey, evRel),
		Keys:   bits(keyMax, btnLeft, btnRight),
		Rel:    bits(relMax, relX, relY, relWheel),
	}
	touch := Capabilities{
		Events: bits(evMax, evKey, evAbs),
		Keys:   bits(keyMax, btnTouch),
		Abs:    bits(absMax, absX, absY, absMTSlot),
	}
	touchpad := Capabilities{
		Events: bits(evMax, evKey, evAbs),
		Keys:   bits(keyMax, btnLeft, btnToolFinger),
		Abs:    bits(absMax, absX, absY),
	}
	reservedOnly := Capabilities{
		Events: bits(evMax, evKey),
		Keys:   bits(keyMax, 0),
	}
	joystick := Capabilities{
		Events: bits(evMax, evKey, evAbs),
		Keys:   bits(keyMax, 0x120),
		Abs:    bits(absMax, absX, absY),
	}

	tests := []struct {
		name string
		caps Capabilities
		want Kind
	}{
		{"keyboard", keyboard, KindKeyboard},
		{"mouse", mouse, KindMouse},
		{"touchscreen", touch, KindTouch},
		{"touchpad", touchpad, KindMouse | KindTouch},
		{"reserved key only", reservedOnly, 0},
		{"joystick", joystick, 0},
		{"empty", Capabilities{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.caps))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "none", Kind(0).String())
	assert.Equal(t, "keyboard", KindKeyboard.String())
	assert.Equal(t, "keyboard+mouse", (KindKeyboard | KindMouse).String())
	assert.Equal(t, "mouse+touch", (KindTouch | KindMouse).String())
}

func TestIsEventNode(t *testing.T) {
	assert.True(t, isEventNode("/dev/input/event0"))
	assert.True(t, isEventNode("event12"))
	assert.False(t, isEventNode("/dev/input/mouse0"))
	assert.False(t, isEventNode("/dev/input/event"))
	assert.False(t, isEventNode("/dev/input/eventX"))
	assert.False(t, isEventNode("/dev/input/by-id"))
}
