package win32

import (
	"unicode"
	"unicode/utf16"

	"github.com/go-theft-auto/window"
)

// Window messages the normalizer understands.
const (
	wmKillFocus   = 0x0008
	wmKeyDown     = 0x0100
	wmKeyUp       = 0x0101
	wmChar        = 0x0102
	wmSysKeyDown  = 0x0104
	wmSysKeyUp    = 0x0105
	wmMouseMove   = 0x0200
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmMouseWheel  = 0x020A
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C
	wmMouseHWheel = 0x020E
)

const (
	kfExtended = 0x0100
	kfRepeat   = 0x4000
	xButton1   = 1
	wheelDelta = 120
)

// Normalizer turns window messages into events. It keeps the key bitmap the
// event modifiers are read from. Not safe for concurrent use; call it from
// the thread that runs the window procedure.
type Normalizer struct {
	kb        *Keyboard
	state     *window.InputState
	repeat    bool
	surrogate uint16
	toClient  func(window.Vector2i) window.Vector2i

	lshift     uint32
	lshiftDone bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithKeyRepeat controls whether auto-repeated key downs and characters
// produce events. It is on by default.
func WithKeyRepeat(enabled bool) NormalizerOption {
	return func(n *Normalizer) { n.repeat = enabled }
}

// WithScreenToClient converts wheel positions, which Windows reports in
// screen coordinates, to client coordinates.
func WithScreenToClient(f func(window.Vector2i) window.Vector2i) NormalizerOption {
	return func(n *Normalizer) { n.toClient = f }
}

// NewNormalizer creates a normalizer resolving keys through kb.
func NewNormalizer(kb *Keyboard, opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		kb:       kb,
		state:    window.NewInputState(),
		repeat:   true,
		toClient: func(p window.Vector2i) window.Vector2i { return p },
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// State returns the key and button bitmap.
func (n *Normalizer) State() *window.InputState { return n.state }

// Message converts one window message. It reports false for messages that
// produce no event.
func (n *Normalizer) Message(msg uint32, wParam, lParam uintptr) (window.Event, bool) {
	switch msg {
	case wmKeyDown, wmSysKeyDown:
		if !n.repeat && hiword(lParam)&kfRepeat != 0 {
			return nil, false
		}
		return n.key(wParam, lParam, true), true
	case wmKeyUp, wmSysKeyUp:
		return n.key(wParam, lParam, false), true
	case wmChar:
		if !n.repeat && lParam&(1<<30) != 0 {
			return nil, false
		}
		return n.char(uint16(wParam))
	case wmMouseMove:
		pos := pointParam(lParam)
		n.state.Mouse = pos
		return window.MouseMoved{Position: pos}, true
	case wmLButtonDown, wmLButtonUp:
		return n.button(window.MouseButtonLeft, msg == wmLButtonDown, lParam), true
	case wmRButtonDown, wmRButtonUp:
		return n.button(window.MouseButtonRight, msg == wmRButtonDown, lParam), true
	case wmMButtonDown, wmMButtonUp:
		return n.button(window.MouseButtonMiddle, msg == wmMButtonDown, lParam), true
	case wmXButtonDown, wmXButtonUp:
		b := window.MouseButtonExtra2
		if hiword(wParam) == xButton1 {
			b = window.MouseButtonExtra1
		}
		return n.button(b, msg == wmXButtonDown, lParam), true
	case wmMouseWheel:
		delta := float32(int16(hiword(wParam))) / wheelDelta
		return window.MouseWheelScrolled{Wheel: window.WheelVertical, Delta: delta, Position: n.toClient(pointParam(lParam))}, true
	case wmMouseHWheel:
		delta := -float32(int16(hiword(wParam))) / wheelDelta
		return window.MouseWheelScrolled{Wheel: window.WheelHorizontal, Delta: delta, Position: n.toClient(pointParam(lParam))}, true
	case wmKillFocus:
		n.state.ReleaseAll()
		n.surrogate = 0
	}
	return nil, false
}

func (n *Normalizer) key(wParam, lParam uintptr, down bool) window.Event {
	code := n.keyFromMessage(uint32(wParam), lParam)
	scan := n.scancodeFromMessage(uint32(wParam), lParam)
	return n.state.KeyTransition(code, scan, down)
}

// keyFromMessage resolves the generic modifier virtual keys to their left
// or right variant.
func (n *Normalizer) keyFromMessage(vk uint32, lParam uintptr) window.Key {
	extended := hiword(lParam)&kfExtended != 0
	switch vk {
	case vkShift:
		if !n.lshiftDone {
			n.lshift = n.kb.u.MapVirtualKey(vkLShift, mapVKToVSC)
			n.lshiftDone = true
		}
		if uint32(lParam>>16)&0xFF == n.lshift {
			return window.KeyLShift
		}
		return window.KeyRShift
	case vkMenu:
		if extended {
			return window.KeyRAlt
		}
		return window.KeyLAlt
	case vkControl:
		if extended {
			return window.KeyRControl
		}
		return window.KeyLControl
	}
	return virtualKeyToKey(vk)
}

// scancodeFromMessage reads the scan code from bits 16-23 and the extended
// flag from bit 24. Synthetic messages carry no scan code, so it is derived
// from the virtual key.
func (n *Normalizer) scancodeFromMessage(vk uint32, lParam uintptr) window.Scancode {
	code := uint32(lParam>>16) & 0xFF
	if code == 0 {
		code = n.kb.u.MapVirtualKey(vk, mapVKToVSC) & 0xFF
	}
	ext := 0
	if hiword(lParam)&kfExtended != 0 {
		ext = 1
	}
	return messageScancodes[ext][code]
}

// char joins UTF-16 surrogate pairs split across two WM_CHAR messages.
func (n *Normalizer) char(unit uint16) (window.Event, bool) {
	r := rune(unit)
	switch {
	case utf16.IsSurrogate(r) && unit < 0xDC00:
		n.surrogate = unit
		return nil, false
	case utf16.IsSurrogate(r):
		high := n.surrogate
		n.surrogate = 0
		r = utf16.DecodeRune(rune(high), r)
		if r == unicode.ReplacementChar {
			logger.Debug("unpaired low surrogate", "unit", unit)
		}
	}
	return window.TextEntered{Unicode: r}, true
}

func (n *Normalizer) button(b window.MouseButton, down bool, lParam uintptr) window.Event {
	pos := pointParam(lParam)
	n.state.SetMouseButton(b, down)
	if down {
		return window.MouseButtonPressed{Button: b, Position: pos}
	}
	return window.MouseButtonReleased{Button: b, Position: pos}
}

func hiword(v uintptr) uint16 { return uint16(v >> 16) }

// pointParam unpacks the signed client coordinates of a mouse message.
func pointParam(lParam uintptr) window.Vector2i {
	return window.Vector2i{X: int(int16(uint16(lParam))), Y: int(int16(hiword(lParam)))}
}
