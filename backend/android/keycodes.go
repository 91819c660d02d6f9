package android

import "github.com/go-theft-auto/window"

// AKEYCODE values from android/keycodes.h.
const (
	keycodeUnknown    = 0
	keycodeBack       = 4
	keycode0          = 7
	keycodeDpadUp     = 19
	keycodeDpadDown   = 20
	keycodeDpadLeft   = 21
	keycodeDpadRight  = 22
	keycodeVolumeUp   = 24
	keycodeVolumeDown = 25
	keycodeA          = 29
	keycodeDel        = 67
	keycodeEscape     = 111
	keycodeForwardDel = 112
	keycodeF1         = 131
	keycodeNumpad0    = 144
)

// keycodes maps the AKEYCODE values that identify a keyboard key. Phone
// buttons (call, camera, media keys, gamepad buttons) read as Unknown.
var keycodes = map[int32]window.Key{
	keycodeBack:       window.KeyEscape,
	keycodeDpadUp:     window.KeyUp,
	keycodeDpadDown:   window.KeyDown,
	keycodeDpadLeft:   window.KeyLeft,
	keycodeDpadRight:  window.KeyRight,
	55:                window.KeyComma,
	56:                window.KeyPeriod,
	57:                window.KeyLAlt,
	58:                window.KeyRAlt,
	59:                window.KeyLShift,
	60:                window.KeyRShift,
	61:                window.KeyTab,
	62:                window.KeySpace,
	66:                window.KeyEnter,
	keycodeDel:        window.KeyBackspace,
	68:                window.KeyGrave,
	69:                window.KeySubtract,
	70:                window.KeyEqual,
	71:                window.KeyLBracket,
	72:                window.KeyRBracket,
	73:                window.KeyBackslash,
	74:                window.KeySemicolon,
	75:                window.KeyApostrophe,
	76:                window.KeySlash,
	92:                window.KeyPageUp,
	93:                window.KeyPageDown,
	keycodeEscape:     window.KeyEscape,
	keycodeForwardDel: window.KeyDelete,
	113:               window.KeyLControl,
	114:               window.KeyRControl,
	117:               window.KeyLSystem,
	118:               window.KeyRSystem,
	121:               window.KeyPause,
	122:               window.KeyHome,
	123:               window.KeyEnd,
	124:               window.KeyInsert,
	154:               window.KeyDivide,
	155:               window.KeyMultiply,
	156:               window.KeySubtract,
	157:               window.KeyAdd,
	160:               window.KeyEnter,
}

// toKey translates an AKEYCODE.
func toKey(code int32) window.Key {
	switch {
	case code >= keycode0 && code <= keycode0+9:
		return window.KeyNum0 + window.Key(code-keycode0)
	case code >= keycodeA && code <= keycodeA+25:
		return window.KeyA + window.Key(code-keycodeA)
	case code >= keycodeF1 && code <= keycodeF1+11:
		return window.KeyF1 + window.Key(code-keycodeF1)
	case code >= keycodeNumpad0 && code <= keycodeNumpad0+9:
		return window.KeyNumpad0 + window.Key(code-keycodeNumpad0)
	}
	if k, ok := keycodes[code]; ok {
		return k
	}
	return window.KeyUnknown
}
