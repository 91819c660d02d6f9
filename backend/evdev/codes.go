package evdev

import "github.com/go-theft-auto/window"

// Event types and codes from linux/input-event-codes.h.
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02
	evAbs = 0x03

	synReport = 0

	relX      = 0x00
	relY      = 0x01
	relHWheel = 0x06
	relWheel  = 0x08

	absX            = 0x00
	absY            = 0x01
	absMTSlot       = 0x2f
	absMTPositionX  = 0x35
	absMTPositionY  = 0x36
	absMTTrackingID = 0x39

	btnMouse      = 0x110
	btnLeft       = 0x110
	btnRight      = 0x111
	btnMiddle     = 0x112
	btnSide       = 0x113
	btnExtra      = 0x114
	btnToolFinger = 0x145
	btnTouch      = 0x14a

	keyBackspace = 14
	keyKPDot     = 83
	keyKPEnter   = 96
	keyDelete    = 111

	keyMax = 0x2ff
	relMax = 0x0f
	absMax = 0x3f
	evMax  = 0x1f
)

// keys maps evdev key codes to keys. Lock keys, SysRq and KEY_RESERVED are
// absent and read as Unknown.
var keys = map[uint16]window.Key{
	1:  window.KeyEscape,
	2:  window.KeyNum1,
	3:  window.KeyNum2,
	4:  window.KeyNum3,
	5:  window.KeyNum4,
	6:  window.KeyNum5,
	7:  window.KeyNum6,
	8:  window.KeyNum7,
	9:  window.KeyNum8,
	10: window.KeyNum9,
	11: window.KeyNum0,
	12: window.KeyHyphen,
	13: window.KeyEqual,

	keyBackspace: window.KeyBackspace,

	15: window.KeyTab,
	16: window.KeyQ,
	17: window.KeyW,
	18: window.KeyE,
	19: window.KeyR,
	20: window.KeyT,
	21: window.KeyY,
	22: window.KeyU,
	23: window.KeyI,
	24: window.KeyO,
	25: window.KeyP,
	26: window.KeyLBracket,
	27: window.KeyRBracket,
	28: window.KeyEnter,
	29: window.KeyLControl,
	30: window.KeyA,
	31: window.KeyS,
	32: window.KeyD,
	33: window.KeyF,
	34: window.KeyG,
	35: window.KeyH,
	36: window.KeyJ,
	37: window.KeyK,
	38: window.KeyL,
	39: window.KeySemicolon,
	40: window.KeyApostrophe,
	41: window.KeyGrave,
	42: window.KeyLShift,
	43: window.KeyBackslash,
	44: window.KeyZ,
	45: window.KeyX,
	46: window.KeyC,
	47: window.KeyV,
	48: window.KeyB,
	49: window.KeyN,
	50: window.KeyM,
	51: window.KeyComma,
	52: window.KeyPeriod,
	53: window.KeySlash,
	54: window.KeyRShift,
	55: window.KeyMultiply,
	56: window.KeyLAlt,
	57: window.KeySpace,
	59: window.KeyF1,
	60: window.KeyF2,
	61: window.KeyF3,
	62: window.KeyF4,
	63: window.KeyF5,
	64: window.KeyF6,
	65: window.KeyF7,
	66: window.KeyF8,
	67: window.KeyF9,
	68: window.KeyF10,
	71: window.KeyNumpad7,
	72: window.KeyNumpad8,
	73: window.KeyNumpad9,
	74: window.KeySubtract,
	75: window.KeyNumpad4,
	76: window.KeyNumpad5,
	77: window.KeyNumpad6,
	78: window.KeyAdd,
	79: window.KeyNumpad1,
	80: window.KeyNumpad2,
	81: window.KeyNumpad3,
	82: window.KeyNumpad0,

	keyKPDot: window.KeyDelete,

	87: window.KeyF11,
	88: window.KeyF12,

	keyKPEnter: window.KeyEnter,

	97:  window.KeyRControl,
	98:  window.KeyDivide,
	100: window.KeyRAlt,
	102: window.KeyHome,
	103: window.KeyUp,
	104: window.KeyPageUp,
	105: window.KeyLeft,
	106: window.KeyRight,
	107: window.KeyEnd,
	108: window.KeyDown,
	109: window.KeyPageDown,
	110: window.KeyInsert,

	keyDelete: window.KeyDelete,

	119: window.KeyPause,
	125: window.KeyLSystem,
	126: window.KeyRSystem,
	183: window.KeyF13,
	184: window.KeyF14,
	185: window.KeyF15,
}

func toKey(code uint16) window.Key {
	if k, ok := keys[code]; ok {
		return k
	}
	return window.KeyUnknown
}

func toMouseButton(code uint16) (window.MouseButton, bool) {
	switch code {
	case btnLeft:
		return window.MouseButtonLeft, true
	case btnRight:
		return window.MouseButtonRight, true
	case btnMiddle:
		return window.MouseButtonMiddle, true
	case btnSide:
		return window.MouseButtonExtra1, true
	case btnExtra:
		return window.MouseButtonExtra2, true
	}
	return 0, false
}

// specialText is the control character a key types when the terminal
// cannot report it: 8 for Backspace, 127 for Delete.
func specialText(k window.Key) rune {
	switch k {
	case window.KeyBackspace:
		return 8
	case window.KeyDelete:
		return 127
	}
	return 0
}
