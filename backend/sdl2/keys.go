package sdl2

import (
	"unicode"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/go-theft-auto/window"
)

// Keycodes of keys that type nothing carry their scancode under this bit.
const scancodeMask = 1 << 30

// sdlToScan maps SDL's USB-HID scancodes to positions. Letters, digits,
// F-keys and the numpad are filled in by init.
var sdlToScan = map[sdl.Scancode]window.Scancode{
	sdl.SCANCODE_RETURN:         window.ScanEnter,
	sdl.SCANCODE_ESCAPE:         window.ScanEscape,
	sdl.SCANCODE_BACKSPACE:      window.ScanBackspace,
	sdl.SCANCODE_TAB:            window.ScanTab,
	sdl.SCANCODE_SPACE:          window.ScanSpace,
	sdl.SCANCODE_MINUS:          window.ScanHyphen,
	sdl.SCANCODE_EQUALS:         window.ScanEqual,
	sdl.SCANCODE_LEFTBRACKET:    window.ScanLBracket,
	sdl.SCANCODE_RIGHTBRACKET:   window.ScanRBracket,
	sdl.SCANCODE_BACKSLASH:      window.ScanBackslash,
	sdl.SCANCODE_SEMICOLON:      window.ScanSemicolon,
	sdl.SCANCODE_APOSTROPHE:     window.ScanApostrophe,
	sdl.SCANCODE_GRAVE:          window.ScanGrave,
	sdl.SCANCODE_COMMA:          window.ScanComma,
	sdl.SCANCODE_PERIOD:         window.ScanPeriod,
	sdl.SCANCODE_SLASH:          window.ScanSlash,
	sdl.SCANCODE_NONUSBACKSLASH: window.ScanNonUsBackslash,
	sdl.SCANCODE_CAPSLOCK:       window.ScanCapsLock,
	sdl.SCANCODE_PRINTSCREEN:    window.ScanPrintScreen,
	sdl.SCANCODE_SCROLLLOCK:     window.ScanScrollLock,
	sdl.SCANCODE_PAUSE:          window.ScanPause,
	sdl.SCANCODE_INSERT:         window.ScanInsert,
	sdl.SCANCODE_HOME:           window.ScanHome,
	sdl.SCANCODE_PAGEUP:         window.ScanPageUp,
	sdl.SCANCODE_DELETE:         window.ScanDelete,
	sdl.SCANCODE_END:            window.ScanEnd,
	sdl.SCANCODE_PAGEDOWN:       window.ScanPageDown,
	sdl.SCANCODE_RIGHT:          window.ScanRight,
	sdl.SCANCODE_LEFT:           window.ScanLeft,
	sdl.SCANCODE_DOWN:           window.ScanDown,
	sdl.SCANCODE_UP:             window.ScanUp,

	sdl.SCANCODE_NUMLOCKCLEAR: window.ScanNumLock,
	sdl.SCANCODE_KP_DIVIDE:    window.ScanNumpadDivide,
	sdl.SCANCODE_KP_MULTIPLY:  window.ScanNumpadMultiply,
	sdl.SCANCODE_KP_MINUS:     window.ScanNumpadMinus,
	sdl.SCANCODE_KP_PLUS:      window.ScanNumpadPlus,
	sdl.SCANCODE_KP_ENTER:     window.ScanNumpadEnter,
	sdl.SCANCODE_KP_PERIOD:    window.ScanNumpadDecimal,
	sdl.SCANCODE_KP_EQUALS:    window.ScanNumpadEqual,

	sdl.SCANCODE_APPLICATION: window.ScanApplication,
	sdl.SCANCODE_EXECUTE:     window.ScanExecute,
	sdl.SCANCODE_HELP:        window.ScanHelp,
	sdl.SCANCODE_MENU:        window.ScanMenu,
	sdl.SCANCODE_SELECT:      window.ScanSelect,
	sdl.SCANCODE_STOP:        window.ScanStop,
	sdl.SCANCODE_AGAIN:       window.ScanRedo,
	sdl.SCANCODE_UNDO:        window.ScanUndo,
	sdl.SCANCODE_CUT:         window.ScanCut,
	sdl.SCANCODE_COPY:        window.ScanCopy,
	sdl.SCANCODE_PASTE:       window.ScanPaste,
	sdl.SCANCODE_AC_SEARCH:   window.ScanSearch,
	sdl.SCANCODE_MUTE:        window.ScanVolumeMute,
	sdl.SCANCODE_VOLUMEUP:    window.ScanVolumeUp,
	sdl.SCANCODE_VOLUMEDOWN:  window.ScanVolumeDown,

	sdl.SCANCODE_LCTRL:  window.ScanLControl,
	sdl.SCANCODE_LSHIFT: window.ScanLShift,
	sdl.SCANCODE_LALT:   window.ScanLAlt,
	sdl.SCANCODE_LGUI:   window.ScanLSystem,
	sdl.SCANCODE_RCTRL:  window.ScanRControl,
	sdl.SCANCODE_RSHIFT: window.ScanRShift,
	sdl.SCANCODE_RALT:   window.ScanRAlt,
	sdl.SCANCODE_RGUI:   window.ScanRSystem,
	sdl.SCANCODE_MODE:   window.ScanModeChange,

	sdl.SCANCODE_AUDIONEXT:    window.ScanMediaNextTrack,
	sdl.SCANCODE_AUDIOPREV:    window.ScanMediaPreviousTrack,
	sdl.SCANCODE_AUDIOSTOP:    window.ScanMediaStop,
	sdl.SCANCODE_AUDIOPLAY:    window.ScanMediaPlayPause,
	sdl.SCANCODE_MEDIASELECT:  window.ScanLaunchMediaSelect,
	sdl.SCANCODE_MAIL:         window.ScanLaunchMail,
	sdl.SCANCODE_COMPUTER:     window.ScanLaunchApplication1,
	sdl.SCANCODE_CALCULATOR:   window.ScanLaunchApplication2,
	sdl.SCANCODE_AC_HOME:      window.ScanHomePage,
	sdl.SCANCODE_AC_BACK:      window.ScanBack,
	sdl.SCANCODE_AC_FORWARD:   window.ScanForward,
	sdl.SCANCODE_AC_REFRESH:   window.ScanRefresh,
	sdl.SCANCODE_AC_BOOKMARKS: window.ScanFavorites,
}

// scanToSDL is the inverse of sdlToScan, SCANCODE_UNKNOWN where SDL has no
// code.
var scanToSDL [window.ScancodeCount]sdl.Scancode

// keyCodes holds the keycode SDL reports for each key: the character for
// keys that type one, the masked scancode of its fixed position otherwise.
var keyCodes [window.KeyCount]sdl.Keycode

func init() {
	for i := 0; i < 26; i++ {
		sdlToScan[sdl.SCANCODE_A+sdl.Scancode(i)] = window.ScanA + window.Scancode(i)
	}
	// HID orders the digit row 1..9, 0 like the Scancode table.
	for i := 0; i < 10; i++ {
		sdlToScan[sdl.SCANCODE_1+sdl.Scancode(i)] = window.ScanNum1 + window.Scancode(i)
		sdlToScan[sdl.SCANCODE_KP_1+sdl.Scancode(i)] = window.ScanNumpad1 + window.Scancode(i)
	}
	for i := 0; i < 12; i++ {
		sdlToScan[sdl.SCANCODE_F1+sdl.Scancode(i)] = window.ScanF1 + window.Scancode(i)
		sdlToScan[sdl.SCANCODE_F13+sdl.Scancode(i)] = window.ScanF13 + window.Scancode(i)
	}

	for i := range scanToSDL {
		scanToSDL[i] = sdl.SCANCODE_UNKNOWN
	}
	for code, s := range sdlToScan {
		scanToSDL[s] = code
	}

	for r := rune(0); r <= 0x7f; r++ {
		if r == '\n' || unicode.IsUpper(r) {
			continue
		}
		if k := window.KeyFromRune(r); k.Valid() && keyCodes[k] == 0 {
			keyCodes[k] = sdl.Keycode(r)
		}
	}
	for s := window.Scancode(0); s < window.ScancodeCount; s++ {
		k := window.FixedKey(s)
		if k.Valid() && keyCodes[k] == 0 && scanToSDL[s] != sdl.SCANCODE_UNKNOWN {
			keyCodes[k] = sdl.Keycode(scanToSDL[s]) | scancodeMask
		}
	}
}

func toScancode(code sdl.Scancode) window.Scancode {
	if s, ok := sdlToScan[code]; ok {
		return s
	}
	return window.ScanUnknown
}

// keycodeKey turns an SDL keycode into a Key. Printable keycodes are the
// character the key types.
func keycodeKey(code sdl.Keycode) window.Key {
	if code&scancodeMask != 0 {
		return window.FixedKey(toScancode(sdl.Scancode(code &^ scancodeMask)))
	}
	return window.KeyFromRune(rune(code))
}
