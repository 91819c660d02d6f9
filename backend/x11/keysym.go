package x11

import "github.com/go-theft-auto/window"

// Keysym is an X11 key symbol.
type Keysym uint32

// NoSymbol is the empty keysym.
const NoSymbol Keysym = 0

// Keysyms used by the mapping tables, named as in X11/keysymdef.h.
const (
	XKSpace        Keysym = 0x0020
	XKApostrophe   Keysym = 0x0027
	XKComma        Keysym = 0x002c
	XKMinus        Keysym = 0x002d
	XKPeriod       Keysym = 0x002e
	XKSlash        Keysym = 0x002f
	XK0            Keysym = 0x0030
	XK9            Keysym = 0x0039
	XKSemicolon    Keysym = 0x003b
	XKLess         Keysym = 0x003c
	XKEqual        Keysym = 0x003d
	XKUpperA       Keysym = 0x0041
	XKUpperZ       Keysym = 0x005a
	XKBracketLeft  Keysym = 0x005b
	XKBackslash    Keysym = 0x005c
	XKBracketRight Keysym = 0x005d
	XKGrave        Keysym = 0x0060
	XKA            Keysym = 0x0061
	XKZ            Keysym = 0x007a

	XKISOLevel3Shift Keysym = 0xfe03

	XKBackSpace  Keysym = 0xff08
	XKTab        Keysym = 0xff09
	XKClear      Keysym = 0xff0b
	XKReturn     Keysym = 0xff0d
	XKPause      Keysym = 0xff13
	XKScrollLock Keysym = 0xff14
	XKEscape     Keysym = 0xff1b
	XKHome       Keysym = 0xff50
	XKLeft       Keysym = 0xff51
	XKUp         Keysym = 0xff52
	XKRight      Keysym = 0xff53
	XKDown       Keysym = 0xff54
	XKPrior      Keysym = 0xff55
	XKNext       Keysym = 0xff56
	XKEnd        Keysym = 0xff57
	XKSelect     Keysym = 0xff60
	XKPrint      Keysym = 0xff61
	XKExecute    Keysym = 0xff62
	XKInsert     Keysym = 0xff63
	XKUndo       Keysym = 0xff65
	XKRedo       Keysym = 0xff66
	XKMenu       Keysym = 0xff67
	XKFind       Keysym = 0xff68
	XKCancel     Keysym = 0xff69
	XKHelp       Keysym = 0xff6a
	XKBreak      Keysym = 0xff6b
	XKModeSwitch Keysym = 0xff7e
	XKNumLock    Keysym = 0xff7f

	XKKPEnter     Keysym = 0xff8d
	XKKPHome      Keysym = 0xff95
	XKKPLeft      Keysym = 0xff96
	XKKPUp        Keysym = 0xff97
	XKKPRight     Keysym = 0xff98
	XKKPDown      Keysym = 0xff99
	XKKPPageUp    Keysym = 0xff9a
	XKKPPageDown  Keysym = 0xff9b
	XKKPEnd       Keysym = 0xff9c
	XKKPBegin     Keysym = 0xff9d
	XKKPInsert    Keysym = 0xff9e
	XKKPDelete    Keysym = 0xff9f
	XKKPMultiply  Keysym = 0xffaa
	XKKPAdd       Keysym = 0xffab
	XKKPSeparator Keysym = 0xffac
	XKKPSubtract  Keysym = 0xffad
	XKKPDecimal   Keysym = 0xffae
	XKKPDivide    Keysym = 0xffaf
	XKKP0         Keysym = 0xffb0
	XKKP9         Keysym = 0xffb9
	XKKPEqual     Keysym = 0xffbd

	XKF1  Keysym = 0xffbe
	XKF15 Keysym = 0xffcc
	XKF24 Keysym = 0xffd5

	XKShiftL   Keysym = 0xffe1
	XKShiftR   Keysym = 0xffe2
	XKControlL Keysym = 0xffe3
	XKControlR Keysym = 0xffe4
	XKCapsLock Keysym = 0xffe5
	XKMetaL    Keysym = 0xffe7
	XKMetaR    Keysym = 0xffe8
	XKAltL     Keysym = 0xffe9
	XKAltR     Keysym = 0xffea
	XKSuperL   Keysym = 0xffeb
	XKSuperR   Keysym = 0xffec
	XKHyperR   Keysym = 0xffee

	XKDelete Keysym = 0xffff
)

// keysymKeys maps non-alphanumeric keysyms to keys. Letters, digits and
// function keys are ranges handled in keysymToKey.
var keysymKeys = map[Keysym]window.Key{
	XKShiftL:         window.KeyLShift,
	XKShiftR:         window.KeyRShift,
	XKControlL:       window.KeyLControl,
	XKControlR:       window.KeyRControl,
	XKAltL:           window.KeyLAlt,
	XKISOLevel3Shift: window.KeyRAlt,
	XKAltR:           window.KeyRAlt,
	XKSuperL:         window.KeyLSystem,
	XKSuperR:         window.KeyRSystem,
	XKMenu:           window.KeyMenu,
	XKEscape:         window.KeyEscape,
	XKSemicolon:      window.KeySemicolon,
	XKSlash:          window.KeySlash,
	XKEqual:          window.KeyEqual,
	XKMinus:          window.KeyHyphen,
	XKBracketLeft:    window.KeyLBracket,
	XKBracketRight:   window.KeyRBracket,
	XKComma:          window.KeyComma,
	XKPeriod:         window.KeyPeriod,
	XKApostrophe:     window.KeyApostrophe,
	XKBackslash:      window.KeyBackslash,
	XKGrave:          window.KeyGrave,
	XKSpace:          window.KeySpace,
	XKReturn:         window.KeyEnter,
	XKKPEnter:        window.KeyEnter,
	XKBackSpace:      window.KeyBackspace,
	XKTab:            window.KeyTab,
	XKPrior:          window.KeyPageUp,
	XKNext:           window.KeyPageDown,
	XKEnd:            window.KeyEnd,
	XKHome:           window.KeyHome,
	XKInsert:         window.KeyInsert,
	XKDelete:         window.KeyDelete,
	XKKPAdd:          window.KeyAdd,
	XKKPSubtract:     window.KeySubtract,
	XKKPMultiply:     window.KeyMultiply,
	XKKPDivide:       window.KeyDivide,
	XKKPDelete:       window.KeyPeriod,
	XKPause:          window.KeyPause,
	XKLeft:           window.KeyLeft,
	XKRight:          window.KeyRight,
	XKUp:             window.KeyUp,
	XKDown:           window.KeyDown,
	XKKPInsert:       window.KeyNumpad0,
	XKKPEnd:          window.KeyNumpad1,
	XKKPDown:         window.KeyNumpad2,
	XKKPPageDown:     window.KeyNumpad3,
	XKKPLeft:         window.KeyNumpad4,
	XKKPBegin:        window.KeyNumpad5,
	XKKPRight:        window.KeyNumpad6,
	XKKPHome:         window.KeyNumpad7,
	XKKPUp:           window.KeyNumpad8,
	XKKPPageUp:       window.KeyNumpad9,
}

// keyKeysyms is the reverse of keysymKeys, built at init. Where two keysyms
// map to one key the canonical one is pinned below.
var keyKeysyms = func() map[window.Key]Keysym {
	m := make(map[window.Key]Keysym, len(keysymKeys))
	for sym, key := range keysymKeys {
		m[key] = sym
	}
	m[window.KeyRAlt] = XKAltR
	m[window.KeyEnter] = XKReturn
	m[window.KeyPeriod] = XKPeriod
	return m
}()

// keysymToKey returns the layout key a keysym stands for. Only lower-case
// letters map, matching the unshifted column of the keymap.
func keysymToKey(sym Keysym) window.Key {
	switch {
	case sym >= XKA && sym <= XKZ:
		return window.KeyA + window.Key(sym-XKA)
	case sym >= XK0 && sym <= XK9:
		return window.KeyNum0 + window.Key(sym-XK0)
	case sym >= XKF1 && sym <= XKF15:
		return window.KeyF1 + window.Key(sym-XKF1)
	}
	if key, ok := keysymKeys[sym]; ok {
		return key
	}
	return window.KeyUnknown
}

// keyToKeysym returns the keysym that produces key, or NoSymbol.
func keyToKeysym(key window.Key) Keysym {
	switch {
	case key >= window.KeyA && key <= window.KeyZ:
		return XKA + Keysym(key-window.KeyA)
	case key >= window.KeyNum0 && key <= window.KeyNum9:
		return XK0 + Keysym(key-window.KeyNum0)
	case key >= window.KeyF1 && key <= window.KeyF15:
		return XKF1 + Keysym(key-window.KeyF1)
	}
	if sym, ok := keyKeysyms[key]; ok {
		return sym
	}
	return NoSymbol
}

// keysymRune returns the character a keysym types, or 0. Latin-1 keysyms
// equal their code point; keysyms 0x01000100 and up carry it in the low 24
// bits.
func keysymRune(sym Keysym) rune {
	switch {
	case sym >= 0x20 && sym <= 0x7e, sym >= 0xa0 && sym <= 0xff:
		return rune(sym)
	case sym >= 0x01000100 && sym <= 0x0110ffff:
		return rune(sym & 0x00ffffff)
	}
	return 0
}
