package x11

import "github.com/go-theft-auto/window"

// xkbNames maps XKB key names, which identify physical positions, to
// scancodes.
var xkbNames = map[string]window.Scancode{
	"LSGT": window.ScanNonUsBackslash,

	"TLDE": window.ScanGrave,
	"AE01": window.ScanNum1,
	"AE02": window.ScanNum2,
	"AE03": window.ScanNum3,
	"AE04": window.ScanNum4,
	"AE05": window.ScanNum5,
	"AE06": window.ScanNum6,
	"AE07": window.ScanNum7,
	"AE08": window.ScanNum8,
	"AE09": window.ScanNum9,
	"AE10": window.ScanNum0,
	"AE11": window.ScanHyphen,
	"AE12": window.ScanEqual,
	"BKSP": window.ScanBackspace,
	"TAB":  window.ScanTab,
	"AD01": window.ScanQ,
	"AD02": window.ScanW,
	"AD03": window.ScanE,
	"AD04": window.ScanR,
	"AD05": window.ScanT,
	"AD06": window.ScanY,
	"AD07": window.ScanU,
	"AD08": window.ScanI,
	"AD09": window.ScanO,
	"AD10": window.ScanP,
	"AD11": window.ScanLBracket,
	"AD12": window.ScanRBracket,
	"BKSL": window.ScanBackslash,
	"RTRN": window.ScanEnter,

	"CAPS": window.ScanCapsLock,
	"AC01": window.ScanA,
	"AC02": window.ScanS,
	"AC03": window.ScanD,
	"AC04": window.ScanF,
	"AC05": window.ScanG,
	"AC06": window.ScanH,
	"AC07": window.ScanJ,
	"AC08": window.ScanK,
	"AC09": window.ScanL,
	"AC10": window.ScanSemicolon,
	"AC11": window.ScanApostrophe,
	"AC12": window.ScanBackslash,

	"LFSH": window.ScanLShift,
	"AB01": window.ScanZ,
	"AB02": window.ScanX,
	"AB03": window.ScanC,
	"AB04": window.ScanV,
	"AB05": window.ScanB,
	"AB06": window.ScanN,
	"AB07": window.ScanM,
	"AB08": window.ScanComma,
	"AB09": window.ScanPeriod,
	"AB10": window.ScanSlash,
	"RTSH": window.ScanRShift,

	"LCTL": window.ScanLControl,
	"LALT": window.ScanLAlt,
	"SPCE": window.ScanSpace,
	"RCTL": window.ScanRControl,
	"RALT": window.ScanRAlt,
	"LVL3": window.ScanRAlt,
	"ALGR": window.ScanRAlt,
	"LWIN": window.ScanLSystem,
	"RWIN": window.ScanRSystem,

	"HYPR": window.ScanApplication,
	"EXEC": window.ScanExecute,
	"MDSW": window.ScanModeChange,
	"MENU": window.ScanMenu,
	"COMP": window.ScanMenu,
	"SELE": window.ScanSelect,

	"ESC":  window.ScanEscape,
	"FK01": window.ScanF1,
	"FK02": window.ScanF2,
	"FK03": window.ScanF3,
	"FK04": window.ScanF4,
	"FK05": window.ScanF5,
	"FK06": window.ScanF6,
	"FK07": window.ScanF7,
	"FK08": window.ScanF8,
	"FK09": window.ScanF9,
	"FK10": window.ScanF10,
	"FK11": window.ScanF11,
	"FK12": window.ScanF12,

	"PRSC": window.ScanPrintScreen,
	"SCLK": window.ScanScrollLock,
	"PAUS": window.ScanPause,

	"INS":  window.ScanInsert,
	"HOME": window.ScanHome,
	"PGUP": window.ScanPageUp,
	"DELE": window.ScanDelete,
	"END":  window.ScanEnd,
	"PGDN": window.ScanPageDown,

	"UP":   window.ScanUp,
	"RGHT": window.ScanRight,
	"DOWN": window.ScanDown,
	"LEFT": window.ScanLeft,

	"NMLK": window.ScanNumLock,
	"KPDV": window.ScanNumpadDivide,
	"KPMU": window.ScanNumpadMultiply,
	"KPSU": window.ScanNumpadMinus,

	"KP7":  window.ScanNumpad7,
	"KP8":  window.ScanNumpad8,
	"KP9":  window.ScanNumpad9,
	"KPAD": window.ScanNumpadPlus,
	"KP4":  window.ScanNumpad4,
	"KP5":  window.ScanNumpad5,
	"KP6":  window.ScanNumpad6,
	"KP1":  window.ScanNumpad1,
	"KP2":  window.ScanNumpad2,
	"KP3":  window.ScanNumpad3,
	"KPEN": window.ScanNumpadEnter,
	"KP0":  window.ScanNumpad0,
	"KPDL": window.ScanNumpadDecimal,
	"KPEQ": window.ScanNumpadEqual,

	"FK13": window.ScanF13,
	"FK14": window.ScanF14,
	"FK15": window.ScanF15,
	"FK16": window.ScanF16,
	"FK17": window.ScanF17,
	"FK18": window.ScanF18,
	"FK19": window.ScanF19,
	"FK20": window.ScanF20,
	"FK21": window.ScanF21,
	"FK22": window.ScanF22,
	"FK23": window.ScanF23,
	"FK24": window.ScanF24,
	"LMTA": window.ScanLSystem,
	"RMTA": window.ScanRSystem,
	"MUTE": window.ScanVolumeMute,
	"VOL-": window.ScanVolumeDown,
	"VOL+": window.ScanVolumeUp,
	"STOP": window.ScanStop,
	"REDO": window.ScanRedo,
	"AGAI": window.ScanRedo,
	"UNDO": window.ScanUndo,
	"COPY": window.ScanCopy,
	"PAST": window.ScanPaste,
	"FIND": window.ScanSearch,
	"CUT":  window.ScanCut,
	"HELP": window.ScanHelp,

	"I156": window.ScanLaunchApplication1,
	"I157": window.ScanLaunchApplication2,
	"I164": window.ScanFavorites,
	"I166": window.ScanBack,
	"I167": window.ScanForward,
	"I171": window.ScanMediaNextTrack,
	"I172": window.ScanMediaPlayPause,
	"I173": window.ScanMediaPreviousTrack,
	"I174": window.ScanMediaStop,
	"I180": window.ScanHomePage,
	"I181": window.ScanRefresh,
	"I223": window.ScanLaunchMail,
	"I234": window.ScanLaunchMediaSelect,
}

// keypadScancodes resolves the NumLock-on keysyms of the keypad.
var keypadScancodes = map[Keysym]window.Scancode{
	XKKPSeparator: window.ScanNumpadDecimal,
	XKKPDecimal:   window.ScanNumpadDecimal,
	XKKPEqual:     window.ScanNumpadEqual,
	XKKPEnter:     window.ScanNumpadEnter,
}

// keysymScancodes resolves layout-independent keysyms (level 0) of keys
// the XKB name pass did not identify.
var keysymScancodes = map[Keysym]window.Scancode{
	XKReturn:         window.ScanEnter,
	XKEscape:         window.ScanEscape,
	XKBackSpace:      window.ScanBackspace,
	XKTab:            window.ScanTab,
	XKShiftL:         window.ScanLShift,
	XKShiftR:         window.ScanRShift,
	XKControlL:       window.ScanLControl,
	XKControlR:       window.ScanRControl,
	XKAltL:           window.ScanLAlt,
	XKISOLevel3Shift: window.ScanRAlt,
	XKAltR:           window.ScanRAlt,
	XKMetaL:          window.ScanLSystem,
	XKSuperL:         window.ScanLSystem,
	XKMetaR:          window.ScanRSystem,
	XKSuperR:         window.ScanRSystem,
	XKMenu:           window.ScanMenu,

	XKNumLock:    window.ScanNumLock,
	XKCapsLock:   window.ScanCapsLock,
	XKExecute:    window.ScanExecute,
	XKHyperR:     window.ScanApplication,
	XKSelect:     window.ScanSelect,
	XKCancel:     window.ScanStop,
	XKRedo:       window.ScanRedo,
	XKUndo:       window.ScanUndo,
	XKFind:       window.ScanSearch,
	XKModeSwitch: window.ScanModeChange,

	XKPrint:      window.ScanPrintScreen,
	XKScrollLock: window.ScanScrollLock,
	XKPause:      window.ScanPause,
	XKBreak:      window.ScanPause,

	XKDelete: window.ScanDelete,
	XKClear:  window.ScanDelete,
	XKHome:   window.ScanHome,
	XKEnd:    window.ScanEnd,
	XKPrior:  window.ScanPageUp,
	XKNext:   window.ScanPageDown,
	XKInsert: window.ScanInsert,

	XKLeft:  window.ScanLeft,
	XKRight: window.ScanRight,
	XKDown:  window.ScanDown,
	XKUp:    window.ScanUp,

	XKKPDivide:   window.ScanNumpadDivide,
	XKKPMultiply: window.ScanNumpadMultiply,
	XKKPSubtract: window.ScanNumpadMinus,
	XKKPAdd:      window.ScanNumpadPlus,

	XKKPInsert:   window.ScanNumpad0,
	XKKPEnd:      window.ScanNumpad1,
	XKKPDown:     window.ScanNumpad2,
	XKKPPageDown: window.ScanNumpad3,
	XKKPLeft:     window.ScanNumpad4,
	XKKPRight:    window.ScanNumpad6,
	XKKPHome:     window.ScanNumpad7,
	XKKPUp:       window.ScanNumpad8,
	XKKPPageUp:   window.ScanNumpad9,
	XKKPDelete:   window.ScanNumpadDecimal,
	XKKPEqual:    window.ScanNumpadEqual,
	XKKPEnter:    window.ScanNumpadEnter,

	XKSpace:        window.ScanSpace,
	XKMinus:        window.ScanHyphen,
	XKEqual:        window.ScanEqual,
	XKBracketLeft:  window.ScanLBracket,
	XKBracketRight: window.ScanRBracket,
	XKBackslash:    window.ScanBackslash,
	XKSemicolon:    window.ScanSemicolon,
	XKApostrophe:   window.ScanApostrophe,
	XKGrave:        window.ScanGrave,
	XKComma:        window.ScanComma,
	XKPeriod:       window.ScanPeriod,
	XKSlash:        window.ScanSlash,
	XKLess:         window.ScanNonUsBackslash,
}

// digitScancodes is the top-row order of Num0..Num9.
var digitScancodes = [10]window.Scancode{
	window.ScanNum0, window.ScanNum1, window.ScanNum2, window.ScanNum3, window.ScanNum4,
	window.ScanNum5, window.ScanNum6, window.ScanNum7, window.ScanNum8, window.ScanNum9,
}

// numpadScancodes is the keypad digit order Numpad0..Numpad9.
var numpadScancodes = [10]window.Scancode{
	window.ScanNumpad0, window.ScanNumpad1, window.ScanNumpad2, window.ScanNumpad3, window.ScanNumpad4,
	window.ScanNumpad5, window.ScanNumpad6, window.ScanNumpad7, window.ScanNumpad8, window.ScanNumpad9,
}

// translateKeysyms resolves a keycode from its keysyms. The keypad is
// checked first with NumLock forced on, so keypad keys resolve by position.
// Printable keysyms are a last resort and depend on the layout.
func translateKeysyms(numLockOn, base Keysym) window.Scancode {
	if numLockOn >= XKKP0 && numLockOn <= XKKP9 {
		return numpadScancodes[numLockOn-XKKP0]
	}
	if s, ok := keypadScancodes[numLockOn]; ok {
		return s
	}

	switch {
	case base >= XKF1 && base <= XKF24:
		return window.ScanF1 + window.Scancode(base-XKF1)
	case base >= XKA && base <= XKZ:
		return window.ScanA + window.Scancode(base-XKA)
	case base >= XKUpperA && base <= XKUpperZ:
		return window.ScanA + window.Scancode(base-XKUpperA)
	case base >= XK0 && base <= XK9:
		return digitScancodes[base-XK0]
	}
	if s, ok := keysymScancodes[base]; ok {
		return s
	}
	return window.ScanUnknown
}
