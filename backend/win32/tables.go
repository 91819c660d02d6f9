package win32

import "github.com/go-theft-auto/window"

// Virtual-key codes.
const (
	vkLButton  = 0x01
	vkRButton  = 0x02
	vkMButton  = 0x04
	vkXButton1 = 0x05
	vkXButton2 = 0x06
	vkBack     = 0x08
	vkTab      = 0x09
	vkReturn   = 0x0D
	vkShift    = 0x10
	vkControl  = 0x11
	vkMenu     = 0x12
	vkPause    = 0x13
	vkEscape   = 0x1B
	vkSpace    = 0x20
	vkPrior    = 0x21
	vkNext     = 0x22
	vkEnd      = 0x23
	vkHome     = 0x24
	vkLeft     = 0x25
	vkUp       = 0x26
	vkRight    = 0x27
	vkDown     = 0x28
	vkInsert   = 0x2D
	vkDelete   = 0x2E
	vkLWin     = 0x5B
	vkRWin     = 0x5C
	vkApps     = 0x5D
	vkNumpad0  = 0x60
	vkMultiply = 0x6A
	vkAdd      = 0x6B
	vkSubtract = 0x6D
	vkDecimal  = 0x6E
	vkDivide   = 0x6F
	vkF1       = 0x70
	vkLShift   = 0xA0
	vkRShift   = 0xA1
	vkLControl = 0xA2
	vkRControl = 0xA3
	vkLMenu    = 0xA4
	vkRMenu    = 0xA5
	vkOEM1     = 0xBA
	vkOEMPlus  = 0xBB
	vkOEMComma = 0xBC
	vkOEMMinus = 0xBD
	vkOEMDot   = 0xBE
	vkOEM2     = 0xBF
	vkOEM3     = 0xC0
	vkOEM4     = 0xDB
	vkOEM5     = 0xDC
	vkOEM6     = 0xDD
	vkOEM7     = 0xDE
)

// MapVirtualKey translation types.
const (
	mapVKToVSC   = 0
	mapVSCToVKEx = 3
)

// extendedPrefix marks a set-1 scan code sent with the E0 prefix.
const extendedPrefix = 0xE000

// winScancodes maps scancodes to Windows set-1 scan codes. Positions
// Windows has no scan code for (Application, Execute, ModeChange, Redo,
// Undo, Cut, Copy, Paste) are absent.
var winScancodes = map[window.Scancode]uint16{
	window.ScanA: 0x1E, window.ScanB: 0x30, window.ScanC: 0x2E, window.ScanD: 0x20,
	window.ScanE: 0x12, window.ScanF: 0x21, window.ScanG: 0x22, window.ScanH: 0x23,
	window.ScanI: 0x17, window.ScanJ: 0x24, window.ScanK: 0x25, window.ScanL: 0x26,
	window.ScanM: 0x32, window.ScanN: 0x31, window.ScanO: 0x18, window.ScanP: 0x19,
	window.ScanQ: 0x10, window.ScanR: 0x13, window.ScanS: 0x1F, window.ScanT: 0x14,
	window.ScanU: 0x16, window.ScanV: 0x2F, window.ScanW: 0x11, window.ScanX: 0x2D,
	window.ScanY: 0x15, window.ScanZ: 0x2C,

	window.ScanNum1: 0x02, window.ScanNum2: 0x03, window.ScanNum3: 0x04,
	window.ScanNum4: 0x05, window.ScanNum5: 0x06, window.ScanNum6: 0x07,
	window.ScanNum7: 0x08, window.ScanNum8: 0x09, window.ScanNum9: 0x0A,
	window.ScanNum0: 0x0B,

	window.ScanEnter:      0x1C,
	window.ScanEscape:     0x01,
	window.ScanBackspace:  0x0E,
	window.ScanTab:        0x0F,
	window.ScanSpace:      0x39,
	window.ScanHyphen:     0x0C,
	window.ScanEqual:      0x0D,
	window.ScanLBracket:   0x1A,
	window.ScanRBracket:   0x1B,
	window.ScanBackslash:  0x2B,
	window.ScanSemicolon:  0x27,
	window.ScanApostrophe: 0x28,
	window.ScanGrave:      0x29,
	window.ScanComma:      0x33,
	window.ScanPeriod:     0x34,
	window.ScanSlash:      0x35,

	window.ScanF1: 0x3B, window.ScanF2: 0x3C, window.ScanF3: 0x3D, window.ScanF4: 0x3E,
	window.ScanF5: 0x3F, window.ScanF6: 0x40, window.ScanF7: 0x41, window.ScanF8: 0x42,
	window.ScanF9: 0x43, window.ScanF10: 0x44, window.ScanF11: 0x57, window.ScanF12: 0x58,
	window.ScanF13: 0x64, window.ScanF14: 0x65, window.ScanF15: 0x66, window.ScanF16: 0x67,
	window.ScanF17: 0x68, window.ScanF18: 0x69, window.ScanF19: 0x6A, window.ScanF20: 0x6B,
	window.ScanF21: 0x6C, window.ScanF22: 0x6D, window.ScanF23: 0x6E, window.ScanF24: 0x76,

	window.ScanCapsLock:    0x3A,
	window.ScanPrintScreen: 0xE037,
	window.ScanScrollLock:  0x46,
	window.ScanPause:       0x45,
	window.ScanInsert:      0xE052,
	window.ScanHome:        0xE047,
	window.ScanPageUp:      0xE049,
	window.ScanDelete:      0xE053,
	window.ScanEnd:         0xE04F,
	window.ScanPageDown:    0xE051,
	window.ScanRight:       0xE04D,
	window.ScanLeft:        0xE04B,
	window.ScanDown:        0xE050,
	window.ScanUp:          0xE048,
	window.ScanNumLock:     0xE045,

	window.ScanNumpadDivide:   0xE035,
	window.ScanNumpadMultiply: 0x37,
	window.ScanNumpadMinus:    0x4A,
	window.ScanNumpadPlus:     0x4E,
	window.ScanNumpadEqual:    0x7E,
	window.ScanNumpadEnter:    0xE01C,
	window.ScanNumpadDecimal:  0x53,

	window.ScanNumpad1: 0x4F, window.ScanNumpad2: 0x50, window.ScanNumpad3: 0x51,
	window.ScanNumpad4: 0x4B, window.ScanNumpad5: 0x4C, window.ScanNumpad6: 0x4D,
	window.ScanNumpad7: 0x47, window.ScanNumpad8: 0x48, window.ScanNumpad9: 0x49,
	window.ScanNumpad0: 0x52,

	window.ScanNonUsBackslash: 0x56,
	window.ScanHelp:           0xE061,
	window.ScanMenu:           0xE05D,
	window.ScanSelect:         0xE01E,

	window.ScanVolumeMute:         0xE020,
	window.ScanVolumeUp:           0xE030,
	window.ScanVolumeDown:         0xE02E,
	window.ScanMediaPlayPause:     0xE022,
	window.ScanMediaStop:          0xE024,
	window.ScanMediaNextTrack:     0xE019,
	window.ScanMediaPreviousTrack: 0xE010,

	window.ScanLControl: 0x1D,
	window.ScanLShift:   0x2A,
	window.ScanLAlt:     0x38,
	window.ScanLSystem:  0xE05B,
	window.ScanRControl: 0xE01D,
	window.ScanRShift:   0x36,
	window.ScanRAlt:     0xE038,
	window.ScanRSystem:  0xE05C,

	window.ScanBack:      0xE06A,
	window.ScanForward:   0xE069,
	window.ScanRefresh:   0xE067,
	window.ScanStop:      0xE068,
	window.ScanSearch:    0xE065,
	window.ScanFavorites: 0xE066,
	window.ScanHomePage:  0xE032,

	window.ScanLaunchApplication1: 0xE06B,
	window.ScanLaunchApplication2: 0xE021,
	window.ScanLaunchMail:         0xE06C,
	window.ScanLaunchMediaSelect:  0xE06D,
}

// messageScancodes is winScancodes inverted, indexed by the 8-bit scan
// code of a key message and its extended flag.
var messageScancodes [2][256]window.Scancode

func init() {
	for i := range messageScancodes {
		for j := range messageScancodes[i] {
			messageScancodes[i][j] = window.ScanUnknown
		}
	}
	for scan, code := range winScancodes {
		ext := 0
		if code&extendedPrefix == extendedPrefix {
			ext = 1
		}
		messageScancodes[ext][code&0xFF] = scan
	}
}

// winScancode returns the set-1 scan code of s, 0 if Windows has none.
func winScancode(s window.Scancode) uint16 {
	return winScancodes[s]
}

// keyNameLParam returns the lParam GetKeyNameText expects for s: scan code
// in bits 16-23 and the extended flag in bit 24. F13-F24 are moved to the
// codes GetKeyNameText knows them by.
func keyNameLParam(s window.Scancode) int32 {
	code := winScancode(s)
	low := code & 0xFF
	switch {
	case code >= 0x64 && code <= 0x6E:
		low += 0x18
	case code == 0x76:
		low = 0x87
	}
	lparam := int32(low) << 16
	if code&extendedPrefix == extendedPrefix {
		lparam |= 1 << 24
	}
	return lparam
}

// consumerKeyNames labels media and browser keys GetKeyNameText does not
// know.
var consumerKeyNames = map[window.Scancode]string{
	window.ScanMediaNextTrack:     "Next Track",
	window.ScanMediaPreviousTrack: "Previous Track",
	window.ScanMediaStop:          "Stop",
	window.ScanMediaPlayPause:     "Play/Pause",
	window.ScanVolumeMute:         "Mute",
	window.ScanVolumeUp:           "Volume Increment",
	window.ScanVolumeDown:         "Volume Decrement",
	window.ScanLaunchMediaSelect:  "Consumer Control Configuration",
	window.ScanLaunchMail:         "Email Reader",
	window.ScanLaunchApplication2: "Calculator",
	window.ScanLaunchApplication1: "Local Machine Browser",
	window.ScanSearch:             "Search",
	window.ScanHomePage:           "Home",
	window.ScanBack:               "Back",
	window.ScanForward:            "Forward",
	window.ScanStop:               "Stop",
	window.ScanRefresh:            "Refresh",
	window.ScanFavorites:          "Bookmarks",
}

var virtualKeys = map[uint32]window.Key{
	vkEscape:   window.KeyEscape,
	vkLControl: window.KeyLControl,
	vkLShift:   window.KeyLShift,
	vkLMenu:    window.KeyLAlt,
	vkLWin:     window.KeyLSystem,
	vkRControl: window.KeyRControl,
	vkRShift:   window.KeyRShift,
	vkRMenu:    window.KeyRAlt,
	vkRWin:     window.KeyRSystem,
	vkApps:     window.KeyMenu,
	vkOEM4:     window.KeyLBracket,
	vkOEM6:     window.KeyRBracket,
	vkOEM1:     window.KeySemicolon,
	vkOEMComma: window.KeyComma,
	vkOEMDot:   window.KeyPeriod,
	vkOEM7:     window.KeyApostrophe,
	vkOEM2:     window.KeySlash,
	vkOEM5:     window.KeyBackslash,
	vkOEM3:     window.KeyGrave,
	vkOEMPlus:  window.KeyEqual,
	vkOEMMinus: window.KeyHyphen,
	vkSpace:    window.KeySpace,
	vkReturn:   window.KeyEnter,
	vkBack:     window.KeyBackspace,
	vkTab:      window.KeyTab,
	vkPrior:    window.KeyPageUp,
	vkNext:     window.KeyPageDown,
	vkEnd:      window.KeyEnd,
	vkHome:     window.KeyHome,
	vkInsert:   window.KeyInsert,
	vkDelete:   window.KeyDelete,
	vkAdd:      window.KeyAdd,
	vkSubtract: window.KeySubtract,
	vkMultiply: window.KeyMultiply,
	vkDivide:   window.KeyDivide,
	vkLeft:     window.KeyLeft,
	vkRight:    window.KeyRight,
	vkUp:       window.KeyUp,
	vkDown:     window.KeyDown,
	vkPause:    window.KeyPause,
}

// virtualKeyToKey returns the key for a virtual-key code. Generic
// VK_SHIFT, VK_CONTROL and VK_MENU are Unknown; key messages resolve them
// from the scan code.
func virtualKeyToKey(vk uint32) window.Key {
	switch {
	case vk >= 'A' && vk <= 'Z':
		return window.KeyA + window.Key(vk-'A')
	case vk >= '0' && vk <= '9':
		return window.KeyNum0 + window.Key(vk-'0')
	case vk >= vkNumpad0 && vk <= vkNumpad0+9:
		return window.KeyNumpad0 + window.Key(vk-vkNumpad0)
	case vk >= vkF1 && vk < vkF1+15:
		return window.KeyF1 + window.Key(vk-vkF1)
	}
	if k, ok := virtualKeys[vk]; ok {
		return k
	}
	return window.KeyUnknown
}

var keyVirtualKeys = func() map[window.Key]uint32 {
	m := make(map[window.Key]uint32, len(virtualKeys))
	for vk, k := range virtualKeys {
		m[k] = vk
	}
	return m
}()

// keyToVirtualKey returns the virtual-key code of k, 0 if none.
func keyToVirtualKey(k window.Key) uint32 {
	switch {
	case k >= window.KeyA && k <= window.KeyZ:
		return 'A' + uint32(k-window.KeyA)
	case k >= window.KeyNum0 && k <= window.KeyNum9:
		return '0' + uint32(k-window.KeyNum0)
	case k >= window.KeyNumpad0 && k <= window.KeyNumpad9:
		return vkNumpad0 + uint32(k-window.KeyNumpad0)
	case k >= window.KeyF1 && k <= window.KeyF15:
		return vkF1 + uint32(k-window.KeyF1)
	}
	return keyVirtualKeys[k]
}

// manualVirtualKeys are scancodes MapVirtualKey resolves wrongly or not
// at all.
var manualVirtualKeys = map[window.Scancode]uint32{
	window.ScanNumpadMinus:   vkSubtract,
	window.ScanNumpadDecimal: vkDecimal,
	window.ScanNumpadDivide:  vkDivide,
	window.ScanPause:         vkPause,
	window.ScanRControl:      vkRControl,
	window.ScanRAlt:          vkRMenu,
}
