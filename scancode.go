package window

// Scancode identifies a physical key position, independent of the keyboard
// layout. ScanQ is "the key right of Tab" whether it prints Q or A.
type Scancode int

const (
	ScanUnknown Scancode = iota - 1
	ScanA
	ScanB
	ScanC
	ScanD
	ScanE
	ScanF
	ScanG
	ScanH
	ScanI
	ScanJ
	ScanK
	ScanL
	ScanM
	ScanN
	ScanO
	ScanP
	ScanQ
	ScanR
	ScanS
	ScanT
	ScanU
	ScanV
	ScanW
	ScanX
	ScanY
	ScanZ
	ScanNum1
	ScanNum2
	ScanNum3
	ScanNum4
	ScanNum5
	ScanNum6
	ScanNum7
	ScanNum8
	ScanNum9
	ScanNum0
	ScanEnter
	ScanEscape
	ScanBackspace
	ScanTab
	ScanSpace
	ScanHyphen
	ScanEqual
	ScanLBracket
	ScanRBracket
	ScanBackslash
	ScanSemicolon
	ScanApostrophe
	ScanGrave
	ScanComma
	ScanPeriod
	ScanSlash
	ScanF1
	ScanF2
	ScanF3
	ScanF4
	ScanF5
	ScanF6
	ScanF7
	ScanF8
	ScanF9
	ScanF10
	ScanF11
	ScanF12
	ScanF13
	ScanF14
	ScanF15
	ScanF16
	ScanF17
	ScanF18
	ScanF19
	ScanF20
	ScanF21
	ScanF22
	ScanF23
	ScanF24
	ScanCapsLock
	ScanPrintScreen
	ScanScrollLock
	ScanPause
	ScanInsert
	ScanHome
	ScanPageUp
	ScanDelete
	ScanEnd
	ScanPageDown
	ScanRight
	ScanLeft
	ScanDown
	ScanUp
	ScanNumLock
	ScanNumpadDivide
	ScanNumpadMultiply
	ScanNumpadMinus
	ScanNumpadPlus
	ScanNumpadEqual
	ScanNumpadEnter
	ScanNumpadDecimal
	ScanNumpad1
	ScanNumpad2
	ScanNumpad3
	ScanNumpad4
	ScanNumpad5
	ScanNumpad6
	ScanNumpad7
	ScanNumpad8
	ScanNumpad9
	ScanNumpad0
	ScanNonUsBackslash
	ScanApplication
	ScanExecute
	ScanModeChange
	ScanHelp
	ScanMenu
	ScanSelect
	ScanRedo
	ScanUndo
	ScanCut
	ScanCopy
	ScanPaste
	ScanVolumeMute
	ScanVolumeUp
	ScanVolumeDown
	ScanMediaPlayPause
	ScanMediaStop
	ScanMediaNextTrack
	ScanMediaPreviousTrack
	ScanLControl
	ScanLShift
	ScanLAlt
	ScanLSystem
	ScanRControl
	ScanRShift
	ScanRAlt
	ScanRSystem
	ScanBack
	ScanForward
	ScanRefresh
	ScanStop
	ScanSearch
	ScanFavorites
	ScanHomePage
	ScanLaunchApplication1
	ScanLaunchApplication2
	ScanLaunchMail
	ScanLaunchMediaSelect
	ScancodeCount
)

var scancodeNames = [ScancodeCount]string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"Num1", "Num2", "Num3", "Num4", "Num5", "Num6", "Num7", "Num8", "Num9", "Num0",
	"Enter", "Escape", "Backspace", "Tab", "Space",
	"Hyphen", "Equal", "LBracket", "RBracket", "Backslash",
	"Semicolon", "Apostrophe", "Grave", "Comma", "Period", "Slash",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"F13", "F14", "F15", "F16", "F17", "F18", "F19", "F20", "F21", "F22", "F23", "F24",
	"CapsLock", "PrintScreen", "ScrollLock", "Pause",
	"Insert", "Home", "PageUp", "Delete", "End", "PageDown",
	"Right", "Left", "Down", "Up",
	"NumLock", "NumpadDivide", "NumpadMultiply", "NumpadMinus", "NumpadPlus",
	"NumpadEqual", "NumpadEnter", "NumpadDecimal",
	"Numpad1", "Numpad2", "Numpad3", "Numpad4", "Numpad5",
	"Numpad6", "Numpad7", "Numpad8", "Numpad9", "Numpad0",
	"NonUsBackslash", "Application", "Execute", "ModeChange", "Help", "Menu",
	"Select", "Redo", "Undo", "Cut", "Copy", "Paste",
	"VolumeMute", "VolumeUp", "VolumeDown",
	"MediaPlayPause", "MediaStop", "MediaNextTrack", "MediaPreviousTrack",
	"LControl", "LShift", "LAlt", "LSystem",
	"RControl", "RShift", "RAlt", "RSystem",
	"Back", "Forward", "Refresh", "Stop", "Search", "Favorites", "HomePage",
	"LaunchApplication1", "LaunchApplication2", "LaunchMail", "LaunchMediaSelect",
}

// Valid reports whether s names a real physical position.
func (s Scancode) Valid() bool {
	return s >= 0 && s < ScancodeCount
}

// String returns the scancode's identifier, e.g. "NumpadEnter".
func (s Scancode) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return scancodeNames[s]
}

// ParseScancode looks a scancode up by its identifier.
func ParseScancode(name string) Scancode {
	for s, n := range scancodeNames {
		if n == name {
			return Scancode(s)
		}
	}
	return ScanUnknown
}
