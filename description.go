package window

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultDescriptions holds English names for keys whose label does not
// depend on the keyboard layout.
var defaultDescriptions = map[Scancode]string{
	ScanEnter:     "Enter",
	ScanEscape:    "Escape",
	ScanBackspace: "Backspace",
	ScanTab:       "Tab",
	ScanSpace:     "Space",

	ScanF1: "F1", ScanF2: "F2", ScanF3: "F3", ScanF4: "F4",
	ScanF5: "F5", ScanF6: "F6", ScanF7: "F7", ScanF8: "F8",
	ScanF9: "F9", ScanF10: "F10", ScanF11: "F11", ScanF12: "F12",
	ScanF13: "F13", ScanF14: "F14", ScanF15: "F15", ScanF16: "F16",
	ScanF17: "F17", ScanF18: "F18", ScanF19: "F19", ScanF20: "F20",
	ScanF21: "F21", ScanF22: "F22", ScanF23: "F23", ScanF24: "F24",

	ScanCapsLock:    "Caps Lock",
	ScanPrintScreen: "Print Screen",
	ScanScrollLock:  "Scroll Lock",

	ScanPause:    "Pause",
	ScanInsert:   "Insert",
	ScanHome:     "Home",
	ScanPageUp:   "Page Up",
	ScanDelete:   "Delete",
	ScanEnd:      "End",
	ScanPageDown: "Page Down",

	ScanLeft:  "Left Arrow",
	ScanRight: "Right Arrow",
	ScanDown:  "Down Arrow",
	ScanUp:    "Up Arrow",

	ScanNumLock:        "Num Lock",
	ScanNumpadDivide:   "Divide (Numpad)",
	ScanNumpadMultiply: "Multiply (Numpad)",
	ScanNumpadMinus:    "Minus (Numpad)",
	ScanNumpadPlus:     "Plus (Numpad)",
	ScanNumpadEqual:    "Equal (Numpad)",
	ScanNumpadEnter:    "Enter (Numpad)",
	ScanNumpadDecimal:  "Decimal (Numpad)",

	ScanNumpad0: "0 (Numpad)", ScanNumpad1: "1 (Numpad)", ScanNumpad2: "2 (Numpad)",
	ScanNumpad3: "3 (Numpad)", ScanNumpad4: "4 (Numpad)", ScanNumpad5: "5 (Numpad)",
	ScanNumpad6: "6 (Numpad)", ScanNumpad7: "7 (Numpad)", ScanNumpad8: "8 (Numpad)",
	ScanNumpad9: "9 (Numpad)",

	ScanApplication: "Application",
	ScanExecute:     "Execute",
	ScanHelp:        "Help",
	ScanMenu:        "Menu",
	ScanSelect:      "Select",
	ScanStop:        "Stop",
	ScanRedo:        "Redo",
	ScanUndo:        "Undo",
	ScanCut:         "Cut",
	ScanCopy:        "Copy",
	ScanPaste:       "Paste",
	ScanSearch:      "Search",

	ScanVolumeMute: "Volume Mute",
	ScanVolumeUp:   "Volume Up",
	ScanVolumeDown: "Volume Down",

	ScanLControl: "Left Control",
	ScanLShift:   "Left Shift",
	ScanLAlt:     "Left Alt",
	ScanLSystem:  "Left System",
	ScanRControl: "Right Control",
	ScanRShift:   "Right Shift",
	ScanRAlt:     "Right Alt",
	ScanRSystem:  "Right System",

	ScanLaunchApplication1: "Launch Application 1",
	ScanLaunchApplication2: "Launch Application 2",
	ScanFavorites:          "Favorites",
	ScanBack:               "Back",
	ScanForward:            "Forward",
	ScanMediaNextTrack:     "Media Next Track",
	ScanMediaPlayPause:     "Media Play Pause",
	ScanMediaPreviousTrack: "Media Previous Track",
	ScanMediaStop:          "Media Stop",
	ScanHomePage:           "Home Page",
	ScanRefresh:            "Refresh",
	ScanLaunchMail:         "Launch Mail",
	ScanLaunchMediaSelect:  "Launch Media Select",
}

// UnknownDescription is returned for positions with neither a layout label
// nor a fixed English name.
const UnknownDescription = "Unknown Scancode"

// DefaultDescription returns the layout-independent English name of s.
// Backends use it when the OS cannot label the key.
func DefaultDescription(s Scancode) string {
	if d, ok := defaultDescriptions[s]; ok {
		return d
	}
	return UnknownDescription
}

// SkipLayoutDescription reports whether s produces input (a character or a
// control code) that should not be used as its label. Enter types "\r", but
// its description is "Enter".
func SkipLayoutDescription(s Scancode) bool {
	switch s {
	case ScanEnter, ScanEscape, ScanBackspace, ScanTab, ScanSpace,
		ScanScrollLock, ScanPause, ScanDelete,
		ScanNumpadDivide, ScanNumpadMultiply, ScanNumpadMinus, ScanNumpadPlus,
		ScanNumpadEqual, ScanNumpadEnter, ScanNumpadDecimal:
		return true
	}
	return false
}

// Describe builds the description of s from the label the layout gives it
// (the character the key types, or an OS key name). Labels are upper-cased
// the way they are printed on key caps. Scancodes in SkipLayoutDescription,
// and empty or unprintable labels, fall back to DefaultDescription.
func Describe(s Scancode, label string) string {
	if SkipLayoutDescription(s) || !printable(label) {
		return DefaultDescription(s)
	}
	// A Caser keeps state between calls and must not be shared.
	return cases.Upper(language.Und).String(label)
}

func printable(label string) bool {
	if strings.TrimSpace(label) == "" {
		return false
	}
	for _, r := range label {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
