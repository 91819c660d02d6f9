package window

// Key identifies a logical key. The key a physical position produces depends
// on the active keyboard layout; see Scancode for the layout-independent side.
type Key int

const (
	KeyUnknown Key = iota - 1
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyEscape
	KeyLControl
	KeyLShift
	KeyLAlt
	KeyLSystem
	KeyRControl
	KeyRShift
	KeyRAlt
	KeyRSystem
	KeyMenu
	KeyLBracket
	KeyRBracket
	KeySemicolon
	KeyComma
	KeyPeriod
	KeyApostrophe
	KeySlash
	KeyBackslash
	KeyGrave
	KeyEqual
	KeyHyphen
	KeySpace
	KeyEnter
	KeyBackspace
	KeyTab
	KeyPageUp
	KeyPageDown
	KeyEnd
	KeyHome
	KeyInsert
	KeyDelete
	KeyAdd
	KeySubtract
	KeyMultiply
	KeyDivide
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyPause
	KeyCount
)

var keyNames = [KeyCount]string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"Num0", "Num1", "Num2", "Num3", "Num4", "Num5", "Num6", "Num7", "Num8", "Num9",
	"Escape",
	"LControl", "LShift", "LAlt", "LSystem",
	"RControl", "RShift", "RAlt", "RSystem",
	"Menu",
	"LBracket", "RBracket", "Semicolon", "Comma", "Period", "Apostrophe",
	"Slash", "Backslash", "Grave", "Equal", "Hyphen",
	"Space", "Enter", "Backspace", "Tab",
	"PageUp", "PageDown", "End", "Home", "Insert", "Delete",
	"Add", "Subtract", "Multiply", "Divide",
	"Left", "Right", "Up", "Down",
	"Numpad0", "Numpad1", "Numpad2", "Numpad3", "Numpad4",
	"Numpad5", "Numpad6", "Numpad7", "Numpad8", "Numpad9",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8",
	"F9", "F10", "F11", "F12", "F13", "F14", "F15",
	"Pause",
}

// Valid reports whether k names a real key (not Unknown, not out of range).
func (k Key) Valid() bool {
	return k >= 0 && k < KeyCount
}

// String returns the key's identifier, e.g. "LControl".
func (k Key) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return keyNames[k]
}

// ParseKey looks a key up by its identifier. It returns KeyUnknown when name
// matches nothing.
func ParseKey(name string) Key {
	for k, n := range keyNames {
		if n == name {
			return Key(k)
		}
	}
	return KeyUnknown
}

// KeyFromRune returns the key whose cap carries r: letters in either case,
// digits, the punctuation keys, and the control codes of Enter, Escape,
// Backspace, Tab and Delete. Any other rune gives KeyUnknown.
func KeyFromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return KeyNum0 + Key(r-'0')
	}
	switch r {
	case '[':
		return KeyLBracket
	case ']':
		return KeyRBracket
	case ';':
		return KeySemicolon
	case ',':
		return KeyComma
	case '.':
		return KeyPeriod
	case '\'':
		return KeyApostrophe
	case '/':
		return KeySlash
	case '\\':
		return KeyBackslash
	case '`':
		return KeyGrave
	case '=':
		return KeyEqual
	case '-':
		return KeyHyphen
	case ' ':
		return KeySpace
	case '\r', '\n':
		return KeyEnter
	case '\b':
		return KeyBackspace
	case '\t':
		return KeyTab
	case 0x1b:
		return KeyEscape
	case 0x7f:
		return KeyDelete
	}
	return KeyUnknown
}

// fixedKeys holds the key of every position that produces the same key in
// every layout, KeyUnknown for the others.
var fixedKeys [ScancodeCount]Key

func init() {
	for i := range fixedKeys {
		fixedKeys[i] = KeyUnknown
	}
	for s, k := range map[Scancode]Key{
		ScanEscape:         KeyEscape,
		ScanEnter:          KeyEnter,
		ScanTab:            KeyTab,
		ScanBackspace:      KeyBackspace,
		ScanSpace:          KeySpace,
		ScanInsert:         KeyInsert,
		ScanDelete:         KeyDelete,
		ScanRight:          KeyRight,
		ScanLeft:           KeyLeft,
		ScanDown:           KeyDown,
		ScanUp:             KeyUp,
		ScanPageUp:         KeyPageUp,
		ScanPageDown:       KeyPageDown,
		ScanHome:           KeyHome,
		ScanEnd:            KeyEnd,
		ScanPause:          KeyPause,
		ScanNumpadDivide:   KeyDivide,
		ScanNumpadMultiply: KeyMultiply,
		ScanNumpadMinus:    KeySubtract,
		ScanNumpadPlus:     KeyAdd,
		ScanNumpadEnter:    KeyEnter,
		ScanNumpadDecimal:  KeyPeriod,
		ScanLShift:         KeyLShift,
		ScanLControl:       KeyLControl,
		ScanLAlt:           KeyLAlt,
		ScanLSystem:        KeyLSystem,
		ScanRShift:         KeyRShift,
		ScanRControl:       KeyRControl,
		ScanRAlt:           KeyRAlt,
		ScanRSystem:        KeyRSystem,
		ScanMenu:           KeyMenu,
	} {
		fixedKeys[s] = k
	}
	for i := 0; i < 9; i++ {
		fixedKeys[ScanNumpad1+Scancode(i)] = KeyNumpad1 + Key(i)
	}
	fixedKeys[ScanNumpad0] = KeyNumpad0
	for i := 0; i < 15; i++ {
		fixedKeys[ScanF1+Scancode(i)] = KeyF1 + Key(i)
	}
}

// FixedKey returns the key produced at s in every layout: Enter, the arrows,
// the numpad, F1 to F15, the modifiers and the like. It returns KeyUnknown
// for layout-dependent positions and for F16 and above, which have no Key.
func FixedKey(s Scancode) Key {
	if !s.Valid() {
		return KeyUnknown
	}
	return fixedKeys[s]
}

// USKey returns the key a layout-dependent position produces on a US
// layout, or KeyUnknown for other positions.
func USKey(s Scancode) Key {
	switch {
	case s >= ScanA && s <= ScanZ:
		return KeyA + Key(s-ScanA)
	case s >= ScanNum1 && s <= ScanNum9:
		return KeyNum1 + Key(s-ScanNum1)
	}
	switch s {
	case ScanNum0:
		return KeyNum0
	case ScanHyphen:
		return KeyHyphen
	case ScanEqual:
		return KeyEqual
	case ScanLBracket:
		return KeyLBracket
	case ScanRBracket:
		return KeyRBracket
	case ScanBackslash, ScanNonUsBackslash:
		return KeyBackslash
	case ScanSemicolon:
		return KeySemicolon
	case ScanApostrophe:
		return KeyApostrophe
	case ScanGrave:
		return KeyGrave
	case ScanComma:
		return KeyComma
	case ScanPeriod:
		return KeyPeriod
	case ScanSlash:
		return KeySlash
	}
	return KeyUnknown
}
