package x11

import "strconv"

// Keycodes of the arrow keys under the evdev numbering. Left and Right are
// the same on every layout, so their keysyms tell the numbering apart.
const (
	evdevLeft  uint8 = 113
	evdevRight uint8 = 114
)

// evdevKeyNames holds the XKB names of the keycodes X servers use on Linux,
// where a keycode is the kernel key code plus 8. Keycodes from 120 up not
// listed here are named "I" and the keycode.
var evdevKeyNames = map[uint8]string{
	9:  "ESC",
	10: "AE01",
	11: "AE02",
	12: "AE03",
	13: "AE04",
	14: "AE05",
	15: "AE06",
	16: "AE07",
	17: "AE08",
	18: "AE09",
	19: "AE10",
	20: "AE11",
	21: "AE12",
	22: "BKSP",
	23: "TAB",
	24: "AD01",
	25: "AD02",
	26: "AD03",
	27: "AD04",
	28: "AD05",
	29: "AD06",
	30: "AD07",
	31: "AD08",
	32: "AD09",
	33: "AD10",
	34: "AD11",
	35: "AD12",
	36: "RTRN",
	37: "LCTL",
	38: "AC01",
	39: "AC02",
	40: "AC03",
	41: "AC04",
	42: "AC05",
	43: "AC06",
	44: "AC07",
	45: "AC08",
	46: "AC09",
	47: "AC10",
	48: "AC11",
	49: "TLDE",
	50: "LFSH",
	51: "BKSL",
	52: "AB01",
	53: "AB02",
	54: "AB03",
	55: "AB04",
	56: "AB05",
	57: "AB06",
	58: "AB07",
	59: "AB08",
	60: "AB09",
	61: "AB10",
	62: "RTSH",
	63: "KPMU",
	64: "LALT",
	65: "SPCE",
	66: "CAPS",
	67: "FK01",
	68: "FK02",
	69: "FK03",
	70: "FK04",
	71: "FK05",
	72: "FK06",
	73: "FK07",
	74: "FK08",
	75: "FK09",
	76: "FK10",
	77: "NMLK",
	78: "SCLK",
	79: "KP7",
	80: "KP8",
	81: "KP9",
	82: "KPSU",
	83: "KP4",
	84: "KP5",
	85: "KP6",
	86: "KPAD",
	87: "KP1",
	88: "KP2",
	89: "KP3",
	90: "KP0",
	91: "KPDL",

	92:  "LVL3",
	94:  "LSGT",
	95:  "FK11",
	96:  "FK12",
	97:  "AB11",
	104: "KPEN",
	105: "RCTL",
	106: "KPDV",
	107: "PRSC",
	108: "RALT",
	110: "HOME",
	111: "UP",
	112: "PGUP",
	113: "LEFT",
	114: "RGHT",
	115: "END",
	116: "DOWN",
	117: "PGDN",
	118: "INS",
	119: "DELE",
	121: "MUTE",
	122: "VOL-",
	123: "VOL+",
	124: "POWR",
	125: "KPEQ",
	127: "PAUS",
	133: "LWIN",
	134: "RWIN",
	135: "COMP",
	136: "STOP",
	137: "AGAI",
	138: "PROP",
	139: "UNDO",
	140: "FRNT",
	141: "COPY",
	142: "OPEN",
	143: "PAST",
	144: "FIND",
	145: "CUT",
	146: "HELP",

	191: "FK13",
	192: "FK14",
	193: "FK15",
	194: "FK16",
	195: "FK17",
	196: "FK18",
	197: "FK19",
	198: "FK20",
	199: "FK21",
	200: "FK22",
	201: "FK23",
	202: "FK24",
}

// usesEvdevKeycodes reports whether src numbers its keycodes the evdev way.
func usesEvdevKeycodes(src KeymapSource) bool {
	return src.Keysym(evdevLeft, 0, 0) == XKLeft && src.Keysym(evdevRight, 0, 0) == XKRight
}

// evdevKeyName returns the XKB name of code under the evdev numbering.
func evdevKeyName(code uint8) string {
	if name, ok := evdevKeyNames[code]; ok {
		return name
	}
	if code >= 120 {
		return "I" + strconv.Itoa(int(code))
	}
	return ""
}
