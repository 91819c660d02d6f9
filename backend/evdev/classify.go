package evdev

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Kind tells what a device was recognized as. A device can be several.
type Kind uint8

const (
	KindKeyboard Kind = 1 << iota
	KindMouse
	KindTouch
)

func (k Kind) String() string {
	if k == 0 {
		return "none"
	}
	var parts []string
	if k&KindKeyboard != 0 {
		parts = append(parts, "keyboard")
	}
	if k&KindMouse != 0 {
		parts = append(parts, "mouse")
	}
	if k&KindTouch != 0 {
		parts = append(parts, "touch")
	}
	return strings.Join(parts, "+")
}

// Capabilities holds the EVIOCGBIT bitmaps of a device, little-endian bit
// order.
type Capabilities struct {
	Events []byte
	Keys   []byte
	Abs    []byte
	Rel    []byte
}

func testBit(bit int, bits []byte) bool {
	if bit/8 >= len(bits) {
		return false
	}
	return bits[bit/8]>>(bit%8)&1 != 0
}

// Classify decides which kinds of input a device delivers. Joysticks and
// other devices report no kind.
func Classify(c Capabilities) Kind {
	var kind Kind

	// any of Escape, the digit row or Q..D, ignoring KEY_RESERVED
	if len(c.Keys) >= 4 && (c.Keys[0]&0xFE|c.Keys[1]|c.Keys[2]|c.Keys[3]) != 0 {
		kind |= KindKeyboard
	}

	abs := testBit(evAbs, c.Events) && testBit(absX, c.Abs) && testBit(absY, c.Abs)
	rel := testBit(evRel, c.Events) && testBit(relX, c.Rel) && testBit(relY, c.Rel)

	if (abs || rel) && testBit(btnMouse, c.Keys) {
		kind |= KindMouse
	}
	if abs && (testBit(btnToolFinger, c.Keys) || testBit(btnTouch, c.Keys)) {
		kind |= KindTouch
	}
	return kind
}

// isEventNode reports whether path names an evdev node such as event7.
func isEventNode(path string) bool {
	base := filepath.Base(path)
	num, ok := strings.CutPrefix(base, "event")
	if !ok || num == "" {
		return false
	}
	_, err := strconv.Atoi(num)
	return err == nil
}
