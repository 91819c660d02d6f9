// Package x11 maps X11 keycodes, keysyms and XKB key names to the portable
// key and scancode tables, and normalizes X11 input into window events.
package x11

import (
	"sync"

	"github.com/go-theft-auto/window"
)

// minKeycode is the lowest keycode X11 ever assigns.
const minKeycode = 8

// KeymapSource is the view of the X server keymap the mapping needs. Conn
// implements it over a live connection; tests use fixed layouts.
type KeymapSource interface {
	// KeycodeRange returns the keycodes the server uses.
	KeycodeRange() (min, max uint8)
	// KeyName returns the 4-character XKB name of code, "" if unknown.
	KeyName(code uint8) string
	// Keysym returns the keysym at group and shift level, NoSymbol if none.
	Keysym(code uint8, group, level int) Keysym
	// KeysymToKeycode returns the first keycode producing sym, 0 if none.
	KeysymToKeycode(sym Keysym) uint8
	// QueryKeymap returns the pressed state of all 256 keycodes, one bit
	// each.
	QueryKeymap() ([32]byte, error)
}

// Mapping is the two-way table between scancodes and X11 keycodes. It is
// built once, on first use, from the XKB key names, then from keysyms for
// the keycodes the names did not resolve. A source without names that uses
// the Linux evdev keycodes gets the standard names of those keycodes.
type Mapping struct {
	once sync.Once
	src  KeymapSource

	scanToCode [window.ScancodeCount]uint8
	codeToScan [256]window.Scancode
}

// NewMapping creates an unbuilt mapping over src.
func NewMapping(src KeymapSource) *Mapping {
	return &Mapping{src: src}
}

// Build fills the tables. Only the first call does any work.
func (m *Mapping) Build() {
	m.once.Do(m.build)
}

func (m *Mapping) build() {
	clear(m.scanToCode[:])
	for i := range m.codeToScan {
		m.codeToScan[i] = window.ScanUnknown
	}

	lo, hi := m.src.KeycodeRange()
	evdev := usesEvdevKeycodes(m.src)
	for code := int(max(lo, minKeycode)); code <= int(hi); code++ {
		name := m.src.KeyName(uint8(code))
		if name == "" && evdev {
			name = evdevKeyName(uint8(code))
		}
		scan, ok := xkbNames[name]
		if !ok {
			continue
		}
		m.scanToCode[scan] = uint8(code)
		m.codeToScan[code] = scan
	}

	for code := minKeycode; code < len(m.codeToScan); code++ {
		if m.codeToScan[code] != window.ScanUnknown {
			continue
		}
		kc := uint8(code)
		scan := translateKeysyms(m.src.Keysym(kc, 0, 1), m.src.Keysym(kc, 0, 0))
		if scan != window.ScanUnknown && m.scanToCode[scan] == 0 {
			m.scanToCode[scan] = kc
		}
		m.codeToScan[code] = scan
	}

	logger.Debug("keymap built", "min", lo, "max", hi, "evdev_keycodes", evdev, "mapped", m.mapped())
}

func (m *Mapping) mapped() int {
	n := 0
	for _, code := range m.scanToCode {
		if code != 0 {
			n++
		}
	}
	return n
}

// Keycode returns the keycode at the physical position of scan, 0 if the
// keyboard has no such key.
func (m *Mapping) Keycode(scan window.Scancode) uint8 {
	m.Build()
	if !scan.Valid() {
		return 0
	}
	return m.scanToCode[scan]
}

// Scancode returns the physical position of code.
func (m *Mapping) Scancode(code uint8) window.Scancode {
	m.Build()
	if code < minKeycode {
		return window.ScanUnknown
	}
	return m.codeToScan[code]
}
