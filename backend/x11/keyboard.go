package x11

import (
	"log/slog"

	"github.com/go-theft-auto/window"
)

// Keyboard answers keyboard queries against an X server keymap.
type Keyboard struct {
	src     KeymapSource
	mapping *Mapping
	log     *slog.Logger
}

// NewKeyboard creates a keyboard over src. The scancode mapping is built on
// first use.
func NewKeyboard(src KeymapSource) *Keyboard {
	return &Keyboard{
		src:     src,
		mapping: NewMapping(src),
		log:     logger,
	}
}

// Mapping returns the scancode mapping the keyboard uses.
func (k *Keyboard) Mapping() *Mapping { return k.mapping }

// IsKeyPressed reports whether the key that produces key under the current
// layout is held.
func (k *Keyboard) IsKeyPressed(key window.Key) bool {
	return k.pressed(k.keycodeForKey(key))
}

// IsScancodePressed reports whether the key at the physical position is
// held.
func (k *Keyboard) IsScancodePressed(scan window.Scancode) bool {
	return k.pressed(k.mapping.Keycode(scan))
}

// Localize returns the key produced at the physical position.
func (k *Keyboard) Localize(scan window.Scancode) window.Key {
	return keysymToKey(k.scancodeKeysym(scan))
}

// Delocalize returns the physical position that produces key.
func (k *Keyboard) Delocalize(key window.Key) window.Scancode {
	return k.mapping.Scancode(k.keycodeForKey(key))
}

// Description returns the character the key types, upper-cased, or its
// English name when it types nothing printable. A key typing "q" is
// described as "Q", and "é" as "É".
func (k *Keyboard) Description(scan window.Scancode) string {
	if window.SkipLayoutDescription(scan) {
		return window.DefaultDescription(scan)
	}
	if r := keysymRune(k.scancodeKeysym(scan)); r != 0 {
		return window.Describe(scan, string(r))
	}
	return window.DefaultDescription(scan)
}

// KeyFromKeycode returns the key for an event keycode, trying each keysym
// column in turn until one maps.
func (k *Keyboard) KeyFromKeycode(code uint8) window.Key {
	for col := 0; col < 4; col++ {
		if key := keysymToKey(k.src.Keysym(code, col/2, col%2)); key != window.KeyUnknown {
			return key
		}
	}
	return window.KeyUnknown
}

func (k *Keyboard) keycodeForKey(key window.Key) uint8 {
	if sym := keyToKeysym(key); sym != NoSymbol {
		if code := k.src.KeysymToKeycode(sym); code != 0 {
			return code
		}
	}
	// some servers report no keycode for Alt_R when AltGr is mapped there
	if key == window.KeyRAlt {
		return k.mapping.Keycode(window.ScanRAlt)
	}
	return 0
}

func (k *Keyboard) scancodeKeysym(scan window.Scancode) Keysym {
	code := k.mapping.Keycode(scan)
	if code == 0 {
		return NoSymbol
	}
	return k.src.Keysym(code, 0, 0)
}

func (k *Keyboard) pressed(code uint8) bool {
	if code == 0 {
		return false
	}
	keys, err := k.src.QueryKeymap()
	if err != nil {
		k.log.Debug("query keymap failed", "err", err)
		return false
	}
	return keys[code/8]&(1<<(code%8)) != 0
}
