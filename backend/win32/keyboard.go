package win32

import (
	"github.com/go-theft-auto/window"
)

// keyDownMask is the GetAsyncKeyState bit set while a key is held.
const keyDownMask = 0x8000

// Keyboard answers keyboard and mouse queries through user32.
type Keyboard struct {
	u       User32
	mapping *Mapping
}

// NewKeyboard creates a keyboard over u. The mapping is built on first
// use.
func NewKeyboard(u User32) *Keyboard {
	return &Keyboard{u: u, mapping: NewMapping(u)}
}

// Mapping returns the scancode mapping the keyboard uses.
func (k *Keyboard) Mapping() *Mapping { return k.mapping }

func (k *Keyboard) down(vk uint32) bool {
	if vk == 0 {
		return false
	}
	return uint16(k.u.GetAsyncKeyState(int32(vk)))&keyDownMask != 0
}

// IsKeyPressed reports whether the virtual key for key is held.
func (k *Keyboard) IsKeyPressed(key window.Key) bool {
	return k.down(keyToVirtualKey(key))
}

// IsScancodePressed reports whether the key at the physical position is
// held.
func (k *Keyboard) IsScancodePressed(scan window.Scancode) bool {
	return k.down(k.mapping.VirtualKey(scan))
}

// Localize returns the key the active layout puts at scan.
func (k *Keyboard) Localize(scan window.Scancode) window.Key {
	return k.mapping.Key(scan)
}

// Delocalize returns the physical position of key under the active layout.
func (k *Keyboard) Delocalize(key window.Key) window.Scancode {
	return k.mapping.Scancode(key)
}

// Description returns the name Windows gives the key, or the English name
// when it has none.
func (k *Keyboard) Description(scan window.Scancode) string {
	if name, ok := consumerKeyNames[scan]; ok {
		return name
	}
	if winScancode(scan) != 0 {
		if name := k.u.GetKeyNameText(keyNameLParam(scan)); name != "" {
			return name
		}
	}
	return window.DefaultDescription(scan)
}

// IsMouseButtonPressed reports whether button is held, honoring swapped
// primary and secondary buttons.
func (k *Keyboard) IsMouseButtonPressed(button window.MouseButton) bool {
	swapped := k.u.GetSystemMetrics(smSwapButton) != 0
	var vk uint32
	switch button {
	case window.MouseButtonLeft:
		vk = vkLButton
		if swapped {
			vk = vkRButton
		}
	case window.MouseButtonRight:
		vk = vkRButton
		if swapped {
			vk = vkLButton
		}
	case window.MouseButtonMiddle:
		vk = vkMButton
	case window.MouseButtonExtra1:
		vk = vkXButton1
	case window.MouseButtonExtra2:
		vk = vkXButton2
	}
	return k.down(vk)
}

// MousePosition returns the cursor position in screen coordinates.
func (k *Keyboard) MousePosition() window.Vector2i {
	x, y, ok := k.u.GetCursorPos()
	if !ok {
		logger.Debug("GetCursorPos failed")
		return window.Vector2i{}
	}
	return window.Vector2i{X: int(x), Y: int(y)}
}

// IsTouchDown always reports false; touch arrives as mouse input.
func (k *Keyboard) IsTouchDown(uint) bool { return false }

// TouchPosition always returns the origin.
func (k *Keyboard) TouchPosition(uint) window.Vector2i { return window.Vector2i{} }
