package window

// InputState is the key-state bitmap a backend keeps from the events it has
// seen. Event modifiers are derived from it, never re-queried from the OS, so
// they always agree with the stream the application receives.
//
// InputState is not synchronized; backends guard it with their own lock.
type InputState struct {
	// Mouse position as last reported
	Mouse Vector2i

	// Mouse buttons - current state and per-frame edges
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Keyboard - current state and per-frame edges
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool
	keyUp      [KeyCount]bool

	scanDown [ScancodeCount]bool
}

// NewInputState creates a new InputState with nothing held.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame edges. Held keys and buttons stay held.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.keyPressed[:])
	clear(s.keyUp[:])
}

// ReleaseAll forgets every held key and button, e.g. after focus loss.
func (s *InputState) ReleaseAll() {
	s.Reset()
	clear(s.mouseDown[:])
	clear(s.keyDown[:])
	clear(s.scanDown[:])
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if !button.Valid() {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if !key.Valid() {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if !down && wasDown {
		s.keyUp[key] = true
	}
}

// SetScancode sets physical key state.
func (s *InputState) SetScancode(code Scancode, down bool) {
	if !code.Valid() {
		return
	}
	s.scanDown[code] = down
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if !button.Valid() {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button went down since the last Reset.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if !button.Valid() {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button went up since the last Reset.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if !button.Valid() {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if !key.Valid() {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key went down since the last Reset.
func (s *InputState) KeyPressed(key Key) bool {
	if !key.Valid() {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key went up since the last Reset.
func (s *InputState) KeyReleased(key Key) bool {
	if !key.Valid() {
		return false
	}
	return s.keyUp[key]
}

// ScancodeDown returns true if a physical key is currently held.
func (s *InputState) ScancodeDown(code Scancode) bool {
	if !code.Valid() {
		return false
	}
	return s.scanDown[code]
}

// Modifiers reports which modifier families are held, left or right.
func (s *InputState) Modifiers() (alt, control, shift, system bool) {
	alt = s.keyDown[KeyLAlt] || s.keyDown[KeyRAlt]
	control = s.keyDown[KeyLControl] || s.keyDown[KeyRControl]
	shift = s.keyDown[KeyLShift] || s.keyDown[KeyRShift]
	system = s.keyDown[KeyLSystem] || s.keyDown[KeyRSystem]
	return alt, control, shift, system
}

// NewKeyEvent builds a KeyEvent with modifiers read from the bitmap as it is
// now. Call it before recording the key itself: pressing LShift reports
// Shift=false, releasing it reports Shift=true.
func (s *InputState) NewKeyEvent(code Key, scan Scancode) KeyEvent {
	ev := KeyEvent{Code: code, Scancode: scan}
	ev.Alt, ev.Control, ev.Shift, ev.System = s.Modifiers()
	return ev
}

// KeyTransition builds the press or release event for a key and records it.
func (s *InputState) KeyTransition(code Key, scan Scancode, down bool) Event {
	ev := s.NewKeyEvent(code, scan)
	s.SetKey(code, down)
	s.SetScancode(scan, down)
	if down {
		return KeyPressed{ev}
	}
	return KeyReleased{ev}
}

// PressedKeys lists every held key in enum order.
func (s *InputState) PressedKeys() []Key {
	var keys []Key
	for k := Key(0); k < KeyCount; k++ {
		if s.keyDown[k] {
			keys = append(keys, k)
		}
	}
	return keys
}
