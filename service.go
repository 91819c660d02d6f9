package window

import (
	"errors"
	"log/slog"
)

var (
	// ErrUnsupported is returned when a backend cannot run on this system.
	ErrUnsupported = errors.New("window: backend not supported on this platform")
	// ErrNoDevices is returned when a raw-input backend finds nothing to read.
	ErrNoDevices = errors.New("window: no input devices found")
)

// Keyboard is the keyboard half of a platform backend.
//
// Every method must return false or an Unknown value, never panic, for
// Unknown or out-of-range input and for keys the platform cannot map.
type Keyboard interface {
	IsKeyPressed(Key) bool
	IsScancodePressed(Scancode) bool
	Localize(Scancode) Key
	Delocalize(Key) Scancode
	Description(Scancode) string
}

// Pointer is the mouse and touch half of a platform backend.
type Pointer interface {
	IsMouseButtonPressed(MouseButton) bool
	MousePosition() Vector2i
	IsTouchDown(finger uint) bool
	TouchPosition(finger uint) Vector2i
}

// EventSource hands out normalized events one at a time. PollEvent never
// blocks; it returns false when nothing is pending.
type EventSource interface {
	PollEvent() (Event, bool)
}

// NoPointer is a Pointer for backends without mouse or touch input.
type NoPointer struct{}

func (NoPointer) IsMouseButtonPressed(MouseButton) bool { return false }
func (NoPointer) MousePosition() Vector2i               { return Vector2i{} }
func (NoPointer) IsTouchDown(uint) bool                 { return false }
func (NoPointer) TouchPosition(uint) Vector2i           { return Vector2i{} }

// NoEvents is an EventSource that never has anything.
type NoEvents struct{}

func (NoEvents) PollEvent() (Event, bool) { return nil, false }

// Service is the input query object an application creates once, from the
// backend of its platform, and passes to everything that reads input.
type Service struct {
	keyboard Keyboard
	pointer  Pointer
	events   EventSource
	clip     Clipboard
	log      *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithPointer sets the mouse and touch source.
func WithPointer(p Pointer) ServiceOption {
	return func(s *Service) { s.pointer = p }
}

// WithEvents sets the event source.
func WithEvents(src EventSource) ServiceOption {
	return func(s *Service) { s.events = src }
}

// WithClipboard sets the clipboard.
func WithClipboard(c Clipboard) ServiceOption {
	return func(s *Service) { s.clip = c }
}

// WithLogger replaces the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.log = l }
}

// NewService wraps a keyboard backend. A backend that also implements
// Pointer, EventSource or Clipboard is used for those too unless an option
// overrides it.
func NewService(kb Keyboard, opts ...ServiceOption) *Service {
	s := &Service{
		keyboard: kb,
		pointer:  NoPointer{},
		events:   NoEvents{},
		clip:     &NoClipboard{},
		log:      inputLogger,
	}
	if p, ok := kb.(Pointer); ok {
		s.pointer = p
	}
	if e, ok := kb.(EventSource); ok {
		s.events = e
	}
	if c, ok := kb.(Clipboard); ok {
		s.clip = c
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// IsKeyPressed reports whether the key is held right now. Unknown and
// unmappable keys read as not pressed.
func (s *Service) IsKeyPressed(key Key) bool {
	if !key.Valid() {
		s.log.Debug("invalid key queried", "key", int(key))
		return false
	}
	return s.keyboard.IsKeyPressed(key)
}

// IsScancodePressed reports whether the physical key is held right now.
func (s *Service) IsScancodePressed(code Scancode) bool {
	if !code.Valid() {
		s.log.Debug("invalid scancode queried", "scancode", int(code))
		return false
	}
	return s.keyboard.IsScancodePressed(code)
}

// Localize returns the key the physical position produces under the current
// layout.
func (s *Service) Localize(code Scancode) Key {
	if !code.Valid() {
		return KeyUnknown
	}
	return s.keyboard.Localize(code)
}

// Delocalize returns the physical position that produces key under the
// current layout.
func (s *Service) Delocalize(key Key) Scancode {
	if !key.Valid() {
		return ScanUnknown
	}
	return s.keyboard.Delocalize(key)
}

// Description returns a human-readable label for the physical key, e.g.
// "Q" on QWERTY and "A" on AZERTY for ScanQ, or "Enter" for ScanEnter.
func (s *Service) Description(code Scancode) string {
	if !code.Valid() {
		return UnknownDescription
	}
	return s.keyboard.Description(code)
}

// IsMouseButtonPressed reports whether the button is held right now.
func (s *Service) IsMouseButtonPressed(button MouseButton) bool {
	if !button.Valid() {
		return false
	}
	return s.pointer.IsMouseButtonPressed(button)
}

// MousePosition returns the cursor position.
func (s *Service) MousePosition() Vector2i {
	return s.pointer.MousePosition()
}

// IsTouchDown reports whether the finger is on the screen.
func (s *Service) IsTouchDown(finger uint) bool {
	return s.pointer.IsTouchDown(finger)
}

// TouchPosition returns the finger position, or the origin when it is up.
func (s *Service) TouchPosition(finger uint) Vector2i {
	return s.pointer.TouchPosition(finger)
}

// PollEvent returns the next pending event.
func (s *Service) PollEvent() (Event, bool) {
	ev, ok := s.events.PollEvent()
	if ok && Verbose() {
		s.log.Debug("event", "event", FormatEvent(ev))
	}
	return ev, ok
}

// ClipboardText returns the text on the clipboard.
func (s *Service) ClipboardText() string {
	return s.clip.ClipboardText()
}

// SetClipboardText puts text on the clipboard.
func (s *Service) SetClipboardText(text string) {
	s.clip.SetClipboardText(text)
}

// PressedKeys lists every key currently held, in enum order.
func (s *Service) PressedKeys() []Key {
	var keys []Key
	for k := Key(0); k < KeyCount; k++ {
		if s.keyboard.IsKeyPressed(k) {
			keys = append(keys, k)
		}
	}
	return keys
}
