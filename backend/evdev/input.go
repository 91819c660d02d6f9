// Package evdev reads keyboards, mice and touchscreens straight from Linux
// input devices, for programs running on a bare console without a window
// system.
//
// Input follows a pull model: every query first drains whatever the devices
// have buffered into the event queue, then answers from the accumulated
// state.
package evdev

import (
	"io"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/go-theft-auto/window"
)

// RawEvent is one input_event record.
type RawEvent struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Device is an open input device.
type Device interface {
	// Path identifies the device, e.g. /dev/input/event3.
	Path() string
	// ReadEvent reads the next record without blocking. It reports false
	// when nothing is buffered.
	ReadEvent() (RawEvent, bool, error)
	Close() error
}

// TextReader supplies typed characters, usually from the controlling
// terminal.
type TextReader interface {
	// ReadText reads up to len(p) bytes without blocking.
	ReadText(p []byte) (int, error)
}

type touchSlot struct {
	oldID int
	id    int
	pos   window.Vector2i
}

type source struct {
	id  int
	dev Device
}

var logger = window.Logger("evdev")

// maxSlots bounds the slot index accepted from ABS_MT_SLOT.
const maxSlots = 64

// Input is the raw-input keyboard, pointer and event source. All methods
// are safe for concurrent use.
type Input struct {
	mu sync.Mutex

	sources []source
	nextID  int
	text    TextReader
	log     *slog.Logger

	state    *window.InputState
	cursor   window.Vector2i
	bounds   window.IntRect
	queue    *window.EventQueue
	deferred window.DeferredText

	slots   []touchSlot
	current int
	touchID int

	unsupported sync.Map
}

// Option configures an Input.
type Option func(*Input)

// WithText reads typed characters from r.
func WithText(r TextReader) Option {
	return func(in *Input) { in.text = r }
}

// WithBounds keeps the cursor inside r. An empty rectangle leaves it
// unbounded.
func WithBounds(r window.IntRect) Option {
	return func(in *Input) { in.bounds = r }
}

// WithQueueCapacity bounds the event queue.
func WithQueueCapacity(n int) Option {
	return func(in *Input) { in.queue = window.NewEventQueue(n) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(in *Input) { in.log = l }
}

// NewInput creates an Input reading from devices.
func NewInput(devices []Device, opts ...Option) *Input {
	in := &Input{
		log:     logger,
		state:   window.NewInputState(),
		queue:   window.NewEventQueue(window.DefaultQueueCapacity),
		touchID: -1,
	}
	for _, opt := range opts {
		opt(in)
	}
	for _, d := range devices {
		in.addLocked(d)
	}
	return in
}

// AddDevice starts reading from d.
func (in *Input) AddDevice(d Device) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.addLocked(d)
}

func (in *Input) addLocked(d Device) {
	in.sources = append(in.sources, source{id: in.nextID, dev: d})
	in.nextID++
	in.log.Info("device added", "path", d.Path())
}

// RemoveDevice stops reading from the device at path and closes it.
func (in *Input) RemoveDevice(path string) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	for i, s := range in.sources {
		if s.dev.Path() == path {
			in.dropLocked(i)
			return true
		}
	}
	return false
}

func (in *Input) dropLocked(i int) {
	s := in.sources[i]
	in.sources = append(in.sources[:i], in.sources[i+1:]...)
	if s.id == in.touchID {
		in.touchID = -1
	}
	if err := s.dev.Close(); err != nil {
		in.log.Debug("close device", "path", s.dev.Path(), "err", err)
	}
	in.log.Info("device removed", "path", s.dev.Path())
}

// Devices lists the paths being read.
func (in *Input) Devices() []string {
	in.mu.Lock()
	defer in.mu.Unlock()
	paths := make([]string, len(in.sources))
	for i, s := range in.sources {
		paths[i] = s.dev.Path()
	}
	return paths
}

// Close closes every device, and the text reader if it is an io.Closer.
func (in *Input) Close() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	for len(in.sources) > 0 {
		in.dropLocked(len(in.sources) - 1)
	}
	if c, ok := in.text.(io.Closer); ok {
		in.text = nil
		return c.Close()
	}
	return nil
}

// PollEvent returns the next event: queued events first, then one freshly
// read event, then anything reading it queued.
func (in *Input) PollEvent() (window.Event, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if ev, ok := in.queue.Pop(); ok {
		return ev, true
	}
	if ev, ok := in.process(); ok {
		return ev, true
	}
	return in.queue.Pop()
}

// update drains every device into the queue.
func (in *Input) update() {
	for {
		ev, ok := in.process()
		if !ok {
			return
		}
		in.queue.Push(ev)
	}
}

// process returns at most one event. Touch frames may push extra events
// straight to the queue.
func (in *Input) process() (window.Event, bool) {
	if ev, ok := in.deferred.Take(); ok {
		return ev, true
	}

	for i := 0; i < len(in.sources); {
		s := in.sources[i]
		raw, ok, err := s.dev.ReadEvent()
		if err != nil {
			in.log.Warn("read failed, dropping device", "path", s.dev.Path(), "err", err)
			in.dropLocked(i)
			continue
		}
		if !ok {
			i++
			continue
		}
		if ev, ok := in.handle(s.id, raw); ok {
			return ev, true
		}
	}

	return in.readText()
}

func (in *Input) handle(src int, raw RawEvent) (window.Event, bool) {
	switch raw.Type {
	case evKey:
		return in.handleKey(raw)
	case evRel:
		return in.handleRel(raw)
	case evAbs:
		in.handleAbs(src, raw)
	case evSyn:
		if raw.Code == synReport && src == in.touchID {
			in.flushSlots()
		}
	}
	return nil, false
}

func (in *Input) handleKey(raw RawEvent) (window.Event, bool) {
	if b, ok := toMouseButton(raw.Code); ok {
		down := raw.Value != 0
		in.state.SetMouseButton(b, down)
		if down {
			return window.MouseButtonPressed{Button: b, Position: in.cursor}, true
		}
		return window.MouseButtonReleased{Button: b, Position: in.cursor}, true
	}

	key := toKey(raw.Code)
	special := specialText(key)

	// value 2 is auto-repeat; only the text of Backspace and Delete repeats
	if raw.Value == 2 {
		if special != 0 {
			return window.TextEntered{Unicode: special}, true
		}
		return nil, false
	}
	if key == window.KeyUnknown {
		return nil, false
	}

	down := raw.Value != 0
	ev := in.state.KeyTransition(key, window.ScanUnknown, down)
	if special != 0 && down {
		in.deferred.Defer(special)
	}
	return ev, true
}

func (in *Input) handleRel(raw RawEvent) (window.Event, bool) {
	switch raw.Code {
	case relX, relY:
		pos := in.cursor
		if raw.Code == relX {
			pos.X += int(raw.Value)
		} else {
			pos.Y += int(raw.Value)
		}
		in.setCursor(pos)
		return window.MouseMoved{Position: in.cursor}, true
	case relWheel:
		return window.MouseWheelScrolled{Wheel: window.WheelVertical, Delta: float32(raw.Value), Position: in.cursor}, true
	case relHWheel:
		return window.MouseWheelScrolled{Wheel: window.WheelHorizontal, Delta: -float32(raw.Value), Position: in.cursor}, true
	}
	return nil, false
}

func (in *Input) handleAbs(src int, raw RawEvent) {
	switch raw.Code {
	case absMTSlot:
		in.current = int(raw.Value)
	case absMTTrackingID:
		if s := in.slot(in.current); s != nil {
			s.id = int(raw.Value)
		}
	case absMTPositionX:
		if s := in.slot(in.current); s != nil {
			s.pos.X = int(raw.Value)
		}
	case absMTPositionY:
		if s := in.slot(in.current); s != nil {
			s.pos.Y = int(raw.Value)
		}
	default:
		return
	}
	in.touchID = src
}

func (in *Input) slot(i int) *touchSlot {
	if i < 0 || i >= maxSlots {
		return nil
	}
	for len(in.slots) <= i {
		in.slots = append(in.slots, touchSlot{oldID: -1, id: -1})
	}
	return &in.slots[i]
}

// flushSlots emits the touch events of one frame.
func (in *Input) flushSlots() {
	for i := range in.slots {
		s := &in.slots[i]
		if s.oldID == s.id {
			if s.id != -1 {
				in.queue.Push(window.TouchMoved{Finger: uint(s.id), Position: s.pos})
			}
			continue
		}
		if s.oldID != -1 {
			in.queue.Push(window.TouchEnded{Finger: uint(s.oldID), Position: s.pos})
		}
		if s.id != -1 {
			in.queue.Push(window.TouchBegan{Finger: uint(s.id), Position: s.pos})
		}
		s.oldID = s.id
	}
}

// readText returns one typed character, decoded from UTF-8. Backspace and
// Delete come from the key events instead, and escape sequences are
// discarded.
func (in *Input) readText() (window.Event, bool) {
	if in.text == nil {
		return nil, false
	}
	var b [1]byte
	n, err := in.text.ReadText(b[:])
	if err != nil {
		in.log.Debug("read text", "err", err)
		return nil, false
	}
	if n == 0 {
		return nil, false
	}

	switch code := b[0]; code {
	case 8, 127:
		return nil, false
	case 27:
		var seq [16]byte
		if n, _ := in.text.ReadText(seq[:]); n > 0 {
			return nil, false
		}
	}
	if b[0] >= utf8.RuneSelf {
		return window.TextEntered{Unicode: in.readRune(b[0])}, true
	}
	return window.TextEntered{Unicode: rune(b[0])}, true
}

// readRune reads the rest of the UTF-8 sequence starting with lead. A
// malformed or truncated sequence yields utf8.RuneError.
func (in *Input) readRune(lead byte) rune {
	var buf [utf8.UTFMax]byte
	buf[0] = lead
	need := sequenceLen(lead)
	got := 1
	for got < need {
		n, err := in.text.ReadText(buf[got:need])
		if err != nil || n == 0 {
			break
		}
		got += n
	}
	r, size := utf8.DecodeRune(buf[:got])
	if size != need {
		return utf8.RuneError
	}
	return r
}

// sequenceLen returns the length of the UTF-8 sequence lead starts, 1 for
// bytes that cannot start one.
func sequenceLen(lead byte) int {
	switch {
	case lead&0xe0 == 0xc0:
		return 2
	case lead&0xf0 == 0xe0:
		return 3
	case lead&0xf8 == 0xf0:
		return 4
	}
	return 1
}

func (in *Input) setCursor(pos window.Vector2i) {
	in.cursor = in.bounds.Clamp(pos)
	in.state.Mouse = in.cursor
}

// IsKeyPressed reports whether key is held.
func (in *Input) IsKeyPressed(key window.Key) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.update()
	return in.state.KeyDown(key)
}

func (in *Input) notSupported(op string) {
	if _, seen := in.unsupported.LoadOrStore(op, true); !seen {
		in.log.Warn(op + " is not available on raw input")
	}
}

// IsScancodePressed always reports false: raw input has no layout to tell
// physical positions.
func (in *Input) IsScancodePressed(window.Scancode) bool {
	in.notSupported("IsScancodePressed")
	return false
}

// Localize always returns KeyUnknown.
func (in *Input) Localize(window.Scancode) window.Key {
	in.notSupported("Localize")
	return window.KeyUnknown
}

// Delocalize always returns ScanUnknown.
func (in *Input) Delocalize(window.Key) window.Scancode {
	in.notSupported("Delocalize")
	return window.ScanUnknown
}

// Description returns the English name of code.
func (in *Input) Description(code window.Scancode) string {
	return window.DefaultDescription(code)
}

// IsMouseButtonPressed reports whether button is held.
func (in *Input) IsMouseButtonPressed(button window.MouseButton) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.update()
	return in.state.MouseDown(button)
}

// MousePosition returns the cursor position accumulated from relative
// motion.
func (in *Input) MousePosition() window.Vector2i {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.cursor
}

// SetMousePosition moves the cursor, clamped to the bounds.
func (in *Input) SetMousePosition(pos window.Vector2i) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.setCursor(pos)
}

// IsTouchDown reports whether finger is on the screen.
func (in *Input) IsTouchDown(finger uint) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	_, ok := in.findTouch(finger)
	return ok
}

// TouchPosition returns the last position of finger, the origin if it is
// not down.
func (in *Input) TouchPosition(finger uint) window.Vector2i {
	in.mu.Lock()
	defer in.mu.Unlock()
	pos, _ := in.findTouch(finger)
	return pos
}

func (in *Input) findTouch(finger uint) (window.Vector2i, bool) {
	for _, s := range in.slots {
		if s.id >= 0 && uint(s.id) == finger {
			return s.pos, true
		}
	}
	return window.Vector2i{}, false
}

// Dropped returns how many events were lost to a full queue and how many
// deferred characters were overwritten.
func (in *Input) Dropped() (events, text int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.queue.Dropped(), in.deferred.Dropped()
}
