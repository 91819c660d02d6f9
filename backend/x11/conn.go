package x11

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/go-theft-auto/window"
)

// Conn is a live X server connection serving as keymap source, keyboard,
// pointer and event source.
//
// The core protocol carries no XKB key names. On servers using the evdev
// keycodes the mapping derives them from the keycode, so positions stay
// layout independent; elsewhere keycodes are resolved from their keysyms.
type Conn struct {
	*Keyboard

	conn *xgb.Conn
	root xproto.Window

	mu       sync.Mutex
	min, max uint8
	perCode  int
	keysyms  []xproto.Keysym
	norm     *Normalizer
	queue    *window.EventQueue
}

// Open connects to display ("" uses $DISPLAY) and loads the keymap.
func Open(display string, queueCapacity int) (*Conn, error) {
	xc, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}

	setup := xproto.Setup(xc)
	c := &Conn{
		conn:  xc,
		root:  setup.DefaultScreen(xc).Root,
		min:   uint8(setup.MinKeycode),
		max:   uint8(setup.MaxKeycode),
		queue: window.NewEventQueue(queueCapacity),
	}
	if err := c.loadKeysyms(); err != nil {
		xc.Close()
		return nil, err
	}
	c.Keyboard = NewKeyboard(c)
	c.norm = NewNormalizer(c.Keyboard)

	logger.Info("connected", "display", display, "min_keycode", c.min, "max_keycode", c.max)
	return c, nil
}

// Close closes the connection.
func (c *Conn) Close() {
	c.conn.Close()
}

// Watch selects key, button and motion events on win. Events are only
// delivered for watched windows.
func (c *Conn) Watch(win xproto.Window) error {
	mask := uint32(xproto.EventMaskKeyPress | xproto.EventMaskKeyRelease |
		xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease |
		xproto.EventMaskPointerMotion)
	err := xproto.ChangeWindowAttributesChecked(c.conn, win, xproto.CwEventMask, []uint32{mask}).Check()
	if err != nil {
		return fmt.Errorf("select input on window %d: %w", win, err)
	}
	return nil
}

func (c *Conn) loadKeysyms() error {
	count := int(c.max) - int(c.min) + 1
	reply, err := xproto.GetKeyboardMapping(c.conn, xproto.Keycode(c.min), byte(count)).Reply()
	if err != nil {
		return fmt.Errorf("get keyboard mapping: %w", err)
	}

	c.mu.Lock()
	c.perCode = int(reply.KeysymsPerKeycode)
	c.keysyms = reply.Keysyms
	c.mu.Unlock()
	return nil
}

// KeycodeRange implements KeymapSource.
func (c *Conn) KeycodeRange() (min, max uint8) { return c.min, c.max }

// KeyName implements KeymapSource. Core X11 has no key names, so the
// mapping falls back to the evdev keycode names.
func (c *Conn) KeyName(uint8) string { return "" }

// Keysym implements KeymapSource. An empty second group falls back to the
// first, as core X11 does.
func (c *Conn) Keysym(code uint8, group, level int) Keysym {
	c.mu.Lock()
	defer c.mu.Unlock()

	sym := c.keysymAt(code, group*2+level)
	if sym == NoSymbol && group > 0 && c.keysymAt(code, group*2) == NoSymbol && c.keysymAt(code, group*2+1) == NoSymbol {
		sym = c.keysymAt(code, level)
	}
	return sym
}

func (c *Conn) keysymAt(code uint8, col int) Keysym {
	if code < c.min || code > c.max || col >= c.perCode {
		return NoSymbol
	}
	i := int(code-c.min)*c.perCode + col
	if i >= len(c.keysyms) {
		return NoSymbol
	}
	return Keysym(c.keysyms[i])
}

// KeysymToKeycode implements KeymapSource.
func (c *Conn) KeysymToKeycode(sym Keysym) uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()

	for code := int(c.min); code <= int(c.max); code++ {
		for col := 0; col < c.perCode; col++ {
			if c.keysymAt(uint8(code), col) == sym {
				return uint8(code)
			}
		}
	}
	return 0
}

// QueryKeymap implements KeymapSource.
func (c *Conn) QueryKeymap() ([32]byte, error) {
	var keys [32]byte
	reply, err := xproto.QueryKeymap(c.conn).Reply()
	if err != nil {
		return keys, fmt.Errorf("query keymap: %w", err)
	}
	copy(keys[:], reply.Keys)
	return keys, nil
}

// IsMouseButtonPressed implements window.Pointer. The core protocol only
// reports the first three buttons.
func (c *Conn) IsMouseButtonPressed(button window.MouseButton) bool {
	reply, err := xproto.QueryPointer(c.conn, c.root).Reply()
	if err != nil {
		logger.Debug("query pointer failed", "err", err)
		return false
	}
	var bit uint16
	switch button {
	case window.MouseButtonLeft:
		bit = xproto.KeyButMaskButton1
	case window.MouseButtonMiddle:
		bit = xproto.KeyButMaskButton2
	case window.MouseButtonRight:
		bit = xproto.KeyButMaskButton3
	default:
		return false
	}
	return reply.Mask&bit != 0
}

// MousePosition implements window.Pointer, in root window coordinates.
func (c *Conn) MousePosition() window.Vector2i {
	reply, err := xproto.QueryPointer(c.conn, c.root).Reply()
	if err != nil {
		logger.Debug("query pointer failed", "err", err)
		return window.Vector2i{}
	}
	return window.Vector2i{X: int(reply.RootX), Y: int(reply.RootY)}
}

// IsTouchDown implements window.Pointer. X11 core has no touch.
func (c *Conn) IsTouchDown(uint) bool { return false }

// TouchPosition implements window.Pointer.
func (c *Conn) TouchPosition(uint) window.Vector2i { return window.Vector2i{} }

// PollEvent implements window.EventSource. It drains what the server has
// sent so far without blocking.
func (c *Conn) PollEvent() (window.Event, bool) {
	if ev, ok := c.queue.Pop(); ok {
		return ev, true
	}

	for {
		xev, xerr := c.conn.PollForEvent()
		if xerr != nil {
			logger.Debug("x error", "err", xerr)
			continue
		}
		if xev == nil {
			break
		}
		c.translate(xev)
	}

	return c.queue.Pop()
}

func (c *Conn) translate(xev xgb.Event) {
	switch e := xev.(type) {
	case xproto.KeyPressEvent:
		c.queue.Push(c.norm.Key(KeyEvent{Keycode: uint8(e.Detail), Press: true}))
	case xproto.KeyReleaseEvent:
		c.queue.Push(c.norm.Key(KeyEvent{Keycode: uint8(e.Detail), Press: false}))
	case xproto.ButtonPressEvent:
		c.pushButton(ButtonEvent{Button: uint8(e.Detail), Press: true, X: int(e.EventX), Y: int(e.EventY)})
	case xproto.ButtonReleaseEvent:
		c.pushButton(ButtonEvent{Button: uint8(e.Detail), Press: false, X: int(e.EventX), Y: int(e.EventY)})
	case xproto.MotionNotifyEvent:
		c.queue.Push(c.norm.Motion(int(e.EventX), int(e.EventY)))
	case xproto.MappingNotifyEvent:
		if err := c.loadKeysyms(); err != nil {
			logger.Warn("reload keymap failed", "err", err)
		}
	}
}

func (c *Conn) pushButton(ev ButtonEvent) {
	if out, ok := c.norm.Button(ev); ok {
		c.queue.Push(out)
	}
}
