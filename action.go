package window

import (
	"fmt"
	"strings"
)

// Hotkey is a key combination. It names a logical key, wherever the layout
// puts it, or with Physical set a key position. Modifiers must match
// exactly: Ctrl+S does not fire for Ctrl+Shift+S.
type Hotkey struct {
	Key      Key
	Scancode Scancode
	Physical bool

	Alt, Control, Shift, System bool
}

// ParseHotkey reads the form String writes: optional "Ctrl+", "Alt+",
// "Shift+" and "Sys+" prefixes, in any order and case, then a Key name
// ("Q", "F5", "Escape") or a single character, or "scan:" and a Scancode
// name for a physical position ("scan:W").
func ParseHotkey(s string) (Hotkey, error) {
	parts := strings.Split(s, "+")
	var h Hotkey
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(mod)) {
		case "ctrl", "control":
			h.Control = true
		case "alt":
			h.Alt = true
		case "shift":
			h.Shift = true
		case "sys", "system", "super", "cmd", "meta":
			h.System = true
		default:
			return Hotkey{}, fmt.Errorf("hotkey %q: unknown modifier %q", s, mod)
		}
	}

	name := strings.TrimSpace(parts[len(parts)-1])
	if scan, ok := strings.CutPrefix(name, "scan:"); ok {
		h.Physical = true
		h.Key = KeyUnknown
		h.Scancode = ParseScancode(scan)
		if h.Scancode == ScanUnknown {
			return Hotkey{}, fmt.Errorf("hotkey %q: unknown scancode %q", s, scan)
		}
		return h, nil
	}

	h.Scancode = ScanUnknown
	h.Key = ParseKey(name)
	if r := []rune(name); h.Key == KeyUnknown && len(r) == 1 {
		h.Key = KeyFromRune(r[0])
	}
	if h.Key == KeyUnknown {
		return Hotkey{}, fmt.Errorf("hotkey %q: unknown key %q", s, name)
	}
	return h, nil
}

func (h Hotkey) String() string {
	var b strings.Builder
	if h.Control {
		b.WriteString("Ctrl+")
	}
	if h.Alt {
		b.WriteString("Alt+")
	}
	if h.Shift {
		b.WriteString("Shift+")
	}
	if h.System {
		b.WriteString("Sys+")
	}
	if h.Physical {
		b.WriteString("scan:" + h.Scancode.String())
	} else {
		b.WriteString(h.Key.String())
	}
	return b.String()
}

// Matches reports whether ev is this hotkey.
func (h Hotkey) Matches(ev KeyEvent) bool {
	if h.Physical {
		if !h.Scancode.Valid() || ev.Scancode != h.Scancode {
			return false
		}
	} else if !h.Key.Valid() || ev.Code != h.Key {
		return false
	}
	return ev.Alt == h.Alt && ev.Control == h.Control &&
		ev.Shift == h.Shift && ev.System == h.System
}

// Held reports whether the combination is held right now. When the hotkey's
// own key is a modifier, that modifier's family is not compared.
func (h Hotkey) Held(s *Service) bool {
	key := h.Key
	if h.Physical {
		if !s.IsScancodePressed(h.Scancode) {
			return false
		}
		key = FixedKey(h.Scancode)
	} else if !s.IsKeyPressed(h.Key) {
		return false
	}

	alt := s.IsKeyPressed(KeyLAlt) || s.IsKeyPressed(KeyRAlt)
	control := s.IsKeyPressed(KeyLControl) || s.IsKeyPressed(KeyRControl)
	shift := s.IsKeyPressed(KeyLShift) || s.IsKeyPressed(KeyRShift)
	system := s.IsKeyPressed(KeyLSystem) || s.IsKeyPressed(KeyRSystem)
	switch key {
	case KeyLAlt, KeyRAlt:
		alt = h.Alt
	case KeyLControl, KeyRControl:
		control = h.Control
	case KeyLShift, KeyRShift:
		shift = h.Shift
	case KeyLSystem, KeyRSystem:
		system = h.System
	}
	return alt == h.Alt && control == h.Control && shift == h.Shift && system == h.System
}

// ActionHandler is called when an action's hotkey is triggered.
type ActionHandler func()

// ActionCondition returns true if the action can be executed.
type ActionCondition func() bool

// ActionEntry holds a registered action with its hotkey and handler.
type ActionEntry struct {
	Name      string          // Action name, also the key in Config.Bindings
	Hotkey    Hotkey          // Default hotkey, replaced by Bind
	Handler   ActionHandler   // Called when hotkey triggered
	Condition ActionCondition // Optional: must return true to execute (nil = always)
}

// ActionRegistry manages hotkey-triggered actions.
// The first registered action that matches wins.
type ActionRegistry struct {
	actions []ActionEntry
}

// NewActionRegistry creates a new action registry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		actions: make([]ActionEntry, 0, 16),
	}
}

// Register adds an action with a hotkey and handler.
func (r *ActionRegistry) Register(name string, hotkey Hotkey, handler ActionHandler) {
	r.RegisterWithCondition(name, hotkey, handler, nil)
}

// RegisterWithCondition adds an action with a condition that must be true to execute.
func (r *ActionRegistry) RegisterWithCondition(name string, hotkey Hotkey, handler ActionHandler, condition ActionCondition) {
	r.actions = append(r.actions, ActionEntry{
		Name:      name,
		Hotkey:    hotkey,
		Handler:   handler,
		Condition: condition,
	})
}

// Hotkey returns the hotkey bound to an action.
func (r *ActionRegistry) Hotkey(name string) (Hotkey, bool) {
	for _, a := range r.actions {
		if a.Name == name {
			return a.Hotkey, true
		}
	}
	return Hotkey{}, false
}

// Bind replaces the hotkeys of registered actions from a name to hotkey
// map, as found in Config.Bindings. Names of actions that are not
// registered are skipped. Nothing changes when any hotkey fails to parse.
func (r *ActionRegistry) Bind(bindings map[string]string) error {
	parsed := make(map[string]Hotkey, len(bindings))
	for name, s := range bindings {
		h, err := ParseHotkey(s)
		if err != nil {
			return fmt.Errorf("binding %s: %w", name, err)
		}
		parsed[name] = h
	}
	for name, h := range parsed {
		found := false
		for i := range r.actions {
			if r.actions[i].Name == name {
				r.actions[i].Hotkey = h
				found = true
			}
		}
		if !found {
			inputLogger.Debug("binding for unknown action", "action", name)
		}
	}
	return nil
}

// HandleEvent runs the action whose hotkey ev presses. It returns the name
// of the action, if any ran.
func (r *ActionRegistry) HandleEvent(ev Event) (string, bool) {
	pressed, ok := ev.(KeyPressed)
	if !ok {
		return "", false
	}
	return r.run(func(h Hotkey) bool { return h.Matches(pressed.KeyEvent) })
}

// HandleHeld runs the first action whose hotkey is held right now. Call it
// once per frame for actions that repeat while held.
func (r *ActionRegistry) HandleHeld(s *Service) (string, bool) {
	return r.run(func(h Hotkey) bool { return h.Held(s) })
}

func (r *ActionRegistry) run(match func(Hotkey) bool) (string, bool) {
	for i := range r.actions {
		a := &r.actions[i]

		if !match(a.Hotkey) {
			continue
		}
		if a.Condition != nil && !a.Condition() {
			continue
		}

		if a.Handler != nil {
			a.Handler()
		}
		return a.Name, true
	}
	return "", false
}

// Unregister removes an action by name.
func (r *ActionRegistry) Unregister(name string) {
	for i, a := range r.actions {
		if a.Name == name {
			r.actions = append(r.actions[:i], r.actions[i+1:]...)
			return
		}
	}
}

// Clear removes all registered actions.
func (r *ActionRegistry) Clear() {
	r.actions = r.actions[:0]
}
