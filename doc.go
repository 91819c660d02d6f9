/*
Package window is the portable input layer: physical (Scancode) and logical
(Key) key identities, the event union every backend normalizes into, and the
Service applications query for real-time keyboard, mouse and touch state.

# Overview

Every platform reports keys differently. Win32 sends scan codes and virtual
keys, X11 sends keycodes and keysyms, GLFW and SDL have their own tables, a
Linux console only has evdev codes. Backends translate all of them into two
enumerations:

  - Scancode names a physical key position, independent of layout. ScanQ is
    the key left of W on every keyboard, even where it types 'a'.
  - Key names what the current layout puts on that position. KeyA on an
    AZERTY keyboard lives at ScanQ.

Input is pulled, not pushed. Applications call Service.PollEvent until it
returns false, then query held state directly:

	input := window.NewService(opengl.NewGLFWKeyboard(w))

	for !w.ShouldClose() {
	    for {
	        ev, ok := input.PollEvent()
	        if !ok {
	            break
	        }
	        switch e := ev.(type) {
	        case window.KeyPressed:
	            if e.Code == window.KeyEscape {
	                w.SetShouldClose(true)
	            }
	        case window.TextEntered:
	            text = append(text, e.Unicode)
	        }
	    }

	    if input.IsScancodePressed(window.ScanW) {
	        moveForward() // W on QWERTY, Z on AZERTY
	    }
	}

# Backends

Each backend lives in its own package and implements Keyboard, and usually
Pointer and EventSource too. NewService detects the optional interfaces.

	backend/win32    Windows scan codes, virtual keys and window messages
	backend/x11      X11 keycodes and keysyms over the core protocol
	backend/opengl   GLFW windows, plus the OpenGL render driver
	backend/sdl2     SDL2 windows
	backend/android  Android key codes and motion events
	backend/evdev    Linux raw input devices, without a window system
	backend/term     tcell terminal screens

Backends that cannot answer a layout query say so: Localize returns
KeyUnknown, Delocalize returns ScanUnknown and IsScancodePressed returns
false. Description always returns something printable.

# Events

Event is a closed union. The concrete types are:

	KeyPressed, KeyReleased       Code, Scancode and the Alt/Control/Shift/System modifiers
	TextEntered                   one Unicode code point per event
	MouseMoved                    Position
	MouseButtonPressed/Released   Button and Position
	MouseWheelScrolled            Wheel, Delta (positive is up or left) and Position
	TouchBegan/Moved/Ended        Finger and Position

FormatEvent renders any of them on one line for logs and tools.

Backends queue events in an EventQueue. A full queue drops its oldest event;
Dropped reports how many were lost.

# Backspace and Delete Text

Backends without text composition, such as evdev, synthesize the text of
Backspace (8) and Delete (127) themselves. The character goes into a
DeferredText and is delivered on the poll after the key event, so text
fields always see the key first. The slot holds one character: a second one
arriving before the first was delivered replaces it and is counted by
DeferredText.Dropped.

# Descriptions

Description returns a human-readable label for a scancode: the layout's
label for printable keys ("A", "Ü", "ç") and a fixed English name for keys
whose meaning does not depend on the layout ("Enter", "Left Shift",
"Numpad 5"). DefaultDescription gives the fixed name of any scancode;
UnknownDescription covers the rest.

# Rendering

The render package draws vertex arrays through a RenderTarget that caches
GL state between draws. Its Registry tracks which target is active on which
context. See the package documentation of render.

# Configuration

Tools load a Config from TOML or YAML with LoadConfig. Missing fields keep
the DefaultConfig values:

	queue_capacity = 128

	[log]
	level = "debug"
	file = "/var/log/keyprobe.log"
	max_size_mb = 10

	[evdev]
	device_dir = "/dev/input"
	hotplug = true
	screen_width = 1920
	screen_height = 1080

Config.ApplyLogging sets the level and, when a file is named, sends every
component logger to a size-rotated file.

# Logging

Every package logs through Logger, a log/slog text logger tagged with the
component name. SetVerbose and SetLogLevel change the level of all of them
at once.

# Recording

The replay package wraps any EventSource and writes the events it passes
through to a msgpack stream. A Player reads the stream back as an
EventSource, with the time offset of each event.
*/
package window
