// Package win32 maps Windows virtual keys and set-1 scan codes to the
// portable key and scancode tables, and normalizes window messages into
// window events.
package win32

import (
	"sync"

	"github.com/go-theft-auto/window"
)

var logger = window.Logger("win32")

// User32 is the part of user32.dll the backend calls. Load returns the real
// one on Windows; tests supply a fake layout.
type User32 interface {
	// GetAsyncKeyState returns the key state word; the high bit is set
	// while the key is down.
	GetAsyncKeyState(vk int32) int16
	MapVirtualKey(code, mapType uint32) uint32
	// GetKeyNameText returns the layout name of the key in lparam, "" if
	// it has none.
	GetKeyNameText(lparam int32) string
	GetSystemMetrics(index int32) int32
	GetCursorPos() (x, y int32, ok bool)
}

// smSwapButton is the GetSystemMetrics index reporting swapped mouse
// buttons.
const smSwapButton = 23

// Mapping is the two-way table between scancodes and keys under the active
// layout. It is built once, on first use.
type Mapping struct {
	once sync.Once
	u    User32

	scanToKey [window.ScancodeCount]window.Key
	scanToVK  [window.ScancodeCount]uint32
	keyToScan [window.KeyCount]window.Scancode
}

// NewMapping creates an unbuilt mapping over u.
func NewMapping(u User32) *Mapping {
	return &Mapping{u: u}
}

// Build fills the tables. Calls after the first do nothing.
func (m *Mapping) Build() {
	m.once.Do(m.build)
}

func (m *Mapping) build() {
	for i := range m.keyToScan {
		m.keyToScan[i] = window.ScanUnknown
	}

	mapped := 0
	for scan := window.Scancode(0); scan < window.ScancodeCount; scan++ {
		vk := m.virtualKey(scan)
		key := virtualKeyToKey(vk)
		m.scanToVK[scan] = vk
		m.scanToKey[scan] = key
		if key != window.KeyUnknown && m.keyToScan[key] == window.ScanUnknown {
			m.keyToScan[key] = scan
			mapped++
		}
	}
	logger.Debug("key mapping built", "keys", mapped)
}

func (m *Mapping) virtualKey(scan window.Scancode) uint32 {
	if scan >= window.ScanNumpad1 && scan <= window.ScanNumpad9 {
		return vkNumpad0 + 1 + uint32(scan-window.ScanNumpad1)
	}
	if scan == window.ScanNumpad0 {
		return vkNumpad0
	}
	if vk, ok := manualVirtualKeys[scan]; ok {
		return vk
	}
	code := winScancode(scan)
	if code == 0 {
		return 0
	}
	return m.u.MapVirtualKey(uint32(code), mapVSCToVKEx)
}

// Key returns the key at scan, KeyUnknown if scan is invalid.
func (m *Mapping) Key(scan window.Scancode) window.Key {
	if !scan.Valid() {
		return window.KeyUnknown
	}
	m.Build()
	return m.scanToKey[scan]
}

// Scancode returns the first scancode producing key, ScanUnknown if none.
func (m *Mapping) Scancode(key window.Key) window.Scancode {
	if !key.Valid() {
		return window.ScanUnknown
	}
	m.Build()
	return m.keyToScan[key]
}

// VirtualKey returns the virtual-key code at scan, 0 if none.
func (m *Mapping) VirtualKey(scan window.Scancode) uint32 {
	if !scan.Valid() {
		return 0
	}
	m.Build()
	return m.scanToVK[scan]
}
