//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	procMapVirtualKey    = user32.NewProc("MapVirtualKeyW")
	procGetKeyNameText   = user32.NewProc("GetKeyNameTextW")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
)

type point struct {
	X, Y int32
}

type nativeUser32 struct{}

// Load resolves the user32 procedures the backend calls.
func Load() (User32, error) {
	for _, p := range []*windows.LazyProc{
		procGetAsyncKeyState, procMapVirtualKey, procGetKeyNameText,
		procGetSystemMetrics, procGetCursorPos,
	} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("missing procedure %q: %w", p.Name, err)
		}
	}
	return nativeUser32{}, nil
}

func (nativeUser32) GetAsyncKeyState(vk int32) int16 {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return int16(r)
}

func (nativeUser32) MapVirtualKey(code, mapType uint32) uint32 {
	r, _, _ := procMapVirtualKey.Call(uintptr(code), uintptr(mapType))
	return uint32(r)
}

func (nativeUser32) GetKeyNameText(lparam int32) string {
	var buf [256]uint16
	n, _, _ := procGetKeyNameText.Call(uintptr(lparam), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func (nativeUser32) GetSystemMetrics(index int32) int32 {
	r, _, _ := procGetSystemMetrics.Call(uintptr(index))
	return int32(r)
}

func (nativeUser32) GetCursorPos() (x, y int32, ok bool) {
	var p point
	r, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	return p.X, p.Y, r != 0
}
