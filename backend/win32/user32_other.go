//go:build !windows

package win32

import (
	"fmt"

	"github.com/go-theft-auto/window"
)

// Load fails outside Windows.
func Load() (User32, error) {
	return nil, fmt.Errorf("user32: %w", window.ErrUnsupported)
}
