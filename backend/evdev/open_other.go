//go:build !linux

package evdev

import (
	"context"
	"fmt"

	"github.com/go-theft-auto/window"
)

// Open fails outside Linux.
func Open(window.Config) (*Input, error) {
	return nil, fmt.Errorf("evdev: %w", window.ErrUnsupported)
}

// Watch fails outside Linux.
func Watch(context.Context, *Input, string) error {
	return fmt.Errorf("evdev: %w", window.ErrUnsupported)
}
