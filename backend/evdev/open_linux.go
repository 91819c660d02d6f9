//go:build linux

package evdev

import (
	"errors"
	"os"

	"github.com/go-theft-auto/window"
)

// Open opens the devices and, when configured and stdin is a terminal, the
// terminal text reader. With hotplug enabled an empty device directory is
// not an error; run Watch to pick devices up later.
func Open(cfg window.Config) (*Input, error) {
	ec := cfg.Evdev
	devices, err := OpenDevices(ec.DeviceDir, ec.MaxDevices)
	if err != nil && !(ec.Hotplug && errors.Is(err, window.ErrNoDevices)) {
		return nil, err
	}

	opts := []Option{
		WithBounds(ec.ScreenBounds()),
		WithQueueCapacity(cfg.QueueCapacity),
	}
	if ec.Terminal {
		t, err := OpenTerminal(int(os.Stdin.Fd()))
		if err != nil {
			logger.Info("no terminal text input", "err", err)
		} else {
			opts = append(opts, WithText(t))
		}
	}
	return NewInput(devices, opts...), nil
}
