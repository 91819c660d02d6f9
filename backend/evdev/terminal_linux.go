//go:build linux

package evdev

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/go-theft-auto/window"
)

// Terminal reads typed characters from a console. While open it turns off
// echo and signal keys, so Ctrl+C arrives as input instead of killing the
// program.
type Terminal struct {
	mu       sync.Mutex
	fd       int
	saved    unix.Termios
	settings unix.Termios
}

// OpenTerminal configures the terminal on fd. It fails with
// window.ErrUnsupported when fd is not a terminal.
func OpenTerminal(fd int) (*Terminal, error) {
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("fd %d is not a terminal: %w", fd, window.ErrUnsupported)
	}
	current, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("get terminal attributes: %w", err)
	}

	t := &Terminal{fd: fd, saved: *current, settings: *current}
	t.settings.Lflag &^= unix.ECHO | unix.ISIG
	t.settings.Lflag |= unix.ICANON
	t.settings.Iflag |= unix.IGNCR
	if err := t.apply(); err != nil {
		return nil, err
	}
	t.flush()
	return t, nil
}

func (t *Terminal) apply() error {
	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, &t.settings); err != nil {
		return fmt.Errorf("set terminal attributes: %w", err)
	}
	return nil
}

func (t *Terminal) flush() {
	if err := unix.IoctlSetInt(t.fd, unix.TCFLSH, unix.TCIFLUSH); err != nil {
		logger.Debug("flush terminal input", "err", err)
	}
}

// ReadText reads what is typed without waiting for a full line. Canonical
// mode is only lifted for the duration of the read.
func (t *Terminal) ReadText(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.settings.Lflag &^= unix.ICANON
	if err := t.apply(); err != nil {
		return 0, err
	}
	defer func() {
		t.settings.Lflag |= unix.ICANON
		if err := t.apply(); err != nil {
			logger.Debug("restore canonical mode", "err", err)
		}
	}()

	fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		return 0, nil
	}
	read, err := unix.Read(t.fd, p)
	if err != nil {
		return 0, fmt.Errorf("read terminal: %w", err)
	}
	return read, nil
}

// Close restores the attributes the terminal had before OpenTerminal.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, &t.saved); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	t.flush()
	return nil
}
