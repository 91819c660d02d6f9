//go:build linux

package evdev

import (
	"encoding/binary"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/go-theft-auto/window"
)

// inputEventSize is sizeof(struct input_event): a timeval followed by
// type, code and value.
var inputEventSize = int(unsafe.Sizeof(unix.Timeval{})) + 8

type fileDevice struct {
	path string
	fd   int
	buf  []byte
}

func (d *fileDevice) Path() string { return d.path }

func (d *fileDevice) ReadEvent() (RawEvent, bool, error) {
	n, err := unix.Read(d.fd, d.buf)
	if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
		return RawEvent{}, false, nil
	}
	if err != nil {
		return RawEvent{}, false, fmt.Errorf("read %s: %w", d.path, err)
	}
	if n < inputEventSize {
		return RawEvent{}, false, fmt.Errorf("read %s: short read of %d bytes", d.path, n)
	}
	tail := d.buf[inputEventSize-8:]
	return RawEvent{
		Type:  binary.NativeEndian.Uint16(tail[0:]),
		Code:  binary.NativeEndian.Uint16(tail[2:]),
		Value: int32(binary.NativeEndian.Uint32(tail[4:])),
	}, true, nil
}

func (d *fileDevice) Close() error {
	return unix.Close(d.fd)
}

// eviocgbit returns the EVIOCGBIT(ev, size) request.
func eviocgbit(ev, size uintptr) uintptr {
	const iocRead = 2
	return iocRead<<30 | size<<16 | 'E'<<8 | (0x20 + ev)
}

func readBits(fd int, ev uintptr, max int) []byte {
	bits := make([]byte, max/8+1)
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocgbit(ev, uintptr(len(bits))), uintptr(unsafe.Pointer(&bits[0])))
	if errno != 0 {
		return nil
	}
	return bits
}

func capabilities(fd int) Capabilities {
	return Capabilities{
		Events: readBits(fd, 0, evMax),
		Keys:   readBits(fd, evKey, keyMax),
		Abs:    readBits(fd, evAbs, absMax),
		Rel:    readBits(fd, evRel, relMax),
	}
}

// OpenDevice opens path non-blocking and classifies it. Devices of no
// interest are closed and reported with kind 0 and a nil Device.
func OpenDevice(path string) (Device, Kind, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	kind := Classify(capabilities(fd))
	if kind == 0 {
		unix.Close(fd)
		return nil, 0, nil
	}
	return &fileDevice{path: path, fd: fd, buf: make([]byte, inputEventSize)}, kind, nil
}

// OpenDevices opens dir/event0 up to dir/event<max-1> and keeps the
// keyboards, mice and touchscreens. Missing nodes are skipped silently.
func OpenDevices(dir string, max int) ([]Device, error) {
	var devices []Device
	for i := 0; i < max; i++ {
		path := filepath.Join(dir, "event"+strconv.Itoa(i))
		dev, kind, err := OpenDevice(path)
		if err != nil {
			if !errors.Is(err, unix.ENOENT) {
				logger.Warn("skipping device", "err", err)
			}
			continue
		}
		if dev == nil {
			continue
		}
		logger.Debug("opened device", "path", path, "kind", kind)
		devices = append(devices, dev)
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, window.ErrNoDevices)
	}
	return devices, nil
}
