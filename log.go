package window

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// logLevel controls the log level for every component logger.
// Default is Info. SetVerbose(true) sets it to Debug.
var logLevel = new(slog.LevelVar)

// logOutput is where every component logger writes. SetLogFile swaps it.
var logOutput = &swapWriter{w: os.Stderr}

var inputLogger = Logger("input")

// SetVerbose enables or disables debug logging for all components.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Verbose reports whether debug logging is enabled.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// SetLogLevel parses "debug", "info", "warn" or "error". Unknown names keep
// the current level and return false.
func SetLogLevel(name string) bool {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return false
	}
	logLevel.Set(l)
	return true
}

// Logger returns a text logger tagged with component. Backends create one
// per package; they all share the level and output set here.
func Logger(component string) *slog.Logger {
	h := slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: logLevel})
	return slog.New(h).With("component", component)
}

// SetLogFile sends all log output to a size-rotated file. maxSizeMB <= 0
// uses the rotation default. Close the returned value to go back to stderr.
func SetLogFile(path string, maxSizeMB int) io.Closer {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
		Compress:   true,
	}
	logOutput.set(lj)
	return closerFunc(func() error {
		logOutput.set(os.Stderr)
		return lj.Close()
	})
}

type swapWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}

func (s *swapWriter) set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
