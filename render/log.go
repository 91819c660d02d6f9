package render

import (
	"log/slog"
	"os"
)

// logLevel controls the render package log level.
// Default is Info. SetVerbose(true) sets it to Debug.
var logLevel = new(slog.LevelVar)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: logLevel,
})).With("component", "render")

// SetVerbose enables or disables debug logging for render targets.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}
