package window

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the backends and tools. The zero value
// is not useful; start from DefaultConfig.
type Config struct {
	Log   LogConfig   `toml:"log" yaml:"log"`
	Evdev EvdevConfig `toml:"evdev" yaml:"evdev"`
	// QueueCapacity bounds every backend event queue.
	QueueCapacity int `toml:"queue_capacity" yaml:"queue_capacity"`
	// Bindings maps action names to hotkeys, see ParseHotkey.
	Bindings map[string]string `toml:"bindings" yaml:"bindings"`
}

// LogConfig selects log level and destination.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	// File, when set, receives all logs with size-based rotation.
	File      string `toml:"file" yaml:"file"`
	MaxSizeMB int    `toml:"max_size_mb" yaml:"max_size_mb"`
}

// EvdevConfig configures the Linux raw-input backend.
type EvdevConfig struct {
	DeviceDir  string `toml:"device_dir" yaml:"device_dir"`
	MaxDevices int    `toml:"max_devices" yaml:"max_devices"`
	// Hotplug watches DeviceDir for devices plugged in after start.
	Hotplug bool `toml:"hotplug" yaml:"hotplug"`
	// Terminal reads typed text from stdin when it is a terminal.
	Terminal bool `toml:"terminal" yaml:"terminal"`
	// ScreenWidth and ScreenHeight bound the relative mouse cursor.
	// Zero leaves it unbounded.
	ScreenWidth  int `toml:"screen_width" yaml:"screen_width"`
	ScreenHeight int `toml:"screen_height" yaml:"screen_height"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Evdev: EvdevConfig{
			DeviceDir:  "/dev/input",
			MaxDevices: 32,
			Terminal:   true,
		},
		QueueCapacity: DefaultQueueCapacity,
		Bindings:      map[string]string{"quit": "Escape"},
	}
}

// LoadConfig reads a TOML or YAML file (chosen by extension) over the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unknown format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.QueueCapacity < 0 {
		return fmt.Errorf("config: queue_capacity must not be negative, got %d", c.QueueCapacity)
	}
	if c.Evdev.MaxDevices < 0 {
		return fmt.Errorf("config: evdev.max_devices must not be negative, got %d", c.Evdev.MaxDevices)
	}
	if c.Evdev.ScreenWidth < 0 || c.Evdev.ScreenHeight < 0 {
		return fmt.Errorf("config: evdev screen size must not be negative")
	}
	for name, s := range c.Bindings {
		if _, err := ParseHotkey(s); err != nil {
			return fmt.Errorf("config: bindings.%s: %w", name, err)
		}
	}
	return nil
}

// ApplyLogging sets the log level and file from the config. The returned
// closer restores stderr logging; it is nil when no file is configured.
func (c Config) ApplyLogging() (closer func() error, err error) {
	if c.Log.Level != "" && !SetLogLevel(c.Log.Level) {
		return nil, fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if c.Log.File == "" {
		return nil, nil
	}
	lf := SetLogFile(c.Log.File, c.Log.MaxSizeMB)
	return lf.Close, nil
}

// ScreenBounds returns the evdev cursor bounds, empty when unbounded.
func (c EvdevConfig) ScreenBounds() IntRect {
	return IntRect{W: c.ScreenWidth, H: c.ScreenHeight}
}
