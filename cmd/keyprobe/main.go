// Command keyprobe prints the input events a backend produces, optionally
// recording them for later replay.
//
// Usage:
//
//	keyprobe                          # terminal backend, Escape quits
//	keyprobe -backend evdev           # raw Linux devices
//	keyprobe -quit Ctrl+Q             # rebind the quit action
//	keyprobe -record session.msgpack  # also write the events to a file
//	keyprobe -replay session.msgpack  # print a recording with its timing
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/go-theft-auto/window"
	"github.com/go-theft-auto/window/backend/evdev"
	"github.com/go-theft-auto/window/backend/term"
	"github.com/go-theft-auto/window/replay"
)

const pollInterval = 10 * time.Millisecond

type options struct {
	configPath string
	backend    string
	record     string
	replay     string
	quit       string
	verbose    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg := window.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = window.LoadConfig(opts.configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	closeLog, err := cfg.ApplyLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if closeLog != nil {
		defer closeLog()
	}
	if opts.verbose {
		window.SetVerbose(true)
	}

	actions := window.NewActionRegistry()
	actions.Register("quit", window.Hotkey{Key: window.KeyEscape, Scancode: window.ScanUnknown}, nil)
	if opts.quit != "" {
		if cfg.Bindings == nil {
			cfg.Bindings = map[string]string{}
		}
		cfg.Bindings["quit"] = opts.quit
	}
	if err := actions.Bind(cfg.Bindings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case opts.replay != "":
		err = playback(opts.replay)
	case opts.backend == "evdev":
		err = probeEvdev(ctx, cfg, actions, opts.record)
	case opts.backend == "term":
		err = probeTerminal(ctx, cfg, actions, opts.record)
	default:
		err = fmt.Errorf("unknown backend %q", opts.backend)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML or YAML configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.backend, "backend", "term", "Input backend (term, evdev)")
	flag.StringVar(&opts.record, "record", "", "Write the events to this file")
	flag.StringVar(&opts.replay, "replay", "", "Print a recording instead of reading input")
	flag.StringVar(&opts.quit, "quit", "", "Hotkey of the quit action, e.g. Ctrl+Q or scan:Escape")
	flag.BoolVar(&opts.verbose, "v", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keyprobe - print normalized input events\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keyprobe [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return opts
}

// session polls src until ctx is done or the quit action runs, handing every
// event to show. With a record path the events are written there as well.
func session(ctx context.Context, src window.EventSource, actions *window.ActionRegistry, record string, show func(window.Event)) error {
	if record != "" {
		f, err := os.Create(record)
		if err != nil {
			return fmt.Errorf("create recording: %w", err)
		}
		defer f.Close()
		rec := replay.NewRecorder(src, f)
		defer func() {
			if rec.Err() != nil {
				fmt.Fprintf(os.Stderr, "recording incomplete: %v\n", rec.Err())
			}
		}()
		src = rec
	}

	tick := time.NewTicker(pollInterval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
		for {
			ev, ok := src.PollEvent()
			if !ok {
				break
			}
			show(ev)
			if name, ok := actions.HandleEvent(ev); ok && name == "quit" {
				return nil
			}
		}
	}
}

func probeTerminal(ctx context.Context, cfg window.Config, actions *window.ActionRegistry, record string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	log := &screenLog{screen: screen}
	backend := term.New(screen,
		term.WithQueueCapacity(cfg.QueueCapacity),
		term.WithResizeHandler(func(int, int) { log.draw() }),
	)
	svc := window.NewService(backend)

	quit, _ := actions.Hotkey("quit")
	log.add(quit.String() + " quits. Layout queries are not available in a terminal.")
	return session(ctx, svc, actions, record, func(ev window.Event) {
		log.add(window.FormatEvent(ev))
	})
}

func probeEvdev(ctx context.Context, cfg window.Config, actions *window.ActionRegistry, record string) error {
	in, err := evdev.Open(cfg)
	if err != nil {
		return err
	}
	defer in.Close()
	fmt.Printf("reading %d device(s): %v\n", len(in.Devices()), in.Devices())

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Evdev.Hotplug {
		g.Go(func() error { return evdev.Watch(gctx, in, cfg.Evdev.DeviceDir) })
	}
	g.Go(func() error {
		err := session(gctx, window.NewService(in), actions, record, func(ev window.Event) {
			fmt.Println(window.FormatEvent(ev))
		})
		if err == nil {
			// Quit: stop the watcher too.
			return context.Canceled
		}
		return err
	})
	err = g.Wait()

	events, text := in.Dropped()
	if events > 0 || text > 0 {
		fmt.Printf("dropped %d event(s) and %d deferred character(s)\n", events, text)
	}
	return err
}

func playback(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()

	p := replay.NewPlayer(f)
	n := 0
	for {
		ev, at, ok := p.Next()
		if !ok {
			break
		}
		fmt.Printf("%10s  %s\n", at.Truncate(time.Millisecond), window.FormatEvent(ev))
		n++
	}
	fmt.Printf("%d event(s)\n", n)
	return p.Err()
}

// screenLog keeps the most recent lines that fit on the screen.
type screenLog struct {
	screen tcell.Screen
	lines  []string
}

func (l *screenLog) add(line string) {
	l.lines = append(l.lines, line)
	l.draw()
}

func (l *screenLog) draw() {
	_, h := l.screen.Size()
	if len(l.lines) > h {
		l.lines = l.lines[len(l.lines)-h:]
	}
	l.screen.Clear()
	for y, line := range l.lines {
		x := 0
		for _, r := range line {
			l.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
	l.screen.Show()
}
