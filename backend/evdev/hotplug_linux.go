//go:build linux

package evdev

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Watch adds devices plugged in under dir to in and removes unplugged
// ones, until ctx is done.
func Watch(ctx context.Context, in *Input, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("hotplug watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("watching for devices", "dir", dir)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				hotplug(in, ev)
			}
		}
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			return gctx.Err()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("hotplug watcher: %w", err)
		}
	})

	err = g.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func hotplug(in *Input, ev fsnotify.Event) {
	if !isEventNode(ev.Name) {
		return
	}
	switch {
	case ev.Has(fsnotify.Create):
		dev, kind, err := OpenDevice(ev.Name)
		if err != nil {
			logger.Warn("hotplug open failed", "err", err)
			return
		}
		if dev == nil {
			logger.Debug("ignoring device", "path", ev.Name)
			return
		}
		logger.Debug("device plugged", "path", ev.Name, "kind", kind)
		in.AddDevice(dev)
	case ev.Has(fsnotify.Remove):
		in.RemoveDevice(ev.Name)
	}
}
