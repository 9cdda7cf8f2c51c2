package gen

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/ddlgen/compiler/load"
)

// debounce is the quiet period after the last change before regenerating.
const debounce = 100 * time.Millisecond

// Watch generates the scripts of the schema file at path, then regenerates
// them whenever the file changes, until ctx is done. Reload and generation
// errors after the first run are logged and do not stop the watch.
func Watch(ctx context.Context, path string, opts ...Option) error {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return err
	}
	if err := regenerate(ctx, cfg, path); err != nil {
		return fmt.Errorf("initial generation failed: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace files on save, so the directory is watched.
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	cfg.Logger.Info("watching schema file", "path", path)

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, _ := filepath.Abs(event.Name); name != abs {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			trigger = timer.C
		case <-trigger:
			trigger = nil
			cfg.Logger.Info("change detected", "path", path)
			if err := regenerate(ctx, cfg, path); err != nil {
				cfg.Logger.Error("regeneration failed", "path", path, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cfg.Logger.Warn("watcher error", "error", err)
		}
	}
}

// regenerate loads the schema file and writes its scripts.
func regenerate(ctx context.Context, cfg *Config, path string) error {
	schemas, err := load.LoadFile(path)
	if err != nil {
		return err
	}
	w, err := NewWriter(cfg, schemas)
	if err != nil {
		return err
	}
	return w.WriteAll(ctx)
}
