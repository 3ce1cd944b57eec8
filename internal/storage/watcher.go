package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const defaultSettle = 150 * time.Millisecond

// Watcher reports changes to settings.yaml. The directory is watched rather
// than the file because Save replaces the file by rename.
type Watcher struct {
	store  *SettingsStore
	logger zerolog.Logger
	settle time.Duration
}

// NewWatcher creates a watcher for the store's settings file.
func NewWatcher(store *SettingsStore, logger zerolog.Logger) *Watcher {
	return &Watcher{store: store, logger: logger, settle: defaultSettle}
}

// Run blocks until ctx is done, calling onChange once per burst of writes to
// the settings file.
func (watcher *Watcher) Run(ctx context.Context, onChange func()) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsWatcher.Close()

	if err := os.MkdirAll(watcher.store.Dir(), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := fsWatcher.Add(watcher.store.Dir()); err != nil {
		return fmt.Errorf("watch config directory: %w", err)
	}
	watcher.logger.Debug().Str("dir", watcher.store.Dir()).Msg("settings watcher started")

	target := filepath.Clean(watcher.store.Path())
	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			watcher.logger.Debug().Str("op", event.Op.String()).Str("file", event.Name).Msg("settings change detected")
			settle = time.After(watcher.settle)
		case <-settle:
			settle = nil
			onChange()
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			watcher.logger.Warn().Err(err).Msg("settings watcher error")
		}
	}
}
