package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"paster/internal/core/model"
)

func TestWatcher_ReportsSettingsChanges(t *testing.T) {
	store := NewSettingsStore(t.TempDir())
	watcher := NewWatcher(store, zerolog.Nop())
	watcher.settle = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Run(ctx, func() { changes <- struct{}{} })
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher time to register the directory.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "unrelated.txt"), []byte("x"), 0o644))
	require.NoError(t, store.Save(model.DefaultSettings()))

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("settings change not reported")
	}
}
