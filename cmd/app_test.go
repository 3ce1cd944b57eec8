package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubToggle struct {
	calls chan struct{}
	err   error
}

func (toggle *stubToggle) Toggle(ctx context.Context) (bool, error) {
	toggle.calls <- struct{}{}
	return false, toggle.err
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (buffer *syncBuffer) Write(p []byte) (int, error) {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	return buffer.buf.Write(p)
}

func (buffer *syncBuffer) String() string {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	return buffer.buf.String()
}

func TestPauseToggler_LogsFailureAtDebug(t *testing.T) {
	output := &syncBuffer{}
	logger := zerolog.New(output).Level(zerolog.DebugLevel)
	toggle := &stubToggle{calls: make(chan struct{}, 1), err: errors.New("service gone")}

	pauseToggler(context.Background(), toggle, logger)()

	select {
	case <-toggle.calls:
	case <-time.After(time.Second):
		t.Fatal("toggle was not called")
	}
	require.Eventually(t, func() bool {
		return strings.Contains(output.String(), "pause toggle not applied")
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, output.String(), `"level":"debug"`)
	assert.Contains(t, output.String(), "service gone")
}

func TestPauseToggler_SuccessLogsNothing(t *testing.T) {
	output := &syncBuffer{}
	logger := zerolog.New(output).Level(zerolog.DebugLevel)
	toggle := &stubToggle{calls: make(chan struct{}, 1)}

	pauseToggler(context.Background(), toggle, logger)()

	select {
	case <-toggle.calls:
	case <-time.After(time.Second):
		t.Fatal("toggle was not called")
	}
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, output.String())
}
