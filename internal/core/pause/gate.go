// Package pause caches the service-owned pause flag for synchronous reads.
package pause

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"paster/internal/core/port"
)

// Gate holds the last pause state reported by the service. The cached value
// only changes to what the service returned.
type Gate struct {
	mu       sync.Mutex
	service  port.PauseService
	logger   zerolog.Logger
	paused   bool
	watchers []chan bool
}

// New creates a gate that starts unpaused.
func New(service port.PauseService, logger zerolog.Logger) *Gate {
	return &Gate{
		service: service,
		logger:  logger,
	}
}

// Paused reads the cached state.
func (gate *Gate) Paused() bool {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	return gate.paused
}

// Subscribe registers a channel that receives the cached state after each change.
func (gate *Gate) Subscribe(buffer int) <-chan bool {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan bool, buffer)
	gate.mu.Lock()
	gate.watchers = append(gate.watchers, ch)
	gate.mu.Unlock()
	return ch
}

// Toggle asks the service to flip the flag and caches its answer. On failure
// the cached state is kept and returned together with the error.
func (gate *Gate) Toggle(ctx context.Context) (bool, error) {
	paused, err := gate.service.TogglePause(ctx)
	if err != nil {
		current := gate.Paused()
		gate.logger.Error().Err(err).Bool("paused", current).Msg("toggle pause failed")
		return current, fmt.Errorf("toggle pause: %w", err)
	}
	gate.set(paused)
	gate.logger.Info().Bool("paused", paused).Msg("pause toggled")
	return paused, nil
}

// Sync refreshes the cache from the service. Failures keep the cached value.
func (gate *Gate) Sync(ctx context.Context) {
	paused, err := gate.service.Paused(ctx)
	if err != nil {
		gate.logger.Warn().Err(err).Msg("fetch pause state failed")
		return
	}
	gate.set(paused)
}

// Close releases all subscribers.
func (gate *Gate) Close() {
	gate.mu.Lock()
	watchers := gate.watchers
	gate.watchers = nil
	gate.mu.Unlock()

	for _, ch := range watchers {
		close(ch)
	}
}

func (gate *Gate) set(paused bool) {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	if gate.paused == paused {
		return
	}
	gate.paused = paused
	for _, ch := range gate.watchers {
		select {
		case ch <- paused:
		default:
		}
	}
}
