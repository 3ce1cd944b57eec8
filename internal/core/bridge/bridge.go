// Package bridge forwards external trigger signals to the scheduler.
package bridge

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"paster/internal/core/port"
	"paster/internal/core/trigger"
)

// Requester accepts trigger requests.
type Requester interface {
	Request(origin trigger.Origin) error
}

// Bridge holds one subscription to the service's external trigger events for
// as long as it is started.
type Bridge struct {
	mu          sync.Mutex
	source      port.TriggerSource
	requester   Requester
	logger      zerolog.Logger
	unsubscribe func()
	stopCh      chan struct{}
	done        chan struct{}
}

// New creates a stopped bridge.
func New(source port.TriggerSource, requester Requester, logger zerolog.Logger) *Bridge {
	return &Bridge{
		source:    source,
		requester: requester,
		logger:    logger,
	}
}

// Start subscribes before returning, so no trigger sent afterwards is missed.
// Calling Start twice is a no-op.
func (bridge *Bridge) Start(ctx context.Context) {
	bridge.mu.Lock()
	defer bridge.mu.Unlock()
	if bridge.stopCh != nil {
		return
	}

	triggers, unsubscribe := bridge.source.SubscribeTriggers(8)
	bridge.unsubscribe = unsubscribe
	bridge.stopCh = make(chan struct{})
	bridge.done = make(chan struct{})

	go bridge.run(ctx, triggers, bridge.stopCh, bridge.done)
	bridge.logger.Debug().Msg("external trigger subscription started")
}

// Stop tears the subscription down and waits for the forwarding loop to exit.
// No request is made after Stop returns.
func (bridge *Bridge) Stop() {
	bridge.mu.Lock()
	stopCh, done, unsubscribe := bridge.stopCh, bridge.done, bridge.unsubscribe
	bridge.stopCh, bridge.done, bridge.unsubscribe = nil, nil, nil
	bridge.mu.Unlock()

	if stopCh == nil {
		return
	}
	close(stopCh)
	<-done
	if unsubscribe != nil {
		unsubscribe()
	}
	bridge.logger.Debug().Msg("external trigger subscription stopped")
}

func (bridge *Bridge) run(ctx context.Context, triggers <-chan struct{}, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case _, ok := <-triggers:
			if !ok {
				return
			}
			select {
			case <-stop:
				return
			default:
			}
			bridge.forward()
		}
	}
}

func (bridge *Bridge) forward() {
	err := bridge.requester.Request(trigger.OriginExternal)
	switch {
	case err == nil:
	case errors.Is(err, trigger.ErrPaused), errors.Is(err, trigger.ErrBusy):
		bridge.logger.Debug().Err(err).Msg("external trigger not accepted")
	default:
		bridge.logger.Warn().Err(err).Msg("external trigger failed")
	}
}
