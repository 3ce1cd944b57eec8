package trigger

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"paster/internal/core/model"
	"paster/internal/core/port"
)

var (
	// ErrPaused rejects a request while the feature is paused.
	ErrPaused = errors.New("feature paused")
	// ErrBusy rejects a request while another trigger is armed or executing.
	ErrBusy = errors.New("trigger already active")
	// ErrClosed rejects requests after Close.
	ErrClosed = errors.New("scheduler closed")
)

// PauseReader reports the cached pause state without blocking.
type PauseReader interface {
	Paused() bool
}

// DelaySource returns the committed delay parameters at execution time.
type DelaySource func() model.DelayParameters

// Config contains runtime options for Scheduler.
type Config struct {
	TickInterval time.Duration
	Countdown    int
}

// Scheduler is a state machine that turns trigger requests into paste executions.
// At most one session is armed or executing at a time.
type Scheduler struct {
	mu        sync.Mutex
	executor  port.Executor
	pause     PauseReader
	delays    DelaySource
	options   Config
	logger    zerolog.Logger
	state     State
	origin    Origin
	remaining int
	session   uint64
	ticker    *time.Ticker
	stopTick  chan struct{}
	events    []chan Event
	ctx       context.Context
	cancel    context.CancelFunc
	closed    bool
	wg        sync.WaitGroup
}

// New creates a Scheduler in the idle state.
func New(executor port.Executor, pause PauseReader, delays DelaySource, options Config, logger zerolog.Logger) *Scheduler {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Countdown <= 0 {
		options.Countdown = 3
	}
	if delays == nil {
		delays = model.DefaultDelayParameters
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		executor: executor,
		pause:    pause,
		delays:   delays,
		options:  options,
		logger:   logger,
		state:    StateIdle,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Subscribe registers a new observer channel.
func (scheduler *Scheduler) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	scheduler.mu.Lock()
	scheduler.events = append(scheduler.events, ch)
	scheduler.mu.Unlock()
	return ch
}

// State returns the current mode and the countdown value shown while armed.
func (scheduler *Scheduler) State() (State, int) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.state, scheduler.remaining
}

// Request starts a trigger session. Manual requests count down before
// executing; external requests execute immediately. A request while paused or
// while a session is active changes nothing.
func (scheduler *Scheduler) Request(origin Origin) error {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	if scheduler.closed {
		return ErrClosed
	}
	if scheduler.pause != nil && scheduler.pause.Paused() {
		scheduler.logger.Info().Str("origin", string(origin)).Msg("trigger rejected: paused")
		scheduler.emitLocked(Event{
			Type:    EventRejected,
			State:   scheduler.state,
			Origin:  origin,
			Message: ErrPaused.Error(),
			Err:     ErrPaused,
			At:      time.Now(),
		})
		return ErrPaused
	}
	if scheduler.state != StateIdle {
		scheduler.logger.Debug().
			Str("origin", string(origin)).
			Str("state", string(scheduler.state)).
			Msg("trigger ignored: session active")
		return ErrBusy
	}

	scheduler.session++
	scheduler.origin = origin
	if origin == OriginExternal {
		scheduler.beginExecutionLocked()
		return nil
	}

	scheduler.armLocked()
	return nil
}

// Close stops any countdown, cancels a running execution and releases observers.
func (scheduler *Scheduler) Close() {
	scheduler.mu.Lock()
	if scheduler.closed {
		scheduler.mu.Unlock()
		return
	}
	scheduler.closed = true
	scheduler.stopTickerLocked()
	events := scheduler.events
	scheduler.events = nil
	scheduler.mu.Unlock()

	scheduler.cancel()
	scheduler.wg.Wait()

	for _, ch := range events {
		close(ch)
	}
}

func (scheduler *Scheduler) armLocked() {
	scheduler.state = StateArmed
	scheduler.remaining = scheduler.options.Countdown

	ticker := time.NewTicker(scheduler.options.TickInterval)
	stop := make(chan struct{})
	scheduler.ticker = ticker
	scheduler.stopTick = stop

	scheduler.logger.Debug().Int("remaining", scheduler.remaining).Msg("trigger armed")
	scheduler.emitLocked(Event{
		Type:      EventStateChange,
		State:     StateArmed,
		Origin:    scheduler.origin,
		Remaining: scheduler.remaining,
		At:        time.Now(),
	})

	scheduler.wg.Add(1)
	go scheduler.run(scheduler.session, ticker.C, stop)
}

func (scheduler *Scheduler) run(session uint64, ticks <-chan time.Time, stop <-chan struct{}) {
	defer scheduler.wg.Done()

	for {
		select {
		case <-stop:
			return
		case tickTime := <-ticks:
			if !scheduler.tick(session, tickTime) {
				return
			}
		}
	}
}

func (scheduler *Scheduler) tick(session uint64, tickTime time.Time) bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	if scheduler.closed || scheduler.session != session || scheduler.state != StateArmed {
		return false
	}

	if scheduler.remaining <= 1 {
		scheduler.stopTickerLocked()
		scheduler.beginExecutionLocked()
		return false
	}

	scheduler.remaining--
	scheduler.emitLocked(Event{
		Type:      EventTick,
		State:     StateArmed,
		Origin:    scheduler.origin,
		Remaining: scheduler.remaining,
		At:        tickTime,
	})
	return true
}

func (scheduler *Scheduler) stopTickerLocked() {
	if scheduler.ticker != nil {
		scheduler.ticker.Stop()
		scheduler.ticker = nil
	}
	if scheduler.stopTick != nil {
		close(scheduler.stopTick)
		scheduler.stopTick = nil
	}
}

func (scheduler *Scheduler) beginExecutionLocked() {
	scheduler.state = StateExecuting
	scheduler.remaining = 0
	delay := scheduler.delays()

	scheduler.emitLocked(Event{
		Type:   EventStateChange,
		State:  StateExecuting,
		Origin: scheduler.origin,
		At:     time.Now(),
	})

	scheduler.wg.Add(1)
	go scheduler.execute(scheduler.session, scheduler.origin, delay)
}

func (scheduler *Scheduler) execute(session uint64, origin Origin, delay model.DelayParameters) {
	defer scheduler.wg.Done()

	started := time.Now()
	err := scheduler.executor.ExecutePaste(scheduler.ctx, delay)

	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	if scheduler.session != session {
		return
	}
	scheduler.state = StateIdle
	now := time.Now()

	if err != nil {
		scheduler.logger.Error().Err(err).Str("origin", string(origin)).Msg("paste failed")
		scheduler.emitLocked(Event{
			Type:    EventFailed,
			State:   StateIdle,
			Origin:  origin,
			Message: err.Error(),
			Err:     err,
			At:      now,
		})
	} else {
		scheduler.logger.Info().
			Str("origin", string(origin)).
			Int("base", delay.Base).
			Int("jitter", delay.Jitter).
			Dur("took", now.Sub(started)).
			Msg("paste executed")
		scheduler.emitLocked(Event{
			Type:   EventExecuted,
			State:  StateIdle,
			Origin: origin,
			At:     now,
		})
	}

	scheduler.emitLocked(Event{
		Type:   EventStateChange,
		State:  StateIdle,
		Origin: origin,
		At:     now,
	})
}

func (scheduler *Scheduler) emitLocked(event Event) {
	for _, ch := range scheduler.events {
		select {
		case ch <- event:
		default:
		}
	}
}
