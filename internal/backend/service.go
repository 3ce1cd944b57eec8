// Package backend implements the paste service the UI talks to: pause state,
// hotkey configuration and registration, and the paste engine itself.
package backend

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"paster/internal/core/model"
	"paster/internal/core/port"
	"paster/internal/platform"
	"paster/internal/storage"
)

var (
	// ErrPaused refuses a paste while the feature is paused.
	ErrPaused = errors.New("feature paused")
	// ErrClipboardEmpty is returned when the clipboard holds no text.
	ErrClipboardEmpty = errors.New("clipboard has no text")
	// ErrRestartUnavailable is returned when no restarter is configured.
	ErrRestartUnavailable = errors.New("restart not available")
)

// SettingsStore persists settings.
type SettingsStore interface {
	Load() (model.Settings, error)
	Save(settings model.Settings) error
}

// HistoryRecorder stores paste outcomes.
type HistoryRecorder interface {
	Record(ctx context.Context, record storage.PasteRecord) error
}

// SettingsWatcher reports external changes to the settings file.
type SettingsWatcher interface {
	Run(ctx context.Context, onChange func()) error
}

// Dependencies are the collaborators of Service. Only Store is required.
type Dependencies struct {
	Store     SettingsStore
	History   HistoryRecorder
	Watcher   SettingsWatcher
	Clipboard platform.Clipboard
	Typer     platform.Typer
	Hotkey    platform.Hotkey
	// Restart relaunches the application.
	Restart func() error
	// IntN returns a value in [0, n).
	IntN func(n int) int
	// Sleep waits for d or until ctx is done.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Service is the paste back end.
type Service struct {
	mu           sync.Mutex
	deps         Dependencies
	logger       zerolog.Logger
	paused       bool
	settings     model.Settings
	registration platform.Registration
	triggerSubs  map[int]chan struct{}
	nextSubID    int
	reloadSubs   []func(model.Settings)
}

var _ port.Service = (*Service)(nil)

// New loads settings and creates the service. A settings read failure is
// logged and defaults are used.
func New(deps Dependencies, logger zerolog.Logger) *Service {
	if deps.IntN == nil {
		deps.IntN = rand.IntN
	}
	if deps.Sleep == nil {
		deps.Sleep = sleepContext
	}

	settings, err := deps.Store.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("load settings failed, using defaults")
	}

	return &Service{
		deps:        deps,
		logger:      logger,
		settings:    settings,
		triggerSubs: make(map[int]chan struct{}),
	}
}

// Run registers the hotkey and watches the settings file until ctx is done.
func (service *Service) Run(ctx context.Context) error {
	service.mu.Lock()
	if err := service.registerLocked(service.settings.Hotkey); err != nil {
		service.logger.Error().Err(err).Msg("hotkey registration failed")
	}
	service.mu.Unlock()

	group, groupCtx := errgroup.WithContext(ctx)

	if service.deps.Watcher != nil {
		group.Go(func() error {
			if err := service.deps.Watcher.Run(groupCtx, service.reload); err != nil {
				service.logger.Warn().Err(err).Msg("settings watcher stopped")
			}
			return nil
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()
		service.mu.Lock()
		service.unregisterLocked()
		service.mu.Unlock()
		return nil
	})

	return group.Wait()
}

// ExecutePaste types the clipboard text into the focused application,
// sleeping base plus a random jitter after every character.
func (service *Service) ExecutePaste(ctx context.Context, delay model.DelayParameters) error {
	service.mu.Lock()
	paused := service.paused
	service.mu.Unlock()
	if paused {
		return ErrPaused
	}

	started := time.Now()
	characters, err := service.typeClipboard(ctx, delay)
	service.record(ctx, storage.PasteRecord{
		At:         started,
		BaseMs:     delay.Base,
		JitterMs:   delay.Jitter,
		Characters: characters,
		Duration:   time.Since(started),
		Success:    err == nil,
		Error:      errorText(err),
	})
	return err
}

func (service *Service) typeClipboard(ctx context.Context, delay model.DelayParameters) (int, error) {
	if !delay.Valid() {
		return 0, fmt.Errorf("execute paste: invalid delay %d/%d", delay.Base, delay.Jitter)
	}
	if service.deps.Clipboard == nil || service.deps.Typer == nil {
		return 0, fmt.Errorf("execute paste: %w", platform.ErrTypingUnsupported)
	}

	text, err := service.deps.Clipboard.Text()
	if err != nil {
		return 0, fmt.Errorf("read clipboard: %w", err)
	}
	if text == "" {
		return 0, ErrClipboardEmpty
	}
	if err := service.checkTypeable(text); err != nil {
		return 0, err
	}

	typed := 0
	for _, r := range text {
		switch r {
		case '\r':
			continue
		case '\n':
			err = service.deps.Typer.Enter()
		default:
			err = service.deps.Typer.TypeRune(r)
		}
		if err != nil {
			return typed, fmt.Errorf("type character %d: %w", typed+1, err)
		}
		typed++

		pause := time.Duration(delay.Base+service.deps.IntN(delay.Jitter)) * time.Millisecond
		if err := service.deps.Sleep(ctx, pause); err != nil {
			return typed, fmt.Errorf("paste interrupted: %w", err)
		}
	}
	return typed, nil
}

// checkTypeable rejects text the typer cannot reproduce in full, so a failed
// paste leaves nothing half-typed in the target window.
func (service *Service) checkTypeable(text string) error {
	checker, ok := service.deps.Typer.(platform.RuneChecker)
	if !ok {
		return nil
	}
	position := 0
	for _, r := range text {
		if r == '\r' {
			continue
		}
		position++
		if r == '\n' || checker.CanType(r) {
			continue
		}
		return fmt.Errorf("type character %d %q: %w", position, r, platform.ErrTypingUnsupported)
	}
	return nil
}

func (service *Service) record(ctx context.Context, record storage.PasteRecord) {
	if service.deps.History == nil {
		return
	}
	// The paste context may already be cancelled; the outcome is still worth keeping.
	if err := service.deps.History.Record(context.WithoutCancel(ctx), record); err != nil {
		service.logger.Warn().Err(err).Msg("record paste history failed")
	}
}

// TogglePause flips the pause flag and returns the new value.
func (service *Service) TogglePause(ctx context.Context) (bool, error) {
	service.mu.Lock()
	service.paused = !service.paused
	paused := service.paused
	service.mu.Unlock()

	service.logger.Info().Bool("paused", paused).Msg("pause toggled")
	return paused, nil
}

// Paused returns the pause flag.
func (service *Service) Paused(ctx context.Context) (bool, error) {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.paused, nil
}

// GetConfig returns the active hotkey configuration.
func (service *Service) GetConfig(ctx context.Context) (model.HotkeyConfig, error) {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.settings.Hotkey, nil
}

// SetConfig re-registers the hotkey and persists the configuration. On any
// failure the previous configuration stays active.
func (service *Service) SetConfig(ctx context.Context, config model.HotkeyConfig) (port.ConfigResult, error) {
	if !config.Key.Valid() {
		return port.ConfigResult{}, fmt.Errorf("set config: %w: %q", model.ErrUnknownKey, config.Key)
	}
	config = model.Normalize(config)

	service.mu.Lock()
	defer service.mu.Unlock()

	previous := service.settings
	if err := service.swapRegistrationLocked(previous.Hotkey, config); err != nil {
		return port.ConfigResult{}, err
	}

	next := previous
	next.Hotkey = config
	if err := service.deps.Store.Save(next); err != nil {
		if rollbackErr := service.swapRegistrationLocked(config, previous.Hotkey); rollbackErr != nil {
			service.logger.Error().Err(rollbackErr).Msg("restore previous hotkey failed")
		}
		return port.ConfigResult{}, fmt.Errorf("save settings: %w", err)
	}
	service.settings = next

	result := port.ConfigResult{
		Description:     Describe(config),
		RestartRequired: previous.Hotkey.InterceptSystemPaste != config.InterceptSystemPaste,
	}
	service.logger.Info().
		Str("hotkey", result.Description).
		Bool("restart_required", result.RestartRequired).
		Msg("hotkey config updated")
	return result, nil
}

// Describe renders a configuration for display.
func (service *Service) Describe(ctx context.Context, config model.HotkeyConfig) (string, error) {
	return Describe(config), nil
}

// RestartApp relaunches the application.
func (service *Service) RestartApp(ctx context.Context) error {
	if service.deps.Restart == nil {
		return ErrRestartUnavailable
	}
	service.logger.Info().Msg("restarting")
	if err := service.deps.Restart(); err != nil {
		return fmt.Errorf("restart app: %w", err)
	}
	return nil
}

// Delay returns the last committed delay parameters.
func (service *Service) Delay() model.DelayParameters {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.settings.Delay
}

// SetDelay persists committed delay parameters.
func (service *Service) SetDelay(delay model.DelayParameters) error {
	if !delay.Valid() {
		return fmt.Errorf("set delay: invalid delay %d/%d", delay.Base, delay.Jitter)
	}

	service.mu.Lock()
	defer service.mu.Unlock()
	if service.settings.Delay == delay {
		return nil
	}

	next := service.settings
	next.Delay = delay
	if err := service.deps.Store.Save(next); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	service.settings = next
	return nil
}

// SubscribeTriggers returns a channel receiving one value per hotkey press.
// Presses are dropped for a subscriber whose buffer is full.
func (service *Service) SubscribeTriggers(buffer int) (<-chan struct{}, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan struct{}, buffer)

	service.mu.Lock()
	id := service.nextSubID
	service.nextSubID++
	service.triggerSubs[id] = ch
	service.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			service.mu.Lock()
			delete(service.triggerSubs, id)
			service.mu.Unlock()
			close(ch)
		})
	}
}

// OnReload registers a callback run after settings.yaml changed on disk.
func (service *Service) OnReload(callback func(model.Settings)) {
	service.mu.Lock()
	service.reloadSubs = append(service.reloadSubs, callback)
	service.mu.Unlock()
}

func (service *Service) reload() {
	loaded, err := service.deps.Store.Load()
	if err != nil {
		service.logger.Warn().Err(err).Msg("reload settings failed")
		return
	}

	service.mu.Lock()
	if loaded == service.settings {
		service.mu.Unlock()
		return
	}
	if loaded.Hotkey != service.settings.Hotkey {
		if err := service.swapRegistrationLocked(service.settings.Hotkey, loaded.Hotkey); err != nil {
			service.logger.Warn().Err(err).Msg("reloaded hotkey not applied")
			loaded.Hotkey = service.settings.Hotkey
		}
	}
	service.settings = loaded
	callbacks := append([]func(model.Settings){}, service.reloadSubs...)
	service.mu.Unlock()

	service.logger.Info().Str("hotkey", Describe(loaded.Hotkey)).Msg("settings reloaded")
	for _, callback := range callbacks {
		callback(loaded)
	}
}

// swapRegistrationLocked replaces the active registration. When the new combo
// cannot be registered the previous one is restored.
func (service *Service) swapRegistrationLocked(previous, next model.HotkeyConfig) error {
	if service.deps.Hotkey == nil {
		return nil
	}
	if service.registration != nil && platform.ComboFor(previous) == platform.ComboFor(next) {
		return nil
	}

	service.unregisterLocked()
	if err := service.registerLocked(next); err != nil {
		if restoreErr := service.registerLocked(previous); restoreErr != nil {
			service.logger.Error().Err(restoreErr).Msg("restore previous hotkey failed")
		}
		return err
	}
	return nil
}

func (service *Service) registerLocked(config model.HotkeyConfig) error {
	if service.deps.Hotkey == nil {
		return nil
	}
	combo := platform.ComboFor(config)
	registration, err := service.deps.Hotkey.Register(combo)
	if err != nil {
		return fmt.Errorf("register hotkey %s: %w", Describe(config), err)
	}
	service.registration = registration
	service.logger.Debug().Str("combo", combo.String()).Msg("hotkey registered")

	go service.forward(registration)
	return nil
}

func (service *Service) unregisterLocked() {
	if service.registration == nil {
		return
	}
	if err := service.registration.Close(); err != nil {
		service.logger.Warn().Err(err).Msg("unregister hotkey failed")
	}
	service.registration = nil
}

func (service *Service) forward(registration platform.Registration) {
	for range registration.Triggers() {
		service.mu.Lock()
		for _, ch := range service.triggerSubs {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
		service.mu.Unlock()
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
