// Package configsync keeps the locally shown hotkey configuration in step with
// the service: fetched on mount, pushed on save.
package configsync

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"paster/internal/core/model"
	"paster/internal/core/port"
)

// View is a snapshot of the controller state for rendering.
type View struct {
	Config          model.HotkeyConfig
	Draft           model.HotkeyConfig
	Description     string
	Editing         bool
	Error           string
	RestartRequired bool
}

// Controller owns the committed hotkey config, the edit draft and the
// description text returned by the service.
type Controller struct {
	mu              sync.Mutex
	service         port.ConfigService
	logger          zerolog.Logger
	config          model.HotkeyConfig
	draft           model.HotkeyConfig
	description     string
	editing         bool
	errorMessage    string
	restartRequired bool
	onChange        func(View)
}

// New creates a controller showing the default configuration.
func New(service port.ConfigService, logger zerolog.Logger) *Controller {
	config := model.DefaultHotkeyConfig()
	return &Controller{
		service: service,
		logger:  logger,
		config:  config,
		draft:   config,
	}
}

// OnChange registers the callback invoked with a fresh View after every mutation.
func (controller *Controller) OnChange(callback func(View)) {
	controller.mu.Lock()
	controller.onChange = callback
	controller.mu.Unlock()
}

// View returns the current state.
func (controller *Controller) View() View {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.viewLocked()
}

// Mount fetches the service configuration and its description. Failures keep
// the defaults and are only logged.
func (controller *Controller) Mount(ctx context.Context) {
	config, err := controller.service.GetConfig(ctx)
	if err != nil {
		controller.logger.Warn().Err(err).Msg("fetch hotkey config failed, keeping defaults")
		return
	}
	config = model.Normalize(config)

	description, err := controller.service.Describe(ctx, config)
	if err != nil {
		controller.logger.Warn().Err(err).Msg("describe hotkey config failed")
	}

	controller.mu.Lock()
	controller.config = config
	if !controller.editing {
		controller.draft = config
	}
	if err == nil {
		controller.description = description
	}
	controller.mu.Unlock()

	controller.notify()
}

// OpenEditor starts editing a draft copied from the committed config.
func (controller *Controller) OpenEditor() {
	controller.mu.Lock()
	controller.draft = controller.config
	controller.editing = true
	controller.errorMessage = ""
	controller.mu.Unlock()

	controller.notify()
}

// CancelEdit discards the draft.
func (controller *Controller) CancelEdit() {
	controller.mu.Lock()
	controller.draft = controller.config
	controller.editing = false
	controller.errorMessage = ""
	controller.mu.Unlock()

	controller.notify()
}

// SetField applies a boolean edit to the draft.
func (controller *Controller) SetField(field model.Field, value bool) model.HotkeyConfig {
	controller.mu.Lock()
	controller.draft = model.ApplyField(controller.draft, field, value)
	draft := controller.draft
	controller.mu.Unlock()

	controller.notify()
	return draft
}

// SetKey applies a key edit to the draft.
func (controller *Controller) SetKey(key model.Key) model.HotkeyConfig {
	controller.mu.Lock()
	controller.draft = model.ApplyKey(controller.draft, key)
	draft := controller.draft
	controller.mu.Unlock()

	controller.notify()
	return draft
}

// Save pushes the normalized draft. On success the description is replaced
// and the editor closes; on failure the error text is kept and the editor
// stays open.
func (controller *Controller) Save(ctx context.Context) error {
	controller.mu.Lock()
	draft := model.Normalize(controller.draft)
	controller.draft = draft
	controller.mu.Unlock()

	result, err := controller.service.SetConfig(ctx, draft)
	if err != nil {
		controller.logger.Error().Err(err).Msg("save hotkey config failed")
		controller.mu.Lock()
		controller.errorMessage = err.Error()
		controller.editing = true
		controller.mu.Unlock()
		controller.notify()
		return fmt.Errorf("save hotkey config: %w", err)
	}

	controller.mu.Lock()
	controller.config = draft
	controller.description = result.Description
	controller.restartRequired = controller.restartRequired || result.RestartRequired
	controller.editing = false
	controller.errorMessage = ""
	controller.mu.Unlock()

	controller.logger.Info().
		Str("hotkey", result.Description).
		Bool("restart_required", result.RestartRequired).
		Msg("hotkey config saved")
	controller.notify()
	return nil
}

// Restart asks the service to restart the application. The error text is
// surfaced on failure.
func (controller *Controller) Restart(ctx context.Context) error {
	if err := controller.service.RestartApp(ctx); err != nil {
		controller.logger.Error().Err(err).Msg("restart failed")
		controller.mu.Lock()
		controller.errorMessage = err.Error()
		controller.mu.Unlock()
		controller.notify()
		return fmt.Errorf("restart app: %w", err)
	}
	return nil
}

func (controller *Controller) viewLocked() View {
	return View{
		Config:          controller.config,
		Draft:           controller.draft,
		Description:     controller.description,
		Editing:         controller.editing,
		Error:           controller.errorMessage,
		RestartRequired: controller.restartRequired,
	}
}

func (controller *Controller) notify() {
	controller.mu.Lock()
	callback := controller.onChange
	view := controller.viewLocked()
	controller.mu.Unlock()

	if callback != nil {
		callback(view)
	}
}
