// Package port declares the contract between the control surface and the
// service that performs pastes, captures the hotkey and persists configuration.
package port

import (
	"context"

	"paster/internal/core/model"
)

// ConfigResult is what the service reports after accepting a new hotkey config.
type ConfigResult struct {
	Description     string
	RestartRequired bool
}

// Executor runs the paste routine.
type Executor interface {
	ExecutePaste(ctx context.Context, delay model.DelayParameters) error
}

// PauseService owns the pause flag.
type PauseService interface {
	TogglePause(ctx context.Context) (bool, error)
	Paused(ctx context.Context) (bool, error)
}

// ConfigService owns the hotkey configuration.
type ConfigService interface {
	GetConfig(ctx context.Context) (model.HotkeyConfig, error)
	SetConfig(ctx context.Context, config model.HotkeyConfig) (ConfigResult, error)
	Describe(ctx context.Context, config model.HotkeyConfig) (string, error)
	RestartApp(ctx context.Context) error
}

// TriggerSource delivers external trigger signals. The returned function
// cancels the subscription and closes the channel.
type TriggerSource interface {
	SubscribeTriggers(buffer int) (<-chan struct{}, func())
}

// Service is the full command surface.
type Service interface {
	Executor
	PauseService
	ConfigService
	TriggerSource
}
