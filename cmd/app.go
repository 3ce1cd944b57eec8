package main

import (
	"context"
	"errors"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"paster/internal/backend"
	"paster/internal/core/bridge"
	"paster/internal/core/configsync"
	"paster/internal/core/model"
	"paster/internal/core/pause"
	"paster/internal/core/trigger"
	"paster/internal/logging"
	"paster/internal/platform"
	"paster/internal/storage"
	"paster/internal/ui/control"
	"paster/internal/ui/preferences"
	"paster/internal/ui/tray"
)

func runApp(opts options, logger zerolog.Logger) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			if notifyErr := platform.NotifyRunning(appName); notifyErr != nil {
				logger.Warn().Err(notifyErr).Msg("another instance holds the lock but did not answer")
			}
			logger.Info().Msg("already running, showing the existing window")
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	dir, err := storage.ResolveDir(opts.configDir)
	if err != nil {
		return err
	}
	store := storage.NewSettingsStore(dir)

	var recorder backend.HistoryRecorder
	if history, err := storage.OpenHistory(dir); err != nil {
		logger.Warn().Err(err).Msg("paste history disabled")
	} else {
		defer history.Close()
		recorder = history
	}

	typer, err := platform.NewTyper()
	if err != nil {
		logger.Error().Err(err).Msg("keystroke typing unavailable")
	}

	if !opts.noAutostart {
		enableAutostart(logger)
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.ContentPasteIcon())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := backend.New(backend.Dependencies{
		Store:     store,
		History:   recorder,
		Watcher:   storage.NewWatcher(store, logging.Component(logger, "settings")),
		Clipboard: platform.NewClipboard(),
		Typer:     typer,
		Hotkey:    platform.NewHotkey(),
		Restart: func() error {
			if err := guard.Release(); err != nil {
				return err
			}
			if err := platform.Relaunch(); err != nil {
				return err
			}
			fyne.Do(fyneApp.Quit)
			return nil
		},
	}, logging.Component(logger, "backend"))

	serviceDone := make(chan struct{})
	go func() {
		defer close(serviceDone)
		if err := service.Run(ctx); err != nil {
			logger.Error().Err(err).Msg("backend stopped")
		}
	}()

	gate := pause.New(service, logging.Component(logger, "pause"))
	controller := configsync.New(service, logging.Component(logger, "configsync"))

	var controlWindow *control.Window
	scheduler := trigger.New(service, gate, func() model.DelayParameters {
		return controlWindow.Delay()
	}, trigger.Config{}, logging.Component(logger, "trigger"))

	togglePause := pauseToggler(ctx, gate, logger)

	hotkeyPanel := preferences.New(ctx, fyneApp, controller, logging.Component(logger, "hotkey-panel"))
	controlWindow = control.New(fyneApp, service.Delay(), control.Callbacks{
		OnTrigger: func() {
			if err := scheduler.Request(trigger.OriginManual); err != nil {
				logger.Debug().Err(err).Msg("manual trigger not accepted")
			}
		},
		OnTogglePause: togglePause,
		OnEditHotkey:  hotkeyPanel.Show,
		OnDelayChanged: func(delay model.DelayParameters) {
			if err := service.SetDelay(delay); err != nil {
				logger.Warn().Err(err).Msg("persist delay failed")
			}
		},
	}, logging.Component(logger, "control"))

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        controlWindow.Show,
			OnTogglePause: togglePause,
			OnQuit:        fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(theme.ContentPasteIcon())
	} else {
		logger.Warn().Msg("system tray unsupported on this platform")
	}

	controller.OnChange(func(view configsync.View) {
		fyne.Do(func() {
			hotkeyPanel.Render(view)
			controlWindow.SetHotkey(view.Description, view.RestartRequired)
			if trayManager != nil {
				trayManager.SetHotkey(view.Description)
			}
		})
	})

	service.OnReload(func(settings model.Settings) {
		fyne.Do(func() {
			controlWindow.SetDelay(settings.Delay)
		})
		controller.Mount(ctx)
	})

	schedulerEvents := scheduler.Subscribe(16)
	go func() {
		for event := range schedulerEvents {
			fyne.Do(func() {
				controlWindow.ApplyEvent(event)
			})
		}
	}()

	pauseEvents := gate.Subscribe(4)
	go func() {
		for paused := range pauseEvents {
			fyne.Do(func() {
				controlWindow.SetPaused(paused)
				if trayManager != nil {
					trayManager.SetPaused(paused)
				}
			})
		}
	}()

	externalTriggers := bridge.New(service, scheduler, logging.Component(logger, "bridge"))
	externalTriggers.Start(ctx)

	guard.Serve(func() {
		fyne.Do(controlWindow.Show)
	})

	go func() {
		gate.Sync(ctx)
		controller.Mount(ctx)
	}()

	logger.Info().Str("config_dir", dir).Msg("paster started")
	controlWindow.Show()
	fyneApp.Run()

	externalTriggers.Stop()
	scheduler.Close()
	gate.Close()
	cancel()
	<-serviceDone
	logger.Info().Msg("paster stopped")
	return nil
}

type pauseToggle interface {
	Toggle(ctx context.Context) (bool, error)
}

// pauseToggler returns a UI callback that flips the pause state off the UI
// goroutine.
func pauseToggler(ctx context.Context, gate pauseToggle, logger zerolog.Logger) func() {
	return func() {
		go func() {
			if _, err := gate.Toggle(ctx); err != nil {
				logger.Debug().Err(err).Msg("pause toggle not applied")
			}
		}()
	}
}

func enableAutostart(logger zerolog.Logger) {
	execPath, err := os.Executable()
	if err != nil {
		logger.Warn().Err(err).Msg("autostart skipped")
		return
	}
	changed, err := platform.EnsureAutostart(platform.NewAutostart(), appName, execPath)
	if err != nil {
		logger.Warn().Err(err).Msg("enable autostart failed")
		return
	}
	if changed {
		logger.Info().Str("exec", execPath).Msg("autostart enabled")
	}
}
