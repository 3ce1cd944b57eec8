package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnTogglePause func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	hotkeyItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	paused     bool
	hotkey     string
}

// New creates a tray manager with the provided callbacks and installs its menu.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.hotkeyItem = fyne.NewMenuItem("Hotkey: ...", nil)
	manager.hotkeyItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem(pauseLabel(false), func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetPaused updates the pause item label.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	manager.pauseItem.Label = pauseLabel(paused)
	manager.refreshMenu()
}

// SetHotkey shows the active hotkey description.
func (manager *Manager) SetHotkey(description string) {
	manager.hotkey = description
	manager.hotkeyItem.Label = fmt.Sprintf("Hotkey: %s", description)
	manager.refreshMenu()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	show := fyne.NewMenuItem("Show window", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	return fyne.NewMenu("Paster",
		manager.hotkeyItem,
		show,
		manager.pauseItem,
		fyne.NewMenuItemSeparator(),
		quit,
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

func pauseLabel(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}
