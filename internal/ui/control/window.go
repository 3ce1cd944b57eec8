package control

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"paster/internal/core/model"
	"paster/internal/core/trigger"
)

// Callbacks are the user actions the window forwards.
type Callbacks struct {
	OnTrigger      func()
	OnTogglePause  func()
	OnEditHotkey   func()
	OnDelayChanged func(model.DelayParameters)
}

// Window is the main application window.
type Window struct {
	window      fyne.Window
	callbacks   Callbacks
	logger      zerolog.Logger
	base        *DelayEntry
	jitter      *DelayEntry
	trigger     *widget.Button
	busy        *widget.ProgressBarInfinite
	pause       *widget.Button
	status      *widget.Label
	hotkey      *widget.Label
	restartNote *widget.Label
}

// New builds the window with the committed delay parameters.
func New(app fyne.App, delay model.DelayParameters, callbacks Callbacks, logger zerolog.Logger) *Window {
	window := app.NewWindow("Paster")

	control := &Window{
		window:      window,
		callbacks:   callbacks,
		logger:      logger,
		status:      widget.NewLabel(""),
		hotkey:      widget.NewLabel(""),
		restartNote: widget.NewLabel("Restart to apply the system paste change"),
		busy:        widget.NewProgressBarInfinite(),
	}
	baseText, jitterText := delay.Texts()
	control.base = NewDelayEntry(baseText, func(string) { control.delayCommitted() })
	control.jitter = NewDelayEntry(jitterText, func(string) { control.delayCommitted() })

	control.trigger = widget.NewButtonWithIcon(triggerLabel, theme.ContentPasteIcon(), func() {
		if control.callbacks.OnTrigger != nil {
			control.callbacks.OnTrigger()
		}
	})
	control.trigger.Importance = widget.HighImportance

	control.pause = widget.NewButtonWithIcon(PauseLabel(false), theme.MediaPauseIcon(), func() {
		if control.callbacks.OnTogglePause != nil {
			control.callbacks.OnTogglePause()
		}
	})

	editHotkey := widget.NewButtonWithIcon("Change hotkey", theme.SettingsIcon(), func() {
		if control.callbacks.OnEditHotkey != nil {
			control.callbacks.OnEditHotkey()
		}
	})

	control.busy.Hide()
	control.restartNote.Hide()
	control.status.Wrapping = fyne.TextWrapWord

	delays := widget.NewForm(
		widget.NewFormItem("Base delay (ms)", control.base),
		widget.NewFormItem("Jitter (ms)", control.jitter),
	)

	content := container.NewVBox(
		widget.NewLabelWithStyle("Delay", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		delays,
		container.NewStack(control.trigger, control.busy),
		control.status,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Hotkey", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(control.hotkey, layout.NewSpacer(), editHotkey),
		control.restartNote,
		layout.NewSpacer(),
		container.NewHBox(layout.NewSpacer(), control.pause),
	)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(380, 360))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return control
}

// Show displays and focuses the window.
func (control *Window) Show() {
	control.window.Show()
	control.window.RequestFocus()
}

// Delay returns the committed delay parameters. Safe from any goroutine.
func (control *Window) Delay() model.DelayParameters {
	delay, err := model.ParseDelayParameters(control.base.Committed(), control.jitter.Committed())
	if err != nil {
		control.logger.Error().Err(err).Msg("committed delay invalid, using defaults")
		return model.DefaultDelayParameters()
	}
	return delay
}

// SetDelay replaces the committed delay parameters, e.g. after a settings reload.
func (control *Window) SetDelay(delay model.DelayParameters) {
	baseText, jitterText := delay.Texts()
	control.base.SetCommitted(baseText)
	control.jitter.SetCommitted(jitterText)
}

// ApplyEvent renders a scheduler event. Must run on the UI goroutine.
func (control *Window) ApplyEvent(event trigger.Event) {
	if event.Type == trigger.EventStateChange || event.Type == trigger.EventTick {
		control.renderButton(TriggerButton(event.State, event.Remaining))
	}
	if text, ok := StatusText(event); ok {
		control.status.SetText(text)
	}
}

// SetPaused updates the pause button.
func (control *Window) SetPaused(paused bool) {
	control.pause.SetText(PauseLabel(paused))
	if paused {
		control.pause.SetIcon(theme.MediaPlayIcon())
	} else {
		control.pause.SetIcon(theme.MediaPauseIcon())
	}
}

// SetHotkey shows the hotkey description and the restart notice.
func (control *Window) SetHotkey(description string, restartRequired bool) {
	control.hotkey.SetText(description)
	if restartRequired {
		control.restartNote.Show()
	} else {
		control.restartNote.Hide()
	}
}

// SetStatus replaces the status line.
func (control *Window) SetStatus(text string) {
	control.status.SetText(text)
}

func (control *Window) renderButton(view ButtonView) {
	control.trigger.SetText(view.Label)
	if view.Disabled {
		control.trigger.Disable()
	} else {
		control.trigger.Enable()
	}
	if view.Busy {
		control.trigger.Hide()
		control.busy.Show()
	} else {
		control.busy.Hide()
		control.trigger.Show()
	}
}

func (control *Window) delayCommitted() {
	delay := control.Delay()
	control.logger.Debug().Int("base", delay.Base).Int("jitter", delay.Jitter).Msg("delay committed")
	if control.callbacks.OnDelayChanged != nil {
		control.callbacks.OnDelayChanged(delay)
	}
}
