// Package preferences contains the hotkey panel.
package preferences

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"paster/internal/core/configsync"
	"paster/internal/core/model"
)

// Editor is the draft/commit surface the panel drives.
type Editor interface {
	View() configsync.View
	OpenEditor()
	CancelEdit()
	SetField(field model.Field, value bool) model.HotkeyConfig
	SetKey(key model.Key) model.HotkeyConfig
	Save(ctx context.Context) error
	Restart(ctx context.Context) error
}

// Window handles the hotkey panel.
type Window struct {
	window      fyne.Window
	editor      Editor
	logger      zerolog.Logger
	ctx         context.Context
	checks      map[model.Field]*widget.Check
	key         *widget.Select
	intercept   *widget.Check
	combination *fyne.Container
	errorLabel  *widget.Label
	saveButton  *widget.Button
	restart     *widget.Button
	rendering   bool
}

// New creates the hotkey panel. ctx bounds the service calls it makes.
func New(ctx context.Context, app fyne.App, editor Editor, logger zerolog.Logger) *Window {
	window := app.NewWindow("Paster Hotkey")

	prefs := &Window{
		window: window,
		editor: editor,
		logger: logger,
		ctx:    ctx,
		checks: make(map[model.Field]*widget.Check),
	}

	modifiers := container.NewHBox()
	for _, item := range modifierFields {
		field := item.Field
		check := widget.NewCheck(item.Label, func(checked bool) {
			prefs.fieldChanged(field, checked)
		})
		prefs.checks[field] = check
		modifiers.Add(check)
	}

	prefs.key = widget.NewSelect(keyOptions(), func(selected string) {
		if prefs.rendering {
			return
		}
		prefs.editor.SetKey(model.Key(selected))
	})

	prefs.intercept = widget.NewCheck("Use the system paste shortcut (Ctrl+V)", func(checked bool) {
		prefs.fieldChanged(model.FieldInterceptSystemPaste, checked)
	})

	prefs.combination = container.NewVBox(
		widget.NewLabel("Modifiers"),
		modifiers,
		container.NewHBox(widget.NewLabel("Key"), prefs.key),
	)

	prefs.errorLabel = widget.NewLabel("")
	prefs.errorLabel.Importance = widget.DangerImportance
	prefs.errorLabel.Wrapping = fyne.TextWrapWord
	prefs.errorLabel.Hide()

	prefs.restart = widget.NewButtonWithIcon("Restart now", theme.ViewRefreshIcon(), prefs.handleRestart)
	prefs.restart.Hide()

	prefs.saveButton = widget.NewButton("Save", prefs.handleSave)
	prefs.saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", prefs.handleCancel)
	buttons := container.NewHBox(prefs.restart, layout.NewSpacer(), cancelButton, prefs.saveButton)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Activation hotkey", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.intercept,
		prefs.combination,
		prefs.errorLabel,
	)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, container.NewPadded(form)))
	window.Resize(fyne.NewSize(460, 260))
	window.SetCloseIntercept(prefs.handleCancel)

	prefs.Render(editor.View())
	return prefs
}

// Show opens the panel on a fresh draft.
func (prefs *Window) Show() {
	prefs.editor.OpenEditor()
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Render mirrors a controller view into the widgets. Must run on the UI goroutine.
func (prefs *Window) Render(view configsync.View) {
	prefs.rendering = true
	defer func() { prefs.rendering = false }()

	draft := view.Draft
	for field, check := range prefs.checks {
		check.SetChecked(fieldValue(draft, field))
	}
	prefs.key.SetSelected(string(draft.Key))
	prefs.intercept.SetChecked(draft.InterceptSystemPaste)

	if showCombination(draft) {
		prefs.combination.Show()
	} else {
		prefs.combination.Hide()
	}

	if view.Error != "" {
		prefs.errorLabel.SetText(view.Error)
		prefs.errorLabel.Show()
	} else {
		prefs.errorLabel.Hide()
	}

	if view.RestartRequired {
		prefs.restart.Show()
	} else {
		prefs.restart.Hide()
	}

	if !view.Editing && prefs.window != nil {
		prefs.window.Hide()
	}
}

func (prefs *Window) fieldChanged(field model.Field, checked bool) {
	if prefs.rendering {
		return
	}
	prefs.editor.SetField(field, checked)
}

func (prefs *Window) handleSave() {
	prefs.saveButton.Disable()
	go func() {
		err := prefs.editor.Save(prefs.ctx)
		fyne.Do(func() {
			prefs.finishSave(err)
		})
	}()
}

// finishSave re-enables the panel; the editor's change callback already
// rendered the outcome.
func (prefs *Window) finishSave(err error) {
	prefs.saveButton.Enable()
	if err != nil {
		prefs.logger.Debug().Err(err).Msg("hotkey panel kept open after failed save")
	}
}

func (prefs *Window) handleCancel() {
	prefs.editor.CancelEdit()
	prefs.window.Hide()
}

func (prefs *Window) handleRestart() {
	prefs.restart.Disable()
	go func() {
		err := prefs.editor.Restart(prefs.ctx)
		fyne.Do(func() {
			prefs.restart.Enable()
			if err != nil {
				prefs.logger.Debug().Err(err).Msg("restart request failed")
			}
		})
	}()
}
