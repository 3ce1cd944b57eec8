package preferences

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paster/internal/core/configsync"
	"paster/internal/core/model"
	"paster/internal/core/port"
	"paster/internal/core/port/mocks"
)

func newPanel(t *testing.T, service *mocks.MockService) (*Window, *configsync.Controller) {
	t.Helper()
	app := test.NewTempApp(t)
	controller := configsync.New(service, zerolog.Nop())
	prefs := New(context.Background(), app, controller, zerolog.Nop())
	controller.OnChange(prefs.Render)
	return prefs, controller
}

func TestWindow_CtrlGroupIsExclusive(t *testing.T) {
	prefs, controller := newPanel(t, mocks.NewMockService(t))
	prefs.Show()

	test.Tap(prefs.checks[model.FieldLeftCtrl])
	assert.True(t, prefs.checks[model.FieldLeftCtrl].Checked)
	assert.False(t, prefs.checks[model.FieldCtrl].Checked)

	test.Tap(prefs.checks[model.FieldRightCtrl])
	assert.True(t, prefs.checks[model.FieldRightCtrl].Checked)
	assert.False(t, prefs.checks[model.FieldLeftCtrl].Checked)
	assert.False(t, prefs.checks[model.FieldCtrl].Checked)

	draft := controller.View().Draft
	assert.Equal(t, 1, draft.CtrlGroupCount())
	assert.True(t, draft.RightCtrl)
}

func TestWindow_InterceptHidesCombination(t *testing.T) {
	prefs, _ := newPanel(t, mocks.NewMockService(t))
	prefs.Show()
	require.True(t, prefs.combination.Visible())

	test.Tap(prefs.intercept)
	assert.False(t, prefs.combination.Visible())

	test.Tap(prefs.intercept)
	assert.True(t, prefs.combination.Visible())
}

func TestWindow_KeySelectionUpdatesDraft(t *testing.T) {
	prefs, controller := newPanel(t, mocks.NewMockService(t))
	prefs.Show()

	prefs.key.SetSelected("F7")
	assert.Equal(t, model.Key("F7"), controller.View().Draft.Key)
}

func TestWindow_SaveFailureShowsError(t *testing.T) {
	service := mocks.NewMockService(t)
	service.EXPECT().
		SetConfig(mock.Anything, mock.Anything).
		Return(port.ConfigResult{}, errors.New("hotkey already registered")).
		Once()

	prefs, controller := newPanel(t, service)
	prefs.Show()

	err := controller.Save(context.Background())
	prefs.finishSave(err)

	assert.True(t, prefs.errorLabel.Visible())
	assert.Equal(t, "hotkey already registered", prefs.errorLabel.Text)
	assert.True(t, controller.View().Editing)
	assert.False(t, prefs.saveButton.Disabled())
}

func TestWindow_SaveRestartRequiredShowsRestart(t *testing.T) {
	service := mocks.NewMockService(t)
	service.EXPECT().
		SetConfig(mock.Anything, mock.Anything).
		Return(port.ConfigResult{Description: "Ctrl+V (system paste)", RestartRequired: true}, nil).
		Once()

	prefs, controller := newPanel(t, service)
	prefs.Show()
	test.Tap(prefs.intercept)

	require.NoError(t, controller.Save(context.Background()))
	assert.True(t, prefs.restart.Visible())
	assert.False(t, prefs.errorLabel.Visible())
}

func TestWindow_CancelRestoresCommitted(t *testing.T) {
	prefs, controller := newPanel(t, mocks.NewMockService(t))
	prefs.Show()

	test.Tap(prefs.checks[model.FieldShift])
	require.True(t, controller.View().Draft.Shift)

	prefs.handleCancel()
	assert.False(t, prefs.checks[model.FieldShift].Checked)
	assert.False(t, controller.View().Editing)
}
