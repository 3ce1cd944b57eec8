package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_MenuActions(t *testing.T) {
	var shown, toggled, quit int
	manager := New(nil, Callbacks{
		OnShow:        func() { shown++ },
		OnTogglePause: func() { toggled++ },
		OnQuit:        func() { quit++ },
	})

	menu := manager.Menu()
	require.Len(t, menu.Items, 5)
	assert.True(t, menu.Items[0].Disabled)

	menu.Items[1].Action()
	menu.Items[2].Action()
	menu.Items[4].Action()
	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, toggled)
	assert.Equal(t, 1, quit)
}

func TestManager_LabelsFollowState(t *testing.T) {
	manager := New(nil, Callbacks{})

	assert.Equal(t, "Pause", manager.Menu().Items[2].Label)
	manager.SetPaused(true)
	assert.Equal(t, "Resume", manager.Menu().Items[2].Label)

	manager.SetHotkey("Alt+Ctrl+V")
	assert.Equal(t, "Hotkey: Alt+Ctrl+V", manager.Menu().Items[0].Label)
}
