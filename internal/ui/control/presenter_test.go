package control

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"paster/internal/core/trigger"
)

func TestTriggerButton(t *testing.T) {
	assert.Equal(t, ButtonView{Label: "Paste"}, TriggerButton(trigger.StateIdle, 0))
	assert.Equal(t, ButtonView{Label: "3", Disabled: true}, TriggerButton(trigger.StateArmed, 3))
	assert.Equal(t, ButtonView{Label: "1", Disabled: true}, TriggerButton(trigger.StateArmed, 1))
	assert.Equal(t, ButtonView{Label: "Pasting...", Disabled: true, Busy: true}, TriggerButton(trigger.StateExecuting, 0))
}

func TestPauseLabel(t *testing.T) {
	assert.Equal(t, "Pause", PauseLabel(false))
	assert.Equal(t, "Resume", PauseLabel(true))
}

func TestStatusText(t *testing.T) {
	text, ok := StatusText(trigger.Event{Type: trigger.EventRejected, Message: "feature paused"})
	assert.True(t, ok)
	assert.Equal(t, "feature paused", text)

	text, ok = StatusText(trigger.Event{Type: trigger.EventFailed, Message: "clipboard has no text", Err: errors.New("x")})
	assert.True(t, ok)
	assert.Equal(t, "Paste failed: clipboard has no text", text)

	text, ok = StatusText(trigger.Event{Type: trigger.EventExecuted})
	assert.True(t, ok)
	assert.Equal(t, "Pasted", text)

	_, ok = StatusText(trigger.Event{Type: trigger.EventTick, State: trigger.StateArmed, Remaining: 2})
	assert.False(t, ok)

	_, ok = StatusText(trigger.Event{Type: trigger.EventStateChange, State: trigger.StateIdle})
	assert.False(t, ok)
}
