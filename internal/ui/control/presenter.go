// Package control contains the main window: delay fields, the trigger button,
// pause control and the hotkey summary.
package control

import (
	"fmt"
	"strconv"

	"paster/internal/core/trigger"
)

const (
	triggerLabel = "Paste"
	busyLabel    = "Pasting..."
)

// ButtonView is how the trigger button renders for a scheduler state.
type ButtonView struct {
	Label    string
	Disabled bool
	Busy     bool
}

// TriggerButton maps a scheduler state to the button. The button stays
// disabled from arming until the scheduler is idle again.
func TriggerButton(state trigger.State, remaining int) ButtonView {
	switch state {
	case trigger.StateArmed:
		return ButtonView{Label: strconv.Itoa(remaining), Disabled: true}
	case trigger.StateExecuting:
		return ButtonView{Label: busyLabel, Disabled: true, Busy: true}
	default:
		return ButtonView{Label: triggerLabel}
	}
}

// PauseLabel is the pause toggle caption.
func PauseLabel(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}

// StatusText returns the status line for an event and whether it changes.
func StatusText(event trigger.Event) (string, bool) {
	switch event.Type {
	case trigger.EventRejected:
		return event.Message, true
	case trigger.EventFailed:
		return fmt.Sprintf("Paste failed: %s", event.Message), true
	case trigger.EventExecuted:
		return "Pasted", true
	case trigger.EventStateChange:
		switch event.State {
		case trigger.StateArmed:
			return "Focus the target window", true
		case trigger.StateExecuting:
			return "Typing clipboard", true
		}
	}
	return "", false
}
