package backend

import (
	"strings"

	"paster/internal/core/model"
)

// SystemPasteDescription names the intercepted system paste shortcut.
const SystemPasteDescription = "Ctrl+V (system paste)"

// Describe renders a hotkey configuration as Alt, the ctrl variant, Shift and
// the key joined by "+".
func Describe(config model.HotkeyConfig) string {
	if config.InterceptSystemPaste {
		return SystemPasteDescription
	}

	var parts []string
	if config.Alt {
		parts = append(parts, "Alt")
	}
	switch {
	case config.Ctrl:
		parts = append(parts, "Ctrl")
	case config.LeftCtrl:
		parts = append(parts, "Left Ctrl")
	case config.RightCtrl:
		parts = append(parts, "Right Ctrl")
	}
	if config.Shift {
		parts = append(parts, "Shift")
	}
	parts = append(parts, string(config.Key))
	return strings.Join(parts, "+")
}
