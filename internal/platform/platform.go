package platform

import (
	"errors"
	"strings"

	"paster/internal/core/model"
)

var (
	// ErrTypingUnsupported is returned when a character has no keystroke on this platform.
	ErrTypingUnsupported = errors.New("character cannot be typed on this platform")
	// ErrHotkeyUnsupported is returned when global hotkeys are not available.
	ErrHotkeyUnsupported = errors.New("global hotkeys are not supported on this platform")
)

// Combo is a global hotkey in platform terms.
type Combo struct {
	Alt       bool
	Ctrl      bool
	LeftCtrl  bool
	RightCtrl bool
	Shift     bool
	Key       model.Key
	// Swallow keeps the key press from reaching the focused application.
	Swallow bool
}

// ComboFor converts a hotkey configuration. Intercept mode listens on the
// system paste shortcut and swallows it.
func ComboFor(config model.HotkeyConfig) Combo {
	if config.InterceptSystemPaste {
		return Combo{Ctrl: true, Key: "V", Swallow: true}
	}
	config = model.Normalize(config)
	return Combo{
		Alt:       config.Alt,
		Ctrl:      config.Ctrl,
		LeftCtrl:  config.LeftCtrl,
		RightCtrl: config.RightCtrl,
		Shift:     config.Shift,
		Key:       config.Key,
		Swallow:   true,
	}
}

// String renders the combo for logs.
func (combo Combo) String() string {
	var parts []string
	if combo.Alt {
		parts = append(parts, "alt")
	}
	switch {
	case combo.Ctrl:
		parts = append(parts, "ctrl")
	case combo.LeftCtrl:
		parts = append(parts, "lctrl")
	case combo.RightCtrl:
		parts = append(parts, "rctrl")
	}
	if combo.Shift {
		parts = append(parts, "shift")
	}
	parts = append(parts, strings.ToLower(string(combo.Key)))
	return strings.Join(parts, "+")
}

// Registration is an active global hotkey.
type Registration interface {
	Triggers() <-chan struct{}
	// Close unregisters the hotkey and closes the trigger channel.
	Close() error
}

// Hotkey registers global hotkeys.
type Hotkey interface {
	Register(combo Combo) (Registration, error)
}

// Clipboard reads the system clipboard.
type Clipboard interface {
	Text() (string, error)
}

// Typer synthesizes keystrokes into the focused application.
type Typer interface {
	TypeRune(r rune) error
	Enter() error
}

// RuneChecker is implemented by typers that can only produce a subset of
// runes, so callers can reject text before the first key is sent.
type RuneChecker interface {
	CanType(r rune) bool
}
