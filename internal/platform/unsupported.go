//go:build !windows && !linux && !darwin

package platform

import (
	"errors"
	"path/filepath"
)

var errAutostartUnsupported = errors.New("autostart is not supported on this platform")

type unsupportedHotkey struct{}

// NewHotkey returns a hotkey that always fails to register.
func NewHotkey() Hotkey {
	return unsupportedHotkey{}
}

func (unsupportedHotkey) Register(Combo) (Registration, error) {
	return nil, ErrHotkeyUnsupported
}

// NewTyper reports that typing is unavailable.
func NewTyper() (Typer, error) {
	return nil, ErrTypingUnsupported
}

type unsupportedClipboard struct{}

// NewClipboard returns a clipboard that never holds text.
func NewClipboard() Clipboard {
	return unsupportedClipboard{}
}

func (unsupportedClipboard) Text() (string, error) {
	return "", nil
}

func (loginAutostart) IsEnabled(string) (bool, error) {
	return false, nil
}

func (loginAutostart) Enable(string, string) error {
	return errAutostartUnsupported
}

func (loginAutostart) Disable(string) error {
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
