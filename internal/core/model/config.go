package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey indicates a key symbol outside the supported set.
var ErrUnknownKey = errors.New("unknown key")

// Key is one of the symbols a hotkey can end with.
type Key string

var supportedKeys = buildKeys()

func buildKeys() []Key {
	keys := make([]Key, 0, 38)
	for letter := 'A'; letter <= 'Z'; letter++ {
		keys = append(keys, Key(string(letter)))
	}
	for digit := '0'; digit <= '9'; digit++ {
		keys = append(keys, Key(string(digit)))
	}
	for index := 1; index <= 12; index++ {
		keys = append(keys, Key(fmt.Sprintf("F%d", index)))
	}
	return keys
}

// Keys returns the supported key symbols in display order.
func Keys() []Key {
	return append([]Key(nil), supportedKeys...)
}

// ParseKey accepts a key symbol in any letter case.
func ParseKey(value string) (Key, error) {
	candidate := Key(strings.ToUpper(strings.TrimSpace(value)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, value)
}

// Valid reports whether the key belongs to the supported set.
func (key Key) Valid() bool {
	for _, supported := range supportedKeys {
		if key == supported {
			return true
		}
	}
	return false
}

// HotkeyConfig is the activation combination for an external trigger.
type HotkeyConfig struct {
	Alt                  bool `yaml:"alt" json:"alt"`
	Ctrl                 bool `yaml:"ctrl" json:"ctrl"`
	LeftCtrl             bool `yaml:"left_ctrl" json:"left_ctrl"`
	RightCtrl            bool `yaml:"right_ctrl" json:"right_ctrl"`
	Shift                bool `yaml:"shift" json:"shift"`
	Key                  Key  `yaml:"key" json:"key"`
	InterceptSystemPaste bool `yaml:"intercept_ctrl_v" json:"intercept_ctrl_v"`
}

// DefaultHotkeyConfig returns Alt+Ctrl+V.
func DefaultHotkeyConfig() HotkeyConfig {
	return HotkeyConfig{
		Alt:  true,
		Ctrl: true,
		Key:  "V",
	}
}

// Field names a boolean member of HotkeyConfig.
type Field string

const (
	FieldAlt                  Field = "alt"
	FieldCtrl                 Field = "ctrl"
	FieldLeftCtrl             Field = "left_ctrl"
	FieldRightCtrl            Field = "right_ctrl"
	FieldShift                Field = "shift"
	FieldInterceptSystemPaste Field = "intercept_ctrl_v"
)

// ApplyField sets one boolean field. Turning on any member of the ctrl group
// turns the other two off. Unknown fields leave the config unchanged.
func ApplyField(config HotkeyConfig, field Field, value bool) HotkeyConfig {
	switch field {
	case FieldAlt:
		config.Alt = value
	case FieldShift:
		config.Shift = value
	case FieldInterceptSystemPaste:
		config.InterceptSystemPaste = value
	case FieldCtrl:
		config.Ctrl = value
		if value {
			config.LeftCtrl, config.RightCtrl = false, false
		}
	case FieldLeftCtrl:
		config.LeftCtrl = value
		if value {
			config.Ctrl, config.RightCtrl = false, false
		}
	case FieldRightCtrl:
		config.RightCtrl = value
		if value {
			config.Ctrl, config.LeftCtrl = false, false
		}
	}
	return config
}

// ApplyKey replaces the key when it is supported.
func ApplyKey(config HotkeyConfig, key Key) HotkeyConfig {
	if key.Valid() {
		config.Key = key
	}
	return config
}

// Normalize resolves a config that violates the ctrl group rule, keeping the
// first set member in the order ctrl, left ctrl, right ctrl. An unsupported key
// falls back to the default key.
func Normalize(config HotkeyConfig) HotkeyConfig {
	switch {
	case config.Ctrl:
		config.LeftCtrl, config.RightCtrl = false, false
	case config.LeftCtrl:
		config.RightCtrl = false
	}
	if !config.Key.Valid() {
		config.Key = DefaultHotkeyConfig().Key
	}
	return config
}

// CtrlGroupCount returns how many members of the ctrl group are set.
func (config HotkeyConfig) CtrlGroupCount() int {
	count := 0
	for _, set := range []bool{config.Ctrl, config.LeftCtrl, config.RightCtrl} {
		if set {
			count++
		}
	}
	return count
}

// Settings is the persisted application state.
type Settings struct {
	Hotkey HotkeyConfig
	Delay  DelayParameters
}

// DefaultSettings returns settings for a first run.
func DefaultSettings() Settings {
	return Settings{
		Hotkey: DefaultHotkeyConfig(),
		Delay:  DefaultDelayParameters(),
	}
}
