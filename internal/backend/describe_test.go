package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paster/internal/core/model"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		config model.HotkeyConfig
		want   string
	}{
		{"default", model.DefaultHotkeyConfig(), "Alt+Ctrl+V"},
		{"left ctrl", model.HotkeyConfig{LeftCtrl: true, Key: "F2"}, "Left Ctrl+F2"},
		{"right ctrl with shift", model.HotkeyConfig{RightCtrl: true, Shift: true, Key: "7"}, "Right Ctrl+Shift+7"},
		{"ctrl wins over side variants", model.HotkeyConfig{Ctrl: true, LeftCtrl: true, Key: "A"}, "Ctrl+A"},
		{"key only", model.HotkeyConfig{Key: "F12"}, "F12"},
		{"all modifiers", model.HotkeyConfig{Alt: true, Ctrl: true, Shift: true, Key: "Z"}, "Alt+Ctrl+Shift+Z"},
		{"intercept", model.HotkeyConfig{Alt: true, Key: "Q", InterceptSystemPaste: true}, "Ctrl+V (system paste)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.config))
		})
	}
}
