package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paster/internal/core/model"
)

func TestFieldValue(t *testing.T) {
	config := model.HotkeyConfig{Alt: true, RightCtrl: true, InterceptSystemPaste: true, Key: "A"}

	assert.True(t, fieldValue(config, model.FieldAlt))
	assert.False(t, fieldValue(config, model.FieldCtrl))
	assert.False(t, fieldValue(config, model.FieldLeftCtrl))
	assert.True(t, fieldValue(config, model.FieldRightCtrl))
	assert.False(t, fieldValue(config, model.FieldShift))
	assert.True(t, fieldValue(config, model.FieldInterceptSystemPaste))
}

func TestShowCombination(t *testing.T) {
	assert.True(t, showCombination(model.DefaultHotkeyConfig()))
	assert.False(t, showCombination(model.HotkeyConfig{InterceptSystemPaste: true, Key: "V"}))
}

func TestKeyOptions(t *testing.T) {
	options := keyOptions()
	assert.Len(t, options, 38)
	assert.Equal(t, "A", options[0])
	assert.Contains(t, options, "0")
	assert.Equal(t, "F12", options[len(options)-1])
}
