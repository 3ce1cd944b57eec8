package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys_ClosedSet(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, 38)
	assert.Equal(t, Key("A"), keys[0])
	assert.Equal(t, Key("Z"), keys[25])
	assert.Equal(t, Key("0"), keys[26])
	assert.Equal(t, Key("F12"), keys[37])

	keys[0] = "mutated"
	assert.Equal(t, Key("A"), Keys()[0])
}

func TestParseKey(t *testing.T) {
	key, err := ParseKey("f5")
	require.NoError(t, err)
	assert.Equal(t, Key("F5"), key)

	_, err = ParseKey("F13")
	assert.True(t, errors.Is(err, ErrUnknownKey))

	_, err = ParseKey("Space")
	assert.True(t, errors.Is(err, ErrUnknownKey))
}

func TestApplyField_CtrlGroupIsExclusive(t *testing.T) {
	fields := []Field{FieldAlt, FieldCtrl, FieldLeftCtrl, FieldRightCtrl, FieldShift, FieldInterceptSystemPaste}
	start := []HotkeyConfig{
		DefaultHotkeyConfig(),
		{LeftCtrl: true, Key: "A"},
		{RightCtrl: true, Shift: true, Key: "F1"},
		{},
	}

	for _, config := range start {
		for _, field := range fields {
			for _, value := range []bool{true, false} {
				next := ApplyField(config, field, value)
				assert.LessOrEqual(t, next.CtrlGroupCount(), 1, "field %s=%v on %+v", field, value, config)
			}
		}
	}
}

func TestApplyField_SettingOneCtrlClearsOthers(t *testing.T) {
	config := HotkeyConfig{Ctrl: true, Key: "V"}

	config = ApplyField(config, FieldLeftCtrl, true)
	assert.False(t, config.Ctrl)
	assert.True(t, config.LeftCtrl)
	assert.False(t, config.RightCtrl)

	config = ApplyField(config, FieldRightCtrl, true)
	assert.False(t, config.Ctrl)
	assert.False(t, config.LeftCtrl)
	assert.True(t, config.RightCtrl)

	config = ApplyField(config, FieldRightCtrl, false)
	assert.Equal(t, 0, config.CtrlGroupCount())
}

func TestApplyField_Idempotent(t *testing.T) {
	config := DefaultHotkeyConfig()
	for _, field := range []Field{FieldAlt, FieldCtrl, FieldLeftCtrl, FieldRightCtrl, FieldShift, FieldInterceptSystemPaste} {
		for _, value := range []bool{true, false} {
			once := ApplyField(config, field, value)
			twice := ApplyField(once, field, value)
			assert.Equal(t, once, twice)
		}
	}
}

func TestApplyField_Passthrough(t *testing.T) {
	config := DefaultHotkeyConfig()

	config = ApplyField(config, FieldShift, true)
	config = ApplyField(config, FieldInterceptSystemPaste, true)
	config = ApplyField(config, FieldAlt, false)

	assert.True(t, config.Shift)
	assert.True(t, config.InterceptSystemPaste)
	assert.False(t, config.Alt)
	assert.True(t, config.Ctrl)
	assert.Equal(t, Key("V"), config.Key)
}

func TestApplyKey(t *testing.T) {
	config := ApplyKey(DefaultHotkeyConfig(), "F9")
	assert.Equal(t, Key("F9"), config.Key)

	config = ApplyKey(config, "Esc")
	assert.Equal(t, Key("F9"), config.Key)
}

func TestNormalize(t *testing.T) {
	normalized := Normalize(HotkeyConfig{Ctrl: true, LeftCtrl: true, Key: "V"})
	assert.True(t, normalized.Ctrl)
	assert.False(t, normalized.LeftCtrl)

	normalized = Normalize(HotkeyConfig{LeftCtrl: true, RightCtrl: true, Key: "V"})
	assert.True(t, normalized.LeftCtrl)
	assert.False(t, normalized.RightCtrl)

	normalized = Normalize(HotkeyConfig{Alt: true, Key: "??"})
	assert.Equal(t, Key("V"), normalized.Key)
}
