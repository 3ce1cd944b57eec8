package preferences

import "paster/internal/core/model"

// checkField pairs a checkbox caption with the field it edits.
type checkField struct {
	Label string
	Field model.Field
}

var modifierFields = []checkField{
	{Label: "Alt", Field: model.FieldAlt},
	{Label: "Ctrl", Field: model.FieldCtrl},
	{Label: "Left Ctrl", Field: model.FieldLeftCtrl},
	{Label: "Right Ctrl", Field: model.FieldRightCtrl},
	{Label: "Shift", Field: model.FieldShift},
}

// fieldValue reads one boolean field of a config.
func fieldValue(config model.HotkeyConfig, field model.Field) bool {
	switch field {
	case model.FieldAlt:
		return config.Alt
	case model.FieldCtrl:
		return config.Ctrl
	case model.FieldLeftCtrl:
		return config.LeftCtrl
	case model.FieldRightCtrl:
		return config.RightCtrl
	case model.FieldShift:
		return config.Shift
	case model.FieldInterceptSystemPaste:
		return config.InterceptSystemPaste
	}
	return false
}

// showCombination reports whether the modifier and key inputs are shown.
// Intercepting the system paste shortcut fixes the combination.
func showCombination(draft model.HotkeyConfig) bool {
	return !draft.InterceptSystemPaste
}

func keyOptions() []string {
	keys := model.Keys()
	options := make([]string, len(keys))
	for index, key := range keys {
		options[index] = string(key)
	}
	return options
}
