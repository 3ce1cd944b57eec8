//go:build darwin

package platform

import "golang.design/x/hotkey"

const (
	modifierAlt   = hotkey.ModOption
	modifierCtrl  = hotkey.ModCtrl
	modifierShift = hotkey.ModShift
)
