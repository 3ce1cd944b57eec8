//go:build linux

package platform

import "golang.design/x/hotkey"

// Alt is Mod1 on X11.
const (
	modifierAlt   = hotkey.Mod1
	modifierCtrl  = hotkey.ModCtrl
	modifierShift = hotkey.ModShift
)
