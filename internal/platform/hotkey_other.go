//go:build linux || darwin

package platform

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"paster/internal/core/model"
)

var hotkeyKeys = map[model.Key]hotkey.Key{
	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD, "E": hotkey.KeyE,
	"F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH, "I": hotkey.KeyI, "J": hotkey.KeyJ,
	"K": hotkey.KeyK, "L": hotkey.KeyL, "M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO,
	"P": hotkey.KeyP, "Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX, "Y": hotkey.KeyY,
	"Z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3, "4": hotkey.Key4,
	"5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7, "8": hotkey.Key8, "9": hotkey.Key9,
	"F1": hotkey.KeyF1, "F2": hotkey.KeyF2, "F3": hotkey.KeyF3, "F4": hotkey.KeyF4,
	"F5": hotkey.KeyF5, "F6": hotkey.KeyF6, "F7": hotkey.KeyF7, "F8": hotkey.KeyF8,
	"F9": hotkey.KeyF9, "F10": hotkey.KeyF10, "F11": hotkey.KeyF11, "F12": hotkey.KeyF12,
}

type grabHotkey struct{}

// NewHotkey returns a hotkey backed by the window system's key grab. Left and
// right ctrl cannot be told apart here and both register as ctrl. A grabbed
// combo never reaches the focused application.
func NewHotkey() Hotkey {
	return grabHotkey{}
}

type grabRegistration struct {
	hotkey   *hotkey.Hotkey
	triggers chan struct{}
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

func (grabHotkey) Register(combo Combo) (Registration, error) {
	key, ok := hotkeyKeys[combo.Key]
	if !ok {
		return nil, fmt.Errorf("register hotkey %s: %w", combo, model.ErrUnknownKey)
	}

	var modifiers []hotkey.Modifier
	if combo.Alt {
		modifiers = append(modifiers, modifierAlt)
	}
	if combo.Ctrl || combo.LeftCtrl || combo.RightCtrl {
		modifiers = append(modifiers, modifierCtrl)
	}
	if combo.Shift {
		modifiers = append(modifiers, modifierShift)
	}

	grab := hotkey.New(modifiers, key)
	if err := grab.Register(); err != nil {
		return nil, fmt.Errorf("register hotkey %s: %w", combo, err)
	}

	registration := &grabRegistration{
		hotkey:   grab,
		triggers: make(chan struct{}, 4),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go registration.forward()
	return registration, nil
}

func (registration *grabRegistration) Triggers() <-chan struct{} {
	return registration.triggers
}

func (registration *grabRegistration) Close() error {
	var err error
	registration.once.Do(func() {
		close(registration.stop)
		<-registration.done
		if unregisterErr := registration.hotkey.Unregister(); unregisterErr != nil {
			err = fmt.Errorf("unregister hotkey: %w", unregisterErr)
		}
	})
	return err
}

func (registration *grabRegistration) forward() {
	defer close(registration.done)
	defer close(registration.triggers)

	keydown := registration.hotkey.Keydown()
	for {
		select {
		case <-registration.stop:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			select {
			case registration.triggers <- struct{}{}:
			default:
			}
		}
	}
}
