//go:build windows

package platform

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"paster/internal/core/model"
)

var (
	setWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	callNextHookEx      = user32.NewProc("CallNextHookEx")
	unhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	getMessage          = user32.NewProc("GetMessageW")
	postThreadMessage   = user32.NewProc("PostThreadMessageW")
	getAsyncKeyState    = user32.NewProc("GetAsyncKeyState")
)

const (
	whKeyboardLL  = 13
	wmKeydown     = 0x0100
	wmKeyup       = 0x0101
	wmSyskeydown  = 0x0104
	wmSyskeyup    = 0x0105
	wmQuit        = 0x0012
	llkhfInjected = 0x10
)

const (
	vkShift    = 0x10
	vkMenu     = 0x12
	vkLControl = 0xA2
	vkRControl = 0xA3
)

type kbdllhookstruct struct {
	vkCode      uint32
	scanCode    uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// The low level hook callback is created once; windows.NewCallback slots are
// never freed.
var (
	hookCallbackOnce sync.Once
	hookCallback     uintptr
	activeMu         sync.Mutex
	active           *hookRegistration
)

type windowsHotkey struct{}

// NewHotkey returns a keyboard hook based hotkey. It distinguishes left and
// right ctrl and can swallow the system paste shortcut.
func NewHotkey() Hotkey {
	return windowsHotkey{}
}

type hookRegistration struct {
	combo    Combo
	vk       uint32
	triggers chan struct{}
	threadID uint32
	hook     uintptr
	done     chan struct{}
	pressed  bool
	closeMu  sync.Once
}

func (windowsHotkey) Register(combo Combo) (Registration, error) {
	vk, err := virtualKey(combo.Key)
	if err != nil {
		return nil, err
	}

	activeMu.Lock()
	busy := active != nil
	activeMu.Unlock()
	if busy {
		return nil, fmt.Errorf("register hotkey %s: another hotkey is active", combo)
	}

	registration := &hookRegistration{
		combo:    combo,
		vk:       vk,
		triggers: make(chan struct{}, 4),
		done:     make(chan struct{}),
	}

	errCh := make(chan error, 1)
	go registration.run(errCh)
	if err := <-errCh; err != nil {
		return nil, err
	}
	return registration, nil
}

func (registration *hookRegistration) Triggers() <-chan struct{} {
	return registration.triggers
}

func (registration *hookRegistration) Close() error {
	registration.closeMu.Do(func() {
		postThreadMessage.Call(uintptr(registration.threadID), wmQuit, 0, 0)
		<-registration.done
	})
	return nil
}

func (registration *hookRegistration) run(errCh chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(registration.done)

	hookCallbackOnce.Do(func() {
		hookCallback = windows.NewCallback(hookProc)
	})

	registration.threadID = windows.GetCurrentThreadId()
	activeMu.Lock()
	active = registration
	activeMu.Unlock()

	hook, _, err := setWindowsHookEx.Call(whKeyboardLL, hookCallback, 0, 0)
	if hook == 0 {
		activeMu.Lock()
		active = nil
		activeMu.Unlock()
		errCh <- fmt.Errorf("SetWindowsHookEx failed: %w", err)
		return
	}
	registration.hook = hook
	errCh <- nil

	var m msg
	for {
		r, _, _ := getMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(r) <= 0 {
			break
		}
	}

	unhookWindowsHookEx.Call(hook)
	activeMu.Lock()
	active = nil
	activeMu.Unlock()
	close(registration.triggers)
}

func hookProc(nCode int32, wParam uintptr, lParam uintptr) uintptr {
	if nCode >= 0 {
		activeMu.Lock()
		registration := active
		activeMu.Unlock()

		if registration != nil {
			info := (*kbdllhookstruct)(unsafe.Pointer(lParam))
			if registration.handle(wParam, info) {
				return 1
			}
		}
	}
	r, _, _ := callNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return r
}

// handle runs on the hook thread and reports whether the event is swallowed.
func (registration *hookRegistration) handle(wParam uintptr, info *kbdllhookstruct) bool {
	if info.flags&llkhfInjected != 0 || info.vkCode != registration.vk {
		return false
	}

	switch wParam {
	case wmKeydown, wmSyskeydown:
		if !registration.modifiersMatch() {
			return false
		}
		if !registration.pressed {
			registration.pressed = true
			select {
			case registration.triggers <- struct{}{}:
			default:
			}
		}
		return registration.combo.Swallow
	case wmKeyup, wmSyskeyup:
		if !registration.pressed {
			return false
		}
		registration.pressed = false
		return registration.combo.Swallow
	}
	return false
}

func (registration *hookRegistration) modifiersMatch() bool {
	combo := registration.combo
	left := isKeyPressed(vkLControl)
	right := isKeyPressed(vkRControl)

	var ctrlOK bool
	switch {
	case combo.Ctrl:
		ctrlOK = left || right
	case combo.LeftCtrl:
		ctrlOK = left && !right
	case combo.RightCtrl:
		ctrlOK = right && !left
	default:
		ctrlOK = !left && !right
	}

	return ctrlOK &&
		isKeyPressed(vkMenu) == combo.Alt &&
		isKeyPressed(vkShift) == combo.Shift
}

func isKeyPressed(vk int) bool {
	r, _, _ := getAsyncKeyState.Call(uintptr(vk))
	return r&0x8000 != 0
}

func virtualKey(key model.Key) (uint32, error) {
	if !key.Valid() {
		return 0, fmt.Errorf("virtual key %q: %w", key, model.ErrUnknownKey)
	}
	name := string(key)
	switch {
	case len(name) == 1:
		// A-Z and 0-9 share their ASCII codes.
		return uint32(name[0]), nil
	default:
		var number int
		if _, err := fmt.Sscanf(name, "F%d", &number); err != nil {
			return 0, fmt.Errorf("virtual key %q: %w", key, model.ErrUnknownKey)
		}
		return 0x70 + uint32(number-1), nil
	}
}
