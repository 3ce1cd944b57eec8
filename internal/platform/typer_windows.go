//go:build windows

package platform

import (
	"fmt"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32    = windows.NewLazySystemDLL("user32.dll")
	sendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard    = 1
	keyeventfKeyup   = 0x0002
	keyeventfUnicode = 0x0004
	vkReturn         = 0x0D
)

type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type input struct {
	inputType uint32
	ki        keyboardInput
	padding   [8]byte
}

// unicodeTyper sends each UTF-16 unit as a unicode key event, so any
// character can be typed regardless of keyboard layout.
type unicodeTyper struct{}

// NewTyper returns the SendInput based typer.
func NewTyper() (Typer, error) {
	return unicodeTyper{}, nil
}

func (unicodeTyper) TypeRune(r rune) error {
	units := utf16.Encode([]rune{r})
	inputs := make([]input, 0, len(units)*2)
	for _, unit := range units {
		inputs = append(inputs,
			input{inputType: inputKeyboard, ki: keyboardInput{wScan: unit, dwFlags: keyeventfUnicode}},
			input{inputType: inputKeyboard, ki: keyboardInput{wScan: unit, dwFlags: keyeventfUnicode | keyeventfKeyup}},
		)
	}
	return send(inputs)
}

func (unicodeTyper) Enter() error {
	return send([]input{
		{inputType: inputKeyboard, ki: keyboardInput{wVk: vkReturn}},
		{inputType: inputKeyboard, ki: keyboardInput{wVk: vkReturn, dwFlags: keyeventfKeyup}},
	})
}

func send(inputs []input) error {
	ret, _, err := sendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if int(ret) != len(inputs) {
		return fmt.Errorf("SendInput failed: %w", err)
	}
	return nil
}
