//go:build linux || darwin

package platform

import (
	"fmt"
	"sync"

	"github.com/micmonay/keybd_event"
)

type keyStroke struct {
	key   int
	shift bool
}

// US layout. The VK_SP keys are, in order: ` - = [ ] ; ' \ , . /
var plainKeys = map[rune]int{
	'a': keybd_event.VK_A, 'b': keybd_event.VK_B, 'c': keybd_event.VK_C, 'd': keybd_event.VK_D,
	'e': keybd_event.VK_E, 'f': keybd_event.VK_F, 'g': keybd_event.VK_G, 'h': keybd_event.VK_H,
	'i': keybd_event.VK_I, 'j': keybd_event.VK_J, 'k': keybd_event.VK_K, 'l': keybd_event.VK_L,
	'm': keybd_event.VK_M, 'n': keybd_event.VK_N, 'o': keybd_event.VK_O, 'p': keybd_event.VK_P,
	'q': keybd_event.VK_Q, 'r': keybd_event.VK_R, 's': keybd_event.VK_S, 't': keybd_event.VK_T,
	'u': keybd_event.VK_U, 'v': keybd_event.VK_V, 'w': keybd_event.VK_W, 'x': keybd_event.VK_X,
	'y': keybd_event.VK_Y, 'z': keybd_event.VK_Z,
	'0': keybd_event.VK_0, '1': keybd_event.VK_1, '2': keybd_event.VK_2, '3': keybd_event.VK_3,
	'4': keybd_event.VK_4, '5': keybd_event.VK_5, '6': keybd_event.VK_6, '7': keybd_event.VK_7,
	'8': keybd_event.VK_8, '9': keybd_event.VK_9,
	' ':  keybd_event.VK_SPACE,
	'\t': keybd_event.VK_TAB,
	'`':  keybd_event.VK_SP1,
	'-':  keybd_event.VK_SP2,
	'=':  keybd_event.VK_SP3,
	'[':  keybd_event.VK_SP4,
	']':  keybd_event.VK_SP5,
	';':  keybd_event.VK_SP6,
	'\'': keybd_event.VK_SP7,
	'\\': keybd_event.VK_SP8,
	',':  keybd_event.VK_SP9,
	'.':  keybd_event.VK_SP10,
	'/':  keybd_event.VK_SP11,
}

// shifted maps a rune typed with shift to the rune of the same key without it.
var shifted = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'~': '`', '_': '-', '+': '=', '{': '[', '}': ']',
	':': ';', '"': '\'', '|': '\\', '<': ',', '>': '.', '?': '/',
}

func strokeFor(r rune) (keyStroke, bool) {
	if key, ok := plainKeys[r]; ok {
		return keyStroke{key: key}, true
	}
	if r >= 'A' && r <= 'Z' {
		return keyStroke{key: plainKeys[r-'A'+'a'], shift: true}, true
	}
	if base, ok := shifted[r]; ok {
		return keyStroke{key: plainKeys[base], shift: true}, true
	}
	return keyStroke{}, false
}

// keyboardTyper types through a virtual keyboard with a US layout. Runes
// outside printable ASCII are not supported.
type keyboardTyper struct {
	mu      sync.Mutex
	bonding *keybd_event.KeyBonding
}

// NewTyper creates the virtual keyboard. On Linux the uinput device needs a
// moment before the first key press is delivered.
func NewTyper() (Typer, error) {
	bonding, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("create virtual keyboard: %w", err)
	}
	return &keyboardTyper{bonding: &bonding}, nil
}

func (typer *keyboardTyper) CanType(r rune) bool {
	_, ok := strokeFor(r)
	return ok
}

func (typer *keyboardTyper) TypeRune(r rune) error {
	stroke, ok := strokeFor(r)
	if !ok {
		return fmt.Errorf("type %q: %w", r, ErrTypingUnsupported)
	}
	return typer.press(stroke.key, stroke.shift)
}

func (typer *keyboardTyper) Enter() error {
	return typer.press(keybd_event.VK_ENTER, false)
}

func (typer *keyboardTyper) press(key int, shift bool) error {
	typer.mu.Lock()
	defer typer.mu.Unlock()

	typer.bonding.Clear()
	typer.bonding.SetKeys(key)
	typer.bonding.HasSHIFT(shift)
	if err := typer.bonding.Launching(); err != nil {
		return fmt.Errorf("send key press: %w", err)
	}
	return nil
}
