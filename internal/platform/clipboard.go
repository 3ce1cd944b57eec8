//go:build linux || darwin || windows

package platform

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

type systemClipboard struct {
	once    sync.Once
	initErr error
}

// NewClipboard returns the system clipboard. Initialization is deferred to
// the first read.
func NewClipboard() Clipboard {
	return &systemClipboard{}
}

// Text returns the clipboard text, or an empty string when the clipboard holds
// no text.
func (board *systemClipboard) Text() (string, error) {
	board.once.Do(func() {
		board.initErr = clipboard.Init()
	})
	if board.initErr != nil {
		return "", fmt.Errorf("init clipboard: %w", board.initErr)
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}
