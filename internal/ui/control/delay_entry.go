package control

import (
	"sync"

	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/widget"

	"paster/internal/core/model"
)

// DelayEntry is a numeric field that keeps the last valid value. Text that
// does not validate when focus leaves is replaced by the committed value.
type DelayEntry struct {
	widget.Entry

	mu        sync.Mutex
	committed string
	onCommit  func(string)
}

// NewDelayEntry creates a field showing initial, which must be valid.
func NewDelayEntry(initial string, onCommit func(string)) *DelayEntry {
	entry := &DelayEntry{committed: initial, onCommit: onCommit}
	entry.ExtendBaseWidget(entry)
	entry.Validator = validation.NewRegexp(model.DelayPattern, "1 to 999999, no leading zero")
	entry.SetText(initial)
	return entry
}

// FocusLost commits or reverts the text before handing focus loss to the entry.
func (entry *DelayEntry) FocusLost() {
	entry.commit()
	entry.Entry.FocusLost()
}

// Committed returns the last valid value. Safe from any goroutine.
func (entry *DelayEntry) Committed() string {
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.committed
}

// SetCommitted replaces both the committed and the displayed value.
func (entry *DelayEntry) SetCommitted(value string) {
	if !model.ValidDelay(value) {
		return
	}
	entry.mu.Lock()
	entry.committed = value
	entry.mu.Unlock()
	entry.SetText(value)
}

func (entry *DelayEntry) commit() {
	entry.mu.Lock()
	previous := entry.committed
	entry.committed = model.CommitDelay(entry.Text, previous)
	committed := entry.committed
	entry.mu.Unlock()

	if entry.Text != committed {
		entry.SetText(committed)
	}
	if committed != previous && entry.onCommit != nil {
		entry.onCommit(committed)
	}
}
