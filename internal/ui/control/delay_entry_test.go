package control

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestDelayEntry_ValidTextCommitsOnFocusLoss(t *testing.T) {
	test.NewTempApp(t)

	var commits []string
	entry := NewDelayEntry("10", func(value string) { commits = append(commits, value) })
	window := test.NewWindow(entry)
	defer window.Close()

	window.Canvas().Focus(entry)
	entry.SetText("250")
	window.Canvas().Unfocus()

	assert.Equal(t, "250", entry.Committed())
	assert.Equal(t, "250", entry.Text)
	assert.Equal(t, []string{"250"}, commits)
}

func TestDelayEntry_InvalidTextRevertsOnFocusLoss(t *testing.T) {
	test.NewTempApp(t)

	for _, text := range []string{"", "0", "012", "1234567", "12a", "-5"} {
		t.Run(text, func(t *testing.T) {
			var commits int
			entry := NewDelayEntry("10", func(string) { commits++ })

			entry.SetText(text)
			assert.Equal(t, "10", entry.Committed())
			entry.FocusLost()

			assert.Equal(t, "10", entry.Text)
			assert.Equal(t, "10", entry.Committed())
			assert.Zero(t, commits)
		})
	}
}

func TestDelayEntry_ValidatorMatchesCommitRule(t *testing.T) {
	test.NewTempApp(t)
	entry := NewDelayEntry("5", nil)

	assert.NoError(t, entry.Validator("999999"))
	assert.Error(t, entry.Validator("0"))
	assert.Error(t, entry.Validator("1000000"))
}

func TestDelayEntry_SetCommittedIgnoresInvalid(t *testing.T) {
	test.NewTempApp(t)
	entry := NewDelayEntry("5", nil)

	entry.SetCommitted("42")
	assert.Equal(t, "42", entry.Text)
	entry.SetCommitted("0")
	assert.Equal(t, "42", entry.Committed())
}
