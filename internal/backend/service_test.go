package backend

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paster/internal/core/model"
	"paster/internal/platform"
	"paster/internal/storage"
)

type memoryStore struct {
	mu       sync.Mutex
	settings model.Settings
	saves    int
	saveErr  error
	loadErr  error
}

func (store *memoryStore) Load() (model.Settings, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.loadErr != nil {
		return model.DefaultSettings(), store.loadErr
	}
	return store.settings, nil
}

func (store *memoryStore) Save(settings model.Settings) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.saveErr != nil {
		return store.saveErr
	}
	store.saves++
	store.settings = settings
	return nil
}

type staticClipboard struct {
	text string
	err  error
}

func (board staticClipboard) Text() (string, error) {
	return board.text, board.err
}

type recordingTyper struct {
	mu      sync.Mutex
	typed   []string
	failAt  int
	failErr error
}

func (typer *recordingTyper) TypeRune(r rune) error {
	return typer.add(string(r))
}

func (typer *recordingTyper) Enter() error {
	return typer.add("<enter>")
}

func (typer *recordingTyper) add(value string) error {
	typer.mu.Lock()
	defer typer.mu.Unlock()
	if typer.failErr != nil && len(typer.typed) == typer.failAt {
		return typer.failErr
	}
	typer.typed = append(typer.typed, value)
	return nil
}

func (typer *recordingTyper) Typed() []string {
	typer.mu.Lock()
	defer typer.mu.Unlock()
	return append([]string(nil), typer.typed...)
}

type fakeRegistration struct {
	mu       sync.Mutex
	combo    platform.Combo
	triggers chan struct{}
	closed   bool
}

func (registration *fakeRegistration) Triggers() <-chan struct{} {
	return registration.triggers
}

func (registration *fakeRegistration) Close() error {
	registration.mu.Lock()
	defer registration.mu.Unlock()
	if !registration.closed {
		registration.closed = true
		close(registration.triggers)
	}
	return nil
}

func (registration *fakeRegistration) isClosed() bool {
	registration.mu.Lock()
	defer registration.mu.Unlock()
	return registration.closed
}

type fakeHotkey struct {
	mu            sync.Mutex
	registrations []*fakeRegistration
	reject        map[model.Key]bool
}

func (hotkey *fakeHotkey) Register(combo platform.Combo) (platform.Registration, error) {
	hotkey.mu.Lock()
	defer hotkey.mu.Unlock()
	if hotkey.reject[combo.Key] {
		return nil, errors.New("hotkey already grabbed")
	}
	registration := &fakeRegistration{combo: combo, triggers: make(chan struct{}, 4)}
	hotkey.registrations = append(hotkey.registrations, registration)
	return registration, nil
}

func (hotkey *fakeHotkey) active() *fakeRegistration {
	hotkey.mu.Lock()
	defer hotkey.mu.Unlock()
	for index := len(hotkey.registrations) - 1; index >= 0; index-- {
		if !hotkey.registrations[index].isClosed() {
			return hotkey.registrations[index]
		}
	}
	return nil
}

type memoryHistory struct {
	mu      sync.Mutex
	records []storage.PasteRecord
}

func (history *memoryHistory) Record(ctx context.Context, record storage.PasteRecord) error {
	history.mu.Lock()
	defer history.mu.Unlock()
	history.records = append(history.records, record)
	return nil
}

type sleepLog struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

func (log *sleepLog) Sleep(ctx context.Context, d time.Duration) error {
	log.mu.Lock()
	log.sleeps = append(log.sleeps, d)
	log.mu.Unlock()
	return ctx.Err()
}

type harness struct {
	service *Service
	store   *memoryStore
	typer   *recordingTyper
	hotkey  *fakeHotkey
	history *memoryHistory
	sleeps  *sleepLog
}

func newHarness(t *testing.T, clipboardText string) *harness {
	t.Helper()
	h := &harness{
		store:   &memoryStore{settings: model.DefaultSettings()},
		typer:   &recordingTyper{},
		hotkey:  &fakeHotkey{reject: map[model.Key]bool{}},
		history: &memoryHistory{},
		sleeps:  &sleepLog{},
	}
	h.service = New(Dependencies{
		Store:     h.store,
		History:   h.history,
		Clipboard: staticClipboard{text: clipboardText},
		Typer:     h.typer,
		Hotkey:    h.hotkey,
		IntN:      func(n int) int { return n - 1 },
		Sleep:     h.sleeps.Sleep,
	}, zerolog.Nop())
	return h
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.service.Run(ctx) }()
	require.Eventually(t, func() bool { return h.hotkey.active() != nil }, time.Second, 5*time.Millisecond)
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestService_ExecutePasteTypesClipboard(t *testing.T) {
	h := newHarness(t, "Hi\r\nyo")

	err := h.service.ExecutePaste(context.Background(), model.DelayParameters{Base: 10, Jitter: 5})
	require.NoError(t, err)

	assert.Equal(t, []string{"H", "i", "<enter>", "y", "o"}, h.typer.Typed())
	require.Len(t, h.sleeps.sleeps, 5)
	for _, d := range h.sleeps.sleeps {
		assert.Equal(t, 14*time.Millisecond, d)
	}

	require.Len(t, h.history.records, 1)
	record := h.history.records[0]
	assert.True(t, record.Success)
	assert.Equal(t, 5, record.Characters)
	assert.Equal(t, 10, record.BaseMs)
	assert.Equal(t, 5, record.JitterMs)
}

func TestService_ExecutePasteWhilePaused(t *testing.T) {
	h := newHarness(t, "text")

	paused, err := h.service.TogglePause(context.Background())
	require.NoError(t, err)
	require.True(t, paused)

	err = h.service.ExecutePaste(context.Background(), model.DefaultDelayParameters())
	assert.ErrorIs(t, err, ErrPaused)
	assert.Equal(t, "feature paused", err.Error())
	assert.Empty(t, h.typer.Typed())
	assert.Empty(t, h.history.records)

	paused, err = h.service.TogglePause(context.Background())
	require.NoError(t, err)
	assert.False(t, paused)
	require.NoError(t, h.service.ExecutePaste(context.Background(), model.DefaultDelayParameters()))
}

func TestService_ExecutePasteEmptyClipboard(t *testing.T) {
	h := newHarness(t, "")

	err := h.service.ExecutePaste(context.Background(), model.DefaultDelayParameters())
	assert.ErrorIs(t, err, ErrClipboardEmpty)
	require.Len(t, h.history.records, 1)
	assert.False(t, h.history.records[0].Success)
	assert.Equal(t, ErrClipboardEmpty.Error(), h.history.records[0].Error)
}

func TestService_ExecutePasteTypingFailure(t *testing.T) {
	h := newHarness(t, "abc")
	h.typer.failAt = 1
	h.typer.failErr = platform.ErrTypingUnsupported

	err := h.service.ExecutePaste(context.Background(), model.DefaultDelayParameters())
	assert.ErrorIs(t, err, platform.ErrTypingUnsupported)
	assert.Equal(t, []string{"a"}, h.typer.Typed())
	assert.Equal(t, 1, h.history.records[0].Characters)
}

type limitedTyper struct {
	recordingTyper
	unsupported map[rune]bool
}

func (typer *limitedTyper) CanType(r rune) bool {
	return !typer.unsupported[r]
}

func TestService_ExecutePasteRejectsUntypeableTextBeforeTyping(t *testing.T) {
	h := newHarness(t, "")
	typer := &limitedTyper{unsupported: map[rune]bool{'é': true}}
	history := &memoryHistory{}
	service := New(Dependencies{
		Store:     h.store,
		History:   history,
		Clipboard: staticClipboard{text: "Hi,\r\ncafé ok"},
		Typer:     typer,
		Hotkey:    h.hotkey,
		IntN:      func(n int) int { return 0 },
		Sleep:     h.sleeps.Sleep,
	}, zerolog.Nop())

	err := service.ExecutePaste(context.Background(), model.DefaultDelayParameters())
	require.ErrorIs(t, err, platform.ErrTypingUnsupported)
	assert.Contains(t, err.Error(), "type character 8")
	assert.Empty(t, typer.Typed())
	assert.Empty(t, h.sleeps.sleeps)
	require.Len(t, history.records, 1)
	assert.False(t, history.records[0].Success)
	assert.Equal(t, 0, history.records[0].Characters)
}

func TestService_ExecutePasteTypesWhenCheckerAcceptsAll(t *testing.T) {
	h := newHarness(t, "")
	typer := &limitedTyper{}
	service := New(Dependencies{
		Store:     h.store,
		Clipboard: staticClipboard{text: "a, b?\n"},
		Typer:     typer,
		Hotkey:    h.hotkey,
		IntN:      func(n int) int { return 0 },
		Sleep:     h.sleeps.Sleep,
	}, zerolog.Nop())

	require.NoError(t, service.ExecutePaste(context.Background(), model.DefaultDelayParameters()))
	assert.Equal(t, []string{"a", ",", " ", "b", "?", "<enter>"}, typer.Typed())
}

func TestService_ExecutePasteCancelled(t *testing.T) {
	h := newHarness(t, "abcdef")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.service.ExecutePaste(ctx, model.DefaultDelayParameters())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, h.typer.Typed(), 1)
}

func TestService_SetConfigReregistersAndPersists(t *testing.T) {
	h := newHarness(t, "")
	h.run(t)
	first := h.hotkey.active()

	result, err := h.service.SetConfig(context.Background(), model.HotkeyConfig{LeftCtrl: true, RightCtrl: true, Key: "F3"})
	require.NoError(t, err)
	assert.Equal(t, "Left Ctrl+F3", result.Description)
	assert.False(t, result.RestartRequired)

	assert.True(t, first.isClosed())
	active := h.hotkey.active()
	require.NotNil(t, active)
	assert.Equal(t, platform.Combo{LeftCtrl: true, Key: "F3", Swallow: true}, active.combo)

	config, err := h.service.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.HotkeyConfig{LeftCtrl: true, Key: "F3"}, config)
	assert.Equal(t, config, h.store.settings.Hotkey)
}

func TestService_SetConfigRegistrationFailureKeepsPrevious(t *testing.T) {
	h := newHarness(t, "")
	h.run(t)
	h.hotkey.reject["Q"] = true

	_, err := h.service.SetConfig(context.Background(), model.HotkeyConfig{Alt: true, Key: "Q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hotkey already grabbed")

	config, _ := h.service.GetConfig(context.Background())
	assert.Equal(t, model.DefaultHotkeyConfig(), config)
	active := h.hotkey.active()
	require.NotNil(t, active)
	assert.Equal(t, model.Key("V"), active.combo.Key)
	assert.Equal(t, 0, h.store.saves)
}

func TestService_SetConfigSaveFailureRollsBack(t *testing.T) {
	h := newHarness(t, "")
	h.run(t)
	h.store.saveErr = errors.New("disk full")

	_, err := h.service.SetConfig(context.Background(), model.HotkeyConfig{Shift: true, Key: "K"})
	require.Error(t, err)

	config, _ := h.service.GetConfig(context.Background())
	assert.Equal(t, model.DefaultHotkeyConfig(), config)
	assert.Equal(t, model.Key("V"), h.hotkey.active().combo.Key)
}

func TestService_SetConfigRejectsUnknownKey(t *testing.T) {
	h := newHarness(t, "")

	_, err := h.service.SetConfig(context.Background(), model.HotkeyConfig{Alt: true, Key: "Esc"})
	assert.ErrorIs(t, err, model.ErrUnknownKey)
}

func TestService_SetConfigInterceptRequiresRestart(t *testing.T) {
	h := newHarness(t, "")

	result, err := h.service.SetConfig(context.Background(), model.HotkeyConfig{Key: "V", InterceptSystemPaste: true})
	require.NoError(t, err)
	assert.True(t, result.RestartRequired)
	assert.Equal(t, SystemPasteDescription, result.Description)

	result, err = h.service.SetConfig(context.Background(), model.HotkeyConfig{Key: "B", InterceptSystemPaste: true})
	require.NoError(t, err)
	assert.False(t, result.RestartRequired)
}

func TestService_HotkeyPressReachesSubscribers(t *testing.T) {
	h := newHarness(t, "")
	triggers, unsubscribe := h.service.SubscribeTriggers(2)
	h.run(t)

	h.hotkey.active().triggers <- struct{}{}
	select {
	case <-triggers:
	case <-time.After(time.Second):
		t.Fatal("hotkey press not delivered")
	}

	unsubscribe()
	unsubscribe()
	_, ok := <-triggers
	assert.False(t, ok)
}

func TestService_ReloadAppliesExternalEdit(t *testing.T) {
	h := newHarness(t, "")
	h.run(t)

	reloaded := make(chan model.Settings, 1)
	h.service.OnReload(func(settings model.Settings) { reloaded <- settings })

	edited := model.Settings{
		Hotkey: model.HotkeyConfig{RightCtrl: true, Key: "F6"},
		Delay:  model.DelayParameters{Base: 30, Jitter: 3},
	}
	h.store.mu.Lock()
	h.store.settings = edited
	h.store.mu.Unlock()

	h.service.reload()

	assert.Equal(t, edited, <-reloaded)
	assert.Equal(t, model.Key("F6"), h.hotkey.active().combo.Key)
	assert.Equal(t, edited.Delay, h.service.Delay())
}

func TestService_ReloadOfOwnWriteIsSilent(t *testing.T) {
	h := newHarness(t, "")
	called := false
	h.service.OnReload(func(model.Settings) { called = true })

	require.NoError(t, h.service.SetDelay(model.DelayParameters{Base: 25, Jitter: 9}))
	h.service.reload()

	assert.False(t, called)
	assert.Equal(t, 1, h.store.saves)
}

func TestService_RestartApp(t *testing.T) {
	h := newHarness(t, "")
	assert.ErrorIs(t, h.service.RestartApp(context.Background()), ErrRestartUnavailable)

	restarted := false
	h.service.deps.Restart = func() error {
		restarted = true
		return nil
	}
	require.NoError(t, h.service.RestartApp(context.Background()))
	assert.True(t, restarted)
}

func TestService_LoadFailureUsesDefaults(t *testing.T) {
	store := &memoryStore{loadErr: errors.New("permission denied")}
	service := New(Dependencies{Store: store}, zerolog.Nop())

	config, err := service.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultHotkeyConfig(), config)
	assert.Equal(t, model.DefaultDelayParameters(), service.Delay())
}
