package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"paster/internal/core/model"
)

const (
	// AppDirName is the per-user directory holding settings and history.
	AppDirName       = "Paster"
	settingsFileName = "settings.yaml"
)

type yamlHotkey struct {
	Alt            bool   `yaml:"alt"`
	Ctrl           bool   `yaml:"ctrl"`
	LeftCtrl       bool   `yaml:"left_ctrl"`
	RightCtrl      bool   `yaml:"right_ctrl"`
	Shift          bool   `yaml:"shift"`
	Key            string `yaml:"key"`
	InterceptCtrlV bool   `yaml:"intercept_ctrl_v"`
}

type yamlDelay struct {
	BaseMs   int `yaml:"base_ms"`
	JitterMs int `yaml:"jitter_ms"`
}

type yamlSettings struct {
	Hotkey *yamlHotkey `yaml:"hotkey"`
	Delay  *yamlDelay  `yaml:"delay"`
}

// ResolveDir returns override when set, otherwise <UserConfigDir>/Paster.
func ResolveDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, AppDirName), nil
}

// SettingsStore reads and writes settings.yaml in one directory.
type SettingsStore struct {
	dir string
}

// NewSettingsStore creates a store rooted at dir.
func NewSettingsStore(dir string) *SettingsStore {
	return &SettingsStore{dir: dir}
}

// Path returns the settings file location.
func (store *SettingsStore) Path() string {
	return filepath.Join(store.dir, settingsFileName)
}

// Dir returns the directory the store writes to.
func (store *SettingsStore) Dir() string {
	return store.dir
}

// Load reads user settings from YAML.
// If the file does not exist, default settings are returned.
func (store *SettingsStore) Load() (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(store.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes user settings to YAML.
func (store *SettingsStore) Save(settings model.Settings) error {
	if err := os.MkdirAll(store.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	hotkey := settings.Hotkey
	fileData := yamlSettings{
		Hotkey: &yamlHotkey{
			Alt:            hotkey.Alt,
			Ctrl:           hotkey.Ctrl,
			LeftCtrl:       hotkey.LeftCtrl,
			RightCtrl:      hotkey.RightCtrl,
			Shift:          hotkey.Shift,
			Key:            string(hotkey.Key),
			InterceptCtrlV: hotkey.InterceptSystemPaste,
		},
		Delay: &yamlDelay{
			BaseMs:   settings.Delay.Base,
			JitterMs: settings.Delay.Jitter,
		},
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	// Write then rename so the watcher never sees a truncated file.
	tmpPath := store.Path() + ".tmp"
	if err := os.WriteFile(tmpPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Rename(tmpPath, store.Path()); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.Hotkey != nil {
		hotkey := model.HotkeyConfig{
			Alt:                  fileData.Hotkey.Alt,
			Ctrl:                 fileData.Hotkey.Ctrl,
			LeftCtrl:             fileData.Hotkey.LeftCtrl,
			RightCtrl:            fileData.Hotkey.RightCtrl,
			Shift:                fileData.Hotkey.Shift,
			Key:                  model.Key(fileData.Hotkey.Key),
			InterceptSystemPaste: fileData.Hotkey.InterceptCtrlV,
		}
		if key, err := model.ParseKey(fileData.Hotkey.Key); err == nil {
			hotkey.Key = key
		}
		settings.Hotkey = model.Normalize(hotkey)
	}

	if fileData.Delay != nil {
		delay := model.DelayParameters{Base: fileData.Delay.BaseMs, Jitter: fileData.Delay.JitterMs}
		if delay.Valid() {
			settings.Delay = delay
		}
	}
}
