package platform

import (
	"fmt"
	"os"
	"strings"
)

// Autostart manages launching the application at login.
type Autostart interface {
	IsEnabled(appName string) (bool, error)
	Enable(appName, execPath string) error
	Disable(appName string) error
}

type loginAutostart struct{}

// NewAutostart returns the implementation for the current OS.
func NewAutostart() Autostart {
	return loginAutostart{}
}

// EnsureAutostart enables autostart when it is not enabled yet and reports
// whether anything changed.
func EnsureAutostart(autostart Autostart, appName, execPath string) (bool, error) {
	enabled, err := autostart.IsEnabled(appName)
	if err != nil {
		return false, err
	}
	if enabled {
		return false, nil
	}
	if err := autostart.Enable(appName, execPath); err != nil {
		return false, err
	}
	return true, nil
}

// userConfigDir returns the OS-standard configuration directory.
func userConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

func slug(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "paster"
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
