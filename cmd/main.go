package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"paster/internal/logging"
)

const (
	appName = "Paster"
	appID   = "com.paster.app"
)

type options struct {
	logLevel    string
	logFormat   string
	configDir   string
	noAutostart bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "paster",
	Short: "Type the clipboard into any window as keystrokes",
	Long: `Paster types the clipboard text as individual key presses with a configurable
delay, for targets that block regular paste. Trigger it from the window with a
countdown, or instantly through the global hotkey.`,
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runApp(opts, newLogger(opts))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides PASTER_LOG_LEVEL)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: console or json (overrides PASTER_LOG_FORMAT)")
	flags.StringVar(&opts.configDir, "config-dir", "", "directory for settings.yaml and history.db")
	rootCmd.Flags().BoolVar(&opts.noAutostart, "no-autostart", false, "do not register the app to start at login")
}

func newLogger(opts options) zerolog.Logger {
	cfg := logging.ApplyEnv(logging.DefaultConfig())
	if level, ok := logging.ParseLevel(opts.logLevel); ok {
		cfg.Level = level
	}
	if format, ok := logging.ParseFormat(opts.logFormat); ok {
		cfg.Format = format
	}
	return logging.New(cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
