package config

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the directory used under the XDG base directories
	AppDirName = "home-tui"
	// ConfigFilename is the config file inside the config directory
	ConfigFilename = "config.yaml"
	// LogFilename is the log file inside the state directory
	LogFilename = "home.log"
	// EnvPrefix prefixes environment overrides, e.g. HOME_TUI_LOGGING_LEVEL
	EnvPrefix = "HOME_TUI"
)

// configDir returns the configuration directory path
func configDir() string {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, AppDirName)
	}

	// Fall back to ~/.config
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", AppDirName)
}

// stateDir returns the directory logs are written to
func stateDir() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, AppDirName)
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", AppDirName)
}

// DefaultPath returns the full path to the config file
func DefaultPath() string {
	return filepath.Join(configDir(), ConfigFilename)
}

// DefaultLogPath returns the full path to the log file
func DefaultLogPath() string {
	return filepath.Join(stateDir(), LogFilename)
}
