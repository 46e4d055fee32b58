// Package logging sets up the slog logger shared by every package.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/angristan/home-tui/internal/config"
)

// level is shared by every handler Setup creates so it can be changed at runtime
var level = new(slog.LevelVar)

// GetLogLevel converts a level name to slog.Level, defaulting to info
func GetLogLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn, "warning":
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidateLogLevel returns the level if known, info otherwise
func ValidateLogLevel(name string) string {
	switch strings.ToLower(name) {
	case config.LogLevelDebug, config.LogLevelInfo, config.LogLevelWarn, config.LogLevelError:
		return strings.ToLower(name)
	case "warning":
		return config.LogLevelWarn
	default:
		return config.LogLevelInfo
	}
}

// ValidateLogFormat returns the format if known, text otherwise
func ValidateLogFormat(format string) string {
	switch strings.ToLower(format) {
	case config.LogFormatText, config.LogFormatJSON:
		return strings.ToLower(format)
	default:
		return config.LogFormatText
	}
}

// Setup creates a logger writing to w and makes it the default
func Setup(levelName, format string, w io.Writer) *slog.Logger {
	SetLevel(levelName)

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if ValidateLogFormat(format) == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// SetLevel changes the level of every logger created by Setup
func SetLevel(levelName string) {
	level.Set(GetLogLevel(ValidateLogLevel(levelName)))
}

// Level returns the current level
func Level() slog.Level {
	return level.Level()
}

// OpenFile opens the log file for appending, creating its directory
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
