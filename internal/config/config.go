// Package config loads the home-tui settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/registry"
)

// Logging levels and formats
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config stores all application configuration
type Config struct {
	Logging       LoggingConfig
	Lights        LightsConfig
	Automation    AutomationConfig
	Notifications NotificationsConfig
	Wifi          WifiConfig
	// Rooms replaces the default house when not empty
	Rooms []RoomConfig

	path string
	v    *viper.Viper
}

// LoggingConfig controls the slog output
type LoggingConfig struct {
	Level  string
	Format string
	// File the TUI logs to, the terminal being taken
	File string
}

// LightsConfig holds light defaults
type LightsConfig struct {
	// Intensity applied when a room is switched on
	DefaultIntensity int `mapstructure:"default_intensity"`
}

// AutomationConfig controls the alarm scheduler
type AutomationConfig struct {
	// Re-arm alarms for the next day after they fire
	Daily bool
	// Arm every room's stored on/off times at startup
	ArmOnStart bool `mapstructure:"arm_on_start"`
}

// NotificationsConfig controls the toast stack
type NotificationsConfig struct {
	TTL time.Duration
}

// WifiConfig controls the WiFi simulation
type WifiConfig struct {
	Active           bool
	ReselectInterval time.Duration `mapstructure:"reselect_interval"`
}

// RoomConfig describes one room of a custom house
type RoomConfig struct {
	Name    string
	Lights  int
	AutoOn  string    `mapstructure:"auto_on"`
	AutoOff string    `mapstructure:"auto_off"`
	Usage   []float64 `mapstructure:"usage"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("logging.format", LogFormatText)
	v.SetDefault("logging.file", DefaultLogPath())
	v.SetDefault("lights.default_intensity", models.DefaultIntensity)
	v.SetDefault("automation.daily", false)
	v.SetDefault("automation.arm_on_start", false)
	v.SetDefault("notifications.ttl", 3*time.Second)
	v.SetDefault("wifi.active", true)
	v.SetDefault("wifi.reselect_interval", 5*time.Minute)
}

// Load reads the configuration from path, or from the default location
// when path is empty. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{path: path, v: v}
	if err := cfg.decode(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode() error {
	if err := c.v.Unmarshal(c); err != nil {
		return fmt.Errorf("decode config %s: %w", c.path, err)
	}
	return nil
}

// Path returns the file the configuration is read from and saved to
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to disk
func (c *Config) Save() error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	c.v.Set("logging.level", c.Logging.Level)
	c.v.Set("logging.format", c.Logging.Format)
	c.v.Set("logging.file", c.Logging.File)
	c.v.Set("lights.default_intensity", c.Lights.DefaultIntensity)
	c.v.Set("automation.daily", c.Automation.Daily)
	c.v.Set("automation.arm_on_start", c.Automation.ArmOnStart)
	c.v.Set("notifications.ttl", c.Notifications.TTL.String())
	c.v.Set("wifi.active", c.Wifi.Active)
	c.v.Set("wifi.reselect_interval", c.Wifi.ReselectInterval.String())

	rooms := make([]map[string]any, 0, len(c.Rooms))
	for _, r := range c.Rooms {
		rooms = append(rooms, map[string]any{
			"name":     r.Name,
			"lights":   r.Lights,
			"auto_on":  r.AutoOn,
			"auto_off": r.AutoOff,
			"usage":    r.Usage,
		})
	}
	c.v.Set("rooms", rooms)

	if err := c.v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("write config %s: %w", c.path, err)
	}

	slog.Info("configuration saved", "path", c.path)
	return nil
}

// Watch reloads the configuration when the file changes and calls fn with
// the new values. Invalid edits are logged and skipped.
func (c *Config) Watch(fn func(*Config)) {
	c.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		next := &Config{path: c.path, v: c.v}
		if err := next.decode(); err != nil {
			slog.Warn("ignoring invalid config change", "path", e.Name, "error", err)
			return
		}
		slog.Info("configuration reloaded", "path", e.Name)
		fn(next)
	})
	c.v.WatchConfig()
}

// HouseRooms builds the room seeds, falling back to the default house
func (c *Config) HouseRooms() ([]*models.Room, error) {
	if len(c.Rooms) == 0 {
		return registry.DefaultRooms(), nil
	}

	rooms := make([]*models.Room, 0, len(c.Rooms))
	for i, rc := range c.Rooms {
		room := &models.Room{
			Name:        rc.Name,
			NumOfLights: rc.Lights,
		}
		if rc.AutoOn != "" {
			tod, err := models.ParseTimeOfDay(rc.AutoOn)
			if err != nil {
				return nil, fmt.Errorf("rooms[%d].auto_on: %w", i, err)
			}
			room.AutoOn = &tod
		}
		if rc.AutoOff != "" {
			tod, err := models.ParseTimeOfDay(rc.AutoOff)
			if err != nil {
				return nil, fmt.Errorf("rooms[%d].auto_off: %w", i, err)
			}
			room.AutoOff = &tod
		}
		copy(room.Usage[:], rc.Usage)
		rooms = append(rooms, room)
	}
	return rooms, nil
}
