package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/angristan/home-tui/internal/config"
	"github.com/angristan/home-tui/internal/events"
	"github.com/angristan/home-tui/internal/home"
	"github.com/angristan/home-tui/internal/logging"
	"github.com/angristan/home-tui/internal/notify"
	"github.com/angristan/home-tui/internal/registry"
	"github.com/angristan/home-tui/internal/tui"
	"github.com/angristan/home-tui/internal/wifi"
)

// globalFlags are shared by every command
type globalFlags struct {
	configFile  string
	logLevel    string
	logFormat   string
	skipWelcome bool
}

// NewRootCommand creates the root command, which runs the TUI
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "home",
		Short:        "Control the lights of your home from the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), flags)
		},
	}

	// Add global flags
	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Path to config file (default $XDG_CONFIG_HOME/home-tui/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format (text, json)")
	cmd.Flags().BoolVar(&flags.skipWelcome, "skip-welcome", false, "Go straight to the dashboard")

	// Add commands
	cmd.AddCommand(newRoomsCommand(flags))
	cmd.AddCommand(newVersionCommand(version, commit, buildDate))

	return cmd
}

// newVersionCommand creates the version command
func newVersionCommand(version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:    %s\n", version)
			fmt.Fprintf(out, "Commit:     %s\n", commit)
			fmt.Fprintf(out, "Build Date: %s\n", buildDate)
		},
	}
}

// loadConfig reads the config file and applies the command line overrides
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Logging.Format = flags.logFormat
	}
	return cfg, nil
}

// newHome wires the home controller from the configuration
func newHome(cfg *config.Config, notifier home.Notifier, bus *events.Bus, logger *slog.Logger) (*home.Home, error) {
	seeds, err := cfg.HouseRooms()
	if err != nil {
		return nil, err
	}
	rooms, err := registry.New(seeds)
	if err != nil {
		return nil, fmt.Errorf("build house: %w", err)
	}

	network := wifi.NewNetwork(wifi.NewGate(cfg.Wifi.Active), wifi.DefaultConnections(), logger)

	return home.New(home.Options{
		Registry:         rooms,
		Network:          network,
		Notifier:         notifier,
		Bus:              bus,
		Daily:            cfg.Automation.Daily,
		DefaultIntensity: cfg.Lights.DefaultIntensity,
		Logger:           logger,
	}), nil
}

func runTUI(ctx context.Context, flags *globalFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, logs go to a file
	var logOut io.Writer = io.Discard
	if cfg.Logging.File != "" {
		f, err := logging.OpenFile(cfg.Logging.File)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, logOut)
	logger.Info("starting", "config", cfg.Path())

	bus := events.NewBus()
	notices := notify.NewCenter(cfg.Notifications.TTL)
	notices.OnPost = func(n notify.Notification) {
		bus.Emit(events.NotificationPosted, events.NotificationPayload{ID: n.ID, Message: n.Message})
	}

	h, err := newHome(cfg, notices, bus, logger)
	if err != nil {
		return err
	}
	defer h.Close()

	if cfg.Automation.ArmOnStart {
		alarms, err := h.ScheduleDefaults()
		if err != nil {
			return err
		}
		logger.Info("armed stored schedules", "alarms", len(alarms))
	}

	if _, err := os.Stat(cfg.Path()); err == nil {
		cfg.Watch(func(next *config.Config) {
			logging.SetLevel(next.Logging.Level)
			h.SetWifi(next.Wifi.Active)
		})
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go h.RunWifi(ctx, cfg.Wifi.ReselectInterval)

	model := tui.NewModel(h, notices, flags.skipWelcome)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", "error", err)
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
