package tui

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/angristan/home-tui/internal/events"
	"github.com/angristan/home-tui/internal/home"
	"github.com/angristan/home-tui/internal/notify"
	"github.com/angristan/home-tui/internal/tui/components"
	"github.com/angristan/home-tui/internal/tui/messages"
	"github.com/angristan/home-tui/internal/tui/screens"
)

// eventBuffer is how many home events may queue up between renders
const eventBuffer = 64

// notificationTick is how often expired notifications are swept
const notificationTick = 250 * time.Millisecond

// Screen represents the current screen state
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenMain
	ScreenSettings
	ScreenNetworks
)

// Model is the main application model
type Model struct {
	home    *home.Home
	notices *notify.Center
	logger  *slog.Logger

	// Home events, fed by a bus subscription
	events      chan events.Event
	unsubscribe func()

	// Current screen
	screen Screen

	// Screen models
	welcomeScreen  screens.WelcomeModel
	mainScreen     screens.MainModel
	settingsScreen screens.SettingsModel
	networksScreen screens.NetworksModel

	// Window size
	width  int
	height int

	// Last error
	err error
}

// NewModel creates a new application model
func NewModel(h *home.Home, notices *notify.Center, skipWelcome bool) Model {
	ch := make(chan events.Event, eventBuffer)
	unsubscribe := h.Bus().Subscribe(func(e events.Event) {
		// Publish may run inside Update, never block it
		select {
		case ch <- e:
		default:
		}
	})

	m := Model{
		home:        h,
		notices:     notices,
		logger:      slog.Default().With("component", "tui"),
		events:      ch,
		unsubscribe: unsubscribe,
	}

	if skipWelcome {
		m.screen = ScreenMain
	} else {
		m.screen = ScreenWelcome
	}

	m.welcomeScreen = screens.NewWelcomeModel()
	m.mainScreen = screens.NewMainModel(h)
	m.settingsScreen = screens.NewSettingsModel(h)
	m.networksScreen = screens.NewNetworksModel(h)

	return m
}

// Close stops listening to home events
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("Home"),
		waitForEvent(m.events),
		tickNotifications(),
	}
	if m.screen == ScreenWelcome {
		cmds = append(cmds, m.welcomeScreen.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.welcomeScreen.SetSize(msg.Width, msg.Height)
		m.mainScreen.SetSize(msg.Width, msg.Height)
		m.settingsScreen.SetSize(msg.Width, msg.Height)
		m.networksScreen.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Global key handlers
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case messages.HomeEventMsg:
		m.logger.Debug("home event", "type", msg.Event.Type)
		m.mainScreen.Refresh()
		m.settingsScreen.Refresh()
		return m, waitForEvent(m.events)

	case messages.NotificationTickMsg:
		m.notices.Cleanup()
		return m, tickNotifications()

	case messages.NoticeMsg:
		m.notices.Notify(msg.Text)
		return m, nil

	case messages.ErrorMsg:
		m.err = msg.Err
		m.reportError(msg.Err)
		return m, nil

	case messages.EnteredMsg:
		m.screen = ScreenMain
		m.mainScreen.Refresh()
		return m, nil

	case messages.ShowSettingsMsg:
		room, err := m.home.Room(msg.RoomID)
		if err != nil {
			m.reportError(err)
			return m, nil
		}
		m.screen = ScreenSettings
		cmd := m.settingsScreen.Open(room)
		return m, cmd

	case messages.HideSettingsMsg:
		m.screen = ScreenMain
		m.mainScreen.Refresh()
		return m, nil

	case messages.ShowNetworksMsg:
		m.screen = ScreenNetworks
		m.networksScreen.Open()
		return m, nil

	case messages.HideNetworksMsg:
		m.screen = ScreenMain
		m.mainScreen.Refresh()
		return m, nil
	}

	// Route to current screen
	switch m.screen {
	case ScreenWelcome:
		var cmd tea.Cmd
		m.welcomeScreen, cmd = m.welcomeScreen.Update(msg)
		cmds = append(cmds, cmd)

	case ScreenMain:
		var cmd tea.Cmd
		m.mainScreen, cmd = m.mainScreen.Update(msg)
		cmds = append(cmds, cmd)

	case ScreenSettings:
		var cmd tea.Cmd
		m.settingsScreen, cmd = m.settingsScreen.Update(msg)
		cmds = append(cmds, cmd)

	case ScreenNetworks:
		var cmd tea.Cmd
		m.networksScreen, cmd = m.networksScreen.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the current screen
func (m Model) View() string {
	var body string
	switch m.screen {
	case ScreenWelcome:
		return m.welcomeScreen.View()
	case ScreenMain:
		body = m.mainScreen.View()
	case ScreenSettings:
		body = m.settingsScreen.View()
	case ScreenNetworks:
		body = m.networksScreen.View()
	default:
		return "Unknown screen"
	}

	notes := components.RenderNotifications(m.notices.Active(), m.width)
	return overlayBottom(body, notes, 2)
}

// reportError turns an error into a notification. Gate and signal errors
// were already reported by the home controller.
func (m Model) reportError(err error) {
	m.logger.Warn("operation failed", "error", err)

	switch {
	case errors.Is(err, home.ErrGateClosed),
		errors.Is(err, home.ErrWifiOff),
		errors.Is(err, home.ErrPoorSignal):
		return
	case errors.Is(err, home.ErrInvalidTime):
		m.notices.Notify("Invalid time: use HH:MM between 00:00 and 23:59")
	case errors.Is(err, home.ErrInvalidIntensity):
		m.notices.Notify("Intensity must be between 0 and 10")
	default:
		m.notices.Notify("Error: " + err.Error())
	}
}

// waitForEvent blocks until the home publishes something
func waitForEvent(ch <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		return messages.HomeEventMsg{Event: <-ch}
	}
}

func tickNotifications() tea.Cmd {
	return tea.Tick(notificationTick, func(time.Time) tea.Msg {
		return messages.NotificationTickMsg{}
	})
}

// overlayBottom draws overlay over the last lines of body, keeping the
// bottom reserved lines (status bar, help) visible
func overlayBottom(body, overlay string, reserved int) string {
	if overlay == "" {
		return body
	}

	lines := strings.Split(body, "\n")
	over := strings.Split(overlay, "\n")
	start := len(lines) - reserved - len(over)
	if start < 0 {
		start = 0
	}
	for i, line := range over {
		if start+i >= len(lines) {
			lines = append(lines, line)
			continue
		}
		lines[start+i] = line
	}
	return strings.Join(lines, "\n")
}
