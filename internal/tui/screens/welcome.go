package screens

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/home-tui/internal/tui/messages"
	"github.com/angristan/home-tui/internal/tui/styles"
)

// LoadingDelay is how long the loader spins before the dashboard shows
const LoadingDelay = time.Second

// WelcomeState represents the current welcome state
type WelcomeState int

const (
	StateGreeting WelcomeState = iota
	StateLoading
)

// WelcomeModel is the welcome screen model
type WelcomeModel struct {
	state   WelcomeState
	spinner spinner.Model

	// Window size
	width  int
	height int
}

// loadedMsg ends the loading animation
type loadedMsg struct{}

// NewWelcomeModel creates a new welcome screen model
func NewWelcomeModel() WelcomeModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StyleSpinner

	return WelcomeModel{
		state:   StateGreeting,
		spinner: sp,
	}
}

// Init initializes the welcome screen
func (m WelcomeModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetSize sets the terminal size
func (m *WelcomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// State returns the current welcome state
func (m WelcomeModel) State() WelcomeState {
	return m.state
}

// Update handles messages
func (m WelcomeModel) Update(msg tea.Msg) (WelcomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter", " ":
			if m.state == StateGreeting {
				m.state = StateLoading
				return m, tea.Tick(LoadingDelay, func(time.Time) tea.Msg {
					return loadedMsg{}
				})
			}
		}

	case loadedMsg:
		return m, func() tea.Msg { return messages.EnteredMsg{} }

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the welcome screen
func (m WelcomeModel) View() string {
	var b strings.Builder

	header := styles.StyleHeaderGradient.Render("  Home  ")
	b.WriteString(lipgloss.Place(m.width, 3, lipgloss.Center, lipgloss.Top, header))
	b.WriteString("\n\n")

	var content string
	switch m.state {
	case StateGreeting:
		content = m.renderGreeting()
	case StateLoading:
		content = m.spinner.View() + " Loading your home..."
	}

	b.WriteString(lipgloss.Place(m.width, m.height-6, lipgloss.Center, lipgloss.Center, content))

	return b.String()
}

func (m WelcomeModel) renderGreeting() string {
	var b strings.Builder

	b.WriteString(styles.StylePrimary.Render("Welcome home"))
	b.WriteString("\n\n")
	b.WriteString(styles.StyleTextMuted.Render("Control the lights of every room,\nschedule them and keep an eye on the WiFi."))
	b.WriteString("\n\n")
	b.WriteString(styles.StyleHelp.Render("enter start • q quit"))

	return b.String()
}
