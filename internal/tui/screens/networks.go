package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/tui/components"
	"github.com/angristan/home-tui/internal/tui/messages"
	"github.com/angristan/home-tui/internal/tui/styles"
)

// NetworksModel is the WiFi network picker
type NetworksModel struct {
	home     Home
	conns    []models.Connection
	selected int

	// Window size
	width  int
	height int
}

// NewNetworksModel creates a new network picker model
func NewNetworksModel(h Home) NetworksModel {
	return NetworksModel{home: h}
}

// SetSize sets the terminal size
func (m *NetworksModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Open reloads the visible access points
func (m *NetworksModel) Open() {
	m.conns = m.home.Connections()
	m.selected = 0
	if current, ok := m.home.CurrentConnection(); ok {
		for i, c := range m.conns {
			if c.ID == current.ID {
				m.selected = i
				break
			}
		}
	}
}

// Update handles messages
func (m NetworksModel) Update(msg tea.Msg) (NetworksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n", "q":
			return m, func() tea.Msg { return messages.HideNetworksMsg{} }

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.conns)-1 {
				m.selected++
			}

		case "w":
			m.home.ToggleWifi()

		case "enter":
			if m.selected < len(m.conns) {
				if err := m.home.Connect(m.conns[m.selected].ID); err != nil {
					return m, errCmd(err)
				}
			}
		}
	}
	return m, nil
}

// View renders the network picker
func (m NetworksModel) View() string {
	var b strings.Builder

	b.WriteString(styles.StyleModalTitle.Render("WiFi Networks"))
	b.WriteString("\n\n")

	if !m.home.WifiActive() {
		b.WriteString(styles.StyleError.Render("WiFi is turned off"))
		b.WriteString("\n\n")
	}

	current, connected := m.home.CurrentConnection()
	for i, conn := range m.conns {
		style := styles.StyleListItem
		cursor := "  "
		if i == m.selected {
			style = styles.StyleListItemSelected
			cursor = "> "
		}

		mark := "  "
		if connected && conn.ID == current.ID {
			mark = styles.StyleSuccess.Render("✓ ")
		}

		bars := components.SignalBars(conn.Signal)
		if !conn.Usable() {
			bars = styles.StyleError.Render(bars)
		} else {
			bars = styles.StyleSuccess.Render(bars)
		}

		b.WriteString(cursor + mark + bars + " " + style.Render(components.Truncate(conn.Name, 20)) +
			styles.StyleTextMuted.Render(string(conn.Signal)) + "\n")
	}

	if len(m.conns) == 0 {
		b.WriteString(styles.StyleTextMuted.Render("No networks in range"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.StyleHelp.Render("↑/↓ navigate • enter connect • w wifi on/off • esc close"))

	modalWidth := m.width * 70 / 100
	if modalWidth < 44 {
		modalWidth = 44
	}
	if modalWidth > 60 {
		modalWidth = 60
	}
	modal := styles.StyleModal.Width(modalWidth).Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
