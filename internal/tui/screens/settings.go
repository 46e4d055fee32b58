package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/tui/messages"
	"github.com/angristan/home-tui/internal/tui/styles"
)

// emptyTime is shown when enter is pressed on an empty time input
const emptyTime = "Enter a time as HH:MM"

var edges = [2]models.Edge{models.EdgeOn, models.EdgeOff}

// SettingsModel is the automation modal of a room
type SettingsModel struct {
	home   Home
	room   *models.Room
	inputs [2]textinput.Model
	focus  int

	// Window size
	width  int
	height int
}

// NewSettingsModel creates a new settings modal model
func NewSettingsModel(h Home) SettingsModel {
	var inputs [2]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = "HH:MM"
		ti.CharLimit = 5
		ti.Width = 8
		inputs[i] = ti
	}
	return SettingsModel{home: h, inputs: inputs}
}

// SetSize sets the terminal size
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Open points the modal at a room and focuses the auto-on input
func (m *SettingsModel) Open(room *models.Room) tea.Cmd {
	m.room = room
	m.focus = 0
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	return m.inputs[0].Focus()
}

// Update handles messages
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	if m.room == nil {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return messages.HideSettingsMsg{} }

		case "tab", "shift+tab", "up", "down":
			m.inputs[m.focus].Blur()
			m.focus = 1 - m.focus
			return m, m.inputs[m.focus].Focus()

		case "enter":
			return m.submit()

		case "ctrl+x":
			return m.cancel()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m SettingsModel) submit() (SettingsModel, tea.Cmd) {
	raw := strings.TrimSpace(m.inputs[m.focus].Value())
	if raw == "" {
		return m, noticeCmd(emptyTime)
	}

	if _, err := m.home.Schedule(m.room.ID, edges[m.focus], raw); err != nil {
		return m, errCmd(err)
	}
	m.inputs[m.focus].SetValue("")
	m.Refresh()
	return m, nil
}

func (m SettingsModel) cancel() (SettingsModel, tea.Cmd) {
	ok, err := m.home.CancelSchedule(m.room.ID, edges[m.focus])
	if err != nil {
		return m, errCmd(err)
	}
	if !ok {
		return m, noticeCmd("No " + edges[m.focus].String() + " alarm pending for " + m.room.DisplayName())
	}
	return m, nil
}

// Refresh reloads the stored times shown next to the inputs
func (m *SettingsModel) Refresh() {
	if m.room == nil {
		return
	}
	for _, room := range m.home.Rooms() {
		if room.ID == m.room.ID {
			m.room = room
			return
		}
	}
}

// View renders the settings modal
func (m SettingsModel) View() string {
	if m.room == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.StyleModalTitle.Render(m.room.DisplayName() + " Automation"))
	b.WriteString("\n\n")

	for i, edge := range edges {
		label := "Turn " + edge.String()
		if edge == models.EdgeOn {
			label += " "
		}
		cursor := "  "
		inputStyle := styles.StyleInput
		if i == m.focus {
			cursor = "> "
			inputStyle = styles.StyleInputFocused
		}

		current := "--:--"
		if tod := m.room.Schedule(edge); tod != nil {
			current = tod.String()
		}
		armed := styles.StyleTextMuted.Render("not armed")
		if alarm, ok := m.home.PendingAlarm(m.room.ID, edge); ok {
			armed = styles.StyleSuccess.Render("armed " + alarm.At.Format("Mon 15:04"))
		}

		b.WriteString(cursor + label + "  " + inputStyle.Render(m.inputs[i].View()))
		b.WriteString("\n")
		b.WriteString("    " + styles.StyleTextMuted.Render("current "+current+" • ") + armed)
		b.WriteString("\n\n")
	}

	b.WriteString(styles.StyleHelp.Render("tab switch • enter schedule • ctrl+x cancel alarm • esc close"))

	modalWidth := m.width * 70 / 100
	if modalWidth < 44 {
		modalWidth = 44
	}
	if modalWidth > 64 {
		modalWidth = 64
	}
	modal := styles.StyleModal.Width(modalWidth).Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
