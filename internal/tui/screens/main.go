package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/tui/components"
	"github.com/angristan/home-tui/internal/tui/messages"
	"github.com/angristan/home-tui/internal/tui/styles"
)

// settingsLocked is shown when the schedule editor is opened without WiFi
const settingsLocked = "Cannot access settings: WiFi is not active"

// MainModel is the main dashboard screen model
type MainModel struct {
	home          Home
	rooms         []*models.Room
	selectedIndex int
	scrollOffset  int

	showPanel bool
	keys      KeyMap
	help      help.Model
	gauge     progress.Model

	width  int
	height int
}

// NewMainModel creates a new main screen model
func NewMainModel(h Home) MainModel {
	hp := help.New()
	hp.Styles.ShortKey = styles.StyleHelpKey
	hp.Styles.FullKey = styles.StyleHelpKey
	hp.Styles.ShortDesc = styles.StyleHelp
	hp.Styles.FullDesc = styles.StyleHelp

	gauge := progress.New(
		progress.WithGradient(string(styles.ColorSecondary), string(styles.ColorLightOn)),
		progress.WithWidth(20),
	)

	m := MainModel{
		home:      h,
		showPanel: true, // Side panel on by default
		keys:      DefaultKeyMap(),
		help:      hp,
		gauge:     gauge,
	}
	m.Refresh()
	return m
}

// SetSize sets the terminal size
func (m *MainModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.ensureVisible()
}

// Refresh reloads the room snapshots from the home controller
func (m *MainModel) Refresh() {
	m.rooms = m.home.Rooms()
	if m.selectedIndex >= len(m.rooms) {
		m.selectedIndex = len(m.rooms) - 1
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
}

// SelectedRoom returns the room under the cursor
func (m *MainModel) SelectedRoom() *models.Room {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.rooms) {
		return nil
	}
	return m.rooms[m.selectedIndex]
}

// visibleLines returns how many rooms fit in the viewport
func (m *MainModel) visibleLines() int {
	// header(1) + blank(1) + scroll indicators(2) + status(1) + help(1)
	visible := m.height - 6
	if m.help.ShowAll {
		visible -= 3
	}
	if visible < 2 {
		visible = 2
	}
	return visible
}

// ensureVisible adjusts scrollOffset so selectedIndex is visible
func (m *MainModel) ensureVisible() {
	visible := m.visibleLines()

	if m.selectedIndex < m.scrollOffset {
		m.scrollOffset = m.selectedIndex
	}
	if m.selectedIndex >= m.scrollOffset+visible {
		m.scrollOffset = m.selectedIndex - visible + 1
	}

	maxScroll := len(m.rooms) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollOffset > maxScroll {
		m.scrollOffset = maxScroll
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// Update handles messages
func (m MainModel) Update(msg tea.Msg) (MainModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.selectedIndex > 0 {
			m.selectedIndex--
			m.ensureVisible()
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.selectedIndex < len(m.rooms)-1 {
			m.selectedIndex++
			m.ensureVisible()
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if room := m.SelectedRoom(); room != nil {
			return m.apply(func() error {
				_, err := m.home.Toggle(room.ID)
				return err
			})
		}

	case key.Matches(keyMsg, m.keys.Dim):
		if room := m.SelectedRoom(); room != nil && room.LightIntensity > models.MinIntensity {
			return m.setLevel(room.ID, room.LightIntensity-1)
		}

	case key.Matches(keyMsg, m.keys.Brighten):
		if room := m.SelectedRoom(); room != nil && room.LightIntensity < models.MaxIntensity {
			return m.setLevel(room.ID, room.LightIntensity+1)
		}

	case key.Matches(keyMsg, m.keys.Level):
		if room := m.SelectedRoom(); room != nil {
			if level := intensityFromKey(keyMsg.String()); level >= 0 {
				return m.setLevel(room.ID, level)
			}
		}

	case key.Matches(keyMsg, m.keys.AllLights):
		return m.apply(func() error {
			_, err := m.home.ToggleAllLights()
			return err
		})

	case key.Matches(keyMsg, m.keys.Settings):
		room := m.SelectedRoom()
		if room == nil {
			return m, nil
		}
		if !m.home.WifiActive() {
			return m, noticeCmd(settingsLocked)
		}
		id := room.ID
		return m, func() tea.Msg { return messages.ShowSettingsMsg{RoomID: id} }

	case key.Matches(keyMsg, m.keys.Wifi):
		m.home.ToggleWifi()
		m.Refresh()

	case key.Matches(keyMsg, m.keys.Networks):
		return m, func() tea.Msg { return messages.ShowNetworksMsg{} }

	case key.Matches(keyMsg, m.keys.Panel):
		m.showPanel = !m.showPanel

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.ensureVisible()
	}

	return m, nil
}

func (m MainModel) setLevel(id string, level int) (MainModel, tea.Cmd) {
	return m.apply(func() error {
		_, err := m.home.SetIntensityLevel(id, level)
		return err
	})
}

// apply runs a home operation and reloads the rooms
func (m MainModel) apply(op func() error) (MainModel, tea.Cmd) {
	err := op()
	m.Refresh()
	if err != nil {
		return m, errCmd(err)
	}
	return m, nil
}

// View renders the dashboard
func (m MainModel) View() string {
	var b strings.Builder

	conn, connected := m.home.CurrentConnection()
	wifi := components.WifiStatus{Active: m.home.WifiActive()}
	if connected {
		wifi.Connection = &conn
	}
	b.WriteString(components.RenderHeader(m.width, wifi, m.home.AllLightsOn()))
	b.WriteString("\n\n")

	// Calculate content area with responsive layout
	contentWidth := m.width
	panelWidth := 0
	// Auto-hide panel on narrow terminals
	showPanelNow := m.showPanel && m.width >= 80
	if showPanelNow {
		panelWidth = m.width * 35 / 100
		if panelWidth < 34 {
			panelWidth = 34
		}
		if panelWidth > 48 {
			panelWidth = 48
		}
		contentWidth = m.width - panelWidth - 3
	}

	var content strings.Builder
	visible := m.visibleLines()
	endIdx := m.scrollOffset + visible
	if endIdx > len(m.rooms) {
		endIdx = len(m.rooms)
	}

	if m.scrollOffset > 0 {
		content.WriteString(styles.StyleTextMuted.Render(fmt.Sprintf("  ↑ %d more above", m.scrollOffset)))
		content.WriteString("\n")
	}

	for idx := m.scrollOffset; idx < endIdx; idx++ {
		room := m.rooms[idx]
		_, onArmed := m.home.PendingAlarm(room.ID, models.EdgeOn)
		_, offArmed := m.home.PendingAlarm(room.ID, models.EdgeOff)
		content.WriteString(components.RenderRoomRow(room, components.RoomRowOptions{
			Selected:  idx == m.selectedIndex,
			Width:     contentWidth,
			Scheduled: onArmed || offArmed,
		}))
		content.WriteString("\n")
	}

	if endIdx < len(m.rooms) {
		content.WriteString(styles.StyleTextMuted.Render(fmt.Sprintf("  ↓ %d more below", len(m.rooms)-endIdx)))
		content.WriteString("\n")
	}

	if len(m.rooms) == 0 {
		content.WriteString(styles.StyleTextMuted.Render("  No rooms configured"))
		content.WriteString("\n")
	}

	contentHeight := m.height - 5
	if m.help.ShowAll {
		contentHeight -= 3
	}
	if contentHeight < 3 {
		contentHeight = 3
	}
	contentStyle := lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight)

	if showPanelNow {
		panel := m.renderPanel(panelWidth)
		contentStyle = contentStyle.Width(contentWidth)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, contentStyle.Render(content.String()), "  ", panel))
	} else {
		b.WriteString(contentStyle.Render(content.String()))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m MainModel) renderPanel(panelWidth int) string {
	room := m.SelectedRoom()
	if room == nil {
		return styles.StyleSidePanel.Width(panelWidth - 4).Render(styles.StyleTextMuted.Render("No room selected"))
	}

	data := components.RoomPanelData{Room: room, Width: panelWidth}
	if alarm, ok := m.home.PendingAlarm(room.ID, models.EdgeOn); ok {
		data.AutoOn = &alarm
	}
	if alarm, ok := m.home.PendingAlarm(room.ID, models.EdgeOff); ok {
		data.AutoOff = &alarm
	}
	return components.RenderRoomPanel(data)
}

func (m MainModel) renderStatusBar() string {
	roomsOn := 0
	lightsOn := 0
	totalLights := 0
	level := 0
	for _, room := range m.rooms {
		totalLights += room.NumOfLights
		if room.IsLightOn {
			roomsOn++
			lightsOn += room.NumOfLights
			level += room.LightIntensity
		}
	}

	status := fmt.Sprintf("%d/%d rooms lit • %d/%d lights on", roomsOn, len(m.rooms), lightsOn, totalLights)

	load := 0.0
	if len(m.rooms) > 0 {
		load = float64(level) / float64(len(m.rooms)*models.MaxIntensity)
	}
	if m.width >= 70 {
		return styles.StyleTextMuted.Render(status+"  ") + m.gauge.ViewAs(load)
	}
	return styles.StyleTextMuted.Render(status)
}
