package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/tui/styles"
)

// WifiStatus is what the header shows on its right side
type WifiStatus struct {
	Active     bool
	Connection *models.Connection
}

// RenderHeader renders the application header
func RenderHeader(width int, wifi WifiStatus, allOn bool) string {
	title := " Home "

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.ColorText).
		Background(styles.ColorPrimary).
		Padding(0, 1)

	switchStyle := lipgloss.NewStyle().Padding(0, 1)
	switchLabel := "○ all off"
	if allOn {
		switchLabel = "● all on"
		switchStyle = switchStyle.Foreground(styles.ColorLightOn)
	} else {
		switchStyle = switchStyle.Foreground(styles.ColorTextMuted)
	}

	statusStyle := lipgloss.NewStyle().
		Foreground(styles.ColorSuccess).
		Padding(0, 1)

	var status string
	switch {
	case !wifi.Active:
		status = "✗ WiFi off"
		statusStyle = statusStyle.Foreground(styles.ColorError)
	case wifi.Connection == nil:
		status = "WiFi connections available"
		statusStyle = statusStyle.Foreground(styles.ColorWarning)
	default:
		status = SignalBars(wifi.Connection.Signal) + " " + wifi.Connection.Name
	}

	left := titleStyle.Render(title) + switchStyle.Render(switchLabel)
	right := statusStyle.Render(status)

	// Calculate spacing
	spacing := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}

	headerBg := lipgloss.NewStyle().
		Background(styles.ColorSurface).
		Width(width)

	return headerBg.Render(left + strings.Repeat(" ", spacing) + right)
}

// SignalBars draws a 4-step signal indicator
func SignalBars(s models.Signal) string {
	bars := []string{"▂", "▄", "▆", "█"}
	var b strings.Builder
	for i, bar := range bars {
		if i < s.Bars() {
			b.WriteString(bar)
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}
