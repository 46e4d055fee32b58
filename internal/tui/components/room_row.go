package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/tui/styles"
)

// RoomRowOptions tweak how a room row is drawn
type RoomRowOptions struct {
	Selected bool
	Width    int
	// Scheduled marks rooms with an armed alarm
	Scheduled bool
}

// RenderRoomRow renders a single room as one list line
func RenderRoomRow(room *models.Room, opts RoomRowOptions) string {
	cursor := styles.StyleTextMuted.Render("  ")
	if opts.Selected {
		cursor = styles.StyleSelected.Render("> ")
	}

	icon := styles.StyleStatusOff.Render("○")
	if room.IsLightOn {
		icon = styles.StyleStatusOn.Render("●")
	}

	// Fixed parts: cursor(2) + icon(1) + space(1) + spaces(2) + space(1) + level(5) + glow(2) + alarm(2)
	available := opts.Width - 16
	barWidth := available * 35 / 100
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 20 {
		barWidth = 20
	}
	nameWidth := available - barWidth
	if nameWidth < 12 {
		nameWidth = 12
	}
	if nameWidth > 40 {
		nameWidth = 40
	}

	nameStyle := styles.StyleRoomNameDim
	if room.IsLightOn {
		nameStyle = lipgloss.NewStyle().Foreground(styles.ColorText)
	}
	if opts.Selected {
		nameStyle = styles.StyleSelected
	}
	name := nameStyle.Render(Truncate(room.DisplayName(), nameWidth))

	bar := RenderIntensityBar(room.LightIntensity, room.IsLightOn, barWidth)
	level := styles.StyleTextMuted.Render(fmt.Sprintf("%2d/10", room.LightIntensity))

	glow := "  "
	if room.IsLightOn {
		glow = lipgloss.NewStyle().
			Foreground(lipgloss.Color(models.GlowFor(room).HexString())).
			Render(" ◆")
	}

	alarm := ""
	if opts.Scheduled {
		alarm = styles.StylePrimary.Render(" ⏰")
	}

	return fmt.Sprintf("%s%s %s  %s %s%s%s", cursor, icon, name, bar, level, glow, alarm)
}

// Truncate pads or cuts s to exactly maxLen runes
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s + strings.Repeat(" ", maxLen-len(r))
	}
	if maxLen < 2 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-1]) + "…"
}
