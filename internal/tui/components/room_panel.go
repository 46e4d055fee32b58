package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/home-tui/internal/automation"
	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/tui/styles"
)

var weekdays = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// RoomPanelData is everything the side panel shows for a room
type RoomPanelData struct {
	Room    *models.Room
	AutoOn  *automation.Alarm
	AutoOff *automation.Alarm
	Width   int
}

// RenderRoomPanel renders the details panel of the selected room
func RenderRoomPanel(d RoomPanelData) string {
	room := d.Room
	inner := d.Width - 6
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder

	b.WriteString(styles.StyleSelected.Render(room.DisplayName()))
	b.WriteString("\n\n")

	if room.IsLightOn {
		b.WriteString(styles.StyleStatusOn.Render("● On"))
	} else {
		b.WriteString(styles.StyleStatusOff.Render("○ Off"))
	}
	b.WriteString(styles.StyleTextMuted.Render(fmt.Sprintf("  %d lights", room.NumOfLights)))
	b.WriteString("\n\n")

	b.WriteString(styles.StyleTextMuted.Render("Intensity: "))
	b.WriteString(fmt.Sprintf("%d/10 (%d%%)\n", room.LightIntensity, room.IntensityPct()))
	barWidth := inner
	if barWidth > 25 {
		barWidth = 25
	}
	b.WriteString(RenderIntensityBar(room.LightIntensity, room.IsLightOn, barWidth))
	b.WriteString("\n\n")

	if room.IsLightOn {
		glow := models.GlowFor(room)
		b.WriteString(styles.StyleTextMuted.Render("Glow: "))
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(glow.HexString())).Render("    "))
		b.WriteString("\n\n")
	}

	b.WriteString(renderSchedule("Auto on ", room.AutoOn, d.AutoOn))
	b.WriteString(renderSchedule("Auto off", room.AutoOff, d.AutoOff))
	b.WriteString("\n")

	b.WriteString(styles.StyleTextMuted.Render(fmt.Sprintf("Usage this week: %.0fh", room.TotalUsage())))
	b.WriteString("\n")
	b.WriteString(RenderUsageChart(room.Usage, 5))

	b.WriteString("\n\n")
	b.WriteString(styles.StyleTextMuted.Render("←→ dim • space toggle • enter settings"))

	return styles.StyleSidePanel.Width(d.Width - 4).Render(b.String())
}

func renderSchedule(label string, stored *models.TimeOfDay, alarm *automation.Alarm) string {
	value := "--:--"
	if stored != nil {
		value = stored.String()
	}
	line := styles.StyleTextMuted.Render(label+": ") + value
	if alarm != nil {
		line += styles.StylePrimary.Render(" armed " + alarm.At.Format("Mon 15:04"))
	}
	return line + "\n"
}

// RenderUsageChart renders the weekly usage as vertical bars of the given height
func RenderUsageChart(usage [7]float64, height int) string {
	peak := 0.0
	for _, h := range usage {
		if h > peak {
			peak = h
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(styles.ColorSecondary)
	today := int(time.Now().Weekday())
	todayStyle := lipgloss.NewStyle().Foreground(styles.ColorLightOn)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		for day, h := range usage {
			cell := "   "
			if peak > 0 && h/peak*float64(height) >= float64(row)-0.5 {
				cell = " █ "
			}
			if day == today {
				b.WriteString(todayStyle.Render(cell))
			} else {
				b.WriteString(barStyle.Render(cell))
			}
		}
		b.WriteString("\n")
	}
	for _, d := range weekdays {
		b.WriteString(styles.StyleTextMuted.Render(" " + d))
	}
	return b.String()
}
