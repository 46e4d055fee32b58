package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/tui/styles"
)

// RenderIntensityBar renders a room intensity (0-10) as a bar of width cells
func RenderIntensityBar(intensity int, on bool, width int) string {
	if width <= 0 {
		width = models.MaxIntensity
	}
	if !on || intensity <= 0 {
		return styles.StyleIntensityBarEmpty.Render(strings.Repeat("─", width))
	}

	filled := (intensity * width) / models.MaxIntensity
	if filled == 0 {
		filled = 1
	}

	var b strings.Builder
	for i := 1; i <= width; i++ {
		if i > filled {
			b.WriteString(styles.StyleIntensityBarEmpty.Render("─"))
			continue
		}
		color := styles.GetIntensityColor(segmentLevel(i, width), intensity)
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render("█"))
	}
	return b.String()
}

// segmentLevel maps a bar cell to the 1-10 intensity scale
func segmentLevel(segment, total int) int {
	level := (segment * models.MaxIntensity) / total
	if level < 1 {
		level = 1
	}
	if level > models.MaxIntensity {
		level = models.MaxIntensity
	}
	return level
}
