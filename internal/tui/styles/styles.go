package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette: warm lamp light on a dusk background
var (
	ColorPrimary   = lipgloss.Color("#F6AD55") // Amber
	ColorSecondary = lipgloss.Color("#DD6B20") // Burnt orange
	ColorSurface   = lipgloss.Color("#2A2438") // Dusk
	ColorTrack     = lipgloss.Color("#3F3A50") // Empty bar track

	ColorText      = lipgloss.Color("#F7FAFC")
	ColorTextMuted = lipgloss.Color("#A0AEC0")
	ColorTextDim   = lipgloss.Color("#718096")
	ColorTextDark  = lipgloss.Color("#1A202C")

	ColorSuccess = lipgloss.Color("#68D391")
	ColorWarning = lipgloss.Color("#F6E05E")
	ColorError   = lipgloss.Color("#FC8181")

	ColorLightOn  = lipgloss.Color("#FBD38D") // Lamp glow
	ColorLightOff = lipgloss.Color("#4A5568")

	// One shade per intensity step, dim ember to full lamp
	intensityShades = [...]lipgloss.Color{
		"#4A2C1A", "#5C3520", "#733F22", "#8A4A24", "#A35A28",
		"#BC6C2E", "#D07F35", "#E2953F", "#F0AD4E", "#FBD38D",
	}
)

var (
	StyleHeaderGradient = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorTextDark).
				Background(ColorPrimary).
				Padding(0, 2)

	StyleRoomNameDim = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	StyleSelected = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	StyleStatusOn = lipgloss.NewStyle().
			Foreground(ColorLightOn).
			Bold(true)

	StyleStatusOff = lipgloss.NewStyle().
			Foreground(ColorLightOff)

	StyleIntensityBarEmpty = lipgloss.NewStyle().
				Foreground(ColorTrack)

	// Modals (settings, networks)
	StyleModal = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2)

	StyleModalTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	StyleInput = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorTrack).
			Padding(0, 1)

	StyleInputFocused = StyleInput.
				BorderForeground(ColorPrimary)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	StyleHelpKey = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	StyleSidePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2)

	StyleListItem = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	StyleListItemSelected = lipgloss.NewStyle().
				Foreground(ColorTextDark).
				Background(ColorPrimary).
				Padding(0, 1)

	// Toasts stacked at the bottom right
	StyleNotification = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorSurface).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	StyleSpinner = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	StyleTextMuted = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StylePrimary = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// GetIntensityColor returns the shade of bar segment (1-10) for a room at
// intensity. Segments above the intensity are empty track.
func GetIntensityColor(segment int, intensity int) lipgloss.Color {
	if segment < 1 || segment > len(intensityShades) || intensity < segment {
		return ColorTrack
	}
	return intensityShades[segment-1]
}
