package screens

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the dashboard
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Dim       key.Binding
	Brighten  key.Binding
	Toggle    key.Binding
	Level     key.Binding
	AllLights key.Binding
	Settings  key.Binding
	Wifi      key.Binding
	Networks  key.Binding
	Panel     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the dashboard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Dim: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "dim"),
		),
		Brighten: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "brighten"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle"),
		),
		Level: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "intensity"),
		),
		AllLights: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all lights"),
		),
		Settings: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", "schedule"),
		),
		Wifi: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "wifi"),
		),
		Networks: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "networks"),
		),
		Panel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "panel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Dim, k.Brighten, k.Settings, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Dim, k.Brighten, k.Level},
		{k.AllLights, k.Settings, k.Wifi, k.Networks},
		{k.Panel, k.Help, k.Quit},
	}
}

// intensityFromKey maps a digit key to an intensity, 0 meaning full
func intensityFromKey(k string) int {
	if len(k) != 1 || k[0] < '0' || k[0] > '9' {
		return -1
	}
	if k[0] == '0' {
		return 10
	}
	return int(k[0] - '0')
}
