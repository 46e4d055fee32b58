package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/angristan/home-tui/internal/automation"
	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/tui/messages"
)

// Home is the part of the home controller the screens drive
type Home interface {
	Rooms() []*models.Room
	AllLightsOn() bool
	Toggle(id string) (*models.Room, error)
	SetIntensityLevel(id string, v int) (*models.Room, error)
	ToggleAllLights() ([]*models.Room, error)

	Schedule(id string, edge models.Edge, raw string) (automation.Alarm, error)
	CancelSchedule(id string, edge models.Edge) (bool, error)
	PendingAlarm(id string, edge models.Edge) (automation.Alarm, bool)

	WifiActive() bool
	CurrentConnection() (models.Connection, bool)
	Connections() []models.Connection
	ToggleWifi() bool
	Connect(id int) error
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg { return messages.ErrorMsg{Err: err} }
}

func noticeCmd(text string) tea.Cmd {
	return func() tea.Msg { return messages.NoticeMsg{Text: text} }
}
