package messages

import (
	"github.com/angristan/home-tui/internal/events"
)

// HomeEventMsg carries a state change published by the home controller
type HomeEventMsg struct {
	Event events.Event
}

// ErrorMsg indicates an error occurred
type ErrorMsg struct {
	Err error
}

// EnteredMsg is sent once the welcome screen is done loading
type EnteredMsg struct{}

// ShowSettingsMsg requests the automation settings of a room
type ShowSettingsMsg struct {
	RoomID string
}

// HideSettingsMsg closes the settings modal
type HideSettingsMsg struct{}

// ShowNetworksMsg requests the WiFi network list
type ShowNetworksMsg struct{}

// HideNetworksMsg closes the WiFi network list
type HideNetworksMsg struct{}

// NotificationTickMsg drives expiry of the notification stack
type NotificationTickMsg struct{}

// NoticeMsg asks the app to show a notification
type NoticeMsg struct {
	Text string
}
