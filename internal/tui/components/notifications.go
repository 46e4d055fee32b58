package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/home-tui/internal/notify"
	"github.com/angristan/home-tui/internal/tui/styles"
)

// MaxNotifications is how many toasts are stacked at once
const MaxNotifications = 4

// RenderNotifications stacks the newest notifications, right aligned
func RenderNotifications(items []notify.Notification, width int) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) > MaxNotifications {
		items = items[len(items)-MaxNotifications:]
	}

	toasts := make([]string, 0, len(items))
	for _, n := range items {
		toasts = append(toasts, styles.StyleNotification.Render(n.Message))
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, toasts...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, stack)
}
