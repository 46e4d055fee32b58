package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/notify"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hall", 6, "hall  "},
		{"walkway & corridor", 8, "walkway…"},
		{"kitchen", 7, "kitchen"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestIntensityBarWidth(t *testing.T) {
	for _, intensity := range []int{0, 1, 5, 10} {
		bar := RenderIntensityBar(intensity, intensity > 0, 20)
		if w := lipgloss.Width(bar); w != 20 {
			t.Errorf("intensity %d: width %d, want 20", intensity, w)
		}
	}

	full := RenderIntensityBar(10, true, 10)
	if strings.Contains(full, "─") {
		t.Error("Full intensity should leave no empty track")
	}
	off := RenderIntensityBar(7, false, 10)
	if strings.Contains(off, "█") {
		t.Error("A room that is off should draw an empty bar")
	}
}

func TestSignalBars(t *testing.T) {
	if got := SignalBars(models.SignalExcellent); got != "▂▄▆█" {
		t.Errorf("excellent = %q", got)
	}
	if got := SignalBars(models.SignalPoor); strings.Count(got, " ") != 3 {
		t.Errorf("poor should light a single bar, got %q", got)
	}
}

func TestRoomRowMarksAlarm(t *testing.T) {
	room := &models.Room{ID: "hall", Name: "hall", LightIntensity: 5, IsLightOn: true}

	row := RenderRoomRow(room, RoomRowOptions{Selected: true, Width: 80, Scheduled: true})
	if !strings.Contains(row, "Hall") || !strings.Contains(row, "⏰") {
		t.Errorf("Unexpected row %q", row)
	}
	if !strings.Contains(row, " 5/10") {
		t.Errorf("Row should show the intensity, got %q", row)
	}
}

func TestNotificationsKeepNewest(t *testing.T) {
	var items []notify.Notification
	for _, msg := range []string{"one", "two", "three", "four", "five"} {
		items = append(items, notify.Notification{Message: msg})
	}

	out := RenderNotifications(items, 60)
	if strings.Contains(out, "one") {
		t.Error("Oldest notification should be dropped")
	}
	if !strings.Contains(out, "five") {
		t.Error("Newest notification should be shown")
	}
	if RenderNotifications(nil, 60) != "" {
		t.Error("No notifications should render nothing")
	}
}
