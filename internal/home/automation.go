package home

import (
	"fmt"
	"strings"

	"github.com/angristan/home-tui/internal/automation"
	"github.com/angristan/home-tui/internal/events"
	"github.com/angristan/home-tui/internal/models"
)

// Schedule stores the room's automatic on/off time and arms its alarm.
// raw is the "HH:MM" string from the time input.
func (h *Home) Schedule(id string, edge models.Edge, raw string) (automation.Alarm, error) {
	if !edge.Valid() {
		return automation.Alarm{}, fmt.Errorf("%w: %d", ErrInvalidEdge, edge)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return automation.Alarm{}, fmt.Errorf("%w: empty", ErrInvalidTime)
	}
	tod, err := models.ParseTimeOfDay(raw)
	if err != nil {
		return automation.Alarm{}, err
	}

	current, err := h.rooms.Get(id)
	if err != nil {
		return automation.Alarm{}, err
	}

	// Arm before storing so a failed arm leaves the room untouched
	alarm, err := h.scheduler.Schedule(current.ID, edge, tod)
	if err != nil {
		return automation.Alarm{}, fmt.Errorf("arm %s for %s: %w", edge, current.ID, err)
	}

	room, err := h.rooms.Update(current.ID, func(r *models.Room) error {
		r.SetSchedule(edge, tod)
		return nil
	})
	if err != nil {
		h.scheduler.Cancel(current.ID, edge)
		return automation.Alarm{}, err
	}

	h.notify(fmt.Sprintf("%s light scheduled to turn %s at %s", room.DisplayName(), edge, tod))
	h.publishAlarm(events.AlarmArmed, alarm)
	return alarm, nil
}

// ScheduleDefaults arms both alarms of every room from its stored times
func (h *Home) ScheduleDefaults() ([]automation.Alarm, error) {
	var alarms []automation.Alarm
	for _, room := range h.rooms.List() {
		for _, edge := range []models.Edge{models.EdgeOn, models.EdgeOff} {
			tod := room.Schedule(edge)
			if tod == nil {
				continue
			}
			alarm, err := h.scheduler.Schedule(room.ID, edge, *tod)
			if err != nil {
				return alarms, fmt.Errorf("arm %s for %s: %w", edge, room.ID, err)
			}
			h.publishAlarm(events.AlarmArmed, alarm)
			alarms = append(alarms, alarm)
		}
	}
	return alarms, nil
}

// CancelSchedule disarms a pending alarm. The stored time is kept.
func (h *Home) CancelSchedule(id string, edge models.Edge) (bool, error) {
	if !edge.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidEdge, edge)
	}
	room, err := h.rooms.Get(id)
	if err != nil {
		return false, err
	}

	alarm, ok := h.scheduler.Lookup(room.ID, edge)
	if !ok || !h.scheduler.Cancel(room.ID, edge) {
		return false, nil
	}

	h.notify(fmt.Sprintf("%s light will no longer turn %s at %s", room.DisplayName(), edge, alarm.Time))
	h.publishAlarm(events.AlarmCancelled, alarm)
	return true, nil
}

// PendingAlarm returns the armed alarm for a room edge
func (h *Home) PendingAlarm(id string, edge models.Edge) (automation.Alarm, bool) {
	return h.scheduler.Lookup(models.NormalizeID(id), edge)
}

// PendingAlarms lists every armed alarm by fire time
func (h *Home) PendingAlarms() []automation.Alarm {
	return h.scheduler.Pending()
}

// fire runs on the scheduler's timer goroutine. Automation does not go
// through the WiFi gate.
func (h *Home) fire(alarm automation.Alarm) {
	changed := false
	room, err := h.rooms.Update(alarm.RoomID, func(r *models.Room) error {
		if r.IsLightOn != alarm.Edge.Target() {
			r.Toggle(h.defaultIntensity)
			changed = true
		}
		return nil
	})
	if err != nil {
		h.logger.Warn("alarm for missing room", "room", alarm.RoomID, "alarm_id", alarm.ID, "error", err)
		return
	}

	h.publishAlarm(events.AlarmFired, alarm)
	if !changed {
		h.logger.Debug("alarm fired with room already in target state", "room", room.ID, "edge", alarm.Edge)
		return
	}

	h.notify(fmt.Sprintf("%s light turned %s", room.DisplayName(), onOff(room.IsLightOn)))
	h.publishRoom(room, SourceAutomation)
}

func (h *Home) publishAlarm(t events.EventType, alarm automation.Alarm) {
	h.bus.Emit(t, events.AlarmPayload{
		AlarmID: alarm.ID,
		RoomID:  alarm.RoomID,
		Edge:    alarm.Edge.String(),
		Time:    alarm.Time.String(),
		At:      alarm.At,
	})
}
