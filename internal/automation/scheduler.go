// Package automation arms the automatic on/off alarms of each room.
//
// Each alarm is a single timer computed from the delta between now and the
// next occurrence of the room's time of day. There is at most one pending
// alarm per (room, edge); scheduling again replaces the previous one.
package automation

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angristan/home-tui/internal/models"
)

// ErrStopped is returned when scheduling on a stopped scheduler
var ErrStopped = errors.New("scheduler stopped")

// Alarm is a pending automatic transition
type Alarm struct {
	ID     string
	RoomID string
	Edge   models.Edge
	Time   models.TimeOfDay
	At     time.Time
}

// FireFunc is called from the timer goroutine when an alarm goes off
type FireFunc func(Alarm)

// Options configure a Scheduler
type Options struct {
	// Clock defaults to the wall clock
	Clock Clock
	// Daily re-arms every alarm for the next day after it fires
	Daily bool
	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

type alarmKey struct {
	roomID string
	edge   models.Edge
}

type entry struct {
	alarm Alarm
	timer Timer
}

// Scheduler keeps one timer per (room, edge)
type Scheduler struct {
	clock   Clock
	daily   bool
	fire    FireFunc
	logger  *slog.Logger
	alarms  map[alarmKey]*entry
	stopped bool
	mu      sync.Mutex
}

// NewScheduler creates a scheduler that calls fire for every alarm
func NewScheduler(fire FireFunc, opts Options) *Scheduler {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Scheduler{
		clock:  opts.Clock,
		daily:  opts.Daily,
		fire:   fire,
		logger: opts.Logger.With("component", "automation"),
		alarms: make(map[alarmKey]*entry),
	}
}

// Schedule arms the alarm for a room edge at the next occurrence of tod,
// cancelling any alarm already pending for that room edge
func (s *Scheduler) Schedule(roomID string, edge models.Edge, tod models.TimeOfDay) (Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !edge.Valid() {
		return Alarm{}, fmt.Errorf("%w: %d", models.ErrInvalidEdge, edge)
	}
	if s.stopped {
		return Alarm{}, ErrStopped
	}

	return s.armLocked(alarmKey{roomID: roomID, edge: edge}, tod, tod.Next(s.clock.Now())), nil
}

// armLocked must be called with s.mu held
func (s *Scheduler) armLocked(key alarmKey, tod models.TimeOfDay, at time.Time) Alarm {
	if prev, ok := s.alarms[key]; ok {
		prev.timer.Stop()
		delete(s.alarms, key)
		s.logger.Debug("alarm replaced", "room", key.roomID, "edge", key.edge, "alarm_id", prev.alarm.ID)
	}

	alarm := Alarm{
		ID:     uuid.NewString(),
		RoomID: key.roomID,
		Edge:   key.edge,
		Time:   tod,
		At:     at,
	}

	e := &entry{alarm: alarm}
	e.timer = s.clock.AfterFunc(at.Sub(s.clock.Now()), func() {
		s.trigger(key, alarm.ID)
	})
	s.alarms[key] = e

	s.logger.Info("alarm armed",
		"room", key.roomID,
		"edge", key.edge,
		"time", tod,
		"at", at,
		"alarm_id", alarm.ID,
	)
	return alarm
}

// trigger runs on the timer goroutine
func (s *Scheduler) trigger(key alarmKey, id string) {
	s.mu.Lock()
	e, ok := s.alarms[key]
	// A timer that raced with a replacement or cancel carries a stale ID
	if !ok || e.alarm.ID != id || s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.alarms, key)
	alarm := e.alarm
	if s.daily {
		s.armLocked(key, alarm.Time, alarm.Time.On(alarm.At.AddDate(0, 0, 1)))
	}
	s.mu.Unlock()

	s.logger.Info("alarm fired", "room", alarm.RoomID, "edge", alarm.Edge, "alarm_id", alarm.ID)
	if s.fire != nil {
		s.fire(alarm)
	}
}

// Cancel disarms the pending alarm for a room edge
func (s *Scheduler) Cancel(roomID string, edge models.Edge) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cancelLocked(alarmKey{roomID: roomID, edge: edge})
}

// CancelRoom disarms both alarms of a room and returns how many were pending
func (s *Scheduler) CancelRoom(roomID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, edge := range []models.Edge{models.EdgeOn, models.EdgeOff} {
		if s.cancelLocked(alarmKey{roomID: roomID, edge: edge}) {
			n++
		}
	}
	return n
}

func (s *Scheduler) cancelLocked(key alarmKey) bool {
	e, ok := s.alarms[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.alarms, key)
	s.logger.Debug("alarm cancelled", "room", key.roomID, "edge", key.edge, "alarm_id", e.alarm.ID)
	return true
}

// Pending returns the armed alarms ordered by fire time
func (s *Scheduler) Pending() []Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarms := make([]Alarm, 0, len(s.alarms))
	for _, e := range s.alarms {
		alarms = append(alarms, e.alarm)
	}
	sort.Slice(alarms, func(i, j int) bool {
		if alarms[i].At.Equal(alarms[j].At) {
			return alarms[i].RoomID < alarms[j].RoomID
		}
		return alarms[i].At.Before(alarms[j].At)
	})
	return alarms
}

// Lookup returns the pending alarm for a room edge
func (s *Scheduler) Lookup(roomID string, edge models.Edge) (Alarm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.alarms[alarmKey{roomID: roomID, edge: edge}]
	if !ok {
		return Alarm{}, false
	}
	return e.alarm, true
}

// Stop cancels every pending alarm; later Schedule calls fail with ErrStopped
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.alarms {
		s.cancelLocked(key)
	}
	s.stopped = true
}

// String describes an alarm for notifications and logs
func (a Alarm) String() string {
	return fmt.Sprintf("%s turn %s at %s", a.RoomID, a.Edge, a.Time)
}
