package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is returned when a time of day cannot be parsed
var ErrInvalidTime = errors.New("invalid time of day")

// ErrInvalidEdge is returned when an edge name is not recognised
var ErrInvalidEdge = errors.New("invalid edge")

// Edge is the direction of an automatic transition
type Edge int

const (
	EdgeOn Edge = iota
	EdgeOff
)

// String returns the edge name used in messages
func (e Edge) String() string {
	if e == EdgeOff {
		return "off"
	}
	return "on"
}

// Valid reports whether e is EdgeOn or EdgeOff
func (e Edge) Valid() bool {
	return e == EdgeOn || e == EdgeOff
}

// Target reports whether the edge leaves the lights on
func (e Edge) Target() bool {
	return e == EdgeOn
}

// ParseEdge parses "on" or "off"
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on":
		return EdgeOn, nil
	case "off":
		return EdgeOff, nil
	}
	return EdgeOn, fmt.Errorf("%w: %q", ErrInvalidEdge, s)
}

// TimeOfDay is a wall-clock hour and minute
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a 24-hour "HH:MM" string
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeOfDay{}, fmt.Errorf("%w: empty", ErrInvalidTime)
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 || len(mm) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// MustParseTimeOfDay is ParseTimeOfDay for constant seed data
func MustParseTimeOfDay(s string) TimeOfDay {
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return tod
}

// String formats the time as "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On returns the instant at this time of day on the date of ref, seconds truncated
func (t TimeOfDay) On(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, ref.Location())
}

// Next returns the next instant at this time of day that is not before now.
// A time that has already passed today rolls over to tomorrow.
func (t TimeOfDay) Next(now time.Time) time.Time {
	target := t.On(now)
	if target.Before(now) {
		target = t.On(now.AddDate(0, 0, 1))
	}
	return target
}

// MarshalText implements encoding.TextMarshaler
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
