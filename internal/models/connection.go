package models

// Signal is the simulated strength of a WiFi network
type Signal string

const (
	SignalExcellent Signal = "excellent"
	SignalGood      Signal = "good"
	SignalModerate  Signal = "moderate"
	SignalPoor      Signal = "poor"
)

// Bars returns the number of signal bars (1-4)
func (s Signal) Bars() int {
	switch s {
	case SignalExcellent:
		return 4
	case SignalGood:
		return 3
	case SignalModerate:
		return 2
	default:
		return 1
	}
}

// Connection represents a simulated WiFi network
type Connection struct {
	ID     int
	Name   string
	Signal Signal
}

// Usable reports whether the network can be joined
func (c Connection) Usable() bool {
	return c.Signal != SignalPoor
}
