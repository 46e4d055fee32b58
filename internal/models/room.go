package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinIntensity is the intensity of a room whose lights are off
	MinIntensity = 0
	// MaxIntensity is the brightest a room can be set
	MaxIntensity = 10
	// DefaultIntensity is applied when a room is switched on
	DefaultIntensity = 5
)

// ErrInvalidIntensity is returned for intensity values outside 0-10
var ErrInvalidIntensity = errors.New("invalid intensity")

// Room represents a named space in the house and the state of its lights
type Room struct {
	// Lower-case unique identifier
	ID string
	// User-friendly name
	Name string
	// Intensity of the room's lights (0-10)
	LightIntensity int
	// Number of fixtures in the room, informational only
	NumOfLights int
	// Calculated state: LightIntensity > 0
	IsLightOn bool
	// Automatic turn on time (nil when unset)
	AutoOn *TimeOfDay
	// Automatic turn off time (nil when unset)
	AutoOff *TimeOfDay
	// Hours of usage per weekday, Sunday first
	Usage [7]float64
}

// NormalizeID turns a user supplied room name into a registry key
func NormalizeID(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// UpdateState recalculates IsLightOn from the intensity
func (r *Room) UpdateState() {
	r.IsLightOn = r.LightIntensity > 0
}

// Toggle flips the room between on and off. Switching on applies the
// given default intensity, switching off drops the intensity to zero.
func (r *Room) Toggle(defaultIntensity int) {
	if r.IsLightOn {
		r.LightIntensity = MinIntensity
	} else {
		r.LightIntensity = clampIntensity(defaultIntensity)
		if r.LightIntensity == MinIntensity {
			r.LightIntensity = DefaultIntensity
		}
	}
	r.UpdateState()
}

// SetIntensity sets the room intensity. Zero switches the lights off,
// anything above switches them on. Values outside 0-10 leave the room untouched.
func (r *Room) SetIntensity(v int) error {
	if v < MinIntensity || v > MaxIntensity {
		return fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidIntensity, v, MinIntensity, MaxIntensity)
	}
	r.LightIntensity = v
	r.UpdateState()
	return nil
}

// Schedule returns the automation time for an edge
func (r *Room) Schedule(edge Edge) *TimeOfDay {
	if edge == EdgeOff {
		return r.AutoOff
	}
	return r.AutoOn
}

// SetSchedule stores the automation time for an edge
func (r *Room) SetSchedule(edge Edge, tod TimeOfDay) {
	if edge == EdgeOff {
		r.AutoOff = &tod
		return
	}
	r.AutoOn = &tod
}

// IntensityPct returns the intensity as a percentage (0-100)
func (r *Room) IntensityPct() int {
	return r.LightIntensity * 100 / MaxIntensity
}

// TotalUsage returns the hours of usage over the week
func (r *Room) TotalUsage() float64 {
	var total float64
	for _, h := range r.Usage {
		total += h
	}
	return total
}

// Clone creates a deep copy of the room
func (r *Room) Clone() *Room {
	clone := *r
	if r.AutoOn != nil {
		on := *r.AutoOn
		clone.AutoOn = &on
	}
	if r.AutoOff != nil {
		off := *r.AutoOff
		clone.AutoOff = &off
	}
	return &clone
}

// DisplayName returns the name with its first letter capitalised
func (r *Room) DisplayName() string {
	name := r.Name
	if name == "" {
		name = r.ID
	}
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func clampIntensity(v int) int {
	if v < MinIntensity {
		return MinIntensity
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return v
}
