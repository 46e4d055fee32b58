// Package wifi simulates the home's WiFi link. The Gate decides whether
// manual light control is allowed at all; the Network picks which access
// point the house is connected to.
package wifi

import (
	"errors"
	"sync"

	"github.com/angristan/home-tui/internal/models"
)

var (
	// ErrGateClosed is returned when a light operation is attempted with WiFi off
	ErrGateClosed = errors.New("wifi is not active")
	// ErrWifiOff is returned when connecting while WiFi is off
	ErrWifiOff = errors.New("wifi is turned off")
	// ErrPoorSignal is returned when connecting to an access point with a poor signal
	ErrPoorSignal = errors.New("signal too weak")
	// ErrUnknownNetwork is returned for an access point ID that is not visible
	ErrUnknownNetwork = errors.New("unknown network")
)

// Gate is the WiFi on/off switch plus the current connection
type Gate struct {
	active  bool
	current *models.Connection
	mu      sync.RWMutex
}

// NewGate creates a gate in the given state
func NewGate(active bool) *Gate {
	return &Gate{active: active}
}

// IsActive reports whether WiFi is on
func (g *Gate) IsActive() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.active
}

// Check returns ErrGateClosed when WiFi is off
func (g *Gate) Check() error {
	if !g.IsActive() {
		return ErrGateClosed
	}
	return nil
}

// Toggle flips WiFi and returns the new state. Turning it off drops the
// current connection.
func (g *Gate) Toggle() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.active = !g.active
	if !g.active {
		g.current = nil
	}
	return g.active
}

// SetActive forces the state and reports whether it changed
func (g *Gate) SetActive(active bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active == active {
		return false
	}
	g.active = active
	if !active {
		g.current = nil
	}
	return true
}

// Current returns the connected access point, if any
func (g *Gate) Current() (models.Connection, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.current == nil {
		return models.Connection{}, false
	}
	return *g.current, true
}

// connect must only be used once the connection has been validated
func (g *Gate) connect(conn models.Connection) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.active {
		return ErrWifiOff
	}
	g.current = &conn
	return nil
}
