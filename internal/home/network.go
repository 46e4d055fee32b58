package home

import (
	"errors"
	"fmt"

	"github.com/angristan/home-tui/internal/events"
	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/wifi"
)

// WifiActive reports whether WiFi is on
func (h *Home) WifiActive() bool {
	return h.gate.IsActive()
}

// CurrentConnection returns the joined access point
func (h *Home) CurrentConnection() (models.Connection, bool) {
	return h.gate.Current()
}

// Connections lists the visible access points
func (h *Home) Connections() []models.Connection {
	return h.network.Connections()
}

// ToggleWifi flips WiFi. Pending alarms stay armed either way.
func (h *Home) ToggleWifi() bool {
	active := h.gate.Toggle()

	h.notify("WiFi turned " + onOff(active))
	if !active {
		h.notify("Light control disabled: No WiFi connection")
	}
	h.logger.Info("wifi toggled", "active", active)
	h.publishWifi()
	return active
}

// SetWifi forces WiFi on or off and reports whether the state changed
func (h *Home) SetWifi(active bool) bool {
	if !h.gate.SetActive(active) {
		return false
	}

	h.notify("WiFi turned " + onOff(active))
	if !active {
		h.notify("Light control disabled: No WiFi connection")
	}
	h.logger.Info("wifi set", "active", active)
	h.publishWifi()
	return true
}

// Connect joins the access point with the given ID
func (h *Home) Connect(id int) error {
	conn, ok := h.network.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %d", wifi.ErrUnknownNetwork, id)
	}

	err := h.network.Connect(conn)
	switch {
	case errors.Is(err, wifi.ErrWifiOff):
		h.notify("Cannot connect: WiFi is turned off")
		return err
	case errors.Is(err, wifi.ErrPoorSignal):
		h.notify("Cannot connect to " + conn.Name + ": Signal too weak")
		return err
	case err != nil:
		return err
	}

	h.notify("Connected to " + conn.Name)
	h.publishWifi()
	return nil
}

// Reselect hops to another random access point
func (h *Home) Reselect() (models.Connection, bool) {
	conn, ok := h.network.Randomize()
	if ok {
		h.notify("Connected to " + conn.Name)
		h.publishWifi()
	}
	return conn, ok
}

func (h *Home) publishWifi() {
	p := events.WifiPayload{Active: h.gate.IsActive()}
	if conn, ok := h.gate.Current(); ok {
		p.Connection = conn.Name
	}
	h.bus.Emit(events.WifiChanged, p)
}
