// Package home is the controller every front end talks to. It checks the
// WiFi gate, applies the light transition through the registry, arms the
// automation scheduler and reports the outcome to the notifier and the
// event bus.
package home

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/angristan/home-tui/internal/automation"
	"github.com/angristan/home-tui/internal/events"
	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/registry"
	"github.com/angristan/home-tui/internal/wifi"
)

// Event sources
const (
	SourceUser       = "user"
	SourceAutomation = "automation"
)

// Notifier displays a short message to the user
type Notifier interface {
	Notify(message string)
}

type discardNotifier struct{}

func (discardNotifier) Notify(string) {}

// Options wire the collaborators of a Home. Nil fields get defaults.
type Options struct {
	Registry         *registry.Registry
	Network          *wifi.Network
	Notifier         Notifier
	Bus              *events.Bus
	Clock            automation.Clock
	Daily            bool
	DefaultIntensity int
	Logger           *slog.Logger
}

// Home owns the state of the house for the lifetime of the process
type Home struct {
	rooms     *registry.Registry
	network   *wifi.Network
	gate      *wifi.Gate
	scheduler *automation.Scheduler
	notifier  Notifier
	bus       *events.Bus
	logger    *slog.Logger

	defaultIntensity int

	// allOn is the state of the general light switch
	allOn bool
	mu    sync.Mutex
}

// New creates a Home
func New(opts Options) *Home {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = registry.NewDefault()
	}
	if opts.Network == nil {
		opts.Network = wifi.NewNetwork(wifi.NewGate(true), wifi.DefaultConnections(), opts.Logger)
	}
	if opts.Notifier == nil {
		opts.Notifier = discardNotifier{}
	}
	if opts.Bus == nil {
		opts.Bus = events.NewBus()
	}
	if opts.DefaultIntensity <= models.MinIntensity || opts.DefaultIntensity > models.MaxIntensity {
		opts.DefaultIntensity = models.DefaultIntensity
	}

	h := &Home{
		rooms:            opts.Registry,
		network:          opts.Network,
		gate:             opts.Network.Gate(),
		notifier:         opts.Notifier,
		bus:              opts.Bus,
		logger:           opts.Logger.With("component", "home"),
		defaultIntensity: opts.DefaultIntensity,
	}
	h.scheduler = automation.NewScheduler(h.fire, automation.Options{
		Clock:  opts.Clock,
		Daily:  opts.Daily,
		Logger: opts.Logger,
	})
	return h
}

// Close disarms every pending alarm
func (h *Home) Close() {
	h.scheduler.Stop()
}

// Bus returns the event bus state changes are published on
func (h *Home) Bus() *events.Bus {
	return h.bus
}

// Rooms returns a snapshot of every room in seed order
func (h *Home) Rooms() []*models.Room {
	return h.rooms.List()
}

// Room returns a snapshot of a single room
func (h *Home) Room(id string) (*models.Room, error) {
	return h.rooms.Get(id)
}

// AllLightsOn reports the state of the general light switch
func (h *Home) AllLightsOn() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.allOn
}

// Toggle flips a room's light
func (h *Home) Toggle(id string) (*models.Room, error) {
	if err := h.checkGate(); err != nil {
		return nil, err
	}

	room, err := h.rooms.Update(id, func(r *models.Room) error {
		r.Toggle(h.defaultIntensity)
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.notify(fmt.Sprintf("%s light turned %s", room.DisplayName(), onOff(room.IsLightOn)))
	h.publishRoom(room, SourceUser)
	return room, nil
}

// SetIntensity parses raw user input and applies it as the room's intensity
func (h *Home) SetIntensity(id, raw string) (*models.Room, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidIntensity, raw)
	}
	return h.SetIntensityLevel(id, v)
}

// SetIntensityLevel sets a room's intensity; 0 turns the light off
func (h *Home) SetIntensityLevel(id string, v int) (*models.Room, error) {
	if err := h.checkGate(); err != nil {
		return nil, err
	}

	room, err := h.rooms.Update(id, func(r *models.Room) error {
		return r.SetIntensity(v)
	})
	if err != nil {
		return nil, err
	}

	h.logger.Debug("intensity changed", "room", room.ID, "intensity", room.LightIntensity)
	h.publishRoom(room, SourceUser)
	return room, nil
}

// SetAllLights drives every room to the target state. Rooms already there
// are left alone, so calling it twice has no further effect.
func (h *Home) SetAllLights(on bool) ([]*models.Room, error) {
	if err := h.checkGate(); err != nil {
		return nil, err
	}

	changed := h.rooms.UpdateAll(func(r *models.Room) bool {
		if r.IsLightOn == on {
			return false
		}
		r.Toggle(h.defaultIntensity)
		return true
	})

	h.mu.Lock()
	h.allOn = on
	h.mu.Unlock()

	h.notify(fmt.Sprintf("All lights turned %s", onOff(on)))
	for _, room := range changed {
		h.publishRoom(room, SourceUser)
	}
	return changed, nil
}

// ToggleAllLights flips the general light switch
func (h *Home) ToggleAllLights() ([]*models.Room, error) {
	return h.SetAllLights(!h.AllLightsOn())
}

func (h *Home) checkGate() error {
	if err := h.gate.Check(); err != nil {
		h.notify("Cannot control lights: WiFi is not active")
		return err
	}
	return nil
}

func (h *Home) notify(message string) {
	h.notifier.Notify(message)
}

func (h *Home) publishRoom(room *models.Room, source string) {
	h.bus.Emit(events.RoomChanged, events.RoomPayload{
		RoomID:    room.ID,
		On:        room.IsLightOn,
		Intensity: room.LightIntensity,
		Source:    source,
	})
}

// RunWifi keeps hopping between access points until ctx is done
func (h *Home) RunWifi(ctx context.Context, interval time.Duration) {
	h.network.Run(ctx, interval, func(conn models.Connection) {
		h.notify("Connected to " + conn.Name)
		h.publishWifi()
	})
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
