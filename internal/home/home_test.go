package home

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angristan/home-tui/internal/automation"
	"github.com/angristan/home-tui/internal/events"
	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/wifi"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.messages) == 0 {
		return ""
	}
	return n.messages[len(n.messages)-1]
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type fixture struct {
	home     *Home
	clock    *automation.ManualClock
	notifier *recordingNotifier
	events   []events.Event
	mu       sync.Mutex
}

func (f *fixture) eventsOf(t events.EventType) []events.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []events.Event
	for _, e := range f.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newFixture(t *testing.T, daily bool) *fixture {
	t.Helper()
	f := &fixture{
		clock:    automation.NewManualClock(time.Date(2026, 10, 18, 5, 0, 0, 0, time.UTC)),
		notifier: &recordingNotifier{},
	}
	bus := events.NewBus()
	bus.Subscribe(func(e events.Event) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.events = append(f.events, e)
	})
	f.home = New(Options{
		Notifier: f.notifier,
		Bus:      bus,
		Clock:    f.clock,
		Daily:    daily,
	})
	t.Cleanup(f.home.Close)
	return f
}

func TestToggleInvolution(t *testing.T) {
	f := newFixture(t, false)

	for _, before := range f.home.Rooms() {
		_, err := f.home.Toggle(before.ID)
		require.NoError(t, err)
		after, err := f.home.Toggle(before.ID)
		require.NoError(t, err)

		assert.Equal(t, before.IsLightOn, after.IsLightOn, before.ID)
		assert.Equal(t, before.LightIntensity, after.LightIntensity, before.ID)
	}
}

func TestHallScenario(t *testing.T) {
	f := newFixture(t, false)

	hall, err := f.home.Toggle("hall")
	require.NoError(t, err)
	assert.True(t, hall.IsLightOn)
	assert.Equal(t, 5, hall.LightIntensity)
	assert.Equal(t, "Hall light turned on", f.notifier.last())

	hall, err = f.home.SetIntensity("hall", "0")
	require.NoError(t, err)
	assert.False(t, hall.IsLightOn)
	assert.Equal(t, 0, hall.LightIntensity)

	changes := f.eventsOf(events.RoomChanged)
	require.Len(t, changes, 2)
	var p events.RoomPayload
	require.NoError(t, changes[1].Decode(&p))
	assert.Equal(t, events.RoomPayload{RoomID: "hall", On: false, Intensity: 0, Source: SourceUser}, p)
}

func TestSetIntensity(t *testing.T) {
	f := newFixture(t, false)

	for v := 1; v <= 10; v++ {
		room, err := f.home.SetIntensityLevel("kitchen", v)
		require.NoError(t, err)
		assert.True(t, room.IsLightOn)
		assert.Equal(t, v, room.LightIntensity)
	}

	room, err := f.home.SetIntensityLevel("kitchen", 0)
	require.NoError(t, err)
	assert.False(t, room.IsLightOn)
}

func TestSetIntensityInvalid(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.home.SetIntensity("bedroom", "3")
	require.NoError(t, err)

	for _, raw := range []string{"", "abc", "3.5", "11", "-1"} {
		_, err := f.home.SetIntensity("bedroom", raw)
		assert.ErrorIs(t, err, ErrInvalidIntensity, "input %q", raw)
	}

	room, err := f.home.Room("bedroom")
	require.NoError(t, err)
	assert.Equal(t, 3, room.LightIntensity, "invalid input must not mutate")
}

func TestUnknownRoom(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.home.Toggle("attic")
	assert.ErrorIs(t, err, ErrUnknownRoom)
	_, err = f.home.Schedule("attic", models.EdgeOn, "05:30")
	assert.ErrorIs(t, err, ErrUnknownRoom)
	_, err = f.home.CancelSchedule("attic", models.EdgeOn)
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestSetAllLightsIdempotent(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.home.SetIntensityLevel("bathroom", 8)
	require.NoError(t, err)

	changed, err := f.home.SetAllLights(true)
	require.NoError(t, err)
	assert.Len(t, changed, 6)
	assert.True(t, f.home.AllLightsOn())
	assert.Equal(t, "All lights turned on", f.notifier.last())

	snapshot := f.home.Rooms()
	changed, err = f.home.SetAllLights(true)
	require.NoError(t, err)
	assert.Empty(t, changed)
	assert.Equal(t, snapshot, f.home.Rooms())

	bathroom, err := f.home.Room("bathroom")
	require.NoError(t, err)
	assert.Equal(t, 8, bathroom.LightIntensity, "rooms already on keep their intensity")

	changed, err = f.home.ToggleAllLights()
	require.NoError(t, err)
	assert.Len(t, changed, 7)
	for _, room := range f.home.Rooms() {
		assert.False(t, room.IsLightOn)
	}
}

func TestGateClosedBlocksLightControl(t *testing.T) {
	f := newFixture(t, false)

	assert.False(t, f.home.ToggleWifi())
	assert.Equal(t, []string{"WiFi turned off", "Light control disabled: No WiFi connection"}, f.notifier.all())

	before := f.home.Rooms()

	_, err := f.home.Toggle("hall")
	assert.ErrorIs(t, err, ErrGateClosed)
	assert.Equal(t, "Cannot control lights: WiFi is not active", f.notifier.last())

	_, err = f.home.SetIntensity("hall", "7")
	assert.ErrorIs(t, err, ErrGateClosed)

	_, err = f.home.SetAllLights(true)
	assert.ErrorIs(t, err, ErrGateClosed)
	assert.False(t, f.home.AllLightsOn())

	assert.Equal(t, before, f.home.Rooms())
	assert.Empty(t, f.eventsOf(events.RoomChanged))
}

func TestScheduleFiresOnce(t *testing.T) {
	f := newFixture(t, false)

	first, err := f.home.Schedule("hall", models.EdgeOn, "05:30")
	require.NoError(t, err)
	assert.Equal(t, "Hall light scheduled to turn on at 05:30", f.notifier.last())

	second, err := f.home.Schedule("Hall", models.EdgeOn, " 05:30 ")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, f.home.PendingAlarms(), 1)

	room, err := f.home.Room("hall")
	require.NoError(t, err)
	assert.Equal(t, "05:30", room.AutoOn.String())

	f.clock.Advance(time.Hour)

	assert.Len(t, f.eventsOf(events.AlarmFired), 1)
	changes := f.eventsOf(events.RoomChanged)
	require.Len(t, changes, 1)
	var p events.RoomPayload
	require.NoError(t, changes[0].Decode(&p))
	assert.Equal(t, SourceAutomation, p.Source)
	assert.True(t, p.On)

	hall, err := f.home.Room("hall")
	require.NoError(t, err)
	assert.True(t, hall.IsLightOn)
	assert.Equal(t, 5, hall.LightIntensity)
}

func TestScheduleOffEdge(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.home.SetIntensityLevel("kitchen", 9)
	require.NoError(t, err)

	_, err = f.home.Schedule("kitchen", models.EdgeOff, "05:45")
	require.NoError(t, err)
	assert.Equal(t, "Kitchen light scheduled to turn off at 05:45", f.notifier.last())

	f.clock.Advance(time.Hour)
	kitchen, err := f.home.Room("kitchen")
	require.NoError(t, err)
	assert.False(t, kitchen.IsLightOn)
	assert.Equal(t, "Kitchen light turned off", f.notifier.last())
}

func TestAlarmOnRoomAlreadyInTargetState(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.home.Schedule("bedroom", models.EdgeOff, "05:30")
	require.NoError(t, err)
	f.clock.Advance(time.Hour)

	bedroom, err := f.home.Room("bedroom")
	require.NoError(t, err)
	assert.False(t, bedroom.IsLightOn, "off edge must not switch an unlit room on")
	assert.Len(t, f.eventsOf(events.AlarmFired), 1)
	assert.Empty(t, f.eventsOf(events.RoomChanged))
}

func TestAutomationBypassesGate(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.home.Schedule("hall", models.EdgeOn, "05:30")
	require.NoError(t, err)
	f.home.ToggleWifi()

	f.clock.Advance(time.Hour)

	hall, err := f.home.Room("hall")
	require.NoError(t, err)
	assert.True(t, hall.IsLightOn)
}

func TestScheduleInvalidTime(t *testing.T) {
	f := newFixture(t, false)

	for _, raw := range []string{"", "   ", "25:00", "5:3", "noon"} {
		_, err := f.home.Schedule("hall", models.EdgeOn, raw)
		assert.ErrorIs(t, err, ErrInvalidTime, "input %q", raw)
	}
	assert.Empty(t, f.home.PendingAlarms())

	hall, err := f.home.Room("hall")
	require.NoError(t, err)
	assert.Equal(t, "06:30", hall.AutoOn.String())
}

func TestCancelSchedule(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.home.Schedule("hall", models.EdgeOn, "05:30")
	require.NoError(t, err)

	ok, err := f.home.CancelSchedule("hall", models.EdgeOn)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, f.eventsOf(events.AlarmCancelled), 1)

	ok, err = f.home.CancelSchedule("hall", models.EdgeOn)
	require.NoError(t, err)
	assert.False(t, ok)

	f.clock.Advance(time.Hour)
	assert.Empty(t, f.eventsOf(events.AlarmFired))
}

func TestScheduleRejectsUnknownEdge(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.home.Schedule("hall", models.EdgeOn, "05:30")
	require.NoError(t, err)
	before := f.notifier.all()

	_, err = f.home.Schedule("hall", models.Edge(2), "05:45")
	assert.ErrorIs(t, err, ErrInvalidEdge)
	_, err = f.home.CancelSchedule("hall", models.Edge(2))
	assert.ErrorIs(t, err, ErrInvalidEdge)

	assert.Len(t, f.home.PendingAlarms(), 1)
	assert.Equal(t, before, f.notifier.all())
	hall, err := f.home.Room("hall")
	require.NoError(t, err)
	assert.Equal(t, "05:30", hall.AutoOn.String())

	f.clock.Advance(time.Hour)
	assert.Len(t, f.eventsOf(events.AlarmFired), 1)
	assert.Len(t, f.eventsOf(events.RoomChanged), 1)

	hall, err = f.home.Room("hall")
	require.NoError(t, err)
	assert.True(t, hall.IsLightOn)
}

func TestScheduleFailureKeepsStoredTime(t *testing.T) {
	f := newFixture(t, false)
	f.home.Close()

	_, err := f.home.Schedule("hall", models.EdgeOn, "05:30")
	assert.ErrorIs(t, err, automation.ErrStopped)

	hall, err := f.home.Room("hall")
	require.NoError(t, err)
	assert.Equal(t, "06:30", hall.AutoOn.String())
	assert.Empty(t, f.eventsOf(events.AlarmArmed))
}

func TestScheduleDefaults(t *testing.T) {
	f := newFixture(t, false)

	alarms, err := f.home.ScheduleDefaults()
	require.NoError(t, err)
	assert.Len(t, alarms, 14)

	// 06:30 is later today, 22:00 too
	f.clock.Advance(90 * time.Minute)
	for _, room := range f.home.Rooms() {
		assert.True(t, room.IsLightOn, room.ID)
	}
	f.clock.Advance(16 * time.Hour)
	for _, room := range f.home.Rooms() {
		assert.False(t, room.IsLightOn, room.ID)
	}
}

func TestDailyAutomation(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.home.Schedule("hall", models.EdgeOn, "05:30")
	require.NoError(t, err)
	_, err = f.home.Schedule("hall", models.EdgeOff, "06:00")
	require.NoError(t, err)

	f.clock.Advance(48 * time.Hour)
	assert.Len(t, f.eventsOf(events.AlarmFired), 4)
	assert.Len(t, f.home.PendingAlarms(), 2)
}

func TestWifiConnect(t *testing.T) {
	f := newFixture(t, false)

	require.NoError(t, f.home.Connect(4))
	assert.Equal(t, "Connected to virus", f.notifier.last())
	conn, ok := f.home.CurrentConnection()
	require.True(t, ok)
	assert.Equal(t, "virus", conn.Name)

	assert.ErrorIs(t, f.home.Connect(2), ErrPoorSignal)
	assert.Equal(t, "Cannot connect to Kojo_kwame121: Signal too weak", f.notifier.last())

	assert.ErrorIs(t, f.home.Connect(99), ErrUnknownNetwork)

	f.home.ToggleWifi()
	_, ok = f.home.CurrentConnection()
	assert.False(t, ok)
	assert.ErrorIs(t, f.home.Connect(1), ErrWifiOff)
	assert.Equal(t, "Cannot connect: WiFi is turned off", f.notifier.last())

	var p events.WifiPayload
	wifiEvents := f.eventsOf(events.WifiChanged)
	require.Len(t, wifiEvents, 2)
	require.NoError(t, wifiEvents[1].Decode(&p))
	assert.False(t, p.Active)
	assert.Empty(t, p.Connection)
}

func TestSetWifi(t *testing.T) {
	f := newFixture(t, false)

	assert.False(t, f.home.SetWifi(true), "already on")
	assert.Empty(t, f.eventsOf(events.WifiChanged))

	assert.True(t, f.home.SetWifi(false))
	assert.False(t, f.home.WifiActive())
	assert.Equal(t, []string{"WiFi turned off", "Light control disabled: No WiFi connection"}, f.notifier.all())
	assert.Len(t, f.eventsOf(events.WifiChanged), 1)

	_, err := f.home.Toggle("hall")
	assert.ErrorIs(t, err, ErrGateClosed)

	assert.True(t, f.home.SetWifi(true))
	assert.True(t, f.home.WifiActive())
}

func TestReselect(t *testing.T) {
	f := newFixture(t, false)

	conn, ok := f.home.Reselect()
	require.True(t, ok)
	assert.NotEqual(t, models.SignalPoor, conn.Signal)
	assert.Equal(t, "Connected to "+conn.Name, f.notifier.last())

	f.home.ToggleWifi()
	_, ok = f.home.Reselect()
	assert.False(t, ok)
}

func TestNewDefaults(t *testing.T) {
	h := New(Options{DefaultIntensity: 42})
	defer h.Close()

	room, err := h.Toggle("hall")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultIntensity, room.LightIntensity)
	assert.True(t, h.WifiActive())
	assert.Len(t, h.Connections(), len(wifi.DefaultConnections()))
}

func TestConfiguredDefaultIntensity(t *testing.T) {
	h := New(Options{DefaultIntensity: 8})
	defer h.Close()

	room, err := h.Toggle("hall")
	require.NoError(t, err)
	assert.Equal(t, 8, room.LightIntensity)
}
