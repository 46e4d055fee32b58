// Package events broadcasts home state changes to whoever renders them.
package events

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// EventType identifies the kind of event.
type EventType string

const (
	RoomChanged        EventType = "room.changed"
	AlarmArmed         EventType = "alarm.armed"
	AlarmFired         EventType = "alarm.fired"
	AlarmCancelled     EventType = "alarm.cancelled"
	WifiChanged        EventType = "wifi.changed"
	NotificationPosted EventType = "notification.posted"
)

// Event is a single state change.
type Event struct {
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// NewEvent creates an Event, marshaling data to JSON.
// If marshaling fails the Data field is set to null.
func NewEvent(t EventType, data any) Event {
	raw, err := json.Marshal(data)
	if err != nil {
		raw = []byte("null")
	}
	return Event{
		Type:      t,
		Timestamp: time.Now(),
		Data:      raw,
	}
}

// Decode unmarshals the payload into v
func (e Event) Decode(v any) error {
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return nil
}

// RoomPayload is carried by RoomChanged
type RoomPayload struct {
	RoomID    string `json:"room_id"`
	On        bool   `json:"on"`
	Intensity int    `json:"intensity"`
	Source    string `json:"source"` // "user" or "automation"
}

// AlarmPayload is carried by the alarm events
type AlarmPayload struct {
	AlarmID string    `json:"alarm_id"`
	RoomID  string    `json:"room_id"`
	Edge    string    `json:"edge"`
	Time    string    `json:"time"`
	At      time.Time `json:"at"`
}

// WifiPayload is carried by WifiChanged
type WifiPayload struct {
	Active     bool   `json:"active"`
	Connection string `json:"connection,omitempty"`
}

// NotificationPayload is carried by NotificationPosted
type NotificationPayload struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// SubscriberFunc is a callback invoked for each event.
// Implementations must not block.
type SubscriberFunc func(Event)

// Bus is a synchronous fan-out event bus. Publish returns once every
// subscriber has been called.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[int]SubscriberFunc
	nextID      int
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[int]SubscriberFunc),
	}
}

// Subscribe registers a callback and returns an unsubscribe function.
func (b *Bus) Subscribe(fn SubscriberFunc) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subscribers, id)
		b.mu.Unlock()
	}
}

// Publish sends an event to all current subscribers.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := make([]SubscriberFunc, 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		subs = append(subs, fn)
	}
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(e)
	}
}

// Emit builds and publishes an event in one call
func (b *Bus) Emit(t EventType, data any) {
	b.Publish(NewEvent(t, data))
}
