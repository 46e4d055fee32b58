package events

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusFanOut(t *testing.T) {
	bus := NewBus()

	var a, b []Event
	bus.Subscribe(func(e Event) { a = append(a, e) })
	bus.Subscribe(func(e Event) { b = append(b, e) })

	bus.Emit(RoomChanged, RoomPayload{RoomID: "hall", On: true, Intensity: 5, Source: "user"})

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, RoomChanged, a[0].Type)
}

func TestDecodePayload(t *testing.T) {
	e := NewEvent(WifiChanged, WifiPayload{Active: true, Connection: "virus"})

	var p WifiPayload
	require.NoError(t, e.Decode(&p))
	assert.True(t, p.Active)
	assert.Equal(t, "virus", p.Connection)

	var wrong []int
	err := e.Decode(&wrong)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wifi.changed")
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	var count atomic.Int32

	unsub := bus.Subscribe(func(Event) { count.Add(1) })
	bus.Emit(AlarmArmed, nil)
	unsub()
	unsub()
	bus.Emit(AlarmFired, nil)

	assert.Equal(t, int32(1), count.Load())
}

func TestBusConcurrentPublish(t *testing.T) {
	bus := NewBus()
	var count atomic.Int64

	bus.Subscribe(func(Event) { count.Add(1) })

	const goroutines = 50
	const eventsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				bus.Emit(RoomChanged, nil)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(goroutines*eventsPerGoroutine), count.Load())
}

func TestNewEvent_MarshalFailure(t *testing.T) {
	e := NewEvent(NotificationPosted, make(chan int))

	assert.Equal(t, NotificationPosted, e.Type)
	assert.False(t, e.Timestamp.IsZero())
	assert.Equal(t, json.RawMessage("null"), e.Data)
}
