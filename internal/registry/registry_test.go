package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angristan/home-tui/internal/models"
)

func TestDefaultRegistry(t *testing.T) {
	r := NewDefault()
	rooms := r.List()

	require.Len(t, rooms, 7)
	assert.Equal(t, "hall", rooms[0].ID)
	assert.Equal(t, "walkway & corridor", rooms[6].ID)

	for _, room := range rooms {
		assert.False(t, room.IsLightOn, "room %s should start off", room.ID)
		assert.Equal(t, 0, room.LightIntensity)
		require.NotNil(t, room.AutoOn)
		require.NotNil(t, room.AutoOff)
		assert.Equal(t, "06:30", room.AutoOn.String())
		assert.Equal(t, "22:00", room.AutoOff.String())
	}

	hall, err := r.Get("hall")
	require.NoError(t, err)
	assert.Equal(t, 6, hall.NumOfLights)
	assert.Equal(t, [7]float64{22, 11, 12, 10, 12, 17, 22}, hall.Usage)
}

func TestGetIsCaseInsensitive(t *testing.T) {
	r := NewDefault()

	room, err := r.Get("Guest Room")
	require.NoError(t, err)
	assert.Equal(t, "guest room", room.ID)
	assert.True(t, r.Has("KITCHEN"))
}

func TestGetUnknownRoom(t *testing.T) {
	r := NewDefault()

	_, err := r.Get("attic")
	assert.True(t, errors.Is(err, ErrUnknownRoom))
	assert.False(t, r.Has("attic"))

	_, err = r.Update("attic", func(*models.Room) error { return nil })
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestGetReturnsCopy(t *testing.T) {
	r := NewDefault()

	room, err := r.Get("hall")
	require.NoError(t, err)
	room.LightIntensity = 9
	room.AutoOn.Hour = 1

	again, err := r.Get("hall")
	require.NoError(t, err)
	assert.Equal(t, 0, again.LightIntensity)
	assert.Equal(t, 6, again.AutoOn.Hour)
}

func TestUpdateRestoresInvariant(t *testing.T) {
	r := NewDefault()

	room, err := r.Update("hall", func(room *models.Room) error {
		room.LightIntensity = 7
		return nil
	})
	require.NoError(t, err)
	assert.True(t, room.IsLightOn)

	stored, err := r.Get("hall")
	require.NoError(t, err)
	assert.Equal(t, 7, stored.LightIntensity)
	assert.True(t, stored.IsLightOn)
}

func TestUpdateErrorLeavesRoomUntouched(t *testing.T) {
	r := NewDefault()
	boom := errors.New("boom")

	_, err := r.Update("hall", func(room *models.Room) error {
		room.LightIntensity = 3
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := r.Get("hall")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.LightIntensity)
}

func TestUpdateAll(t *testing.T) {
	r := NewDefault()
	_, err := r.Update("kitchen", func(room *models.Room) error { return room.SetIntensity(4) })
	require.NoError(t, err)

	changed := r.UpdateAll(func(room *models.Room) bool {
		if room.IsLightOn {
			return false
		}
		room.Toggle(models.DefaultIntensity)
		return true
	})
	assert.Len(t, changed, 6)

	kitchen, err := r.Get("kitchen")
	require.NoError(t, err)
	assert.Equal(t, 4, kitchen.LightIntensity)
}

func TestNewRejectsBadSeeds(t *testing.T) {
	_, err := New([]*models.Room{{ID: "hall"}, {ID: "HALL"}})
	assert.ErrorIs(t, err, ErrDuplicateRoom)

	_, err = New([]*models.Room{{}})
	assert.Error(t, err)
}

func TestNewFillsNameAndID(t *testing.T) {
	r, err := New([]*models.Room{{Name: "Attic", LightIntensity: 2}})
	require.NoError(t, err)

	room, err := r.Get("attic")
	require.NoError(t, err)
	assert.Equal(t, "Attic", room.Name)
	assert.True(t, room.IsLightOn)
}

func TestConcurrentUpdates(t *testing.T) {
	r := NewDefault()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Update("hall", func(room *models.Room) error {
				room.Toggle(models.DefaultIntensity)
				return nil
			})
		}()
	}
	wg.Wait()

	hall, err := r.Get("hall")
	require.NoError(t, err)
	// An even number of toggles lands back where it started
	assert.False(t, hall.IsLightOn)
	assert.Equal(t, 0, hall.LightIntensity)
}
