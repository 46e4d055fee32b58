package registry

import (
	"github.com/angristan/home-tui/internal/models"
)

// Defaults shared by every seeded room
const (
	defaultAutoOn  = "06:30"
	defaultAutoOff = "22:00"
)

// roomSeed is the static description of a seeded room
type roomSeed struct {
	Name        string
	NumOfLights int
	Usage       [7]float64
}

// Default house layout, weekly usage hours Sunday first
var defaultSeeds = []roomSeed{
	{Name: "hall", NumOfLights: 6, Usage: [7]float64{22, 11, 12, 10, 12, 17, 22}},
	{Name: "bedroom", NumOfLights: 3, Usage: [7]float64{18, 5, 7, 5, 6, 6, 18}},
	{Name: "bathroom", NumOfLights: 1, Usage: [7]float64{2, 1, 1, 1, 1, 3, 3}},
	{Name: "outdoor lights", NumOfLights: 6, Usage: [7]float64{15, 12, 13, 9, 12, 13, 18}},
	{Name: "guest room", NumOfLights: 4, Usage: [7]float64{12, 10, 3, 9, 5, 5, 18}},
	{Name: "kitchen", NumOfLights: 3, Usage: [7]float64{12, 19, 13, 11, 12, 13, 18}},
	{Name: "walkway & corridor", NumOfLights: 8, Usage: [7]float64{12, 19, 13, 15, 22, 23, 18}},
}

// DefaultRooms returns fresh copies of the default house, all lights off
func DefaultRooms() []*models.Room {
	rooms := make([]*models.Room, 0, len(defaultSeeds))
	for _, seed := range defaultSeeds {
		on := models.MustParseTimeOfDay(defaultAutoOn)
		off := models.MustParseTimeOfDay(defaultAutoOff)
		rooms = append(rooms, &models.Room{
			ID:          seed.Name,
			Name:        seed.Name,
			NumOfLights: seed.NumOfLights,
			AutoOn:      &on,
			AutoOff:     &off,
			Usage:       seed.Usage,
		})
	}
	return rooms
}
