package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/angristan/home-tui/internal/models"
)

// ErrUnknownRoom is returned when a room ID is not in the registry
var ErrUnknownRoom = errors.New("unknown room")

// ErrDuplicateRoom is returned when two seeds share an ID
var ErrDuplicateRoom = errors.New("duplicate room")

// Registry owns every room record. All state changes go through it and are
// serialised by its lock; callers only ever see clones.
type Registry struct {
	rooms map[string]*models.Room // ID -> Room
	order []string                // seed order
	mu    sync.RWMutex
}

// New creates a registry from seed rooms
func New(seeds []*models.Room) (*Registry, error) {
	r := &Registry{
		rooms: make(map[string]*models.Room, len(seeds)),
	}

	for _, seed := range seeds {
		room := seed.Clone()
		room.ID = models.NormalizeID(room.ID)
		if room.ID == "" {
			room.ID = models.NormalizeID(room.Name)
		}
		if room.ID == "" {
			return nil, fmt.Errorf("room without a name at position %d", len(r.order))
		}
		if room.Name == "" {
			room.Name = room.ID
		}
		if _, exists := r.rooms[room.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoom, room.ID)
		}
		room.UpdateState()
		r.rooms[room.ID] = room
		r.order = append(r.order, room.ID)
	}

	return r, nil
}

// NewDefault creates a registry seeded with the default house
func NewDefault() *Registry {
	r, err := New(DefaultRooms())
	// Seed data is static, a failure here is a programming error
	if err != nil {
		panic("registry: default seed is invalid: " + err.Error())
	}
	return r
}

// Get returns a copy of the room with the given ID (case-insensitive)
func (r *Registry) Get(id string) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[models.NormalizeID(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoom, id)
	}
	return room.Clone(), nil
}

// Has reports whether a room exists
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.rooms[models.NormalizeID(id)]
	return ok
}

// List returns copies of all rooms in seed order
func (r *Registry) List() []*models.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*models.Room, 0, len(r.order))
	for _, id := range r.order {
		rooms = append(rooms, r.rooms[id].Clone())
	}
	return rooms
}

// IDs returns the room IDs in seed order
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Update applies fn to the room under the registry lock and returns a copy
// of the result. If fn returns an error the room is left as it was.
func (r *Registry) Update(id string, fn func(*models.Room) error) (*models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[models.NormalizeID(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoom, id)
	}

	working := room.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	working.UpdateState()
	r.rooms[room.ID] = working

	return working.Clone(), nil
}

// UpdateAll applies fn to every room in seed order under a single lock and
// returns copies of the rooms fn reported as changed
func (r *Registry) UpdateAll(fn func(*models.Room) bool) []*models.Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	var changed []*models.Room
	for _, id := range r.order {
		working := r.rooms[id].Clone()
		if !fn(working) {
			continue
		}
		working.UpdateState()
		r.rooms[id] = working
		changed = append(changed, working.Clone())
	}
	return changed
}
