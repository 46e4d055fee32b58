// Package notify holds the short-lived messages shown to the user after
// each action.
package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a notification stays visible
const DefaultTTL = 3 * time.Second

// Notification is a single message
type Notification struct {
	ID        string
	Message   string
	CreatedAt time.Time
	ExpiresAt time.Time

	seq uint64
}

// Center tracks visible notifications and drops them once they expire
type Center struct {
	items map[string]*Notification // keyed by ID
	seq   uint64
	ttl   time.Duration
	now   func() time.Time
	mu    sync.Mutex

	// OnPost is called outside the lock after every Notify
	OnPost func(Notification)
}

// NewCenter creates a notification center. A zero ttl uses DefaultTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{
		items: make(map[string]*Notification),
		ttl:   ttl,
		now:   time.Now,
	}
}

// TTL returns how long notifications stay visible
func (c *Center) TTL() time.Duration {
	return c.ttl
}

// Notify posts a message
func (c *Center) Notify(message string) {
	c.Post(message)
}

// Post adds a message and returns it
func (c *Center) Post(message string) Notification {
	c.mu.Lock()
	now := c.now()
	c.seq++
	n := &Notification{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
		seq:       c.seq,
	}
	c.items[n.ID] = n
	onPost := c.OnPost
	c.mu.Unlock()

	if onPost != nil {
		onPost(*n)
	}
	return *n
}

// Active returns the notifications that have not expired, oldest first
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	active := make([]Notification, 0, len(c.items))
	for _, n := range c.items {
		if now.Before(n.ExpiresAt) {
			active = append(active, *n)
		}
	}
	// Posting order, even for notices posted in the same instant
	sort.Slice(active, func(i, j int) bool {
		return active[i].seq < active[j].seq
	})
	return active
}

// Cleanup removes expired notifications and returns how many were dropped
func (c *Center) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for id, item := range c.items {
		if !now.Before(item.ExpiresAt) {
			delete(c.items, id)
			n++
		}
	}
	return n
}
