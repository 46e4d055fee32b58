package wifi

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/angristan/home-tui/internal/models"
)

// DefaultReselectInterval is how often Run hops to another access point
const DefaultReselectInterval = 5 * time.Minute

// DefaultConnections are the access points visible from the house
func DefaultConnections() []models.Connection {
	return []models.Connection{
		{ID: 1, Name: "Inet service", Signal: models.SignalExcellent},
		{ID: 2, Name: "Kojo_kwame121", Signal: models.SignalPoor},
		{ID: 3, Name: "spicyalice", Signal: models.SignalGood},
		{ID: 4, Name: "virus", Signal: models.SignalGood},
	}
}

// Network is the simulated list of access points sitting behind a Gate
type Network struct {
	gate        *Gate
	connections []models.Connection
	logger      *slog.Logger

	// intn is swapped in tests to make Randomize deterministic
	intn func(n int) int
}

// NewNetwork creates a network over the given access points
func NewNetwork(gate *Gate, connections []models.Connection, logger *slog.Logger) *Network {
	if logger == nil {
		logger = slog.Default()
	}
	return &Network{
		gate:        gate,
		connections: connections,
		logger:      logger.With("component", "wifi"),
		intn:        rand.Intn,
	}
}

// Gate returns the gate the network is attached to
func (n *Network) Gate() *Gate {
	return n.gate
}

// Connections returns a copy of the visible access points
func (n *Network) Connections() []models.Connection {
	out := make([]models.Connection, len(n.connections))
	copy(out, n.connections)
	return out
}

// Lookup finds an access point by ID
func (n *Network) Lookup(id int) (models.Connection, bool) {
	for _, c := range n.connections {
		if c.ID == id {
			return c, true
		}
	}
	return models.Connection{}, false
}

// Connect joins an access point
func (n *Network) Connect(conn models.Connection) error {
	if !n.gate.IsActive() {
		return ErrWifiOff
	}
	if !conn.Usable() {
		return fmt.Errorf("cannot connect to %s: %w", conn.Name, ErrPoorSignal)
	}
	if err := n.gate.connect(conn); err != nil {
		return err
	}

	n.logger.Info("wifi connected", "network", conn.Name, "signal", conn.Signal)
	return nil
}

// Randomize hops to a random usable access point other than the current
// one. It reports the new connection, or false when nothing changed.
func (n *Network) Randomize() (models.Connection, bool) {
	if !n.gate.IsActive() {
		return models.Connection{}, false
	}

	current, connected := n.gate.Current()
	var candidates []models.Connection
	for _, c := range n.connections {
		if !c.Usable() || (connected && c.ID == current.ID) {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return models.Connection{}, false
	}

	next := candidates[n.intn(len(candidates))]
	if err := n.Connect(next); err != nil {
		n.logger.Warn("wifi reselect failed", "network", next.Name, "error", err)
		return models.Connection{}, false
	}
	return next, true
}

// Run calls Randomize once, then again every interval until ctx is done.
// onChange is called after every successful hop.
func (n *Network) Run(ctx context.Context, interval time.Duration, onChange func(models.Connection)) {
	if interval <= 0 {
		interval = DefaultReselectInterval
	}

	hop := func() {
		if conn, ok := n.Randomize(); ok && onChange != nil {
			onChange(conn)
		}
	}
	hop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hop()
		}
	}
}
