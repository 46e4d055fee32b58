package wifi

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angristan/home-tui/internal/models"
)

func TestGateDefaults(t *testing.T) {
	g := NewGate(true)
	assert.True(t, g.IsActive())
	assert.NoError(t, g.Check())

	_, ok := g.Current()
	assert.False(t, ok)
}

func TestGateToggleClearsConnection(t *testing.T) {
	g := NewGate(true)
	n := NewNetwork(g, DefaultConnections(), nil)

	inet, ok := n.Lookup(1)
	require.True(t, ok)
	require.NoError(t, n.Connect(inet))

	current, ok := g.Current()
	require.True(t, ok)
	assert.Equal(t, "Inet service", current.Name)

	assert.False(t, g.Toggle())
	assert.ErrorIs(t, g.Check(), ErrGateClosed)
	_, ok = g.Current()
	assert.False(t, ok)

	assert.True(t, g.Toggle())
	_, ok = g.Current()
	assert.False(t, ok, "turning wifi back on does not reconnect")
}

func TestGateSetActive(t *testing.T) {
	g := NewGate(true)
	assert.False(t, g.SetActive(true))
	assert.True(t, g.SetActive(false))
	assert.False(t, g.IsActive())
}

func TestConnectErrors(t *testing.T) {
	g := NewGate(true)
	n := NewNetwork(g, DefaultConnections(), nil)

	weak, _ := n.Lookup(2)
	err := n.Connect(weak)
	assert.ErrorIs(t, err, ErrPoorSignal)
	assert.Contains(t, err.Error(), "Kojo_kwame121")

	g.Toggle()
	good, _ := n.Lookup(3)
	assert.ErrorIs(t, n.Connect(good), ErrWifiOff)
}

func TestRandomizeSkipsPoorAndCurrent(t *testing.T) {
	g := NewGate(true)
	n := NewNetwork(g, DefaultConnections(), nil)
	n.intn = func(int) int { return 0 }

	first, ok := n.Randomize()
	require.True(t, ok)
	assert.Equal(t, "Inet service", first.Name)

	// Inet service is current, the poor one is never a candidate
	second, ok := n.Randomize()
	require.True(t, ok)
	assert.Equal(t, "spicyalice", second.Name)

	for i := 0; i < 20; i++ {
		n.intn = func(k int) int { return i % k }
		conn, ok := n.Randomize()
		require.True(t, ok)
		assert.NotEqual(t, models.SignalPoor, conn.Signal)
	}
}

func TestRandomizeNoop(t *testing.T) {
	g := NewGate(false)
	n := NewNetwork(g, DefaultConnections(), nil)
	_, ok := n.Randomize()
	assert.False(t, ok, "wifi off")

	g.Toggle()
	only := NewNetwork(g, []models.Connection{
		{ID: 1, Name: "solo", Signal: models.SignalGood},
		{ID: 2, Name: "far", Signal: models.SignalPoor},
	}, nil)
	_, ok = only.Randomize()
	require.True(t, ok)
	_, ok = only.Randomize()
	assert.False(t, ok, "already on the only usable network")
}

func TestRunStopsOnCancel(t *testing.T) {
	g := NewGate(true)
	n := NewNetwork(g, DefaultConnections(), nil)

	var hops atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		n.Run(ctx, time.Millisecond, func(models.Connection) { hops.Add(1) })
		close(done)
	}()

	require.Eventually(t, func() bool { return hops.Load() >= 2 }, 2*time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
