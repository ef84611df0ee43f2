package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/restaurant-sim/restaurant-sim/sim/internal/testutil"
	"github.com/restaurant-sim/restaurant-sim/sim/menu"
	"github.com/restaurant-sim/restaurant-sim/sim/roster"
)

// testMenu parses the shared sample menu.
func testMenu(t *testing.T) *menu.Menu {
	t.Helper()
	m, err := menu.ParseYAML([]byte(testutil.SampleMenuYAML))
	require.NoError(t, err)
	return m
}

// testDish looks up a dish from the sample menu.
func testDish(t *testing.T, m *menu.Menu, name string) *menu.Item {
	t.Helper()
	it, err := m.Item(name)
	require.NoError(t, err)
	return it
}

// newTestRestaurant builds the sample restaurant: tables {1: 2 seats, 2: 4 seats}
// unless other entries are given.
func newTestRestaurant(t *testing.T, entries ...roster.Entry) *Restaurant {
	t.Helper()
	if len(entries) == 0 {
		entries = []roster.Entry{{ID: 1, Seats: 2}, {ID: 2, Seats: 4}}
	}
	r, err := NewRestaurant(testMenu(t), entries)
	require.NoError(t, err)
	return r
}

// newTestSimulator wires a simulator whose groups have the given sizes (the
// last size repeats) and whose clients each order soup and pierogi.
func newTestSimulator(t *testing.T, sizes []int, entries ...roster.Entry) *Simulator {
	t.Helper()
	r := newTestRestaurant(t, entries...)
	choice := FixedChoice{testDish(t, r.Menu(), "Tomato Soup"), testDish(t, r.Menu(), "Pierogi")}
	return NewSimulator(r, NewSequenceGroupSize(sizes...), choice)
}

// snapshot captures everything a rejected command must leave untouched.
type snapshot struct {
	queueLen int
	states   map[uint32]TableState
	groups   map[uint32]*ClientGroup
	todo     int
	ready    int
}

func takeSnapshot(s *Simulator) snapshot {
	snap := snapshot{
		queueLen: s.Queue.Len(),
		states:   make(map[uint32]TableState),
		groups:   make(map[uint32]*ClientGroup),
		todo:     len(s.Restaurant.Kitchen().ToDo()),
		ready:    len(s.Restaurant.Kitchen().ReadyOrders()),
	}
	for _, tb := range s.Restaurant.Tables() {
		snap.states[tb.ID] = tb.State
		snap.groups[tb.ID] = tb.Group
	}
	return snap
}
