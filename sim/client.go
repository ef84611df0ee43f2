package sim

import (
	"fmt"

	"github.com/restaurant-sim/restaurant-sim/sim/menu"
)

// Client is a single diner. Dishes is empty until the client is seated and
// has chosen from the menu.
type Client struct {
	Dishes []*menu.Item
}

// Choose asks the strategy for this client's dishes.
func (c *Client) Choose(m *menu.Menu, strategy ChoiceStrategy) {
	c.Dishes = strategy.Choose(m)
}

// ClientGroup is a party that arrives, sits and orders together.
type ClientGroup struct {
	ID      string
	Clients []*Client
}

// NewClientGroup creates a group of size clients. Panics if size < 1.
func NewClientGroup(id string, size int) *ClientGroup {
	if size < 1 {
		panic(fmt.Sprintf("NewClientGroup: size must be positive, got %d", size))
	}
	clients := make([]*Client, size)
	for i := range clients {
		clients[i] = &Client{}
	}
	return &ClientGroup{ID: id, Clients: clients}
}

// Size returns the number of clients in the group.
func (g *ClientGroup) Size() int {
	return len(g.Clients)
}

// Dishes returns every client's dishes in client order.
func (g *ClientGroup) Dishes() []*menu.Item {
	var out []*menu.Item
	for _, c := range g.Clients {
		out = append(out, c.Dishes...)
	}
	return out
}

func (g ClientGroup) String() string {
	return fmt.Sprintf("ClientGroup: (ID: %s, Size: %d)", g.ID, g.Size())
}
