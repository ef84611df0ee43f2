package sim

import (
	"fmt"
	"sort"

	"github.com/restaurant-sim/restaurant-sim/sim/menu"
	"github.com/restaurant-sim/restaurant-sim/sim/roster"
)

// Restaurant is the shared state root: the menu, the tables, and the single
// waiter and kitchen bound to them. It never initiates a transition itself.
type Restaurant struct {
	menu    *menu.Menu
	tables  []*Table // ascending by ID
	byID    map[uint32]*Table
	kitchen *Kitchen
	waiter  *Waiter
}

// NewRestaurant builds a restaurant from a loaded menu and table roster.
// The kitchen's preparation times come from the menu.
func NewRestaurant(m *menu.Menu, tables []roster.Entry) (*Restaurant, error) {
	r := &Restaurant{
		menu:    m,
		byID:    make(map[uint32]*Table, len(tables)),
		kitchen: NewKitchen(),
	}
	r.waiter = &Waiter{r: r}
	r.kitchen.SetPrepTimes(m.PrepTimes())
	for _, e := range tables {
		if err := r.AddTable(e.ID, e.Seats); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// AddTable registers a new physical table. IDs are never reused.
func (r *Restaurant) AddTable(id uint32, seats int) error {
	if _, ok := r.byID[id]; ok {
		return fmt.Errorf("table %d: %w", id, ErrDuplicateTable)
	}
	if seats <= 0 {
		return fmt.Errorf("table %d: %w", id, roster.ErrInvalidSeats)
	}
	t := NewTable(id, seats)
	r.byID[id] = t
	i := sort.Search(len(r.tables), func(i int) bool { return r.tables[i].ID > id })
	r.tables = append(r.tables, nil)
	copy(r.tables[i+1:], r.tables[i:])
	r.tables[i] = t
	return nil
}

// Table returns the stable handle for a table id.
func (r *Restaurant) Table(id uint32) (*Table, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("table %d: %w", id, ErrTableNotFound)
	}
	return t, nil
}

// Tables returns every table in ascending id order.
// The returned slice MUST NOT be modified.
func (r *Restaurant) Tables() []*Table {
	return r.tables
}

// Menu returns the restaurant's menu.
func (r *Restaurant) Menu() *menu.Menu {
	return r.menu
}

// Kitchen returns the restaurant's kitchen.
func (r *Restaurant) Kitchen() *Kitchen {
	return r.kitchen
}

// Waiter returns the restaurant's waiter.
func (r *Restaurant) Waiter() *Waiter {
	return r.waiter
}

// AllTablesFree reports whether no table has a group assigned.
func (r *Restaurant) AllTablesFree() bool {
	for _, t := range r.tables {
		if !t.IsFree() {
			return false
		}
	}
	return true
}

// MaxSeats returns the seat count of the largest table, 0 if there are none.
func (r *Restaurant) MaxSeats() int {
	most := 0
	for _, t := range r.tables {
		most = max(most, t.Seats)
	}
	return most
}
