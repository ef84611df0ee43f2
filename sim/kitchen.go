package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/restaurant-sim/restaurant-sim/sim/menu"
)

// Kitchen owns the order pipeline. Orders are prepared strictly in
// submission order; prepared orders wait in the ready pool, keyed by table,
// until the waiter serves them.
type Kitchen struct {
	todo      []*Order
	ready     map[uint32]*Order
	prepTimes map[string]int // menu.Key(dish) -> ticks
}

// NewKitchen returns a kitchen with empty pools.
func NewKitchen() *Kitchen {
	return &Kitchen{
		ready:     make(map[uint32]*Order),
		prepTimes: make(map[string]int),
	}
}

// SetPrepTimes installs the dish name -> preparation time lookup.
func (k *Kitchen) SetPrepTimes(times map[string]int) {
	k.prepTimes = make(map[string]int, len(times))
	for name, d := range times {
		k.prepTimes[menu.Key(name)] = d
	}
}

// PrepTime returns the preparation time of a dish, 0 if unknown.
func (k *Kitchen) PrepTime(dish string) int {
	return k.prepTimes[menu.Key(dish)]
}

// InFlight reports whether the table has an order waiting or ready.
func (k *Kitchen) InFlight(tableID uint32) bool {
	if _, ok := k.ready[tableID]; ok {
		return true
	}
	for _, o := range k.todo {
		if o.TableID == tableID {
			return true
		}
	}
	return false
}

// Submit appends o to the to-do pool. At most one order per table may be in
// the kitchen at a time.
func (k *Kitchen) Submit(o *Order) error {
	if k.InFlight(o.TableID) {
		return fmt.Errorf("table %d: %w", o.TableID, ErrOrderInFlight)
	}
	k.todo = append(k.todo, o)
	return nil
}

// PrepareNext moves the oldest to-do order into the ready pool.
func (k *Kitchen) PrepareNext() (*Order, error) {
	if len(k.todo) == 0 {
		return nil, ErrNoOrdersToPrepare
	}
	o := k.todo[0]
	k.todo[0] = nil
	k.todo = k.todo[1:]

	o.PrepTime = 0
	for _, d := range o.Dishes {
		o.PrepTime += k.PrepTime(d.Name)
	}
	k.ready[o.TableID] = o
	logrus.Debugf("Kitchen prepared order for table %d (%d dishes, %d ticks)", o.TableID, len(o.Dishes), o.PrepTime)
	return o, nil
}

// Ready returns the prepared order for a table without removing it.
func (k *Kitchen) Ready(tableID uint32) (*Order, error) {
	o, ok := k.ready[tableID]
	if !ok {
		return nil, fmt.Errorf("table %d: %w", tableID, ErrOrderNotFound)
	}
	return o, nil
}

// RemoveReady drops a table's prepared order from the ready pool.
func (k *Kitchen) RemoveReady(tableID uint32) {
	delete(k.ready, tableID)
}

// ToDo returns the pending orders, oldest first.
// The returned slice MUST NOT be modified.
func (k *Kitchen) ToDo() []*Order {
	return k.todo
}

// ReadyOrders returns a snapshot of the ready pool sorted by table id.
// The pool itself carries no ordering.
func (k *Kitchen) ReadyOrders() []*Order {
	out := make([]*Order, 0, len(k.ready))
	for _, o := range k.ready {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TableID < out[j].TableID })
	return out
}

// Idle reports whether both pools are empty.
func (k *Kitchen) Idle() bool {
	return len(k.todo) == 0 && len(k.ready) == 0
}
