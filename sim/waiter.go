package sim

import (
	"fmt"
)

// Waiter bridges the queue, the tables and the kitchen. It finds tables for
// arriving groups, carries orders to the kitchen and food and receipts back.
type Waiter struct {
	r *Restaurant
}

// FindFreeTable returns the first free table, in ascending id order, with
// at least size seats. No best-fit search is attempted.
func (w *Waiter) FindFreeTable(size int) (*Table, error) {
	for _, t := range w.r.tables {
		if t.IsFree() && t.Seats >= size {
			return t, nil
		}
	}
	return nil, fmt.Errorf("group of %d: %w", size, ErrNoFreeTable)
}

// PlaceAtTable seats g at t and has every client choose dishes.
func (w *Waiter) PlaceAtTable(t *Table, g *ClientGroup, strategy ChoiceStrategy) error {
	if err := t.Seat(g); err != nil {
		return err
	}
	for _, c := range g.Clients {
		c.Choose(w.r.menu, strategy)
	}
	return nil
}

// TakeOrder collects the group's dishes at a table awaiting order and hands
// them to the kitchen.
func (w *Waiter) TakeOrder(tableID uint32) (*Order, error) {
	t, err := w.r.Table(tableID)
	if err != nil {
		return nil, err
	}
	if !t.ReadyToOrder() {
		return nil, fmt.Errorf("table %d (%s): %w", t.ID, t.State, ErrTableNotReadyToOrder)
	}
	o := NewOrder(t.ID, t.Group)
	if err := w.r.kitchen.Submit(o); err != nil {
		return nil, err
	}
	if err := t.OrderTaken(); err != nil {
		return nil, err
	}
	return o, nil
}

// ServeOrder carries the table's prepared order from the kitchen.
func (w *Waiter) ServeOrder(tableID uint32) (*Order, error) {
	t, err := w.r.Table(tableID)
	if err != nil {
		return nil, err
	}
	o, err := w.r.kitchen.Ready(tableID)
	if err != nil {
		return nil, err
	}
	if err := t.Deliver(o); err != nil {
		return nil, err
	}
	w.r.kitchen.RemoveReady(tableID)
	return o, nil
}

// GiveReceipt bills a table whose food has been served.
func (w *Waiter) GiveReceipt(tableID uint32) (*Receipt, error) {
	t, err := w.r.Table(tableID)
	if err != nil {
		return nil, err
	}
	return t.Bill()
}
