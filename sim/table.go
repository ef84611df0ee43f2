// Defines the Table struct and its lifecycle state machine:
// free → awaiting-order → awaiting-kitchen → awaiting-receipt → awaiting-cleaning → free.

package sim

import (
	"fmt"
)

// TableState represents the lifecycle state of a table.
type TableState string

const (
	TableFree             TableState = "free"
	TableAwaitingOrder    TableState = "awaiting-order"
	TableAwaitingKitchen  TableState = "awaiting-kitchen"
	TableAwaitingReceipt  TableState = "awaiting-receipt"
	TableAwaitingCleaning TableState = "awaiting-cleaning"
)

// Table is a seating unit. Identity (ID, Seats) never changes; everything
// else is reset when the table is cleaned.
type Table struct {
	ID    uint32
	Seats int

	State   TableState
	Group   *ClientGroup // nil iff State == TableFree
	Order   *Order       // set once the kitchen's order is delivered
	Receipt *Receipt     // set once the bill is given
}

// NewTable returns a free table.
func NewTable(id uint32, seats int) *Table {
	return &Table{ID: id, Seats: seats, State: TableFree}
}

// FreeSeats returns the seats not taken by the assigned group.
func (t *Table) FreeSeats() int {
	if t.Group == nil {
		return t.Seats
	}
	return t.Seats - t.Group.Size()
}

// IsFree reports whether no group is assigned.
func (t *Table) IsFree() bool {
	return t.State == TableFree
}

// ReadyToOrder reports whether the seated group is waiting for the waiter.
func (t *Table) ReadyToOrder() bool {
	return t.State == TableAwaitingOrder
}

// ReadyForReceipt reports whether food was served and the bill is due.
func (t *Table) ReadyForReceipt() bool {
	return t.State == TableAwaitingReceipt
}

// ReadyToBeCleaned reports whether the group has paid and left.
func (t *Table) ReadyToBeCleaned() bool {
	return t.State == TableAwaitingCleaning
}

// Seat assigns g to a free table with enough seats.
func (t *Table) Seat(g *ClientGroup) error {
	if t.State != TableFree {
		return fmt.Errorf("table %d (%s): %w", t.ID, t.State, ErrTableOccupied)
	}
	if g.Size() > t.Seats {
		return fmt.Errorf("table %d has %d seats for a group of %d: %w", t.ID, t.Seats, g.Size(), ErrNoFreeTable)
	}
	t.Group = g
	t.State = TableAwaitingOrder
	return nil
}

// OrderTaken moves the table from awaiting-order to awaiting-kitchen.
func (t *Table) OrderTaken() error {
	if t.State != TableAwaitingOrder {
		return fmt.Errorf("table %d (%s): %w", t.ID, t.State, ErrTableNotReadyToOrder)
	}
	t.State = TableAwaitingKitchen
	return nil
}

// Deliver attaches the prepared order and asks for the bill.
func (t *Table) Deliver(o *Order) error {
	if t.State != TableAwaitingKitchen {
		return fmt.Errorf("table %d (%s): %w", t.ID, t.State, ErrTableNotAwaitingFood)
	}
	t.Order = o
	t.State = TableAwaitingReceipt
	return nil
}

// Bill issues the receipt for the delivered order.
func (t *Table) Bill() (*Receipt, error) {
	if t.State != TableAwaitingReceipt {
		return nil, fmt.Errorf("table %d (%s): %w", t.ID, t.State, ErrTableNotReadyToPay)
	}
	t.Receipt = NewReceipt(t.Order)
	t.State = TableAwaitingCleaning
	return t.Receipt, nil
}

// Clean returns the table to its freshly-created state.
func (t *Table) Clean() error {
	if t.State != TableAwaitingCleaning {
		return fmt.Errorf("table %d (%s): %w", t.ID, t.State, ErrTableNotReadyToBeCleaned)
	}
	*t = Table{ID: t.ID, Seats: t.Seats, State: TableFree}
	return nil
}

func (t Table) String() string {
	return fmt.Sprintf("Table: (ID: %d, State: %s, FreeSeats: %d/%d)", t.ID, t.State, t.FreeSeats(), t.Seats)
}
