package sim

import (
	"fmt"

	"github.com/restaurant-sim/restaurant-sim/sim/menu"
)

// Order is a table's requested dishes on their way through the kitchen.
type Order struct {
	TableID  uint32
	GroupID  string
	Dishes   []*menu.Item
	PrepTime int // set by the kitchen when prepared; informational only
}

// NewOrder collects the dishes every client of g chose.
func NewOrder(tableID uint32, g *ClientGroup) *Order {
	return &Order{TableID: tableID, GroupID: g.ID, Dishes: g.Dishes()}
}

// TotalPrice sums the menu price of every dish.
func (o *Order) TotalPrice() int {
	total := 0
	for _, d := range o.Dishes {
		total += d.Price
	}
	return total
}

// TotalCalories sums the calories of every dish.
func (o *Order) TotalCalories() int {
	total := 0
	for _, d := range o.Dishes {
		total += d.TotalCalories()
	}
	return total
}

func (o Order) String() string {
	return fmt.Sprintf("Order: (Table: %d, Dishes: %d, Total: %d)", o.TableID, len(o.Dishes), o.TotalPrice())
}

// Receipt bills a served order.
type Receipt struct {
	Order *Order
	Total int
}

// NewReceipt prices o. No discounts, taxes or split bills.
func NewReceipt(o *Order) *Receipt {
	return &Receipt{Order: o, Total: o.TotalPrice()}
}
