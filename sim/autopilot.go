package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Autopilot drives a simulator without a script. Each step it draws a random
// table and performs whatever that table is waiting for; when the drawn table
// has nothing to do it falls back to kitchen work, then seating, then the
// first table in id order that can move.
type Autopilot struct {
	sim *Simulator
	rng *rand.Rand

	// Pending groups still to arrive; each step admits one with
	// probability ArrivalProb while Pending > 0.
	Pending     int
	ArrivalProb float64
}

// NewAutopilot creates an autopilot drawing tables from rng.
func NewAutopilot(sim *Simulator, rng *rand.Rand) *Autopilot {
	return &Autopilot{sim: sim, rng: rng}
}

// drawTable picks a uniformly random table, nil if the restaurant has none.
func (a *Autopilot) drawTable() *Table {
	tables := a.sim.Restaurant.Tables()
	if len(tables) == 0 {
		return nil
	}
	return tables[a.rng.Intn(len(tables))]
}

// nextFor returns the command that advances t, or nil when t is free or
// its order is still in the kitchen.
func (a *Autopilot) nextFor(t *Table) Command {
	switch t.State {
	case TableAwaitingOrder:
		return &TakeOrderCommand{TableID: t.ID}
	case TableAwaitingKitchen:
		if _, err := a.sim.Restaurant.Kitchen().Ready(t.ID); err != nil {
			return nil
		}
		return &ServeCommand{TableID: t.ID}
	case TableAwaitingReceipt:
		return &BillCommand{TableID: t.ID}
	case TableAwaitingCleaning:
		return &CleanCommand{TableID: t.ID}
	default:
		return nil
	}
}

// canSeat reports whether the head of the queue fits a free table.
func (a *Autopilot) canSeat() bool {
	g := a.sim.Queue.Peek()
	if g == nil {
		return false
	}
	_, err := a.sim.Restaurant.Waiter().FindFreeTable(g.Size())
	return err == nil
}

// Step performs one productive command if any exists and returns it, or nil
// when nothing could be done. Only commands whose preconditions hold are
// attempted, so an autopilot run records no rejections.
func (a *Autopilot) Step() Command {
	if a.Pending > 0 && a.rng.Float64() < a.ArrivalProb {
		a.Pending--
		cmd := &AdmitCommand{Count: 1}
		_ = cmd.Execute(a.sim)
		return cmd
	}

	var candidates []Command
	if t := a.drawTable(); t != nil {
		if cmd := a.nextFor(t); cmd != nil {
			candidates = append(candidates, cmd)
		}
	}
	if len(a.sim.Restaurant.Kitchen().ToDo()) > 0 {
		candidates = append(candidates, &PrepareCommand{})
	}
	if a.canSeat() {
		candidates = append(candidates, &SeatCommand{})
	}
	for _, t := range a.sim.Restaurant.Tables() {
		if cmd := a.nextFor(t); cmd != nil {
			candidates = append(candidates, cmd)
		}
	}
	for _, cmd := range candidates {
		if err := cmd.Execute(a.sim); err == nil {
			return cmd
		}
	}

	if a.Pending > 0 {
		a.Pending--
		cmd := &AdmitCommand{Count: 1}
		_ = cmd.Execute(a.sim)
		return cmd
	}
	return nil
}

// Run steps until the simulation finishes with no arrivals pending, or
// maxSteps productive steps have been taken (maxSteps <= 0 means no limit).
// A step that finds nothing to do still counts toward the limit.
// Returns the number of steps taken and whether the simulation finished.
func (a *Autopilot) Run(maxSteps int) (int, bool) {
	steps := 0
	for !(a.Pending == 0 && a.sim.Finished()) {
		if maxSteps > 0 && steps >= maxSteps {
			logrus.Warnf("Autopilot stopped after %d steps with %d groups queued", steps, a.sim.Queue.Len())
			return steps, false
		}
		steps++
		if a.Step() == nil {
			// Every table is free and the kitchen is empty, yet the head
			// group fits no table.
			logrus.Warnf("Autopilot stalled at step %d: %d groups queued, none seatable", steps, a.sim.Queue.Len())
			return steps, false
		}
	}
	logrus.Infof("Autopilot finished after %d steps", steps)
	return steps, true
}
