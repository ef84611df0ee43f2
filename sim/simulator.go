// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/restaurant-sim/restaurant-sim/sim/trace"
)

// Presenter renders simulator state for the show/status commands.
// Implementations must only read from the simulator.
type Presenter interface {
	Show(what string, s *Simulator) error
}

// Simulator is the orchestrator: it owns the client queue and drives every
// cross-component transition in response to discrete commands. Commands run
// one at a time to completion; a rejected command changes nothing.
type Simulator struct {
	Restaurant *Restaurant
	// Queue holds admitted groups waiting for a table, in arrival order.
	Queue   *GroupQueue
	Metrics *Metrics
	// Trace is nil unless tracing is enabled.
	Trace *trace.SimulationTrace
	// Presenter backs the show/status commands; nil disables them.
	Presenter Presenter
	// StepCount is the number of commands issued so far, accepted or not.
	StepCount int

	sizer       GroupSizer
	choice      ChoiceStrategy
	nextGroupID int
}

// NewSimulator wires a simulator around r with injected group sizes and
// dish choices.
func NewSimulator(r *Restaurant, sizer GroupSizer, choice ChoiceStrategy) *Simulator {
	if r == nil || sizer == nil || choice == nil {
		panic("NewSimulator: restaurant, sizer and choice must not be nil")
	}
	return &Simulator{
		Restaurant: r,
		Queue:      &GroupQueue{},
		Metrics:    NewMetrics(),
		sizer:      sizer,
		choice:     choice,
	}
}

// NewSimulatorFromConfig builds the sizer and choice strategy from cfg,
// each on its own RNG subsystem of rng.
func NewSimulatorFromConfig(r *Restaurant, cfg SimConfig, rng *PartitionedRNG) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sizer := NewUniformGroupSize(rng.ForSubsystem(SubsystemArrivals), cfg.Groups.MinSize, cfg.Groups.MaxSize)
	choice := NewChoiceStrategy(cfg.Choice.Strategy, rng.ForSubsystem(SubsystemChoice), cfg.Choice.DishesPerClient)
	s := NewSimulator(r, sizer, choice)
	if cfg.TraceLevel == trace.TraceLevelTransitions {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel})
	}
	return s, nil
}

// AdmitGroups appends n newly generated groups to the tail of the queue.
func (sim *Simulator) AdmitGroups(n int) error {
	sim.begin()
	if n < 0 {
		return sim.end("admit", fmt.Errorf("admit %d: %w", n, ErrNegativeCount))
	}
	for i := 0; i < n; i++ {
		size := sim.sizer.Next()
		sim.nextGroupID++
		g := NewClientGroup(fmt.Sprintf("group_%d", sim.nextGroupID), size)
		sim.Queue.Enqueue(g)
		sim.Metrics.GroupsAdmitted++
		sim.Metrics.ClientsAdmitted += size
		logrus.Infof("[step %04d] << Arrival: %s with %d clients", sim.StepCount, g.ID, size)
	}
	sim.Metrics.MaxQueueLength = max(sim.Metrics.MaxQueueLength, sim.Queue.Len())
	return sim.end("admit", nil)
}

// SeatNextGroup seats the group at the head of the queue at the first free
// table large enough for it. The group leaves the queue only on success.
func (sim *Simulator) SeatNextGroup() (*Table, error) {
	sim.begin()
	g := sim.Queue.Peek()
	if g == nil {
		return nil, sim.end("seat", ErrNoClientsInQueue)
	}
	w := sim.Restaurant.Waiter()
	t, err := w.FindFreeTable(g.Size())
	if err != nil {
		return nil, sim.end("seat", err)
	}
	from := t.State
	if err := w.PlaceAtTable(t, g, sim.choice); err != nil {
		return nil, sim.end("seat", err)
	}
	sim.Queue.Dequeue()
	sim.Metrics.GroupsSeated++
	sim.Metrics.ClientsSeated += g.Size()
	sim.transitioned(t, from)
	return t, sim.end("seat", nil)
}

// TakeOrder has the waiter collect a seated group's order for the kitchen.
func (sim *Simulator) TakeOrder(tableID uint32) (*Order, error) {
	sim.begin()
	from, err := sim.stateOf(tableID)
	if err != nil {
		return nil, sim.end("order", err)
	}
	o, err := sim.Restaurant.Waiter().TakeOrder(tableID)
	if err != nil {
		return nil, sim.end("order", err)
	}
	sim.Metrics.OrdersTaken++
	sim.transitionedID(tableID, from)
	return o, sim.end("order", nil)
}

// PrepareNextOrder has the kitchen prepare the oldest pending order.
func (sim *Simulator) PrepareNextOrder() (*Order, error) {
	sim.begin()
	o, err := sim.Restaurant.Kitchen().PrepareNext()
	if err != nil {
		return nil, sim.end("prepare", err)
	}
	sim.Metrics.OrdersPrepared++
	sim.Metrics.PrepTimeTotal += o.PrepTime
	logrus.Infof("[step %04d] Kitchen: order for table %d ready (%d ticks)", sim.StepCount, o.TableID, o.PrepTime)
	return o, sim.end("prepare", nil)
}

// ServeOrder has the waiter bring a table its prepared order.
func (sim *Simulator) ServeOrder(tableID uint32) (*Order, error) {
	sim.begin()
	from, err := sim.stateOf(tableID)
	if err != nil {
		return nil, sim.end("serve", err)
	}
	o, err := sim.Restaurant.Waiter().ServeOrder(tableID)
	if err != nil {
		return nil, sim.end("serve", err)
	}
	sim.Metrics.OrdersServed++
	sim.Metrics.DishesServed += len(o.Dishes)
	sim.Metrics.CaloriesServed += o.TotalCalories()
	sim.transitionedID(tableID, from)
	return o, sim.end("serve", nil)
}

// IssueReceipt has the waiter bill a table that has been served.
func (sim *Simulator) IssueReceipt(tableID uint32) (*Receipt, error) {
	sim.begin()
	from, err := sim.stateOf(tableID)
	if err != nil {
		return nil, sim.end("bill", err)
	}
	rc, err := sim.Restaurant.Waiter().GiveReceipt(tableID)
	if err != nil {
		return nil, sim.end("bill", err)
	}
	sim.Metrics.ReceiptsIssued++
	sim.Metrics.Revenue += rc.Total
	sim.transitionedID(tableID, from)
	return rc, sim.end("bill", nil)
}

// CleanTable frees a table whose group has paid. The table keeps its id and
// seat count.
func (sim *Simulator) CleanTable(tableID uint32) error {
	sim.begin()
	t, err := sim.Restaurant.Table(tableID)
	if err != nil {
		return sim.end("clean", err)
	}
	from := t.State
	group := t.Group
	if err := t.Clean(); err != nil {
		return sim.end("clean", err)
	}
	sim.Metrics.TablesCleaned++
	sim.recordTransition(t, from, group)
	return sim.end("clean", nil)
}

// Show asks the presenter to render part of the simulator state.
func (sim *Simulator) Show(what string) error {
	if sim.Presenter == nil {
		return nil
	}
	return sim.Presenter.Show(what, sim)
}

// Finished reports whether the queue is empty and every table is free.
// Pure query.
func (sim *Simulator) Finished() bool {
	return sim.Queue.Empty() && sim.Restaurant.AllTablesFree()
}

func (sim *Simulator) begin() {
	sim.StepCount++
	sim.Metrics.Commands++
}

// end logs and records the outcome of a command and returns err unchanged.
func (sim *Simulator) end(name string, err error) error {
	if err != nil {
		sim.Metrics.RecordFailure(err)
		logrus.Debugf("[step %04d] %s rejected: %v", sim.StepCount, name, err)
	}
	if sim.Trace.Enabled() {
		rec := trace.CommandRecord{Step: sim.StepCount, Command: name, OK: err == nil}
		if err != nil {
			rec.Reason = ErrorKind(err)
		}
		sim.Trace.RecordCommand(rec)
	}
	return err
}

func (sim *Simulator) stateOf(tableID uint32) (TableState, error) {
	t, err := sim.Restaurant.Table(tableID)
	if err != nil {
		return "", err
	}
	return t.State, nil
}

func (sim *Simulator) transitionedID(tableID uint32, from TableState) {
	t, err := sim.Restaurant.Table(tableID)
	if err != nil {
		return
	}
	sim.transitioned(t, from)
}

func (sim *Simulator) transitioned(t *Table, from TableState) {
	sim.recordTransition(t, from, t.Group)
}

func (sim *Simulator) recordTransition(t *Table, from TableState, group *ClientGroup) {
	groupID := ""
	if group != nil {
		groupID = group.ID
	}
	logrus.Infof("[step %04d] table %d: %s -> %s (%s)", sim.StepCount, t.ID, from, t.State, groupID)
	if sim.Trace.Enabled() {
		sim.Trace.RecordTransition(trace.TransitionRecord{
			Step:    sim.StepCount,
			TableID: t.ID,
			From:    string(from),
			To:      string(t.State),
			GroupID: groupID,
		})
	}
}
