package sim

import (
	"fmt"

	"github.com/restaurant-sim/restaurant-sim/sim/trace"
)

// GroupConfig groups admission parameters.
type GroupConfig struct {
	MinSize int // smallest group the generator yields (≥ 1)
	MaxSize int // largest group the generator yields (≥ MinSize)
}

// ChoiceConfig groups dish-choice parameters.
type ChoiceConfig struct {
	Strategy        string // "random" (default) or "course"
	DishesPerClient int    // dishes per client for "random" (default 1)
}

// SimConfig holds everything NewSimulatorFromConfig needs beyond the
// Restaurant itself.
type SimConfig struct {
	Seed       int64
	Groups     GroupConfig
	Choice     ChoiceConfig
	TraceLevel trace.TraceLevel
}

// DefaultSimConfig returns the configuration used when nothing is overridden:
// groups of 1–6, one random dish per client, no tracing.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Seed:       42,
		Groups:     GroupConfig{MinSize: 1, MaxSize: 6},
		Choice:     ChoiceConfig{Strategy: "random", DishesPerClient: 1},
		TraceLevel: trace.TraceLevelNone,
	}
}

// Validate checks parameter ranges and policy names.
func (c SimConfig) Validate() error {
	if c.Groups.MinSize < 1 {
		return fmt.Errorf("group min size must be positive, got %d", c.Groups.MinSize)
	}
	if c.Groups.MaxSize < c.Groups.MinSize {
		return fmt.Errorf("group max size %d is below min size %d", c.Groups.MaxSize, c.Groups.MinSize)
	}
	if !IsValidChoiceStrategy(c.Choice.Strategy) {
		return fmt.Errorf("unknown choice strategy %q", c.Choice.Strategy)
	}
	if c.Choice.DishesPerClient < 0 {
		return fmt.Errorf("dishes per client must be non-negative, got %d", c.Choice.DishesPerClient)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}
