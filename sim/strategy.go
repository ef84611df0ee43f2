package sim

import (
	"fmt"
	"math/rand"

	"github.com/restaurant-sim/restaurant-sim/sim/menu"
)

// ChoiceStrategy decides which dishes a seated client orders.
// Implementations must not modify the menu.
type ChoiceStrategy interface {
	Choose(m *menu.Menu) []*menu.Item
}

// GroupSizer supplies the size of each admitted group. Next must return a
// positive integer.
type GroupSizer interface {
	Next() int
}

// RandomChoice picks Dishes items uniformly from the whole menu, with
// replacement.
type RandomChoice struct {
	rng    *rand.Rand
	Dishes int
}

// NewRandomChoice creates a RandomChoice drawing from rng.
func NewRandomChoice(rng *rand.Rand, dishes int) *RandomChoice {
	return &RandomChoice{rng: rng, Dishes: max(dishes, 1)}
}

func (c *RandomChoice) Choose(m *menu.Menu) []*menu.Item {
	items := m.Items()
	if len(items) == 0 {
		return nil
	}
	out := make([]*menu.Item, c.Dishes)
	for i := range out {
		out[i] = items[c.rng.Intn(len(items))]
	}
	return out
}

// CourseChoice picks one random item from every non-empty section, so each
// client gets a full course.
type CourseChoice struct {
	rng *rand.Rand
}

// NewCourseChoice creates a CourseChoice drawing from rng.
func NewCourseChoice(rng *rand.Rand) *CourseChoice {
	return &CourseChoice{rng: rng}
}

func (c *CourseChoice) Choose(m *menu.Menu) []*menu.Item {
	var out []*menu.Item
	for _, s := range m.Sections() {
		items := s.Items()
		if len(items) == 0 {
			continue
		}
		out = append(out, items[c.rng.Intn(len(items))])
	}
	return out
}

// FixedChoice orders the same dishes for every client.
type FixedChoice []*menu.Item

func (c FixedChoice) Choose(_ *menu.Menu) []*menu.Item {
	out := make([]*menu.Item, len(c))
	copy(out, c)
	return out
}

// UniformGroupSize draws sizes uniformly from [Min, Max].
type UniformGroupSize struct {
	rng      *rand.Rand
	Min, Max int
}

// NewUniformGroupSize creates a sizer over [lo, hi]. Panics unless 1 <= lo <= hi.
func NewUniformGroupSize(rng *rand.Rand, lo, hi int) *UniformGroupSize {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("NewUniformGroupSize: invalid range [%d, %d]", lo, hi))
	}
	return &UniformGroupSize{rng: rng, Min: lo, Max: hi}
}

func (u *UniformGroupSize) Next() int {
	return u.Min + u.rng.Intn(u.Max-u.Min+1)
}

// ConstantGroupSize always returns the same size.
type ConstantGroupSize int

func (c ConstantGroupSize) Next() int {
	return int(c)
}

// SequenceGroupSize replays fixed sizes in order, then repeats the last one.
type SequenceGroupSize struct {
	sizes []int
	next  int
}

// NewSequenceGroupSize creates a sizer replaying sizes. Panics if sizes is
// empty or holds a non-positive value.
func NewSequenceGroupSize(sizes ...int) *SequenceGroupSize {
	if len(sizes) == 0 {
		panic("NewSequenceGroupSize: sizes must not be empty")
	}
	for _, s := range sizes {
		if s < 1 {
			panic(fmt.Sprintf("NewSequenceGroupSize: size must be positive, got %d", s))
		}
	}
	return &SequenceGroupSize{sizes: sizes}
}

func (s *SequenceGroupSize) Next() int {
	v := s.sizes[min(s.next, len(s.sizes)-1)]
	s.next++
	return v
}

// ValidChoiceStrategies is the set of recognized choice strategy names.
// Shared by SimConfig.Validate() and NewChoiceStrategy() to avoid duplication.
var ValidChoiceStrategies = map[string]bool{"": true, "random": true, "course": true}

// IsValidChoiceStrategy reports whether name is a recognized strategy.
func IsValidChoiceStrategy(name string) bool {
	return ValidChoiceStrategies[name]
}

// NewChoiceStrategy creates a choice strategy by name.
// An empty string defaults to "random".
// Panics on unrecognized names.
func NewChoiceStrategy(name string, rng *rand.Rand, dishesPerClient int) ChoiceStrategy {
	if !IsValidChoiceStrategy(name) {
		panic(fmt.Sprintf("unknown choice strategy %q", name))
	}
	switch name {
	case "", "random":
		return NewRandomChoice(rng, dishesPerClient)
	case "course":
		return NewCourseChoice(rng)
	default:
		panic(fmt.Sprintf("unhandled choice strategy %q", name))
	}
}
