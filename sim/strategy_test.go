package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurant-sim/restaurant-sim/sim/menu"
)

func TestRandomChoice_PicksFromMenu(t *testing.T) {
	m := testMenu(t)
	c := NewRandomChoice(rand.New(rand.NewSource(3)), 3)

	got := c.Choose(m)

	require.Len(t, got, 3)
	for _, it := range got {
		_, err := m.Item(it.Name)
		assert.NoError(t, err)
	}
}

func TestRandomChoice_AtLeastOneDish(t *testing.T) {
	c := NewRandomChoice(rand.New(rand.NewSource(3)), 0)
	assert.Len(t, c.Choose(testMenu(t)), 1)
}

func TestRandomChoice_EmptyMenu(t *testing.T) {
	c := NewRandomChoice(rand.New(rand.NewSource(3)), 2)
	assert.Empty(t, c.Choose(menu.New()))
}

func TestCourseChoice_OnePerSection(t *testing.T) {
	m := testMenu(t)
	c := NewCourseChoice(rand.New(rand.NewSource(5)))

	got := c.Choose(m)

	require.Len(t, got, len(m.Sections()))
	for i, s := range m.Sections() {
		assert.Contains(t, s.Items(), got[i])
	}
}

func TestFixedChoice_ReturnsCopy(t *testing.T) {
	m := testMenu(t)
	soup := testDish(t, m, "Tomato Soup")
	fc := FixedChoice{soup}

	got := fc.Choose(m)
	got[0] = nil

	assert.Same(t, soup, fc[0])
}

func TestUniformGroupSize_WithinRange(t *testing.T) {
	u := NewUniformGroupSize(rand.New(rand.NewSource(1)), 2, 4)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		n := u.Next()
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 4)
		seen[n] = true
	}
	assert.Len(t, seen, 3)
}

func TestNewUniformGroupSize_InvalidRange_Panics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Panics(t, func() { NewUniformGroupSize(rng, 0, 3) })
	assert.Panics(t, func() { NewUniformGroupSize(rng, 4, 3) })
}

func TestSequenceGroupSize_RepeatsLast(t *testing.T) {
	s := NewSequenceGroupSize(3, 1)
	assert.Equal(t, []int{3, 1, 1, 1}, []int{s.Next(), s.Next(), s.Next(), s.Next()})
	assert.Panics(t, func() { NewSequenceGroupSize() })
	assert.Panics(t, func() { NewSequenceGroupSize(2, 0) })
}

func TestConstantGroupSize(t *testing.T) {
	assert.Equal(t, 4, ConstantGroupSize(4).Next())
}

func TestNewChoiceStrategy_Registry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.IsType(t, &RandomChoice{}, NewChoiceStrategy("", rng, 1))
	assert.IsType(t, &RandomChoice{}, NewChoiceStrategy("random", rng, 1))
	assert.IsType(t, &CourseChoice{}, NewChoiceStrategy("course", rng, 1))
	assert.Panics(t, func() { NewChoiceStrategy("chef", rng, 1) })

	for name := range ValidChoiceStrategies {
		assert.True(t, IsValidChoiceStrategy(name))
	}
	assert.False(t, IsValidChoiceStrategy("chef"))
}
