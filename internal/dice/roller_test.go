package dice_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/dice"
)

// scriptedRNG returns a fixed sequence of values, cycling when exhausted
type scriptedRNG struct {
	values []int
	next   int
}

func (s *scriptedRNG) IntN(n int) int {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

// seededRNG adapts a seeded math/rand source to the dice.RNG interface.
type seededRNG struct {
	r *rand.Rand
}

func newSeededRNG(seed int64) *seededRNG {
	return &seededRNG{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRNG) IntN(n int) int { return s.r.Intn(n) }

func TestRoller_Roll(t *testing.T) {
	t.Run("injected die value with modifier", func(t *testing.T) {
		// Die shows 14 (IntN returns 13), so 1d20+5 totals 19.
		roller := dice.NewRoller(&dice.Config{RNG: &scriptedRNG{values: []int{13}}})

		expr, err := dice.Parse("1d20+5")
		require.NoError(t, err)

		outcome := roller.Roll(expr)
		assert.Equal(t, []int{14}, outcome.Rolls)
		assert.Equal(t, []int{14}, outcome.Kept)
		assert.Equal(t, 19, outcome.Total)
	})

	t.Run("keep highest three of five", func(t *testing.T) {
		roller := dice.NewRoller(&dice.Config{RNG: &scriptedRNG{values: []int{1, 5, 3, 5, 0}}})

		expr, err := dice.Parse("5d6k3")
		require.NoError(t, err)

		outcome := roller.Roll(expr)
		assert.Equal(t, []int{2, 6, 4, 6, 1}, outcome.Rolls)
		assert.Equal(t, []int{6, 6, 4}, outcome.Kept)
		assert.Equal(t, 16, outcome.Total)
	})

	t.Run("no keep clause keeps every die", func(t *testing.T) {
		roller := dice.NewRoller(&dice.Config{RNG: &scriptedRNG{values: []int{0, 1, 2}}})

		expr, err := dice.Parse("3d4")
		require.NoError(t, err)

		outcome := roller.Roll(expr)
		assert.Equal(t, []int{1, 2, 3}, outcome.Rolls)
		assert.Equal(t, outcome.Rolls, outcome.Kept)
		assert.Equal(t, 6, outcome.Total)
	})

	t.Run("zero dice totals the modifier", func(t *testing.T) {
		roller := dice.NewRoller(nil)

		expr, err := dice.Parse("0d6+4")
		require.NoError(t, err)

		outcome := roller.Roll(expr)
		assert.Empty(t, outcome.Rolls)
		assert.Empty(t, outcome.Kept)
		assert.Equal(t, 4, outcome.Total)
	})
}

func TestRoller_DeterministicUnderSeededRNG(t *testing.T) {
	expr, err := dice.Parse("6d10k4-2")
	require.NoError(t, err)

	first := dice.NewRoller(&dice.Config{RNG: newSeededRNG(711)}).Roll(expr)
	second := dice.NewRoller(&dice.Config{RNG: newSeededRNG(711)}).Roll(expr)

	assert.Equal(t, first, second)
}

func TestRoller_KeepProperties(t *testing.T) {
	rng := newSeededRNG(12)
	roller := dice.NewRoller(&dice.Config{RNG: rng})

	for i := 0; i < 200; i++ {
		count := rng.IntN(10) + 1
		keep := rng.IntN(count) + 1
		expr := dice.Expression{Count: count, Sides: 6, Keep: keep}

		outcome := roller.Roll(expr)

		require.Len(t, outcome.Rolls, count)
		require.Len(t, outcome.Kept, keep)

		// Kept is sorted descending.
		assert.True(t, sort.SliceIsSorted(outcome.Kept, func(a, b int) bool {
			return outcome.Kept[a] > outcome.Kept[b]
		}))

		// Kept is a multiset subset of all rolls.
		counts := map[int]int{}
		for _, v := range outcome.Rolls {
			counts[v]++
		}
		for _, v := range outcome.Kept {
			counts[v]--
			assert.GreaterOrEqual(t, counts[v], 0)
		}

		// Every die in [1, sides].
		for _, v := range outcome.Rolls {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 6)
		}
	}
}
