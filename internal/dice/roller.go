package dice

import (
	"math/rand"
	"sort"
)

// RNG is the source of randomness for dice rolls. IntN returns a uniform
// integer in [0, n). Inject a fixed implementation for deterministic
// tests.
type RNG interface {
	IntN(n int) int
}

type systemRNG struct{}

func (systemRNG) IntN(n int) int { return rand.Intn(n) }

// Outcome is the result of rolling an Expression.
type Outcome struct {
	// Rolls holds every die in roll order.
	Rolls []int
	// Kept is the top-keep subset sorted descending, or all rolls in
	// roll order when the expression has no keep clause.
	Kept []int
	// Total is the sum of the kept dice plus the modifier.
	Total int
}

// Roller rolls dice expressions. Rolling has no hidden state: output is
// a pure function of the expression and the RNG stream.
type Roller struct {
	rng RNG
}

// Config holds the dependencies for a Roller
type Config struct {
	// RNG defaults to the shared math/rand source when nil
	RNG RNG
}

// NewRoller creates a Roller. A nil config or nil RNG selects the
// default system source.
func NewRoller(cfg *Config) *Roller {
	rng := RNG(systemRNG{})
	if cfg != nil && cfg.RNG != nil {
		rng = cfg.RNG
	}
	return &Roller{rng: rng}
}

// Roll rolls the expression: Count uniform dice in [1, Sides], keeping
// the highest Keep of them when a keep clause is present.
func (r *Roller) Roll(expr Expression) Outcome {
	rolls := make([]int, expr.Count)
	for i := range rolls {
		rolls[i] = r.rng.IntN(expr.Sides) + 1
	}

	var kept []int
	if expr.Keep > 0 {
		kept = make([]int, len(rolls))
		copy(kept, rolls)
		sort.Sort(sort.Reverse(sort.IntSlice(kept)))
		if expr.Keep < len(kept) {
			kept = kept[:expr.Keep]
		}
	} else {
		kept = make([]int, len(rolls))
		copy(kept, rolls)
	}

	total := expr.Modifier
	for _, v := range kept {
		total += v
	}

	return Outcome{
		Rolls: rolls,
		Kept:  kept,
		Total: total,
	}
}
