// Package recommend scores the class catalog against a finished
// attribute vector and ranks the best fits.
package recommend

import (
	"math/rand"
	"sort"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
)

// MaxRecommendations caps how many classes a single call returns
const MaxRecommendations = 5

const (
	primaryWeight   = 10.0
	secondaryWeight = 5.0

	jitterFloor = 0.95
	jitterSpan  = 0.10
)

// JitterRNG supplies the per-class score jitter. Float64 returns a
// uniform value in [0, 1). Inject a fixed implementation for
// deterministic tests.
type JitterRNG interface {
	Float64() float64
}

type systemJitter struct{}

func (systemJitter) Float64() float64 { return rand.Float64() }

// Score is one ranked recommendation. Scores are ephemeral: they are
// recomputed (and re-jittered) on every call and never persisted.
type Score struct {
	Class string
	Score float64
}

// Recommender ranks classes against attribute vectors
type Recommender struct {
	rng JitterRNG
}

// Config holds the dependencies for a Recommender
type Config struct {
	// RNG defaults to the shared math/rand source when nil
	RNG JitterRNG
}

// New creates a Recommender. A nil config or nil RNG selects the
// default system source.
func New(cfg *Config) *Recommender {
	rng := JitterRNG(systemJitter{})
	if cfg != nil && cfg.RNG != nil {
		rng = cfg.RNG
	}
	return &Recommender{rng: rng}
}

// Recommend scores every class against the stats and returns up to
// MaxRecommendations results, best first. An empty catalog yields an
// empty result, not an error.
//
// Each score gets an independent multiplicative jitter in [0.95, 1.05),
// drawn fresh per call, to break ties and vary the ordering between
// otherwise-identical requests.
func (r *Recommender) Recommend(stats entities.ScoreSet, classes []entities.Class) []Score {
	if len(classes) == 0 {
		return nil
	}

	scores := make([]Score, 0, len(classes))
	for _, class := range classes {
		jitter := jitterFloor + jitterSpan*r.rng.Float64()
		scores = append(scores, Score{
			Class: class.Name,
			Score: baseScore(stats, class) * jitter,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if len(scores) > MaxRecommendations {
		scores = scores[:MaxRecommendations]
	}
	return scores
}

// baseScore is the pre-jitter fit of a class: the mean of its primary
// attributes weighted 10x plus the mean of its secondaries weighted 5x.
// Normalizing by list length keeps classes with three primaries from
// outscoring classes with two just by having more additive terms.
// Missing attributes read as the default score of 10.
func baseScore(stats entities.ScoreSet, class entities.Class) float64 {
	score := 0.0
	if len(class.PrimaryStats) > 0 {
		score += mean(stats, class.PrimaryStats) * primaryWeight
	}
	if len(class.SecondaryStats) > 0 {
		score += mean(stats, class.SecondaryStats) * secondaryWeight
	}
	return score
}

func mean(stats entities.ScoreSet, attrs []entities.Attribute) float64 {
	sum := 0
	for _, attr := range attrs {
		sum += stats.Get(attr)
	}
	return float64(sum) / float64(len(attrs))
}
