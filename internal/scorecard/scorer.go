// Package scorecard derives deterministic five-dimension scorecards for
// seller/target pairings. Identical inputs always yield identical
// scorecards: the only variation source is a fixed string hash of the
// pair, never randomness or wall-clock time.
package scorecard

import (
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/sells-group/salesfit/internal/model"
)

// baseScores is the per-verdict starting 5-tuple, in fixed dimension
// order (market, budget, technology, competitive, implementation).
var baseScores = map[model.Verdict][5]float64{
	model.VerdictIncompatible: {1.5, 2.0, 1.8, 1.2, 1.5},
	model.VerdictChallenging:  {4.0, 3.5, 4.2, 3.8, 4.0},
	model.VerdictModerate:     {6.0, 5.5, 6.2, 5.8, 6.0},
	model.VerdictCompatible:   {7.5, 7.0, 7.8, 7.2, 7.5},
}

// adjustmentMultipliers scales the single pair-hash adjustment per
// dimension, same fixed order as baseScores.
var adjustmentMultipliers = [5]float64{1.0, 0.8, 1.2, 0.9, 1.1}

// Scorer computes deterministic scorecards and memoizes them for the
// lifetime of the process. Construct once and share; the cache is safe
// for concurrent use.
type Scorer struct {
	mu    sync.Mutex
	cache map[string]model.Scorecard
}

// NewScorer returns a Scorer with an empty cache.
func NewScorer() *Scorer {
	return &Scorer{cache: make(map[string]model.Scorecard)}
}

// Scores returns the scorecard for a pairing. Predefined pair overrides
// take absolute priority; otherwise the result is memoized per
// (seller, target, verdict) and computed fresh on first use.
func (s *Scorer) Scores(seller, target string, compatibility model.CompatibilityResult) model.Scorecard {
	if predefined := lookupPredefined(seller, target); predefined != nil {
		zap.L().Debug("scorecard: using predefined scores",
			zap.String("seller", seller),
			zap.String("target", target),
			zap.Bool("reversed", predefined.Reversed),
		)
		return *predefined
	}

	cacheKey := strings.ToLower(seller) + "_" + strings.ToLower(target) + "_" + string(compatibility.Verdict)

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache[cacheKey]; ok {
		return cached
	}

	sc := compute(seller, target, compatibility.Verdict)
	s.cache[cacheKey] = sc

	zap.L().Debug("scorecard: computed and cached",
		zap.String("seller", seller),
		zap.String("target", target),
		zap.String("verdict", string(compatibility.Verdict)),
		zap.Int("overall", sc.Overall),
	)
	return sc
}

// Clear empties the memoization cache. Intended for test isolation.
func (s *Scorer) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]model.Scorecard)
}

// CacheSize returns the number of memoized scorecards.
func (s *Scorer) CacheSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// compute derives the scorecard from the verdict's base tuple and the
// pair-hash adjustment.
func compute(seller, target string, verdict model.Verdict) model.Scorecard {
	pairKey := strings.ToLower(seller) + "_" + strings.ToLower(target)

	base, ok := baseScores[verdict]
	if !ok {
		base = [5]float64{5.0, 5.0, 5.0, 5.0, 5.0}
	}

	adjustment := deterministicValue(pairKey, -0.5, 0.5)

	dimensions := make([]model.Dimension, len(model.DimensionOrder))
	var weighted float64
	for i, name := range model.DimensionOrder {
		score := round1(base[i] + adjustment*adjustmentMultipliers[i])
		score = clamp(score, 1, 10)
		weight := model.DimensionWeights[name]
		dimensions[i] = model.Dimension{Name: name, Score: score, Weight: weight}
		weighted += score * weight
	}

	return model.Scorecard{
		Overall:          int(math.Round(weighted * 10)),
		Dimensions:       dimensions,
		Hash:             pairKey,
		ConsistencyCheck: pairHash(pairKey),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
