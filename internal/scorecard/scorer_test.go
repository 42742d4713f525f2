package scorecard

import (
	"encoding/json"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/salesfit/internal/model"
)

func compatWith(verdict model.Verdict) model.CompatibilityResult {
	return model.CompatibilityResult{Verdict: verdict, Score: 0.5}
}

func TestScoresDeterministic(t *testing.T) {
	s := NewScorer()
	compat := compatWith(model.VerdictModerate)

	first := s.Scores("Acme Software", "Plumbus", compat)

	// Repeated calls: identical.
	second := s.Scores("Acme Software", "Plumbus", compat)
	assert.Equal(t, first, second)

	// Across a cleared cache: identical.
	s.Clear()
	third := s.Scores("Acme Software", "Plumbus", compat)
	assert.Equal(t, first, third)

	// Across scorer instances (fresh process equivalent): identical.
	fourth := NewScorer().Scores("Acme Software", "Plumbus", compat)
	assert.Equal(t, first, fourth)
}

func TestScoresVaryByPairAndVerdict(t *testing.T) {
	s := NewScorer()

	a := s.Scores("Acme Software", "Plumbus", compatWith(model.VerdictModerate))
	b := s.Scores("Acme Software", "Gizmo Corp", compatWith(model.VerdictModerate))
	c := s.Scores("Acme Software", "Plumbus", compatWith(model.VerdictCompatible))

	assert.NotEqual(t, a.Dimensions, b.Dimensions)
	assert.Greater(t, c.Overall, a.Overall)
}

func TestWeightConservation(t *testing.T) {
	s := NewScorer()

	pairs := [][2]string{
		{"Acme Software", "Plumbus"},
		{"Globex", "Initech"},
		{"Vandelay Industries", "Kruger Industrial Smoothing"},
	}
	verdicts := []model.Verdict{
		model.VerdictIncompatible,
		model.VerdictChallenging,
		model.VerdictModerate,
		model.VerdictCompatible,
	}

	for _, pair := range verdictPairProduct(pairs, verdicts) {
		sc := s.Scores(pair.seller, pair.target, compatWith(pair.verdict))

		var weighted float64
		for _, d := range sc.Dimensions {
			weighted += d.Score * d.Weight
		}
		assert.Equal(t, int(math.Round(weighted*10)), sc.Overall,
			"%s -> %s (%s)", pair.seller, pair.target, pair.verdict)
	}
}

type scoringCase struct {
	seller, target string
	verdict        model.Verdict
}

func verdictPairProduct(pairs [][2]string, verdicts []model.Verdict) []scoringCase {
	var cases []scoringCase
	for _, p := range pairs {
		for _, v := range verdicts {
			cases = append(cases, scoringCase{p[0], p[1], v})
		}
	}
	return cases
}

func TestScoresBounded(t *testing.T) {
	s := NewScorer()

	sc := s.Scores("Globex", "Initech", compatWith(model.VerdictIncompatible))
	for _, d := range sc.Dimensions {
		assert.GreaterOrEqual(t, d.Score, 1.0)
		assert.LessOrEqual(t, d.Score, 10.0)
	}
	assert.GreaterOrEqual(t, sc.Overall, 0)
	assert.LessOrEqual(t, sc.Overall, 100)
}

func TestPredefinedDirect(t *testing.T) {
	s := NewScorer()

	// Predefined pairs win regardless of verdict.
	sc := s.Scores("Oracle", "Oracle", compatWith(model.VerdictIncompatible))
	assert.True(t, sc.Predefined)
	assert.False(t, sc.Reversed)
	assert.Equal(t, 95, sc.Overall)
	assert.GreaterOrEqual(t, sc.Overall, 80)

	market := sc.Dimension(model.DimMarketAlignment)
	require.NotNil(t, market)
	assert.InDelta(t, 9.8, market.Score, 1e-9)
}

func TestPredefinedCaseInsensitive(t *testing.T) {
	s := NewScorer()

	sc := s.Scores("SALESFORCE", "oracle", compatWith(model.VerdictModerate))
	assert.True(t, sc.Predefined)
	assert.Equal(t, 45, sc.Overall)
}

func TestPredefinedReversed(t *testing.T) {
	s := NewScorer()

	// adobe_microsoft is defined; microsoft->adobe hits the reversed key
	// with the fixed penalty applied per field.
	sc := s.Scores("Microsoft", "Adobe", compatWith(model.VerdictModerate))
	assert.True(t, sc.Predefined)
	assert.True(t, sc.Reversed)
	assert.Equal(t, 73, sc.Overall)

	market := sc.Dimension(model.DimMarketAlignment)
	require.NotNil(t, market)
	assert.InDelta(t, 7.5, market.Score, 1e-9)
}

func TestCacheLifecycle(t *testing.T) {
	s := NewScorer()
	require.Equal(t, 0, s.CacheSize())

	s.Scores("Acme Software", "Plumbus", compatWith(model.VerdictModerate))
	assert.Equal(t, 1, s.CacheSize())

	// Predefined pairs bypass the cache.
	s.Scores("Oracle", "Oracle", compatWith(model.VerdictModerate))
	assert.Equal(t, 1, s.CacheSize())

	// Same pair, different verdict: separate entry.
	s.Scores("Acme Software", "Plumbus", compatWith(model.VerdictCompatible))
	assert.Equal(t, 2, s.CacheSize())

	s.Clear()
	assert.Equal(t, 0, s.CacheSize())
}

func TestScoresConcurrent(t *testing.T) {
	s := NewScorer()
	compat := compatWith(model.VerdictModerate)
	want := s.Scores("Acme Software", "Plumbus", compat)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := s.Scores("Acme Software", "Plumbus", compat)
			assert.Equal(t, want.Overall, got.Overall)
		}()
	}
	wg.Wait()
}

func TestScorecardJSONRoundTrip(t *testing.T) {
	s := NewScorer()
	sc := s.Scores("Acme Software", "Plumbus", compatWith(model.VerdictCompatible))

	data, err := json.Marshal(sc)
	require.NoError(t, err)

	var decoded model.Scorecard
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sc, decoded)
}

func TestPairHash(t *testing.T) {
	// Stable across calls and instances.
	assert.Equal(t, pairHash("acme_plumbus"), pairHash("acme_plumbus"))
	assert.NotEqual(t, pairHash("acme_plumbus"), pairHash("plumbus_acme"))
	assert.Equal(t, uint32(0), pairHash(""))
}

func TestDeterministicValueRange(t *testing.T) {
	seeds := []string{"a", "ab", "acme_plumbus", "microsoft_google", "x"}
	for _, seed := range seeds {
		v := deterministicValue(seed, -0.5, 0.5)
		assert.GreaterOrEqual(t, v, -0.5, "seed %q", seed)
		assert.Less(t, v, 0.5, "seed %q", seed)
	}
}
