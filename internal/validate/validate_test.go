package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/salesfit/internal/classify"
	"github.com/sells-group/salesfit/internal/compat"
	"github.com/sells-group/salesfit/internal/model"
)

func newValidator() *Validator {
	return New(compat.NewEngine(classify.New()))
}

func flatScorecard(overall int, score float64) model.Scorecard {
	dims := make([]model.Dimension, 0, len(model.DimensionOrder))
	for _, name := range model.DimensionOrder {
		dims = append(dims, model.Dimension{
			Name:   name,
			Score:  score,
			Weight: model.DimensionWeights[name],
		})
	}
	return model.Scorecard{Overall: overall, Dimensions: dims}
}

func TestValidateBandClampIncompatible(t *testing.T) {
	v := newValidator()
	analysis := model.Analysis{Scorecard: flatScorecard(85, 8.5)}

	got := v.Validate(analysis, "Adult Entertainment Co", "Oracle", model.Company{}, model.Company{})

	require.NotNil(t, got.ValidationReport)
	assert.Equal(t, model.VerdictIncompatible, got.ValidationReport.Compatibility.Verdict)
	assert.LessOrEqual(t, got.Scorecard.Overall, 20)
	for _, dim := range got.Scorecard.Dimensions {
		assert.LessOrEqual(t, dim.Score, 3.0)
	}
	assert.NotEmpty(t, got.ValidationReport.AdjustmentsMade)
	assert.Equal(t, 85, got.ValidationReport.OriginalScore)
}

func TestValidateSanityProblematicEnterprise(t *testing.T) {
	v := newValidator()
	analysis := model.Analysis{Scorecard: flatScorecard(85, 8.5)}

	got := v.Validate(analysis, "Adult Entertainment Co", "Oracle", model.Company{}, model.Company{})

	assert.LessOrEqual(t, got.Scorecard.Overall, 10)
	for _, dim := range got.Scorecard.Dimensions {
		assert.LessOrEqual(t, dim.Score, 2.0)
		assert.True(t, dim.SanityOverride)
	}

	var sanity bool
	for _, w := range got.ValidationReport.Warnings {
		if w.Type == "SANITY_CHECK" && w.Severity == "CRITICAL" {
			sanity = true
		}
	}
	assert.True(t, sanity)
}

func TestValidateCriticalWarning(t *testing.T) {
	v := newValidator()
	analysis := model.Analysis{Scorecard: flatScorecard(15, 1.5)}

	got := v.Validate(analysis, "Adult Entertainment Co", "Oracle", model.Company{}, model.Company{})

	require.NotNil(t, got.CriticalWarning)
	assert.Equal(t, model.WarnCritical, got.CriticalWarning.Level)
	assert.Contains(t, got.CriticalWarning.Recommendation, "DO NOT PROCEED")
}

func TestValidateSelfPartnershipPredefined(t *testing.T) {
	v := newValidator()
	scorecard := flatScorecard(95, 9.5)
	analysis := model.Analysis{Scorecard: scorecard}

	got := v.Validate(analysis, "Oracle", "Oracle", model.Company{}, model.Company{})

	assert.Equal(t, 95, got.Scorecard.Overall)
	for _, dim := range got.Scorecard.Dimensions {
		assert.GreaterOrEqual(t, dim.Score, 9.0)
	}
	assert.Empty(t, got.ValidationReport.AdjustmentsMade)
}

func TestValidateSelfPartnershipRaisesLowScores(t *testing.T) {
	v := newValidator()
	analysis := model.Analysis{Scorecard: flatScorecard(60, 6.0)}

	got := v.Validate(analysis, "Plumbus", "plumbus", model.Company{}, model.Company{})

	assert.Equal(t, 95, got.Scorecard.Overall)
	for _, dim := range got.Scorecard.Dimensions {
		assert.GreaterOrEqual(t, dim.Score, 9.0)
		assert.True(t, dim.SanityOverride)
	}
	require.Len(t, got.ValidationReport.Warnings, 1)
	assert.Equal(t, "SANITY_CHECK", got.ValidationReport.Warnings[0].Type)
}

func TestValidateRivalPairCap(t *testing.T) {
	v := newValidator()
	analysis := model.Analysis{Scorecard: flatScorecard(70, 7.0)}

	got := v.Validate(analysis, "Uber", "Lyft", model.Company{}, model.Company{})

	assert.Equal(t, 45, got.Scorecard.Overall)

	var sanity bool
	for _, w := range got.ValidationReport.Warnings {
		if w.Type == "SANITY_CHECK" {
			sanity = true
		}
	}
	assert.True(t, sanity)
}

func TestValidateConsistencyWarningOverall(t *testing.T) {
	v := newValidator()
	// Dimensions imply 20, declared overall is 90.
	analysis := model.Analysis{Scorecard: flatScorecard(90, 2.0)}

	got := v.Validate(analysis, "Acme Software", "Plumbus", model.Company{}, model.Company{})

	assert.Equal(t, 90, got.Scorecard.Overall, "consistency check must not rewrite the overall")

	var consistency bool
	for _, w := range got.ValidationReport.Warnings {
		if w.Type == "CONSISTENCY" {
			consistency = true
		}
	}
	assert.True(t, consistency)
}

func TestCheckConsistencyZeroOverall(t *testing.T) {
	// A zero overall against nonzero dimensions is an inconsistency,
	// not a free pass.
	warning, ok := checkConsistency(flatScorecard(0, 5.0))
	assert.False(t, ok)
	assert.Equal(t, "CONSISTENCY", warning.Type)

	// All-zero scorecards stay silent.
	_, ok = checkConsistency(flatScorecard(0, 0))
	assert.True(t, ok)
}

func TestValidateConsistencyWarningSpread(t *testing.T) {
	v := newValidator()
	scorecard := flatScorecard(55, 5.5)
	scorecard.Dimensions[0].Score = 10
	scorecard.Dimensions[1].Score = 1

	got := newValidatedCopy(t, v, scorecard)

	var consistency bool
	for _, w := range got.ValidationReport.Warnings {
		if w.Type == "CONSISTENCY" {
			consistency = true
		}
	}
	assert.True(t, consistency)
}

func newValidatedCopy(t *testing.T, v *Validator, scorecard model.Scorecard) model.Analysis {
	t.Helper()
	return v.Validate(model.Analysis{Scorecard: scorecard}, "Acme Software", "Plumbus", model.Company{}, model.Company{})
}

func TestValidateChallengingBand(t *testing.T) {
	v := newValidator()
	analysis := model.Analysis{Scorecard: flatScorecard(60, 7.0)}

	got := v.Validate(analysis, "Marlboro Tobacco", "Plumbus", model.Company{}, model.Company{})

	assert.Equal(t, model.VerdictChallenging, got.ValidationReport.Compatibility.Verdict)
	assert.Equal(t, 50, got.Scorecard.Overall)
	for _, dim := range got.Scorecard.Dimensions {
		assert.LessOrEqual(t, dim.Score, 6.0)
		assert.True(t, dim.ValidationAdjusted)
	}
	assert.Equal(t, model.ConfidenceLow, got.ValidationReport.ConfidenceLevel)
}

func TestValidateCleanPassthrough(t *testing.T) {
	v := newValidator()
	analysis := model.Analysis{Scorecard: flatScorecard(75, 7.5)}

	got := v.Validate(analysis, "Acme Software", "Plumbus", model.Company{}, model.Company{})

	assert.Equal(t, 75, got.Scorecard.Overall)
	assert.Empty(t, got.ValidationReport.AdjustmentsMade)
	assert.Empty(t, got.ValidationReport.Warnings)
	assert.Equal(t, model.ConfidenceHigh, got.ValidationReport.ConfidenceLevel)
	assert.Equal(t, 100, got.ValidationReport.ConfidenceScore)
	assert.Nil(t, got.CriticalWarning)
}

func TestValidateIdempotent(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name     string
		seller   string
		target   string
		analysis model.Analysis
	}{
		{"band clamp", "Adult Entertainment Co", "Oracle", model.Analysis{Scorecard: flatScorecard(85, 8.5)}},
		{"self partnership", "Plumbus", "Plumbus", model.Analysis{Scorecard: flatScorecard(40, 4.0)}},
		{"rival pair", "Uber", "Lyft", model.Analysis{Scorecard: flatScorecard(70, 7.0)}},
		{"clean", "Acme Software", "Plumbus", model.Analysis{Scorecard: flatScorecard(75, 7.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := v.Validate(tt.analysis, tt.seller, tt.target, model.Company{}, model.Company{})
			second := v.Validate(first, tt.seller, tt.target, model.Company{}, model.Company{})

			assert.Empty(t, second.ValidationReport.AdjustmentsMade, "second pass must be a fixed point")
			assert.Equal(t, first.Scorecard.Overall, second.Scorecard.Overall)
			for i := range first.Scorecard.Dimensions {
				assert.Equal(t, first.Scorecard.Dimensions[i].Score, second.Scorecard.Dimensions[i].Score)
			}
		})
	}
}

func TestValidateConfidencePenalties(t *testing.T) {
	v := newValidator()

	// INCOMPATIBLE verdict alone costs 30 points.
	got := v.Validate(model.Analysis{Scorecard: flatScorecard(10, 1.0)},
		"Adult Entertainment Co", "Oracle", model.Company{}, model.Company{})
	assert.Equal(t, 70, got.ValidationReport.ConfidenceScore)
	assert.Equal(t, model.ConfidenceMedium, got.ValidationReport.ConfidenceLevel)

	// Confidence never drops below 10.
	got = v.Validate(model.Analysis{Scorecard: flatScorecard(100, 10.0)},
		"Adult Entertainment Co", "Oracle", model.Company{}, model.Company{})
	assert.GreaterOrEqual(t, got.ValidationReport.ConfidenceScore, 10)
	assert.Equal(t, model.ConfidenceLow, got.ValidationReport.ConfidenceLevel)
}
