package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/salesfit/internal/classify"
	"github.com/sells-group/salesfit/internal/model"
)

func newTestEngine() *Engine {
	return NewEngine(classify.New())
}

func TestCalculateOppositeIndustries(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		seller string
		target string
	}{
		{"ExxonMobil", "Tesla"},
		{"Tesla", "ExxonMobil"},
		{"McDonald's", "Sweetgreen"},
		{"Walmart", "Amazon"},
	}

	for _, tt := range tests {
		t.Run(tt.seller+"->"+tt.target, func(t *testing.T) {
			got := e.Calculate(tt.seller, tt.target, model.Company{}, model.Company{})
			assert.Equal(t, model.VerdictIncompatible, got.Verdict)
			assert.InDelta(t, 0.15, got.Score, 1e-9)
			assert.NotEmpty(t, got.Details.BlockingFactors)
		})
	}
}

func TestCalculateHighRiskConservativeBuyer(t *testing.T) {
	e := newTestEngine()

	got := e.Calculate("Adult Entertainment Co", "Oracle", model.Company{}, model.Company{})
	assert.Equal(t, model.VerdictIncompatible, got.Verdict)
	assert.InDelta(t, 0.05, got.Score, 1e-9)
	assert.Equal(t, "adult_entertainment", got.Details.SellerClassification.Category)
	assert.Equal(t, model.BuyerFortune500, got.Details.BuyerClassification.Type)
	assert.Contains(t, got.Details.BlockingFactors, "Reputation risk")
}

func TestCalculateMultiplicativePenalties(t *testing.T) {
	e := newTestEngine()

	// Tobacco (risk 7) to a standard buyer (conservatism 5): only the
	// risk penalty applies. 1.0 * (10-7)/10 = 0.3 -> MODERATE band floor
	// is 0.3, so this lands in CHALLENGING.
	got := e.Calculate("Marlboro Tobacco", "Plumbus", model.Company{}, model.Company{})
	assert.InDelta(t, 0.3, got.Score, 1e-9)
	assert.Equal(t, model.VerdictChallenging, got.Verdict)
}

func TestCalculateGovernmentFlagPenalty(t *testing.T) {
	e := newTestEngine()

	// Alcohol: risk 5, government_compatible false. Risk penalty does not
	// fire (risk not > 5); conservatism 10 > 5 and risk 5 > 3 fires
	// (10-10)/10 = 0, then the government flag would multiply a zero.
	got := e.Calculate("Highland Distillery", "US Federal Procurement Office", model.Company{}, model.Company{})
	assert.Equal(t, model.VerdictIncompatible, got.Verdict)
	assert.InDelta(t, 0.0, got.Score, 1e-9)
}

func TestCalculateCompatibleDefault(t *testing.T) {
	e := newTestEngine()

	got := e.Calculate("Acme Software", "Plumbus", model.Company{}, model.Company{})
	assert.Equal(t, model.VerdictCompatible, got.Verdict)
	assert.InDelta(t, 1.0, got.Score, 1e-9)
	assert.Equal(t, "technology", got.Details.SellerClassification.Category)
}

func TestCalculateUsesDescriptions(t *testing.T) {
	e := newTestEngine()

	got := e.Calculate("Leafline", "Plumbus",
		model.Company{Description: "cannabis dispensary chain"},
		model.Company{})
	assert.Equal(t, "cannabis", got.Details.SellerClassification.Category)
}

func TestVerdictThresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  model.Verdict
	}{
		{0.0, model.VerdictIncompatible},
		{0.29, model.VerdictIncompatible},
		{0.3, model.VerdictChallenging},
		{0.59, model.VerdictChallenging},
		{0.6, model.VerdictModerate},
		{0.79, model.VerdictModerate},
		{0.8, model.VerdictCompatible},
		{1.0, model.VerdictCompatible},
	}

	for _, tt := range tests {
		verdict, _ := verdictFor(tt.score, "a", "b")
		assert.Equal(t, tt.want, verdict, "score %v", tt.score)
	}
}

func TestWarnings(t *testing.T) {
	e := newTestEngine()

	result := e.Calculate("Adult Entertainment Co", "Oracle", model.Company{}, model.Company{})
	warnings := Warnings(result)

	levels := make([]model.WarningLevel, 0, len(warnings))
	for _, w := range warnings {
		levels = append(levels, w.Level)
	}
	assert.Contains(t, levels, model.WarnCritical)
	assert.Contains(t, levels, model.WarnSevere)
	assert.Contains(t, levels, model.WarnHigh)

	// Compatible pairing produces no critical warning.
	result = e.Calculate("Acme Software", "Plumbus", model.Company{}, model.Company{})
	for _, w := range Warnings(result) {
		assert.NotEqual(t, model.WarnCritical, w.Level)
	}
}
