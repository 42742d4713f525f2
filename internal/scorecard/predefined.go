package scorecard

import (
	"strings"

	"github.com/sells-group/salesfit/internal/model"
)

// predefinedScore is a hand-picked score tuple for a specific pair.
type predefinedScore struct {
	overall                                                 int
	market, budget, technology, competitive, implementation float64
}

// predefinedScores overrides computed scores for specific seller_target
// pairs (lower-cased). Checked before the cache and the hash: these pairs
// always return the same hand-picked values.
var predefinedScores = map[string]predefinedScore{
	// Tech giants selling to each other.
	"salesforce_oracle": {45, 4.5, 4.8, 4.2, 4.0, 5.0},
	"microsoft_google":  {42, 4.0, 4.5, 4.0, 3.8, 4.5},
	"salesforce_apple":  {65, 6.8, 6.2, 6.5, 6.0, 7.0},
	"adobe_microsoft":   {78, 8.0, 7.5, 8.2, 7.8, 7.5},

	// Problematic combinations.
	"pornhub_microsoft":                  {5, 0.5, 0.8, 0.6, 0.4, 0.5},
	"pornhub_oracle":                     {5, 0.5, 0.8, 0.6, 0.4, 0.5},
	"adult entertainment company_oracle": {2, 0.2, 0.3, 0.3, 0.1, 0.2},

	// Same company.
	"microsoft_microsoft":   {95, 9.8, 9.5, 9.8, 9.0, 9.5},
	"oracle_oracle":         {95, 9.8, 9.5, 9.8, 9.0, 9.5},
	"salesforce_salesforce": {95, 9.8, 9.5, 9.8, 9.0, 9.5},
}

// reversedPenalty is subtracted per field when a pair matches only in the
// reverse direction.
var reversedPenalty = predefinedScore{5, 0.5, 0.3, 0.2, 0.8, 0.3}

// lookupPredefined returns the hand-picked scorecard for a pair, checking
// the direct key first and the reversed key second. Reversed hits carry a
// small fixed penalty. Returns nil when neither key is present.
func lookupPredefined(seller, target string) *model.Scorecard {
	key := strings.ToLower(seller) + "_" + strings.ToLower(target)
	if ps, ok := predefinedScores[key]; ok {
		sc := scorecardFrom(ps)
		sc.Predefined = true
		return &sc
	}

	reverseKey := strings.ToLower(target) + "_" + strings.ToLower(seller)
	if ps, ok := predefinedScores[reverseKey]; ok {
		adjusted := predefinedScore{
			overall:        ps.overall - reversedPenalty.overall,
			market:         ps.market - reversedPenalty.market,
			budget:         ps.budget - reversedPenalty.budget,
			technology:     ps.technology - reversedPenalty.technology,
			competitive:    ps.competitive - reversedPenalty.competitive,
			implementation: ps.implementation - reversedPenalty.implementation,
		}
		sc := scorecardFrom(adjusted)
		sc.Predefined = true
		sc.Reversed = true
		return &sc
	}

	return nil
}

func scorecardFrom(ps predefinedScore) model.Scorecard {
	return model.Scorecard{
		Overall: ps.overall,
		Dimensions: []model.Dimension{
			{Name: model.DimMarketAlignment, Score: ps.market, Weight: model.DimensionWeights[model.DimMarketAlignment]},
			{Name: model.DimBudgetReadiness, Score: ps.budget, Weight: model.DimensionWeights[model.DimBudgetReadiness]},
			{Name: model.DimTechnologyFit, Score: ps.technology, Weight: model.DimensionWeights[model.DimTechnologyFit]},
			{Name: model.DimCompetitivePosition, Score: ps.competitive, Weight: model.DimensionWeights[model.DimCompetitivePosition]},
			{Name: model.DimImplementationReadiness, Score: ps.implementation, Weight: model.DimensionWeights[model.DimImplementationReadiness]},
		},
	}
}
