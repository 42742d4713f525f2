package model

// Canonical dimension names, in scoring order.
const (
	DimMarketAlignment         = "market_alignment"
	DimBudgetReadiness         = "budget_readiness"
	DimTechnologyFit           = "technology_fit"
	DimCompetitivePosition     = "competitive_position"
	DimImplementationReadiness = "implementation_readiness"
)

// DimensionWeights maps each dimension to its fixed weight. Weights sum
// to 1.0; overall = round(sum(score_i * weight_i) * 10).
var DimensionWeights = map[string]float64{
	DimMarketAlignment:         0.25,
	DimBudgetReadiness:         0.20,
	DimTechnologyFit:           0.20,
	DimCompetitivePosition:     0.20,
	DimImplementationReadiness: 0.15,
}

// DimensionOrder lists the five dimensions in their fixed scoring order.
var DimensionOrder = []string{
	DimMarketAlignment,
	DimBudgetReadiness,
	DimTechnologyFit,
	DimCompetitivePosition,
	DimImplementationReadiness,
}

// Dimension is one weighted scoring axis of a scorecard.
type Dimension struct {
	Name               string  `json:"name"`
	Score              float64 `json:"score"`
	Weight             float64 `json:"weight"`
	Rationale          string  `json:"rationale,omitempty"`
	ValidationAdjusted bool    `json:"validation_adjusted,omitempty"`
	SanityOverride     bool    `json:"sanity_override,omitempty"`
}

// Scorecard holds the overall 0-100 score and its five weighted
// dimensions. Hash and ConsistencyCheck tie a deterministic scorecard back
// to its seed for debugging.
type Scorecard struct {
	Overall          int         `json:"overall_score"`
	Dimensions       []Dimension `json:"dimensions"`
	Hash             string      `json:"hash,omitempty"`
	ConsistencyCheck uint32      `json:"consistency_check,omitempty"`
	Predefined       bool        `json:"predefined,omitempty"`
	Reversed         bool        `json:"reversed,omitempty"`
}

// Dimension returns the named dimension, or nil if absent.
func (s *Scorecard) Dimension(name string) *Dimension {
	for i := range s.Dimensions {
		if s.Dimensions[i].Name == name {
			return &s.Dimensions[i]
		}
	}
	return nil
}

// WeightedOverall recomputes the overall score implied by the dimensions
// and their weights, on the 0-100 scale, without rounding.
func (s *Scorecard) WeightedOverall() float64 {
	var sum, weights float64
	for _, d := range s.Dimensions {
		w := d.Weight
		if w == 0 {
			w = 0.2
		}
		sum += d.Score * w
		weights += w
	}
	if weights == 0 {
		return 0
	}
	return sum / weights * 10
}
