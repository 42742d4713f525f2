package model

// Verdict is the coarse compatibility bucket for a seller/target pairing.
type Verdict string

const (
	VerdictIncompatible Verdict = "INCOMPATIBLE"
	VerdictChallenging  Verdict = "CHALLENGING"
	VerdictModerate     Verdict = "MODERATE"
	VerdictCompatible   Verdict = "COMPATIBLE"
)

// CompatibilityDetails carries the classifications behind a compatibility
// result for downstream consumers (report text, warnings).
type CompatibilityDetails struct {
	SellerClassification IndustryClassification `json:"seller_classification"`
	TargetClassification IndustryClassification `json:"target_classification"`
	BuyerClassification  BuyerClassification    `json:"buyer_classification"`
	BlockingFactors      []string               `json:"blocking_factors,omitempty"`
}

// CompatibilityResult is the compatibility engine's output: a score in
// [0,1], the verdict band it maps to, and the classifications it was
// derived from.
type CompatibilityResult struct {
	Score   float64              `json:"score"`
	Verdict Verdict              `json:"verdict"`
	Reason  string               `json:"reason"`
	Details CompatibilityDetails `json:"details"`
}

// WarningLevel orders compatibility warnings by severity.
type WarningLevel string

const (
	WarnCritical WarningLevel = "CRITICAL"
	WarnSevere   WarningLevel = "SEVERE"
	WarnHigh     WarningLevel = "HIGH"
	WarnMedium   WarningLevel = "MEDIUM"
)

// CompatibilityWarning is a human-readable caution derived from the
// classification pair.
type CompatibilityWarning struct {
	Level   WarningLevel `json:"level"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
}
