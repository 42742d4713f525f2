package model

// CompetitionType classifies how directly two companies compete.
type CompetitionType string

const (
	CompetitionNone      CompetitionType = "NONE"
	CompetitionIndirect  CompetitionType = "INDIRECT_COMPETITOR"
	CompetitionPossible  CompetitionType = "POSSIBLE_COMPETITOR"
	CompetitionLikely    CompetitionType = "LIKELY_COMPETITOR"
	CompetitionStrong    CompetitionType = "STRONG_COMPETITOR"
	CompetitionDirect    CompetitionType = "DIRECT_COMPETITOR"
	CompetitionKnown     CompetitionType = "KNOWN_COMPETITOR"
	CompetitionIndustry  CompetitionType = "INDUSTRY_COMPETITOR"
	CompetitionArchRival CompetitionType = "ARCH_RIVALS"
)

// SignalStrength tags a single piece of competitive evidence.
type SignalStrength string

const (
	SignalHigh   SignalStrength = "HIGH"
	SignalMedium SignalStrength = "MEDIUM"
)

// Signal is one piece of textual or financial evidence that two companies
// compete.
type Signal struct {
	Type     string         `json:"type"`
	Evidence string         `json:"evidence"`
	Source   string         `json:"source,omitempty"`
	Strength SignalStrength `json:"strength"`
	Keyword  string         `json:"keyword,omitempty"`
	Context  string         `json:"context,omitempty"`
}

// CompetitiveImpact is the competitor detector's output: a percentage
// score reduction (capped at 85) and the evidence behind it.
type CompetitiveImpact struct {
	ScoreReduction  int             `json:"score_reduction"`
	CompetitionType CompetitionType `json:"competition_type"`
	Reasons         []string        `json:"reasons,omitempty"`
	Evidence        []Signal        `json:"evidence,omitempty"`
}
