package model

import "time"

// ConfidenceLevel grades how much the validator trusts an analysis.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "HIGH"
	ConfidenceMedium ConfidenceLevel = "MEDIUM"
	ConfidenceLow    ConfidenceLevel = "LOW"
)

// Adjustment records one score correction made by the validator.
type Adjustment struct {
	Field    string  `json:"field"`
	Original float64 `json:"original"`
	Adjusted float64 `json:"adjusted"`
	Reason   string  `json:"reason"`
}

// ValidationWarning flags a consistency or sanity issue found during
// validation.
type ValidationWarning struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Details  string `json:"details,omitempty"`
	Severity string `json:"severity,omitempty"`
}

// ValidationReport summarizes what the validator changed and how much it
// trusts the result.
type ValidationReport struct {
	OriginalScore   int                 `json:"original_score"`
	AdjustedScore   int                 `json:"adjusted_score"`
	AdjustmentsMade []Adjustment        `json:"adjustments_made"`
	Warnings        []ValidationWarning `json:"warnings"`
	Compatibility   CompatibilityResult `json:"compatibility"`
	ConfidenceScore int                 `json:"confidence_score"`
	ConfidenceLevel ConfidenceLevel     `json:"confidence_level"`
}

// CriticalWarning is attached to an analysis when the pairing is judged
// fundamentally non-viable.
type CriticalWarning struct {
	Level          WarningLevel `json:"level"`
	Message        string       `json:"message"`
	Details        string       `json:"details,omitempty"`
	Recommendation string       `json:"recommendation,omitempty"`
}

// ValueMagnitude sizes a strategic opportunity.
type ValueMagnitude string

const (
	ValueHigh   ValueMagnitude = "HIGH"
	ValueMedium ValueMagnitude = "MEDIUM"
	ValueLow    ValueMagnitude = "LOW"
)

// Opportunity is one business use case where the seller can add value.
type Opportunity struct {
	UseCase          string         `json:"use_case"`
	ValueMagnitude   ValueMagnitude `json:"value_magnitude"`
	BusinessImpact   string         `json:"business_impact"`
	SellerCapability string         `json:"seller_capability"`
}

// FinancialProjection estimates deal economics for the pairing.
type FinancialProjection struct {
	DealSizeRange   string   `json:"deal_size_range"`
	ROIConservative string   `json:"roi_conservative"`
	ROIOptimistic   string   `json:"roi_optimistic"`
	PaybackPeriod   string   `json:"payback_period"`
	KeyDrivers      []string `json:"key_drivers,omitempty"`
}

// Risk is one obstacle to the engagement, with a mitigation.
type Risk struct {
	Risk       string `json:"risk"`
	Severity   string `json:"severity"`
	Mitigation string `json:"mitigation"`
}

// EmailTemplate is one generated outreach email.
type EmailTemplate struct {
	Type    string `json:"type"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Analysis is the full sales-fit report for one seller/target pairing.
type Analysis struct {
	ID            string    `json:"id"`
	SellerCompany string    `json:"seller_company"`
	TargetCompany string    `json:"target_company"`
	CreatedAt     time.Time `json:"created_at"`
	Methodology   string    `json:"analysis_methodology,omitempty"`

	Scorecard        Scorecard            `json:"scorecard"`
	Compatibility    CompatibilityResult  `json:"compatibility_check"`
	ExecutiveSummary string               `json:"executive_summary,omitempty"`
	Opportunities    []Opportunity        `json:"opportunities,omitempty"`
	Financial        *FinancialProjection `json:"financial_analysis,omitempty"`
	Risks            []Risk               `json:"risk_assessment,omitempty"`
	Emails           []EmailTemplate      `json:"email_templates,omitempty"`

	Warnings          []CompatibilityWarning `json:"warnings,omitempty"`
	CompetitiveImpact *CompetitiveImpact     `json:"competitive_impact,omitempty"`
	ValidationReport  *ValidationReport      `json:"validation_report,omitempty"`
	CriticalWarning   *CriticalWarning       `json:"critical_warning,omitempty"`
}
