// Package model defines the domain types shared across the sales-fit
// analysis pipeline: classifications, compatibility results, scorecards,
// competitive impact, and the assembled analysis report.
package model

// RiskCategory buckets an industry by how restrictive conservative buyers
// are toward it.
type RiskCategory string

const (
	RiskHigh    RiskCategory = "HIGH_RISK"
	RiskMedium  RiskCategory = "MEDIUM_RISK"
	RiskLow     RiskCategory = "LOW_RISK"
	RiskUnknown RiskCategory = "UNKNOWN"
)

// CompatFlag is a tri-state compatibility marker. Enterprise and government
// buyers treat "limited" as workable but requiring review.
type CompatFlag string

const (
	CompatTrue    CompatFlag = "true"
	CompatFalse   CompatFlag = "false"
	CompatLimited CompatFlag = "limited"
)

// IndustryClassification is the result of classifying one company as an
// industry member.
type IndustryClassification struct {
	Category             string       `json:"category"`
	RiskLevel            int          `json:"risk_level"`
	RiskCategory         RiskCategory `json:"risk_category"`
	EnterpriseCompatible CompatFlag   `json:"enterprise_compatible"`
	GovernmentCompatible CompatFlag   `json:"government_compatible"`
	Description          string       `json:"description"`
}

// BuyerType is a buyer archetype with a fixed conservatism profile.
type BuyerType string

const (
	BuyerFortune500 BuyerType = "FORTUNE_500"
	BuyerGovernment BuyerType = "GOVERNMENT"
	BuyerHealthcare BuyerType = "HEALTHCARE"
	BuyerFinancial  BuyerType = "FINANCIAL"
	BuyerEducation  BuyerType = "EDUCATION"
	BuyerStartup    BuyerType = "STARTUP"
	BuyerStandard   BuyerType = "STANDARD"
)

// BuyerClassification is the result of classifying the target company as a
// buyer archetype.
type BuyerClassification struct {
	Type                   BuyerType `json:"type"`
	ConservatismLevel      int       `json:"conservatism_level"`
	ComplianceRequirements string    `json:"compliance_requirements"`
	VendorScreening        string    `json:"vendor_screening"`
	ReputationSensitivity  int       `json:"reputation_sensitivity"`
}

// Company carries the optional descriptive fields callers may supply
// alongside a company name. Every field is optional; absent fields are
// treated as empty.
type Company struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Industry    string `json:"industry,omitempty"`
	MarketCap   string `json:"market_cap,omitempty"`
	Revenue     string `json:"revenue,omitempty"`
	Employees   string `json:"employees,omitempty"`
}
