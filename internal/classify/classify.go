// Package classify maps free-text company names to industry risk
// categories and buyer conservatism archetypes via ordered keyword-tier
// matching.
package classify

import (
	"github.com/sells-group/salesfit/internal/model"
)

// Classifier evaluates companies against a Ruleset. The zero value is not
// usable; construct with New or NewWithRules.
type Classifier struct {
	rules Ruleset
}

// New returns a Classifier using the built-in rules.
func New() *Classifier {
	return &Classifier{rules: DefaultRuleset()}
}

// NewWithRules returns a Classifier using the given rules. Tier order
// within the ruleset is preserved exactly as given.
func NewWithRules(rules Ruleset) *Classifier {
	return &Classifier{rules: rules}
}

// Industry classifies a company as an industry member. Tiers are checked
// in fixed priority order (high risk, medium, low, then special-cased
// company names); the first rule with a keyword hit is authoritative.
// Blank input falls through to the unknown classification.
func (c *Classifier) Industry(name, description string) model.IndustryClassification {
	text := searchText(name, description)

	tiers := []struct {
		rules    []IndustryRule
		category model.RiskCategory
	}{
		{c.rules.HighRisk, model.RiskHigh},
		{c.rules.MediumRisk, model.RiskMedium},
		{c.rules.LowRisk, model.RiskLow},
	}
	for _, tier := range tiers {
		for _, rule := range tier.rules {
			if _, ok := containsAny(text, rule.Keywords); ok {
				return industryFromRule(rule, tier.category)
			}
		}
	}

	for _, rule := range c.rules.SpecialCases {
		if _, ok := containsAny(text, rule.Keywords); ok {
			return industryFromRule(rule, riskCategoryForLevel(rule.RiskLevel))
		}
	}

	return unknownIndustry()
}

// Buyer classifies the target company as a buyer archetype. A single
// ordered pass; default is the STANDARD mid-range profile.
func (c *Classifier) Buyer(name, description string) model.BuyerClassification {
	text := searchText(name, description)
	for _, rule := range c.rules.Buyers {
		if _, ok := containsAny(text, rule.Keywords); ok {
			return model.BuyerClassification{
				Type:                   rule.Type,
				ConservatismLevel:      rule.ConservatismLevel,
				ComplianceRequirements: rule.ComplianceRequirements,
				VendorScreening:        rule.VendorScreening,
				ReputationSensitivity:  rule.ReputationSensitivity,
			}
		}
	}
	return standardBuyer()
}

func industryFromRule(rule IndustryRule, category model.RiskCategory) model.IndustryClassification {
	return model.IndustryClassification{
		Category:             rule.Category,
		RiskLevel:            rule.RiskLevel,
		RiskCategory:         category,
		EnterpriseCompatible: rule.EnterpriseCompatible,
		GovernmentCompatible: rule.GovernmentCompatible,
		Description:          rule.Description,
	}
}

func riskCategoryForLevel(level int) model.RiskCategory {
	switch {
	case level >= 7:
		return model.RiskHigh
	case level >= 4:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
