package analysis

import (
	"fmt"
	"strings"

	"github.com/sells-group/salesfit/internal/model"
)

// tier picks one of three phrasings by score thresholds. The report text
// is deterministic: same scores, same words.
func tier(score float64, high, mid, low string) string {
	switch {
	case score > 7:
		return high
	case score > 5:
		return mid
	default:
		return low
	}
}

// buildNarrative fills the textual report sections of an analysis from
// its scorecard and compatibility result.
func buildNarrative(analysis *model.Analysis, seller, target string) {
	incompatible := analysis.Compatibility.Verdict == model.VerdictIncompatible
	overall := analysis.Scorecard.Overall

	for i := range analysis.Scorecard.Dimensions {
		dim := &analysis.Scorecard.Dimensions[i]
		dim.Rationale = dimensionRationale(*dim, seller, target, incompatible)
	}

	analysis.ExecutiveSummary = executiveSummary(seller, target, overall, analysis.Compatibility)
	analysis.Opportunities = opportunities(seller, target, overall, incompatible)
	analysis.Financial = financialProjection(overall, incompatible)
	analysis.Risks = risks(seller, target, overall, incompatible)
	analysis.Emails = emailTemplates(seller, target, overall, incompatible)
}

func dimensionRationale(dim model.Dimension, seller, target string, incompatible bool) string {
	if incompatible {
		switch dim.Name {
		case model.DimMarketAlignment:
			return fmt.Sprintf("Severe market misalignment between %s and %s. Fundamental industry incompatibility prevents meaningful partnership.", seller, target)
		case model.DimBudgetReadiness:
			return fmt.Sprintf("Zero budget allocation possible. %s's procurement policies categorically exclude %s's industry category.", target, seller)
		case model.DimTechnologyFit:
			return fmt.Sprintf("Complete technical incompatibility. %s's IT governance prohibits integration with %s's platform architecture.", target, seller)
		case model.DimCompetitivePosition:
			return fmt.Sprintf("Zero competitive advantage possible. %s's market position conflicts with %s's value proposition.", target, seller)
		default:
			return fmt.Sprintf("Implementation impossible. %s's organizational structure rejects %s's deployment model.", target, seller)
		}
	}

	pct := int(dim.Score * 10)
	switch dim.Name {
	case model.DimMarketAlignment:
		return fmt.Sprintf("%s and %s demonstrate %s market alignment with %d%% compatibility score.",
			seller, target, tier(dim.Score, "exceptional", "solid", "limited"), pct)
	case model.DimBudgetReadiness:
		return fmt.Sprintf("%s demonstrates %s financial capacity with estimated budget range of $%dK - $%dK.",
			target, tier(dim.Score, "excellent", "strong", "adequate"),
			50+int(dim.Score*30), 200+int(dim.Score*60))
	case model.DimTechnologyFit:
		return fmt.Sprintf("Technical assessment reveals %s integration compatibility with %d%% technical alignment score.",
			tier(dim.Score, "seamless", "strong", "moderate"), pct)
	case model.DimCompetitivePosition:
		return fmt.Sprintf("Competitive analysis shows %s differentiation potential with %d%% advantage score.",
			tier(dim.Score, "strong", "moderate", "limited"), pct)
	default:
		return fmt.Sprintf("Organizational assessment indicates %s readiness with %d%% preparedness score.",
			tier(dim.Score, "excellent", "good", "adequate"), pct)
	}
}

func executiveSummary(seller, target string, overall int, compatibility model.CompatibilityResult) string {
	if compatibility.Verdict == model.VerdictIncompatible {
		return fmt.Sprintf("Partnership between %s and %s is fundamentally non-viable. %s Scores reflect the non-viable nature of this pairing and no engagement is recommended.",
			seller, target, compatibility.Reason)
	}

	var outlook string
	switch {
	case overall >= 75:
		outlook = "strongly recommended with high success probability"
	case overall >= 60:
		outlook = "recommended as a good opportunity"
	case overall >= 45:
		outlook = "viable with moderate risk requiring careful management"
	default:
		outlook = "not recommended given low success probability"
	}

	return fmt.Sprintf("Analysis of the %s to %s sales opportunity yields an overall fit score of %d/100 (%s). The engagement is %s. %s",
		seller, target, overall, compatibility.Verdict, outlook, compatibility.Reason)
}

func opportunities(seller, target string, overall int, incompatible bool) []model.Opportunity {
	if incompatible {
		return []model.Opportunity{{
			UseCase:          "No Viable Partnership Opportunities",
			ValueMagnitude:   model.ValueLow,
			BusinessImpact:   fmt.Sprintf("Due to fundamental incompatibility, no strategic opportunities exist between %s and %s.", seller, target),
			SellerCapability: "Not applicable",
		}}
	}

	magnitude := model.ValueLow
	if overall > 70 {
		magnitude = model.ValueHigh
	} else if overall > 50 {
		magnitude = model.ValueMedium
	}

	efficiency := "10-20%"
	if overall > 70 {
		efficiency = "30-45%"
	} else if overall > 50 {
		efficiency = "20-30%"
	}

	return []model.Opportunity{
		{
			UseCase:          "Enterprise Digital Transformation Initiative",
			ValueMagnitude:   magnitude,
			BusinessImpact:   fmt.Sprintf("Digital transformation enabling %s to achieve %s operational efficiency improvement through automated workflows and streamlined customer engagement.", target, efficiency),
			SellerCapability: fmt.Sprintf("%s's platform and implementation expertise", seller),
		},
		{
			UseCase:          "Data Analytics and Business Intelligence",
			ValueMagnitude:   magnitude,
			BusinessImpact:   fmt.Sprintf("Consolidated reporting and data-driven decision making across %s's operations.", target),
			SellerCapability: fmt.Sprintf("%s's analytics and integration capabilities", seller),
		},
	}
}

func financialProjection(overall int, incompatible bool) *model.FinancialProjection {
	if incompatible {
		return &model.FinancialProjection{
			DealSizeRange:   "$0 - Partnership Not Viable",
			ROIConservative: "Not applicable",
			ROIOptimistic:   "Not applicable",
			PaybackPeriod:   "Not applicable",
		}
	}

	return &model.FinancialProjection{
		DealSizeRange:   fmt.Sprintf("$%dK - $%dK", 75+overall, 250+overall*4),
		ROIConservative: fmt.Sprintf("%d%% over 24 months", overall*5/2),
		ROIOptimistic:   fmt.Sprintf("%d%% over 24 months", overall*3),
		PaybackPeriod:   fmt.Sprintf("%d months to break-even", 22-overall/4),
		KeyDrivers: []string{
			"Operational cost reduction through automation",
			"Revenue growth from improved customer engagement",
			"Lower total cost of ownership versus incumbent tooling",
		},
	}
}

func risks(seller, target string, overall int, incompatible bool) []model.Risk {
	if incompatible {
		return []model.Risk{{
			Risk:       fmt.Sprintf("Fundamental incompatibility between %s and %s", seller, target),
			Severity:   "CRITICAL",
			Mitigation: "No mitigation possible - partnership should not be pursued",
		}}
	}

	budgetSeverity := "MEDIUM"
	if overall > 60 {
		budgetSeverity = "LOW"
	}

	return []model.Risk{
		{
			Risk:       "Budget approval and procurement timeline coordination",
			Severity:   budgetSeverity,
			Mitigation: "Early stakeholder engagement and phased implementation approach",
		},
		{
			Risk:       "Change management resistance",
			Severity:   "MEDIUM",
			Mitigation: "Phased rollout with champion program",
		},
		{
			Risk:       "Incumbent vendor lock-in",
			Severity:   "MEDIUM",
			Mitigation: "ROI-focused displacement strategy",
		},
	}
}

func emailTemplates(seller, target string, overall int, incompatible bool) []model.EmailTemplate {
	if incompatible {
		return nil
	}

	opener := "I've been following your company's growth"
	if overall >= 70 {
		opener = "I've been following your company's impressive growth trajectory"
	}

	return []model.EmailTemplate{
		{
			Type:    "executive_outreach",
			Subject: fmt.Sprintf("%s - Strategic Partnership Opportunity", seller),
			Body: strings.Join([]string{
				"Dear [Executive Name],",
				"",
				fmt.Sprintf("%s at %s, and I believe there is a strong fit between your strategic objectives and what %s delivers.", opener, target, seller),
				"",
				"Would you be open to a brief conversation?",
				"",
				"Best regards",
			}, "\n"),
		},
		{
			Type:    "technical_buyer",
			Subject: fmt.Sprintf("Technical Innovation for %s", target),
			Body: strings.Join([]string{
				"Hi [Name],",
				"",
				fmt.Sprintf("I noticed your team is investing in its platform, and %s's integration capabilities map well onto that work.", seller),
				"",
				"Could we schedule a technical discussion?",
				"",
				"Thanks",
			}, "\n"),
		},
	}
}
