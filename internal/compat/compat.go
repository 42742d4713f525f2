// Package compat combines industry and buyer classifications into a
// single compatibility verdict for a seller/target pairing.
package compat

import (
	"fmt"

	"github.com/sells-group/salesfit/internal/classify"
	"github.com/sells-group/salesfit/internal/model"
)

// Verdict thresholds: score < 0.3 is INCOMPATIBLE, < 0.6 CHALLENGING,
// < 0.8 MODERATE, else COMPATIBLE. Boundary values belong to the higher
// band.
const (
	incompatibleBelow = 0.3
	challengingBelow  = 0.6
	moderateBelow     = 0.8
)

// oppositeIndustries lists industry pairs whose business models conflict
// so directly that a sale is a non-starter regardless of risk arithmetic.
var oppositeIndustries = [][2]string{
	{"oil_gas", "green_tech"},
	{"fast_food", "health_food"},
	{"tobacco", "healthcare"},
	{"gambling", "education"},
	{"adult_entertainment", "education"},
	{"weapons", "education"},
	{"traditional_retail", "ecommerce"},
}

// Engine computes compatibility results from a shared classifier.
type Engine struct {
	classifier *classify.Classifier
}

// NewEngine returns an Engine backed by the given classifier.
func NewEngine(c *classify.Classifier) *Engine {
	return &Engine{classifier: c}
}

// Calculate derives the compatibility result for a seller selling to a
// target. The target is classified both as a buyer archetype and as an
// industry member; a hospital is simultaneously a HEALTHCARE buyer and a
// healthcare industry company.
func (e *Engine) Calculate(seller, target string, sellerInfo, targetInfo model.Company) model.CompatibilityResult {
	sellerClass := e.classifier.Industry(seller, sellerInfo.Description)
	targetClass := e.classifier.Industry(target, targetInfo.Description)
	buyerClass := e.classifier.Buyer(target, targetInfo.Description)

	details := model.CompatibilityDetails{
		SellerClassification: sellerClass,
		TargetClassification: targetClass,
		BuyerClassification:  buyerClass,
	}

	// Opposite industry pairs short-circuit everything else.
	if opposed(sellerClass.Category, targetClass.Category) {
		details.BlockingFactors = []string{"Opposing industry missions", "Brand conflict", "Strategic misalignment"}
		return model.CompatibilityResult{
			Score:   0.15,
			Verdict: model.VerdictIncompatible,
			Reason: fmt.Sprintf("%s (%s) and %s (%s) operate in fundamentally opposed industries.",
				seller, sellerClass.Description, target, targetClass.Description),
			Details: details,
		}
	}

	// High-risk seller meeting a conservative buyer is virtually
	// impossible regardless of other factors.
	if sellerClass.RiskLevel >= 8 && buyerClass.ConservatismLevel >= 7 {
		details.BlockingFactors = []string{"Industry incompatibility", "Compliance violations", "Reputation risk"}
		return model.CompatibilityResult{
			Score:   0.05,
			Verdict: model.VerdictIncompatible,
			Reason: fmt.Sprintf("%s (%s) is fundamentally incompatible with %s due to industry restrictions and compliance requirements.",
				seller, sellerClass.Description, target),
			Details: details,
		}
	}

	score := 1.0

	if sellerClass.RiskLevel > 5 {
		score *= float64(10-sellerClass.RiskLevel) / 10
	}
	if buyerClass.ConservatismLevel > 5 && sellerClass.RiskLevel > 3 {
		score *= float64(10-buyerClass.ConservatismLevel) / 10
	}
	if buyerClass.Type == model.BuyerGovernment && sellerClass.GovernmentCompatible == model.CompatFalse {
		score *= 0.1
	}
	if buyerClass.Type == model.BuyerFortune500 && sellerClass.EnterpriseCompatible == model.CompatFalse {
		score *= 0.2
	}

	verdict, reason := verdictFor(score, seller, target)

	return model.CompatibilityResult{
		Score:   score,
		Verdict: verdict,
		Reason:  reason,
		Details: details,
	}
}

func opposed(a, b string) bool {
	for _, pair := range oppositeIndustries {
		if (a == pair[0] && b == pair[1]) || (a == pair[1] && b == pair[0]) {
			return true
		}
	}
	return false
}

func verdictFor(score float64, seller, target string) (model.Verdict, string) {
	switch {
	case score < incompatibleBelow:
		return model.VerdictIncompatible, fmt.Sprintf("Severe compatibility issues between %s and %s", seller, target)
	case score < challengingBelow:
		return model.VerdictChallenging, "Significant barriers exist but partnership is possible with effort"
	case score < moderateBelow:
		return model.VerdictModerate, "Some compatibility challenges but generally viable"
	default:
		return model.VerdictCompatible, "Companies are compatible for business engagement"
	}
}
