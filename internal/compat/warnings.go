package compat

import (
	"fmt"

	"github.com/sells-group/salesfit/internal/model"
)

// Warnings derives human-readable cautions from a compatibility result,
// ordered roughly by severity.
func Warnings(result model.CompatibilityResult) []model.CompatibilityWarning {
	var warnings []model.CompatibilityWarning

	if result.Verdict == model.VerdictIncompatible {
		warnings = append(warnings, model.CompatibilityWarning{
			Level:   model.WarnCritical,
			Message: "This partnership is fundamentally non-viable due to industry incompatibility.",
			Details: result.Reason,
		})
	}

	seller := result.Details.SellerClassification
	buyer := result.Details.BuyerClassification

	if seller.RiskLevel >= 7 {
		warnings = append(warnings, model.CompatibilityWarning{
			Level:   model.WarnSevere,
			Message: "Seller operates in a high-risk industry category that most enterprises avoid.",
			Details: fmt.Sprintf("Risk level: %d/10", seller.RiskLevel),
		})
	}

	if buyer.ConservatismLevel >= 8 {
		warnings = append(warnings, model.CompatibilityWarning{
			Level:   model.WarnHigh,
			Message: "Buyer has extremely strict vendor requirements and compliance standards.",
			Details: fmt.Sprintf("Conservatism level: %d/10", buyer.ConservatismLevel),
		})
	}

	if buyer.ComplianceRequirements == "maximum" && seller.RiskLevel > 2 {
		warnings = append(warnings, model.CompatibilityWarning{
			Level:   model.WarnHigh,
			Message: "Compliance requirements mismatch detected.",
			Details: "Buyer compliance standards exceed seller industry norms.",
		})
	}

	if buyer.ReputationSensitivity >= 8 && seller.RiskLevel > 3 {
		warnings = append(warnings, model.CompatibilityWarning{
			Level:   model.WarnMedium,
			Message: "Potential reputation risk for buyer.",
			Details: "Partnership could impact buyer brand perception.",
		})
	}

	return warnings
}
