// Package validate is the final policy-enforcement pass over an
// analysis. It recomputes compatibility from scratch, clamps scores into
// the band allowed for that verdict, flags internal inconsistencies, and
// applies hard business sanity rules that trump everything upstream.
package validate

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/salesfit/internal/compat"
	"github.com/sells-group/salesfit/internal/model"
)

// Validator checks and corrects finished analyses.
type Validator struct {
	engine *compat.Engine
}

func New(engine *compat.Engine) *Validator {
	return &Validator{engine: engine}
}

// Validate returns a corrected copy of the analysis with a validation
// report attached. Compatibility is recomputed from the company names
// rather than trusted from the input. Validation is a fixed point: a
// second pass over its own output makes no further adjustments.
func (v *Validator) Validate(analysis model.Analysis, seller, target string, sellerInfo, targetInfo model.Company) model.Analysis {
	compatibility := v.engine.Calculate(seller, target, sellerInfo, targetInfo)

	report := &model.ValidationReport{
		OriginalScore:   analysis.Scorecard.Overall,
		AdjustmentsMade: []model.Adjustment{},
		Warnings:        []model.ValidationWarning{},
		Compatibility:   compatibility,
		ConfidenceLevel: model.ConfidenceHigh,
	}

	dims := make([]model.Dimension, len(analysis.Scorecard.Dimensions))
	copy(dims, analysis.Scorecard.Dimensions)
	analysis.Scorecard.Dimensions = dims

	selfPair := strings.EqualFold(strings.TrimSpace(seller), strings.TrimSpace(target))

	// Band clamp. Self pairings skip it: the self-partnership sanity
	// rule pins their scores above any band, and clamping first would
	// re-trigger on every pass.
	if !selfPair {
		v.clampToBand(&analysis, compatibility.Verdict, report)
	}

	if warning, ok := checkConsistency(analysis.Scorecard); !ok {
		report.Warnings = append(report.Warnings, warning)
	}

	v.sanityChecks(&analysis, seller, target, selfPair, report)

	if compatibility.Verdict == model.VerdictIncompatible {
		analysis.CriticalWarning = &model.CriticalWarning{
			Level:          model.WarnCritical,
			Message:        "This partnership is fundamentally non-viable",
			Details:        compatibility.Reason,
			Recommendation: "DO NOT PROCEED with this opportunity",
		}
	}

	report.AdjustedScore = analysis.Scorecard.Overall
	report.ConfidenceScore, report.ConfidenceLevel = confidence(report)
	analysis.ValidationReport = report

	if len(report.AdjustmentsMade) > 0 || len(report.Warnings) > 0 {
		zap.L().Debug("validate: analysis adjusted",
			zap.String("seller", seller),
			zap.String("target", target),
			zap.Int("original_score", report.OriginalScore),
			zap.Int("adjusted_score", report.AdjustedScore),
			zap.Int("adjustments", len(report.AdjustmentsMade)),
			zap.Int("warnings", len(report.Warnings)),
		)
	}

	return analysis
}

func (v *Validator) clampToBand(analysis *model.Analysis, verdict model.Verdict, report *model.ValidationReport) {
	band := maxScoresByVerdict[verdict]

	if analysis.Scorecard.Overall > band.Overall {
		report.AdjustmentsMade = append(report.AdjustmentsMade, model.Adjustment{
			Field:    "overall_score",
			Original: float64(analysis.Scorecard.Overall),
			Adjusted: float64(band.Overall),
			Reason:   fmt.Sprintf("Score exceeds maximum for %s compatibility", verdict),
		})
		analysis.Scorecard.Overall = band.Overall
	}

	for i := range analysis.Scorecard.Dimensions {
		dim := &analysis.Scorecard.Dimensions[i]
		if dim.Score > band.Dimension {
			report.AdjustmentsMade = append(report.AdjustmentsMade, model.Adjustment{
				Field:    "dimension_" + dim.Name,
				Original: dim.Score,
				Adjusted: band.Dimension,
				Reason:   fmt.Sprintf("Dimension score exceeds maximum for %s compatibility", verdict),
			})
			dim.Score = band.Dimension
			dim.ValidationAdjusted = true
		}
	}
}

// checkConsistency verifies the overall score against the weighted
// dimension average and the dimension spread against the mean. It only
// reports; the band clamp is the sole place scores are overwritten for
// consistency reasons.
func checkConsistency(scorecard model.Scorecard) (model.ValidationWarning, bool) {
	if len(scorecard.Dimensions) == 0 {
		return model.ValidationWarning{
			Type:    "CONSISTENCY",
			Message: "Missing scorecard data",
		}, false
	}

	var weightedSum, totalWeight float64
	for _, dim := range scorecard.Dimensions {
		weight := dim.Weight
		if weight == 0 {
			weight = 0.2
		}
		weightedSum += dim.Score * weight
		totalWeight += weight
	}
	calculated := weightedSum / totalWeight * 10

	// Division by a zero overall yields +Inf (or NaN when the weighted
	// average is zero too), so a zero overall against nonzero dimensions
	// still trips the threshold.
	actual := float64(scorecard.Overall)
	variance := abs(calculated-actual) / actual
	if variance > overallVarianceAllowed {
		return model.ValidationWarning{
			Type:    "CONSISTENCY",
			Message: fmt.Sprintf("Overall score (%d) doesn't match weighted average (%.1f)", scorecard.Overall, calculated),
			Details: fmt.Sprintf("calculated=%.1f actual=%d variance=%.1f%%", calculated, scorecard.Overall, variance*100),
		}, false
	}

	var sum float64
	for _, dim := range scorecard.Dimensions {
		sum += dim.Score
	}
	mean := sum / float64(len(scorecard.Dimensions))

	var maxDeviation float64
	for _, dim := range scorecard.Dimensions {
		if d := abs(dim.Score - mean); d > maxDeviation {
			maxDeviation = d
		}
	}
	if maxDeviation > dimensionVarianceAllowed {
		return model.ValidationWarning{
			Type:    "CONSISTENCY",
			Message: "Dimension scores have unrealistic variance",
			Details: fmt.Sprintf("average=%.1f max_variance=%.1f", mean, maxDeviation),
		}, false
	}

	return model.ValidationWarning{}, true
}

// sanityChecks applies the hard business rules. They run after the band
// clamp and may override its result.
func (v *Validator) sanityChecks(analysis *model.Analysis, seller, target string, selfPair bool, report *model.ValidationReport) {
	sellerLower := strings.ToLower(seller)
	targetLower := strings.ToLower(target)

	if matchesAny(sellerLower, problematicKeywords) && matchesAny(targetLower, enterpriseKeywords) {
		if analysis.Scorecard.Overall > 10 || anyDimensionAbove(analysis.Scorecard.Dimensions, 2) {
			report.Warnings = append(report.Warnings, model.ValidationWarning{
				Type:     "SANITY_CHECK",
				Message:  fmt.Sprintf("%s cannot have high scores with %s", seller, target),
				Severity: "CRITICAL",
			})
			if analysis.Scorecard.Overall > 10 {
				analysis.Scorecard.Overall = 10
			}
			for i := range analysis.Scorecard.Dimensions {
				dim := &analysis.Scorecard.Dimensions[i]
				if dim.Score > 2 {
					dim.Score = 2
				}
				dim.SanityOverride = true
			}
		}
	}

	if selfPair && analysis.Scorecard.Overall < 80 {
		report.Warnings = append(report.Warnings, model.ValidationWarning{
			Type:     "SANITY_CHECK",
			Message:  "Same company partnerships should score very high",
			Severity: "MEDIUM",
		})
		analysis.Scorecard.Overall = 95
		for i := range analysis.Scorecard.Dimensions {
			dim := &analysis.Scorecard.Dimensions[i]
			if dim.Score < 9 {
				dim.Score = 9
			}
			dim.SanityOverride = true
		}
	}

	if isRivalPair(sellerLower, targetLower) && analysis.Scorecard.Overall > 60 {
		report.Warnings = append(report.Warnings, model.ValidationWarning{
			Type:     "SANITY_CHECK",
			Message:  "Direct competitors typically have lower partnership scores",
			Severity: "MEDIUM",
		})
		analysis.Scorecard.Overall = 45
	}
}

func isRivalPair(sellerLower, targetLower string) bool {
	for _, pair := range rivalPairs {
		if (strings.Contains(sellerLower, pair[0]) && strings.Contains(targetLower, pair[1])) ||
			(strings.Contains(sellerLower, pair[1]) && strings.Contains(targetLower, pair[0])) {
			return true
		}
	}
	return false
}

// confidence scores how much to trust the validated analysis: each
// adjustment costs 10 points, each warning 5, and hostile verdicts carry
// their own penalty.
func confidence(report *model.ValidationReport) (int, model.ConfidenceLevel) {
	score := 100
	score -= len(report.AdjustmentsMade) * 10
	score -= len(report.Warnings) * 5

	switch report.Compatibility.Verdict {
	case model.VerdictIncompatible:
		score -= 30
	case model.VerdictChallenging:
		score -= 15
	}

	if score < minConfidence {
		score = minConfidence
	}
	if score > maxConfidence {
		score = maxConfidence
	}

	switch {
	case score >= 80:
		return score, model.ConfidenceHigh
	case score >= 50:
		return score, model.ConfidenceMedium
	default:
		return score, model.ConfidenceLow
	}
}

func matchesAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func anyDimensionAbove(dims []model.Dimension, limit float64) bool {
	for _, dim := range dims {
		if dim.Score > limit {
			return true
		}
	}
	return false
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
