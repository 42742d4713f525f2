// Package competitor detects competitive relationships between a seller
// and target from fixed rival tables and transient research data, and
// converts the evidence into a bounded score reduction.
package competitor

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/salesfit/internal/model"
)

// maxReduction caps the score reduction percentage; some room is always
// left for edge cases.
const maxReduction = 85

// CalculateImpact computes the competitive score reduction for a pairing.
// Missing research data degrades to zero signals, never errors. The
// detector only reports the reduction; applying it to a scorecard is the
// orchestrating caller's job.
func CalculateImpact(seller, target string, research *model.ResearchData) model.CompetitiveImpact {
	check := AreCompetitors(seller, target)
	signals := AnalyzeResearch(research, seller, target)
	productOverlap := DetectProductOverlap(research)
	customerOverlap := DetectCustomerOverlap(research)

	impact := model.CompetitiveImpact{CompetitionType: model.CompetitionNone}

	var direct, high, medium []model.Signal
	for _, s := range signals {
		if s.Type == "direct_competition" || s.Type == "web_competition" {
			direct = append(direct, s)
		}
		switch s.Strength {
		case model.SignalHigh:
			high = append(high, s)
		case model.SignalMedium:
			medium = append(medium, s)
		}
	}

	// Priority ladder: first match sets both fields.
	switch {
	case len(direct) > 0:
		impact.ScoreReduction = 75
		impact.CompetitionType = model.CompetitionDirect
		impact.Reasons = append(impact.Reasons, fmt.Sprintf("Direct competitive relationship found between %s and %s", seller, target))
		impact.Evidence = append(impact.Evidence, direct...)
	case len(high) >= 3:
		impact.ScoreReduction = 65
		impact.CompetitionType = model.CompetitionStrong
		impact.Reasons = append(impact.Reasons, "Multiple strong competition indicators detected")
		impact.Evidence = append(impact.Evidence, high...)
	case len(high) > 0:
		impact.ScoreReduction = 55
		impact.CompetitionType = model.CompetitionLikely
		impact.Reasons = append(impact.Reasons, "Competition indicators found in market research")
		impact.Evidence = append(impact.Evidence, high...)
	case len(medium) >= 4:
		impact.ScoreReduction = 45
		impact.CompetitionType = model.CompetitionPossible
		impact.Reasons = append(impact.Reasons, "Several competition factors detected")
		impact.Evidence = append(impact.Evidence, medium[:4]...)
	case len(signals) > 0:
		impact.ScoreReduction = 35
		impact.CompetitionType = model.CompetitionIndirect
		impact.Reasons = append(impact.Reasons, "Some competitive overlap detected")
		impact.Evidence = append(impact.Evidence, signals[:min(3, len(signals))]...)
	}

	// Fixed competitor lists raise the floor; the type is only
	// overwritten when the list result is stronger than what the signals
	// produced.
	if check.AreCompetitors {
		if check.Severity == SeverityHigh {
			if impact.ScoreReduction < 70 {
				impact.ScoreReduction = 70
				impact.CompetitionType = model.CompetitionKnown
			}
			impact.Reasons = append(impact.Reasons, fmt.Sprintf("%s and %s are known direct competitors", seller, target))
		} else {
			if impact.ScoreReduction < 50 {
				impact.ScoreReduction = 50
			}
			if impact.CompetitionType == model.CompetitionNone {
				impact.CompetitionType = model.CompetitionIndustry
			}
			impact.Reasons = append(impact.Reasons, fmt.Sprintf("%s and %s compete in the same industry", seller, target))
		}
		impact.Evidence = append(impact.Evidence, model.Signal{
			Type:     "known_competitor",
			Evidence: check.Reason,
			Strength: model.SignalHigh,
		})
	}

	if productOverlap.HasOverlap {
		if r := productOverlap.Severity * 10; r > impact.ScoreReduction {
			impact.ScoreReduction = r
		}
		impact.Reasons = append(impact.Reasons, productOverlap.Reason)
		impact.Evidence = append(impact.Evidence, model.Signal{
			Type:     "product_overlap",
			Evidence: strings.Join(productOverlap.Details, "; "),
			Strength: model.SignalMedium,
		})
	}

	if customerOverlap.HasOverlap {
		if r := customerOverlap.Severity * 10; r > impact.ScoreReduction {
			impact.ScoreReduction = r
		}
		impact.Reasons = append(impact.Reasons, customerOverlap.Reason)
		impact.Evidence = append(impact.Evidence, model.Signal{
			Type:     "customer_overlap",
			Evidence: strings.Join(customerOverlap.Details, "; "),
			Strength: model.SignalMedium,
		})
	}

	// Famous rivalries trump everything below the cap.
	s := strings.ToLower(seller)
	t := strings.ToLower(target)
	for _, pair := range archRivalPairs {
		if (strings.Contains(s, pair[0]) && strings.Contains(t, pair[1])) ||
			(strings.Contains(s, pair[1]) && strings.Contains(t, pair[0])) {
			if impact.ScoreReduction < 80 {
				impact.ScoreReduction = 80
			}
			impact.CompetitionType = model.CompetitionArchRival
			impact.Reasons = append(impact.Reasons, "Well-known industry rivals - partnership extremely unlikely")
			break
		}
	}

	if impact.ScoreReduction > maxReduction {
		impact.ScoreReduction = maxReduction
	}

	if impact.ScoreReduction > 0 {
		zap.L().Debug("competitor: impact computed",
			zap.String("seller", seller),
			zap.String("target", target),
			zap.Int("score_reduction", impact.ScoreReduction),
			zap.String("competition_type", string(impact.CompetitionType)),
			zap.Int("signals", len(signals)),
		)
	}

	return impact
}
