package monitoring

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/salesfit/internal/model"
	"github.com/sells-group/salesfit/internal/store"
)

// MetricsSnapshot holds a point-in-time view of analysis activity.
type MetricsSnapshot struct {
	// Analysis metrics (within lookback window).
	AnalysesTotal    int     `json:"analyses_total"`
	Compatible       int     `json:"compatible"`
	Moderate         int     `json:"moderate"`
	Challenging      int     `json:"challenging"`
	Incompatible     int     `json:"incompatible"`
	IncompatibleRate float64 `json:"incompatible_rate"`
	AvgOverallScore  float64 `json:"avg_overall_score"`

	// Validation metrics.
	LowConfidence     int     `json:"low_confidence"`
	LowConfidenceRate float64 `json:"low_confidence_rate"`
	Adjusted          int     `json:"adjusted"`
	CompetitorPairs   int     `json:"competitor_pairs"`

	// Metadata.
	LookbackHours int       `json:"lookback_hours"`
	CollectedAt   time.Time `json:"collected_at"`
}

// Collector gathers metrics from the analysis store.
type Collector struct {
	store store.Store
}

// NewCollector creates a new metrics collector.
func NewCollector(st store.Store) *Collector {
	return &Collector{store: st}
}

// Collect gathers a snapshot of analysis metrics over the given lookback window.
func (c *Collector) Collect(ctx context.Context, lookbackHours int) (*MetricsSnapshot, error) {
	snap := &MetricsSnapshot{
		LookbackHours: lookbackHours,
		CollectedAt:   time.Now().UTC(),
	}

	cutoff := time.Now().UTC().Add(-time.Duration(lookbackHours) * time.Hour)

	analyses, err := c.store.ListAnalyses(ctx, store.AnalysisFilter{Limit: 10000})
	if err != nil {
		return nil, eris.Wrap(err, "monitoring: list analyses")
	}

	var totalScore int
	for _, a := range analyses {
		if a.CreatedAt.Before(cutoff) {
			continue
		}
		snap.AnalysesTotal++
		totalScore += a.Scorecard.Overall

		switch a.Compatibility.Verdict {
		case model.VerdictCompatible:
			snap.Compatible++
		case model.VerdictModerate:
			snap.Moderate++
		case model.VerdictChallenging:
			snap.Challenging++
		case model.VerdictIncompatible:
			snap.Incompatible++
		}

		if a.CompetitiveImpact != nil {
			snap.CompetitorPairs++
		}
		if a.ValidationReport != nil {
			if a.ValidationReport.ConfidenceLevel == model.ConfidenceLow {
				snap.LowConfidence++
			}
			if len(a.ValidationReport.AdjustmentsMade) > 0 {
				snap.Adjusted++
			}
		}
	}

	if snap.AnalysesTotal > 0 {
		snap.IncompatibleRate = float64(snap.Incompatible) / float64(snap.AnalysesTotal)
		snap.LowConfidenceRate = float64(snap.LowConfidence) / float64(snap.AnalysesTotal)
		snap.AvgOverallScore = float64(totalScore) / float64(snap.AnalysesTotal)
	}

	return snap, nil
}
