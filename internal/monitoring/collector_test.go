package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/salesfit/internal/model"
	"github.com/sells-group/salesfit/internal/store"
)

// mockStore implements store.Store for testing.
type mockStore struct {
	analyses []model.Analysis
	listErr  error
}

func (m *mockStore) ListAnalyses(_ context.Context, filter store.AnalysisFilter) ([]model.Analysis, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.analyses, nil
}

// Unused store methods — satisfy the interface.
func (m *mockStore) SaveAnalysis(context.Context, *model.Analysis) error          { return nil }
func (m *mockStore) SaveAnalyses(context.Context, []model.Analysis) error         { return nil }
func (m *mockStore) GetAnalysis(context.Context, string) (*model.Analysis, error) { return nil, nil }
func (m *mockStore) DeleteAnalysis(context.Context, string) error                 { return nil }
func (m *mockStore) Migrate(context.Context) error                                { return nil }
func (m *mockStore) Close() error                                                 { return nil }

func analysisAt(created time.Time, verdict model.Verdict, overall int) model.Analysis {
	return model.Analysis{
		CreatedAt:     created,
		Scorecard:     model.Scorecard{Overall: overall},
		Compatibility: model.CompatibilityResult{Verdict: verdict},
	}
}

func TestCollector_EmptyStore(t *testing.T) {
	c := NewCollector(&mockStore{})

	snap, err := c.Collect(context.Background(), 24)
	require.NoError(t, err)

	assert.Equal(t, 0, snap.AnalysesTotal)
	assert.Equal(t, 0.0, snap.IncompatibleRate)
	assert.Equal(t, 0.0, snap.AvgOverallScore)
	assert.Equal(t, 24, snap.LookbackHours)
	assert.False(t, snap.CollectedAt.IsZero())
}

func TestCollector_VerdictCounts(t *testing.T) {
	now := time.Now().UTC()
	st := &mockStore{analyses: []model.Analysis{
		analysisAt(now, model.VerdictCompatible, 80),
		analysisAt(now, model.VerdictCompatible, 70),
		analysisAt(now, model.VerdictModerate, 55),
		analysisAt(now, model.VerdictChallenging, 40),
		analysisAt(now, model.VerdictIncompatible, 2),
		analysisAt(now, model.VerdictIncompatible, 5),
	}}

	snap, err := NewCollector(st).Collect(context.Background(), 24)
	require.NoError(t, err)

	assert.Equal(t, 6, snap.AnalysesTotal)
	assert.Equal(t, 2, snap.Compatible)
	assert.Equal(t, 1, snap.Moderate)
	assert.Equal(t, 1, snap.Challenging)
	assert.Equal(t, 2, snap.Incompatible)
	assert.InDelta(t, 2.0/6.0, snap.IncompatibleRate, 1e-9)
	assert.InDelta(t, 42.0, snap.AvgOverallScore, 1e-9)
}

func TestCollector_LookbackWindow(t *testing.T) {
	now := time.Now().UTC()
	st := &mockStore{analyses: []model.Analysis{
		analysisAt(now.Add(-1*time.Hour), model.VerdictCompatible, 80),
		analysisAt(now.Add(-48*time.Hour), model.VerdictIncompatible, 2), // outside window
	}}

	snap, err := NewCollector(st).Collect(context.Background(), 24)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.AnalysesTotal)
	assert.Equal(t, 0, snap.Incompatible)
}

func TestCollector_ValidationMetrics(t *testing.T) {
	now := time.Now().UTC()

	lowConfidence := analysisAt(now, model.VerdictIncompatible, 5)
	lowConfidence.ValidationReport = &model.ValidationReport{
		ConfidenceLevel: model.ConfidenceLow,
		AdjustmentsMade: []model.Adjustment{{Field: "overall_score"}},
	}
	lowConfidence.CompetitiveImpact = &model.CompetitiveImpact{}

	clean := analysisAt(now, model.VerdictCompatible, 80)
	clean.ValidationReport = &model.ValidationReport{ConfidenceLevel: model.ConfidenceHigh}

	st := &mockStore{analyses: []model.Analysis{lowConfidence, clean}}

	snap, err := NewCollector(st).Collect(context.Background(), 24)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.LowConfidence)
	assert.InDelta(t, 0.5, snap.LowConfidenceRate, 1e-9)
	assert.Equal(t, 1, snap.Adjusted)
	assert.Equal(t, 1, snap.CompetitorPairs)
}

func TestCollector_ListError(t *testing.T) {
	st := &mockStore{listErr: assert.AnError}

	_, err := NewCollector(st).Collect(context.Background(), 24)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list analyses")
}
