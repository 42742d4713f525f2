package store

import (
	"context"

	"github.com/sells-group/salesfit/internal/model"
)

// AnalysisFilter specifies criteria for listing stored analyses.
type AnalysisFilter struct {
	Seller  string        `json:"seller,omitempty"`
	Target  string        `json:"target,omitempty"`
	Verdict model.Verdict `json:"verdict,omitempty"`
	Limit   int           `json:"limit,omitempty"`
	Offset  int           `json:"offset,omitempty"`
}

// Store defines the persistence interface for finished analyses.
// GetAnalysis returns (nil, nil) when no analysis has the given id.
type Store interface {
	SaveAnalysis(ctx context.Context, analysis *model.Analysis) error
	SaveAnalyses(ctx context.Context, analyses []model.Analysis) error
	GetAnalysis(ctx context.Context, id string) (*model.Analysis, error)
	ListAnalyses(ctx context.Context, filter AnalysisFilter) ([]model.Analysis, error)
	DeleteAnalysis(ctx context.Context, id string) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
