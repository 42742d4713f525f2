// Package analysis orchestrates the sales-fit pipeline and assembles the
// full report: classification, compatibility, deterministic scoring,
// competitive discounting, validation, and narrative generation.
package analysis

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/salesfit/internal/classify"
	"github.com/sells-group/salesfit/internal/compat"
	"github.com/sells-group/salesfit/internal/competitor"
	"github.com/sells-group/salesfit/internal/model"
	"github.com/sells-group/salesfit/internal/research"
	"github.com/sells-group/salesfit/internal/scorecard"
	"github.com/sells-group/salesfit/internal/store"
	"github.com/sells-group/salesfit/internal/validate"
)

const (
	methodologyDeterministic = "deterministic scorecard with compatibility validation"
	methodologyEnriched      = "ai-enriched deterministic scorecard with compatibility validation"
)

// Provider enriches the narrative sections of a completed analysis. The
// numeric results are authoritative and survive enrichment untouched.
type Provider interface {
	Enrich(ctx context.Context, analysis model.Analysis) (model.Analysis, error)
}

// Request describes one seller/target analysis run. Research is optional;
// when nil a deterministic reference bag is assembled from the company
// profiles.
type Request struct {
	Seller   model.Company
	Target   model.Company
	Research *model.ResearchData
}

// Analyzer runs the fixed analysis pipeline. Store and provider are
// optional; a nil store skips persistence and a nil provider skips AI
// enrichment.
type Analyzer struct {
	classifier *classify.Classifier
	engine     *compat.Engine
	scorer     *scorecard.Scorer
	validator  *validate.Validator
	store      store.Store
	provider   Provider
}

// New creates an Analyzer with all dependencies.
func New(st store.Store, provider Provider) *Analyzer {
	classifier := classify.New()
	engine := compat.NewEngine(classifier)
	return &Analyzer{
		classifier: classifier,
		engine:     engine,
		scorer:     scorecard.NewScorer(),
		validator:  validate.New(engine),
		store:      st,
		provider:   provider,
	}
}

// NewWithClassifier creates an Analyzer whose classification uses the
// given rule set instead of the built-in defaults.
func NewWithClassifier(classifier *classify.Classifier, st store.Store, provider Provider) *Analyzer {
	engine := compat.NewEngine(classifier)
	return &Analyzer{
		classifier: classifier,
		engine:     engine,
		scorer:     scorecard.NewScorer(),
		validator:  validate.New(engine),
		store:      st,
		provider:   provider,
	}
}

// Analyze runs the full pipeline for one pairing and returns the
// validated analysis. The result is persisted when a store is configured;
// a persistence failure is logged, not fatal.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*model.Analysis, error) {
	seller := strings.TrimSpace(req.Seller.Name)
	target := strings.TrimSpace(req.Target.Name)
	if seller == "" {
		return nil, eris.New("analysis: seller company name is required")
	}
	if target == "" {
		return nil, eris.New("analysis: target company name is required")
	}

	compatibility := a.engine.Calculate(seller, target, req.Seller, req.Target)
	card := a.scorer.Scores(seller, target, compatibility)

	researchData := req.Research
	if researchData == nil {
		assembled := research.Assemble(req.Seller, req.Target)
		researchData = &assembled
	}

	impact := competitor.CalculateImpact(seller, target, researchData)
	if impact.ScoreReduction > 0 {
		applyCompetitiveDiscount(&card, impact.ScoreReduction)
		zap.L().Debug("analysis: competitive discount applied",
			zap.String("seller", seller),
			zap.String("target", target),
			zap.String("competition_type", string(impact.CompetitionType)),
			zap.Int("score_reduction", impact.ScoreReduction))
	}

	result := model.Analysis{
		ID:            uuid.NewString(),
		SellerCompany: seller,
		TargetCompany: target,
		CreatedAt:     time.Now().UTC(),
		Methodology:   methodologyDeterministic,
		Scorecard:     card,
		Compatibility: compatibility,
		Warnings:      compat.Warnings(compatibility),
	}
	if impact.CompetitionType != model.CompetitionNone {
		impactCopy := impact
		result.CompetitiveImpact = &impactCopy
	}

	result = a.validator.Validate(result, seller, target, req.Seller, req.Target)
	buildNarrative(&result, seller, target)

	if a.provider != nil {
		result = a.enrich(ctx, result)
	}

	if a.store != nil {
		if err := a.store.SaveAnalysis(ctx, &result); err != nil {
			zap.L().Warn("analysis: failed to persist analysis",
				zap.String("id", result.ID),
				zap.Error(err))
		}
	}

	zap.L().Info("analysis: completed",
		zap.String("seller", seller),
		zap.String("target", target),
		zap.Int("overall_score", result.Scorecard.Overall),
		zap.String("verdict", string(result.Compatibility.Verdict)))

	return &result, nil
}

// enrich asks the provider for narrative enrichment and falls back to the
// deterministic report on any failure. The scorecard, compatibility, and
// validation sections are restored afterwards so enrichment can never
// change a score.
func (a *Analyzer) enrich(ctx context.Context, result model.Analysis) model.Analysis {
	enriched, err := a.provider.Enrich(ctx, result)
	if err != nil {
		zap.L().Warn("analysis: provider enrichment failed, using deterministic report",
			zap.String("seller", result.SellerCompany),
			zap.String("target", result.TargetCompany),
			zap.Error(err))
		return result
	}

	enriched.ID = result.ID
	enriched.SellerCompany = result.SellerCompany
	enriched.TargetCompany = result.TargetCompany
	enriched.CreatedAt = result.CreatedAt
	enriched.Scorecard = result.Scorecard
	enriched.Compatibility = result.Compatibility
	enriched.Warnings = result.Warnings
	enriched.CompetitiveImpact = result.CompetitiveImpact
	enriched.ValidationReport = result.ValidationReport
	enriched.CriticalWarning = result.CriticalWarning
	enriched.Methodology = methodologyEnriched
	return enriched
}

// applyCompetitiveDiscount scales a scorecard down by the competitive
// score reduction. Overall floors at 5, dimensions at 0.5.
func applyCompetitiveDiscount(card *model.Scorecard, reduction int) {
	factor := float64(100-reduction) / 100
	overall := int(math.Round(float64(card.Overall) * factor))
	if overall < 5 {
		overall = 5
	}
	card.Overall = overall
	for i := range card.Dimensions {
		scaled := math.Round(card.Dimensions[i].Score*factor*10) / 10
		if scaled < 0.5 {
			scaled = 0.5
		}
		card.Dimensions[i].Score = scaled
	}
}
