package analysis

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/salesfit/internal/model"
	"github.com/sells-group/salesfit/internal/resilience"
	"github.com/sells-group/salesfit/pkg/anthropic"
)

const enrichmentSystemPrompt = `You are a B2B sales analyst. You will receive a ` +
	`completed sales-fit analysis as JSON. Rewrite its narrative sections ` +
	`(executive_summary, opportunities, financial_analysis, risk_assessment, ` +
	`email_templates) with richer, company-specific language. Do not change any ` +
	`numeric score, verdict, or structure. Respond with a single JSON object ` +
	`containing only those five keys.`

// ClaudeProviderConfig configures the AI enrichment provider.
type ClaudeProviderConfig struct {
	Model             string
	MaxTokens         int64
	RequestsPerMinute int
	Retry             resilience.RetryConfig
	Breaker           resilience.CircuitBreakerConfig
}

// DefaultClaudeProviderConfig returns the enrichment defaults.
func DefaultClaudeProviderConfig() ClaudeProviderConfig {
	return ClaudeProviderConfig{
		Model:             "claude-sonnet-4-5-20250929",
		MaxTokens:         4096,
		RequestsPerMinute: 30,
		Retry:             resilience.DefaultRetryConfig(),
		Breaker:           resilience.DefaultCircuitBreakerConfig(),
	}
}

// ClaudeProvider enriches analysis narratives via the Anthropic API.
// Calls are rate limited, retried on transient failures, and guarded by a
// circuit breaker so a degraded API cannot stall batch runs.
type ClaudeProvider struct {
	client  anthropic.Client
	model   string
	tokens  int64
	limiter *rate.Limiter
	breaker *resilience.CircuitBreaker
	retry   resilience.RetryConfig
}

// NewClaudeProvider creates a provider over an Anthropic client.
func NewClaudeProvider(client anthropic.Client, cfg ClaudeProviderConfig) *ClaudeProvider {
	def := DefaultClaudeProviderConfig()
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = def.MaxTokens
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = def.RequestsPerMinute
	}
	cfg.Retry.OnRetry = resilience.RetryLogger("anthropic", "enrich")

	return &ClaudeProvider{
		client:  client,
		model:   cfg.Model,
		tokens:  cfg.MaxTokens,
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60), 1),
		breaker: resilience.NewCircuitBreaker(cfg.Breaker),
		retry:   cfg.Retry,
	}
}

// narrative carries the enrichable report sections.
type narrative struct {
	ExecutiveSummary string                     `json:"executive_summary"`
	Opportunities    []model.Opportunity        `json:"opportunities"`
	Financial        *model.FinancialProjection `json:"financial_analysis"`
	Risks            []model.Risk               `json:"risk_assessment"`
	Emails           []model.EmailTemplate      `json:"email_templates"`
}

// Enrich implements Provider. It only rewrites narrative sections; any
// attempt by the model to change scores is discarded by the caller.
func (p *ClaudeProvider) Enrich(ctx context.Context, analysis model.Analysis) (model.Analysis, error) {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return model.Analysis{}, eris.Wrap(err, "analysis: marshal analysis for enrichment")
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return model.Analysis{}, eris.Wrap(err, "analysis: rate limit wait")
	}

	req := anthropic.MessageRequest{
		Model:     p.model,
		MaxTokens: p.tokens,
		System:    anthropic.BuildCachedSystemBlocks(enrichmentSystemPrompt),
		Messages: []anthropic.Message{
			{Role: "user", Content: string(payload)},
		},
	}

	resp, err := resilience.DoVal(ctx, p.retry, func(ctx context.Context) (*anthropic.MessageResponse, error) {
		return resilience.ExecuteVal(ctx, p.breaker, func(ctx context.Context) (*anthropic.MessageResponse, error) {
			return p.client.CreateMessage(ctx, req)
		})
	})
	if err != nil {
		return model.Analysis{}, eris.Wrap(err, "analysis: enrichment request")
	}
	resp.Usage.LogCost(p.model, "enrichment")

	var n narrative
	if err := json.Unmarshal([]byte(extractJSON(resp.Text())), &n); err != nil {
		return model.Analysis{}, eris.Wrap(err, "analysis: parse enrichment response")
	}
	if n.ExecutiveSummary == "" {
		return model.Analysis{}, eris.New("analysis: enrichment response missing executive summary")
	}

	analysis.ExecutiveSummary = n.ExecutiveSummary
	if len(n.Opportunities) > 0 {
		analysis.Opportunities = n.Opportunities
	}
	if n.Financial != nil {
		analysis.Financial = n.Financial
	}
	if len(n.Risks) > 0 {
		analysis.Risks = n.Risks
	}
	if len(n.Emails) > 0 {
		analysis.Emails = n.Emails
	}
	return analysis, nil
}

// extractJSON strips markdown code fences and any prose around the first
// top-level JSON object in a model response.
func extractJSON(s string) string {
	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	} else if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return strings.TrimSpace(s)
}
