package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/salesfit/internal/model"
	"github.com/sells-group/salesfit/pkg/anthropic"
)

type stubMessages struct {
	text string
	err  error
	reqs []anthropic.MessageRequest
}

func (s *stubMessages) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	s.reqs = append(s.reqs, req)
	if s.err != nil {
		return nil, s.err
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: s.text}},
	}, nil
}

func sampleAnalysis() model.Analysis {
	return model.Analysis{
		ID:            "a-1",
		SellerCompany: "Acme Software",
		TargetCompany: "Plumbus",
		Scorecard:     model.Scorecard{Overall: 75},
		Compatibility: model.CompatibilityResult{Verdict: model.VerdictCompatible},
	}
}

func TestClaudeProviderEnrich(t *testing.T) {
	stub := &stubMessages{text: "```json\n" + `{
		"executive_summary": "Tailored summary",
		"risk_assessment": [{"risk": "churn", "severity": "LOW", "mitigation": "QBRs"}]
	}` + "\n```"}
	p := NewClaudeProvider(stub, ClaudeProviderConfig{})

	got, err := p.Enrich(context.Background(), sampleAnalysis())
	require.NoError(t, err)

	assert.Equal(t, "Tailored summary", got.ExecutiveSummary)
	require.Len(t, got.Risks, 1)
	assert.Equal(t, "churn", got.Risks[0].Risk)

	require.Len(t, stub.reqs, 1)
	req := stub.reqs[0]
	assert.Equal(t, "claude-sonnet-4-5-20250929", req.Model)
	require.Len(t, req.System, 1)
	require.NotNil(t, req.System[0].CacheControl)
	assert.Contains(t, req.Messages[0].Content, "Acme Software")
}

func TestClaudeProviderEnrichKeepsSectionsWhenAbsent(t *testing.T) {
	stub := &stubMessages{text: `{"executive_summary": "Summary only"}`}
	p := NewClaudeProvider(stub, ClaudeProviderConfig{})

	analysis := sampleAnalysis()
	analysis.Emails = []model.EmailTemplate{{Type: "executive_outreach"}}

	got, err := p.Enrich(context.Background(), analysis)
	require.NoError(t, err)
	assert.Equal(t, "Summary only", got.ExecutiveSummary)
	assert.Len(t, got.Emails, 1)
}

func TestClaudeProviderEnrichAPIError(t *testing.T) {
	stub := &stubMessages{err: errors.New("overloaded")}
	p := NewClaudeProvider(stub, ClaudeProviderConfig{})

	_, err := p.Enrich(context.Background(), sampleAnalysis())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enrichment request")
}

func TestClaudeProviderEnrichBadJSON(t *testing.T) {
	stub := &stubMessages{text: "I cannot produce JSON today."}
	p := NewClaudeProvider(stub, ClaudeProviderConfig{})

	_, err := p.Enrich(context.Background(), sampleAnalysis())
	require.Error(t, err)
}

func TestClaudeProviderEnrichMissingSummary(t *testing.T) {
	stub := &stubMessages{text: `{"opportunities": []}`}
	p := NewClaudeProvider(stub, ClaudeProviderConfig{})

	_, err := p.Enrich(context.Background(), sampleAnalysis())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing executive summary")
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"plain fence", "```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"surrounding prose", "Here you go: {\"a\":1} enjoy", `{"a":1}`},
		{"no object", "nothing here", "nothing here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}
