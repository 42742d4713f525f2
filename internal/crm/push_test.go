package crm

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/salesfit/internal/model"
	"github.com/sells-group/salesfit/pkg/salesforce"
)

type mockSF struct {
	accounts map[string]string // name -> id

	inserted    []map[string]any
	collections [][]map[string]any
	results     []salesforce.CollectionResult
	insertErr   error
	queryErr    error
}

func (m *mockSF) Query(_ context.Context, soql string, out any) error {
	if m.queryErr != nil {
		return m.queryErr
	}
	accounts := out.(*[]salesforce.Account)
	for name, id := range m.accounts {
		if strings.Contains(soql, "Name = '"+name+"'") {
			*accounts = []salesforce.Account{{ID: id, Name: name}}
			return nil
		}
	}
	return nil
}

func (m *mockSF) InsertOne(_ context.Context, _ string, record map[string]any) (string, error) {
	m.inserted = append(m.inserted, record)
	return "001new", nil
}

func (m *mockSF) InsertCollection(_ context.Context, _ string, records []map[string]any) ([]salesforce.CollectionResult, error) {
	m.collections = append(m.collections, records)
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	if m.results != nil {
		return m.results, nil
	}
	out := make([]salesforce.CollectionResult, len(records))
	for i := range out {
		out[i] = salesforce.CollectionResult{ID: "a0Xxx", Success: true}
	}
	return out, nil
}

func (m *mockSF) UpdateOne(context.Context, string, string, map[string]any) error {
	return nil
}

func analysisFor(seller, target string) model.Analysis {
	return model.Analysis{
		ID:            "an-" + seller,
		SellerCompany: seller,
		TargetCompany: target,
		CreatedAt:     time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		Compatibility: model.CompatibilityResult{Verdict: model.VerdictCompatible},
		Scorecard:     model.Scorecard{Overall: 75},
	}
}

func TestPushExistingAccount(t *testing.T) {
	mock := &mockSF{accounts: map[string]string{"Plumbus": "001aa"}}
	p := NewPusher(mock)

	result, err := p.Push(context.Background(), []model.Analysis{analysisFor("Acme Software", "Plumbus")})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Pushed)
	assert.Zero(t, result.Failed)
	assert.Zero(t, result.Accounts)
	assert.Empty(t, mock.inserted)

	require.Len(t, mock.collections, 1)
	record := mock.collections[0][0]
	assert.Equal(t, "001aa", record["Account__c"])
	assert.Equal(t, "Acme Software -> Plumbus", record["Name"])
	assert.Equal(t, "COMPATIBLE", record["Verdict__c"])
	assert.Equal(t, 75, record["Overall_Score__c"])
}

func TestPushCreatesMissingAccount(t *testing.T) {
	mock := &mockSF{}
	p := NewPusher(mock)

	result, err := p.Push(context.Background(), []model.Analysis{analysisFor("Acme Software", "Vandelay")})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Accounts)
	require.Len(t, mock.inserted, 1)
	assert.Equal(t, "Vandelay", mock.inserted[0]["Name"])
}

func TestPushDeduplicatesAccountLookups(t *testing.T) {
	mock := &mockSF{accounts: map[string]string{"Plumbus": "001aa"}}
	p := NewPusher(mock)

	analyses := []model.Analysis{
		analysisFor("Acme Software", "Plumbus"),
		analysisFor("HubSpot", "Plumbus"),
	}
	result, err := p.Push(context.Background(), analyses)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Pushed)
	assert.Empty(t, mock.inserted)
	require.Len(t, mock.collections, 1)
	assert.Len(t, mock.collections[0], 2)
}

func TestPushCountsRejectedRecords(t *testing.T) {
	mock := &mockSF{
		accounts: map[string]string{"Plumbus": "001aa"},
		results: []salesforce.CollectionResult{
			{Success: true},
			{Success: false, Errors: []string{"FIELD_CUSTOM_VALIDATION_EXCEPTION"}},
		},
	}
	p := NewPusher(mock)

	analyses := []model.Analysis{
		analysisFor("Acme Software", "Plumbus"),
		analysisFor("HubSpot", "Plumbus"),
	}
	result, err := p.Push(context.Background(), analyses)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pushed)
	assert.Equal(t, 1, result.Failed)
}

func TestPushTransportErrorIsFatal(t *testing.T) {
	mock := &mockSF{
		accounts:  map[string]string{"Plumbus": "001aa"},
		insertErr: eris.New("REQUEST_LIMIT_EXCEEDED"),
	}
	p := NewPusher(mock)

	_, err := p.Push(context.Background(), []model.Analysis{analysisFor("Acme Software", "Plumbus")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert analysis records")
}

func TestPushEmptyInput(t *testing.T) {
	p := NewPusher(&mockSF{})
	result, err := p.Push(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, result.Pushed)
}
