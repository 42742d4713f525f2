package salesforce

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSF implements Client for tests.
type mockSF struct {
	queryAccounts []Account
	queryErr      error
	lastSOQL      string

	insertID      string
	insertErr     error
	lastSObject   string
	lastRecord    map[string]any
	collectionRes []CollectionResult
	lastRecords   []map[string]any
}

func (m *mockSF) Query(_ context.Context, soql string, out any) error {
	m.lastSOQL = soql
	if m.queryErr != nil {
		return m.queryErr
	}
	if accounts, ok := out.(*[]Account); ok {
		*accounts = m.queryAccounts
	}
	return nil
}

func (m *mockSF) InsertOne(_ context.Context, sObjectName string, record map[string]any) (string, error) {
	m.lastSObject = sObjectName
	m.lastRecord = record
	if m.insertErr != nil {
		return "", m.insertErr
	}
	return m.insertID, nil
}

func (m *mockSF) InsertCollection(_ context.Context, sObjectName string, records []map[string]any) ([]CollectionResult, error) {
	m.lastSObject = sObjectName
	m.lastRecords = records
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	return m.collectionRes, nil
}

func (m *mockSF) UpdateOne(_ context.Context, sObjectName string, id string, fields map[string]any) error {
	m.lastSObject = sObjectName
	m.lastRecord = fields
	m.lastRecord["Id"] = id
	return nil
}

func TestFindAccountByName(t *testing.T) {
	mock := &mockSF{queryAccounts: []Account{{ID: "001xx", Name: "Plumbus"}}}

	got, err := FindAccountByName(context.Background(), mock, "Plumbus")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "001xx", got.ID)
	assert.Contains(t, mock.lastSOQL, "WHERE Name = 'Plumbus'")
}

func TestFindAccountByName_NotFound(t *testing.T) {
	mock := &mockSF{}

	got, err := FindAccountByName(context.Background(), mock, "Unknown Co")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindAccountByName_EscapesQuotes(t *testing.T) {
	mock := &mockSF{}

	_, err := FindAccountByName(context.Background(), mock, "O'Brien & Sons")
	require.NoError(t, err)
	assert.Contains(t, mock.lastSOQL, `O\'Brien & Sons`)
}

func TestFindAccountByName_QueryError(t *testing.T) {
	mock := &mockSF{queryErr: eris.New("expired token")}

	_, err := FindAccountByName(context.Background(), mock, "Plumbus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "find account by name")
}

func TestCreateAccount(t *testing.T) {
	mock := &mockSF{insertID: "001yy"}

	id, err := CreateAccount(context.Background(), mock, map[string]any{"Name": "Plumbus"})
	require.NoError(t, err)
	assert.Equal(t, "001yy", id)
	assert.Equal(t, "Account", mock.lastSObject)
}

func TestCreateAccount_RequiresName(t *testing.T) {
	mock := &mockSF{}

	_, err := CreateAccount(context.Background(), mock, map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name is required")
}
