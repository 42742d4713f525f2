package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/salesfit/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_SaveAnalysis(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO analyses`).
		WithArgs(pgxmock.AnyArg(), "Acme Software", "Plumbus", "COMPATIBLE", 75,
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	analysis := testAnalysis("Acme Software", "Plumbus", 75, model.VerdictCompatible)
	require.NoError(t, s.SaveAnalysis(context.Background(), analysis))
	assert.NotEmpty(t, analysis.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAnalysis_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT report FROM analyses WHERE id = \$1`).
		WithArgs("nonexistent").
		WillReturnError(pgx.ErrNoRows)

	got, err := s.GetAnalysis(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAnalysis(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	analysis := testAnalysis("Acme Software", "Plumbus", 75, model.VerdictCompatible)
	analysis.ID = "abc-123"
	reportJSON, err := json.Marshal(analysis)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT report FROM analyses WHERE id = \$1`).
		WithArgs("abc-123").
		WillReturnRows(pgxmock.NewRows([]string{"report"}).AddRow(reportJSON))

	got, err := s.GetAnalysis(context.Background(), "abc-123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme Software", got.SellerCompany)
	assert.Equal(t, 75, got.Scorecard.Overall)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListAnalyses_Filtered(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	analysis := testAnalysis("Acme Software", "Plumbus", 75, model.VerdictCompatible)
	reportJSON, err := json.Marshal(analysis)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT report FROM analyses WHERE seller = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("Acme Software", 10).
		WillReturnRows(pgxmock.NewRows([]string{"report"}).AddRow(reportJSON))

	got, err := s.ListAnalyses(context.Background(), AnalysisFilter{Seller: "Acme Software", Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Plumbus", got[0].TargetCompany)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteAnalysis_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`DELETE FROM analyses WHERE id = \$1`).
		WithArgs("nonexistent").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := s.DeleteAnalysis(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveAnalyses_Upsert(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TEMP TABLE "_tmp_upsert_analyses"`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectCopyFrom(pgx.Identifier{"_tmp_upsert_analyses"},
		[]string{"id", "seller", "target", "verdict", "overall_score", "report", "created_at"}).
		WillReturnResult(2)
	mock.ExpectExec(`INSERT INTO "analyses" .+ ON CONFLICT \("id"\) DO UPDATE SET`).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	analyses := []model.Analysis{
		*testAnalysis("Acme Software", "Plumbus", 75, model.VerdictCompatible),
		*testAnalysis("Acme Software", "Globex", 45, model.VerdictModerate),
	}
	analyses[0].CreatedAt = time.Now().UTC()

	require.NoError(t, s.SaveAnalyses(context.Background(), analyses))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveAnalyses_Empty(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	require.NoError(t, s.SaveAnalyses(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
