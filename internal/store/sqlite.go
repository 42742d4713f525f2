package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/salesfit/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS analyses (
	id            TEXT PRIMARY KEY,
	seller        TEXT NOT NULL,
	target        TEXT NOT NULL,
	verdict       TEXT NOT NULL,
	overall_score INTEGER NOT NULL,
	report        TEXT NOT NULL,
	created_at    DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_analyses_seller ON analyses(seller);
CREATE INDEX IF NOT EXISTS idx_analyses_target ON analyses(target);
CREATE INDEX IF NOT EXISTS idx_analyses_verdict ON analyses(verdict);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveAnalysis(ctx context.Context, analysis *model.Analysis) error {
	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now().UTC()
	}

	reportJSON, err := json.Marshal(analysis)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal analysis")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, seller, target, verdict, overall_score, report, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			verdict = excluded.verdict,
			overall_score = excluded.overall_score,
			report = excluded.report`,
		analysis.ID, analysis.SellerCompany, analysis.TargetCompany,
		string(analysis.Compatibility.Verdict), analysis.Scorecard.Overall,
		string(reportJSON), analysis.CreatedAt,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: save analysis %s", analysis.ID)
	}
	return nil
}

// SaveAnalyses persists a batch run's analyses in a single transaction
// using the same upsert statement as SaveAnalysis.
func (s *SQLiteStore) SaveAnalyses(ctx context.Context, analyses []model.Analysis) error {
	if len(analyses) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO analyses (id, seller, target, verdict, overall_score, report, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			verdict = excluded.verdict,
			overall_score = excluded.overall_score,
			report = excluded.report`,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare bulk save")
	}
	defer stmt.Close() //nolint:errcheck

	for i := range analyses {
		a := &analyses[i]
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = time.Now().UTC()
		}
		reportJSON, err := json.Marshal(a)
		if err != nil {
			return eris.Wrap(err, "sqlite: marshal analysis")
		}
		if _, err := stmt.ExecContext(ctx,
			a.ID, a.SellerCompany, a.TargetCompany,
			string(a.Compatibility.Verdict), a.Scorecard.Overall,
			string(reportJSON), a.CreatedAt,
		); err != nil {
			return eris.Wrapf(err, "sqlite: save analysis %s", a.ID)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit bulk save")
}

func (s *SQLiteStore) GetAnalysis(ctx context.Context, id string) (*model.Analysis, error) {
	var reportJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT report FROM analyses WHERE id = ?`, id,
	).Scan(&reportJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "sqlite: get analysis %s", id)
	}

	var analysis model.Analysis
	if err := json.Unmarshal([]byte(reportJSON), &analysis); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal analysis")
	}
	return &analysis, nil
}

func (s *SQLiteStore) ListAnalyses(ctx context.Context, filter AnalysisFilter) ([]model.Analysis, error) {
	query := `SELECT report FROM analyses`
	var conditions []string
	var args []any

	if filter.Seller != "" {
		conditions = append(conditions, "seller = ?")
		args = append(args, filter.Seller)
	}
	if filter.Target != "" {
		conditions = append(conditions, "target = ?")
		args = append(args, filter.Target)
	}
	if filter.Verdict != "" {
		conditions = append(conditions, "verdict = ?")
		args = append(args, string(filter.Verdict))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list analyses")
	}
	defer rows.Close()

	var analyses []model.Analysis
	for rows.Next() {
		var reportJSON string
		if err := rows.Scan(&reportJSON); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan analysis")
		}
		var analysis model.Analysis
		if err := json.Unmarshal([]byte(reportJSON), &analysis); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal analysis")
		}
		analyses = append(analyses, analysis)
	}
	return analyses, eris.Wrap(rows.Err(), "sqlite: iterate analyses")
}

func (s *SQLiteStore) DeleteAnalysis(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete analysis %s", id)
	}
	return checkRowsAffected(res, "analysis", id)
}

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Errorf("sqlite: %s %s not found", entity, id)
	}
	return nil
}
