package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/salesfit/internal/db"
	"github.com/sells-group/salesfit/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the most frequently used store operations.
var preparedStatements = map[string]string{
	"insert_analysis": `INSERT INTO analyses (id, seller, target, verdict, overall_score, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET verdict = EXCLUDED.verdict, overall_score = EXCLUDED.overall_score, report = EXCLUDED.report`,
	"get_analysis":    `SELECT report FROM analyses WHERE id = $1`,
	"delete_analysis": `DELETE FROM analyses WHERE id = $1`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS analyses (
	id            TEXT PRIMARY KEY,
	seller        TEXT NOT NULL,
	target        TEXT NOT NULL,
	verdict       TEXT NOT NULL,
	overall_score INTEGER NOT NULL,
	report        JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_analyses_seller ON analyses(seller);
CREATE INDEX IF NOT EXISTS idx_analyses_target ON analyses(target);
CREATE INDEX IF NOT EXISTS idx_analyses_verdict ON analyses(verdict);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) SaveAnalysis(ctx context.Context, analysis *model.Analysis) error {
	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now().UTC()
	}

	reportJSON, err := json.Marshal(analysis)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal analysis")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (id, seller, target, verdict, overall_score, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET verdict = EXCLUDED.verdict, overall_score = EXCLUDED.overall_score, report = EXCLUDED.report`,
		analysis.ID, analysis.SellerCompany, analysis.TargetCompany,
		string(analysis.Compatibility.Verdict), analysis.Scorecard.Overall,
		reportJSON, analysis.CreatedAt,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: save analysis %s", analysis.ID)
	}
	return nil
}

// SaveAnalyses persists a batch run's analyses in one round of COPY plus
// an upsert, so re-running a batch overwrites earlier results by id.
func (s *PostgresStore) SaveAnalyses(ctx context.Context, analyses []model.Analysis) error {
	if len(analyses) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(analyses))
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
			return eris.Wrap(err, "postgres: marshal analysis")
		}
		rows = append(rows, []any{
			a.ID, a.SellerCompany, a.TargetCompany,
			string(a.Compatibility.Verdict), a.Scorecard.Overall,
			reportJSON, a.CreatedAt,
		})
	}

	_, err := db.BulkUpsert(ctx, s.pool, db.UpsertConfig{
		Table:        "analyses",
		Columns:      []string{"id", "seller", "target", "verdict", "overall_score", "report", "created_at"},
		ConflictKeys: []string{"id"},
		UpdateCols:   []string{"verdict", "overall_score", "report"},
	}, rows)
	return eris.Wrap(err, "postgres: bulk save analyses")
}

func (s *PostgresStore) GetAnalysis(ctx context.Context, id string) (*model.Analysis, error) {
	var reportJSON []byte
	err := s.pool.QueryRow(ctx, `SELECT report FROM analyses WHERE id = $1`, id).Scan(&reportJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "postgres: get analysis %s", id)
	}

	var analysis model.Analysis
	if err := json.Unmarshal(reportJSON, &analysis); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal analysis")
	}
	return &analysis, nil
}

func (s *PostgresStore) ListAnalyses(ctx context.Context, filter AnalysisFilter) ([]model.Analysis, error) {
	query := `SELECT report FROM analyses`
	var conditions []string
	var args []any

	if filter.Seller != "" {
		args = append(args, filter.Seller)
		conditions = append(conditions, fmt.Sprintf("seller = $%d", len(args)))
	}
	if filter.Target != "" {
		args = append(args, filter.Target)
		conditions = append(conditions, fmt.Sprintf("target = $%d", len(args)))
	}
	if filter.Verdict != "" {
		args = append(args, string(filter.Verdict))
		conditions = append(conditions, fmt.Sprintf("verdict = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		if filter.Offset > 0 {
			args = append(args, filter.Offset)
			query += fmt.Sprintf(" OFFSET $%d", len(args))
		}
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list analyses")
	}
	defer rows.Close()

	var analyses []model.Analysis
	for rows.Next() {
		var reportJSON []byte
		if err := rows.Scan(&reportJSON); err != nil {
			return nil, eris.Wrap(err, "postgres: scan analysis")
		}
		var analysis model.Analysis
		if err := json.Unmarshal(reportJSON, &analysis); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal analysis")
		}
		analyses = append(analyses, analysis)
	}
	return analyses, eris.Wrap(rows.Err(), "postgres: iterate analyses")
}

func (s *PostgresStore) DeleteAnalysis(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete analysis %s", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("postgres: analysis %s not found", id)
	}
	return nil
}
