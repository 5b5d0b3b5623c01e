package store

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock satisfies it
// in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS deploy_runs (
	id            TEXT PRIMARY KEY,
	business_slug TEXT NOT NULL,
	business_name TEXT NOT NULL,
	status        TEXT NOT NULL DEFAULT 'running',
	project_id    TEXT NOT NULL DEFAULT '',
	url           TEXT NOT NULL DEFAULT '',
	error         TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_deploy_runs_status ON deploy_runs(status);
CREATE INDEX IF NOT EXISTS idx_deploy_runs_slug ON deploy_runs(business_slug);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) CreateRun(ctx context.Context, slug, name string) (*DeployRun, error) {
	now := time.Now().UTC()
	run := &DeployRun{
		ID:           uuid.NewString(),
		BusinessSlug: slug,
		BusinessName: name,
		Status:       StatusRunning,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO deploy_runs (id, business_slug, business_name, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		run.ID, run.BusinessSlug, run.BusinessName, run.Status, run.CreatedAt, run.UpdatedAt)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create run")
	}
	return run, nil
}

func (s *PostgresStore) CompleteRun(ctx context.Context, runID, projectID, url string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE deploy_runs SET status = $1, project_id = $2, url = $3, updated_at = $4 WHERE id = $5`,
		StatusSucceeded, projectID, url, time.Now().UTC(), runID)
	return eris.Wrap(err, "postgres: complete run")
}

func (s *PostgresStore) FailRun(ctx context.Context, runID, errMsg string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE deploy_runs SET status = $1, error = $2, updated_at = $3 WHERE id = $4`,
		StatusFailed, errMsg, time.Now().UTC(), runID)
	return eris.Wrap(err, "postgres: fail run")
}

func (s *PostgresStore) GetRun(ctx context.Context, runID string) (*DeployRun, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, business_slug, business_name, status, project_id, url, error, created_at, updated_at
		 FROM deploy_runs WHERE id = $1`, runID)

	var run DeployRun
	err := row.Scan(&run.ID, &run.BusinessSlug, &run.BusinessName, &run.Status,
		&run.ProjectID, &run.URL, &run.Error, &run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get run %s", runID)
	}
	return &run, nil
}

func (s *PostgresStore) ListRuns(ctx context.Context, filter RunFilter) ([]DeployRun, error) {
	query := `SELECT id, business_slug, business_name, status, project_id, url, error, created_at, updated_at
		 FROM deploy_runs`
	var conds []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Slug != "" {
		args = append(args, filter.Slug)
		conds = append(conds, "business_slug = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list runs")
	}
	defer rows.Close()

	var out []DeployRun
	for rows.Next() {
		var run DeployRun
		if err := rows.Scan(&run.ID, &run.BusinessSlug, &run.BusinessName, &run.Status,
			&run.ProjectID, &run.URL, &run.Error, &run.CreatedAt, &run.UpdatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan run")
		}
		out = append(out, run)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list runs")
}
