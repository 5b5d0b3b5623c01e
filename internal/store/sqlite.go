package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
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
CREATE TABLE IF NOT EXISTS deploy_runs (
	id            TEXT PRIMARY KEY,
	business_slug TEXT NOT NULL,
	business_name TEXT NOT NULL,
	status        TEXT NOT NULL DEFAULT 'running',
	project_id    TEXT NOT NULL DEFAULT '',
	url           TEXT NOT NULL DEFAULT '',
	error         TEXT NOT NULL DEFAULT '',
	created_at    DATETIME NOT NULL,
	updated_at    DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_deploy_runs_status ON deploy_runs(status);
CREATE INDEX IF NOT EXISTS idx_deploy_runs_slug ON deploy_runs(business_slug);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateRun(ctx context.Context, slug, name string) (*DeployRun, error) {
	now := time.Now().UTC()
	run := &DeployRun{
		ID:           uuid.NewString(),
		BusinessSlug: slug,
		BusinessName: name,
		Status:       StatusRunning,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO deploy_runs (id, business_slug, business_name, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.BusinessSlug, run.BusinessName, run.Status, run.CreatedAt, run.UpdatedAt)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: create run")
	}
	return run, nil
}

func (s *SQLiteStore) CompleteRun(ctx context.Context, runID, projectID, url string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE deploy_runs SET status = ?, project_id = ?, url = ?, updated_at = ? WHERE id = ?`,
		StatusSucceeded, projectID, url, time.Now().UTC(), runID)
	return eris.Wrap(err, "sqlite: complete run")
}

func (s *SQLiteStore) FailRun(ctx context.Context, runID, errMsg string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE deploy_runs SET status = ?, error = ?, updated_at = ? WHERE id = ?`,
		StatusFailed, errMsg, time.Now().UTC(), runID)
	return eris.Wrap(err, "sqlite: fail run")
}

func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*DeployRun, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, business_slug, business_name, status, project_id, url, error, created_at, updated_at
		 FROM deploy_runs WHERE id = ?`, runID)

	var run DeployRun
	err := row.Scan(&run.ID, &run.BusinessSlug, &run.BusinessName, &run.Status,
		&run.ProjectID, &run.URL, &run.Error, &run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get run %s", runID)
	}
	return &run, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context, filter RunFilter) ([]DeployRun, error) {
	query := `SELECT id, business_slug, business_name, status, project_id, url, error, created_at, updated_at
		 FROM deploy_runs`
	var conds []string
	var args []any

	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Slug != "" {
		conds = append(conds, "business_slug = ?")
		args = append(args, filter.Slug)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var out []DeployRun
	for rows.Next() {
		var run DeployRun
		if err := rows.Scan(&run.ID, &run.BusinessSlug, &run.BusinessName, &run.Status,
			&run.ProjectID, &run.URL, &run.Error, &run.CreatedAt, &run.UpdatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan run")
		}
		out = append(out, run)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list runs")
}
