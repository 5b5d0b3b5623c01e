package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLite_RunLifecycle(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "valley-plumbing", "Valley Plumbing")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, StatusRunning, run.Status)

	require.NoError(t, s.CompleteRun(ctx, run.ID, "site-valley-plumbing", "https://valley.vercel.app"))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, got.Status)
	assert.Equal(t, "site-valley-plumbing", got.ProjectID)
	assert.Equal(t, "https://valley.vercel.app", got.URL)
	assert.Empty(t, got.Error)
}

func TestSQLite_FailRun(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "abc-electric", "ABC Electric")
	require.NoError(t, err)
	require.NoError(t, s.FailRun(ctx, run.ID, "deploy: command failed"))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Contains(t, got.Error, "command failed")
	assert.Empty(t, got.URL)
}

func TestSQLite_ListRuns(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	a, err := s.CreateRun(ctx, "alpha", "Alpha Co")
	require.NoError(t, err)
	_, err = s.CreateRun(ctx, "beta", "Beta Co")
	require.NoError(t, err)
	require.NoError(t, s.CompleteRun(ctx, a.ID, "site-alpha", "https://alpha.vercel.app"))

	all, err := s.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	succeeded, err := s.ListRuns(ctx, RunFilter{Status: StatusSucceeded})
	require.NoError(t, err)
	require.Len(t, succeeded, 1)
	assert.Equal(t, "alpha", succeeded[0].BusinessSlug)

	bySlug, err := s.ListRuns(ctx, RunFilter{Slug: "beta"})
	require.NoError(t, err)
	require.Len(t, bySlug, 1)
	assert.Equal(t, StatusRunning, bySlug[0].Status)

	limited, err := s.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLite_GetRun_NotFound(t *testing.T) {
	s := newTestSQLite(t)
	_, err := s.GetRun(context.Background(), "nope")
	require.Error(t, err)
}
