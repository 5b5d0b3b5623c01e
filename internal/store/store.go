// Package store persists deploy-run history. Two drivers are provided:
// SQLite for single-machine use and Postgres for shared deployments.
package store

import (
	"context"
	"time"
)

// RunStatus is the lifecycle state of a deploy run.
type RunStatus string

const (
	StatusRunning   RunStatus = "running"
	StatusSucceeded RunStatus = "succeeded"
	StatusFailed    RunStatus = "failed"
)

// DeployRun is one recorded deployment attempt. Preview-only requests are
// never recorded; they are side-effect free by contract.
type DeployRun struct {
	ID           string    `json:"id"`
	BusinessSlug string    `json:"businessSlug"`
	BusinessName string    `json:"businessName"`
	Status       RunStatus `json:"status"`
	ProjectID    string    `json:"projectId,omitempty"`
	URL          string    `json:"url,omitempty"`
	Error        string    `json:"error,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status RunStatus `json:"status,omitempty"`
	Slug   string    `json:"slug,omitempty"`
	Limit  int       `json:"limit,omitempty"`
}

// Store defines the persistence interface for deploy history.
type Store interface {
	CreateRun(ctx context.Context, slug, name string) (*DeployRun, error)
	CompleteRun(ctx context.Context, runID, projectID, url string) error
	FailRun(ctx context.Context, runID, errMsg string) error
	GetRun(ctx context.Context, runID string) (*DeployRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]DeployRun, error)

	Migrate(ctx context.Context) error
	Close() error
}
