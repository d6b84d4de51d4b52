package repository

import (
	"context"

	"calendar-timesheet/internal/model"
)

// CatalogRepository is the read-only view of the reference data store:
// projects, phases, tasks, exclusion patterns, monthly norms and
// settings. Administration of these rows lives elsewhere.
type CatalogRepository interface {
	// GetProjectsByCode returns every project whose code matches,
	// case-insensitive, ordered by structure_level descending so callers
	// try the richest structure first.
	GetProjectsByCode(ctx context.Context, code string) ([]model.Project, error)

	// GetPhase returns the phase of a project by code.
	// Returns zero-value Phase (ID == 0) when not found: no error.
	GetPhase(ctx context.Context, opt GetPhaseOptions) (model.Phase, error)

	// GetTask returns the task of a project by code.
	// Returns zero-value Task (ID == 0) when not found: no error.
	GetTask(ctx context.Context, opt GetTaskOptions) (model.Task, error)

	// ListExclusions returns all exclusion patterns.
	ListExclusions(ctx context.Context) ([]string, error)

	// GetNorm returns the norm for a month.
	// Returns zero-value Norm (Hours == 0) when unset: no error.
	GetNorm(ctx context.Context, year, month int) (model.Norm, error)

	// GetSetting returns a settings value, "" when unset.
	GetSetting(ctx context.Context, key string) (string, error)
}
