package postgre

import (
	"context"
	"database/sql"
	"strings"

	"calendar-timesheet/internal/model"
	repo "calendar-timesheet/internal/timesheet/repository"
)

// GetProjectsByCode returns all project rows matching the code,
// case-insensitive, richest structure first.
func (r *implRepository) GetProjectsByCode(ctx context.Context, code string) ([]model.Project, error) {
	const query = `
		SELECT id, code, description, is_billable, COALESCE(position, ''), structure_level
		FROM projects
		WHERE UPPER(code) = $1
		ORDER BY structure_level DESC`

	rows, err := r.db.QueryContext(ctx, query, strings.ToUpper(code))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProjectsByCode"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Code, &p.Description, &p.IsBillable, &p.Position, &p.StructureLevel); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("GetProjectsByCode"), err)
			return nil, repo.ErrFailedToList
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("GetProjectsByCode"), err)
		return nil, repo.ErrFailedToList
	}
	return projects, nil
}

// GetPhase returns a project's phase by code.
// Returns zero-value Phase when not found, never an error for not-found.
func (r *implRepository) GetPhase(ctx context.Context, opt repo.GetPhaseOptions) (model.Phase, error) {
	const query = `
		SELECT id, project_id, code, COALESCE(description, '')
		FROM phases
		WHERE project_id = $1 AND UPPER(code) = $2
		LIMIT 1`

	var p model.Phase
	err := r.db.QueryRowContext(ctx, query, opt.ProjectID, strings.ToUpper(opt.Code)).Scan(
		&p.ID, &p.ProjectID, &p.Code, &p.Description,
	)
	if err == sql.ErrNoRows {
		return model.Phase{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPhase"), err)
		return model.Phase{}, repo.ErrFailedToGet
	}
	return p, nil
}

// GetTask returns a project's task by code.
// Returns zero-value Task when not found, never an error for not-found.
func (r *implRepository) GetTask(ctx context.Context, opt repo.GetTaskOptions) (model.Task, error) {
	const query = `
		SELECT id, project_id, COALESCE(phase_id, 0), code, COALESCE(description, '')
		FROM tasks
		WHERE project_id = $1 AND UPPER(code) = $2
		LIMIT 1`

	var t model.Task
	err := r.db.QueryRowContext(ctx, query, opt.ProjectID, strings.ToUpper(opt.Code)).Scan(
		&t.ID, &t.ProjectID, &t.PhaseID, &t.Code, &t.Description,
	)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListExclusions returns all exclusion patterns.
func (r *implRepository) ListExclusions(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT pattern FROM exclusions ORDER BY pattern`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListExclusions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var patterns []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListExclusions"), err)
			return nil, repo.ErrFailedToList
		}
		patterns = append(patterns, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListExclusions"), err)
		return nil, repo.ErrFailedToList
	}
	return patterns, nil
}

// GetNorm returns the workday norm for a month.
// Returns zero-value Norm when unset, caller falls back to workdays × 8.
func (r *implRepository) GetNorm(ctx context.Context, year, month int) (model.Norm, error) {
	const query = `SELECT year, month, norm_hours FROM workday_norms WHERE year = $1 AND month = $2`

	var n model.Norm
	err := r.db.QueryRowContext(ctx, query, year, month).Scan(&n.Year, &n.Month, &n.Hours)
	if err == sql.ErrNoRows {
		return model.Norm{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetNorm"), err)
		return model.Norm{}, repo.ErrFailedToGet
	}
	return n, nil
}

// GetSetting returns a settings value, "" when unset.
func (r *implRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSetting"), err)
		return "", repo.ErrFailedToGet
	}
	return value, nil
}
