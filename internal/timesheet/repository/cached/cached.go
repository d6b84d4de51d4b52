// Package cached wraps a CatalogRepository with a TTL-bounded LRU cache.
//
// Catalog rows change rarely while a single report performs one lookup
// per event token, so a short-lived read-through cache removes almost
// all round trips. Expiry is TTL-based; there is no explicit
// invalidation, so staleness is bounded by the configured TTL.
package cached

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"calendar-timesheet/internal/model"
	"calendar-timesheet/internal/timesheet/repository"
)

const exclusionsKey = "exclusions"

type implRepository struct {
	next repository.CatalogRepository

	projects   *expirable.LRU[string, []model.Project]
	phases     *expirable.LRU[string, model.Phase]
	tasks      *expirable.LRU[string, model.Task]
	norms      *expirable.LRU[string, model.Norm]
	settings   *expirable.LRU[string, string]
	exclusions *expirable.LRU[string, []string]
}

// New creates a caching decorator around next. size bounds each entity
// cache; ttl bounds staleness.
func New(next repository.CatalogRepository, size int, ttl time.Duration) repository.CatalogRepository {
	if size <= 0 {
		size = 512
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &implRepository{
		next:       next,
		projects:   expirable.NewLRU[string, []model.Project](size, nil, ttl),
		phases:     expirable.NewLRU[string, model.Phase](size, nil, ttl),
		tasks:      expirable.NewLRU[string, model.Task](size, nil, ttl),
		norms:      expirable.NewLRU[string, model.Norm](size, nil, ttl),
		settings:   expirable.NewLRU[string, string](size, nil, ttl),
		exclusions: expirable.NewLRU[string, []string](1, nil, ttl),
	}
}

func (r *implRepository) GetProjectsByCode(ctx context.Context, code string) ([]model.Project, error) {
	key := strings.ToUpper(code)
	if cached, ok := r.projects.Get(key); ok {
		return cached, nil
	}
	projects, err := r.next.GetProjectsByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	r.projects.Add(key, projects)
	return projects, nil
}

func (r *implRepository) GetPhase(ctx context.Context, opt repository.GetPhaseOptions) (model.Phase, error) {
	key := fmt.Sprintf("%d:%s", opt.ProjectID, strings.ToUpper(opt.Code))
	if cached, ok := r.phases.Get(key); ok {
		return cached, nil
	}
	phase, err := r.next.GetPhase(ctx, opt)
	if err != nil {
		return model.Phase{}, err
	}
	// Negative results are cached too: a zero-value Phase means not found.
	r.phases.Add(key, phase)
	return phase, nil
}

func (r *implRepository) GetTask(ctx context.Context, opt repository.GetTaskOptions) (model.Task, error) {
	key := fmt.Sprintf("%d:%s", opt.ProjectID, strings.ToUpper(opt.Code))
	if cached, ok := r.tasks.Get(key); ok {
		return cached, nil
	}
	task, err := r.next.GetTask(ctx, opt)
	if err != nil {
		return model.Task{}, err
	}
	r.tasks.Add(key, task)
	return task, nil
}

func (r *implRepository) ListExclusions(ctx context.Context) ([]string, error) {
	if cached, ok := r.exclusions.Get(exclusionsKey); ok {
		return cached, nil
	}
	patterns, err := r.next.ListExclusions(ctx)
	if err != nil {
		return nil, err
	}
	r.exclusions.Add(exclusionsKey, patterns)
	return patterns, nil
}

func (r *implRepository) GetNorm(ctx context.Context, year, month int) (model.Norm, error) {
	key := fmt.Sprintf("%d-%d", year, month)
	if cached, ok := r.norms.Get(key); ok {
		return cached, nil
	}
	norm, err := r.next.GetNorm(ctx, year, month)
	if err != nil {
		return model.Norm{}, err
	}
	r.norms.Add(key, norm)
	return norm, nil
}

func (r *implRepository) GetSetting(ctx context.Context, key string) (string, error) {
	if cached, ok := r.settings.Get(key); ok {
		return cached, nil
	}
	value, err := r.next.GetSetting(ctx, key)
	if err != nil {
		return "", err
	}
	r.settings.Add(key, value)
	return value, nil
}
