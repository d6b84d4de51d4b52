// Package parser turns free-text calendar event titles into structured
// time-tracking records.
//
// Summaries follow a small delimiter grammar:
//
//	PROJECT * PHASE * TASK * Description
//
// with ` * ` preferred over `:` over a bare `*`. How many parts after
// the project code are meaningful is decided by the project's structure
// level (1 = description only, 2 = phase + description, 3 = phase +
// task + description). The same code may be registered at several
// levels; the parser tries each candidate richest-first and keeps the
// first attempt that validates.
package parser

import (
	"context"
	"fmt"
	"strings"

	"calendar-timesheet/internal/model"
	"calendar-timesheet/internal/timesheet/repository"
	"calendar-timesheet/pkg/log"
)

const joinDelimiter = " * "

// Parser parses event summaries against the catalog.
type Parser struct {
	l    log.Logger
	repo repository.CatalogRepository

	levels map[int]levelFunc
}

// levelFunc is one structure-level extraction strategy: given the token
// list and a result pre-filled with the chosen project, it fills
// phase/task/description and records any diagnostics.
type levelFunc func(ctx context.Context, parts []string, res model.ParsedSummary) (model.ParsedSummary, error)

// New creates a summary Parser.
func New(l log.Logger, repo repository.CatalogRepository) *Parser {
	p := &Parser{l: l, repo: repo}
	p.levels = map[int]levelFunc{
		1: p.parseLevel1,
		2: p.parseLevel2,
		3: p.parseLevel3,
	}
	return p
}

// Parse parses one event summary. Diagnostics end up in the result's
// Errors list; the returned error is reserved for catalog failures,
// which are fatal for the whole report.
func (p *Parser) Parse(ctx context.Context, summary string) (model.ParsedSummary, error) {
	result := model.ParsedSummary{RawSummary: summary}

	trimmed := strings.TrimSpace(summary)
	if trimmed == "" {
		result.Errors = append(result.Errors, "Empty summary")
		return result, nil
	}

	// Exclusions take precedence over everything else.
	patterns, err := p.repo.ListExclusions(ctx)
	if err != nil {
		return result, fmt.Errorf("list exclusions: %w", err)
	}
	if NewExclusionMatcher(patterns).Excluded(trimmed) {
		result.IsExcluded = true
		return result, nil
	}

	parts := splitSummary(trimmed)
	if len(parts) == 0 {
		result.Errors = append(result.Errors, "No content after parsing")
		return result, nil
	}

	candidateCode := strings.ToUpper(parts[0])

	projects, err := p.repo.GetProjectsByCode(ctx, candidateCode)
	if err != nil {
		return result, fmt.Errorf("resolve project %q: %w", candidateCode, err)
	}
	if len(projects) == 0 {
		result.Description = trimmed
		result.Errors = append(result.Errors, fmt.Sprintf("Project code '%s' not found", candidateCode))
		return result, nil
	}

	// Try each candidate (already ordered by structure level descending)
	// and accept the first valid parse.
	for _, project := range projects {
		attempt, err := p.tryParseWithProject(ctx, summary, parts, project)
		if err != nil {
			return result, err
		}
		if attempt.IsValid() {
			return attempt, nil
		}
	}

	// No candidate validated: surface the attempt against the richest
	// one, preserving its diagnostics.
	return p.tryParseWithProject(ctx, summary, parts, projects[0])
}

// splitSummary tokenizes by delimiter priority: ` * ` first, then `:`,
// then a bare `*`. Without any delimiter the first word is the project
// candidate and the remainder is description. Parts are trimmed and
// empties dropped.
func splitSummary(summary string) []string {
	var raw []string
	switch {
	case strings.Contains(summary, joinDelimiter):
		raw = strings.Split(summary, joinDelimiter)
	case strings.Contains(summary, ":"):
		raw = strings.Split(summary, ":")
	case strings.Contains(summary, "*"):
		raw = strings.Split(summary, "*")
	default:
		raw = strings.SplitN(summary, " ", 2)
	}

	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// tryParseWithProject attempts one candidate project. The verbatim
// event summary travels along so downstream records never see a
// delimiter-normalized title.
func (p *Parser) tryParseWithProject(ctx context.Context, summary string, parts []string, project model.Project) (model.ParsedSummary, error) {
	result := model.ParsedSummary{
		RawSummary:  summary,
		ProjectCode: project.Code,
		ProjectID:   project.ID,
		IsBillable:  project.IsBillable,
		Position:    project.Position,
	}

	level, ok := p.levels[project.StructureLevel]
	if !ok {
		level = p.parseLevel1
	}
	return level(ctx, parts, result)
}

// parseLevel1 handles PROJECT * Description: everything after the
// project token is description. A bare project token is still valid.
func (p *Parser) parseLevel1(_ context.Context, parts []string, res model.ParsedSummary) (model.ParsedSummary, error) {
	if len(parts) > 1 {
		res.Description = strings.Join(parts[1:], joinDelimiter)
	}
	return res, nil
}

// parseLevel2 handles PROJECT * PHASE * Description. An unknown phase
// is an error, but the remainder is still salvaged as description so
// the entry surfaces usefully in error reports.
func (p *Parser) parseLevel2(ctx context.Context, parts []string, res model.ParsedSummary) (model.ParsedSummary, error) {
	if len(parts) < 2 {
		res.Errors = append(res.Errors, "Missing phase for Level 2 project")
		return res, nil
	}

	phase, found, err := p.lookupPhase(ctx, res.ProjectID, parts[1])
	if err != nil {
		return res, err
	}
	if !found {
		res.Errors = append(res.Errors, fmt.Sprintf("Phase '%s' not found", strings.ToUpper(parts[1])))
		res.Description = strings.Join(parts[1:], joinDelimiter)
		return res, nil
	}

	res.PhaseCode = phase.Code
	if len(parts) > 2 {
		res.Description = strings.Join(parts[2:], joinDelimiter)
	}
	return res, nil
}

// parseLevel3 handles PROJECT * PHASE * TASK * Description. The phase
// follows the same error policy as level 2. The task token is optional
// structure: when it does not match a registered task it is treated as
// free-text description with no error recorded.
func (p *Parser) parseLevel3(ctx context.Context, parts []string, res model.ParsedSummary) (model.ParsedSummary, error) {
	if len(parts) < 2 {
		res.Errors = append(res.Errors, "Missing phase for Level 3 project")
		return res, nil
	}

	phase, found, err := p.lookupPhase(ctx, res.ProjectID, parts[1])
	if err != nil {
		return res, err
	}
	if !found {
		res.Errors = append(res.Errors, fmt.Sprintf("Phase '%s' not found", strings.ToUpper(parts[1])))
		res.Description = strings.Join(parts[1:], joinDelimiter)
		return res, nil
	}
	res.PhaseCode = phase.Code

	if len(parts) < 3 {
		// Project and phase only: valid, no description.
		return res, nil
	}

	task, err := p.repo.GetTask(ctx, repository.GetTaskOptions{
		ProjectID: res.ProjectID,
		Code:      strings.ToUpper(parts[2]),
	})
	if err != nil {
		return res, fmt.Errorf("lookup task %q: %w", parts[2], err)
	}
	if task.ID != 0 {
		res.TaskCode = task.Code
		if len(parts) > 3 {
			res.Description = strings.Join(parts[3:], joinDelimiter)
		}
		return res, nil
	}

	res.Description = strings.Join(parts[2:], joinDelimiter)
	return res, nil
}

func (p *Parser) lookupPhase(ctx context.Context, projectID int64, code string) (model.Phase, bool, error) {
	phase, err := p.repo.GetPhase(ctx, repository.GetPhaseOptions{
		ProjectID: projectID,
		Code:      strings.ToUpper(code),
	})
	if err != nil {
		return model.Phase{}, false, fmt.Errorf("lookup phase %q: %w", code, err)
	}
	return phase, phase.ID != 0, nil
}
