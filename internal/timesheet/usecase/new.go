package usecase

import (
	"time"

	"calendar-timesheet/internal/timesheet"
	"calendar-timesheet/internal/timesheet/parser"
	"calendar-timesheet/internal/timesheet/repository"
	pkgLog "calendar-timesheet/pkg/log"
)

// Config carries the non-dependency knobs of the timesheet UseCase.
type Config struct {
	Location          *time.Location
	DefaultCalendarID string

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.CatalogRepository
	parser   *parser.Parser
	events   timesheet.EventSource
	exporter timesheet.Exporter

	loc               *time.Location
	defaultCalendarID string
	now               func() time.Time
}

// New creates a new timesheet UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.CatalogRepository,
	p *parser.Parser,
	events timesheet.EventSource,
	exporter timesheet.Exporter,
	cfg Config,
) *implUseCase {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:                 l,
		repo:              repo,
		parser:            p,
		events:            events,
		exporter:          exporter,
		loc:               loc,
		defaultCalendarID: cfg.DefaultCalendarID,
		now:               now,
	}
}
