package timesheet

import (
	"context"

	"calendar-timesheet/pkg/gcalendar"
)

// UseCase defines the business logic interface for the timesheet domain.
type UseCase interface {
	// Report resolves the requested period, fetches raw calendar events,
	// parses and aggregates them into a full report payload.
	Report(ctx context.Context, input ReportInput) (ReportOutput, error)

	// Status computes the compact week-to-date / month-to-date summary.
	Status(ctx context.Context) (StatusOutput, error)
}

// EventSource is the calendar collaborator: given a calendar and a time
// range, it returns the raw events to parse. Authentication and
// pagination are its concern, not ours.
type EventSource interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.RawEvent, error)
}

// Exporter renders report rows to a downloadable file and returns its path.
type Exporter interface {
	WriteReport(ctx context.Context, req ExportRequest) (string, error)
}
