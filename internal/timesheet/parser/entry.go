package parser

import (
	"context"
	"math"
	"time"

	"calendar-timesheet/internal/model"
	"calendar-timesheet/pkg/gcalendar"
)

// Standard workday credited to all-day events regardless of span.
const allDayHours = 8.0

const dateOnlyLayout = "2006-01-02"

// BuildEntry combines a raw event with its parsed summary into a dated,
// duration-bearing record. All-day events are credited a fixed 8h;
// timed events get end minus start in hours, rounded to 2 decimals.
// End-before-start is an external-data anomaly and clamps to 0.
func (p *Parser) BuildEntry(ctx context.Context, event gcalendar.RawEvent) (model.TimeEntry, error) {
	parsed, err := p.Parse(ctx, event.Summary)
	if err != nil {
		return model.TimeEntry{}, err
	}

	isAllDay := event.IsAllDay()
	start := parseEventTime(event.Start, time.Now())
	end := parseEventTime(event.End, start)

	duration := allDayHours
	if !isAllDay {
		duration = round2(end.Sub(start).Hours())
		if duration < 0 {
			duration = 0
		}
	}

	return model.TimeEntry{
		ParsedSummary: parsed,
		Date:          start,
		DurationHours: duration,
		IsAllDay:      isAllDay,
	}, nil
}

// ParseBatch builds entries for a whole event list. Malformed titles
// never abort the batch; only catalog failures do.
func (p *Parser) ParseBatch(ctx context.Context, events []gcalendar.RawEvent) ([]model.TimeEntry, error) {
	entries := make([]model.TimeEntry, 0, len(events))
	for _, event := range events {
		entry, err := p.BuildEntry(ctx, event)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseEventTime(et gcalendar.EventTime, fallback time.Time) time.Time {
	if et.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, et.DateTime); err == nil {
			return t
		}
	}
	if et.Date != "" {
		if t, err := time.ParseInLocation(dateOnlyLayout, et.Date, time.Local); err == nil {
			return t
		}
	}
	return fallback
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
