package usecase

import (
	"context"
	"fmt"

	"calendar-timesheet/internal/model"
	"calendar-timesheet/internal/timesheet"
	"calendar-timesheet/pkg/gcalendar"
)

// Status implements timesheet.UseCase. It computes the week-to-date and
// month-to-date blocks from a single calendar fetch covering both
// windows.
func (uc *implUseCase) Status(ctx context.Context) (timesheet.StatusOutput, error) {
	week, err := uc.resolvePeriod(timesheet.PeriodWeek, "", "")
	if err != nil {
		return timesheet.StatusOutput{}, err
	}
	month, err := uc.resolvePeriod(timesheet.PeriodMonth, "", "")
	if err != nil {
		return timesheet.StatusOutput{}, err
	}

	settings := uc.loadSettings(ctx)
	monthNorm := uc.normHours(ctx, timesheet.PeriodMonth, month)

	// One fetch covers both windows; the week may start in the
	// previous month.
	fetchStart := month.Start
	if week.Start.Before(fetchStart) {
		fetchStart = week.Start
	}
	events, err := uc.events.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: settings.CalendarID,
		TimeMin:    fetchStart,
		TimeMax:    month.End,
		MaxResults: maxEventsPerPeriod,
	})
	if err != nil {
		uc.l.Errorf(ctx, "timesheet.usecase.Status.ListEvents: %v", err)
		return timesheet.StatusOutput{}, fmt.Errorf("%w: %v", timesheet.ErrFetchEvents, err)
	}

	entries, err := uc.parser.ParseBatch(ctx, events)
	if err != nil {
		uc.l.Errorf(ctx, "timesheet.usecase.Status.ParseBatch: %v", err)
		return timesheet.StatusOutput{}, err
	}

	var weekEntries, monthEntries []model.TimeEntry
	for _, e := range entries {
		if !e.Date.Before(week.Start) {
			weekEntries = append(weekEntries, e)
		}
		if !e.Date.Before(month.Start) {
			monthEntries = append(monthEntries, e)
		}
	}

	weekStatus := condense(weekEntries, weekNormHours, settings.Target, week.WorkdaysElapsed)
	monthStatus := condense(monthEntries, monthNorm, settings.Target, month.WorkdaysElapsed)

	return timesheet.StatusOutput{
		Week:    weekStatus,
		Month:   monthStatus,
		Message: statusMessage(weekStatus, monthStatus),
	}, nil
}

// condense boils one window down to the shorthand metric block.
func condense(entries []model.TimeEntry, normHours float64, target model.BillableTarget, workdaysElapsed int) timesheet.PeriodStatus {
	var total, billable float64
	errorCount := 0
	for _, e := range entries {
		if e.IsExcluded {
			continue
		}
		if e.HasErrors() {
			errorCount++
			continue
		}
		if e.IsValid() {
			total += e.DurationHours
			if e.IsBillable {
				billable += e.DurationHours
			}
		}
	}

	elapsedNorm := float64(workdaysElapsed) * hoursPerWorkday
	elapsedTarget := target.ElapsedHours(elapsedNorm, normHours)

	return timesheet.PeriodStatus{
		TotalHours:         round2(total),
		BillableHours:      round2(billable),
		NormHours:          normHours,
		ElapsedTargetHours: elapsedNorm,
		OnTrackPct:         round1(pct(total, elapsedNorm)),
		BillableOnTrackPct: round1(pct(billable, elapsedTarget)),
		WorkdaysElapsed:    workdaysElapsed,
		ErrorCount:         errorCount,
	}
}

// statusMessage renders the one-line shorthand: emoji keyed to the
// month billable on-track percentage, plus an attention suffix when
// any window has errored events.
func statusMessage(week, month timesheet.PeriodStatus) string {
	emoji := "🔴"
	switch {
	case month.BillableOnTrackPct >= 95:
		emoji = "✅"
	case month.BillableOnTrackPct >= 80:
		emoji = "⚠️"
	}

	msg := fmt.Sprintf(
		"%s MTD: %.1fh total, %.1fh billable (%.0f%% on-track). WTD: %.1fh total, %.1fh billable (%.0f%% on-track).",
		emoji,
		month.TotalHours, month.BillableHours, month.BillableOnTrackPct,
		week.TotalHours, week.BillableHours, week.BillableOnTrackPct,
	)
	if month.ErrorCount > 0 || week.ErrorCount > 0 {
		msg += fmt.Sprintf(" ⚠️ %d events need attention.", month.ErrorCount)
	}
	return msg
}
