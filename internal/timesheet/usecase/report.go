package usecase

import (
	"context"
	"fmt"
	"strconv"

	"calendar-timesheet/internal/model"
	"calendar-timesheet/internal/timesheet"
	"calendar-timesheet/internal/timesheet/repository"
	"calendar-timesheet/pkg/gcalendar"
)

const (
	defaultCalendarID      = "primary"
	defaultBillableTarget  = 75.0
	weekNormHours          = 40.0
	maxEventsPerPeriod     = 2500
)

// Report implements timesheet.UseCase.
func (uc *implUseCase) Report(ctx context.Context, input timesheet.ReportInput) (timesheet.ReportOutput, error) {
	periodType := input.PeriodType
	if periodType == "" {
		periodType = timesheet.PeriodMonth
	}

	bounds, err := uc.resolvePeriod(periodType, input.StartDate, input.EndDate)
	if err != nil {
		uc.l.Warnf(ctx, "timesheet.usecase.Report.resolvePeriod: %v", err)
		return timesheet.ReportOutput{}, err
	}

	settings := uc.loadSettings(ctx)
	normHours := uc.normHours(ctx, periodType, bounds)

	events, err := uc.events.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: settings.CalendarID,
		TimeMin:    bounds.Start,
		TimeMax:    bounds.End,
		MaxResults: maxEventsPerPeriod,
	})
	if err != nil {
		uc.l.Errorf(ctx, "timesheet.usecase.Report.ListEvents: %v", err)
		return timesheet.ReportOutput{}, fmt.Errorf("%w: %v", timesheet.ErrFetchEvents, err)
	}

	entries, err := uc.parser.ParseBatch(ctx, events)
	if err != nil {
		uc.l.Errorf(ctx, "timesheet.usecase.Report.ParseBatch: %v", err)
		return timesheet.ReportOutput{}, err
	}

	agg := aggregate(aggregationInput{
		Entries:         entries,
		NormHours:       normHours,
		Target:          settings.Target,
		WorkdaysElapsed: bounds.WorkdaysElapsed,
	})

	summary := timesheet.ReportSummary{
		Period: timesheet.PeriodInfo{
			Type:                periodType,
			Start:               bounds.Start.Format(dateLayout),
			End:                 bounds.End.Format(dateLayout),
			NormHours:           normHours,
			WorkdaysElapsed:     bounds.WorkdaysElapsed,
			HoursElapsed:        agg.ElapsedNormHours,
			BillableTargetDays:  round2(agg.BillableTargetHours / hoursPerWorkday),
			BillableTargetHours: agg.BillableTargetHours,
		},
		Total:       agg.Total,
		Billable:    agg.Billable,
		NonBillable: agg.NonBillable,
		Errors:      agg.Errors,
		ByProject:   agg.ByProject,
	}

	output := timesheet.ReportOutput{
		Summary:      summary,
		ErrorRecords: agg.ErrorRecords,
	}

	if input.Export {
		path, err := uc.exporter.WriteReport(ctx, timesheet.ExportRequest{
			PeriodType:   periodType,
			Entries:      entries,
			Summary:      summary,
			BaseLocation: settings.BaseLocation,
		})
		if err != nil {
			// The numbers are still good; surface the export failure
			// alongside them instead of failing the whole report.
			uc.l.Warnf(ctx, "timesheet.usecase.Report.WriteReport: %v", err)
			output.ExportError = err.Error()
		} else {
			output.FilePath = path
		}
	}

	return output, nil
}

type reportSettings struct {
	CalendarID   string
	Target       model.BillableTarget
	BaseLocation string
}

// loadSettings reads the tunable settings rows, falling back to
// defaults when a row is absent or the store misbehaves. A broken
// settings table degrades the report, it does not kill it.
func (uc *implUseCase) loadSettings(ctx context.Context) reportSettings {
	out := reportSettings{
		CalendarID: uc.defaultCalendarID,
		Target:     model.BillableTarget{Type: model.TargetPercent, Value: defaultBillableTarget},
	}
	if out.CalendarID == "" {
		out.CalendarID = defaultCalendarID
	}

	if v := uc.getSetting(ctx, repository.SettingWorkCalendar); v != "" {
		out.CalendarID = v
	}
	if v := uc.getSetting(ctx, repository.SettingBillableTargetType); v == string(model.TargetDays) {
		out.Target.Type = model.TargetDays
	}
	if v := uc.getSetting(ctx, repository.SettingBillableTargetValue); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			out.Target.Value = parsed
		} else {
			uc.l.Warnf(ctx, "timesheet.usecase.loadSettings: invalid billable_target_value %q", v)
		}
	}
	out.BaseLocation = uc.getSetting(ctx, repository.SettingBaseLocation)

	return out
}

func (uc *implUseCase) getSetting(ctx context.Context, key string) string {
	v, err := uc.repo.GetSetting(ctx, key)
	if err != nil {
		uc.l.Warnf(ctx, "timesheet.usecase.getSetting: %s: %v", key, err)
		return ""
	}
	return v
}

// normHours resolves the expected hours for the period: weeks are a
// flat 40, months use the stored norm for that month and fall back to
// workdays times eight when no norm row exists.
func (uc *implUseCase) normHours(ctx context.Context, periodType string, bounds periodBounds) float64 {
	if periodType == timesheet.PeriodWeek {
		return weekNormHours
	}

	norm, err := uc.repo.GetNorm(ctx, bounds.Start.Year(), int(bounds.Start.Month()))
	if err != nil {
		uc.l.Warnf(ctx, "timesheet.usecase.normHours: %v", err)
	}
	if norm.Hours > 0 {
		return norm.Hours
	}
	return float64(bounds.WorkdaysTotal) * hoursPerWorkday
}
