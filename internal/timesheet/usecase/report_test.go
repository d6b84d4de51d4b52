package usecase

import (
	"context"
	"errors"
	"testing"

	"calendar-timesheet/internal/timesheet"
	"calendar-timesheet/internal/timesheet/repository"
)

func TestReportMonth(t *testing.T) {
	events := &fakeEvents{events: defaultEvents()}
	uc := newTestUseCase(&fakeCatalog{}, events, &fakeExporter{})

	out, err := uc.Report(context.Background(), timesheet.ReportInput{PeriodType: timesheet.PeriodMonth})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	period := out.Summary.Period
	if period.Type != timesheet.PeriodMonth {
		t.Errorf("Period.Type = %q, want month", period.Type)
	}
	if period.Start != "2026-03-01" || period.End != "2026-03-18" {
		t.Errorf("Period = %s..%s, want 2026-03-01..2026-03-18", period.Start, period.End)
	}
	// No norm row: 22 weekdays fall back to 176h.
	if period.NormHours != 176 {
		t.Errorf("NormHours = %v, want 176", period.NormHours)
	}
	if period.WorkdaysElapsed != 13 || period.HoursElapsed != 104 {
		t.Errorf("elapsed = %d wd / %vh, want 13 / 104", period.WorkdaysElapsed, period.HoursElapsed)
	}
	if period.BillableTargetHours != 132 || period.BillableTargetDays != 16.5 {
		t.Errorf("target = %vh / %vd, want 132 / 16.5", period.BillableTargetHours, period.BillableTargetDays)
	}

	if out.Summary.Total.Hours != 5 {
		t.Errorf("Total.Hours = %v, want 5", out.Summary.Total.Hours)
	}
	if out.Summary.Billable.Hours != 4 {
		t.Errorf("Billable.Hours = %v, want 4", out.Summary.Billable.Hours)
	}
	if out.Summary.NonBillable.Hours != 1 {
		t.Errorf("NonBillable.Hours = %v, want 1", out.Summary.NonBillable.Hours)
	}
	if out.Summary.Errors.Count != 1 || len(out.ErrorRecords) != 1 {
		t.Errorf("errors = %d/%d, want 1/1", out.Summary.Errors.Count, len(out.ErrorRecords))
	}
	if out.FilePath != "" || out.ExportError != "" {
		t.Errorf("export fields = %q/%q, want empty without export", out.FilePath, out.ExportError)
	}

	if events.lastReq.CalendarID != "primary" {
		t.Errorf("CalendarID = %q, want primary default", events.lastReq.CalendarID)
	}
}

func TestReportDefaultsToMonth(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{}, &fakeEvents{}, &fakeExporter{})

	out, err := uc.Report(context.Background(), timesheet.ReportInput{})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if out.Summary.Period.Type != timesheet.PeriodMonth {
		t.Errorf("Period.Type = %q, want month default", out.Summary.Period.Type)
	}
}

func TestReportUsesSettings(t *testing.T) {
	catalog := &fakeCatalog{
		settings: map[string]string{
			repository.SettingWorkCalendar:        "work@example.com",
			repository.SettingBillableTargetType:  "days",
			repository.SettingBillableTargetValue: "10",
		},
		norms: map[string]float64{"2026-3": 168},
	}
	events := &fakeEvents{}
	uc := newTestUseCase(catalog, events, &fakeExporter{})

	out, err := uc.Report(context.Background(), timesheet.ReportInput{PeriodType: timesheet.PeriodMonth})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if events.lastReq.CalendarID != "work@example.com" {
		t.Errorf("CalendarID = %q, want the configured calendar", events.lastReq.CalendarID)
	}
	if out.Summary.Period.NormHours != 168 {
		t.Errorf("NormHours = %v, want the stored norm 168", out.Summary.Period.NormHours)
	}
	// 10 days at 8h each, regardless of the norm.
	if out.Summary.Period.BillableTargetHours != 80 {
		t.Errorf("BillableTargetHours = %v, want 80", out.Summary.Period.BillableTargetHours)
	}
}

func TestReportFetchFailureIsFatal(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{}, &fakeEvents{err: errUnavailable}, &fakeExporter{})

	_, err := uc.Report(context.Background(), timesheet.ReportInput{PeriodType: timesheet.PeriodWeek})
	if !errors.Is(err, timesheet.ErrFetchEvents) {
		t.Errorf("Report = %v, want ErrFetchEvents", err)
	}
}

func TestReportCustomMissingDates(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{}, &fakeEvents{}, &fakeExporter{})

	_, err := uc.Report(context.Background(), timesheet.ReportInput{PeriodType: timesheet.PeriodCustom})
	if !errors.Is(err, timesheet.ErrMissingDateRange) {
		t.Errorf("Report = %v, want ErrMissingDateRange", err)
	}
}

func TestReportExport(t *testing.T) {
	catalog := &fakeCatalog{settings: map[string]string{repository.SettingBaseLocation: "Berlin"}}
	exporter := &fakeExporter{path: "/reports/2026-03-18_month_timesheet.xlsx"}
	uc := newTestUseCase(catalog, &fakeEvents{events: defaultEvents()}, exporter)

	out, err := uc.Report(context.Background(), timesheet.ReportInput{PeriodType: timesheet.PeriodMonth, Export: true})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if out.FilePath != exporter.path {
		t.Errorf("FilePath = %q, want %q", out.FilePath, exporter.path)
	}
	if out.ExportError != "" {
		t.Errorf("ExportError = %q, want empty", out.ExportError)
	}
	if exporter.lastReq.BaseLocation != "Berlin" {
		t.Errorf("BaseLocation = %q, want Berlin", exporter.lastReq.BaseLocation)
	}
	if len(exporter.lastReq.Entries) != 4 {
		t.Errorf("exported %d entries, want all 4 parsed entries", len(exporter.lastReq.Entries))
	}
}

func TestReportExportFailureIsNonFatal(t *testing.T) {
	exporter := &fakeExporter{err: errors.New("disk full")}
	uc := newTestUseCase(&fakeCatalog{}, &fakeEvents{events: defaultEvents()}, exporter)

	out, err := uc.Report(context.Background(), timesheet.ReportInput{PeriodType: timesheet.PeriodMonth, Export: true})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if out.ExportError != "disk full" {
		t.Errorf("ExportError = %q, want the export failure", out.ExportError)
	}
	if out.FilePath != "" {
		t.Errorf("FilePath = %q, want empty on failure", out.FilePath)
	}
	if out.Summary.Total.Hours != 5 {
		t.Errorf("Total.Hours = %v, want the metrics intact", out.Summary.Total.Hours)
	}
}
