package exporter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"calendar-timesheet/internal/model"
	"calendar-timesheet/internal/timesheet"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func testEntry(project, phase, task, description string, hours float64) model.TimeEntry {
	return model.TimeEntry{
		ParsedSummary: model.ParsedSummary{
			ProjectCode: project,
			PhaseCode:   phase,
			TaskCode:    task,
			Description: description,
			Position:    "Consultant",
		},
		Date:          time.Date(2026, time.March, 17, 9, 0, 0, 0, time.UTC),
		DurationHours: hours,
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	exp := New(&mockLogger{}, dir)
	exp.now = func() time.Time { return time.Date(2026, time.March, 18, 12, 0, 0, 0, time.UTC) }

	excluded := model.TimeEntry{
		ParsedSummary: model.ParsedSummary{IsExcluded: true, RawSummary: "Lunch"},
		DurationHours: 8,
	}
	errored := model.TimeEntry{
		ParsedSummary: model.ParsedSummary{
			Description: "ZZZZ meeting",
			RawSummary:  "ZZZZ meeting",
			Errors:      []string{"Project code 'ZZZZ' not found"},
		},
		Date:          time.Date(2026, time.March, 16, 10, 0, 0, 0, time.UTC),
		DurationHours: 1,
	}

	path, err := exp.WriteReport(context.Background(), timesheet.ExportRequest{
		PeriodType: timesheet.PeriodMonth,
		Entries: []model.TimeEntry{
			testEntry("ADB25", "UZ", "BA", "Bank review", 4),
			excluded,
			errored,
		},
		Summary: timesheet.ReportSummary{
			Period: timesheet.PeriodInfo{Type: "month", Start: "2026-03-01", End: "2026-03-18", NormHours: 176},
			Total:  timesheet.TotalMetrics{Hours: 5},
		},
		BaseLocation: "Berlin",
	})
	if err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	if filepath.Base(path) != "2026-03-18_month_timesheet.xlsx" {
		t.Errorf("file name = %q, want date_period_timesheet.xlsx", filepath.Base(path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	sheet := "month-to-date"
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	// Header plus two data rows; the excluded entry is skipped.
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][0] != "Date" || rows[0][9] != "Errors" {
		t.Errorf("header = %v, want the fixed import layout", rows[0])
	}

	first := rows[1]
	if first[0] != "17.03.2026" {
		t.Errorf("Date = %q, want 17.03.2026", first[0])
	}
	if first[2] != "ADB25" || first[3] != "UZ" {
		t.Errorf("Project/Phase = %q/%q, want ADB25/UZ", first[2], first[3])
	}
	if first[4] != "Berlin" {
		t.Errorf("Location = %q, want Berlin", first[4])
	}
	if first[5] != "BA * Bank review" {
		t.Errorf("Description = %q, want task-prefixed form", first[5])
	}
	if first[7] != "Consultant" {
		t.Errorf("Title = %q, want Consultant", first[7])
	}

	second := rows[2]
	if second[5] != "ZZZZ meeting" {
		t.Errorf("Description = %q, want the bare description", second[5])
	}
	if len(second) < 10 || second[9] != "Project code 'ZZZZ' not found" {
		t.Errorf("Errors = %v, want the joined error list", second)
	}

	summary, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("GetRows(Summary): %v", err)
	}
	if summary[1][0] != "Period" || summary[1][1] != "2026-03-01 to 2026-03-18" {
		t.Errorf("summary period = %v, want the report range", summary[1])
	}
	if summary[4][0] != "Total Hours" || summary[4][1] != "5" {
		t.Errorf("summary total = %v, want 5", summary[4])
	}
}

func TestRowDescription(t *testing.T) {
	tests := []struct {
		name  string
		entry model.TimeEntry
		want  string
	}{
		{
			"task prefixed",
			testEntry("ADB25", "UZ", "BA", "Bank review", 1),
			"BA * Bank review",
		},
		{
			"bare description",
			testEntry("UFSP", "", "", "quick call", 1),
			"quick call",
		},
		{
			"raw summary fallback",
			model.TimeEntry{ParsedSummary: model.ParsedSummary{RawSummary: "some title"}},
			"some title",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := rowDescription(tc.entry); got != tc.want {
				t.Errorf("rowDescription = %q, want %q", got, tc.want)
			}
		})
	}
}
