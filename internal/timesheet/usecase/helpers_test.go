package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"calendar-timesheet/internal/model"
	"calendar-timesheet/internal/timesheet"
	"calendar-timesheet/internal/timesheet/parser"
	"calendar-timesheet/internal/timesheet/repository"
	"calendar-timesheet/pkg/gcalendar"
)

// Mock logger for testing
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

// fakeCatalog is an in-memory CatalogRepository. The fixture set:
//
//	UFSP level 1, billable
//	BCH  level 2, non-billable, phase AI
//	ADB25 level 3, billable, phase UZ, task BA
type fakeCatalog struct {
	settings map[string]string
	norms    map[string]float64
}

var ucProjects = map[string][]model.Project{
	"UFSP":  {{ID: 1, Code: "UFSP", IsBillable: true, StructureLevel: 1}},
	"BCH":   {{ID: 3, Code: "BCH", IsBillable: false, StructureLevel: 2}},
	"ADB25": {{ID: 2, Code: "ADB25", IsBillable: true, Position: "Senior Consultant", StructureLevel: 3}},
}

var ucPhases = map[string]model.Phase{
	"3:AI": {ID: 31, ProjectID: 3, Code: "AI"},
	"2:UZ": {ID: 21, ProjectID: 2, Code: "UZ"},
}

var ucTasks = map[string]model.Task{
	"2:BA": {ID: 22, ProjectID: 2, PhaseID: 21, Code: "BA"},
}

func (f *fakeCatalog) GetProjectsByCode(ctx context.Context, code string) ([]model.Project, error) {
	return ucProjects[strings.ToUpper(code)], nil
}

func (f *fakeCatalog) GetPhase(ctx context.Context, opt repository.GetPhaseOptions) (model.Phase, error) {
	return ucPhases[catalogKey(opt.ProjectID, opt.Code)], nil
}

func (f *fakeCatalog) GetTask(ctx context.Context, opt repository.GetTaskOptions) (model.Task, error) {
	return ucTasks[catalogKey(opt.ProjectID, opt.Code)], nil
}

func (f *fakeCatalog) ListExclusions(ctx context.Context) ([]string, error) {
	return []string{"Away", "Lunch", "Out of office"}, nil
}

func (f *fakeCatalog) GetNorm(ctx context.Context, year, month int) (model.Norm, error) {
	key := strconv.Itoa(year) + "-" + strconv.Itoa(month)
	if hours, ok := f.norms[key]; ok {
		return model.Norm{Year: year, Month: month, Hours: hours}, nil
	}
	return model.Norm{}, nil
}

func (f *fakeCatalog) GetSetting(ctx context.Context, key string) (string, error) {
	return f.settings[key], nil
}

func catalogKey(projectID int64, code string) string {
	return strconv.FormatInt(projectID, 10) + ":" + strings.ToUpper(code)
}

// fakeEvents records the last list request and returns canned events.
type fakeEvents struct {
	events  []gcalendar.RawEvent
	err     error
	lastReq gcalendar.ListEventsRequest
}

func (f *fakeEvents) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.RawEvent, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

// fakeExporter returns a canned path or failure.
type fakeExporter struct {
	path    string
	err     error
	lastReq timesheet.ExportRequest
	called  bool
}

func (f *fakeExporter) WriteReport(ctx context.Context, req timesheet.ExportRequest) (string, error) {
	f.called = true
	f.lastReq = req
	return f.path, f.err
}

// Wednesday, 2026-03-18. Week-to-date spans Mon 16th through the 18th
// (3 workdays); month-to-date spans the 1st through the 18th (13 of 22
// workdays).
var fixedNow = time.Date(2026, time.March, 18, 15, 0, 0, 0, time.UTC)

func newTestUseCase(catalog *fakeCatalog, events *fakeEvents, exporter *fakeExporter) *implUseCase {
	l := &mockLogger{}
	return New(l, catalog, parser.New(l, catalog), events, exporter, Config{
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	})
}

func timedEvent(summary, start, end string) gcalendar.RawEvent {
	return gcalendar.RawEvent{
		Summary: summary,
		Start:   gcalendar.EventTime{DateTime: start},
		End:     gcalendar.EventTime{DateTime: end},
	}
}

func allDayEvent(summary, date string) gcalendar.RawEvent {
	return gcalendar.RawEvent{
		Summary: summary,
		Start:   gcalendar.EventTime{Date: date},
	}
}

var errUnavailable = errors.New("unavailable")

// defaultEvents is the canonical four-event fixture: a 4h billable
// task entry, an excluded all-day lunch, a 1h non-billable entry and
// one unparseable title.
func defaultEvents() []gcalendar.RawEvent {
	return []gcalendar.RawEvent{
		timedEvent("ADB25 * UZ * BA * Bank review", "2026-03-17T09:00:00Z", "2026-03-17T13:00:00Z"),
		allDayEvent("Lunch", "2026-03-17"),
		timedEvent("BCH * AI * sync", "2026-03-17T14:00:00Z", "2026-03-17T15:00:00Z"),
		timedEvent("ZZZZ meeting", "2026-03-16T10:00:00Z", "2026-03-16T11:00:00Z"),
	}
}
