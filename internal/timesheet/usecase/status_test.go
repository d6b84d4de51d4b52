package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"calendar-timesheet/internal/timesheet"
	"calendar-timesheet/pkg/gcalendar"
)

func TestStatus(t *testing.T) {
	events := &fakeEvents{events: defaultEvents()}
	uc := newTestUseCase(&fakeCatalog{}, events, &fakeExporter{})

	out, err := uc.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	month := out.Month
	if month.TotalHours != 5 || month.BillableHours != 4 {
		t.Errorf("Month = %v/%vh, want 5/4", month.TotalHours, month.BillableHours)
	}
	if month.NormHours != 176 || month.WorkdaysElapsed != 13 || month.ElapsedTargetHours != 104 {
		t.Errorf("Month norm block = %+v, want 176/13/104", month)
	}
	if month.OnTrackPct != 4.8 {
		t.Errorf("Month.OnTrackPct = %v, want 4.8", month.OnTrackPct)
	}
	// 4h against a 78h elapsed billable target.
	if month.BillableOnTrackPct != 5.1 {
		t.Errorf("Month.BillableOnTrackPct = %v, want 5.1", month.BillableOnTrackPct)
	}
	if month.ErrorCount != 1 {
		t.Errorf("Month.ErrorCount = %d, want 1", month.ErrorCount)
	}

	week := out.Week
	if week.TotalHours != 5 || week.BillableHours != 4 {
		t.Errorf("Week = %v/%vh, want 5/4", week.TotalHours, week.BillableHours)
	}
	if week.NormHours != 40 || week.WorkdaysElapsed != 3 || week.ElapsedTargetHours != 24 {
		t.Errorf("Week norm block = %+v, want 40/3/24", week)
	}
	if week.OnTrackPct != 20.8 {
		t.Errorf("Week.OnTrackPct = %v, want 20.8", week.OnTrackPct)
	}
	if week.BillableOnTrackPct != 22.2 {
		t.Errorf("Week.BillableOnTrackPct = %v, want 22.2", week.BillableOnTrackPct)
	}

	if !strings.HasPrefix(out.Message, "🔴") {
		t.Errorf("Message = %q, want red emoji when far off track", out.Message)
	}
	if !strings.Contains(out.Message, "1 events need attention") {
		t.Errorf("Message = %q, want attention suffix", out.Message)
	}
}

func TestStatusSplitsWeekFromMonth(t *testing.T) {
	// One entry before the current week, one inside it.
	events := &fakeEvents{events: []gcalendar.RawEvent{
		timedEvent("UFSP * early month work", "2026-03-05T09:00:00Z", "2026-03-05T17:00:00Z"),
		timedEvent("UFSP * this week work", "2026-03-17T09:00:00Z", "2026-03-17T13:00:00Z"),
	}}
	uc := newTestUseCase(&fakeCatalog{}, events, &fakeExporter{})

	out, err := uc.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	if out.Month.TotalHours != 12 {
		t.Errorf("Month.TotalHours = %v, want both entries (12)", out.Month.TotalHours)
	}
	if out.Week.TotalHours != 4 {
		t.Errorf("Week.TotalHours = %v, want only the in-week entry (4)", out.Week.TotalHours)
	}
}

func TestStatusMessageThresholds(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		emoji string
	}{
		{"on track", 97.3, "✅"},
		{"exactly 95", 95, "✅"},
		{"slightly behind", 86, "⚠️"},
		{"exactly 80", 80, "⚠️"},
		{"far behind", 79.9, "🔴"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := statusMessage(
				timesheet.PeriodStatus{},
				timesheet.PeriodStatus{BillableOnTrackPct: tc.pct},
			)
			if !strings.HasPrefix(msg, tc.emoji) {
				t.Errorf("statusMessage(%v) = %q, want prefix %q", tc.pct, msg, tc.emoji)
			}
			if strings.Contains(msg, "need attention") {
				t.Errorf("statusMessage(%v) = %q, no errors so no attention suffix", tc.pct, msg)
			}
		})
	}
}

func TestStatusFetchFailureIsFatal(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{}, &fakeEvents{err: errUnavailable}, &fakeExporter{})

	if _, err := uc.Status(context.Background()); !errors.Is(err, timesheet.ErrFetchEvents) {
		t.Errorf("Status = %v, want ErrFetchEvents", err)
	}
}
