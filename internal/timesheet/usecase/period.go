package usecase

import (
	"fmt"
	"time"

	"calendar-timesheet/internal/timesheet"
)

const dateLayout = "2006-01-02"

// periodBounds is a resolved reporting period with workday counts.
type periodBounds struct {
	Start           time.Time
	End             time.Time
	WorkdaysTotal   int
	WorkdaysElapsed int
}

// resolvePeriod turns a period type (week/month/custom) into concrete
// instants. Week is Monday through now, month is the 1st through now;
// custom takes caller-supplied ISO dates with the end defaulting to
// 23:59:59 on the given day.
func (uc *implUseCase) resolvePeriod(periodType, startDate, endDate string) (periodBounds, error) {
	now := uc.now().In(uc.loc)
	today := startOfDay(now)

	switch periodType {
	case timesheet.PeriodWeek:
		monday := today.AddDate(0, 0, -mondayOffset(today.Weekday()))
		return periodBounds{
			Start:           monday,
			End:             endOfDay(now),
			WorkdaysTotal:   5,
			WorkdaysElapsed: countWorkdays(monday, today),
		}, nil

	case timesheet.PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, uc.loc)
		last := first.AddDate(0, 1, -1)
		return periodBounds{
			Start:           first,
			End:             endOfDay(now),
			WorkdaysTotal:   countWorkdays(first, last),
			WorkdaysElapsed: countWorkdays(first, today),
		}, nil

	case timesheet.PeriodCustom:
		if startDate == "" || endDate == "" {
			return periodBounds{}, timesheet.ErrMissingDateRange
		}
		start, err := parseDate(startDate, uc.loc)
		if err != nil {
			return periodBounds{}, fmt.Errorf("invalid start_date %q: %w", startDate, err)
		}
		end, err := parseDate(endDate, uc.loc)
		if err != nil {
			return periodBounds{}, fmt.Errorf("invalid end_date %q: %w", endDate, err)
		}
		if end.Hour() == 0 && end.Minute() == 0 {
			end = endOfDay(end)
		}

		elapsedUntil := startOfDay(end)
		if today.Before(elapsedUntil) {
			elapsedUntil = today
		}
		return periodBounds{
			Start:           start,
			End:             end,
			WorkdaysTotal:   countWorkdays(start, startOfDay(end)),
			WorkdaysElapsed: countWorkdays(start, elapsedUntil),
		}, nil

	default:
		return periodBounds{}, fmt.Errorf("%w: %q", timesheet.ErrUnknownPeriodType, periodType)
	}
}

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// countWorkdays counts Monday–Friday days in [from, to], inclusive,
// comparing calendar dates only.
func countWorkdays(from, to time.Time) int {
	count := 0
	for d := startOfDay(from); !d.After(startOfDay(to)); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// mondayOffset is the number of days since the most recent Monday.
func mondayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
