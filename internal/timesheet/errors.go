package timesheet

import "errors"

// Domain-specific errors for the timesheet package.
var (
	ErrMissingDateRange  = errors.New("start_date and end_date required for custom period")
	ErrUnknownPeriodType = errors.New("unknown period type")
	ErrFetchEvents       = errors.New("failed to fetch calendar events")
)
