package http

import (
	"errors"

	"calendar-timesheet/internal/timesheet"
	pkgErrors "calendar-timesheet/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. Caller mistakes map to 400, upstream failures to 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, timesheet.ErrMissingDateRange):
		return pkgErrors.NewHTTPError(400, timesheet.ErrMissingDateRange.Error())
	case errors.Is(err, timesheet.ErrUnknownPeriodType):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, timesheet.ErrFetchEvents):
		return pkgErrors.NewHTTPError(500, timesheet.ErrFetchEvents.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
