package http

import (
	"github.com/gin-gonic/gin"

	"calendar-timesheet/pkg/response"
)

// Report godoc
// @Summary     Generate a timesheet report
// @Description Fetches calendar events for the requested period, parses them and returns the aggregated report. With export=true the row-level spreadsheet is also written.
// @Tags        Timesheet
// @Produce     json
// @Param       period     query string false "Period type: week, month or custom (default: month)"
// @Param       start_date query string false "Start date for custom period (YYYY-MM-DD)"
// @Param       end_date   query string false "End date for custom period (YYYY-MM-DD)"
// @Param       export     query bool   false "Also write the Excel timesheet"
// @Success     200 {object} reportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timesheet/report [GET]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Report(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Report: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newReportResp(output))
}

// Status godoc
// @Summary     Quick time tracking status
// @Description Returns the condensed week-to-date and month-to-date progress blocks plus a one-line status message.
// @Tags        Timesheet
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timesheet/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Status(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Status: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStatusResp(output))
}
