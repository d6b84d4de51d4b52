package http

import (
	"github.com/gin-gonic/gin"
)

// processReportReq binds and validates the report query parameters.
func (h *handler) processReportReq(c *gin.Context) (reportReq, error) {
	var req reportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
