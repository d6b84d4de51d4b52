package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	ts := rg.Group("/timesheet")
	{
		ts.GET("/report", h.Report)
		ts.GET("/status", h.Status)
	}
}
