package http

import (
	"github.com/gin-gonic/gin"

	"calendar-timesheet/internal/timesheet"
	"calendar-timesheet/pkg/log"
)

// Handler is the public interface for the timesheet HTTP delivery layer.
type Handler interface {
	Report(c *gin.Context)
	Status(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc timesheet.UseCase
}

// New creates a new HTTP handler for the timesheet domain.
func New(l log.Logger, uc timesheet.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
