package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	timesheetHTTP "calendar-timesheet/internal/timesheet/delivery/http"
	"calendar-timesheet/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	timesheetHandler timesheetHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	TimesheetHandler timesheetHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		timesheetHandler: cfg.TimesheetHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.timesheetHandler == nil {
		return errors.New("timesheet handler is required")
	}
	return nil
}

// Run maps all handlers and serves until the listener fails.
func (srv *HTTPServer) Run() error {
	srv.mapHandlers()
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
