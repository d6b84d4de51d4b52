package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"calendar-timesheet/config"
	_ "calendar-timesheet/docs" // Swagger docs
	"calendar-timesheet/internal/httpserver"
	timesheetHTTP "calendar-timesheet/internal/timesheet/delivery/http"
	"calendar-timesheet/internal/timesheet/exporter"
	"calendar-timesheet/internal/timesheet/parser"
	"calendar-timesheet/internal/timesheet/repository/cached"
	"calendar-timesheet/internal/timesheet/repository/postgre"
	"calendar-timesheet/internal/timesheet/usecase"
	"calendar-timesheet/pkg/gcalendar"
	"calendar-timesheet/pkg/log"
)

// @title       Calendar Timesheet API
// @description Turns free-text Google Calendar event titles into billable time-tracking reports.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Timesheet...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timezone
	loc, err := time.LoadLocation(cfg.Timesheet.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timesheet.Timezone, err)
		loc = time.UTC
	}

	// 4. Catalog store
	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		logger.Errorf(ctx, "Failed to open postgres: %v", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Errorf(ctx, "Failed to ping postgres: %v", err)
		return
	}

	cacheTTL, err := time.ParseDuration(cfg.CatalogCache.TTL)
	if err != nil {
		logger.Warnf(ctx, "Invalid catalog cache TTL %q, using 5m: %v", cfg.CatalogCache.TTL, err)
		cacheTTL = 5 * time.Minute
	}
	catalogRepo := cached.New(postgre.New(db, logger), cfg.CatalogCache.Size, cacheTTL)

	// 5. Google Calendar client
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Google Calendar not available: %v", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}
	logger.Info(ctx, "Google Calendar initialized")

	// 6. Timesheet domain
	summaryParser := parser.New(logger, catalogRepo)
	excelExporter := exporter.New(logger, cfg.Timesheet.ReportsDir)

	timesheetUC := usecase.New(logger, catalogRepo, summaryParser, calendarClient, excelExporter, usecase.Config{
		Location:          loc,
		DefaultCalendarID: cfg.GoogleCalendar.CalendarID,
	})
	timesheetHandler := timesheetHTTP.New(logger, timesheetUC)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		TimesheetHandler: timesheetHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
