package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"staffcalendar/config"
	"staffcalendar/internal/adapters/ics"
	httpdelivery "staffcalendar/internal/delivery/http"
	"staffcalendar/internal/delivery/http/middleware"
	"staffcalendar/internal/domain"
	"staffcalendar/internal/layout"
	"staffcalendar/internal/repository/memory"
	"staffcalendar/internal/repository/postgres"
	"staffcalendar/internal/services"
)

const requestTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	lay, err := config.LoadLayout(cfg.LayoutPath)
	if err != nil {
		logger.Error("failed to load layout config", "path", cfg.LayoutPath, "err", err)
		os.Exit(1)
	}
	window := layout.Window{StartHour: lay.StartHour, EndHour: lay.EndHour}
	metrics := layout.Metrics{
		HourHeight:          lay.HourHeight,
		AllDayBaseHeight:    lay.AllDayBaseHeight,
		AllDayEventHeight:   lay.AllDayEventHeight,
		AllDayBottomSpacing: lay.AllDayBottomSpacing,
		DayHeaderHeight:     lay.DayHeaderHeight,
		EventPaddingPct:     lay.EventPaddingPct,
	}

	var (
		employeeRepo domain.EmployeeRepository
		sessionRepo  domain.SessionRepository
		eventRepo    domain.EventRepository
	)
	if cfg.DBUrl == "" {
		logger.Info("no DATABASE_URL set, serving built-in sample data")
		employeeRepo = memory.NewEmployeeRepository()
		sessionRepo = memory.NewSessionRepository(nil)
		eventRepo = memory.NewEventRepository(nil)
	} else {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("failed to reach database", "err", err)
			os.Exit(1)
		}
		employeeRepo = postgres.NewEmployeeRepository(db)
		sessionRepo = postgres.NewSessionRepository(db)
		eventRepo = postgres.NewEventRepository(db)
	}

	svc := services.NewScheduleService(employeeRepo, sessionRepo, eventRepo, window, metrics, logger, nil, requestTimeout)

	ticker, err := services.NewTimelineTicker(lay.TickSchedule, logger, func() {
		svc.RefreshTimeline()
	})
	if err != nil {
		logger.Error("failed to start timeline ticker", "err", err)
		os.Exit(1)
	}
	ticker.Start()
	defer ticker.Stop()

	exporter := ics.NewExporter(logger)
	scheduleController := httpdelivery.NewScheduleController(logger, svc, exporter)
	calendarController := httpdelivery.NewCalendarController(logger, svc)
	mux := httpdelivery.NewRouter(scheduleController, calendarController)

	handler := middleware.LoggingMiddleware(logger, mux)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
