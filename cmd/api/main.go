package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/config"
	appHTTP "github.com/cmlabs-hris/hikvision-dashboard/internal/handler/http"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/collation"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/cron"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/logger"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/metrics"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/period"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/resilience"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/repository/hikvision"
	attendanceService "github.com/cmlabs-hris/hikvision-dashboard/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/hikvision-dashboard/internal/service/dashboard"
	departmentService "github.com/cmlabs-hris/hikvision-dashboard/internal/service/department"
	reportService "github.com/cmlabs-hris/hikvision-dashboard/internal/service/report"
)

const serviceName = "hikvision-dashboard"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	appLogger := logger.New(os.Stdout, logger.Options{
		App:     serviceName,
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   cfg.LogLevel(),
	})
	slog.SetDefault(appLogger)

	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid timezone: ", err)
	}
	locale, err := collation.New(cfg.App.Locale)
	if err != nil {
		log.Fatal("Invalid locale: ", err)
	}
	resolver := period.NewResolver(location)
	appMetrics := metrics.New(metrics.DefaultConfig(serviceName))

	breakerConfig := resilience.DefaultCircuitBreakerConfig("attendance-api")
	breakerConfig.MaxRequests = cfg.Breaker.MaxRequests
	breakerConfig.Interval = cfg.Breaker.Interval
	breakerConfig.Timeout = cfg.Breaker.Timeout
	breakerConfig.FailureThreshold = cfg.Breaker.FailureThreshold

	client := hikvision.NewClient(hikvision.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
		Breaker: breakerConfig,
	}, appMetrics)

	attendanceRepo := hikvision.NewAttendanceRepository(client)
	departmentRepo := hikvision.NewDepartmentRepository(client)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, resolver, locale)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, resolver, locale, cfg.Upstream.TopLateLimit)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo, locale)
	reportSvc := reportService.NewReportService(cfg.Report.ExportBasePath, location)

	periodHandler := appHTTP.NewPeriodHandler(resolver)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, attendanceSvc, cfg.Upstream.TopLateLimit)
	employeeHandler := appHTTP.NewEmployeeHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(departmentSvc, reportSvc, location)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         appLogger,
			Metrics:        appMetrics,
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
		},
		periodHandler,
		dashboardHandler,
		employeeHandler,
		reportHandler,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler(appLogger)
	cron.NewUpstreamJobs(client, appMetrics, cfg.Upstream.Timeout).
		RegisterJobs(scheduler, cfg.Upstream.HealthProbeInterval)
	scheduler.Start(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "upstream", client.BaseURL(), "locale", locale.String(), "timezone", location.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
