// Package main provides dashctl, an operator CLI over the attendance API.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/config"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/department"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/collation"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/logger"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/period"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/resilience"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/repository/hikvision"
	attendanceService "github.com/cmlabs-hris/hikvision-dashboard/internal/service/attendance"
	departmentService "github.com/cmlabs-hris/hikvision-dashboard/internal/service/department"
	reportService "github.com/cmlabs-hris/hikvision-dashboard/internal/service/report"
)

var (
	upstreamURL string
	timeout     time.Duration
	verbose     bool
)

// app holds the services every subcommand works against.
type app struct {
	out         io.Writer
	resolver    *period.Resolver
	location    *time.Location
	client      *hikvision.Client
	attendance  attendance.AttendanceService
	departments department.DepartmentService
	reports     report.ReportService
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "dashctl",
		Short:         "Inspect attendance data from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&upstreamURL, "upstream", "", "attendance API base URL (overrides UPSTREAM_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout (overrides UPSTREAM_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")

	rootCmd.AddCommand(newPeriodCmd(a))
	rootCmd.AddCommand(newEmployeesCmd(a))
	rootCmd.AddCommand(newTopLateCmd(a))
	rootCmd.AddCommand(newStaffCmd(a))
	rootCmd.AddCommand(newDepartmentsCmd(a))
	rootCmd.AddCommand(newExportLinkCmd(a))
	rootCmd.AddCommand(newPingCmd(a))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(logger.New(cmd.ErrOrStderr(), logger.Options{
		App:   "dashctl",
		Level: level,
	}))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if upstreamURL != "" {
		cfg.Upstream.BaseURL = upstreamURL
	}
	if timeout > 0 {
		cfg.Upstream.Timeout = timeout
	}

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	locale, err := collation.New(cfg.App.Locale)
	if err != nil {
		return err
	}

	breakerConfig := resilience.DefaultCircuitBreakerConfig("attendance-api")
	breakerConfig.MaxRequests = cfg.Breaker.MaxRequests
	breakerConfig.Interval = cfg.Breaker.Interval
	breakerConfig.Timeout = cfg.Breaker.Timeout
	breakerConfig.FailureThreshold = cfg.Breaker.FailureThreshold

	a.out = cmd.OutOrStdout()
	a.location = loc
	a.resolver = period.NewResolver(loc)
	a.client = hikvision.NewClient(hikvision.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
		Breaker: breakerConfig,
	}, nil)
	a.attendance = attendanceService.NewAttendanceService(hikvision.NewAttendanceRepository(a.client), a.resolver, locale)
	a.departments = departmentService.NewDepartmentService(hikvision.NewDepartmentRepository(a.client), locale)
	a.reports = reportService.NewReportService(cfg.Report.ExportBasePath, loc)
	return nil
}
