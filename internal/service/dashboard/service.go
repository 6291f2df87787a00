package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/dashboard"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/collation"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/period"
	attendanceService "github.com/cmlabs-hris/hikvision-dashboard/internal/service/attendance"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	repo         attendance.AttendanceRepository
	resolver     *period.Resolver
	locale       collation.Locale
	topLateLimit int
}

func NewDashboardService(repo attendance.AttendanceRepository, resolver *period.Resolver, locale collation.Locale, topLateLimit int) dashboard.DashboardService {
	return &DashboardServiceImpl{
		repo:         repo,
		resolver:     resolver,
		locale:       locale,
		topLateLimit: topLateLimit,
	}
}

// GetOverview returns today's KPI cards and the leaderboard using parallel goroutines
func (s *DashboardServiceImpl) GetOverview(ctx context.Context) (*dashboard.OverviewResponse, error) {
	today, err := s.resolver.Resolve(period.Selection{Type: period.Today})
	if err != nil {
		return nil, err
	}

	var (
		stats   *attendance.Stats
		topLate []attendance.TopLateEmployee
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Today's stats for the KPI cards and headcounts
	g.Go(func() error {
		result, err := s.repo.GetStats(gCtx, attendance.StatsFilter{
			StartDate: today.StartDate(),
			EndDate:   today.EndDate(),
		})
		if err != nil {
			return fmt.Errorf("failed to load attendance stats: %w", err)
		}
		stats = result
		return nil
	})

	// 2. Leaderboard
	g.Go(func() error {
		result, err := s.repo.GetTopLate(gCtx, s.topLateLimit)
		if err != nil {
			return fmt.Errorf("failed to load top late employees: %w", err)
		}
		topLate = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	grouped := attendanceService.GroupByDepartment(stats.Employees, s.locale.Comparer())

	return &dashboard.OverviewResponse{
		Period:      attendanceService.BuildPeriodRange(period.Today, today),
		KPI:         attendanceService.BuildKPICards(stats.KPI),
		Employees:   len(stats.Employees),
		Departments: len(grouped),
		TopLate:     attendanceService.BuildLeaderboard(topLate),
		UpdatedAt:   s.now().Format(time.RFC3339),
	}, nil
}

func (s *DashboardServiceImpl) now() time.Time {
	if s.resolver.Now != nil {
		return s.resolver.Now().In(s.resolver.Location)
	}
	return time.Now().In(s.resolver.Location)
}
