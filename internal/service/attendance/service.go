package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/collation"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/period"
)

// MaxTopLateLimit caps the leaderboard size a client may request.
const MaxTopLateLimit = 100

type AttendanceServiceImpl struct {
	repo     attendance.AttendanceRepository
	resolver *period.Resolver
	locale   collation.Locale
}

func NewAttendanceService(repo attendance.AttendanceRepository, resolver *period.Resolver, locale collation.Locale) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		repo:     repo,
		resolver: resolver,
		locale:   locale,
	}
}

// GetEmployeesPage resolves the period, fetches stats and shapes the table
func (s *AttendanceServiceImpl) GetEmployeesPage(ctx context.Context, req attendance.EmployeesPageRequest) (*attendance.EmployeesPageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sel, err := period.ParseSelection(req.Period, req.StartDate, req.EndDate, s.resolver.Location)
	if err != nil {
		return nil, err
	}
	rng, err := s.resolver.Resolve(sel)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.GetStats(ctx, attendance.StatsFilter{
		StartDate:     rng.StartDate(),
		EndDate:       rng.EndDate(),
		DepartmentIDs: req.DepartmentIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance stats: %w", err)
	}

	grouped := GroupByDepartment(stats.Employees, s.locale.Comparer())
	filtered := FilterGroups(grouped, req.Query)

	slog.DebugContext(ctx, "employees page built",
		"period", rng.String(),
		"employees", len(stats.Employees),
		"groups", len(grouped),
		"matched", filtered.Len(),
	)

	return &attendance.EmployeesPageResponse{
		Period:           BuildPeriodRange(sel.Type, rng),
		KPI:              BuildKPICards(stats.KPI),
		Query:            req.Query,
		TotalEmployees:   len(stats.Employees),
		MatchedEmployees: filtered.Len(),
		Groups:           BuildGroups(filtered, req.Expanded),
	}, nil
}

// GetTopLate returns the upstream leaderboard with ranks
func (s *AttendanceServiceImpl) GetTopLate(ctx context.Context, limit int) (*attendance.TopLateResponse, error) {
	if limit < 1 || limit > MaxTopLateLimit {
		return nil, attendance.ErrInvalidLimit
	}

	employees, err := s.repo.GetTopLate(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top late employees: %w", err)
	}

	return &attendance.TopLateResponse{
		Limit:     limit,
		Employees: BuildLeaderboard(employees),
	}, nil
}
