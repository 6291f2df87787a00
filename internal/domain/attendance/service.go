package attendance

import "context"

// AttendanceService builds the employee monitoring page
type AttendanceService interface {
	// GetEmployeesPage returns KPI cards and the grouped, filtered employee table
	GetEmployeesPage(ctx context.Context, req EmployeesPageRequest) (*EmployeesPageResponse, error)

	// GetTopLate returns the ranked leaderboard
	GetTopLate(ctx context.Context, limit int) (*TopLateResponse, error)
}
