package attendance

import "context"

// StatsFilter narrows an attendance-stats fetch. Dates are yyyy-MM-dd.
type StatsFilter struct {
	StartDate     string
	EndDate       string
	DepartmentIDs []int64
}

// AttendanceRepository reads attendance data from the upstream API.
type AttendanceRepository interface {
	// GetStats returns the KPI summary and employee list for the filter
	GetStats(ctx context.Context, filter StatsFilter) (*Stats, error)

	// GetTopLate returns at most limit employees ranked by late count
	GetTopLate(ctx context.Context, limit int) ([]TopLateEmployee, error)
}
