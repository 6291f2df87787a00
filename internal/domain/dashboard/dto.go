package dashboard

import "github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"

// OverviewResponse is the combined response for the landing dashboard
type OverviewResponse struct {
	Period      attendance.PeriodRange        `json:"period"`
	KPI         []attendance.KPICard          `json:"kpi"`
	Employees   int                           `json:"employees"`
	Departments int                           `json:"departments"`
	TopLate     []attendance.LeaderboardEntry `json:"top_late"`
	UpdatedAt   string                        `json:"updated_at"`
}
