package dashboard

import "context"

// DashboardService defines the interface for the landing dashboard
type DashboardService interface {
	// GetOverview returns today's KPI cards and the leaderboard, fetched in parallel
	GetOverview(ctx context.Context) (*OverviewResponse, error)
}
