package http

import (
	"net/http"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/dashboard"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/handler/http/response"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/validator"
	attendanceService "github.com/cmlabs-hris/hikvision-dashboard/internal/service/attendance"
)

type DashboardHandler interface {
	// GetOverview returns today's KPI cards and the leaderboard
	GetOverview(w http.ResponseWriter, r *http.Request)
	// GetTopLate returns the ranked late-arrival leaderboard
	GetTopLate(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService  dashboard.DashboardService
	attendanceService attendance.AttendanceService
	defaultLimit      int
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, attendanceService attendance.AttendanceService, defaultLimit int) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService:  dashboardService,
		attendanceService: attendanceService,
		defaultLimit:      defaultLimit,
	}
}

// GetOverview handles GET /dashboard
func (h *dashboardHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetOverview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTopLate handles GET /dashboard/top-late
func (h *dashboardHandlerImpl) GetTopLate(w http.ResponseWriter, r *http.Request) {
	limit, ok := validator.ParseLimit(r.URL.Query().Get("limit"), h.defaultLimit, attendanceService.MaxTopLateLimit)
	if !ok {
		response.BadRequest(w, "limit must be a number between 1 and 100", nil)
		return
	}

	result, err := h.attendanceService.GetTopLate(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
