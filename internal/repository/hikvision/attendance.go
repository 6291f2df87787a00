package hikvision

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
)

type attendanceRepository struct {
	client *Client
}

func NewAttendanceRepository(client *Client) attendance.AttendanceRepository {
	return &attendanceRepository{client: client}
}

// GetStats implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetStats(ctx context.Context, filter attendance.StatsFilter) (*attendance.Stats, error) {
	query := url.Values{}
	if filter.StartDate != "" {
		query.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("end_date", filter.EndDate)
	}
	for _, id := range filter.DepartmentIDs {
		query.Add("department", strconv.FormatInt(id, 10))
	}

	var stats attendance.Stats
	if err := r.client.getJSON(ctx, "attendance_stats", "attendance-stats/", query, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

type topLateResponse struct {
	Employees []attendance.TopLateEmployee `json:"employees"`
}

// GetTopLate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetTopLate(ctx context.Context, limit int) ([]attendance.TopLateEmployee, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var resp topLateResponse
	if err := r.client.getJSON(ctx, "top_late_employees", "top-late-employees/", query, &resp); err != nil {
		return nil, err
	}
	return resp.Employees, nil
}
