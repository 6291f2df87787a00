package hikvision

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/metrics"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/resilience"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, m *metrics.Metrics) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	breaker := resilience.DefaultCircuitBreakerConfig("attendance-api")
	breaker.FailureThreshold = 2
	breaker.Timeout = time.Hour
	return NewClient(Config{BaseURL: srv.URL + "/api/v1/", Timeout: 5 * time.Second, Breaker: breaker}, m)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestAttendanceRepository_GetStats(t *testing.T) {
	m := metrics.New(metrics.DefaultConfig("test"))
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/attendance-stats/", r.URL.Path)
		assert.Equal(t, "2024-03-11", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-03-14", r.URL.Query().Get("end_date"))
		assert.Equal(t, []string{"3", "7"}, r.URL.Query()["department"])

		_, _ = w.Write([]byte(`{
			"kpi": {"workedPercent": 87.5, "workedTime": "7ч 0м", "workedSeconds": 25200,
			        "trend": {"worked": 1.5, "productive": -2}},
			"employees": [
				{"id": 1, "name": "Анна Ли", "department": "Бухгалтерия",
				 "stats": {"productivePercent": 60, "distractionPercent": 10, "idlePercent": 30},
				 "lateMinutes": 12, "earlyLeaveMinutes": 0, "incidentsCount": 1, "workedSeconds": 25200}
			]
		}`))
	}, m)
	repo := NewAttendanceRepository(client)

	stats, err := repo.GetStats(context.Background(), attendance.StatsFilter{
		StartDate:     "2024-03-11",
		EndDate:       "2024-03-14",
		DepartmentIDs: []int64{3, 7},
	})
	require.NoError(t, err)

	assert.Equal(t, 87.5, stats.KPI.WorkedPercent)
	assert.Equal(t, int64(25200), stats.KPI.WorkedSeconds)
	assert.Equal(t, float64(-2), stats.KPI.Trend.Productive)
	require.Len(t, stats.Employees, 1)
	assert.Equal(t, "Бухгалтерия", stats.Employees[0].Department)
	assert.Equal(t, float64(60), stats.Employees[0].Stats.ProductivePercent)
	assert.Equal(t, 12, stats.Employees[0].LateMinutes)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("test", "attendance_stats", "200")))
}

func TestAttendanceRepository_GetStats_NoFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(t, w, attendance.Stats{})
	}, nil)

	stats, err := NewAttendanceRepository(client).GetStats(context.Background(), attendance.StatsFilter{})
	require.NoError(t, err)
	assert.Empty(t, stats.Employees)
}

func TestAttendanceRepository_GetTopLate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/top-late-employees/", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"employees": [
			{"id": 4, "name": "Б", "lateCount": 7, "earlyLeaveCount": 1},
			{"id": 2, "name": "А", "lateCount": 3, "earlyLeaveCount": 0}
		]}`))
	}, nil)

	employees, err := NewAttendanceRepository(client).GetTopLate(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, int64(4), employees[0].ID)
	assert.Equal(t, 7, employees[0].LateCount)
}

func TestDepartmentRepository_ListTree(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/departments/", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Офис", "full_path": "Офис",
			 "employees": [{"id": 10, "hikvision_id": "H-10", "name": "Иванов", "allowed_late_minutes": 5}],
			 "children": [{"id": 2, "name": "ИТ", "full_path": "Офис / ИТ", "parent": 1, "parent_name": "Офис"}]}
		]`))
	}, nil)

	forest, err := NewDepartmentRepository(client).ListTree(context.Background())
	require.NoError(t, err)

	require.Len(t, forest, 1)
	assert.Equal(t, "H-10", forest[0].Employees[0].HikvisionID)
	require.NotNil(t, forest[0].Employees[0].AllowedLateMinutes)
	assert.Equal(t, 5, *forest[0].Employees[0].AllowedLateMinutes)
	require.Len(t, forest[0].Children, 1)
	require.NotNil(t, forest[0].Children[0].Parent)
	assert.Equal(t, int64(1), *forest[0].Children[0].Parent)

}

func TestClient_ServerErrorOpensBreaker(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "database is down", http.StatusInternalServerError)
	}, nil)
	repo := NewDepartmentRepository(client)

	for i := 0; i < 2; i++ {
		_, err := repo.ListTree(context.Background())
		require.ErrorIs(t, err, attendance.ErrUpstreamUnavailable)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "database is down", apiErr.Body)
	}

	_, err := repo.ListTree(context.Background())
	assert.ErrorIs(t, err, attendance.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, "open", client.BreakerStatus().State)
}

func TestClient_ClientErrorKeepsBreakerClosed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "bad limit"}`, http.StatusBadRequest)
	}, nil)
	repo := NewAttendanceRepository(client)

	for i := 0; i < 3; i++ {
		_, err := repo.GetTopLate(context.Background(), 10)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	}
	assert.Equal(t, "closed", client.BreakerStatus().State)
}

func TestClient_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"employees": "nope"}`))
	}, nil)

	_, err := NewAttendanceRepository(client).GetTopLate(context.Background(), 10)
	assert.ErrorIs(t, err, attendance.ErrUpstreamUnavailable)
}

func TestClient_Ping(t *testing.T) {
	var down atomic.Bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		if down.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"employees": []}`))
	}, nil)

	require.NoError(t, client.Ping(context.Background()))

	down.Store(true)
	assert.ErrorIs(t, client.Ping(context.Background()), attendance.ErrUpstreamUnavailable)
}
