package attendance

import (
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/period"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/validator"
)

// ========================================
// EMPLOYEES PAGE
// ========================================

// EmployeesPageRequest carries the filters and transient table state of the
// employees page. Expanded lists the group keys the user has opened.
type EmployeesPageRequest struct {
	Period        string
	StartDate     string
	EndDate       string
	DepartmentIDs []int64
	Query         string
	Expanded      []string
}

func (r *EmployeesPageRequest) Validate() error {
	var errs validator.ValidationErrors

	switch period.Type(r.Period) {
	case "", period.Today, period.Week, period.Month, period.Quarter, period.Year:
	case period.Custom:
		if validator.IsEmpty(r.StartDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date is required for a custom period",
			})
		} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
		if validator.IsEmpty(r.EndDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date is required for a custom period",
			})
		} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be one of today, week, month, quarter, year, custom",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PeriodRange is a resolved period as returned to the client.
type PeriodRange struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// KPICard is one summary tile.
type KPICard struct {
	Key            string  `json:"key"`
	Title          string  `json:"title"`
	Icon           string  `json:"icon"`
	Color          string  `json:"color"`
	Percent        float64 `json:"percent"`
	PercentLabel   string  `json:"percent_label"`
	Time           string  `json:"time"`
	Seconds        int64   `json:"seconds"`
	Trend          float64 `json:"trend"`
	TrendLabel     string  `json:"trend_label"`
	TrendDirection string  `json:"trend_direction"` // positive, negative or neutral
	IndicatorWidth float64 `json:"indicator_width"`
}

// ProgressBar is the stacked productive/distraction/idle bar of a row.
type ProgressBar struct {
	ProductivePercent  float64 `json:"productive_percent"`
	DistractionPercent float64 `json:"distraction_percent"`
	IdlePercent        float64 `json:"idle_percent"`
	TotalPercent       float64 `json:"total_percent"`
}

// EmployeeRow is one employee line of the grouped table.
type EmployeeRow struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	Avatar            string      `json:"avatar"`
	Position          string      `json:"position,omitempty"`
	Stats             ProgressBar `json:"stats"`
	LateMinutes       int         `json:"late_minutes"`
	LateLabel         string      `json:"late_label"`
	EarlyLeaveMinutes int         `json:"early_leave_minutes"`
	EarlyLeaveLabel   string      `json:"early_leave_label"`
}

// DepartmentGroup is a collapsible department section of the table.
type DepartmentGroup struct {
	Department string        `json:"department"`
	Count      int           `json:"count"`
	Expanded   bool          `json:"expanded"`
	Employees  []EmployeeRow `json:"employees"`
}

type EmployeesPageResponse struct {
	Period           PeriodRange       `json:"period"`
	KPI              []KPICard         `json:"kpi"`
	Query            string            `json:"query,omitempty"`
	TotalEmployees   int               `json:"total_employees"`
	MatchedEmployees int               `json:"matched_employees"`
	Groups           []DepartmentGroup `json:"groups"`
}

// ========================================
// TOP LATE
// ========================================

type LeaderboardEntry struct {
	Rank            int    `json:"rank"`
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Avatar          string `json:"avatar"`
	Department      string `json:"department,omitempty"`
	Position        string `json:"position,omitempty"`
	LateCount       int    `json:"late_count"`
	EarlyLeaveCount int    `json:"early_leave_count"`
}

type TopLateResponse struct {
	Limit     int                `json:"limit"`
	Employees []LeaderboardEntry `json:"employees"`
}
