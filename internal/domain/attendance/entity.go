package attendance

// ========================================
// UPSTREAM RECORDS
// ========================================

// ProductivityStats is an employee's time breakdown for the period.
// The three percentages are not required to sum to 100.
type ProductivityStats struct {
	ProductivePercent  float64 `json:"productivePercent"`
	DistractionPercent float64 `json:"distractionPercent"`
	IdlePercent        float64 `json:"idlePercent"`
}

// Employee is one row of the attendance-stats response.
type Employee struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Avatar            string            `json:"avatar"`
	Department        string            `json:"department"`
	Position          string            `json:"position"`
	Stats             ProductivityStats `json:"stats"`
	LateMinutes       int               `json:"lateMinutes"`
	EarlyLeaveMinutes int               `json:"earlyLeaveMinutes"`
	IncidentsCount    int               `json:"incidentsCount"`
	WorkedSeconds     int64             `json:"workedSeconds"`
}

// Trend holds period-over-period deltas per KPI metric, in percentage points.
type Trend struct {
	Worked      float64 `json:"worked"`
	Productive  float64 `json:"productive"`
	Idle        float64 `json:"idle"`
	Distraction float64 `json:"distraction"`
}

// KPI is the aggregate summary for the selected period.
type KPI struct {
	WorkedPercent      float64 `json:"workedPercent"`
	WorkedTime         string  `json:"workedTime"`
	WorkedSeconds      int64   `json:"workedSeconds"`
	ProductivePercent  float64 `json:"productivePercent"`
	ProductiveTime     string  `json:"productiveTime"`
	ProductiveSeconds  int64   `json:"productiveSeconds"`
	IdlePercent        float64 `json:"idlePercent"`
	IdleTime           string  `json:"idleTime"`
	IdleSeconds        int64   `json:"idleSeconds"`
	DistractionPercent float64 `json:"distractionPercent"`
	DistractionTime    string  `json:"distractionTime"`
	DistractionSeconds int64   `json:"distractionSeconds"`
	Trend              Trend   `json:"trend"`
}

// Stats is the attendance-stats response.
type Stats struct {
	KPI       KPI        `json:"kpi"`
	Employees []Employee `json:"employees"`
}

// TopLateEmployee is a leaderboard entry, already ranked by the upstream.
type TopLateEmployee struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Avatar          string `json:"avatar"`
	Department      string `json:"department"`
	Position        string `json:"position"`
	LateCount       int    `json:"lateCount"`
	EarlyLeaveCount int    `json:"earlyLeaveCount"`
}

// ========================================
// GROUPED VIEW
// ========================================

// NoDepartment is the sentinel group for employees without a department.
const NoDepartment = "Без отдела"

// Group is one department bucket of the employee table.
type Group struct {
	Department string
	Employees  []Employee
}

// GroupedView is the employee list bucketed by department, in display order.
type GroupedView []Group

// Len returns the total number of employees across all groups.
func (v GroupedView) Len() int {
	n := 0
	for _, g := range v {
		n += len(g.Employees)
	}
	return n
}

// Keys returns the group keys in order.
func (v GroupedView) Keys() []string {
	keys := make([]string, 0, len(v))
	for _, g := range v {
		keys = append(keys, g.Department)
	}
	return keys
}
