package attendance

import (
	"math"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/period"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/utils"
)

const (
	rowAvatarSize         = 40
	leaderboardAvatarSize = 80
)

// BuildKPICards turns the KPI summary into the four dashboard tiles.
func BuildKPICards(kpi attendance.KPI) []attendance.KPICard {
	return []attendance.KPICard{
		kpiCard("worked", "Отработано", "⏱️", "blue", kpi.WorkedPercent, kpi.WorkedTime, kpi.WorkedSeconds, kpi.Trend.Worked),
		kpiCard("productive", "Продуктивно", "✅", "green", kpi.ProductivePercent, kpi.ProductiveTime, kpi.ProductiveSeconds, kpi.Trend.Productive),
		kpiCard("idle", "Простой", "⏸️", "yellow", kpi.IdlePercent, kpi.IdleTime, kpi.IdleSeconds, kpi.Trend.Idle),
		kpiCard("distraction", "Отвлечения", "⚠️", "red", kpi.DistractionPercent, kpi.DistractionTime, kpi.DistractionSeconds, kpi.Trend.Distraction),
	}
}

func kpiCard(key, title, icon, color string, percent float64, timeLabel string, seconds int64, trend float64) attendance.KPICard {
	direction := "neutral"
	switch {
	case trend > 0:
		direction = "positive"
	case trend < 0:
		direction = "negative"
	}

	return attendance.KPICard{
		Key:            key,
		Title:          title,
		Icon:           icon,
		Color:          color,
		Percent:        percent,
		PercentLabel:   utils.FormatPercent(percent),
		Time:           timeLabel,
		Seconds:        seconds,
		Trend:          trend,
		TrendLabel:     utils.FormatPercent(math.Abs(trend)),
		TrendDirection: direction,
		IndicatorWidth: math.Min(percent, 100),
	}
}

// BuildEmployeeRow formats one employee for the table.
func BuildEmployeeRow(e attendance.Employee) attendance.EmployeeRow {
	total := e.Stats.ProductivePercent + e.Stats.DistractionPercent + e.Stats.IdlePercent
	return attendance.EmployeeRow{
		ID:       e.ID,
		Name:     e.Name,
		Avatar:   utils.AvatarURL(e.Avatar, e.Name, rowAvatarSize),
		Position: e.Position,
		Stats: attendance.ProgressBar{
			ProductivePercent:  e.Stats.ProductivePercent,
			DistractionPercent: e.Stats.DistractionPercent,
			IdlePercent:        e.Stats.IdlePercent,
			TotalPercent:       math.Min(total, 100),
		},
		LateMinutes:       e.LateMinutes,
		LateLabel:         utils.FormatMinutes(e.LateMinutes),
		EarlyLeaveMinutes: e.EarlyLeaveMinutes,
		EarlyLeaveLabel:   utils.FormatMinutes(e.EarlyLeaveMinutes),
	}
}

// BuildGroups renders a grouped view, marking the groups listed in expanded.
func BuildGroups(view attendance.GroupedView, expanded []string) []attendance.DepartmentGroup {
	open := make(map[string]bool, len(expanded))
	for _, k := range expanded {
		open[k] = true
	}

	groups := make([]attendance.DepartmentGroup, 0, len(view))
	for _, g := range view {
		rows := make([]attendance.EmployeeRow, 0, len(g.Employees))
		for _, e := range g.Employees {
			rows = append(rows, BuildEmployeeRow(e))
		}
		groups = append(groups, attendance.DepartmentGroup{
			Department: g.Department,
			Count:      len(g.Employees),
			Expanded:   open[g.Department],
			Employees:  rows,
		})
	}
	return groups
}

// BuildLeaderboard numbers the upstream ranking from 1.
func BuildLeaderboard(employees []attendance.TopLateEmployee) []attendance.LeaderboardEntry {
	entries := make([]attendance.LeaderboardEntry, 0, len(employees))
	for i, e := range employees {
		entries = append(entries, attendance.LeaderboardEntry{
			Rank:            i + 1,
			ID:              e.ID,
			Name:            e.Name,
			Avatar:          utils.AvatarURL(e.Avatar, e.Name, leaderboardAvatarSize),
			Department:      e.Department,
			Position:        e.Position,
			LateCount:       e.LateCount,
			EarlyLeaveCount: e.EarlyLeaveCount,
		})
	}
	return entries
}

// BuildPeriodRange describes a resolved range for the client.
func BuildPeriodRange(t period.Type, r period.Range) attendance.PeriodRange {
	return attendance.PeriodRange{
		Type:      string(t),
		StartDate: r.StartDate(),
		EndDate:   r.EndDate(),
		Days:      r.Days(),
	}
}
