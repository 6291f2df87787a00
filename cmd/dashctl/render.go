package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/department"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/table"
)

const nameWidth = 32

func renderPeriod(w io.Writer, p attendance.PeriodRange) error {
	_, err := fmt.Fprintf(w, "%s: %s .. %s (%d days)\n", p.Type, p.StartDate, p.EndDate, p.Days)
	return err
}

func renderKPI(w io.Writer, cards []attendance.KPICard) error {
	t := table.New(
		table.Column{Title: "Metric"},
		table.Column{Title: "Percent", Align: table.Right},
		table.Column{Title: "Time", Align: table.Right},
		table.Column{Title: "Trend", Align: table.Right},
	)
	for _, c := range cards {
		t.Append(c.Title, c.PercentLabel, c.Time, c.TrendLabel)
	}
	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// renderGroups prints a heading per department and, for expanded groups,
// one row per employee.
func renderGroups(w io.Writer, page *attendance.EmployeesPageResponse, all bool) error {
	t := table.New(
		table.Column{Title: "ID", Align: table.Right},
		table.Column{Title: "Name", MaxWidth: nameWidth},
		table.Column{Title: "Position", MaxWidth: nameWidth},
		table.Column{Title: "Active", Align: table.Right},
		table.Column{Title: "Late", Align: table.Right},
		table.Column{Title: "Early leave", Align: table.Right},
	)
	for _, g := range page.Groups {
		t.Section(fmt.Sprintf("%s (%d)", g.Department, g.Count))
		if !g.Expanded && !all {
			continue
		}
		for _, e := range g.Employees {
			t.Append(
				strconv.FormatInt(e.ID, 10),
				e.Name,
				e.Position,
				strconv.FormatFloat(e.Stats.TotalPercent, 'f', 0, 64)+"%",
				e.LateLabel,
				e.EarlyLeaveLabel,
			)
		}
	}
	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d employees\n", page.MatchedEmployees, page.TotalEmployees)
	return err
}

func renderLeaderboard(w io.Writer, resp *attendance.TopLateResponse) error {
	t := table.New(
		table.Column{Title: "#", Align: table.Right},
		table.Column{Title: "Name", MaxWidth: nameWidth},
		table.Column{Title: "Department", MaxWidth: nameWidth},
		table.Column{Title: "Late", Align: table.Right},
		table.Column{Title: "Early leave", Align: table.Right},
	)
	for _, e := range resp.Employees {
		t.Append(
			strconv.Itoa(e.Rank),
			e.Name,
			e.Department,
			strconv.Itoa(e.LateCount),
			strconv.Itoa(e.EarlyLeaveCount),
		)
	}
	return t.Render(w)
}

func renderStaff(w io.Writer, resp *department.EmployeePickerResponse) error {
	t := table.New(
		table.Column{Title: "ID", Align: table.Right},
		table.Column{Title: "Hikvision ID"},
		table.Column{Title: "Name"},
	)
	for _, e := range resp.Employees {
		t.Append(strconv.FormatInt(e.ID, 10), e.HikvisionID, e.Name)
	}
	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d employees\n", resp.Total)
	return err
}

func renderTree(w io.Writer, resp *department.DepartmentTreeResponse) error {
	t := table.New(
		table.Column{Title: "ID", Align: table.Right},
		table.Column{Title: "Department"},
	)
	var walk func(nodes []department.TreeNode)
	walk = func(nodes []department.TreeNode) {
		for _, n := range nodes {
			mark := "[ ]"
			if n.Selected {
				mark = "[x]"
			}
			t.Append(strconv.FormatInt(n.ID, 10), strings.Repeat("  ", n.Level)+mark+" "+n.Name)
			walk(n.Children)
		}
	}
	walk(resp.Departments)

	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d selected\n", resp.SelectedCount)
	return err
}
