package attendance

import (
	"slices"
	"strings"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/collation"
)

// GroupByDepartment buckets employees by department name. Employees without a
// department go to attendance.NoDepartment. Groups are ordered by key and
// members by name using cmp; equal names keep their input order.
func GroupByDepartment(employees []attendance.Employee, cmp collation.Compare) attendance.GroupedView {
	buckets := make(map[string][]attendance.Employee)
	for _, e := range employees {
		key := e.Department
		if key == "" {
			key = attendance.NoDepartment
		}
		buckets[key] = append(buckets[key], e)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	slices.SortStableFunc(keys, func(a, b string) int {
		if c := cmp(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	view := make(attendance.GroupedView, 0, len(keys))
	for _, k := range keys {
		members := buckets[k]
		slices.SortStableFunc(members, func(a, b attendance.Employee) int {
			return cmp(a.Name, b.Name)
		})
		view = append(view, attendance.Group{Department: k, Employees: members})
	}
	return view
}

// FilterGroups keeps employees whose name, position or group key contains
// query, case-insensitively. Groups left empty are dropped. A blank query
// returns view unchanged.
func FilterGroups(view attendance.GroupedView, query string) attendance.GroupedView {
	if strings.TrimSpace(query) == "" {
		return view
	}

	q := strings.ToLower(query)
	filtered := make(attendance.GroupedView, 0, len(view))
	for _, g := range view {
		deptMatch := strings.Contains(strings.ToLower(g.Department), q)

		var members []attendance.Employee
		for _, e := range g.Employees {
			if deptMatch ||
				strings.Contains(strings.ToLower(e.Name), q) ||
				strings.Contains(strings.ToLower(e.Position), q) {
				members = append(members, e)
			}
		}
		if len(members) > 0 {
			filtered = append(filtered, attendance.Group{Department: g.Department, Employees: members})
		}
	}
	return filtered
}
