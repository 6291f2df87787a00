package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/department"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/period"
	attendanceService "github.com/cmlabs-hris/hikvision-dashboard/internal/service/attendance"
)

const defaultTopLateLimit = 10

func newPeriodCmd(a *app) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "period [today|week|month|quarter|year|custom]",
		Short: "Show the date range a period resolves to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tag := ""
			if len(args) == 1 {
				tag = args[0]
			}
			sel, err := period.ParseSelection(tag, start, end, a.location)
			if err != nil {
				return err
			}
			rng, err := a.resolver.Resolve(sel)
			if err != nil {
				return err
			}
			return renderPeriod(a.out, attendanceService.BuildPeriodRange(sel.Type, rng))
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "custom start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "custom end date (YYYY-MM-DD)")
	return cmd
}

func newEmployeesCmd(a *app) *cobra.Command {
	var (
		req  attendance.EmployeesPageRequest
		all  bool
		kpis bool
	)

	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Print the employee table grouped by department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := a.attendance.GetEmployeesPage(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := renderPeriod(a.out, page.Period); err != nil {
				return err
			}
			if kpis {
				if err := renderKPI(a.out, page.KPI); err != nil {
					return err
				}
			}
			return renderGroups(a.out, page, all)
		},
	}

	cmd.Flags().StringVar(&req.Period, "period", "today", "period: today, week, month, quarter, year or custom")
	cmd.Flags().StringVar(&req.StartDate, "start", "", "custom start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.EndDate, "end", "", "custom end date (YYYY-MM-DD)")
	cmd.Flags().Int64SliceVar(&req.DepartmentIDs, "department", nil, "department id filter (repeatable)")
	cmd.Flags().StringVarP(&req.Query, "query", "q", "", "name or position search")
	cmd.Flags().StringArrayVar(&req.Expanded, "expand", nil, "department group to show rows for (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "show rows of every group")
	cmd.Flags().BoolVar(&kpis, "kpi", true, "print KPI cards")
	return cmd
}

func newTopLateCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top-late",
		Short: "Print the late-arrival leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.attendance.GetTopLate(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return renderLeaderboard(a.out, result)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultTopLateLimit, "number of employees (1-100)")
	return cmd
}

func newStaffCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "staff",
		Short: "List employees of every department, sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.departments.ListEmployees(cmd.Context(), department.EmployeePickerRequest{Query: query})
			if err != nil {
				return err
			}
			return renderStaff(a.out, result)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "name or external id search")
	return cmd
}

func newDepartmentsCmd(a *app) *cobra.Command {
	var req department.DepartmentTreeRequest

	cmd := &cobra.Command{
		Use:   "departments",
		Short: "Print the department tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.departments.ListTree(cmd.Context(), req)
			if err != nil {
				return err
			}
			return renderTree(a.out, result)
		},
	}

	cmd.Flags().StringVarP(&req.Query, "query", "q", "", "full path search")
	cmd.Flags().Int64SliceVar(&req.Selected, "selected", nil, "department id to mark as selected (repeatable)")
	return cmd
}

func newExportLinkCmd(a *app) *cobra.Command {
	var body report.ExportLinkRequest

	cmd := &cobra.Command{
		Use:   "export-link",
		Short: "Build the Excel export URL for a report",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if body.StartDate == "" && body.EndDate == "" {
				window := a.reports.DefaultWindow()
				body.StartDate, body.EndDate = window.StartDate, window.EndDate
			}
			if err := body.Validate(); err != nil {
				return err
			}
			link, err := a.reports.BuildExportLink(body.ToExportRequest(a.location))
			if err != nil {
				return err
			}
			target, err := absoluteURL(a.client.BaseURL(), link.URL())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, target)
			return err
		},
	}

	cmd.Flags().StringVar(&body.Mode, "mode", string(report.ModeByEmployee), "by-employee or by-department")
	cmd.Flags().StringVar(&body.HikvisionID, "hikvision-id", "", "employee external id (by-employee)")
	cmd.Flags().Int64SliceVar(&body.DepartmentIDs, "department", nil, "department id (by-department, repeatable)")
	cmd.Flags().StringVar(&body.StartDate, "start", "", "start, YYYY-MM-DDTHH:MM (default today 00:00)")
	cmd.Flags().StringVar(&body.EndDate, "end", "", "end, YYYY-MM-DDTHH:MM (default tomorrow 00:00)")
	return cmd
}

// absoluteURL resolves an export path against the upstream origin.
func absoluteURL(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid upstream URL: %w", err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}

func newPingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the attendance API answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Ping(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintf(a.out, "ok %s\n", a.client.BaseURL())
			return err
		},
	}
}
