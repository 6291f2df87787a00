package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/period"
)

const (
	employeeExportPath   = "/camera-events/export-excel/"
	departmentExportPath = "/attendance-stats/export-excel/"

	// the form collects minutes only, so seconds are always zero
	eventTimeLayout = "2006-01-02 15:04:00"
)

// Builder turns a report form selection into an export link under BasePath.
type Builder struct {
	BasePath string
}

// Build validates req and returns the export target for its mode.
func (b Builder) Build(req report.ExportRequest) (*report.ExportLink, error) {
	switch req.Mode {
	case report.ModeByEmployee:
		return b.byEmployee(req)
	case report.ModeByDepartment:
		return b.byDepartment(req)
	default:
		return nil, report.ErrUnknownReportMode
	}
}

func (b Builder) byEmployee(req report.ExportRequest) (*report.ExportLink, error) {
	if strings.TrimSpace(req.HikvisionID) == "" {
		return nil, report.ErrEmployeeRequired
	}

	params := []report.Param{{Key: "hikvision_id", Value: req.HikvisionID}}
	params = appendDates(params, req, eventTimeLayout)

	return &report.ExportLink{
		Mode:   report.ModeByEmployee,
		Path:   b.path(employeeExportPath),
		Params: params,
	}, nil
}

func (b Builder) byDepartment(req report.ExportRequest) (*report.ExportLink, error) {
	if len(req.DepartmentIDs) == 0 {
		return nil, report.ErrDepartmentRequired
	}

	params := make([]report.Param, 0, len(req.DepartmentIDs)+2)
	for _, id := range req.DepartmentIDs {
		params = append(params, report.Param{Key: "department_id", Value: strconv.FormatInt(id, 10)})
	}
	params = appendDates(params, req, period.DateLayout)

	return &report.ExportLink{
		Mode:   report.ModeByDepartment,
		Path:   b.path(departmentExportPath),
		Params: params,
	}, nil
}

func appendDates(params []report.Param, req report.ExportRequest, layout string) []report.Param {
	if req.Start != nil {
		params = append(params, report.Param{Key: "start_date", Value: req.Start.Format(layout)})
	}
	if req.End != nil {
		params = append(params, report.Param{Key: "end_date", Value: req.End.Format(layout)})
	}
	return params
}

func (b Builder) path(endpoint string) string {
	return strings.TrimRight(b.BasePath, "/") + endpoint
}

// DefaultWindow is the form's initial range: today 00:00 to tomorrow 00:00 in
// the location of now.
func DefaultWindow(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}
