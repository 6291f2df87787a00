package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/department"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/handler/http/response"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/validator"
)

type ReportHandler interface {
	// ListEmployees returns the employee picker list
	ListEmployees(w http.ResponseWriter, r *http.Request)
	// ListDepartments returns the department picker tree
	ListDepartments(w http.ResponseWriter, r *http.Request)
	// Defaults returns the form's default date window
	Defaults(w http.ResponseWriter, r *http.Request)
	// CreateExportLink builds the export URL from a JSON form submission
	CreateExportLink(w http.ResponseWriter, r *http.Request)
	// Export redirects the browser to the export download
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	departmentService department.DepartmentService
	reportService     report.ReportService
	location          *time.Location
}

func NewReportHandler(departmentService department.DepartmentService, reportService report.ReportService, loc *time.Location) ReportHandler {
	if loc == nil {
		loc = time.Local
	}
	return &reportHandlerImpl{
		departmentService: departmentService,
		reportService:     reportService,
		location:          loc,
	}
}

// ListEmployees handles GET /reports/employees
func (h *reportHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentService.ListEmployees(r.Context(), department.EmployeePickerRequest{
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDepartments handles GET /reports/departments
func (h *reportHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	selected, ok := validator.ParseIDs(q["selected"])
	if !ok {
		response.BadRequest(w, "selected must be a numeric id", nil)
		return
	}

	req := department.DepartmentTreeRequest{
		Query:    q.Get("q"),
		Selected: selected,
	}
	if raw := q.Get("toggle"); raw != "" {
		ids, ok := validator.ParseIDs([]string{raw})
		if !ok || len(ids) != 1 {
			response.BadRequest(w, "toggle must be a numeric id", nil)
			return
		}
		req.Toggle = &ids[0]
	}

	result, err := h.departmentService.ListTree(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Defaults handles GET /reports/defaults
func (h *reportHandlerImpl) Defaults(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.reportService.DefaultWindow())
}

// CreateExportLink handles POST /reports/export-link
func (h *reportHandlerImpl) CreateExportLink(w http.ResponseWriter, r *http.Request) {
	var req report.ExportLinkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateExportLink decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	link, err := h.buildLink(req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report.ExportLinkResponse{
		Mode:  string(link.Mode),
		Path:  link.Path,
		Query: link.Query(),
		URL:   link.URL(),
	})
}

// Export handles GET /reports/export
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	departmentIDs, ok := validator.ParseIDs(q["department_id"])
	if !ok {
		response.BadRequest(w, "department_id must be a numeric id", nil)
		return
	}

	link, err := h.buildLink(report.ExportLinkRequest{
		Mode:          q.Get("mode"),
		HikvisionID:   q.Get("hikvision_id"),
		DepartmentIDs: departmentIDs,
		StartDate:     q.Get("start"),
		EndDate:       q.Get("end"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "Export requested", "mode", link.Mode, "url", link.URL())
	http.Redirect(w, r, link.URL(), http.StatusFound)
}

func (h *reportHandlerImpl) buildLink(req report.ExportLinkRequest) (*report.ExportLink, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return h.reportService.BuildExportLink(req.ToExportRequest(h.location))
}
