package http

import (
	"net/http"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/handler/http/response"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/validator"
)

type EmployeeHandler interface {
	// List returns KPI cards and the grouped, filtered employee table
	List(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewEmployeeHandler(attendanceService attendance.AttendanceService) EmployeeHandler {
	return &employeeHandlerImpl{attendanceService: attendanceService}
}

// List handles GET /employees
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	departmentIDs, ok := validator.ParseIDs(q["department"])
	if !ok {
		response.BadRequest(w, "department must be a numeric id", nil)
		return
	}

	req := attendance.EmployeesPageRequest{
		Period:        q.Get("period"),
		StartDate:     q.Get("start_date"),
		EndDate:       q.Get("end_date"),
		DepartmentIDs: departmentIDs,
		Query:         q.Get("q"),
		Expanded:      q["expanded"],
	}

	result, err := h.attendanceService.GetEmployeesPage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
