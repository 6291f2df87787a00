package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/department"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/period"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/validator"
)

// Messages shown to dashboard users
const (
	MsgSelectEmployee    = "Пожалуйста, выберите сотрудника"
	MsgSelectDepartments = "Пожалуйста, выберите хотя бы одно подразделение"
	MsgLoadFailed        = "Ошибка загрузки данных. Проверьте подключение к серверу."
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Report domain errors
	case errors.Is(err, report.ErrEmployeeRequired):
		ValidationMessage(w, MsgSelectEmployee, map[string]string{"hikvision_id": "required"})
	case errors.Is(err, report.ErrDepartmentRequired):
		ValidationMessage(w, MsgSelectDepartments, map[string]string{"department_ids": "required"})
	case errors.Is(err, report.ErrMissingSelection):
		ValidationMessage(w, err.Error(), nil)
	case errors.Is(err, report.ErrUnknownReportMode):
		BadRequest(w, "Unknown report mode", nil)

	// Period errors
	case errors.Is(err, period.ErrUnknownPeriod):
		BadRequest(w, "Unknown period", nil)
	case errors.Is(err, period.ErrCustomRangeIncomplete):
		BadRequest(w, "Custom period requires start_date and end_date", nil)
	case errors.Is(err, period.ErrInvalidDate):
		BadRequest(w, "Dates must be in YYYY-MM-DD format", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidLimit):
		BadRequest(w, "Invalid limit", nil)

	// Upstream failures
	case errors.Is(err, department.ErrCyclicHierarchy),
		errors.Is(err, attendance.ErrUpstreamUnavailable):
		BadGateway(w, MsgLoadFailed)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
