package report

import (
	"net/url"
	"strings"
	"time"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/validator"
)

// Mode selects which export the report form produces.
type Mode string

const (
	ModeByEmployee   Mode = "by-employee"
	ModeByDepartment Mode = "by-department"
)

// ExportRequest is a validated report form submission. Start and End are
// optional wall-clock instants with minute precision.
type ExportRequest struct {
	Mode          Mode
	HikvisionID   string
	DepartmentIDs []int64
	Start         *time.Time
	End           *time.Time
}

// Param is a single query parameter. Order is significant.
type Param struct {
	Key   string
	Value string
}

// ExportLink is the download target built for an ExportRequest.
type ExportLink struct {
	Mode   Mode
	Path   string
	Params []Param
}

// Query encodes the parameters in insertion order, repeating keys as given.
func (l ExportLink) Query() string {
	var b strings.Builder
	for i, p := range l.Params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// URL returns path and query joined.
func (l ExportLink) URL() string {
	q := l.Query()
	if q == "" {
		return l.Path
	}
	return l.Path + "?" + q
}

// ExportLinkRequest is the JSON body of POST /reports/export-link. Dates use
// the datetime-local format (2024-03-01T09:30).
type ExportLinkRequest struct {
	Mode          string  `json:"mode"`
	HikvisionID   string  `json:"hikvision_id"`
	DepartmentIDs []int64 `json:"department_ids"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
}

func (r *ExportLinkRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Mode, []string{string(ModeByEmployee), string(ModeByDepartment)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be by-employee or by-department",
		})
	}
	if r.StartDate != "" {
		if _, ok := validator.ParseLocalDateTime(r.StartDate, time.UTC); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DDTHH:MM format",
			})
		}
	}
	if r.EndDate != "" {
		if _, ok := validator.ParseLocalDateTime(r.EndDate, time.UTC); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DDTHH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToExportRequest converts a validated body, reading dates as wall clock in loc.
func (r *ExportLinkRequest) ToExportRequest(loc *time.Location) ExportRequest {
	req := ExportRequest{
		Mode:          Mode(r.Mode),
		HikvisionID:   strings.TrimSpace(r.HikvisionID),
		DepartmentIDs: r.DepartmentIDs,
	}
	if t, ok := validator.ParseLocalDateTime(r.StartDate, loc); ok {
		req.Start = &t
	}
	if t, ok := validator.ParseLocalDateTime(r.EndDate, loc); ok {
		req.End = &t
	}
	return req
}

type ExportLinkResponse struct {
	Mode  string `json:"mode"`
	Path  string `json:"path"`
	Query string `json:"query"`
	URL   string `json:"url"`
}

// DefaultWindowResponse is the form's initial date range, in datetime-local format.
type DefaultWindowResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
