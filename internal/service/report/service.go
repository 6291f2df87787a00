package report

import (
	"time"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/validator"
)

type ReportServiceImpl struct {
	builder  Builder
	location *time.Location
	now      func() time.Time
}

func NewReportService(basePath string, loc *time.Location) report.ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &ReportServiceImpl{
		builder:  Builder{BasePath: basePath},
		location: loc,
		now:      time.Now,
	}
}

// BuildExportLink implements report.ReportService.
func (s *ReportServiceImpl) BuildExportLink(req report.ExportRequest) (*report.ExportLink, error) {
	return s.builder.Build(req)
}

// DefaultWindow implements report.ReportService.
func (s *ReportServiceImpl) DefaultWindow() report.DefaultWindowResponse {
	start, end := DefaultWindow(s.now().In(s.location))
	return report.DefaultWindowResponse{
		StartDate: start.Format(validator.LocalDateTimeLayout),
		EndDate:   end.Format(validator.LocalDateTimeLayout),
	}
}
