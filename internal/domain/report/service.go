package report

// ReportService builds export download links for the report form
type ReportService interface {
	// BuildExportLink validates the selection and returns the export target
	BuildExportLink(req ExportRequest) (*ExportLink, error)

	// DefaultWindow returns the form's default range: today 00:00 to tomorrow 00:00
	DefaultWindow() DefaultWindowResponse
}
