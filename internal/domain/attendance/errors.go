package attendance

import "errors"

// Attendance domain errors
var (
	ErrUpstreamUnavailable = errors.New("attendance service unavailable")
	ErrInvalidLimit        = errors.New("limit must be between 1 and 100")
)
