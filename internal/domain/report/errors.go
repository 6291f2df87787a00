package report

import (
	"errors"
	"fmt"
)

// Report domain errors
var (
	ErrMissingSelection  = errors.New("missing selection")
	ErrUnknownReportMode = errors.New("unknown report mode")

	ErrEmployeeRequired   = fmt.Errorf("%w: an employee must be selected", ErrMissingSelection)
	ErrDepartmentRequired = fmt.Errorf("%w: at least one department must be selected", ErrMissingSelection)
)
