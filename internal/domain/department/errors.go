package department

import "errors"

// Department domain errors
var (
	ErrCyclicHierarchy = errors.New("department hierarchy contains a cycle")
)
