package department

import "context"

// DepartmentRepository reads the department forest from the upstream API.
type DepartmentRepository interface {
	// ListTree returns the root departments with nested children and employees
	ListTree(ctx context.Context) ([]Department, error)
}
