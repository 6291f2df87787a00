package department

import "context"

// DepartmentService backs the report form's employee and department pickers
type DepartmentService interface {
	// ListEmployees returns every employee in the tree matching the query, sorted by name
	ListEmployees(ctx context.Context, req EmployeePickerRequest) (*EmployeePickerResponse, error)

	// ListTree returns the department tree filtered by full path, with selection flags
	ListTree(ctx context.Context, req DepartmentTreeRequest) (*DepartmentTreeResponse, error)
}
