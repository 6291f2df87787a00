package department

type EmployeePickerRequest struct {
	Query string
}

type EmployeePickerResponse struct {
	Query     string        `json:"query,omitempty"`
	Total     int           `json:"total"`
	Employees []EmployeeRef `json:"employees"`
}

// DepartmentTreeRequest carries the picker state. When Toggle is set, that
// department is flipped in Selected before rendering.
type DepartmentTreeRequest struct {
	Query    string
	Selected []int64
	Toggle   *int64
}

type DepartmentTreeResponse struct {
	Query         string     `json:"query,omitempty"`
	Selected      []int64    `json:"selected"`
	SelectedCount int        `json:"selected_count"`
	Departments   []TreeNode `json:"departments"`
}
