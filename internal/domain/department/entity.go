package department

// DepartmentEmployee is an employee directly assigned to a department node.
type DepartmentEmployee struct {
	ID                       int64  `json:"id"`
	HikvisionID              string `json:"hikvision_id"`
	Name                     string `json:"name"`
	Position                 string `json:"position,omitempty"`
	ScheduleType             string `json:"schedule_type,omitempty"`
	ScheduleDescription      string `json:"schedule_description,omitempty"`
	AllowedLateMinutes       *int   `json:"allowed_late_minutes,omitempty"`
	AllowedEarlyLeaveMinutes *int   `json:"allowed_early_leave_minutes,omitempty"`
	DepartmentName           string `json:"department_name,omitempty"`
}

// Department is a node of the organisation tree. A parent owns its children.
type Department struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	FullPath   string               `json:"full_path"`
	Parent     *int64               `json:"parent,omitempty"`
	ParentName string               `json:"parent_name,omitempty"`
	Employees  []DepartmentEmployee `json:"employees,omitempty"`
	Children   []Department         `json:"children,omitempty"`
	CreatedAt  string               `json:"created_at,omitempty"`
	UpdatedAt  string               `json:"updated_at,omitempty"`
}

// DisplayPath returns the full path, falling back to the name.
func (d Department) DisplayPath() string {
	if d.FullPath != "" {
		return d.FullPath
	}
	return d.Name
}

// EmployeeRef is the lightweight identity used by selection lists.
type EmployeeRef struct {
	ID          int64  `json:"id"`
	HikvisionID string `json:"hikvision_id"`
	Name        string `json:"name"`
}

// TreeNode is a department as rendered in the multi-select tree.
type TreeNode struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	FullPath string     `json:"full_path"`
	Level    int        `json:"level"`
	Selected bool       `json:"selected"`
	Children []TreeNode `json:"children,omitempty"`
}
