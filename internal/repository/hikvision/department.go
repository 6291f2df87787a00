package hikvision

import (
	"context"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/department"
)

type departmentRepository struct {
	client *Client
}

func NewDepartmentRepository(client *Client) department.DepartmentRepository {
	return &departmentRepository{client: client}
}

// ListTree implements department.DepartmentRepository.
func (r *departmentRepository) ListTree(ctx context.Context) ([]department.Department, error) {
	var forest []department.Department
	if err := r.client.getJSON(ctx, "departments", "departments/", nil, &forest); err != nil {
		return nil, err
	}
	return forest, nil
}
