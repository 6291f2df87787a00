package department

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/department"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/collation"
)

type DepartmentServiceImpl struct {
	repo   department.DepartmentRepository
	locale collation.Locale
}

func NewDepartmentService(repo department.DepartmentRepository, locale collation.Locale) department.DepartmentService {
	return &DepartmentServiceImpl{
		repo:   repo,
		locale: locale,
	}
}

// ListEmployees implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListEmployees(ctx context.Context, req department.EmployeePickerRequest) (*department.EmployeePickerResponse, error) {
	forest, err := s.repo.ListTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}

	refs, err := FlattenEmployees(forest)
	if err != nil {
		slog.WarnContext(ctx, "department tree rejected", "error", err)
		return nil, err
	}

	matched := SearchEmployees(refs, req.Query, s.locale.Comparer())
	return &department.EmployeePickerResponse{
		Query:     req.Query,
		Total:     len(matched),
		Employees: matched,
	}, nil
}

// ListTree implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListTree(ctx context.Context, req department.DepartmentTreeRequest) (*department.DepartmentTreeResponse, error) {
	forest, err := s.repo.ListTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}

	ids := req.Selected
	if req.Toggle != nil {
		ids = ToggleSelection(ids, *req.Toggle)
	}
	selected := SelectionSet(ids)
	nodes, err := FilterTree(forest, req.Query, selected)
	if err != nil {
		slog.WarnContext(ctx, "department tree rejected", "error", err)
		return nil, err
	}

	return &department.DepartmentTreeResponse{
		Query:         req.Query,
		Selected:      ids,
		SelectedCount: len(selected),
		Departments:   nodes,
	}, nil
}
