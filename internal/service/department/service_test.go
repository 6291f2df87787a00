package department

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/department"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/collation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDepartmentRepo struct {
	forest []department.Department
	err    error
	calls  int
}

func (f *fakeDepartmentRepo) ListTree(ctx context.Context) ([]department.Department, error) {
	f.calls++
	return f.forest, f.err
}

func TestDepartmentService_ListEmployees(t *testing.T) {
	repo := &fakeDepartmentRepo{forest: testForest()}
	svc := NewDepartmentService(repo, collation.MustNew("ru"))

	resp, err := svc.ListEmployees(context.Background(), department.EmployeePickerRequest{Query: "ВА"})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, "ВА", resp.Query)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, []int64{11, 20}, refIDs(resp.Employees))
}

func TestDepartmentService_ListTree(t *testing.T) {
	repo := &fakeDepartmentRepo{forest: testForest()}
	svc := NewDepartmentService(repo, collation.MustNew("ru"))

	resp, err := svc.ListTree(context.Background(), department.DepartmentTreeRequest{
		Selected: []int64{1, 2, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.SelectedCount)
	require.Len(t, resp.Departments, 1)
	assert.True(t, resp.Departments[0].Selected)
	assert.True(t, resp.Departments[0].Children[0].Selected)
}

func TestDepartmentService_ListTree_Toggle(t *testing.T) {
	svc := NewDepartmentService(&fakeDepartmentRepo{forest: testForest()}, collation.MustNew("ru"))
	selected := []int64{1}

	on := int64(2)
	resp, err := svc.ListTree(context.Background(), department.DepartmentTreeRequest{Selected: selected, Toggle: &on})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, resp.Selected)
	assert.True(t, resp.Departments[0].Children[0].Selected)

	off := int64(1)
	resp, err = svc.ListTree(context.Background(), department.DepartmentTreeRequest{Selected: selected, Toggle: &off})
	require.NoError(t, err)
	assert.Empty(t, resp.Selected)
	assert.Equal(t, 0, resp.SelectedCount)
	assert.False(t, resp.Departments[0].Selected)

	assert.Equal(t, []int64{1}, selected)
}

func TestDepartmentService_Errors(t *testing.T) {
	upstream := errors.New("connection refused")
	svc := NewDepartmentService(&fakeDepartmentRepo{err: upstream}, collation.MustNew("ru"))

	_, err := svc.ListEmployees(context.Background(), department.EmployeePickerRequest{})
	assert.ErrorIs(t, err, upstream)

	cyclic := []department.Department{{ID: 1}, {ID: 1}}
	svc = NewDepartmentService(&fakeDepartmentRepo{forest: cyclic}, collation.MustNew("ru"))

	_, err = svc.ListTree(context.Background(), department.DepartmentTreeRequest{})
	assert.ErrorIs(t, err, department.ErrCyclicHierarchy)
	_, err = svc.ListEmployees(context.Background(), department.EmployeePickerRequest{})
	assert.ErrorIs(t, err, department.ErrCyclicHierarchy)
}
