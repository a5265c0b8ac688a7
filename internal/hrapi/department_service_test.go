package hrapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/pkg/util/faultutil"
)

func newDepartmentFixture() (*DepartmentService, *EmployeeService) {
	cache := NewListCache(nil, 0, zap.NewNop())
	employees := NewMemoryEmployeeRepository()
	return NewDepartmentService(NewMemoryDepartmentRepository(), employees, cache),
		NewEmployeeService(employees, cache)
}

func TestDepartmentCreateRejectsDuplicateName(t *testing.T) {
	svc, _ := newDepartmentFixture()
	_, err := svc.Create(context.Background(), domain.DepartmentDraft{Name: "Engineering"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.DepartmentDraft{Name: "Engineering"})

	require.Error(t, err)
	assert.True(t, faultutil.IsKind(err, faultutil.KindValidation))
	assert.Equal(t, "Department with name Engineering already exists", faultutil.Message(err))
}

func TestDepartmentEmployeeCountIsRecomputedPerRead(t *testing.T) {
	departments, employees := newDepartmentFixture()
	dept, err := departments.Create(context.Background(), domain.DepartmentDraft{Name: "Engineering"})
	require.NoError(t, err)

	got, err := departments.Get(context.Background(), dept.ID)
	require.NoError(t, err)
	assert.Zero(t, got.EmployeeCount)

	_, err = employees.Create(context.Background(), validDraft())
	require.NoError(t, err)

	got, err = departments.Get(context.Background(), dept.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.EmployeeCount)

	listed, err := departments.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 1, listed[0].EmployeeCount)
}

func TestDepartmentGetUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newDepartmentFixture()

	_, err := svc.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, faultutil.IsKind(err, faultutil.KindNotFound))
	assert.Equal(t, "Department not found with id: missing", faultutil.Message(err))
}

func TestDepartmentRenameToTakenNameIsRejected(t *testing.T) {
	svc, _ := newDepartmentFixture()
	_, err := svc.Create(context.Background(), domain.DepartmentDraft{Name: "Engineering"})
	require.NoError(t, err)
	dept, err := svc.Create(context.Background(), domain.DepartmentDraft{Name: "Research"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), dept.ID, domain.DepartmentDraft{Name: "Engineering"})

	require.Error(t, err)
	assert.Equal(t, "Department with name Engineering already exists", faultutil.Message(err))
}

func TestDepartmentDeleteRemovesRecord(t *testing.T) {
	svc, _ := newDepartmentFixture()
	dept, err := svc.Create(context.Background(), domain.DepartmentDraft{Name: "Sales"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), dept.ID))

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
}
