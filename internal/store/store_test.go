package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/pkg/util/faultutil"
)

type fakeGateway struct {
	employees   []domain.Employee
	departments []domain.Department
	listErr     error
}

func (g *fakeGateway) ListEmployees(context.Context) ([]domain.Employee, error) {
	if g.listErr != nil {
		return nil, g.listErr
	}
	return g.employees, nil
}

func (g *fakeGateway) ListDepartments(context.Context) ([]domain.Department, error) {
	if g.listErr != nil {
		return nil, g.listErr
	}
	return g.departments, nil
}

func TestReplaceEmployeesIsIdempotent(t *testing.T) {
	s := New(&fakeGateway{}, zap.NewNop())
	items := []domain.Employee{{ID: "1", FirstName: "Ada"}, {ID: "2", FirstName: "Grace"}}

	s.ReplaceEmployees(items)
	first := s.Employees()
	s.ReplaceEmployees(items)
	second := s.Employees()

	assert.Equal(t, first, second)
	assert.Len(t, second, 2)
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := New(&fakeGateway{}, zap.NewNop())
	s.ReplaceEmployees([]domain.Employee{{ID: "1", FirstName: "Ada"}})

	snap := s.Employees()
	snap[0].FirstName = "mutated"

	assert.Equal(t, "Ada", s.Employees()[0].FirstName)
}

func TestRefreshReplacesSnapshotFromGateway(t *testing.T) {
	gw := &fakeGateway{
		employees:   []domain.Employee{{ID: "1"}},
		departments: []domain.Department{{ID: "d1", Name: "Engineering"}},
	}
	s := New(gw, zap.NewNop())

	require.NoError(t, s.RefreshEmployees(context.Background()))
	require.NoError(t, s.RefreshDepartments(context.Background()))

	assert.Len(t, s.Employees(), 1)
	assert.Len(t, s.Departments(), 1)
}

func TestRefreshFailureKeepsPriorSnapshot(t *testing.T) {
	gw := &fakeGateway{employees: []domain.Employee{{ID: "1"}, {ID: "2"}}}
	s := New(gw, zap.NewNop())
	require.NoError(t, s.RefreshEmployees(context.Background()))

	gw.listErr = faultutil.NewTransport("upstream unreachable", nil)
	err := s.RefreshEmployees(context.Background())

	require.Error(t, err)
	// Stale-but-consistent beats empty-but-wrong.
	assert.Len(t, s.Employees(), 2)
}
