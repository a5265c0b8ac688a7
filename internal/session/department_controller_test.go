package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/internal/store"
	"github.com/spec-kit/employee-console/pkg/util/faultutil"
)

func (g *fakeUpstream) CreateDepartment(_ context.Context, draft domain.DepartmentDraft) (*domain.Department, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.sequence++
	dept := domain.Department{ID: fmt.Sprintf("dept-%d", g.sequence)}
	dept.Apply(draft)
	g.departments = append(g.departments, dept)
	return &dept, nil
}

func (g *fakeUpstream) UpdateDepartment(_ context.Context, id string, draft domain.DepartmentDraft) (*domain.Department, error) {
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	for i := range g.departments {
		if g.departments[i].ID == id {
			g.departments[i].Apply(draft)
			dept := g.departments[i]
			return &dept, nil
		}
	}
	return nil, faultutil.NewNotFound("Department not found with id: " + id)
}

func (g *fakeUpstream) DeleteDepartment(_ context.Context, id string) error {
	if g.deleteErr != nil {
		return g.deleteErr
	}
	for i := range g.departments {
		if g.departments[i].ID == id {
			g.departments = append(g.departments[:i], g.departments[i+1:]...)
			break
		}
	}
	return nil
}

func newDepartmentFixture() (*DepartmentController, *fakeUpstream, *store.Store, *fakeNotifier) {
	upstream := &fakeUpstream{}
	collections := store.New(upstream, zap.NewNop())
	notifier := &fakeNotifier{}
	controller := NewDepartmentController(upstream, collections, notifier, zap.NewNop())
	return controller, upstream, collections, notifier
}

func TestDepartmentCreateEndsSessionAndRefreshes(t *testing.T) {
	controller, _, collections, notifier := newDepartmentFixture()

	controller.OpenNew()
	require.NoError(t, controller.Submit(context.Background(), domain.DepartmentDraft{Name: "Engineering", Manager: "Ada"}))

	assert.Equal(t, PhaseIdle, controller.State().Phase)
	require.Len(t, collections.Departments(), 1)
	assert.Equal(t, "Engineering", collections.Departments()[0].Name)
	assert.Equal(t, recordedNote{kind: "success", message: "Department added successfully"}, notifier.notes[len(notifier.notes)-1])
}

func TestDepartmentSubmitFailureRetainsSession(t *testing.T) {
	controller, upstream, _, notifier := newDepartmentFixture()
	upstream.createErr = faultutil.NewValidation("Department with name Engineering already exists")

	controller.OpenNew()
	err := controller.Submit(context.Background(), domain.DepartmentDraft{Name: "Engineering"})

	require.Error(t, err)
	assert.Equal(t, PhaseCreating, controller.State().Phase)
	require.Len(t, notifier.notes, 1)
	assert.Equal(t, recordedNote{kind: "error", message: "Department with name Engineering already exists"}, notifier.notes[0])
}

func TestDepartmentOpenExistingPrepopulatesDraft(t *testing.T) {
	controller, upstream, collections, _ := newDepartmentFixture()
	upstream.departments = []domain.Department{{ID: "dept-1", Name: "Research", Manager: "Grace"}}
	require.NoError(t, collections.RefreshDepartments(context.Background()))

	draft, found := controller.OpenExisting("dept-1")

	require.True(t, found)
	assert.Equal(t, "Research", draft.Name)
	assert.Equal(t, "Grace", draft.Manager)
}

func TestDepartmentRemoveHonorsConfirmation(t *testing.T) {
	controller, upstream, collections, notifier := newDepartmentFixture()
	upstream.departments = []domain.Department{{ID: "dept-1", Name: "Sales"}}
	require.NoError(t, collections.RefreshDepartments(context.Background()))

	require.NoError(t, controller.Remove(context.Background(), "dept-1", false))
	assert.Len(t, collections.Departments(), 1)
	assert.Empty(t, notifier.notes)

	require.NoError(t, controller.Remove(context.Background(), "dept-1", true))
	assert.Empty(t, collections.Departments())
	assert.Equal(t, recordedNote{kind: "success", message: "Department deleted successfully"}, notifier.notes[len(notifier.notes)-1])
}
