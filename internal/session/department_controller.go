package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/pkg/util/faultutil"
)

// DepartmentGateway is the slice of the remote data gateway the controller
// needs for department mutations.
type DepartmentGateway interface {
	CreateDepartment(ctx context.Context, draft domain.DepartmentDraft) (*domain.Department, error)
	UpdateDepartment(ctx context.Context, id string, draft domain.DepartmentDraft) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, id string) error
}

// DepartmentStore provides the department snapshot plus the reload entry
// points.
type DepartmentStore interface {
	Refresher
	Departments() []domain.Department
}

// DepartmentController owns the department edit session.
type DepartmentController struct {
	mu    sync.Mutex
	state State
	draft domain.DepartmentDraft

	gateway  DepartmentGateway
	store    DepartmentStore
	notifier Notifier
	logger   *zap.Logger
}

// NewDepartmentController builds an idle controller.
func NewDepartmentController(gw DepartmentGateway, store DepartmentStore, notifier Notifier, logger *zap.Logger) *DepartmentController {
	return &DepartmentController{
		state:    State{Phase: PhaseIdle},
		gateway:  gw,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// OpenNew starts a create session with a blank draft.
func (c *DepartmentController) OpenNew() domain.DepartmentDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = State{Phase: PhaseCreating}
	c.draft = domain.DepartmentDraft{}
	return c.draft
}

// OpenExisting starts an edit session targeting id. An id absent from the
// stale snapshot yields a blank editor, same as the employee side.
func (c *DepartmentController) OpenExisting(id string) (domain.DepartmentDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = State{Phase: PhaseEditing, TargetID: id}
	c.draft = domain.DepartmentDraft{}

	for _, dept := range c.store.Departments() {
		if dept.ID == id {
			c.draft = dept.Draft()
			return c.draft, true
		}
	}
	c.logger.Debug("edit target missing from department snapshot", zap.String("id", id))
	return c.draft, false
}

// Cancel discards the session unconditionally.
func (c *DepartmentController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = State{Phase: PhaseIdle}
	c.draft = domain.DepartmentDraft{}
}

// State returns the observable session state.
func (c *DepartmentController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Draft returns the current editor pre-population.
func (c *DepartmentController) Draft() domain.DepartmentDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Submit resolves the session against the server, with the same
// retain-on-failure contract as the employee controller.
func (c *DepartmentController) Submit(ctx context.Context, draft domain.DepartmentDraft) error {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	var err error
	switch state.Phase {
	case PhaseCreating:
		_, err = c.gateway.CreateDepartment(ctx, draft)
	case PhaseEditing:
		_, err = c.gateway.UpdateDepartment(ctx, state.TargetID, draft)
	default:
		err = faultutil.NewValidation("no active department edit session")
	}
	if err != nil {
		c.notifier.Error(faultutil.Message(err))
		return err
	}

	c.mu.Lock()
	c.state = State{Phase: PhaseIdle}
	c.draft = domain.DepartmentDraft{}
	c.mu.Unlock()

	c.refreshStore(ctx)
	if state.Phase == PhaseCreating {
		c.notifier.Success("Department added successfully")
	} else {
		c.notifier.Success("Department updated successfully")
	}
	return nil
}

// Remove deletes a department after the explicit confirmation step.
func (c *DepartmentController) Remove(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		c.logger.Debug("department delete not confirmed; ignoring", zap.String("id", id))
		return nil
	}

	if err := c.gateway.DeleteDepartment(ctx, id); err != nil {
		c.notifier.Error("Error deleting department")
		return err
	}

	c.mu.Lock()
	if c.state.Phase == PhaseEditing && c.state.TargetID == id {
		c.state = State{Phase: PhaseIdle}
		c.draft = domain.DepartmentDraft{}
	}
	c.mu.Unlock()

	c.refreshStore(ctx)
	c.notifier.Success("Department deleted successfully")
	return nil
}

func (c *DepartmentController) refreshStore(ctx context.Context) {
	if err := c.store.RefreshDepartments(ctx); err != nil {
		c.notifier.Error("Error loading departments")
	}
	if err := c.store.RefreshEmployees(ctx); err != nil {
		c.notifier.Error("Error loading employees")
	}
}
