package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/pkg/util/faultutil"
)

// EmployeeGateway is the slice of the remote data gateway the controller
// needs for employee mutations.
type EmployeeGateway interface {
	CreateEmployee(ctx context.Context, draft domain.EmployeeDraft) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, id string, draft domain.EmployeeDraft) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

// EmployeeStore provides the snapshot used to pre-populate editors plus the
// reload entry points.
type EmployeeStore interface {
	Refresher
	Employees() []domain.Employee
}

// EmployeeController owns the employee edit session. Opening a new session
// implicitly discards any prior one; no explicit cancellation is required.
type EmployeeController struct {
	mu    sync.Mutex
	state State
	draft domain.EmployeeDraft

	gateway  EmployeeGateway
	store    EmployeeStore
	notifier Notifier
	logger   *zap.Logger
}

// NewEmployeeController builds an idle controller.
func NewEmployeeController(gw EmployeeGateway, store EmployeeStore, notifier Notifier, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{
		state:    State{Phase: PhaseIdle},
		gateway:  gw,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// OpenNew starts a create session with a blank draft.
func (c *EmployeeController) OpenNew() domain.EmployeeDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = State{Phase: PhaseCreating}
	c.draft = domain.EmployeeDraft{Status: domain.EmployeeStatusActive}
	return c.draft
}

// OpenExisting starts an edit session targeting id, pre-populating the draft
// from the current snapshot. When the id is absent the snapshot has gone
// stale; the session still targets the id but the editor comes up blank.
func (c *EmployeeController) OpenExisting(id string) (domain.EmployeeDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = State{Phase: PhaseEditing, TargetID: id}
	c.draft = domain.EmployeeDraft{}

	for _, emp := range c.store.Employees() {
		if emp.ID == id {
			c.draft = emp.Draft()
			return c.draft, true
		}
	}
	c.logger.Debug("edit target missing from employee snapshot", zap.String("id", id))
	return c.draft, false
}

// Cancel discards the session unconditionally.
func (c *EmployeeController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = State{Phase: PhaseIdle}
	c.draft = domain.EmployeeDraft{}
}

// State returns the observable session state.
func (c *EmployeeController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Draft returns the current editor pre-population.
func (c *EmployeeController) Draft() domain.EmployeeDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Submit resolves the session against the server. On success the session
// ends, both collections reload and a success notification is emitted. On
// failure the session is retained so the user can fix input and retry, and
// the fault's message is surfaced as an error notification.
func (c *EmployeeController) Submit(ctx context.Context, draft domain.EmployeeDraft) error {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	var err error
	switch state.Phase {
	case PhaseCreating:
		_, err = c.gateway.CreateEmployee(ctx, draft)
	case PhaseEditing:
		_, err = c.gateway.UpdateEmployee(ctx, state.TargetID, draft)
	default:
		err = faultutil.NewValidation("no active employee edit session")
	}
	if err != nil {
		c.notifier.Error(faultutil.Message(err))
		return err
	}

	c.mu.Lock()
	c.state = State{Phase: PhaseIdle}
	c.draft = domain.EmployeeDraft{}
	c.mu.Unlock()

	c.refreshStore(ctx)
	if state.Phase == PhaseCreating {
		c.notifier.Success("Employee added successfully")
	} else {
		c.notifier.Success("Employee updated successfully")
	}
	return nil
}

// Remove deletes a record after the explicit confirmation step. An
// unconfirmed request issues zero gateway calls and changes nothing. The
// session is only reset when it targets the removed id.
func (c *EmployeeController) Remove(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		c.logger.Debug("employee delete not confirmed; ignoring", zap.String("id", id))
		return nil
	}

	if err := c.gateway.DeleteEmployee(ctx, id); err != nil {
		c.notifier.Error("Error deleting employee")
		return err
	}

	c.mu.Lock()
	if c.state.Phase == PhaseEditing && c.state.TargetID == id {
		c.state = State{Phase: PhaseIdle}
		c.draft = domain.EmployeeDraft{}
	}
	c.mu.Unlock()

	c.refreshStore(ctx)
	c.notifier.Success("Employee deleted successfully")
	return nil
}

func (c *EmployeeController) refreshStore(ctx context.Context) {
	if err := c.store.RefreshEmployees(ctx); err != nil {
		c.notifier.Error("Error loading employees")
	}
	if err := c.store.RefreshDepartments(ctx); err != nil {
		c.notifier.Error("Error loading departments")
	}
}
