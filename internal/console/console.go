// Package console assembles the client-side state layer: store, derived
// views, edit sessions and notifications, driven by typed commands so the
// HTTP surface stays a pure projection of current state.
package console

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-console/internal/command"
	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/internal/notify"
	"github.com/spec-kit/employee-console/internal/session"
	"github.com/spec-kit/employee-console/internal/store"
	"github.com/spec-kit/employee-console/internal/views"
)

// Console groups the state layer behind command dispatch and read-only
// projections.
type Console struct {
	store       *store.Store
	table       *views.TableState
	employees   *session.EmployeeController
	departments *session.DepartmentController
	notifier    *notify.Center
	dispatcher  command.Dispatcher
	logger      *zap.Logger
}

// Dependencies bundles the collaborators for construction.
type Dependencies struct {
	Store       *store.Store
	Table       *views.TableState
	Employees   *session.EmployeeController
	Departments *session.DepartmentController
	Notifier    *notify.Center
	Dispatcher  command.Dispatcher
	Logger      *zap.Logger
}

// New wires the command subscriptions and returns the assembled console.
func New(deps Dependencies) *Console {
	c := &Console{
		store:       deps.Store,
		table:       deps.Table,
		employees:   deps.Employees,
		departments: deps.Departments,
		notifier:    deps.Notifier,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
	}
	c.registerHandlers()
	return c
}

func (c *Console) registerHandlers() {
	c.dispatcher.Subscribe(command.TypeOpenEmployeeEditor, c.handleOpenEmployeeEditor)
	c.dispatcher.Subscribe(command.TypeCancelEmployeeEdit, c.handleCancelEmployeeEdit)
	c.dispatcher.Subscribe(command.TypeSubmitEmployee, c.handleSubmitEmployee)
	c.dispatcher.Subscribe(command.TypeRemoveEmployee, c.handleRemoveEmployee)
	c.dispatcher.Subscribe(command.TypeOpenDepartmentEditor, c.handleOpenDepartmentEditor)
	c.dispatcher.Subscribe(command.TypeCancelDepartmentEdit, c.handleCancelDepartmentEdit)
	c.dispatcher.Subscribe(command.TypeSubmitDepartment, c.handleSubmitDepartment)
	c.dispatcher.Subscribe(command.TypeRemoveDepartment, c.handleRemoveDepartment)
	c.dispatcher.Subscribe(command.TypeEmployeeSearchChanged, c.handleSearchChanged)
	c.dispatcher.Subscribe(command.TypeEmployeeFilterChanged, c.handleFilterChanged)
	c.dispatcher.Subscribe(command.TypeRefreshRequested, c.handleRefreshRequested)
}

// Dispatch publishes a command through the dispatcher.
func (c *Console) Dispatch(ctx context.Context, cmd command.Command) error {
	c.logger.Debug("dispatching command",
		zap.String("command_id", cmd.ID),
		zap.String("type", string(cmd.Type)))
	return c.dispatcher.Publish(ctx, cmd)
}

func payloadAs[T any](cmd command.Command) (T, error) {
	payload, ok := cmd.Payload.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("command %s: unexpected payload %T", cmd.Type, cmd.Payload)
	}
	return payload, nil
}

func (c *Console) handleOpenEmployeeEditor(_ context.Context, cmd command.Command) error {
	p, err := payloadAs[command.OpenEditorPayload](cmd)
	if err != nil {
		return err
	}
	if p.New {
		c.employees.OpenNew()
		return nil
	}
	c.employees.OpenExisting(p.ID)
	return nil
}

func (c *Console) handleCancelEmployeeEdit(context.Context, command.Command) error {
	c.employees.Cancel()
	return nil
}

func (c *Console) handleSubmitEmployee(ctx context.Context, cmd command.Command) error {
	p, err := payloadAs[command.SubmitEmployeePayload](cmd)
	if err != nil {
		return err
	}
	return c.employees.Submit(ctx, p.Draft)
}

func (c *Console) handleRemoveEmployee(ctx context.Context, cmd command.Command) error {
	p, err := payloadAs[command.RemoveEmployeePayload](cmd)
	if err != nil {
		return err
	}
	return c.employees.Remove(ctx, p.ID, p.Confirmed)
}

func (c *Console) handleOpenDepartmentEditor(_ context.Context, cmd command.Command) error {
	p, err := payloadAs[command.OpenEditorPayload](cmd)
	if err != nil {
		return err
	}
	if p.New {
		c.departments.OpenNew()
		return nil
	}
	c.departments.OpenExisting(p.ID)
	return nil
}

func (c *Console) handleCancelDepartmentEdit(context.Context, command.Command) error {
	c.departments.Cancel()
	return nil
}

func (c *Console) handleSubmitDepartment(ctx context.Context, cmd command.Command) error {
	p, err := payloadAs[command.SubmitDepartmentPayload](cmd)
	if err != nil {
		return err
	}
	return c.departments.Submit(ctx, p.Draft)
}

func (c *Console) handleRemoveDepartment(ctx context.Context, cmd command.Command) error {
	p, err := payloadAs[command.RemoveDepartmentPayload](cmd)
	if err != nil {
		return err
	}
	return c.departments.Remove(ctx, p.ID, p.Confirmed)
}

func (c *Console) handleSearchChanged(_ context.Context, cmd command.Command) error {
	p, err := payloadAs[command.SearchChangedPayload](cmd)
	if err != nil {
		return err
	}
	c.table.ApplySearch(p.Keyword)
	return nil
}

func (c *Console) handleFilterChanged(_ context.Context, cmd command.Command) error {
	p, err := payloadAs[command.FilterChangedPayload](cmd)
	if err != nil {
		return err
	}
	c.table.ApplyFilter(p.Filter)
	return nil
}

func (c *Console) handleRefreshRequested(ctx context.Context, cmd command.Command) error {
	var firstErr error
	if err := c.store.RefreshEmployees(ctx); err != nil {
		c.notifier.Error("Error loading employees")
		firstErr = err
	}
	if err := c.store.RefreshDepartments(ctx); err != nil {
		c.notifier.Error("Error loading departments")
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// VisibleEmployees projects the employee table through the active
// search/filter mode.
func (c *Console) VisibleEmployees() []domain.Employee {
	return c.table.Visible(c.store.Employees())
}

// TableMode reports the projection applied to the employee table.
func (c *Console) TableMode() views.TableMode {
	return c.table.Mode()
}

// Departments returns the current department snapshot.
func (c *Console) Departments() []domain.Department {
	return c.store.Departments()
}

// Dashboard recomputes the aggregate cards and recency panels.
func (c *Console) Dashboard(now time.Time) (views.DashboardStats, []domain.Employee, []domain.Department) {
	employees := c.store.Employees()
	departments := c.store.Departments()
	stats := views.ComputeDashboardStats(employees, departments, now)
	recent := views.RecentEmployees(employees, views.DefaultRecentLimit)
	overview := views.DepartmentOverview(departments, views.DefaultRecentLimit)
	return stats, recent, overview
}

// EmployeeSession exposes the employee edit session plus editor draft.
func (c *Console) EmployeeSession() (session.State, domain.EmployeeDraft) {
	return c.employees.State(), c.employees.Draft()
}

// DepartmentSession exposes the department edit session plus editor draft.
func (c *Console) DepartmentSession() (session.State, domain.DepartmentDraft) {
	return c.departments.State(), c.departments.Draft()
}

// Notifications returns the unexpired toasts.
func (c *Console) Notifications(now time.Time) []notify.Notification {
	return c.notifier.Active(now)
}
