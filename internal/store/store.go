package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-console/internal/domain"
)

// Gateway is the slice of the remote data gateway the store needs for
// reloads.
type Gateway interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}

// Store is the process-wide cache of the full employee and department
// collections and the single source of truth for every view. Snapshots are
// mutated only by wholesale replacement after a successful server
// round-trip; no element is ever patched in place. Readers always get a
// copy, so an in-flight reload can never expose a partially mutated list.
type Store struct {
	mu          sync.RWMutex
	employees   []domain.Employee
	departments []domain.Department

	gateway Gateway
	logger  *zap.Logger
}

// New builds an empty store backed by the given gateway.
func New(gw Gateway, logger *zap.Logger) *Store {
	return &Store{gateway: gw, logger: logger}
}

// ReplaceEmployees atomically swaps the employee snapshot. This is the only
// mutation entry point for the collection; replacing with an identical list
// is a no-op in effect.
func (s *Store) ReplaceEmployees(items []domain.Employee) {
	snapshot := make([]domain.Employee, len(items))
	copy(snapshot, items)

	s.mu.Lock()
	s.employees = snapshot
	s.mu.Unlock()

	s.logger.Debug("employee snapshot replaced", zap.Int("count", len(snapshot)))
}

// ReplaceDepartments atomically swaps the department snapshot.
func (s *Store) ReplaceDepartments(items []domain.Department) {
	snapshot := make([]domain.Department, len(items))
	copy(snapshot, items)

	s.mu.Lock()
	s.departments = snapshot
	s.mu.Unlock()

	s.logger.Debug("department snapshot replaced", zap.Int("count", len(snapshot)))
}

// Employees returns a copy of the current employee snapshot.
func (s *Store) Employees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]domain.Employee, len(s.employees))
	copy(snapshot, s.employees)
	return snapshot
}

// Departments returns a copy of the current department snapshot.
func (s *Store) Departments() []domain.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]domain.Department, len(s.departments))
	copy(snapshot, s.departments)
	return snapshot
}

// RefreshEmployees reloads the employee collection from the server. On
// gateway failure the prior snapshot is left untouched: stale-but-consistent
// beats empty-but-wrong.
func (s *Store) RefreshEmployees(ctx context.Context) error {
	items, err := s.gateway.ListEmployees(ctx)
	if err != nil {
		s.logger.Warn("employee reload failed; keeping prior snapshot", zap.Error(err))
		return err
	}
	s.ReplaceEmployees(items)
	return nil
}

// RefreshDepartments reloads the department collection from the server,
// keeping the prior snapshot on failure.
func (s *Store) RefreshDepartments(ctx context.Context) error {
	items, err := s.gateway.ListDepartments(ctx)
	if err != nil {
		s.logger.Warn("department reload failed; keeping prior snapshot", zap.Error(err))
		return err
	}
	s.ReplaceDepartments(items)
	return nil
}
