package hrapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/pkg/util/faultutil"
)

// EmployeeService implements the HR API's employee semantics: unique
// emails, server-assigned ids and field validation with the original
// user-facing messages.
type EmployeeService struct {
	repo  EmployeeRepository
	cache *ListCache
}

// NewEmployeeService constructs the service.
func NewEmployeeService(repo EmployeeRepository, cache *ListCache) *EmployeeService {
	return &EmployeeService{repo: repo, cache: cache}
}

// List returns all employees, served from cache when possible.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	var cached []domain.Employee
	if s.cache.Get(ctx, cacheKeyEmployees, &cached) {
		return cached, nil
	}

	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, faultutil.NewInternal(err)
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	s.cache.Set(ctx, cacheKeyEmployees, employees)
	return employees, nil
}

// Get returns one employee by id.
func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, faultutil.NewInternal(err)
	}
	if emp == nil {
		return nil, faultutil.NewNotFound(fmt.Sprintf("Employee not found with id: %s", id))
	}
	return emp, nil
}

// Create validates the draft, assigns an id and stores the record.
func (s *EmployeeService) Create(ctx context.Context, draft domain.EmployeeDraft) (*domain.Employee, error) {
	if err := validateEmployeeDraft(draft); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, draft.Email, "")
	if err != nil {
		return nil, faultutil.NewInternal(err)
	}
	if exists {
		return nil, faultutil.NewValidation(fmt.Sprintf("Employee with email %s already exists", draft.Email))
	}

	emp := &domain.Employee{ID: uuid.NewString()}
	emp.Apply(draft)
	if emp.Status == "" {
		emp.Status = domain.EmployeeStatusActive
	}
	if err := s.repo.Create(ctx, emp); err != nil {
		return nil, faultutil.NewInternal(err)
	}

	s.cache.Invalidate(ctx, cacheKeyEmployees, cacheKeyDepartments)
	return emp, nil
}

// Update validates the draft against an existing record and stores it.
func (s *EmployeeService) Update(ctx context.Context, id string, draft domain.EmployeeDraft) (*domain.Employee, error) {
	if err := validateEmployeeDraft(draft); err != nil {
		return nil, err
	}

	emp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if emp.Email != draft.Email {
		exists, err := s.repo.ExistsByEmail(ctx, draft.Email, id)
		if err != nil {
			return nil, faultutil.NewInternal(err)
		}
		if exists {
			return nil, faultutil.NewValidation(fmt.Sprintf("Employee with email %s already exists", draft.Email))
		}
	}

	emp.Apply(draft)
	if err := s.repo.Update(ctx, emp); err != nil {
		return nil, faultutil.NewInternal(err)
	}

	s.cache.Invalidate(ctx, cacheKeyEmployees, cacheKeyDepartments)
	return emp, nil
}

// Delete removes an existing record.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return faultutil.NewInternal(err)
	}
	s.cache.Invalidate(ctx, cacheKeyEmployees, cacheKeyDepartments)
	return nil
}

func validateEmployeeDraft(draft domain.EmployeeDraft) error {
	switch {
	case strings.TrimSpace(draft.FirstName) == "":
		return faultutil.NewValidation("First name is required")
	case strings.TrimSpace(draft.LastName) == "":
		return faultutil.NewValidation("Last name is required")
	case strings.TrimSpace(draft.Email) == "":
		return faultutil.NewValidation("Email is required")
	case !strings.Contains(draft.Email, "@"):
		return faultutil.NewValidation("Email should be valid")
	case strings.TrimSpace(draft.Phone) == "":
		return faultutil.NewValidation("Phone number is required")
	case strings.TrimSpace(draft.Department) == "":
		return faultutil.NewValidation("Department is required")
	case strings.TrimSpace(draft.Position) == "":
		return faultutil.NewValidation("Position is required")
	case draft.Salary < 0:
		return faultutil.NewValidation("Salary must be non-negative")
	case draft.HireDate.IsZero():
		return faultutil.NewValidation("Hire date is required")
	}
	return nil
}
