package hrapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/pkg/util/faultutil"
)

// DepartmentService implements the HR API's department semantics. Employee
// counts are recomputed from the employee records on every read, so the
// count a client sees reflects server truth at response time.
type DepartmentService struct {
	repo      DepartmentRepository
	employees EmployeeRepository
	cache     *ListCache
}

// NewDepartmentService constructs the service.
func NewDepartmentService(repo DepartmentRepository, employees EmployeeRepository, cache *ListCache) *DepartmentService {
	return &DepartmentService{repo: repo, employees: employees, cache: cache}
}

// List returns all departments with fresh employee counts, served from
// cache when possible.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	var cached []domain.Department
	if s.cache.Get(ctx, cacheKeyDepartments, &cached) {
		return cached, nil
	}

	departments, err := s.repo.List(ctx)
	if err != nil {
		return nil, faultutil.NewInternal(err)
	}
	if departments == nil {
		departments = []domain.Department{}
	}
	for i := range departments {
		count, err := s.employees.CountByDepartment(ctx, departments[i].Name)
		if err != nil {
			return nil, faultutil.NewInternal(err)
		}
		departments[i].EmployeeCount = count
	}
	s.cache.Set(ctx, cacheKeyDepartments, departments)
	return departments, nil
}

// Get returns one department by id with a fresh employee count.
func (s *DepartmentService) Get(ctx context.Context, id string) (*domain.Department, error) {
	dept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, faultutil.NewInternal(err)
	}
	if dept == nil {
		return nil, faultutil.NewNotFound(fmt.Sprintf("Department not found with id: %s", id))
	}
	count, err := s.employees.CountByDepartment(ctx, dept.Name)
	if err != nil {
		return nil, faultutil.NewInternal(err)
	}
	dept.EmployeeCount = count
	return dept, nil
}

// Create validates the draft, assigns an id and stores the record.
func (s *DepartmentService) Create(ctx context.Context, draft domain.DepartmentDraft) (*domain.Department, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, faultutil.NewValidation("Department name is required")
	}

	exists, err := s.repo.ExistsByName(ctx, draft.Name, "")
	if err != nil {
		return nil, faultutil.NewInternal(err)
	}
	if exists {
		return nil, faultutil.NewValidation(fmt.Sprintf("Department with name %s already exists", draft.Name))
	}

	dept := &domain.Department{ID: uuid.NewString()}
	dept.Apply(draft)
	if err := s.repo.Create(ctx, dept); err != nil {
		return nil, faultutil.NewInternal(err)
	}

	s.cache.Invalidate(ctx, cacheKeyDepartments)
	return dept, nil
}

// Update validates the draft against an existing record and stores it.
func (s *DepartmentService) Update(ctx context.Context, id string, draft domain.DepartmentDraft) (*domain.Department, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, faultutil.NewValidation("Department name is required")
	}

	dept, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if dept.Name != draft.Name {
		exists, err := s.repo.ExistsByName(ctx, draft.Name, id)
		if err != nil {
			return nil, faultutil.NewInternal(err)
		}
		if exists {
			return nil, faultutil.NewValidation(fmt.Sprintf("Department with name %s already exists", draft.Name))
		}
	}

	dept.Apply(draft)
	if err := s.repo.Update(ctx, dept); err != nil {
		return nil, faultutil.NewInternal(err)
	}

	s.cache.Invalidate(ctx, cacheKeyDepartments)
	return dept, nil
}

// Delete removes an existing record.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return faultutil.NewInternal(err)
	}
	s.cache.Invalidate(ctx, cacheKeyDepartments)
	return nil
}
