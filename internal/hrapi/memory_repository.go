package hrapi

import (
	"context"
	"sync"

	"github.com/spec-kit/employee-console/internal/domain"
)

// memoryEmployeeRepository is the default storage when no Postgres DSN is
// configured. Insertion order is preserved so list responses are stable.
type memoryEmployeeRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Employee
	order []string
}

// NewMemoryEmployeeRepository builds an empty in-memory repository.
func NewMemoryEmployeeRepository() EmployeeRepository {
	return &memoryEmployeeRepository{byID: make(map[string]domain.Employee)}
}

func (r *memoryEmployeeRepository) List(context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Employee, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result, nil
}

func (r *memoryEmployeeRepository) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	emp, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &emp, nil
}

func (r *memoryEmployeeRepository) ExistsByEmail(_ context.Context, email, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, emp := range r.byID {
		if emp.Email == email && emp.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryEmployeeRepository) CountByDepartment(_ context.Context, department string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, emp := range r.byID {
		if emp.Department == department {
			count++
		}
	}
	return count, nil
}

func (r *memoryEmployeeRepository) Create(_ context.Context, emp *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[emp.ID] = *emp
	r.order = append(r.order, emp.ID)
	return nil
}

func (r *memoryEmployeeRepository) Update(_ context.Context, emp *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[emp.ID] = *emp
	return nil
}

func (r *memoryEmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// memoryDepartmentRepository mirrors the employee repository for
// departments.
type memoryDepartmentRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Department
	order []string
}

// NewMemoryDepartmentRepository builds an empty in-memory repository.
func NewMemoryDepartmentRepository() DepartmentRepository {
	return &memoryDepartmentRepository{byID: make(map[string]domain.Department)}
}

func (r *memoryDepartmentRepository) List(context.Context) ([]domain.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Department, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result, nil
}

func (r *memoryDepartmentRepository) GetByID(_ context.Context, id string) (*domain.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dept, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &dept, nil
}

func (r *memoryDepartmentRepository) ExistsByName(_ context.Context, name, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, dept := range r.byID {
		if dept.Name == name && dept.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryDepartmentRepository) Create(_ context.Context, dept *domain.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[dept.ID] = *dept
	r.order = append(r.order, dept.ID)
	return nil
}

func (r *memoryDepartmentRepository) Update(_ context.Context, dept *domain.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[dept.ID] = *dept
	return nil
}

func (r *memoryDepartmentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
