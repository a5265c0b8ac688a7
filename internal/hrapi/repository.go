// Package hrapi implements a local stand-in for the remote HR API the
// console consumes: the same HTTP surface, validation messages and error
// envelope, backed by an in-memory or Postgres repository.
package hrapi

import (
	"context"

	"github.com/spec-kit/employee-console/internal/domain"
)

// EmployeeRepository persists employee records for the stand-in server.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	CountByDepartment(ctx context.Context, department string) (int, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id string) error
}

// DepartmentRepository persists department records.
type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id string) error
}
