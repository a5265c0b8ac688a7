package gateway

import (
	"context"
	"net/http"

	"github.com/spec-kit/employee-console/internal/domain"
)

// ListEmployees fetches the full employee collection.
func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// CreateEmployee submits a draft for creation and returns the stored record.
func (c *Client) CreateEmployee(ctx context.Context, draft domain.EmployeeDraft) (*domain.Employee, error) {
	var created domain.Employee
	if err := c.do(ctx, http.MethodPost, "/employees", draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEmployee submits a draft against an existing record.
func (c *Client) UpdateEmployee(ctx context.Context, id string, draft domain.EmployeeDraft) (*domain.Employee, error) {
	var updated domain.Employee
	if err := c.do(ctx, http.MethodPut, "/employees/"+id, draft, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEmployee removes a record by id.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/employees/"+id, nil, nil)
}
