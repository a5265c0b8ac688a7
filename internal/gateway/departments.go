package gateway

import (
	"context"
	"net/http"

	"github.com/spec-kit/employee-console/internal/domain"
)

// ListDepartments fetches the full department collection.
func (c *Client) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	if err := c.do(ctx, http.MethodGet, "/departments", nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// CreateDepartment submits a draft for creation and returns the stored record.
func (c *Client) CreateDepartment(ctx context.Context, draft domain.DepartmentDraft) (*domain.Department, error) {
	var created domain.Department
	if err := c.do(ctx, http.MethodPost, "/departments", draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDepartment submits a draft against an existing record.
func (c *Client) UpdateDepartment(ctx context.Context, id string, draft domain.DepartmentDraft) (*domain.Department, error) {
	var updated domain.Department
	if err := c.do(ctx, http.MethodPut, "/departments/"+id, draft, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDepartment removes a department by id.
func (c *Client) DeleteDepartment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/departments/"+id, nil, nil)
}
