package dto

import (
	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/internal/session"
)

// OpenEditorRequest opens an editor. A null/absent id means "create new".
type OpenEditorRequest struct {
	ID *string `json:"id"`
}

// SearchRequest carries the global search keyword.
type SearchRequest struct {
	Keyword string `json:"keyword"`
}

// FilterRequest carries the two dropdown filters.
type FilterRequest struct {
	Department string `json:"department"`
	Status     string `json:"status"`
}

// EmployeeEditorResponse exposes the session state plus editor draft.
type EmployeeEditorResponse struct {
	Session session.State        `json:"session"`
	Draft   domain.EmployeeDraft `json:"draft"`
}

// EmployeeTableResponse is the listing projection plus its active mode.
type EmployeeTableResponse struct {
	Mode  string            `json:"mode"`
	Items []domain.Employee `json:"items"`
}
