package dto

import (
	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/internal/session"
)

// DepartmentEditorResponse exposes the session state plus editor draft.
type DepartmentEditorResponse struct {
	Session session.State          `json:"session"`
	Draft   domain.DepartmentDraft `json:"draft"`
}
