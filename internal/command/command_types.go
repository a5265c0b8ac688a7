package command

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/internal/views"
)

// Type enumerates supported command identifiers.
type Type string

const (
	TypeOpenEmployeeEditor    Type = "open_employee_editor"
	TypeCancelEmployeeEdit    Type = "cancel_employee_edit"
	TypeSubmitEmployee        Type = "submit_employee"
	TypeRemoveEmployee        Type = "remove_employee"
	TypeOpenDepartmentEditor  Type = "open_department_editor"
	TypeCancelDepartmentEdit  Type = "cancel_department_edit"
	TypeSubmitDepartment      Type = "submit_department"
	TypeRemoveDepartment      Type = "remove_department"
	TypeEmployeeSearchChanged Type = "employee_search_changed"
	TypeEmployeeFilterChanged Type = "employee_filter_changed"
	TypeRefreshRequested      Type = "refresh_requested"
)

// Command is a typed UI action consumed by the controllers.
type Command struct {
	ID       string
	Type     Type
	IssuedAt time.Time
	Payload  any
}

// New stamps a command with an id and issue time.
func New(cmdType Type, payload any) Command {
	return Command{
		ID:       uuid.NewString(),
		Type:     cmdType,
		IssuedAt: time.Now(),
		Payload:  payload,
	}
}

// OpenEditorPayload opens an editor session. New requests a blank editor;
// otherwise ID names the record to pre-populate from.
type OpenEditorPayload struct {
	New bool
	ID  string
}

// SubmitEmployeePayload carries the submitted employee draft.
type SubmitEmployeePayload struct {
	Draft domain.EmployeeDraft
}

// RemoveEmployeePayload requests a delete; Confirmed reflects the explicit
// user confirmation step.
type RemoveEmployeePayload struct {
	ID        string
	Confirmed bool
}

// SubmitDepartmentPayload carries the submitted department draft.
type SubmitDepartmentPayload struct {
	Draft domain.DepartmentDraft
}

// RemoveDepartmentPayload requests a department delete.
type RemoveDepartmentPayload struct {
	ID        string
	Confirmed bool
}

// SearchChangedPayload updates the global search keyword.
type SearchChangedPayload struct {
	Keyword string
}

// FilterChangedPayload updates the dropdown filters.
type FilterChangedPayload struct {
	Filter views.EmployeeFilter
}
