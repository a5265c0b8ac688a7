// Package session tracks at most one in-flight edit target per entity type
// and mediates between opening an editor, submitting a draft, and resolving
// the asynchronous outcome back into a store refresh plus user feedback.
package session

import "context"

// Phase is the tagged edit-session state. Creating and Editing are distinct
// variants, so a record id can never be misread as "new".
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseCreating Phase = "creating"
	PhaseEditing  Phase = "editing"
)

// State is the observable session state. TargetID is set only while
// editing an existing record.
type State struct {
	Phase    Phase  `json:"phase"`
	TargetID string `json:"targetId,omitempty"`
}

// Notifier is the slice of the notification center the controllers use.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Refresher reloads both collections after a successful mutation. Employee
// and department mutations each refresh both: dashboard aggregates span the
// two collections and department employee counts are server-computed.
type Refresher interface {
	RefreshEmployees(ctx context.Context) error
	RefreshDepartments(ctx context.Context) error
}
