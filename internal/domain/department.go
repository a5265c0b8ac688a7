package domain

// Department represents an organizational unit. EmployeeCount is computed
// by the server from the employee records and is advisory on the client:
// it may be stale relative to the cached employee list.
type Department struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Manager       string `json:"manager,omitempty"`
	Description   string `json:"description,omitempty"`
	EmployeeCount int    `json:"employeeCount"`
}

// DepartmentDraft carries the user-submitted department fields.
type DepartmentDraft struct {
	Name        string `json:"name"`
	Manager     string `json:"manager,omitempty"`
	Description string `json:"description,omitempty"`
}

// Draft returns the editable field set of an existing department.
func (d Department) Draft() DepartmentDraft {
	return DepartmentDraft{
		Name:        d.Name,
		Manager:     d.Manager,
		Description: d.Description,
	}
}

// Apply copies the draft fields onto the record. ID and EmployeeCount are
// server-owned and left untouched.
func (dep *Department) Apply(d DepartmentDraft) {
	dep.Name = d.Name
	dep.Manager = d.Manager
	dep.Description = d.Description
}
