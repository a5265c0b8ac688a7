package domain

// EmployeeStatus enumerates employment states.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
	EmployeeStatusOnLeave  EmployeeStatus = "On Leave"
)

// Employee is a full HR record. The ID is assigned by the server and
// immutable once created. Department is a denormalized department name,
// not a foreign key.
type Employee struct {
	ID         string         `json:"id"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Department string         `json:"department"`
	Position   string         `json:"position"`
	Salary     float64        `json:"salary"`
	HireDate   Date           `json:"hireDate"`
	Status     EmployeeStatus `json:"status"`
	Address    string         `json:"address,omitempty"`
}

// EmployeeDraft carries the user-submitted field set for create/update,
// prior to server assignment of an identifier.
type EmployeeDraft struct {
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Department string         `json:"department"`
	Position   string         `json:"position"`
	Salary     float64        `json:"salary"`
	HireDate   Date           `json:"hireDate"`
	Status     EmployeeStatus `json:"status"`
	Address    string         `json:"address,omitempty"`
}

// Draft returns the editable field set of an existing record, used to
// pre-populate an editor.
func (e Employee) Draft() EmployeeDraft {
	return EmployeeDraft{
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Position:   e.Position,
		Salary:     e.Salary,
		HireDate:   e.HireDate,
		Status:     e.Status,
		Address:    e.Address,
	}
}

// Apply copies the draft fields onto the record, leaving the ID untouched.
func (e *Employee) Apply(d EmployeeDraft) {
	e.FirstName = d.FirstName
	e.LastName = d.LastName
	e.Email = d.Email
	e.Phone = d.Phone
	e.Department = d.Department
	e.Position = d.Position
	e.Salary = d.Salary
	e.HireDate = d.HireDate
	e.Status = d.Status
	e.Address = d.Address
}
