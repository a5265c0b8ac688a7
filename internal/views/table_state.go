package views

import (
	"sync"

	"github.com/spec-kit/employee-console/internal/domain"
)

// TableMode names the projection currently applied to the employee table.
type TableMode string

const (
	TableModeAll    TableMode = "all"
	TableModeSearch TableMode = "search"
	TableModeFilter TableMode = "filter"
)

// TableState makes the search-vs-filter precedence explicit: the two inputs
// are mutually exclusive and the last applied one wins. Applying a blank
// keyword or an empty filter resets the table to the full snapshot.
type TableState struct {
	mu      sync.Mutex
	mode    TableMode
	keyword string
	filter  EmployeeFilter
}

// NewTableState starts with the full, unfiltered table.
func NewTableState() *TableState {
	return &TableState{mode: TableModeAll}
}

// ApplySearch switches the table to keyword search, discarding any filter.
func (t *TableState) ApplySearch(keyword string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.keyword = keyword
	t.filter = EmployeeFilter{}
	if keyword == "" {
		t.mode = TableModeAll
		return
	}
	t.mode = TableModeSearch
}

// ApplyFilter switches the table to dropdown filtering, discarding any
// search keyword.
func (t *TableState) ApplyFilter(filter EmployeeFilter) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filter = filter
	t.keyword = ""
	if filter.IsZero() {
		t.mode = TableModeAll
		return
	}
	t.mode = TableModeFilter
}

// Reset returns the table to the full snapshot.
func (t *TableState) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mode = TableModeAll
	t.keyword = ""
	t.filter = EmployeeFilter{}
}

// Mode reports the active projection.
func (t *TableState) Mode() TableMode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

// Visible projects the employee snapshot through the active mode.
func (t *TableState) Visible(snapshot []domain.Employee) []domain.Employee {
	t.mu.Lock()
	mode, keyword, filter := t.mode, t.keyword, t.filter
	t.mu.Unlock()

	switch mode {
	case TableModeSearch:
		return SearchEmployees(snapshot, keyword)
	case TableModeFilter:
		return FilterEmployees(snapshot, filter)
	default:
		result := make([]domain.Employee, len(snapshot))
		copy(result, snapshot)
		return result
	}
}
