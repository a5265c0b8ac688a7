package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-console/internal/domain"
)

func TestTableStateLastWriterWins(t *testing.T) {
	snap := employeeFixtures()
	table := NewTableState()

	assert.Equal(t, TableModeAll, table.Mode())
	assert.Equal(t, snap, table.Visible(snap))

	table.ApplyFilter(EmployeeFilter{Department: "Research"})
	assert.Equal(t, TableModeFilter, table.Mode())
	assert.Len(t, table.Visible(snap), 2)

	// A search applied after a filter replaces it entirely.
	table.ApplySearch("ada")
	assert.Equal(t, TableModeSearch, table.Mode())
	visible := table.Visible(snap)
	require.Len(t, visible, 1)
	assert.Equal(t, "1", visible[0].ID)

	// And a filter applied after a search replaces the search.
	table.ApplyFilter(EmployeeFilter{Status: domain.EmployeeStatusInactive})
	assert.Equal(t, TableModeFilter, table.Mode())
	visible = table.Visible(snap)
	require.Len(t, visible, 1)
	assert.Equal(t, "4", visible[0].ID)
}

func TestTableStateBlankInputsResetToAll(t *testing.T) {
	snap := employeeFixtures()
	table := NewTableState()

	table.ApplySearch("ada")
	table.ApplySearch("")
	assert.Equal(t, TableModeAll, table.Mode())
	assert.Equal(t, snap, table.Visible(snap))

	table.ApplyFilter(EmployeeFilter{Department: "Research"})
	table.ApplyFilter(EmployeeFilter{})
	assert.Equal(t, TableModeAll, table.Mode())
	assert.Equal(t, snap, table.Visible(snap))
}
