package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-console/internal/domain"
)

func employeeFixtures() []domain.Employee {
	return []domain.Employee{
		{ID: "1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.co", Department: "Engineering", Position: "Engineer", Status: domain.EmployeeStatusActive, HireDate: domain.NewDate(2024, time.March, 1)},
		{ID: "2", FirstName: "Grace", LastName: "Hopper", Email: "grace@x.co", Department: "Engineering", Position: "Admiral", Status: domain.EmployeeStatusOnLeave, HireDate: domain.NewDate(2024, time.February, 29)},
		{ID: "3", FirstName: "Edsger", LastName: "Dijkstra", Email: "ewd@x.co", Department: "Research", Position: "Scientist", Status: domain.EmployeeStatusActive, HireDate: domain.NewDate(2023, time.June, 1)},
		{ID: "4", FirstName: "Barbara", LastName: "Liskov", Email: "liskov@x.co", Department: "Research", Position: "Professor", Status: domain.EmployeeStatusInactive, HireDate: domain.NewDate(2024, time.March, 31)},
	}
}

func TestFilterEmployeesConjunction(t *testing.T) {
	snap := employeeFixtures()

	byDept := FilterEmployees(snap, EmployeeFilter{Department: "Research"})
	byStatus := FilterEmployees(snap, EmployeeFilter{Status: domain.EmployeeStatusActive})
	both := FilterEmployees(snap, EmployeeFilter{Department: "Research", Status: domain.EmployeeStatusActive})

	// The combined filter is exactly the intersection of the two.
	intersection := make([]domain.Employee, 0)
	for _, a := range byDept {
		for _, b := range byStatus {
			if a.ID == b.ID {
				intersection = append(intersection, a)
			}
		}
	}
	assert.Equal(t, intersection, both)
	require.Len(t, both, 1)
	assert.Equal(t, "3", both[0].ID)
}

func TestFilterEmployeesAbsentFilterMatchesAll(t *testing.T) {
	snap := employeeFixtures()
	assert.Equal(t, snap, FilterEmployees(snap, EmployeeFilter{}))
}

func TestSearchEmployeesBlankKeywordReturnsFullSnapshot(t *testing.T) {
	snap := employeeFixtures()
	assert.Equal(t, snap, SearchEmployees(snap, ""))
	assert.Equal(t, snap, SearchEmployees(snap, "   "))
}

func TestSearchEmployeesMatchesAcrossFields(t *testing.T) {
	snap := employeeFixtures()

	assert.Len(t, SearchEmployees(snap, "ADA"), 1)
	assert.Len(t, SearchEmployees(snap, "engineering"), 2)
	assert.Len(t, SearchEmployees(snap, "liskov@"), 1)
	assert.Len(t, SearchEmployees(snap, "professor"), 1)
	assert.Empty(t, SearchEmployees(snap, "nobody"))
}

func TestDashboardStatsRecencyWindowBoundary(t *testing.T) {
	now := time.Date(2024, time.March, 31, 15, 4, 5, 0, time.UTC)
	snap := employeeFixtures()
	depts := []domain.Department{{ID: "d1", Name: "Engineering"}}

	stats := ComputeDashboardStats(snap, depts, now)

	assert.Equal(t, 4, stats.TotalEmployees)
	assert.Equal(t, 2, stats.ActiveEmployees)
	assert.Equal(t, 1, stats.TotalDepartments)
	// 2024-03-01 is exactly 30 days before now and counts; 2024-02-29 is 31
	// days before and does not. Hiring on the day itself counts too.
	assert.Equal(t, 2, stats.NewHiresLast30Days)
}

func TestRecentEmployeesFirstNInSnapshotOrder(t *testing.T) {
	snap := employeeFixtures()

	recent := RecentEmployees(snap, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "1", recent[0].ID)
	assert.Equal(t, "2", recent[1].ID)

	assert.Len(t, RecentEmployees(snap, 10), len(snap))
	assert.Len(t, RecentEmployees(nil, 5), 0)
}

func TestDepartmentOverviewFirstN(t *testing.T) {
	depts := []domain.Department{
		{ID: "d1", Name: "Engineering"},
		{ID: "d2", Name: "Research"},
		{ID: "d3", Name: "Sales"},
	}
	overview := DepartmentOverview(depts, 2)
	require.Len(t, overview, 2)
	assert.Equal(t, "Engineering", overview[0].Name)
	assert.Equal(t, "Research", overview[1].Name)
}
