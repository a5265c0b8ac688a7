// Package views derives every read model shown by the console from the
// current store snapshots. All functions are pure and recomputed on demand;
// nothing here is cached or incrementally maintained.
package views

import (
	"strings"
	"time"

	"github.com/spec-kit/employee-console/internal/domain"
)

// DefaultRecentLimit bounds the dashboard recency panels.
const DefaultRecentLimit = 5

// EmployeeFilter holds the two dropdown filters. A zero field means
// "match all"; both filters compose conjunctively.
type EmployeeFilter struct {
	Department string                `json:"department"`
	Status     domain.EmployeeStatus `json:"status"`
}

// IsZero reports whether no filter is set.
func (f EmployeeFilter) IsZero() bool {
	return f.Department == "" && f.Status == ""
}

// FilterEmployees applies the dropdown filters with exact string equality.
func FilterEmployees(snapshot []domain.Employee, filter EmployeeFilter) []domain.Employee {
	filtered := make([]domain.Employee, 0, len(snapshot))
	for _, emp := range snapshot {
		if filter.Department != "" && emp.Department != filter.Department {
			continue
		}
		if filter.Status != "" && emp.Status != filter.Status {
			continue
		}
		filtered = append(filtered, emp)
	}
	return filtered
}

// SearchEmployees matches the keyword case-insensitively as a substring of
// first name, last name, email, department or position. A blank keyword
// returns the full snapshot in order.
func SearchEmployees(snapshot []domain.Employee, keyword string) []domain.Employee {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		result := make([]domain.Employee, len(snapshot))
		copy(result, snapshot)
		return result
	}

	matched := make([]domain.Employee, 0, len(snapshot))
	for _, emp := range snapshot {
		if containsFold(emp.FirstName, keyword) ||
			containsFold(emp.LastName, keyword) ||
			containsFold(emp.Email, keyword) ||
			containsFold(emp.Department, keyword) ||
			containsFold(emp.Position, keyword) {
			matched = append(matched, emp)
		}
	}
	return matched
}

func containsFold(field, lowerKeyword string) bool {
	return strings.Contains(strings.ToLower(field), lowerKeyword)
}

// DashboardStats aggregates both collections for the dashboard cards.
type DashboardStats struct {
	TotalEmployees     int `json:"totalEmployees"`
	ActiveEmployees    int `json:"activeEmployees"`
	TotalDepartments   int `json:"totalDepartments"`
	NewHiresLast30Days int `json:"newHiresLast30Days"`
}

// ComputeDashboardStats counts totals, active employees and hires within
// the closed window [now-30d, now] at calendar-day granularity.
func ComputeDashboardStats(employees []domain.Employee, departments []domain.Department, now time.Time) DashboardStats {
	today := domain.DateOf(now)
	windowStart := today.AddDays(-30)

	stats := DashboardStats{
		TotalEmployees:   len(employees),
		TotalDepartments: len(departments),
	}
	for _, emp := range employees {
		if emp.Status == domain.EmployeeStatusActive {
			stats.ActiveEmployees++
		}
		if !emp.HireDate.Before(windowStart) && !emp.HireDate.After(today) {
			stats.NewHiresLast30Days++
		}
	}
	return stats
}

// RecentEmployees returns the first limit employees in snapshot order. No
// independent sort is applied; ordering follows the server response.
func RecentEmployees(snapshot []domain.Employee, limit int) []domain.Employee {
	if limit <= 0 || limit > len(snapshot) {
		limit = len(snapshot)
	}
	result := make([]domain.Employee, limit)
	copy(result, snapshot[:limit])
	return result
}

// DepartmentOverview returns the first limit departments in snapshot order.
func DepartmentOverview(snapshot []domain.Department, limit int) []domain.Department {
	if limit <= 0 || limit > len(snapshot) {
		limit = len(snapshot)
	}
	result := make([]domain.Department, limit)
	copy(result, snapshot[:limit])
	return result
}
