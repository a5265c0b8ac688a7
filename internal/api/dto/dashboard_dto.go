package dto

import (
	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/internal/views"
)

// DashboardResponse bundles the aggregate cards and recency panels.
type DashboardResponse struct {
	Stats              views.DashboardStats `json:"stats"`
	RecentEmployees    []domain.Employee    `json:"recentEmployees"`
	DepartmentOverview []domain.Department  `json:"departmentOverview"`
}
