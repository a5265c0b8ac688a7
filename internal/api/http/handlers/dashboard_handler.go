package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-console/internal/api/dto"
	"github.com/spec-kit/employee-console/internal/command"
	"github.com/spec-kit/employee-console/internal/console"
)

// DashboardHandler serves the aggregate view spanning both collections.
type DashboardHandler struct {
	console *console.Console
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(c *console.Console) *DashboardHandler {
	return &DashboardHandler{console: c}
}

// Overview GET /api/dashboard recomputes stats and recency panels from the
// current snapshots.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.dashboard()})
}

// Refresh POST /api/refresh reloads both collections and returns the
// recomputed dashboard.
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	cmd := command.New(command.TypeRefreshRequested, nil)
	if err := h.console.Dispatch(c.Context(), cmd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.dashboard()})
}

func (h *DashboardHandler) dashboard() dto.DashboardResponse {
	stats, recent, overview := h.console.Dashboard(time.Now())
	return dto.DashboardResponse{
		Stats:              stats,
		RecentEmployees:    recent,
		DepartmentOverview: overview,
	}
}
