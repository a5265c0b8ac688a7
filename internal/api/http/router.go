package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-console/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Dashboard     *handlers.DashboardHandler
	Employees     *handlers.EmployeesHandler
	Departments   *handlers.DepartmentsHandler
	Notifications *handlers.NotificationsHandler
}

// RegisterRoutes wires the console HTTP surface.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/dashboard", cfg.Dashboard.Overview)
	api.Get("/notifications", cfg.Notifications.List)
	api.Post("/refresh", cfg.Dashboard.Refresh)

	employees := api.Group("/employees")
	employees.Get("/", cfg.Employees.List)
	employees.Post("/search", cfg.Employees.Search)
	employees.Post("/filter", cfg.Employees.Filter)
	employees.Get("/editor", cfg.Employees.EditorState)
	employees.Post("/editor", cfg.Employees.OpenEditor)
	employees.Post("/editor/cancel", cfg.Employees.CancelEditor)
	employees.Post("/", cfg.Employees.Submit)
	employees.Delete("/:id", cfg.Employees.Remove)

	departments := api.Group("/departments")
	departments.Get("/", cfg.Departments.List)
	departments.Get("/editor", cfg.Departments.EditorState)
	departments.Post("/editor", cfg.Departments.OpenEditor)
	departments.Post("/editor/cancel", cfg.Departments.CancelEditor)
	departments.Post("/", cfg.Departments.Submit)
	departments.Delete("/:id", cfg.Departments.Remove)
}
