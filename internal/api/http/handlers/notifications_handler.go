package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-console/internal/console"
)

// NotificationsHandler serves the active toast queue.
type NotificationsHandler struct {
	console *console.Console
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(c *console.Console) *NotificationsHandler {
	return &NotificationsHandler{console: c}
}

// List GET /api/notifications returns the unexpired notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.console.Notifications(time.Now())})
}
