package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// UpstreamPinger probes HR API reachability.
type UpstreamPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	upstream    UpstreamPinger
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, upstream UpstreamPinger) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, upstream: upstream}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness by probing the upstream HR API.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if err := h.upstream.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"kind":    "TRANSPORT",
				"message": "upstream HR API unavailable",
				"details": fiber.Map{"upstream": err.Error()},
			},
		})
	}
	return c.JSON(fiber.Map{
		"status":       "ready",
		"dependencies": fiber.Map{"upstream": "ok"},
	})
}
