package handlers

import (
	"github.com/legacylifegroup/funnel-backend/internal/brand"
	"github.com/legacylifegroup/funnel-backend/internal/database"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	registry *brand.Registry
}

func NewHealthHandler(registry *brand.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "ok"
	code := fiber.StatusOK
	if err := database.Ping(); err != nil {
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"brands": len(h.registry.All()),
	})
}
