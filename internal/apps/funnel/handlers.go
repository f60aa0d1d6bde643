package funnel

import (
	"errors"
	"log/slog"
	"time"

	"github.com/legacylifegroup/funnel-backend/internal/brand"
	"github.com/legacylifegroup/funnel-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type LeadHandler struct {
	leadService *LeadService
}

func NewLeadHandler(leadService *LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CaptureLead handles POST /api/leads. Each funnel step calls it with the
// cumulative answer set; the response reports whether the session's row was
// created or updated.
func (h *LeadHandler) CaptureLead(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.CaptureLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	lead, operation, err := h.leadService.Upsert(req.LeadData)
	if err != nil {
		latency := float64(time.Since(start).Milliseconds())
		if errors.Is(err, brand.ErrNoActiveBrand) {
			slog.Error("lead capture failed, no active brand",
				"session_id", req.LeadData.SessionID, "action", "capture_lead",
				"error", err, "latency_ms", latency)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("No active brand configured"))
		}
		slog.Error("lead capture failed",
			"session_id", req.LeadData.SessionID, "brand_id", req.LeadData.BrandID,
			"action", "capture_lead", "error", err, "latency_ms", latency)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to save lead"))
	}

	return c.JSON(dto.CaptureLeadResponse{
		Success:   true,
		Data:      lead,
		Operation: operation,
	})
}

// ListLeads handles GET /api/leads?session_id=&brand_id=.
func (h *LeadHandler) ListLeads(c *fiber.Ctx) error {
	leads, err := h.leadService.List(c.Query("session_id"), c.Query("brand_id"))
	if err != nil {
		slog.Error("lead list failed", "action", "list_leads", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to fetch leads"))
	}
	return c.JSON(fiber.Map{"success": true, "data": leads})
}
