package adminpanel

import (
	"errors"
	"log/slog"
	"time"

	"github.com/legacylifegroup/funnel-backend/internal/brand"
	"github.com/legacylifegroup/funnel-backend/internal/dto"
	"github.com/legacylifegroup/funnel-backend/internal/mail"
	"github.com/legacylifegroup/funnel-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminHandler struct {
	leadService      *LeadAdminService
	dashboardService *DashboardService
}

func NewAdminHandler(leadService *LeadAdminService, dashboardService *DashboardService) *AdminHandler {
	return &AdminHandler{leadService: leadService, dashboardService: dashboardService}
}

// ListLeads handles GET /api/admin/leads-data.
func (h *AdminHandler) ListLeads(c *fiber.Ctx) error {
	result, err := h.leadService.List(ListParams{
		Search: c.Query("searchTerm"),
		Status: c.Query("statusFilter"),
		Brand:  c.Query("brandFilter"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 25),
	})
	if err != nil {
		slog.Error("admin lead list failed", "action", "admin_list_leads", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to fetch leads"))
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// GetLead handles GET /api/admin/leads/:leadId.
func (h *AdminHandler) GetLead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("leadId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid lead ID"))
	}

	lead, err := h.leadService.Get(id)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Lead not found"))
		}
		slog.Error("admin lead fetch failed", "action", "admin_get_lead", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to fetch lead"))
	}
	return c.JSON(fiber.Map{"success": true, "data": lead})
}

// UpdateLead handles PUT /api/admin/leads/:leadId with body { updateData: {...} }.
func (h *AdminHandler) UpdateLead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("leadId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid lead ID"))
	}

	var req struct {
		UpdateData dto.LeadUpdate `json:"updateData"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	lead, err := h.leadService.Update(id, req.UpdateData)
	if err != nil {
		switch {
		case errors.Is(err, ErrLeadNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Lead not found"))
		case errors.Is(err, ErrInvalidGrade) || errors.Is(err, ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		slog.Error("admin lead update failed", "action", "admin_update_lead", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to update lead"))
	}
	return c.JSON(fiber.Map{"success": true, "data": lead})
}

// Dashboard handles GET /api/admin/dashboard?timeRange=&selectedBrand=.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	timeRange := c.Query("timeRange", "week")
	switch timeRange {
	case "today", "week", "month":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("timeRange must be today, week or month"))
	}

	metrics, err := h.dashboardService.Metrics(timeRange, c.Query("selectedBrand", "all"))
	if err != nil {
		slog.Error("dashboard aggregation failed", "action", "admin_dashboard", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to compute dashboard metrics"))
	}
	return c.JSON(fiber.Map{"success": true, "data": metrics})
}

// --- Email templates ---

type TemplateHandler struct {
	db *gorm.DB
}

func NewTemplateHandler(db *gorm.DB) *TemplateHandler {
	return &TemplateHandler{db: db}
}

// GetTemplates handles GET /api/admin/email-templates. Keys without a
// stored row come back as their hardcoded default.
func (h *TemplateHandler) GetTemplates(c *fiber.Ctx) error {
	templates := make([]fiber.Map, 0, len(mail.DefaultTemplates))
	for _, key := range []string{models.TemplateClientCompletion, models.TemplateRepCompletion} {
		var tmpl models.EmailTemplate
		isDefault := false
		if err := h.db.Where("template_id = ?", key).First(&tmpl).Error; err != nil {
			tmpl = mail.DefaultTemplates[key]
			isDefault = true
		}
		templates = append(templates, fiber.Map{
			"template_id": key,
			"subject":     tmpl.Subject,
			"html_body":   tmpl.HTMLBody,
			"is_default":  isDefault,
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": templates})
}

// PutTemplate handles PUT /api/admin/email-templates.
func (h *TemplateHandler) PutTemplate(c *fiber.Ctx) error {
	var payload struct {
		TemplateID string `json:"template_id"`
		Subject    string `json:"subject"`
		HTMLBody   string `json:"html_body"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if _, known := mail.DefaultTemplates[payload.TemplateID]; !known {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Unknown template_id: " + payload.TemplateID))
	}
	if payload.Subject == "" || payload.HTMLBody == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("subject and html_body are required"))
	}

	var tmpl models.EmailTemplate
	err := h.db.Where("template_id = ?", payload.TemplateID).First(&tmpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tmpl = models.EmailTemplate{
			TemplateID: payload.TemplateID,
			Subject:    payload.Subject,
			HTMLBody:   payload.HTMLBody,
		}
		if err := h.db.Create(&tmpl).Error; err != nil {
			slog.Error("template create failed", "action", "put_template", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to save template"))
		}
	} else if err != nil {
		slog.Error("template query failed", "action", "put_template", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to save template"))
	} else {
		tmpl.Subject = payload.Subject
		tmpl.HTMLBody = payload.HTMLBody
		tmpl.UpdatedAt = time.Now()
		if err := h.db.Save(&tmpl).Error; err != nil {
			slog.Error("template update failed", "action", "put_template", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to save template"))
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": tmpl})
}

// --- Email test utility ---

type EmailTestHandler struct {
	notifier *mail.Notifier
	registry *brand.Registry
}

func NewEmailTestHandler(notifier *mail.Notifier, registry *brand.Registry) *EmailTestHandler {
	return &EmailTestHandler{notifier: notifier, registry: registry}
}

// Status handles GET /api/admin/email-test.
func (h *EmailTestHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"configured": h.notifier.IsConfigured(),
	})
}

// Send handles POST /api/admin/email-test with body { to, brand_id }.
func (h *EmailTestHandler) Send(c *fiber.Ctx) error {
	var payload struct {
		To      string `json:"to"`
		BrandID string `json:"brand_id"`
	}
	if err := c.BodyParser(&payload); err != nil || payload.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Recipient address is required"))
	}

	b, err := h.registry.Resolve(payload.BrandID)
	if err != nil {
		b = nil
	}

	result := h.notifier.SendTest(payload.To, b)
	return c.JSON(fiber.Map{"success": !result.Failed, "result": result})
}
