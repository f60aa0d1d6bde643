package adminpanel

import (
	"github.com/legacylifegroup/funnel-backend/internal/brand"
	"github.com/legacylifegroup/funnel-backend/internal/config"
	"github.com/legacylifegroup/funnel-backend/internal/mail"
	"github.com/legacylifegroup/funnel-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Plugin struct {
	registry *brand.Registry
	notifier *mail.Notifier
}

func New(registry *brand.Registry, notifier *mail.Notifier) *Plugin {
	return &Plugin{registry: registry, notifier: notifier}
}

func (p *Plugin) ID() string { return "adminpanel" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&models.Application{},
	}
}

// RegisterRoutes is a no-op; every adminpanel route is admin-only.
func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	leadService := NewLeadAdminService(db, p.registry)
	dashboardService := NewDashboardService(db, p.registry)

	adminHandler := NewAdminHandler(leadService, dashboardService)
	templateHandler := NewTemplateHandler(db)
	emailTestHandler := NewEmailTestHandler(p.notifier, p.registry)

	router.Get("/leads-data", adminHandler.ListLeads)
	router.Get("/leads/:leadId", adminHandler.GetLead)
	router.Put("/leads/:leadId", adminHandler.UpdateLead)
	router.Get("/dashboard", adminHandler.Dashboard)

	router.Get("/email-templates", templateHandler.GetTemplates)
	router.Put("/email-templates", templateHandler.PutTemplate)

	router.Get("/email-test", emailTestHandler.Status)
	router.Post("/email-test", emailTestHandler.Send)
}
