package funnel

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

func (p *Plugin) ID() string { return "funnel" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&models.Lead{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	leadService := NewLeadService(db, p.registry, p.notifier)
	leadHandler := NewLeadHandler(leadService)

	router.Post("/leads", leadHandler.CaptureLead)
	router.Get("/leads", leadHandler.ListLeads)
}
