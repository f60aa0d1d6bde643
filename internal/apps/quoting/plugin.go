package quoting

import (
	"github.com/legacylifegroup/funnel-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "quoting" }

func (p *Plugin) Models() []interface{} { return nil }

// RegisterRoutes is a no-op; quoting only exposes an admin route.
func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	quoteService := NewQuoteService(cfg.QuoteAPIURL, cfg.QuoteAPIHeaders, cfg.QuoteTimeout)
	quoteHandler := NewQuoteHandler(quoteService)

	router.Post("/iul-quote", quoteHandler.GetQuote)
}
