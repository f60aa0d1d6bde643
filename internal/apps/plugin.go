package apps

import (
	"github.com/legacylifegroup/funnel-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Plugin defines the interface every feature module implements.
type Plugin interface {
	// ID returns the unique module identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts the module's public routes on the given Fiber
	// group. The group is already prefixed with /api.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

// AdminPlugin extends Plugin with admin-only route registration. The group
// passed to RegisterAdminRoutes has admin auth applied.
type AdminPlugin interface {
	Plugin

	RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}
