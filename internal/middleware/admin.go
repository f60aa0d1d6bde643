package middleware

import (
	"crypto/subtle"

	"github.com/legacylifegroup/funnel-backend/internal/config"
	"github.com/legacylifegroup/funnel-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AdminRequired guards the admin panel routes. Two ways in:
// 1. X-Admin-Token static token (server-to-server, cron).
// 2. A JWT from POST /api/admin/login carrying role=admin.
func AdminRequired(cfg *config.Config) fiber.Handler {
	jwtHandler := jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok || token == nil {
				return unauthorized(c)
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c)
			}
			if role, _ := claims["role"].(string); role != "admin" {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Error: true, Message: "Admin access required",
				})
			}
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
	})

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" {
			header := c.Get("X-Admin-Token")
			if header != "" && subtle.ConstantTimeCompare([]byte(header), []byte(cfg.AdminToken)) == 1 {
				return c.Next()
			}
		}
		return jwtHandler(c)
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}
