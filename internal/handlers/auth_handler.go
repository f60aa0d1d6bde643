package handlers

import (
	"log/slog"
	"time"

	"github.com/legacylifegroup/funnel-backend/internal/config"
	"github.com/legacylifegroup/funnel-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues admin tokens. There is a single admin identity; the
// password hash lives in the environment, not the database.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if h.cfg.AdminPasswordHash == "" || h.cfg.JWTSecret == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Admin login is not configured"))
	}

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Password is required"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		slog.Warn("admin login rejected", "ip", c.IP())
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Invalid password"))
	}

	expiresAt := time.Now().Add(h.cfg.JWTAccessExpiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	})

	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		slog.Error("token signing failed", "action", "admin_login", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to issue token"))
	}

	return c.JSON(dto.LoginResponse{Token: signed, ExpiresAt: expiresAt})
}
