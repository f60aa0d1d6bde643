package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/legacylifegroup/funnel-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	admin := app.Group("/admin", AdminRequired(cfg))
	admin.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdminRequiredRejectsAnonymous(t *testing.T) {
	app := protectedApp(&config.Config{JWTSecret: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRequiredAcceptsStaticToken(t *testing.T) {
	app := protectedApp(&config.Config{JWTSecret: "secret", AdminToken: "static-token"})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-Admin-Token", "static-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRequiredRejectsWrongStaticToken(t *testing.T) {
	app := protectedApp(&config.Config{JWTSecret: "secret", AdminToken: "static-token"})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRequiredAcceptsAdminJWT(t *testing.T) {
	app := protectedApp(&config.Config{JWTSecret: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", "admin"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRequiredRejectsNonAdminRole(t *testing.T) {
	app := protectedApp(&config.Config{JWTSecret: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", "viewer"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminRequiredRejectsForgedSignature(t *testing.T) {
	app := protectedApp(&config.Config{JWTSecret: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "admin"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
