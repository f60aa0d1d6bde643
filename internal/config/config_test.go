package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 12*time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, 30*time.Second, cfg.QuoteTimeout)
	assert.Equal(t, "brands.json", cfg.BrandsConfigPath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_ACCESS_EXPIRY", "1h")
	t.Setenv("MAIL_API_KEY", "re_test")

	cfg := Load()
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, time.Hour, cfg.JWTAccessExpiry)
	assert.True(t, cfg.MailConfigured())
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "localhost", DBPort: "5432", DBUser: "postgres",
		DBPassword: "pw", DBName: "funnel_db", DBSSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost user=postgres password=pw dbname=funnel_db port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}

func TestQuoteConfiguredNeedsBoth(t *testing.T) {
	cfg := &Config{QuoteAPIURL: "https://carrier.example.com"}
	assert.False(t, cfg.QuoteConfigured())

	cfg.QuoteAPIHeaders = `{"X-Api-Key":"k"}`
	assert.True(t, cfg.QuoteConfigured())
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, 15*time.Minute, parseDuration("garbage"))
	assert.Equal(t, 90*time.Second, parseDuration("90s"))
}
