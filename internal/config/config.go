package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Admin auth
	JWTSecret         string
	JWTAccessExpiry   time.Duration
	AdminPasswordHash string
	AdminToken        string
	AdminEmail        string

	// Transactional mail
	MailAPIKey   string
	MailAPIURL   string
	MailFromAddr string

	// IUL illustration API
	QuoteAPIURL     string
	QuoteAPIHeaders string
	QuoteTimeout    time.Duration

	// Server
	Port        string
	CORSOrigins string

	// Brand registry
	BrandsConfigPath string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "funnel_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:   parseDuration(getEnv("JWT_ACCESS_EXPIRY", "12h")),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminToken:        getEnv("ADMIN_TOKEN", ""),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),

		MailAPIKey:   getEnv("MAIL_API_KEY", ""),
		MailAPIURL:   getEnv("MAIL_API_URL", "https://api.resend.com/emails"),
		MailFromAddr: getEnv("MAIL_FROM_ADDR", "no-reply@legacylifegroup.com"),

		QuoteAPIURL:     getEnv("QUOTE_API_URL", ""),
		QuoteAPIHeaders: getEnv("QUOTE_API_HEADERS", ""),
		QuoteTimeout:    parseDuration(getEnv("QUOTE_API_TIMEOUT", "30s")),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		BrandsConfigPath: getEnv("BRANDS_CONFIG_PATH", "brands.json"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// MailConfigured reports whether the transactional mail integration has a
// credential. Absence degrades sends to a skipped no-op, never an error.
func (c *Config) MailConfigured() bool {
	return c.MailAPIKey != ""
}

// QuoteConfigured reports whether the illustration API is reachable.
// Absence degrades quotes to a mocked payload.
func (c *Config) QuoteConfigured() bool {
	return c.QuoteAPIURL != "" && c.QuoteAPIHeaders != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}
