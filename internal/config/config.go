package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Database Configuration
	DatabaseURL string `env:"DATABASE_URL"`

	// reCAPTCHA Configuration. An empty secret disables verification so
	// submissions are never blocked by a missing deployment setting.
	RecaptchaSiteKey   string `env:"RECAPTCHA_SITE_KEY"`
	RecaptchaSecretKey string `env:"RECAPTCHA_SECRET_KEY"`

	// Email Configuration
	ContactInbox string `env:"CONTACT_INBOX"`
	FromAddr     string `env:"FROM_ADDR"`
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPSSL      bool   `env:"SMTP_SSL" envDefault:"false"`

	// CORS Configuration
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Retention Configuration. Zero disables the cleanup task.
	ContactRetentionDays int `env:"CONTACT_RETENTION_DAYS" envDefault:"0"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists
	// Try multiple locations for .env file
	envLocations := []string{
		"internal/config/env/.env.production",
		"internal/config/env/.env.development",
		".env",
	}

	// If ENV is set, try to load that specific file first
	envName := os.Getenv("ENV")
	if envName != "" {
		envLocations = append([]string{fmt.Sprintf("internal/config/env/.env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// EmailConfigured reports whether outbound email can be sent
func (c *Config) EmailConfigured() bool {
	return c.SMTPHost != "" && c.ContactInbox != ""
}
