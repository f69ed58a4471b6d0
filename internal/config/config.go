// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	SessionSecret string `env:"SESSION_SECRET,required,notEmpty"`

	Port int    `env:"PORT" envDefault:"8080"`
	Env  string `env:"APP_ENV" envDefault:"development"`

	RedisAddr     string `env:"REDIS_ADDR,required,notEmpty"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Seed admin account, created on first boot when admin_users is empty.
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@hopebridge.org"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM"`
	MailTo       string `env:"MAIL_TO"`

	WorkerCount int `env:"WORKER_COUNT" envDefault:"1"`
}

// loadDotenv 可於測試中覆寫
var loadDotenv = godotenv.Load

// Load reads .env (when present) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = loadDotenv()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment returns true when diagnostics may be echoed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
