package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is built once in main and injected everywhere. Secrets come from
// the environment only; nothing is embedded in source.
type Config struct {
	Port        string
	DatabaseURL string
	RabbitMQURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailFromName string

	StripeSecretKey string

	AllowedOrigins []string
}

// Load reads .env (if present) and the process environment. DATABASE_URL is
// the only hard requirement; collaborators degrade gracefully when their
// settings are absent.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RabbitMQURL:     os.Getenv("RABBITMQ_URL"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		MailFrom:        getEnv("MAIL_FROM", "no-reply@flyfoxai.com"),
		MailFromName:    getEnv("MAIL_FROM_NAME", "FLYFOX AI"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) MailConfigured() bool {
	return c.SMTPHost != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
