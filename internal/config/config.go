package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config collects every environment knob the server reads. Values come
// from the process environment; cmd/api loads a .env file first.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	RabbitMQURL string
	CORSOrigins []string
	SessionTTL  time.Duration

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string
}

func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
		SessionTTL:  24 * time.Hour,

		MailHost: os.Getenv("MAIL_HOST"),
		MailPort: getEnvInt("MAIL_PORT", 587),
		MailUser: os.Getenv("MAIL_USER"),
		MailPass: os.Getenv("MAIL_PASS"),
		MailFrom: getEnv("MAIL_FROM", "no-reply@leaddesk.local"),
	}

	origins := getEnv("CORS_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if ttl := os.Getenv("SESSION_TTL_HOURS"); ttl != "" {
		if hours, err := strconv.Atoi(ttl); err == nil && hours > 0 {
			cfg.SessionTTL = time.Duration(hours) * time.Hour
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
