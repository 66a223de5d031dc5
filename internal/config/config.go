package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	DatabaseURL string

	RedisURL string

	JWTSecret string

	CORSOrigins string

	ResendAPIKey       string
	FromEmail          string
	Domain             string
	NotifyEmailEnabled bool

	RateLimitMax    int
	RateLimitWindow time.Duration
	RateLimitStore  string

	FeedTake int

	OutboxInterval    time.Duration
	OutboxMaxAttempts int
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		FromEmail:          getEnv("FROM_EMAIL", "noreply@example.com"),
		Domain:             getEnv("DOMAIN", "localhost:3000"),
		NotifyEmailEnabled: getBoolEnv("NOTIFY_EMAIL_ENABLED", false),

		RateLimitMax:    getIntEnv("RATE_LIMIT_MAX", 10),
		RateLimitWindow: getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitStore:  getEnv("RATE_LIMIT_STORE", "redis"),

		FeedTake: getIntEnv("FEED_TAKE", 20),

		OutboxInterval:    getDurationEnv("OUTBOX_INTERVAL", 30*time.Second),
		OutboxMaxAttempts: getIntEnv("OUTBOX_MAX_ATTEMPTS", 5),
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
