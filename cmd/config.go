package cmd

import (
	"os"
	"time"

	"github.com/spf13/cast"
)

// Config carries every startup setting. Values come from the environment,
// optionally seeded from a .env file by main.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	TokenTTL  time.Duration

	AdminUsername     string
	AdminPasswordHash string

	ArtifactDir    string
	StaleThreshold time.Duration

	Debug bool
}

// LoadConfig reads the configuration from the environment, applying defaults
// for everything that has a sensible one. Secrets have no defaults.
func LoadConfig() Config {
	return Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envOr("DB_NAME", "kabalen"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  cast.ToDuration(envOr("TOKEN_TTL", "12h")),

		AdminUsername:     envOr("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		ArtifactDir:    envOr("ARTIFACT_DIR", "uploads"),
		StaleThreshold: cast.ToDuration(envOr("STALE_THRESHOLD", "30m")),

		Debug: cast.ToBool(envOr("DEBUG", "false")),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
