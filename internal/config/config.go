package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	AppEnv    string
	Debug     bool
	Version   string
	Port      int
	SentryDSN string
	// MongoURL points at the activity store written by the bot process.
	MongoURL string
	// DatabaseURL points at the moderation store (bans and admins).
	DatabaseURL string
	IndexFile   string
	Prefork     bool
}

// LoadConfig loads configuration from environment variables.
// It attempts to load a .env file if present but prioritizes
// actual environment variables set in the system (e.g., by Docker).
func LoadConfig() (*Config, error) {
	// Load .env file if it exists (useful for development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	debug, _ := strconv.ParseBool(getEnv("DEBUG", "false"))
	prefork, _ := strconv.ParseBool(getEnv("PREFORK", "false"))

	port, err := strconv.Atoi(getEnv("PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Debug:       debug,
		Version:     getEnv("VERSION", "dev"),
		Port:        port,
		SentryDSN:   getEnv("SENTRY_DSN", ""),
		MongoURL:    getEnv("MONGO_URL", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		IndexFile:   getEnv("INDEX_FILE", "web/index.html"),
		Prefork:     prefork,
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SentryDSN == "" {
		log.Println("Warning: SENTRY_DSN is not set. Error tracking disabled.")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
