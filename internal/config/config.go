package config

import (
	"log/slog"
	"os"
)

type Config struct {
	// Remote pizzeria API consumed by this client
	APIBaseURL string

	// Secret used to authenticate the flash (toast) cookie
	FlashSecret string

	// Server
	ListenAddr  string
	Environment string // development, staging, production
}

func Load() *Config {
	return &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:3333"),
		FlashSecret: getEnv("FLASH_SECRET", "change-me-before-production"),
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LogLevel returns the slog level for the environment, debug everywhere
// except production.
func (c *Config) LogLevel() slog.Level {
	if c.IsProduction() {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
