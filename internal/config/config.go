package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Sweep    SweepConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds database connection settings. URL is optional: with
// no database configured the service runs cache-only.
type DatabaseConfig struct {
	URL string
}

// SweepConfig holds sweep execution settings
type SweepConfig struct {
	Concurrency int64
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Sweep: SweepConfig{
			Concurrency: getEnvInt64("SWEEP_CONCURRENCY", 4),
		},
	}
}

// HasDatabase reports whether durable storage is configured
func (c *Config) HasDatabase() bool {
	return c.Database.URL != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
