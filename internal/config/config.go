package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string
	WeakThreshold  int
	DrillCount     int
	ReminderTime   string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	return &Config{
		DatabaseType:   getEnv("HIFZ_DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("HIFZ_DB_PATH", "./hifz.db"),
		DatabaseURL:    getEnv("HIFZ_DB_URL", ""),
		MigrationsPath: getEnv("HIFZ_MIGRATIONS_PATH", "./migrations"),
		WeakThreshold:  getEnvInt("HIFZ_WEAK_THRESHOLD", 3),
		DrillCount:     getEnvInt("HIFZ_DRILL_COUNT", 5),
		ReminderTime:   getEnv("HIFZ_REMINDER_TIME", "07:00"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads a positive integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
