package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultMonthlyLimit = 2000.0

type Config struct {
	// HTTP server
	Port string

	// Database
	DatabaseURL string

	// Business rules. MonthlyLimit caps the total Expense amount a user may
	// record per calendar month; read once at startup, no hot reload.
	MonthlyLimit float64
}

// Load reads configuration from the environment. A .env file is honored when
// present, otherwise the process environment is used as-is.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DB_CONNECTION_STRING"),
		MonthlyLimit: getEnvFloat("MONTHLY_LIMIT", defaultMonthlyLimit),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("missing DB_CONNECTION_STRING in environment variables")
	}
	if port, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port '%s': must be a number", c.Port)
	} else if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	if c.MonthlyLimit <= 0 {
		return fmt.Errorf("invalid monthly limit %v: must be a positive decimal", c.MonthlyLimit)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("invalid value for %s: %q, using default %v", key, value, fallback)
		return fallback
	}
	return parsed
}
