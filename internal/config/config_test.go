package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/fintrack")
	t.Setenv("PORT", "")
	t.Setenv("MONTHLY_LIMIT", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2000.0, cfg.MonthlyLimit)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MonthlyLimitFromEnv(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/fintrack")
	t.Setenv("MONTHLY_LIMIT", "50.0")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 50.0, cfg.MonthlyLimit)
}

func TestLoad_InvalidMonthlyLimitFallsBack(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/fintrack")
	t.Setenv("MONTHLY_LIMIT", "not-a-number")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 2000.0, cfg.MonthlyLimit)
}

func TestValidate_RejectsBadPort(t *testing.T) {
	cfg := &Config{Port: "99999", DatabaseURL: "postgres://localhost/db", MonthlyLimit: 2000}
	assert.Error(t, cfg.Validate())

	cfg.Port = "abc"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveLimit(t *testing.T) {
	cfg := &Config{Port: "8080", DatabaseURL: "postgres://localhost/db", MonthlyLimit: 0}
	assert.Error(t, cfg.Validate())
}
