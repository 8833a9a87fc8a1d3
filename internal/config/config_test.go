package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"SERVER_PORT", "LOG_LEVEL", "LOG_FILE", "CORS_ALLOWED_ORIGINS",
	"JWT_SECRET", "JWT_EXPIRY", "USER_ID", "TIMEZONE", "SEED_FILE", "DAY_ROLLOVER_SCHEDULE", "RATE_LIMIT_PER_MINUTE",
}

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
	for key, value := range env {
		t.Setenv(key, value)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{"JWT_SECRET": "secret"})

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.HasDatabase())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Len(t, cfg.Progress.UserID, 36)
	assert.Equal(t, time.UTC, cfg.Progress.Location)
	assert.Equal(t, "0 0 * * *", cfg.Progress.RolloverSchedule)
	assert.Equal(t, 100, cfg.RateLimit)
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"DB_HOST":               "db",
		"DB_USER":               "learn",
		"DB_PASSWORD":           "pw",
		"DB_NAME":               "learnpath",
		"SERVER_PORT":           "9090",
		"LOG_LEVEL":             "debug",
		"LOG_FILE":              "/tmp/app.log",
		"CORS_ALLOWED_ORIGINS":  "http://a.test, ,http://b.test",
		"JWT_SECRET":            "secret",
		"JWT_EXPIRY":            "1h",
		"USER_ID":               "7f1d8d3e-5c2a-4f4e-9d35-0f3c8f3d9a11",
		"TIMEZONE":              "Europe/Berlin",
		"SEED_FILE":             "seed.yaml",
		"DAY_ROLLOVER_SCHEDULE": "5 0 * * *",
		"RATE_LIMIT_PER_MINUTE": "30",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.HasDatabase())
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "learn:pw@tcp(db:3306)/learnpath?parseTime=true&charset=utf8mb4", cfg.DSN())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/app.log", cfg.Logging.File)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "7f1d8d3e-5c2a-4f4e-9d35-0f3c8f3d9a11", cfg.Progress.UserID)
	assert.Equal(t, "Europe/Berlin", cfg.Progress.Location.String())
	assert.Equal(t, "seed.yaml", cfg.Progress.SeedFile)
	assert.Equal(t, "5 0 * * *", cfg.Progress.RolloverSchedule)
	assert.Equal(t, 30, cfg.RateLimit)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		expectedError string
	}{
		{
			name:          "missing jwt secret",
			env:           map[string]string{},
			expectedError: "JWT_SECRET is required",
		},
		{
			name:          "invalid server port",
			env:           map[string]string{"JWT_SECRET": "s", "SERVER_PORT": "abc"},
			expectedError: "invalid SERVER_PORT",
		},
		{
			name:          "database without user",
			env:           map[string]string{"JWT_SECRET": "s", "DB_HOST": "db", "DB_NAME": "x"},
			expectedError: "DB_USER is required",
		},
		{
			name:          "database without name",
			env:           map[string]string{"JWT_SECRET": "s", "DB_HOST": "db", "DB_USER": "u"},
			expectedError: "DB_NAME is required",
		},
		{
			name:          "invalid expiry",
			env:           map[string]string{"JWT_SECRET": "s", "JWT_EXPIRY": "tomorrow"},
			expectedError: "invalid JWT_EXPIRY",
		},
		{
			name:          "negative expiry",
			env:           map[string]string{"JWT_SECRET": "s", "JWT_EXPIRY": "-1h"},
			expectedError: "JWT_EXPIRY must be positive",
		},
		{
			name:          "invalid user id",
			env:           map[string]string{"JWT_SECRET": "s", "USER_ID": "user1"},
			expectedError: "invalid USER_ID",
		},
		{
			name:          "invalid timezone",
			env:           map[string]string{"JWT_SECRET": "s", "TIMEZONE": "Mars/Olympus"},
			expectedError: "invalid TIMEZONE",
		},
		{
			name:          "zero rate limit",
			env:           map[string]string{"JWT_SECRET": "s", "RATE_LIMIT_PER_MINUTE": "0"},
			expectedError: "RATE_LIMIT_PER_MINUTE must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			cfg, err := Load()

			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tt.expectedError)
		})
	}
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, parseOrigins(""))
	assert.Equal(t, []string{"*"}, parseOrigins(" , "))
	assert.Equal(t, []string{"http://x"}, parseOrigins("http://x"))
}
