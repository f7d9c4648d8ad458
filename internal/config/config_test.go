package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veterinaria-api/internal/platform/logger"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, ":3001", cfg.Addr())
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "postgres", cfg.DB.User)
	assert.Equal(t, "", cfg.DB.Password)
	assert.Equal(t, "veterinaria", cfg.DB.Name)
	assert.Equal(t, 10, cfg.DB.MaxOpenConns)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, logger.Info, cfg.LogLevel)
	assert.Equal(t, logger.FormatText, cfg.LogFormat)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"PORT":                 "8080",
		"STORAGE_DRIVER":       "MEMORY",
		"DB_HOST":              "db",
		"DB_PORT":              "6543",
		"DB_USER":              "vet",
		"DB_PASSWORD":          "s3cr et",
		"DB_MAX_OPEN_CONNS":    "4",
		"CORS_ALLOWED_ORIGINS": "http://localhost:5173, http://localhost:3000",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "json",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "s3cr et", cfg.DB.Password)
	assert.Equal(t, 4, cfg.DB.MaxOpenConns)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, logger.Debug, cfg.LogLevel)
	assert.Equal(t, logger.FormatJSON, cfg.LogFormat)
	assert.Equal(t, "postgres://vet:s3cr%20et@db:6543/veterinaria?sslmode=disable", cfg.DB.BuildDSN())
}

func TestFromLookup_DSNWins(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"DB_DSN":  "postgres://u:p@h:1/x",
		"DB_HOST": "ignored",
	}))
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h:1/x", cfg.DB.BuildDSN())
}

func TestFromLookup_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"db port":   {"DB_PORT": "abc"},
		"max conns": {"DB_MAX_OPEN_CONNS": "0"},
		"port":      {"PORT": "http"},
		"storage":   {"STORAGE_DRIVER": "mysql"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(env))
			assert.Error(t, err)
		})
	}
}
