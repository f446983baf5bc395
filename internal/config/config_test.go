package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DefaultBanner, cfg.Banner)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "./database.sqlite", cfg.Database.Path)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "8081")
	t.Setenv("DB_PATH", "/tmp/catalog.sqlite")
	t.Setenv("DB_READ_ONLY", "true")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "/tmp/catalog.sqlite", cfg.Database.Path)
	assert.True(t, cfg.Database.ReadOnly)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched defaults survive the env layer
	assert.Equal(t, "5432", cfg.Database.Port)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "4000"
banner: hello
database:
  driver: postgres
  host: db.internal
  user: catalog
  name: foodie
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_HOST", "override.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "hello", cfg.Banner)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "override.internal", cfg.Database.Host)
	assert.Equal(t, "catalog", cfg.Database.User)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *AppConfig) {}},
		{name: "driver is case-insensitive", mutate: func(c *AppConfig) { c.Database.Driver = "SQLite" }},
		{name: "empty port", mutate: func(c *AppConfig) { c.Port = "" }, wantErr: true},
		{name: "sqlite without path", mutate: func(c *AppConfig) { c.Database.Path = "" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *AppConfig) { c.Database.Driver = "mysql" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
