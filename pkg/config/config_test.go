package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "haru-ops", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, int64(5*1024*1024), cfg.Storage.MaxUploadBytes())
	assert.True(t, cfg.DB.AutoMigrate)
	assert.False(t, cfg.DB.ForceIPv4)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Empty(t, cfg.Linen.CatalogFile)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LINEN_CATALOG_FILE", "/etc/haru/catalog.yaml")
	t.Setenv("STORAGE_PUBLIC_BASE_URL", "https://ops.haru.example/")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/etc/haru/catalog.yaml", cfg.Linen.CatalogFile)
	assert.Equal(t, "https://ops.haru.example", cfg.Storage.PublicBaseURL)
}

func TestValidate_SecretObligatorioFueraDeDesarrollo(t *testing.T) {
	cfg := &config.Config{
		App:     config.AppConfig{Env: "production"},
		DB:      config.DBConfig{MaxConns: 10, MinConns: 1},
		JWT:     config.JWTConfig{Expiration: 60},
		HTTP:    config.HTTPConfig{Port: 8080},
		Storage: config.StorageConfig{MaxUploadMB: 5},
	}
	assert.Error(t, cfg.Validate())

	cfg.App.Env = "development"
	assert.NoError(t, cfg.Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "haru", Password: "p@ss:word", DBName: "haru", SSLMode: "disable"}
	assert.Equal(t, "postgres://haru:p%40ss%3Aword@db:5432/haru?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", db.ConnectionString())
}

func TestValidate_PoolInvalido(t *testing.T) {
	cfg := &config.Config{
		App:     config.AppConfig{Env: "development"},
		DB:      config.DBConfig{MaxConns: 2, MinConns: 5},
		JWT:     config.JWTConfig{Expiration: 60},
		HTTP:    config.HTTPConfig{Port: 8080},
		Storage: config.StorageConfig{MaxUploadMB: 5},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")
}
