package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "tienda-pos", cfg.App.Name)
	assert.Equal(t, config.StorePostgres, cfg.Store.Driver)
	assert.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "sequential", cfg.Catalog.SKUPolicy)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "Mi Tienda", cfg.Business.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.True(t, cfg.DB.PreferIPv4)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "15")
	t.Setenv("REPORT_CACHE_TTL", "90s")
	t.Setenv("AI_PROVIDER", "Anthropic")
	t.Setenv("BUSINESS_RTN", "08011999000001")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_PREFER_IPV4", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreMemory, cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, "08011999000001", cfg.Business.RTN)
	assert.Equal(t, 4, cfg.DB.MaxConns)
	assert.False(t, cfg.DB.PreferIPv4)
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{
		App:   config.AppConfig{Env: "production"},
		Store: config.StoreConfig{Driver: "sqlite"},
		JWT:   config.JWTConfig{Expiration: 0},
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"JWT_SECRET", "STORE_DRIVER", "HTTP_REQUEST_TIMEOUT", "JWT_EXPIRATION_MINUTES"} {
		assert.Contains(t, err.Error(), want)
	}

	cfg = &config.Config{
		App:   config.AppConfig{Env: "development"},
		Store: config.StoreConfig{Driver: config.StoreMemory},
		JWT:   config.JWTConfig{Expiration: 60},
		HTTP:  config.HTTPConfig{RequestTimeout: time.Second},
	}
	assert.NoError(t, cfg.Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "pos", Password: "p@ss:word", DBName: "tienda", SSLMode: "disable"}
	assert.Equal(t, "postgres://pos:p%40ss%3Aword@db:5432/tienda?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgresql://otro"
	assert.Equal(t, "postgresql://otro", db.ConnectionString())
}
