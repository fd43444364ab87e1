package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultLLMModel, cfg.LLM.Model)
	assert.Equal(t, 20*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowOrigins)
	assert.False(t, cfg.LLM.IsConfigured())
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_API_KEY", "secret")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_PER_SECOND", "3")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.LLM.IsConfigured())
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_GeminiKeyFallback(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini-secret")

	cfg := Load()

	assert.Equal(t, "gemini-secret", cfg.LLM.APIKey)
}

func TestLoad_InvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("DB_MAX_CONNECTIONS", "many")
	t.Setenv("LLM_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 10, cfg.Database.MaxConnections)
	assert.Equal(t, 20*time.Second, cfg.LLM.Timeout)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Load()
	cfg.Server.Port = "abc"
	cfg.Database.Driver = "mysql"
	cfg.Security.RateLimitBurst = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 'abc'")
	assert.Contains(t, err.Error(), "invalid DB_DRIVER 'mysql'")
	assert.Contains(t, err.Error(), "RATE_LIMIT_BURST")
}

func TestValidate_PostgresRequiresHost(t *testing.T) {
	cfg := Load()
	cfg.Database.Driver = DriverPostgres
	cfg.Database.Host = ""

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())
}
