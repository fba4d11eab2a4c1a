package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/pronto/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		os.Clearenv()

		cfg, err := config.Load()
		require.NoError(t, err)
		require.NotNil(t, cfg)

		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 60, cfg.Server.WriteTimeout)
		require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		require.Equal(t, "info", cfg.Log.Level)
		require.Equal(t, 30*time.Second, cfg.Dispatch.Timeout)
		require.Equal(t, "https://api.openai.com/v1", cfg.Providers.OpenAIBaseURL)
		require.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
		require.Equal(t, 10, cfg.OpenAI.Timeout)
		require.Empty(t, cfg.Platform.ByProvider())
		require.Equal(t, "memory", cfg.Jobs.Backend)
		require.Equal(t, 24*time.Hour, cfg.Jobs.TTL)
		require.Equal(t, "pronto:job:", cfg.Jobs.RedisPrefix)
		require.False(t, cfg.Database.Enabled())
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DISPATCH_TIMEOUT", "45s")
		t.Setenv("PROVIDER_ANTHROPIC_BASE_URL", "http://anthropic.local")
		t.Setenv("PLATFORM_OPENAI_API_KEY", "sk-platform")
		t.Setenv("JOBS_BACKEND", "redis")
		t.Setenv("JOBS_TTL", "2h")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("DATABASE_URL", "postgres://pronto@db/pronto")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

		cfg, err := config.Load()
		require.NoError(t, err)

		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, 45*time.Second, cfg.Dispatch.Timeout)
		require.Equal(t, "http://anthropic.local", cfg.Providers.AnthropicBaseURL)
		require.Equal(t, "sk-platform", cfg.Platform.OpenAI)
		require.Equal(t, "redis", cfg.Jobs.Backend)
		require.Equal(t, 2*time.Hour, cfg.Jobs.TTL)
		require.Equal(t, "redis:6379", cfg.Jobs.RedisAddr)
		require.True(t, cfg.Database.Enabled())
		require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("should fail on malformed duration", func(t *testing.T) {
		t.Setenv("DISPATCH_TIMEOUT", "soon")

		_, err := config.Load()
		require.Error(t, err)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	t.Run("should expose pointers into the loaded config", func(t *testing.T) {
		cfg := &config.Config{}
		deps := config.ParseDependenciesConfig(cfg)

		require.Same(t, &cfg.Server, deps.Server)
		require.Same(t, &cfg.Jobs, deps.Jobs)
		require.Same(t, &cfg.Database, deps.Database)
	})
}
