package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/pronto/internal/credentials"
	"github.com/davidbz/pronto/internal/jobs"
	"github.com/davidbz/pronto/internal/observability"
	"github.com/davidbz/pronto/internal/provider/openai"
	"github.com/davidbz/pronto/internal/provider/registry"
	"github.com/davidbz/pronto/internal/provider/wire"
	"github.com/davidbz/pronto/internal/storage/postgres"
)

// Config represents the service configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       observability.LogConfig
	Dispatch  wire.Config
	Providers registry.Config
	Platform  credentials.PlatformKeys
	OpenAI    openai.Config
	Jobs      jobs.Config
	Database  postgres.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"60"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization,X-Request-Id"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	Server    *ServerConfig
	CORS      *CORSConfig
	Log       *observability.LogConfig
	Dispatch  *wire.Config
	Providers *registry.Config
	Platform  *credentials.PlatformKeys
	OpenAI    *openai.Config
	Jobs      *jobs.Config
	Database  *postgres.Config
}

// Load loads environment files and parses configuration.
func Load() (*Config, error) {
	for _, file := range []string{".env.local", ".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:       dig.Out{},
		Server:    &cfg.Server,
		CORS:      &cfg.CORS,
		Log:       &cfg.Log,
		Dispatch:  &cfg.Dispatch,
		Providers: &cfg.Providers,
		Platform:  &cfg.Platform,
		OpenAI:    &cfg.OpenAI,
		Jobs:      &cfg.Jobs,
		Database:  &cfg.Database,
	}
}
