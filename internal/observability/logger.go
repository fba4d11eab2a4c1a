package observability

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// The base logger is process-wide; request loggers are derived from it per
// call by FromContext and never stored in a context.
//
//nolint:gochecknoglobals
var (
	globalLogger *zap.Logger
	loggerMu     sync.RWMutex
)

// InitLogger initializes the base logger (called once at startup).
// LOG_LEVEL accepts zap level names; an empty value keeps the production default.
func InitLogger(cfg *LogConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg != nil && cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zapCfg.Level = level
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	SetLogger(logger)

	return logger, nil
}

// SetLogger replaces the base logger.
func SetLogger(logger *zap.Logger) {
	loggerMu.Lock()
	globalLogger = logger
	loggerMu.Unlock()
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// getBaseLogger returns the global logger instance.
func getBaseLogger() *zap.Logger {
	loggerMu.RLock()
	logger := globalLogger
	loggerMu.RUnlock()

	if logger == nil {
		// Fallback to production logger if not initialized
		logger, _ = zap.NewProduction()
	}

	return logger
}

// FromContext creates a logger with fields extracted from context.
func FromContext(ctx context.Context) *zap.Logger {
	return getBaseLogger().With(contextFields(ctx)...)
}

func contextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, len(loggedKeys))

	for _, key := range loggedKeys {
		if v := value(ctx, key); v != "" {
			fields = append(fields, zap.String(string(key), v))
		}
	}

	return fields
}
