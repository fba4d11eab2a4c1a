package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/pronto/internal/observability"
)

// ErrInvalidKey is returned when OpenAI rejects a caller key.
var ErrInvalidKey = errors.New("invalid OpenAI API key")

// KeyValidator checks caller-supplied keys with a cheap authenticated call.
type KeyValidator struct {
	config Config
}

// NewKeyValidator creates a key validator.
func NewKeyValidator(config *Config) *KeyValidator {
	return &KeyValidator{
		config: *config,
	}
}

// Validate lists models with apiKey. A 401 or 403 maps to ErrInvalidKey; any
// other failure is returned wrapped.
func (v *KeyValidator) Validate(ctx context.Context, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return ErrInvalidKey
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}

	if v.config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(v.config.BaseURL))
	}

	if v.config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(v.config.Timeout)*time.Second))
	}

	client := openai.NewClient(opts...)

	logger := observability.FromContext(ctx)
	logger.Debug("validating OpenAI key")

	if _, err := client.Models.List(ctx); err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) &&
			(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return ErrInvalidKey
		}

		logger.Warn("OpenAI key validation failed", observability.Error(err))
		return fmt.Errorf("key validation failed: %w", err)
	}

	return nil
}
