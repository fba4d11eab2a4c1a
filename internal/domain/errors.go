package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModel is returned when a model id is not in the registry.
	ErrInvalidModel = errors.New("invalid model")

	// ErrEmptyPrompt is returned when a run request has no prompt text.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrMissingAPIKey is returned when the caller chose BYOK but sent no key.
	ErrMissingAPIKey = errors.New("API key required when not using platform credits")

	// ErrJobNotFound is returned for unknown or evicted job ids.
	ErrJobNotFound = errors.New("job not found")

	// ErrJobFinalized is returned when a terminal job is transitioned again.
	ErrJobFinalized = errors.New("job already finalized")

	// ErrPromptNotFound is returned for unknown catalog ids.
	ErrPromptNotFound = errors.New("prompt not found")
)

// PlatformCredentialsUnavailableError is returned when platform credits were
// requested but no platform key is configured for the provider.
type PlatformCredentialsUnavailableError struct {
	Provider Provider
}

func (e *PlatformCredentialsUnavailableError) Error() string {
	return fmt.Sprintf("platform credentials unavailable for provider %s", e.Provider)
}

// IsClientError reports whether err should be surfaced as a 4xx to the caller.
func IsClientError(err error) bool {
	var platformErr *PlatformCredentialsUnavailableError
	return errors.Is(err, ErrInvalidModel) ||
		errors.Is(err, ErrEmptyPrompt) ||
		errors.Is(err, ErrMissingAPIKey) ||
		errors.As(err, &platformErr)
}
