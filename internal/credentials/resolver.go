// Package credentials chooses which API key a run uses. Caller-supplied keys
// and platform-held keys are separate trust domains and are never mixed: a
// request that asks for platform credits never falls back to the caller key,
// and a BYOK request never falls back to a platform key.
package credentials

import (
	"context"
	"strings"

	"github.com/davidbz/pronto/internal/domain"
)

// PlatformKeys holds platform-owned API keys read from the environment.
type PlatformKeys struct {
	OpenAI     string `env:"PLATFORM_OPENAI_API_KEY"`
	Anthropic  string `env:"PLATFORM_ANTHROPIC_API_KEY"`
	Google     string `env:"PLATFORM_GOOGLE_API_KEY"`
	XAI        string `env:"PLATFORM_XAI_API_KEY"`
	Seedream   string `env:"PLATFORM_SEEDREAM_API_KEY"`
	Higgsfield string `env:"PLATFORM_HIGGSFIELD_API_KEY"`
	Suno       string `env:"PLATFORM_SUNO_API_KEY"`
}

// ByProvider flattens the configured keys, skipping empty ones.
func (k *PlatformKeys) ByProvider() map[domain.Provider]string {
	all := map[domain.Provider]string{
		domain.ProviderOpenAI:     k.OpenAI,
		domain.ProviderAnthropic:  k.Anthropic,
		domain.ProviderGoogle:     k.Google,
		domain.ProviderXAI:        k.XAI,
		domain.ProviderSeedream:   k.Seedream,
		domain.ProviderHiggsfield: k.Higgsfield,
		domain.ProviderSuno:       k.Suno,
	}

	out := make(map[domain.Provider]string, len(all))
	for provider, key := range all {
		if key = strings.TrimSpace(key); key != "" {
			out[provider] = key
		}
	}
	return out
}

// Resolver implements domain.CredentialResolver.
type Resolver struct {
	platform map[domain.Provider]string
}

// NewResolver creates a resolver over a snapshot of the platform keys.
func NewResolver(keys *PlatformKeys) *Resolver {
	platform := map[domain.Provider]string{}
	if keys != nil {
		platform = keys.ByProvider()
	}

	return &Resolver{
		platform: platform,
	}
}

// Resolve returns the key to use for provider.
func (r *Resolver) Resolve(
	_ context.Context,
	provider domain.Provider,
	callerAPIKey string,
	usePlatformCredits bool,
) (*domain.Credential, error) {
	if usePlatformCredits {
		key, ok := r.platform[provider]
		if !ok {
			return nil, &domain.PlatformCredentialsUnavailableError{Provider: provider}
		}
		return &domain.Credential{Key: key, Source: domain.CredentialSourcePlatform}, nil
	}

	key := strings.TrimSpace(callerAPIKey)
	if key == "" {
		return nil, domain.ErrMissingAPIKey
	}

	return &domain.Credential{Key: key, Source: domain.CredentialSourceCaller}, nil
}

// HasPlatformKey reports whether platform credits can be used for provider.
func (r *Resolver) HasPlatformKey(provider domain.Provider) bool {
	_, ok := r.platform[provider]
	return ok
}
