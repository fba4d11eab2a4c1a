package credentials_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/pronto/internal/credentials"
	"github.com/davidbz/pronto/internal/domain"
)

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	resolver := credentials.NewResolver(&credentials.PlatformKeys{
		OpenAI:    "sk-platform",
		Anthropic: "   ",
	})

	t.Run("should use caller key when platform credits are off", func(t *testing.T) {
		cred, err := resolver.Resolve(ctx, domain.ProviderOpenAI, "sk-user", false)
		require.NoError(t, err)
		require.Equal(t, "sk-user", cred.Key)
		require.Equal(t, domain.CredentialSourceCaller, cred.Source)
	})

	t.Run("should fail when caller key is missing", func(t *testing.T) {
		cred, err := resolver.Resolve(ctx, domain.ProviderOpenAI, "", false)
		require.ErrorIs(t, err, domain.ErrMissingAPIKey)
		require.Nil(t, cred)
	})

	t.Run("should treat whitespace caller key as missing", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, domain.ProviderOpenAI, "  \t", false)
		require.ErrorIs(t, err, domain.ErrMissingAPIKey)
	})

	t.Run("should not fall back to platform key for BYOK", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, domain.ProviderOpenAI, "", false)
		require.ErrorIs(t, err, domain.ErrMissingAPIKey)
	})

	t.Run("should use platform key and ignore caller key", func(t *testing.T) {
		cred, err := resolver.Resolve(ctx, domain.ProviderOpenAI, "sk-user", true)
		require.NoError(t, err)
		require.Equal(t, "sk-platform", cred.Key)
		require.Equal(t, domain.CredentialSourcePlatform, cred.Source)
	})

	t.Run("should fail when platform key is absent even with caller key", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, domain.ProviderXAI, "sk-user", true)

		var platformErr *domain.PlatformCredentialsUnavailableError
		require.ErrorAs(t, err, &platformErr)
		require.Equal(t, domain.ProviderXAI, platformErr.Provider)
	})

	t.Run("should treat blank platform key as absent", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, domain.ProviderAnthropic, "", true)

		var platformErr *domain.PlatformCredentialsUnavailableError
		require.ErrorAs(t, err, &platformErr)
	})
}

func TestResolver_Snapshot(t *testing.T) {
	t.Run("should not observe later config mutation", func(t *testing.T) {
		keys := &credentials.PlatformKeys{OpenAI: "sk-one"}
		resolver := credentials.NewResolver(keys)
		keys.OpenAI = "sk-two"

		cred, err := resolver.Resolve(context.Background(), domain.ProviderOpenAI, "", true)
		require.NoError(t, err)
		require.Equal(t, "sk-one", cred.Key)
	})

	t.Run("should handle nil keys", func(t *testing.T) {
		resolver := credentials.NewResolver(nil)
		require.False(t, resolver.HasPlatformKey(domain.ProviderOpenAI))
	})
}
