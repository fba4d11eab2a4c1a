package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/provider/registry"
)

func defaultConfig() registry.Config {
	return registry.Config{
		OpenAIBaseURL:     "https://api.openai.com/v1",
		AnthropicBaseURL:  "https://api.anthropic.com/v1/",
		GoogleBaseURL:     "https://generativelanguage.googleapis.com/v1beta",
		XAIBaseURL:        "https://api.x.ai/v1",
		SeedreamBaseURL:   "https://seedream.example",
		HiggsfieldBaseURL: "https://higgsfield.example",
		SunoBaseURL:       "https://suno.example",
	}
}

func TestNewRegistry(t *testing.T) {
	t.Run("should build from default table", func(t *testing.T) {
		reg, err := registry.NewRegistry(registry.DefaultModels(defaultConfig()))
		require.NoError(t, err)
		require.Len(t, reg.List(context.Background()), 12)
	})

	t.Run("should reject duplicate ids", func(t *testing.T) {
		_, err := registry.NewRegistry([]domain.ModelDescriptor{
			{ID: "a", Provider: domain.ProviderOpenAI},
			{ID: "a", Provider: domain.ProviderXAI},
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "already registered")
	})

	t.Run("should reject empty id", func(t *testing.T) {
		_, err := registry.NewRegistry([]domain.ModelDescriptor{{Provider: domain.ProviderOpenAI}})
		require.Error(t, err)
		require.Contains(t, err.Error(), "model id cannot be empty")
	})

	t.Run("should reject missing provider", func(t *testing.T) {
		_, err := registry.NewRegistry([]domain.ModelDescriptor{{ID: "x"}})
		require.Error(t, err)
	})
}

func TestRegistry_Lookup(t *testing.T) {
	reg, err := registry.NewRegistry(registry.DefaultModels(defaultConfig()))
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		id       string
		provider domain.Provider
		modality domain.Modality
		wire     string
		endpoint string
	}{
		{"gpt-4o", domain.ProviderOpenAI, domain.ModalityText, "gpt-4o", "https://api.openai.com/v1/chat/completions"},
		{"claude-3", domain.ProviderAnthropic, domain.ModalityText, "claude-3-sonnet-20240229",
			"https://api.anthropic.com/v1/messages"},
		{"gemini-pro", domain.ProviderGoogle, domain.ModalityText, "gemini-pro",
			"https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"},
		{"grok-3", domain.ProviderXAI, domain.ModalityText, "grok-3", "https://api.x.ai/v1/chat/completions"},
		{"dall-e-3", domain.ProviderOpenAI, domain.ModalityImage, "dall-e-3",
			"https://api.openai.com/v1/images/generations"},
		{"higgsfield", domain.ProviderHiggsfield, domain.ModalityImage, "higgsfield-soul",
			"https://higgsfield.example/generate"},
		{"veo-3", domain.ProviderGoogle, domain.ModalityVideo, "veo-3.0-generate-preview",
			"https://generativelanguage.googleapis.com/v1beta/models/veo-3.0-generate-preview:predictLongRunning"},
		{"suno", domain.ProviderSuno, domain.ModalityMusic, "chirp-v4", "https://suno.example/generate"},
	}

	for _, tt := range tests {
		t.Run("should resolve "+tt.id, func(t *testing.T) {
			desc, lookupErr := reg.Lookup(ctx, tt.id)
			require.NoError(t, lookupErr)
			require.Equal(t, tt.id, desc.ID)
			require.Equal(t, tt.provider, desc.Provider)
			require.Equal(t, tt.modality, desc.Modality)
			require.Equal(t, tt.wire, desc.WireModelName)
			require.Equal(t, tt.endpoint, desc.Endpoint)
		})
	}

	t.Run("should return ErrInvalidModel for unknown id", func(t *testing.T) {
		desc, lookupErr := reg.Lookup(ctx, "gpt-99")
		require.ErrorIs(t, lookupErr, domain.ErrInvalidModel)
		require.Nil(t, desc)
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, lookupErr := reg.Lookup(ctx, "GPT-4O")
		require.ErrorIs(t, lookupErr, domain.ErrInvalidModel)
	})
}

func TestRegistry_List(t *testing.T) {
	t.Run("should return descriptors ordered by id", func(t *testing.T) {
		reg, err := registry.NewRegistry([]domain.ModelDescriptor{
			{ID: "zeta", Provider: domain.ProviderSuno},
			{ID: "alpha", Provider: domain.ProviderOpenAI},
		})
		require.NoError(t, err)

		list := reg.List(context.Background())
		require.Len(t, list, 2)
		require.Equal(t, "alpha", list[0].ID)
		require.Equal(t, "zeta", list[1].ID)
	})

	t.Run("should not expose internal slice", func(t *testing.T) {
		reg, err := registry.NewRegistry([]domain.ModelDescriptor{{ID: "a", Provider: domain.ProviderOpenAI}})
		require.NoError(t, err)

		list := reg.List(context.Background())
		list[0] = nil

		require.NotNil(t, reg.List(context.Background())[0])
	})
}
